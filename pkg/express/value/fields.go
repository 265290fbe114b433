package value

// Free-text fields. The carrier names most of these "alphanumeric" but only documents a
// length limit, so no character-set rule is applied.
type (
	textField                         struct{}
	streetNumberField                 struct{}
	streetNameField                   struct{}
	streetLinesField                  struct{}
	cityField                         struct{}
	postalCodeField                   struct{}
	stateOrProvinceCodeField          struct{}
	personNameField                   struct{}
	companyNameField                  struct{}
	phoneNumberField                  struct{}
	emailAddressField                 struct{}
	accountField                      struct{}
	labelTemplateField                struct{}
	pickupLocationField               struct{}
	pickupLocationCloseTimeField      struct{}
	specialPickupInstructionField     struct{}
	serviceTypeField                  struct{}
	specialServiceTypeField           struct{}
	shipmentIdentificationNumberField struct{}
	customerReferenceField            struct{}
	descriptionField                  struct{}
	dispatchConfirmationNumberField   struct{}
	requestorNameField                struct{}
	messageReferenceField             struct{}
)

func (textField) Name() string   { return "Text" }
func (textField) MaxLength() int { return 50 }

func (streetNumberField) Name() string   { return "StreetNumber" }
func (streetNumberField) MaxLength() int { return 15 }

func (streetNameField) Name() string   { return "StreetName" }
func (streetNameField) MaxLength() int { return 35 }

func (streetLinesField) Name() string   { return "StreetLines" }
func (streetLinesField) MaxLength() int { return 45 }

func (cityField) Name() string   { return "City" }
func (cityField) MaxLength() int { return 35 }

func (postalCodeField) Name() string   { return "PostalCode" }
func (postalCodeField) MaxLength() int { return 12 }

func (stateOrProvinceCodeField) Name() string   { return "StateOrProvinceCode" }
func (stateOrProvinceCodeField) MaxLength() int { return 35 }

func (personNameField) Name() string   { return "PersonName" }
func (personNameField) MaxLength() int { return 45 }

func (companyNameField) Name() string   { return "CompanyName" }
func (companyNameField) MaxLength() int { return 60 }

func (phoneNumberField) Name() string   { return "PhoneNumber" }
func (phoneNumberField) MaxLength() int { return 25 }

func (emailAddressField) Name() string   { return "EmailAddress" }
func (emailAddressField) MaxLength() int { return 50 }

func (accountField) Name() string   { return "Account" }
func (accountField) MaxLength() int { return 12 }

func (labelTemplateField) Name() string   { return "LabelTemplate" }
func (labelTemplateField) MaxLength() int { return 20 }

func (pickupLocationField) Name() string   { return "PickupLocation" }
func (pickupLocationField) MaxLength() int { return 40 }

func (pickupLocationCloseTimeField) Name() string   { return "PickupLocationCloseTime" }
func (pickupLocationCloseTimeField) MaxLength() int { return 5 }

func (specialPickupInstructionField) Name() string   { return "SpecialPickupInstruction" }
func (specialPickupInstructionField) MaxLength() int { return 75 }

func (serviceTypeField) Name() string   { return "ServiceType" }
func (serviceTypeField) MaxLength() int { return 6 }

func (specialServiceTypeField) Name() string   { return "SpecialServiceType" }
func (specialServiceTypeField) MaxLength() int { return 2 }

func (shipmentIdentificationNumberField) Name() string   { return "ShipmentIdentificationNumber" }
func (shipmentIdentificationNumberField) MaxLength() int { return 10 }

func (customerReferenceField) Name() string   { return "CustomerReferences" }
func (customerReferenceField) MaxLength() int { return 35 }

func (descriptionField) Name() string   { return "Description" }
func (descriptionField) MaxLength() int { return 70 }

func (dispatchConfirmationNumberField) Name() string   { return "DispatchConfirmationNumber" }
func (dispatchConfirmationNumberField) MaxLength() int { return 22 }

func (requestorNameField) Name() string   { return "RequestorName" }
func (requestorNameField) MaxLength() int { return 45 }

func (messageReferenceField) Name() string   { return "MessageReference" }
func (messageReferenceField) MaxLength() int { return 32 }

// ISO codes carry letters only.
type letters struct{}

func (letters) Allows(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

type (
	countryCodeField  struct{ letters }
	currencyCodeField struct{ letters }
)

func (countryCodeField) Name() string   { return "CountryCode" }
func (countryCodeField) MaxLength() int { return 2 }

func (currencyCodeField) Name() string   { return "Currency" }
func (currencyCodeField) MaxLength() int { return 3 }

// Length-bounded fields of the request documents.
type (
	Text                         = Bounded[textField]
	StreetNumber                 = Bounded[streetNumberField]
	StreetName                   = Bounded[streetNameField]
	StreetLines                  = Bounded[streetLinesField]
	City                         = Bounded[cityField]
	PostalCode                   = Bounded[postalCodeField]
	StateOrProvinceCode          = Bounded[stateOrProvinceCodeField]
	CountryCode                  = Bounded[countryCodeField]
	PersonName                   = Bounded[personNameField]
	CompanyName                  = Bounded[companyNameField]
	PhoneNumber                  = Bounded[phoneNumberField]
	EmailAddress                 = Bounded[emailAddressField]
	Account                      = Bounded[accountField]
	CurrencyCode                 = Bounded[currencyCodeField]
	LabelTemplate                = Bounded[labelTemplateField]
	PickupLocation               = Bounded[pickupLocationField]
	PickupLocationCloseTime      = Bounded[pickupLocationCloseTimeField]
	SpecialPickupInstruction     = Bounded[specialPickupInstructionField]
	ServiceType                  = Bounded[serviceTypeField]
	SpecialServiceType           = Bounded[specialServiceTypeField]
	ShipmentIdentificationNumber = Bounded[shipmentIdentificationNumberField]
	CustomerReference            = Bounded[customerReferenceField]
	Description                  = Bounded[descriptionField]
	DispatchConfirmationNumber   = Bounded[dispatchConfirmationNumberField]
	RequestorName                = Bounded[requestorNameField]
	MessageReference             = Bounded[messageReferenceField]
)

// NewText validates free text of at most 50 characters.
func NewText(s string) (Text, error) {
	return New[textField](s)
}

// NewStreetNumber validates a house number.
func NewStreetNumber(s string) (StreetNumber, error) {
	return New[streetNumberField](s)
}

// NewStreetName validates a street name.
func NewStreetName(s string) (StreetName, error) {
	return New[streetNameField](s)
}

// NewStreetLines validates one address line.
func NewStreetLines(s string) (StreetLines, error) {
	return New[streetLinesField](s)
}

// NewCity validates a city name.
func NewCity(s string) (City, error) {
	return New[cityField](s)
}

// NewPostalCode validates a postal code.
func NewPostalCode(s string) (PostalCode, error) {
	return New[postalCodeField](s)
}

// NewCountryCode validates a two-letter ISO 3166 country code.
func NewCountryCode(s string) (CountryCode, error) {
	return New[countryCodeField](s)
}

// NewPersonName validates a contact name.
func NewPersonName(s string) (PersonName, error) {
	return New[personNameField](s)
}

// NewCompanyName validates a company name.
func NewCompanyName(s string) (CompanyName, error) {
	return New[companyNameField](s)
}

// NewPhoneNumber validates a phone number.
func NewPhoneNumber(s string) (PhoneNumber, error) {
	return New[phoneNumberField](s)
}

// NewEmailAddress validates an email address. Only length and characters are checked.
func NewEmailAddress(s string) (EmailAddress, error) {
	return New[emailAddressField](s)
}

// NewAccount validates a DHL Express account number.
func NewAccount(s string) (Account, error) {
	return New[accountField](s)
}

// NewCurrencyCode validates a three-letter ISO 4217 currency code.
func NewCurrencyCode(s string) (CurrencyCode, error) {
	return New[currencyCodeField](s)
}

// NewServiceType validates a product code such as P or N.
func NewServiceType(s string) (ServiceType, error) {
	return New[serviceTypeField](s)
}

// NewDescription validates a commodities description.
func NewDescription(s string) (Description, error) {
	return New[descriptionField](s)
}

// NewStateOrProvinceCode validates a state or province code.
func NewStateOrProvinceCode(s string) (StateOrProvinceCode, error) {
	return New[stateOrProvinceCodeField](s)
}

// NewLabelTemplate validates a label template name. Templates are agreed with the carrier;
// only the length is checked here.
func NewLabelTemplate(s string) (LabelTemplate, error) {
	return New[labelTemplateField](s)
}

// NewPickupLocation validates where the courier should collect the packages.
func NewPickupLocation(s string) (PickupLocation, error) {
	return New[pickupLocationField](s)
}

// NewPickupLocationCloseTime validates the latest pickup time, formatted HH:MM.
func NewPickupLocationCloseTime(s string) (PickupLocationCloseTime, error) {
	return New[pickupLocationCloseTimeField](s)
}

// NewSpecialPickupInstruction validates a note for the courier.
func NewSpecialPickupInstruction(s string) (SpecialPickupInstruction, error) {
	return New[specialPickupInstructionField](s)
}

// NewSpecialServiceType validates a two-character special service code.
func NewSpecialServiceType(s string) (SpecialServiceType, error) {
	return New[specialServiceTypeField](s)
}

// NewShipmentIdentificationNumber validates a ten-digit waybill number.
func NewShipmentIdentificationNumber(s string) (ShipmentIdentificationNumber, error) {
	return New[shipmentIdentificationNumberField](s)
}

// NewCustomerReference validates the reference printed on a package label.
func NewCustomerReference(s string) (CustomerReference, error) {
	return New[customerReferenceField](s)
}

// NewDispatchConfirmationNumber validates the pickup confirmation returned on shipment creation.
func NewDispatchConfirmationNumber(s string) (DispatchConfirmationNumber, error) {
	return New[dispatchConfirmationNumberField](s)
}

// NewRequestorName validates the name of the person cancelling a pickup.
func NewRequestorName(s string) (RequestorName, error) {
	return New[requestorNameField](s)
}

// NewMessageReference validates a tracking message reference of at most 32 characters.
func NewMessageReference(s string) (MessageReference, error) {
	return New[messageReferenceField](s)
}
