package value

// Drop-off types.
const (
	DropOffRegularPickup  = "REGULAR_PICKUP"
	DropOffRequestCourier = "REQUEST_COURIER"
)

// Units of measurement: SI is KG/CM, SU is LB/IN.
const (
	UnitSI = "SI"
	UnitSU = "SU"
)

// Label types returned by the carrier.
const (
	LabelPDF = "PDF"
	LabelZPL = "ZPL"
	LabelEPL = "EPL"
	LabelLP2 = "LP2"
)

// Values of a Y/N flag.
const (
	Yes = "Y"
	No  = "N"
)

// Shipping payment types: paid by shipper, receiver or a third party.
const (
	PaymentShipper    = "S"
	PaymentReceiver   = "R"
	PaymentThirdParty = "T"
)

// Shipment contents declared to customs.
const (
	ContentDocuments    = "DOCUMENTS"
	ContentNonDocuments = "NON_DOCUMENTS"
)

type (
	dropOffTypeField         struct{}
	unitOfMeasurementField   struct{}
	labelTypeField           struct{}
	yesNoField               struct{}
	paymentInfoField         struct{}
	shippingPaymentTypeField struct{}
	contentField             struct{}
	deleteReasonField        struct{}
)

func (dropOffTypeField) Name() string   { return "DropOffType" }
func (dropOffTypeField) MaxLength() int { return 15 }
func (dropOffTypeField) Codes() []string {
	return []string{DropOffRegularPickup, DropOffRequestCourier}
}

func (unitOfMeasurementField) Name() string    { return "UnitOfMeasurement" }
func (unitOfMeasurementField) MaxLength() int  { return 2 }
func (unitOfMeasurementField) Codes() []string { return []string{UnitSI, UnitSU} }

func (labelTypeField) Name() string    { return "LabelType" }
func (labelTypeField) MaxLength() int  { return 3 }
func (labelTypeField) Codes() []string { return []string{LabelPDF, LabelZPL, LabelEPL, LabelLP2} }

func (yesNoField) Name() string    { return "UseOwnShipmentIdentificationNumber" }
func (yesNoField) MaxLength() int  { return 1 }
func (yesNoField) Codes() []string { return []string{Yes, No} }

// Incoterms accepted in PaymentInfo.
func (paymentInfoField) Name() string   { return "PaymentInfo" }
func (paymentInfoField) MaxLength() int { return 3 }
func (paymentInfoField) Codes() []string {
	return []string{
		"CFR", "CIF", "CIP", "CPT", "DAF", "DDP", "DDU", "DAP",
		"DEQ", "DES", "EXW", "FAS", "FCA", "FOB",
	}
}

func (shippingPaymentTypeField) Name() string   { return "ShippingPaymentType" }
func (shippingPaymentTypeField) MaxLength() int { return 1 }
func (shippingPaymentTypeField) Codes() []string {
	return []string{PaymentShipper, PaymentReceiver, PaymentThirdParty}
}

func (contentField) Name() string    { return "Content" }
func (contentField) MaxLength() int  { return 13 }
func (contentField) Codes() []string { return []string{ContentDocuments, ContentNonDocuments} }

// Pickup cancellation reasons 001-008 as listed in the carrier's DeletePickup documentation.
func (deleteReasonField) Name() string   { return "Reason" }
func (deleteReasonField) MaxLength() int { return 3 }
func (deleteReasonField) Codes() []string {
	return []string{"001", "002", "003", "004", "005", "006", "007", "008"}
}

// Enumerated fields. Their constructors reject codes outside the allowed set.
type (
	DropOffType         = Bounded[dropOffTypeField]
	UnitOfMeasurement   = Bounded[unitOfMeasurementField]
	LabelType           = Bounded[labelTypeField]
	YesNo               = Bounded[yesNoField]
	PaymentInfo         = Bounded[paymentInfoField]
	ShippingPaymentType = Bounded[shippingPaymentTypeField]
	Content             = Bounded[contentField]
	DeleteReason        = Bounded[deleteReasonField]
)

// NewDropOffType accepts REGULAR_PICKUP or REQUEST_COURIER.
func NewDropOffType(s string) (DropOffType, error) {
	return New[dropOffTypeField](s)
}

// NewUnitOfMeasurement accepts SI or SU.
func NewUnitOfMeasurement(s string) (UnitOfMeasurement, error) {
	return New[unitOfMeasurementField](s)
}

// NewLabelType accepts PDF, ZPL, EPL or LP2.
func NewLabelType(s string) (LabelType, error) {
	return New[labelTypeField](s)
}

// NewYesNo accepts Y or N.
func NewYesNo(s string) (YesNo, error) {
	return New[yesNoField](s)
}

// NewPaymentInfo validates an Incoterm.
func NewPaymentInfo(s string) (PaymentInfo, error) {
	return New[paymentInfoField](s)
}

// NewContent accepts DOCUMENTS or NON_DOCUMENTS.
func NewContent(s string) (Content, error) {
	return New[contentField](s)
}

// NewDeleteReason validates a pickup cancellation reason code.
func NewDeleteReason(s string) (DeleteReason, error) {
	return New[deleteReasonField](s)
}

// NewShippingPaymentType accepts S, R or T.
func NewShippingPaymentType(s string) (ShippingPaymentType, error) {
	return New[shippingPaymentTypeField](s)
}
