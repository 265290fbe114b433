package request

import (
	"errors"
	"fmt"

	"github.com/tournevent/dhlexpress/internal/guard"
	"github.com/tournevent/dhlexpress/pkg/express/opt"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

// Errors returned by Validate for values not built by their constructor.
var (
	ErrContactNotConstructed     = errors.New("contact must be created via NewContact")
	ErrAddressNotConstructed     = errors.New("address must be created via NewAddress")
	ErrContactInfoNotConstructed = errors.New("contact info must be created via NewContactInfo")
	ErrShipNotConstructed        = errors.New("ship must be created via NewShip")
)

// Contact is the person reachable for a shipper, recipient or buyer.
type Contact struct {
	personName        value.PersonName
	companyName       value.CompanyName
	phoneNumber       value.PhoneNumber
	emailAddress      opt.Option[value.EmailAddress]
	mobilePhoneNumber opt.Option[value.PhoneNumber]

	guard guard.Constructed
}

// ContactOption sets an optional Contact field.
type ContactOption func(*Contact) error

// WithEmailAddress sets the contact's email address.
func WithEmailAddress(email string) ContactOption {
	return func(c *Contact) error {
		e, err := value.NewEmailAddress(email)
		if err != nil {
			return err
		}
		c.emailAddress = opt.Some(e)
		return nil
	}
}

// WithMobilePhoneNumber sets a mobile number in addition to the main phone number.
func WithMobilePhoneNumber(phone string) ContactOption {
	return func(c *Contact) error {
		p, err := value.NewPhoneNumber(phone)
		if err != nil {
			return err
		}
		c.mobilePhoneNumber = opt.Some(p)
		return nil
	}
}

// NewContact validates the mandatory contact fields, then applies opts.
func NewContact(personName, companyName, phoneNumber string, opts ...ContactOption) (Contact, error) {
	var errs []error
	c := Contact{
		personName:  collect(value.NewPersonName(personName))(&errs),
		companyName: collect(value.NewCompanyName(companyName))(&errs),
		phoneNumber: collect(value.NewPhoneNumber(phoneNumber))(&errs),
		guard:       guard.New(),
	}
	if err := apply(&c, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Contact{}, joinErrs(errs)
	}
	return c, nil
}

// Validate reports whether c was built by NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactNotConstructed)
}

// PersonName returns the name of the contact person.
func (c Contact) PersonName() value.PersonName { return c.personName }

// CompanyName returns the company of the contact.
func (c Contact) CompanyName() value.CompanyName { return c.companyName }

// PhoneNumber returns the main phone number.
func (c Contact) PhoneNumber() value.PhoneNumber { return c.phoneNumber }

// EmailAddress returns the email address, if any.
func (c Contact) EmailAddress() opt.Option[value.EmailAddress] { return c.emailAddress }

// MobilePhoneNumber returns the mobile number, if any.
func (c Contact) MobilePhoneNumber() opt.Option[value.PhoneNumber] { return c.mobilePhoneNumber }

// Address is a postal address. StreetLines is the first address line; StreetName and
// StreetNumber are only sent when the caller splits the street explicitly.
type Address struct {
	streetLines         value.StreetLines
	streetLines2        opt.Option[value.StreetLines]
	streetLines3        opt.Option[value.StreetLines]
	streetName          opt.Option[value.StreetName]
	streetNumber        opt.Option[value.StreetNumber]
	city                value.City
	stateOrProvinceCode opt.Option[value.StateOrProvinceCode]
	postalCode          value.PostalCode
	countryCode         value.CountryCode

	guard guard.Constructed
}

// AddressOption sets an optional Address field.
type AddressOption func(*Address) error

// WithStreetLines2 sets the second address line.
func WithStreetLines2(line string) AddressOption {
	return func(a *Address) error {
		l, err := value.NewStreetLines(line)
		if err != nil {
			return err
		}
		a.streetLines2 = opt.Some(l)
		return nil
	}
}

// WithStreetLines3 sets the third address line.
func WithStreetLines3(line string) AddressOption {
	return func(a *Address) error {
		l, err := value.NewStreetLines(line)
		if err != nil {
			return err
		}
		a.streetLines3 = opt.Some(l)
		return nil
	}
}

// WithStreetName sets the street name sent alongside StreetLines.
func WithStreetName(name string) AddressOption {
	return func(a *Address) error {
		n, err := value.NewStreetName(name)
		if err != nil {
			return err
		}
		a.streetName = opt.Some(n)
		return nil
	}
}

// WithStreetNumber sets the house number sent alongside StreetLines.
func WithStreetNumber(number string) AddressOption {
	return func(a *Address) error {
		n, err := value.NewStreetNumber(number)
		if err != nil {
			return err
		}
		a.streetNumber = opt.Some(n)
		return nil
	}
}

// WithStateOrProvinceCode sets the state or province, required for some destinations.
func WithStateOrProvinceCode(code string) AddressOption {
	return func(a *Address) error {
		c, err := value.NewStateOrProvinceCode(code)
		if err != nil {
			return err
		}
		a.stateOrProvinceCode = opt.Some(c)
		return nil
	}
}

// NewAddress validates the mandatory address fields, then applies opts.
func NewAddress(streetLines, city, postalCode, countryCode string, opts ...AddressOption) (Address, error) {
	var errs []error
	a := Address{
		streetLines: collect(value.NewStreetLines(streetLines))(&errs),
		city:        collect(value.NewCity(city))(&errs),
		postalCode:  collect(value.NewPostalCode(postalCode))(&errs),
		countryCode: collect(value.NewCountryCode(countryCode))(&errs),
		guard:       guard.New(),
	}
	if err := apply(&a, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Address{}, joinErrs(errs)
	}
	return a, nil
}

// Validate reports whether a was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressNotConstructed)
}

// StreetLines returns the first address line.
func (a Address) StreetLines() value.StreetLines { return a.streetLines }

// StreetLines2 returns the second address line, if any.
func (a Address) StreetLines2() opt.Option[value.StreetLines] { return a.streetLines2 }

// StreetLines3 returns the third address line, if any.
func (a Address) StreetLines3() opt.Option[value.StreetLines] { return a.streetLines3 }

// StreetName returns the explicit street name, if any.
func (a Address) StreetName() opt.Option[value.StreetName] { return a.streetName }

// StreetNumber returns the explicit house number, if any.
func (a Address) StreetNumber() opt.Option[value.StreetNumber] { return a.streetNumber }

// City returns the city.
func (a Address) City() value.City { return a.city }

// StateOrProvinceCode returns the state or province, if any.
func (a Address) StateOrProvinceCode() opt.Option[value.StateOrProvinceCode] {
	return a.stateOrProvinceCode
}

// PostalCode returns the postal code.
func (a Address) PostalCode() value.PostalCode { return a.postalCode }

// CountryCode returns the ISO 3166 country code.
func (a Address) CountryCode() value.CountryCode { return a.countryCode }

// ContactInfo pairs a Contact with an Address. Its With methods return modified copies.
type ContactInfo struct {
	contact Contact
	address Address

	guard guard.Constructed
}

// NewContactInfo pairs contact with address. Both must come from their constructors.
func NewContactInfo(contact Contact, address Address) (ContactInfo, error) {
	ci := ContactInfo{contact: contact, address: address, guard: guard.New()}
	if err := ci.Validate(); err != nil {
		return ContactInfo{}, err
	}
	return ci, nil
}

// Validate reports whether ci and both of its parts were built by their constructors.
func (ci ContactInfo) Validate() error {
	if err := ci.guard.Validate(ErrContactInfoNotConstructed); err != nil {
		return err
	}
	return errors.Join(ci.contact.Validate(), ci.address.Validate())
}

// Contact returns the contact person.
func (ci ContactInfo) Contact() Contact { return ci.contact }

// Address returns the postal address.
func (ci ContactInfo) Address() Address { return ci.address }

// WithContact returns a copy of ci with c as contact.
func (ci ContactInfo) WithContact(c Contact) ContactInfo {
	ci.contact = c
	return ci
}

// WithAddress returns a copy of ci with a as address.
func (ci ContactInfo) WithAddress(a Address) ContactInfo {
	ci.address = a
	return ci
}

// Ship holds the parties of a shipment.
type Ship struct {
	shipper   ContactInfo
	recipient ContactInfo
	buyer     opt.Option[ContactInfo]

	guard guard.Constructed
}

// NewShip sets the shipper and recipient parties. Both must come from NewContactInfo.
func NewShip(shipper, recipient ContactInfo) (Ship, error) {
	s := Ship{shipper: shipper, recipient: recipient, guard: guard.New()}
	if err := s.Validate(); err != nil {
		return Ship{}, err
	}
	return s, nil
}

// Validate reports whether s was built by NewShip and every party it holds is valid.
func (s Ship) Validate() error {
	if err := s.guard.Validate(ErrShipNotConstructed); err != nil {
		return err
	}
	errs := []error{
		party("shipper", s.shipper.Validate()),
		party("recipient", s.recipient.Validate()),
	}
	if buyer, ok := s.buyer.Get(); ok {
		errs = append(errs, party("buyer", buyer.Validate()))
	}
	return errors.Join(errs...)
}

func party(role string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", role, err)
}

// WithBuyer returns a copy of s with the buyer party set. The carrier uses it on customs
// invoices when the buyer differs from the recipient.
func (s Ship) WithBuyer(buyer ContactInfo) Ship {
	s.buyer = opt.Some(buyer)
	return s
}

// Shipper returns the party sending the shipment.
func (s Ship) Shipper() ContactInfo { return s.shipper }

// Recipient returns the party receiving the shipment.
func (s Ship) Recipient() ContactInfo { return s.recipient }

// Buyer returns the buyer party, if set.
func (s Ship) Buyer() opt.Option[ContactInfo] { return s.buyer }
