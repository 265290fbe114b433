// Package requestfile reads request envelopes from YAML documents.
package requestfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/schema"
)

// Document kinds.
const (
	KindShipment = "shipment"
	KindDelete   = "delete"
	KindTracking = "tracking"
)

var ErrKindMismatch = errors.New("request file kind mismatch")

// File is one request document. Exactly the section named by Kind is used.
type File struct {
	Kind     string    `yaml:"kind"`
	Shipment *Shipment `yaml:"shipment"`
	Delete   *Delete   `yaml:"delete"`
	Tracking *Tracking `yaml:"tracking"`
}

// Shipment describes a create shipment request.
type Shipment struct {
	Info                     Info                `yaml:"info"`
	ShipTimestamp            string              `yaml:"ship_timestamp"`
	PaymentInfo              string              `yaml:"payment_info"`
	PickupLocation           *string             `yaml:"pickup_location"`
	PickupLocationCloseTime  *string             `yaml:"pickup_location_close_time"`
	SpecialPickupInstruction *string             `yaml:"special_pickup_instruction"`
	Shipper                  ContactInfo         `yaml:"shipper"`
	Recipient                ContactInfo         `yaml:"recipient"`
	Buyer                    *ContactInfo        `yaml:"buyer"`
	Packages                 []Package           `yaml:"packages"`
	InternationalDetail      InternationalDetail `yaml:"international_detail"`
}

// Info is the shipment info section. Pointer fields are optional.
type Info struct {
	DropOffType                        string    `yaml:"drop_off_type"`
	ServiceType                        string    `yaml:"service_type"`
	Currency                           string    `yaml:"currency"`
	UnitOfMeasurement                  string    `yaml:"unit_of_measurement"`
	Account                            *string   `yaml:"account"`
	Billing                            *Billing  `yaml:"billing"`
	SpecialServices                    []Service `yaml:"special_services"`
	ShipmentIdentificationNumber       *string   `yaml:"shipment_identification_number"`
	UseOwnShipmentIdentificationNumber *string   `yaml:"use_own_shipment_identification_number"`
	PackagesCount                      *int      `yaml:"packages_count"`
	SendPackage                        *string   `yaml:"send_package"`
	LabelType                          *string   `yaml:"label_type"`
	LabelTemplate                      *string   `yaml:"label_template"`
	ArchiveLabelTemplate               *string   `yaml:"archive_label_template"`
	PaperlessTradeEnabled              *bool     `yaml:"paperless_trade_enabled"`
	PaperlessTradeImage                *string   `yaml:"paperless_trade_image"`
}

// Billing names the accounts charged for the shipment.
type Billing struct {
	ShipperAccountNumber string  `yaml:"shipper_account_number"`
	ShippingPaymentType  string  `yaml:"shipping_payment_type"`
	BillingAccountNumber *string `yaml:"billing_account_number"`
}

// Service is one special service.
type Service struct {
	ServiceType string   `yaml:"service_type"`
	Value       *float64 `yaml:"value"`
	Currency    string   `yaml:"currency"`
}

// ContactInfo describes one party of the shipment.
type ContactInfo struct {
	Contact Contact `yaml:"contact"`
	Address Address `yaml:"address"`
}

// Contact is the person reachable for a party.
type Contact struct {
	PersonName        string  `yaml:"person_name"`
	CompanyName       string  `yaml:"company_name"`
	PhoneNumber       string  `yaml:"phone_number"`
	EmailAddress      *string `yaml:"email_address"`
	MobilePhoneNumber *string `yaml:"mobile_phone_number"`
}

// Address is the postal address of a party.
type Address struct {
	StreetLines         string  `yaml:"street_lines"`
	StreetLines2        *string `yaml:"street_lines2"`
	StreetLines3        *string `yaml:"street_lines3"`
	StreetName          *string `yaml:"street_name"`
	StreetNumber        *string `yaml:"street_number"`
	City                string  `yaml:"city"`
	StateOrProvinceCode *string `yaml:"state_or_province_code"`
	PostalCode          string  `yaml:"postal_code"`
	CountryCode         string  `yaml:"country_code"`
}

// Package is one piece of the shipment.
type Package struct {
	Number            int         `yaml:"number"`
	Weight            float64     `yaml:"weight"`
	CustomerReference string      `yaml:"customer_reference"`
	Dimensions        *Dimensions `yaml:"dimensions"`
}

// Dimensions of a package in the unit system of the shipment.
type Dimensions struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InternationalDetail is the customs section.
type InternationalDetail struct {
	Description    string   `yaml:"description"`
	Content        string   `yaml:"content"`
	NumberOfPieces *int     `yaml:"number_of_pieces"`
	CustomsValue   *float64 `yaml:"customs_value"`
}

// Delete describes a pickup cancellation. PickupDate is formatted YYYY-MM-DD.
type Delete struct {
	PickupDate                 string  `yaml:"pickup_date"`
	PickupCountry              string  `yaml:"pickup_country"`
	DispatchConfirmationNumber string  `yaml:"dispatch_confirmation_number"`
	RequestorName              string  `yaml:"requestor_name"`
	Reason                     *string `yaml:"reason"`
}

// Tracking describes a tracking request. Empty fields take their defaults.
type Tracking struct {
	MessageReference      *string  `yaml:"message_reference"`
	AWBNumbers            []string `yaml:"awb_numbers"`
	LevelOfDetails        string   `yaml:"level_of_details"`
	PiecesEnabled         string   `yaml:"pieces_enabled"`
	EstimatedDeliveryDate bool     `yaml:"estimated_delivery_date"`
}

// Load reads and parses the request file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes one request document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	var section any
	switch f.Kind {
	case KindShipment:
		section = f.Shipment
	case KindDelete:
		section = f.Delete
	case KindTracking:
		section = f.Tracking
	default:
		return nil, fmt.Errorf("unknown kind %q", f.Kind)
	}
	if isNil(section) {
		return nil, fmt.Errorf("kind %s requires a %s section", f.Kind, f.Kind)
	}
	return &f, nil
}

func isNil(section any) bool {
	switch s := section.(type) {
	case *Shipment:
		return s == nil
	case *Delete:
		return s == nil
	case *Tracking:
		return s == nil
	}
	return true
}

// ShipmentRequest builds the create shipment envelope of a shipment document.
func (f *File) ShipmentRequest() (*request.ShipmentRequest, error) {
	if f.Kind != KindShipment {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, KindShipment, f.Kind)
	}
	return f.Shipment.build()
}

// DeleteRequest builds the delete envelope of a delete document.
func (f *File) DeleteRequest() (*request.ShipmentDeleteRequest, error) {
	if f.Kind != KindDelete {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, KindDelete, f.Kind)
	}
	d := f.Delete

	pickupDate, err := time.Parse(schema.DateLayout, d.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("pickup_date: %w", err)
	}
	var opts []request.ShipmentDeleteOption
	if d.Reason != nil {
		opts = append(opts, request.WithReason(*d.Reason))
	}
	return request.NewShipmentDeleteRequest(pickupDate, d.PickupCountry, d.DispatchConfirmationNumber, d.RequestorName, opts...)
}

// TrackingRequest builds the tracking envelope of a tracking document. The message is stamped
// at now; a reference is generated when the document has none.
func (f *File) TrackingRequest(now time.Time) (*request.TrackingRequest, error) {
	if f.Kind != KindTracking {
		return nil, fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, KindTracking, f.Kind)
	}
	tr := f.Tracking

	msg := request.GenerateMessage(now)
	if tr.MessageReference != nil {
		var err error
		if msg, err = request.NewMessage(now, *tr.MessageReference); err != nil {
			return nil, err
		}
	}

	level := tr.LevelOfDetails
	if level == "" {
		level = request.AllCheckPoints
	}
	pieces := tr.PiecesEnabled
	if pieces == "" {
		pieces = request.PiecesShipment
	}
	return request.NewTrackingRequest(msg, tr.AWBNumbers, level, pieces, tr.EstimatedDeliveryDate), nil
}

func (s *Shipment) build() (*request.ShipmentRequest, error) {
	var errs []error
	keep := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	info, err := s.Info.builder()
	keep(err)

	ts, err := time.Parse(time.RFC3339, s.ShipTimestamp)
	if err != nil {
		keep(fmt.Errorf("ship_timestamp: %w", err))
	}

	shipper, shipperErr := s.Shipper.build()
	keep(shipperErr)
	recipient, recipientErr := s.Recipient.build()
	keep(recipientErr)
	var ship request.Ship
	if shipperErr == nil && recipientErr == nil {
		ship, err = request.NewShip(shipper, recipient)
		keep(err)
	}
	if s.Buyer != nil {
		buyer, err := s.Buyer.build()
		keep(err)
		if err == nil {
			ship = ship.WithBuyer(buyer)
		}
	}

	packages := make([]request.Package, 0, len(s.Packages))
	for _, p := range s.Packages {
		var opts []request.PackageOption
		if p.Dimensions != nil {
			opts = append(opts, request.WithDimensions(request.Dimensions(*p.Dimensions)))
		}
		pkg, err := request.NewPackage(p.Number, p.Weight, p.CustomerReference, opts...)
		keep(err)
		packages = append(packages, pkg)
	}

	var detailOpts []request.InternationalDetailOption
	if s.InternationalDetail.NumberOfPieces != nil {
		detailOpts = append(detailOpts, request.WithNumberOfPieces(*s.InternationalDetail.NumberOfPieces))
	}
	if s.InternationalDetail.CustomsValue != nil {
		detailOpts = append(detailOpts, request.WithCustomsValue(*s.InternationalDetail.CustomsValue))
	}
	detail, err := request.NewInternationalDetail(s.InternationalDetail.Description, s.InternationalDetail.Content, detailOpts...)
	keep(err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var opts []request.ShipmentRequestOption
	if s.PickupLocation != nil {
		opts = append(opts, request.WithPickupLocation(*s.PickupLocation))
	}
	if s.PickupLocationCloseTime != nil {
		opts = append(opts, request.WithPickupLocationCloseTime(*s.PickupLocationCloseTime))
	}
	if s.SpecialPickupInstruction != nil {
		opts = append(opts, request.WithSpecialPickupInstruction(*s.SpecialPickupInstruction))
	}
	return request.NewShipmentRequest(info, ts, s.PaymentInfo, ship, packages, detail, opts...)
}

func (i Info) builder() (request.ShipmentInfo, error) {
	b := request.NewShipmentInfoBuilder(i.DropOffType, i.ServiceType, i.Currency, i.UnitOfMeasurement)

	set := func(v *string, setter func(request.ShipmentInfoBuilder, string) request.ShipmentInfoBuilder) {
		if v != nil {
			b = setter(b, *v)
		}
	}
	set(i.Account, request.ShipmentInfoBuilder.Account)
	set(i.ShipmentIdentificationNumber, request.ShipmentInfoBuilder.ShipmentIdentificationNumber)
	set(i.UseOwnShipmentIdentificationNumber, request.ShipmentInfoBuilder.UseOwnShipmentIdentificationNumber)
	set(i.SendPackage, request.ShipmentInfoBuilder.SendPackage)
	set(i.LabelType, request.ShipmentInfoBuilder.LabelType)
	set(i.LabelTemplate, request.ShipmentInfoBuilder.LabelTemplate)
	set(i.ArchiveLabelTemplate, request.ShipmentInfoBuilder.ArchiveLabelTemplate)
	set(i.PaperlessTradeImage, request.ShipmentInfoBuilder.PaperlessTradeImage)
	if i.PackagesCount != nil {
		b = b.PackagesCount(*i.PackagesCount)
	}
	if i.PaperlessTradeEnabled != nil {
		b = b.PaperlessTradeEnabled(*i.PaperlessTradeEnabled)
	}

	var errs []error
	if i.Billing != nil {
		var opts []request.BillingOption
		if i.Billing.BillingAccountNumber != nil {
			opts = append(opts, request.WithBillingAccountNumber(*i.Billing.BillingAccountNumber))
		}
		billing, err := request.NewBilling(i.Billing.ShipperAccountNumber, i.Billing.ShippingPaymentType, opts...)
		if err != nil {
			errs = append(errs, err)
		} else {
			b = b.Billing(billing)
		}
	}
	if len(i.SpecialServices) > 0 {
		items := make([]request.Service, 0, len(i.SpecialServices))
		for _, s := range i.SpecialServices {
			var opts []request.ServiceOption
			if s.Value != nil {
				opts = append(opts, request.WithServiceValue(*s.Value, s.Currency))
			}
			svc, err := request.NewService(s.ServiceType, opts...)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			items = append(items, svc)
		}
		b = b.SpecialServices(request.NewServices(items...))
	}

	info, err := b.Build()
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return request.ShipmentInfo{}, errors.Join(errs...)
	}
	return info, nil
}

func (ci ContactInfo) build() (request.ContactInfo, error) {
	c := ci.Contact
	var contactOpts []request.ContactOption
	if c.EmailAddress != nil {
		contactOpts = append(contactOpts, request.WithEmailAddress(*c.EmailAddress))
	}
	if c.MobilePhoneNumber != nil {
		contactOpts = append(contactOpts, request.WithMobilePhoneNumber(*c.MobilePhoneNumber))
	}
	contact, contactErr := request.NewContact(c.PersonName, c.CompanyName, c.PhoneNumber, contactOpts...)

	a := ci.Address
	var addressOpts []request.AddressOption
	optional := []struct {
		v   *string
		opt func(string) request.AddressOption
	}{
		{a.StreetLines2, request.WithStreetLines2},
		{a.StreetLines3, request.WithStreetLines3},
		{a.StreetName, request.WithStreetName},
		{a.StreetNumber, request.WithStreetNumber},
		{a.StateOrProvinceCode, request.WithStateOrProvinceCode},
	}
	for _, o := range optional {
		if o.v != nil {
			addressOpts = append(addressOpts, o.opt(*o.v))
		}
	}
	address, addressErr := request.NewAddress(a.StreetLines, a.City, a.PostalCode, a.CountryCode, addressOpts...)

	if err := errors.Join(contactErr, addressErr); err != nil {
		return request.ContactInfo{}, err
	}
	return request.NewContactInfo(contact, address)
}
