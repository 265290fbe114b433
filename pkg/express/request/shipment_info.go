package request

import (
	"errors"
	"slices"

	"github.com/tournevent/dhlexpress/internal/guard"
	"github.com/tournevent/dhlexpress/pkg/express/opt"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

// ErrShipmentInfoNotConstructed is returned for a ShipmentInfo that was not built by
// ShipmentInfoBuilder.Build.
var ErrShipmentInfoNotConstructed = errors.New("shipment info must be created via ShipmentInfoBuilder.Build")

// ShipmentInfo is the general shipment detail section: operational and billing features.
//
// Optional fields that are absent are omitted from the carrier payload. In particular an
// absent LabelType, LabelTemplate or ArchiveLabelTemplate lets the carrier apply its own
// defaults (PDF, ECOM26_84_001, ARCH_8x4).
type ShipmentInfo struct {
	dropOffType       value.DropOffType
	serviceType       value.ServiceType
	currency          value.CurrencyCode
	unitOfMeasurement value.UnitOfMeasurement

	account                            opt.Option[value.Account]
	billing                            opt.Option[Billing]
	specialServices                    opt.Option[Services]
	shipmentIdentificationNumber       opt.Option[value.ShipmentIdentificationNumber]
	useOwnShipmentIdentificationNumber opt.Option[value.YesNo]
	packagesCount                      opt.Option[int]
	sendPackage                        opt.Option[string]
	labelType                          opt.Option[value.LabelType]
	labelTemplate                      opt.Option[value.LabelTemplate]
	archiveLabelTemplate               opt.Option[value.LabelTemplate]
	paperlessTradeEnabled              opt.Option[bool]
	paperlessTradeImage                opt.Option[string]

	guard guard.Constructed
}

// DropOffType returns whether the shipment is collected by courier or dropped off.
func (i ShipmentInfo) DropOffType() value.DropOffType { return i.dropOffType }

// ServiceType returns the DHL global product code.
func (i ShipmentInfo) ServiceType() value.ServiceType { return i.serviceType }

// Currency returns the currency of all monetary values in the request.
func (i ShipmentInfo) Currency() value.CurrencyCode { return i.currency }

// UnitOfMeasurement returns SI (KG/CM) or SU (LB/IN).
func (i ShipmentInfo) UnitOfMeasurement() value.UnitOfMeasurement { return i.unitOfMeasurement }

// Account returns the paying account. When present it overrides the Billing section.
func (i ShipmentInfo) Account() opt.Option[value.Account] { return i.account }

// Billing returns the accounts charged when Account is absent.
func (i ShipmentInfo) Billing() opt.Option[Billing] { return i.billing }

// SpecialServices returns the value-added services, if any.
func (i ShipmentInfo) SpecialServices() opt.Option[Services] { return i.specialServices }

// ShipmentIdentificationNumber returns the caller-allocated waybill number, if any.
func (i ShipmentInfo) ShipmentIdentificationNumber() opt.Option[value.ShipmentIdentificationNumber] {
	return i.shipmentIdentificationNumber
}

// UseOwnShipmentIdentificationNumber returns Y when ShipmentIdentificationNumber is to be used as waybill.
func (i ShipmentInfo) UseOwnShipmentIdentificationNumber() opt.Option[value.YesNo] {
	return i.useOwnShipmentIdentificationNumber
}

// PackagesCount returns the declared number of packages, if any.
func (i ShipmentInfo) PackagesCount() opt.Option[int] { return i.packagesCount }

// SendPackage returns the SendPackage flag, passed through unchecked.
func (i ShipmentInfo) SendPackage() opt.Option[string] { return i.sendPackage }

// LabelType returns the requested label format. Absent means PDF.
func (i ShipmentInfo) LabelType() opt.Option[value.LabelType] { return i.labelType }

// LabelTemplate returns the requested label template, if any.
func (i ShipmentInfo) LabelTemplate() opt.Option[value.LabelTemplate] { return i.labelTemplate }

// ArchiveLabelTemplate returns the template of the archive copy, if any.
func (i ShipmentInfo) ArchiveLabelTemplate() opt.Option[value.LabelTemplate] {
	return i.archiveLabelTemplate
}

// PaperlessTradeEnabled reports whether customs documents are sent electronically.
func (i ShipmentInfo) PaperlessTradeEnabled() opt.Option[bool] { return i.paperlessTradeEnabled }

// PaperlessTradeImage returns the base64 encoded export document (JPEG, PDF or PNG).
func (i ShipmentInfo) PaperlessTradeImage() opt.Option[string] { return i.paperlessTradeImage }

// Validate reports whether the section was built by ShipmentInfoBuilder.Build.
func (i ShipmentInfo) Validate() error {
	return i.guard.Validate(ErrShipmentInfoNotConstructed)
}

// ToBuilder returns a builder preloaded with the values of i, for deriving a modified copy.
func (i ShipmentInfo) ToBuilder() ShipmentInfoBuilder {
	return ShipmentInfoBuilder{
		dropOffType:                        i.dropOffType.String(),
		serviceType:                        i.serviceType.String(),
		currency:                           i.currency.String(),
		unitOfMeasurement:                  i.unitOfMeasurement.String(),
		account:                            opt.Map(i.account, value.Account.String),
		billing:                            i.billing,
		specialServices:                    i.specialServices,
		shipmentIdentificationNumber:       opt.Map(i.shipmentIdentificationNumber, value.ShipmentIdentificationNumber.String),
		useOwnShipmentIdentificationNumber: opt.Map(i.useOwnShipmentIdentificationNumber, value.YesNo.String),
		packagesCount:                      i.packagesCount,
		sendPackage:                        i.sendPackage,
		labelType:                          opt.Map(i.labelType, value.LabelType.String),
		labelTemplate:                      opt.Map(i.labelTemplate, value.LabelTemplate.String),
		archiveLabelTemplate:               opt.Map(i.archiveLabelTemplate, value.LabelTemplate.String),
		paperlessTradeEnabled:              i.paperlessTradeEnabled,
		paperlessTradeImage:                i.paperlessTradeImage,
	}
}

// ShipmentInfoBuilder collects ShipmentInfo fields. It is a value: every setter returns a new
// builder, so two chains branching from the same builder never see each other's fields.
// Validation happens in Build.
//
//	info, err := request.NewShipmentInfoBuilder(value.DropOffRegularPickup, "P", "USD", value.UnitSU).
//	    LabelType(value.LabelZPL).
//	    PackagesCount(2).
//	    Build()
type ShipmentInfoBuilder struct {
	dropOffType       string
	serviceType       string
	currency          string
	unitOfMeasurement string

	account                            opt.Option[string]
	billing                            opt.Option[Billing]
	specialServices                    opt.Option[Services]
	shipmentIdentificationNumber       opt.Option[string]
	useOwnShipmentIdentificationNumber opt.Option[string]
	packagesCount                      opt.Option[int]
	sendPackage                        opt.Option[string]
	labelType                          opt.Option[string]
	labelTemplate                      opt.Option[string]
	archiveLabelTemplate               opt.Option[string]
	paperlessTradeEnabled              opt.Option[bool]
	paperlessTradeImage                opt.Option[string]
}

// NewShipmentInfoBuilder starts a builder with the four mandatory fields.
func NewShipmentInfoBuilder(dropOffType, serviceType, currencyCode, unitOfMeasurement string) ShipmentInfoBuilder {
	return ShipmentInfoBuilder{
		dropOffType:       dropOffType,
		serviceType:       serviceType,
		currency:          currencyCode,
		unitOfMeasurement: unitOfMeasurement,
	}
}

// DropOffType replaces the drop-off type.
func (b ShipmentInfoBuilder) DropOffType(s string) ShipmentInfoBuilder {
	b.dropOffType = s
	return b
}

// ServiceType replaces the product code.
func (b ShipmentInfoBuilder) ServiceType(s string) ShipmentInfoBuilder {
	b.serviceType = s
	return b
}

// Currency replaces the currency code.
func (b ShipmentInfoBuilder) Currency(s string) ShipmentInfoBuilder {
	b.currency = s
	return b
}

// UnitOfMeasurement replaces the unit system.
func (b ShipmentInfoBuilder) UnitOfMeasurement(s string) ShipmentInfoBuilder {
	b.unitOfMeasurement = s
	return b
}

// Account sets the paying account.
func (b ShipmentInfoBuilder) Account(s string) ShipmentInfoBuilder {
	b.account = opt.Some(s)
	return b
}

// Billing sets the accounts charged for the shipment. billing must come from NewBilling.
func (b ShipmentInfoBuilder) Billing(billing Billing) ShipmentInfoBuilder {
	b.billing = opt.Some(billing)
	return b
}

// SpecialServices sets the value-added services. Each must come from NewService.
func (b ShipmentInfoBuilder) SpecialServices(services Services) ShipmentInfoBuilder {
	b.specialServices = opt.Some(services)
	return b
}

// ShipmentIdentificationNumber sets a caller-allocated waybill number.
func (b ShipmentInfoBuilder) ShipmentIdentificationNumber(s string) ShipmentInfoBuilder {
	b.shipmentIdentificationNumber = opt.Some(s)
	return b
}

// UseOwnShipmentIdentificationNumber sets the Y/N flag for ShipmentIdentificationNumber.
func (b ShipmentInfoBuilder) UseOwnShipmentIdentificationNumber(s string) ShipmentInfoBuilder {
	b.useOwnShipmentIdentificationNumber = opt.Some(s)
	return b
}

// PackagesCount sets the declared number of packages.
func (b ShipmentInfoBuilder) PackagesCount(n int) ShipmentInfoBuilder {
	b.packagesCount = opt.Some(n)
	return b
}

// SendPackage sets the SendPackage flag.
func (b ShipmentInfoBuilder) SendPackage(s string) ShipmentInfoBuilder {
	b.sendPackage = opt.Some(s)
	return b
}

// LabelType sets the label format: PDF, ZPL, EPL or LP2.
func (b ShipmentInfoBuilder) LabelType(s string) ShipmentInfoBuilder {
	b.labelType = opt.Some(s)
	return b
}

// LabelTemplate sets the label template name.
func (b ShipmentInfoBuilder) LabelTemplate(s string) ShipmentInfoBuilder {
	b.labelTemplate = opt.Some(s)
	return b
}

// ArchiveLabelTemplate sets the template of the archive copy.
func (b ShipmentInfoBuilder) ArchiveLabelTemplate(s string) ShipmentInfoBuilder {
	b.archiveLabelTemplate = opt.Some(s)
	return b
}

// PaperlessTradeEnabled sets whether customs documents are sent electronically.
func (b ShipmentInfoBuilder) PaperlessTradeEnabled(enabled bool) ShipmentInfoBuilder {
	b.paperlessTradeEnabled = opt.Some(enabled)
	return b
}

// PaperlessTradeImage sets the base64 encoded export document.
func (b ShipmentInfoBuilder) PaperlessTradeImage(base64Image string) ShipmentInfoBuilder {
	b.paperlessTradeImage = opt.Some(base64Image)
	return b
}

// Build validates every field and returns the frozen section. All violations are reported
// together.
func (b ShipmentInfoBuilder) Build() (ShipmentInfo, error) {
	var errs []error

	info := ShipmentInfo{
		dropOffType:       collect(value.NewDropOffType(b.dropOffType))(&errs),
		serviceType:       collect(value.NewServiceType(b.serviceType))(&errs),
		currency:          collect(value.NewCurrencyCode(b.currency))(&errs),
		unitOfMeasurement: collect(value.NewUnitOfMeasurement(b.unitOfMeasurement))(&errs),

		account:                            parseOpt(b.account, value.NewAccount, &errs),
		billing:                            b.billing,
		specialServices:                    b.specialServices,
		shipmentIdentificationNumber:       parseOpt(b.shipmentIdentificationNumber, value.NewShipmentIdentificationNumber, &errs),
		useOwnShipmentIdentificationNumber: parseOpt(b.useOwnShipmentIdentificationNumber, value.NewYesNo, &errs),
		packagesCount:                      b.packagesCount,
		sendPackage:                        b.sendPackage,
		labelType:                          parseOpt(b.labelType, value.NewLabelType, &errs),
		labelTemplate:                      parseOpt(b.labelTemplate, value.NewLabelTemplate, &errs),
		archiveLabelTemplate:               parseOpt(b.archiveLabelTemplate, value.NewLabelTemplate, &errs),
		paperlessTradeEnabled:              b.paperlessTradeEnabled,
		paperlessTradeImage:                b.paperlessTradeImage,
		guard:                              guard.New(),
	}
	if billing, ok := b.billing.Get(); ok {
		if err := billing.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if services, ok := b.specialServices.Get(); ok {
		if err := services.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return ShipmentInfo{}, joinErrs(errs)
	}
	return info, nil
}

func joinErrs(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}

// collect returns v and records err. Used to validate many fields in one struct literal.
func collect[T any](v T, err error) func(*[]error) T {
	return func(errs *[]error) T {
		if err != nil {
			*errs = append(*errs, err)
		}
		return v
	}
}

func parseOpt[T any](o opt.Option[string], parse func(string) (T, error), errs *[]error) opt.Option[T] {
	s, ok := o.Get()
	if !ok {
		return opt.None[T]()
	}
	v, err := parse(s)
	if err != nil {
		*errs = append(*errs, err)
		return opt.None[T]()
	}
	return opt.Some(v)
}

// apply runs functional options against target and joins their errors.
func apply[T any, O ~func(*T) error](target *T, opts []O) error {
	var errs []error
	for _, o := range opts {
		if err := o(target); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}
