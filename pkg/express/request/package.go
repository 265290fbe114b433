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
	ErrPackageNotConstructed             = errors.New("package must be created via NewPackage")
	ErrInternationalDetailNotConstructed = errors.New("international detail must be created via NewInternationalDetail")
)

// Dimensions of a package in the unit of measurement chosen in ShipmentInfo.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Package is one piece of a shipment.
type Package struct {
	number            int
	weight            float64
	dimensions        opt.Option[Dimensions]
	customerReference value.CustomerReference

	guard guard.Constructed
}

// PackageOption sets an optional Package field.
type PackageOption func(*Package) error

// WithDimensions sets the package dimensions.
func WithDimensions(d Dimensions) PackageOption {
	return func(p *Package) error {
		p.dimensions = opt.Some(d)
		return nil
	}
}

// NewPackage validates one piece. number is the 1-based position of the piece in the shipment.
func NewPackage(number int, weight float64, customerReference string, opts ...PackageOption) (Package, error) {
	var errs []error
	if number < 1 {
		errs = append(errs, fmt.Errorf("package number must be at least 1, got %d", number))
	}
	p := Package{
		number:            number,
		weight:            weight,
		customerReference: collect(value.NewCustomerReference(customerReference))(&errs),
		guard:             guard.New(),
	}
	if err := apply(&p, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Package{}, joinErrs(errs)
	}
	return p, nil
}

// Validate reports whether p was built by NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageNotConstructed)
}

// Number returns the 1-based position of the piece.
func (p Package) Number() int { return p.number }

// Weight returns the weight in the unit system of the shipment.
func (p Package) Weight() float64 { return p.weight }

// Dimensions returns the package dimensions, if any.
func (p Package) Dimensions() opt.Option[Dimensions] { return p.dimensions }

// CustomerReference returns the reference printed on the label.
func (p Package) CustomerReference() value.CustomerReference { return p.customerReference }

// InternationalDetail carries the customs declaration of a shipment.
type InternationalDetail struct {
	description    value.Description
	content        value.Content
	numberOfPieces opt.Option[int]
	customsValue   opt.Option[float64]

	guard guard.Constructed
}

// InternationalDetailOption sets an optional InternationalDetail field.
type InternationalDetailOption func(*InternationalDetail) error

// WithNumberOfPieces sets the number of pieces declared to customs.
func WithNumberOfPieces(n int) InternationalDetailOption {
	return func(d *InternationalDetail) error {
		d.numberOfPieces = opt.Some(n)
		return nil
	}
}

// WithCustomsValue sets the declared value, in the ShipmentInfo currency.
func WithCustomsValue(v float64) InternationalDetailOption {
	return func(d *InternationalDetail) error {
		d.customsValue = opt.Some(v)
		return nil
	}
}

// NewInternationalDetail validates the commodities description and the content code.
func NewInternationalDetail(description, content string, opts ...InternationalDetailOption) (InternationalDetail, error) {
	var errs []error
	d := InternationalDetail{
		description: collect(value.NewDescription(description))(&errs),
		content:     collect(value.NewContent(content))(&errs),
		guard:       guard.New(),
	}
	if err := apply(&d, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return InternationalDetail{}, joinErrs(errs)
	}
	return d, nil
}

// Validate reports whether d was built by NewInternationalDetail.
func (d InternationalDetail) Validate() error {
	return d.guard.Validate(ErrInternationalDetailNotConstructed)
}

// Description returns the commodities description.
func (d InternationalDetail) Description() value.Description { return d.description }

// Content returns DOCUMENTS or NON_DOCUMENTS.
func (d InternationalDetail) Content() value.Content { return d.content }

// NumberOfPieces returns the pieces declared to customs, if any.
func (d InternationalDetail) NumberOfPieces() opt.Option[int] { return d.numberOfPieces }

// CustomsValue returns the declared customs value, if any.
func (d InternationalDetail) CustomsValue() opt.Option[float64] { return d.customsValue }
