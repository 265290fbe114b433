package request

import (
	"errors"
	"fmt"
	"time"

	"github.com/tournevent/dhlexpress/internal/guard"
	"github.com/tournevent/dhlexpress/pkg/express/opt"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

// Errors returned by Validate for values not built by their constructor.
var (
	ErrShipmentRequestNotConstructed = errors.New("shipment request must be created via NewShipmentRequest")
	ErrDeleteRequestNotConstructed   = errors.New("shipment delete request must be created via NewShipmentDeleteRequest")
)

// ShipmentRequest is the envelope of a create shipment call.
type ShipmentRequest struct {
	shipmentInfo             ShipmentInfo
	shipTimestamp            time.Time
	paymentInfo              value.PaymentInfo
	ship                     Ship
	packages                 []Package
	internationalDetail      InternationalDetail
	pickupLocation           opt.Option[value.PickupLocation]
	pickupLocationCloseTime  opt.Option[value.PickupLocationCloseTime]
	specialPickupInstruction opt.Option[value.SpecialPickupInstruction]

	guard guard.Constructed
}

// ShipmentRequestOption sets an optional ShipmentRequest field.
type ShipmentRequestOption func(*ShipmentRequest) error

// WithPickupLocation sets where the courier collects the packages.
func WithPickupLocation(location string) ShipmentRequestOption {
	return func(r *ShipmentRequest) error {
		l, err := value.NewPickupLocation(location)
		if err != nil {
			return err
		}
		r.pickupLocation = opt.Some(l)
		return nil
	}
}

// WithPickupLocationCloseTime sets the latest pickup time at the location, formatted HH:MM.
func WithPickupLocationCloseTime(closeTime string) ShipmentRequestOption {
	return func(r *ShipmentRequest) error {
		t, err := value.NewPickupLocationCloseTime(closeTime)
		if err != nil {
			return err
		}
		r.pickupLocationCloseTime = opt.Some(t)
		return nil
	}
}

// WithSpecialPickupInstruction sets a note for the courier.
func WithSpecialPickupInstruction(instruction string) ShipmentRequestOption {
	return func(r *ShipmentRequest) error {
		i, err := value.NewSpecialPickupInstruction(instruction)
		if err != nil {
			return err
		}
		r.specialPickupInstruction = opt.Some(i)
		return nil
	}
}

// NewShipmentRequest assembles a create shipment envelope. info must come from
// ShipmentInfoBuilder.Build and every section from its constructor. The packages
// slice is copied.
func NewShipmentRequest(
	info ShipmentInfo,
	shipTimestamp time.Time,
	paymentInfo string,
	ship Ship,
	packages []Package,
	internationalDetail InternationalDetail,
	opts ...ShipmentRequestOption,
) (*ShipmentRequest, error) {
	var errs []error
	if err := info.Validate(); err != nil {
		errs = append(errs, err)
	}
	if shipTimestamp.IsZero() {
		errs = append(errs, errors.New("ship timestamp is required"))
	}
	if err := ship.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(packages) == 0 {
		errs = append(errs, errors.New("at least one package is required"))
	}
	for i, p := range packages {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("package %d: %w", i+1, err))
		}
	}
	if err := internationalDetail.Validate(); err != nil {
		errs = append(errs, err)
	}

	r := &ShipmentRequest{
		shipmentInfo:        info,
		shipTimestamp:       shipTimestamp,
		paymentInfo:         collect(value.NewPaymentInfo(paymentInfo))(&errs),
		ship:                ship,
		packages:            cloneSlice(packages),
		internationalDetail: internationalDetail,
		guard:               guard.New(),
	}
	if err := apply(r, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, joinErrs(errs)
	}
	return r, nil
}

// Validate reports whether r was built by NewShipmentRequest.
func (r *ShipmentRequest) Validate() error {
	if r == nil {
		return ErrShipmentRequestNotConstructed
	}
	return r.guard.Validate(ErrShipmentRequestNotConstructed)
}

// ShipmentInfo returns the general shipment detail section.
func (r *ShipmentRequest) ShipmentInfo() ShipmentInfo { return r.shipmentInfo }

// ShipTimestamp returns when the shipment is ready for pickup.
func (r *ShipmentRequest) ShipTimestamp() time.Time { return r.shipTimestamp }

// PaymentInfo returns the incoterm of the shipment.
func (r *ShipmentRequest) PaymentInfo() value.PaymentInfo { return r.paymentInfo }

// Ship returns the parties of the shipment.
func (r *ShipmentRequest) Ship() Ship { return r.ship }

// Packages returns a copy of the pieces in request order.
func (r *ShipmentRequest) Packages() []Package { return cloneSlice(r.packages) }

// InternationalDetail returns the customs section.
func (r *ShipmentRequest) InternationalDetail() InternationalDetail { return r.internationalDetail }

// PickupLocation returns where the courier collects the packages, if set.
func (r *ShipmentRequest) PickupLocation() opt.Option[value.PickupLocation] {
	return r.pickupLocation
}

// PickupLocationCloseTime returns the latest pickup time, if set.
func (r *ShipmentRequest) PickupLocationCloseTime() opt.Option[value.PickupLocationCloseTime] {
	return r.pickupLocationCloseTime
}

// SpecialPickupInstruction returns the note for the courier, if set.
func (r *ShipmentRequest) SpecialPickupInstruction() opt.Option[value.SpecialPickupInstruction] {
	return r.specialPickupInstruction
}

// ShipmentDeleteRequest cancels the courier pickup booked by a previous create call.
type ShipmentDeleteRequest struct {
	pickupDate                 time.Time
	pickupCountry              value.CountryCode
	dispatchConfirmationNumber value.DispatchConfirmationNumber
	requestorName              value.RequestorName
	reason                     opt.Option[value.DeleteReason]

	guard guard.Constructed
}

// ShipmentDeleteOption sets an optional ShipmentDeleteRequest field.
type ShipmentDeleteOption func(*ShipmentDeleteRequest) error

// WithReason sets the cancellation reason code, "001" to "008".
func WithReason(code string) ShipmentDeleteOption {
	return func(r *ShipmentDeleteRequest) error {
		c, err := value.NewDeleteReason(code)
		if err != nil {
			return err
		}
		r.reason = opt.Some(c)
		return nil
	}
}

// NewShipmentDeleteRequest assembles the envelope cancelling the pickup identified by
// dispatchConfirmationNumber.
func NewShipmentDeleteRequest(
	pickupDate time.Time,
	pickupCountry string,
	dispatchConfirmationNumber string,
	requestorName string,
	opts ...ShipmentDeleteOption,
) (*ShipmentDeleteRequest, error) {
	var errs []error
	if pickupDate.IsZero() {
		errs = append(errs, errors.New("pickup date is required"))
	}

	r := &ShipmentDeleteRequest{
		pickupDate:                 pickupDate,
		pickupCountry:              collect(value.NewCountryCode(pickupCountry))(&errs),
		dispatchConfirmationNumber: collect(value.NewDispatchConfirmationNumber(dispatchConfirmationNumber))(&errs),
		requestorName:              collect(value.NewRequestorName(requestorName))(&errs),
		guard:                      guard.New(),
	}
	if err := apply(r, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, joinErrs(errs)
	}
	return r, nil
}

// Validate reports whether r was built by NewShipmentDeleteRequest.
func (r *ShipmentDeleteRequest) Validate() error {
	if r == nil {
		return ErrDeleteRequestNotConstructed
	}
	return r.guard.Validate(ErrDeleteRequestNotConstructed)
}

// PickupDate returns the day the pickup was booked for.
func (r *ShipmentDeleteRequest) PickupDate() time.Time { return r.pickupDate }

// PickupCountry returns the country of the pickup.
func (r *ShipmentDeleteRequest) PickupCountry() value.CountryCode { return r.pickupCountry }

// DispatchConfirmationNumber returns the pickup to cancel.
func (r *ShipmentDeleteRequest) DispatchConfirmationNumber() value.DispatchConfirmationNumber {
	return r.dispatchConfirmationNumber
}

// RequestorName returns who asked for the cancellation.
func (r *ShipmentDeleteRequest) RequestorName() value.RequestorName { return r.requestorName }

// Reason returns the cancellation reason code, if set.
func (r *ShipmentDeleteRequest) Reason() opt.Option[value.DeleteReason] { return r.reason }
