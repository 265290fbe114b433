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
	ErrBillingNotConstructed = errors.New("billing must be created via NewBilling")
	ErrServiceNotConstructed = errors.New("special service must be created via NewService")
)

// Billing names the accounts charged for transportation and duties.
type Billing struct {
	shipperAccountNumber value.Account
	shippingPaymentType  value.ShippingPaymentType
	billingAccountNumber opt.Option[value.Account]

	guard guard.Constructed
}

// BillingOption sets an optional Billing field.
type BillingOption func(*Billing) error

// WithBillingAccountNumber sets the account billed when the payment type is R or T.
func WithBillingAccountNumber(account string) BillingOption {
	return func(b *Billing) error {
		a, err := value.NewAccount(account)
		if err != nil {
			return err
		}
		b.billingAccountNumber = opt.Some(a)
		return nil
	}
}

// NewBilling validates the billing section.
func NewBilling(shipperAccountNumber, shippingPaymentType string, opts ...BillingOption) (Billing, error) {
	var errs []error
	b := Billing{
		shipperAccountNumber: collect(value.NewAccount(shipperAccountNumber))(&errs),
		shippingPaymentType:  collect(value.NewShippingPaymentType(shippingPaymentType))(&errs),
		guard:                guard.New(),
	}
	if err := apply(&b, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Billing{}, joinErrs(errs)
	}
	return b, nil
}

// Validate reports whether b was built by NewBilling.
func (b Billing) Validate() error {
	return b.guard.Validate(ErrBillingNotConstructed)
}

// ShipperAccountNumber returns the account of the shipper.
func (b Billing) ShipperAccountNumber() value.Account { return b.shipperAccountNumber }

// ShippingPaymentType returns who pays for transportation: S, R or T.
func (b Billing) ShippingPaymentType() value.ShippingPaymentType { return b.shippingPaymentType }

// BillingAccountNumber returns the account billed instead of the shipper, if any.
func (b Billing) BillingAccountNumber() opt.Option[value.Account] { return b.billingAccountNumber }

// Service is one value-added special service, e.g. "II" for insurance.
type Service struct {
	serviceType  value.SpecialServiceType
	serviceValue opt.Option[float64]
	currency     opt.Option[value.CurrencyCode]

	guard guard.Constructed
}

// ServiceOption sets an optional Service field.
type ServiceOption func(*Service) error

// WithServiceValue sets the monetary value attached to the service, such as the insured amount.
func WithServiceValue(amount float64, currencyCode string) ServiceOption {
	return func(s *Service) error {
		c, err := value.NewCurrencyCode(currencyCode)
		if err != nil {
			return err
		}
		s.serviceValue = opt.Some(amount)
		s.currency = opt.Some(c)
		return nil
	}
}

// NewService validates a special service code.
func NewService(serviceType string, opts ...ServiceOption) (Service, error) {
	var errs []error
	s := Service{
		serviceType: collect(value.NewSpecialServiceType(serviceType))(&errs),
		guard:       guard.New(),
	}
	if err := apply(&s, opts); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return Service{}, joinErrs(errs)
	}
	return s, nil
}

// Validate reports whether s was built by NewService.
func (s Service) Validate() error {
	return s.guard.Validate(ErrServiceNotConstructed)
}

// ServiceType returns the special service code.
func (s Service) ServiceType() value.SpecialServiceType { return s.serviceType }

// ServiceValue returns the declared amount, if any.
func (s Service) ServiceValue() opt.Option[float64] { return s.serviceValue }

// Currency returns the currency of ServiceValue.
func (s Service) Currency() opt.Option[value.CurrencyCode] { return s.currency }

// Services is an ordered list of special services.
type Services struct {
	items []Service
}

// NewServices keeps items in the given order. items is copied.
func NewServices(items ...Service) Services {
	return Services{items: cloneSlice(items)}
}

// Items returns a copy of the services in request order.
func (s Services) Items() []Service {
	return cloneSlice(s.items)
}

// Len returns the number of services.
func (s Services) Len() int {
	return len(s.items)
}

// Validate reports every service that was not built by NewService.
func (s Services) Validate() error {
	var errs []error
	for i, item := range s.items {
		if err := item.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("special service %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}
