package request_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

func baseBuilder() request.ShipmentInfoBuilder {
	return request.NewShipmentInfoBuilder(value.DropOffRegularPickup, "P", "USD", value.UnitSU)
}

func TestShipmentInfo_RequiredFieldsOnly(t *testing.T) {
	info, err := baseBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, "REGULAR_PICKUP", info.DropOffType().String())
	assert.Equal(t, "P", info.ServiceType().String())
	assert.Equal(t, "USD", info.Currency().String())
	assert.Equal(t, "SU", info.UnitOfMeasurement().String())

	assert.True(t, info.LabelTemplate().IsNone())
	assert.True(t, info.LabelType().IsNone())
	assert.True(t, info.ArchiveLabelTemplate().IsNone())
	assert.True(t, info.Account().IsNone())
	assert.True(t, info.Billing().IsNone())
	assert.True(t, info.SpecialServices().IsNone())
	assert.True(t, info.ShipmentIdentificationNumber().IsNone())
	assert.True(t, info.UseOwnShipmentIdentificationNumber().IsNone())
	assert.True(t, info.PackagesCount().IsNone())
	assert.True(t, info.SendPackage().IsNone())
	assert.True(t, info.PaperlessTradeEnabled().IsNone())
	assert.True(t, info.PaperlessTradeImage().IsNone())
	assert.NoError(t, info.Validate())
}

func TestShipmentInfo_OptionalRoundTrip(t *testing.T) {
	info, err := baseBuilder().
		LabelType(value.LabelZPL).
		LabelTemplate("8X4_thermal").
		Account("123456789").
		PackagesCount(2).
		PaperlessTradeEnabled(false).
		UseOwnShipmentIdentificationNumber(value.Yes).
		ShipmentIdentificationNumber("1234567890").
		Build()
	require.NoError(t, err)

	lt, ok := info.LabelType().Get()
	require.True(t, ok)
	assert.Equal(t, "ZPL", lt.String())

	tmpl, ok := info.LabelTemplate().Get()
	require.True(t, ok)
	assert.Equal(t, "8X4_thermal", tmpl.String())

	n, ok := info.PackagesCount().Get()
	require.True(t, ok)
	assert.Equal(t, 2, n)

	enabled, ok := info.PaperlessTradeEnabled().Get()
	require.True(t, ok)
	assert.False(t, enabled)

	awb, ok := info.ShipmentIdentificationNumber().Get()
	require.True(t, ok)
	assert.Equal(t, "1234567890", awb.String())
}

func TestShipmentInfoBuilder_BranchesAreIndependent(t *testing.T) {
	base := baseBuilder().Account("ACC1")

	zpl, err := base.LabelType(value.LabelZPL).Build()
	require.NoError(t, err)
	pdf, err := base.LabelType(value.LabelPDF).LabelTemplate("ECOM26_84_001").Build()
	require.NoError(t, err)
	plain, err := base.Build()
	require.NoError(t, err)

	assert.Equal(t, "ZPL", zpl.LabelType().OrElse(value.LabelType{}).String())
	assert.True(t, zpl.LabelTemplate().IsNone())
	assert.Equal(t, "PDF", pdf.LabelType().OrElse(value.LabelType{}).String())
	assert.True(t, plain.LabelType().IsNone())

	for _, info := range []request.ShipmentInfo{zpl, pdf, plain} {
		acc, ok := info.Account().Get()
		require.True(t, ok)
		assert.Equal(t, "ACC1", acc.String())
	}
}

func TestShipmentInfoBuilder_ReportsEveryViolation(t *testing.T) {
	_, err := request.NewShipmentInfoBuilder("DROP_BOX", "P", "US1", value.UnitSI).
		LabelTemplate(strings.Repeat("A", 21)).
		Build()
	require.Error(t, err)

	assert.ErrorIs(t, err, value.ErrUnknownCode)
	assert.ErrorIs(t, err, value.ErrInvalidCharacters)
	assert.ErrorIs(t, err, value.ErrFieldTooLong)
}

func TestShipmentInfo_ToBuilder(t *testing.T) {
	info, err := baseBuilder().LabelType(value.LabelEPL).Build()
	require.NoError(t, err)

	changed, err := info.ToBuilder().LabelType(value.LabelLP2).Build()
	require.NoError(t, err)

	assert.Equal(t, "EPL", info.LabelType().OrElse(value.LabelType{}).String())
	assert.Equal(t, "LP2", changed.LabelType().OrElse(value.LabelType{}).String())
	assert.Equal(t, info.Currency(), changed.Currency())
}

func TestShipmentInfo_ZeroValueIsRejected(t *testing.T) {
	var info request.ShipmentInfo
	assert.ErrorIs(t, info.Validate(), request.ErrShipmentInfoNotConstructed)
}

func TestTrackingRequest_EchoesInputs(t *testing.T) {
	msg := request.GenerateMessage(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	awbs := []string{"123", "456"}

	tr := request.NewTrackingRequest(msg, awbs, "ALL_CHECK_POINTS", "Y", true)

	assert.Equal(t, []string{"123", "456"}, tr.AWBNumbers())
	assert.Equal(t, "ALL_CHECK_POINTS", tr.LevelOfDetails())
	assert.Equal(t, "Y", tr.PiecesEnabled())
	assert.True(t, tr.EstimatedDeliveryDateRequested())
	assert.Equal(t, msg, tr.Message())
	assert.NoError(t, tr.Validate())
}

func TestTrackingRequest_CannotBeMutatedThroughSlices(t *testing.T) {
	awbs := []string{"123", "456"}
	tr := request.NewTrackingRequest(request.GenerateMessage(time.Now()), awbs, request.LastCheckPointOnly, request.PiecesShipment, false)

	awbs[0] = "999"
	out := tr.AWBNumbers()
	out[1] = "888"

	assert.Equal(t, []string{"123", "456"}, tr.AWBNumbers())
}

func TestTrackingRequest_EmptyAWBListIsAccepted(t *testing.T) {
	tr := request.NewTrackingRequest(request.GenerateMessage(time.Now()), nil, request.LastCheckPointOnly, request.PiecesShipment, false)
	assert.NoError(t, tr.Validate())
	assert.Empty(t, tr.AWBNumbers())
}

func TestGenerateMessage_Reference(t *testing.T) {
	a := request.GenerateMessage(time.Now())
	b := request.GenerateMessage(time.Now())

	assert.Len(t, a.MessageReference().String(), 32)
	assert.NotEqual(t, a.MessageReference(), b.MessageReference())
}

func TestNewMessage_TooLongReference(t *testing.T) {
	_, err := request.NewMessage(time.Now(), strings.Repeat("r", 33))
	assert.ErrorIs(t, err, value.ErrFieldTooLong)
}

func TestContactInfo_WithCopies(t *testing.T) {
	contact, err := request.NewContact("Jane Doe", "Acme", "+1 555 0100", request.WithEmailAddress("jane@acme.test"))
	require.NoError(t, err)
	addr, err := request.NewAddress("1 Main St", "Springfield", "12345", "US", request.WithStateOrProvinceCode("IL"))
	require.NoError(t, err)
	other, err := request.NewAddress("2 Side St", "Shelbyville", "54321", "US")
	require.NoError(t, err)

	ci, err := request.NewContactInfo(contact, addr)
	require.NoError(t, err)
	moved := ci.WithAddress(other)

	assert.Equal(t, "Springfield", ci.Address().City().String())
	assert.Equal(t, "Shelbyville", moved.Address().City().String())
	assert.Equal(t, "Jane Doe", moved.Contact().PersonName().String())

	email, ok := moved.Contact().EmailAddress().Get()
	require.True(t, ok)
	assert.Equal(t, "jane@acme.test", email.String())
}

func TestNewAddress_Errors(t *testing.T) {
	_, err := request.NewAddress("1 Main St", "Springfield", "12345", "USA",
		request.WithStreetNumber(strings.Repeat("9", 16)))
	require.Error(t, err)
	assert.ErrorIs(t, err, value.ErrFieldTooLong)
	assert.Contains(t, err.Error(), "CountryCode")
	assert.Contains(t, err.Error(), "StreetNumber")
}

func TestShip_Buyer(t *testing.T) {
	ci := sampleContactInfo(t, "Shipper")
	ship, err := request.NewShip(ci, sampleContactInfo(t, "Recipient"))
	require.NoError(t, err)
	assert.True(t, ship.Buyer().IsNone())

	withBuyer := ship.WithBuyer(sampleContactInfo(t, "Buyer"))
	assert.True(t, ship.Buyer().IsNone())
	buyer, ok := withBuyer.Buyer().Get()
	require.True(t, ok)
	assert.Equal(t, "Buyer", buyer.Contact().PersonName().String())
}

func TestNewBilling(t *testing.T) {
	b, err := request.NewBilling("123456789", value.PaymentReceiver, request.WithBillingAccountNumber("987654321"))
	require.NoError(t, err)
	assert.Equal(t, "R", b.ShippingPaymentType().String())
	assert.True(t, b.BillingAccountNumber().IsSome())

	_, err = request.NewBilling("123456789", "X")
	assert.ErrorIs(t, err, value.ErrUnknownCode)
}

func TestServices_ItemsAreCopied(t *testing.T) {
	insurance, err := request.NewService("II", request.WithServiceValue(100, "USD"))
	require.NoError(t, err)

	services := request.NewServices(insurance)
	items := services.Items()
	items[0] = request.Service{}

	assert.Equal(t, 1, services.Len())
	assert.Equal(t, "II", services.Items()[0].ServiceType().String())
	amount, ok := services.Items()[0].ServiceValue().Get()
	require.True(t, ok)
	assert.InDelta(t, 100.0, amount, 0.001)
}

func TestNewPackage(t *testing.T) {
	p, err := request.NewPackage(1, 2.5, "order-1", request.WithDimensions(request.Dimensions{Length: 10, Width: 5, Height: 3}))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number())
	assert.True(t, p.Dimensions().IsSome())

	_, err = request.NewPackage(0, 1, "order-1")
	assert.Error(t, err)
}

func TestNewShipmentRequest(t *testing.T) {
	info, err := baseBuilder().Build()
	require.NoError(t, err)

	req, err := request.NewShipmentRequest(
		info,
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		"DAP",
		sampleShip(t),
		[]request.Package{samplePackage(t)},
		sampleInternationalDetail(t),
		request.WithPickupLocation("front desk"),
		request.WithPickupLocationCloseTime("17:00"),
	)
	require.NoError(t, err)

	assert.NoError(t, req.Validate())
	assert.Equal(t, "DAP", req.PaymentInfo().String())
	assert.Len(t, req.Packages(), 1)
	assert.True(t, req.SpecialPickupInstruction().IsNone())
	loc, ok := req.PickupLocation().Get()
	require.True(t, ok)
	assert.Equal(t, "front desk", loc.String())
}

func TestNewShipmentRequest_RejectsUnbuiltInfo(t *testing.T) {
	_, err := request.NewShipmentRequest(
		request.ShipmentInfo{},
		time.Now(),
		"DAP",
		sampleShip(t),
		[]request.Package{samplePackage(t)},
		sampleInternationalDetail(t),
	)
	assert.ErrorIs(t, err, request.ErrShipmentInfoNotConstructed)
}

func TestZeroValueEnvelopesAreRejected(t *testing.T) {
	assert.ErrorIs(t, (&request.ShipmentRequest{}).Validate(), request.ErrShipmentRequestNotConstructed)
	assert.ErrorIs(t, (&request.ShipmentDeleteRequest{}).Validate(), request.ErrDeleteRequestNotConstructed)
	assert.ErrorIs(t, (&request.TrackingRequest{}).Validate(), request.ErrTrackingRequestNotConstructed)

	var nilReq *request.ShipmentRequest
	assert.ErrorIs(t, nilReq.Validate(), request.ErrShipmentRequestNotConstructed)
}

func TestZeroValueSectionsAreRejected(t *testing.T) {
	assert.ErrorIs(t, request.Billing{}.Validate(), request.ErrBillingNotConstructed)
	assert.ErrorIs(t, request.Service{}.Validate(), request.ErrServiceNotConstructed)
	assert.ErrorIs(t, request.Contact{}.Validate(), request.ErrContactNotConstructed)
	assert.ErrorIs(t, request.Address{}.Validate(), request.ErrAddressNotConstructed)
	assert.ErrorIs(t, request.ContactInfo{}.Validate(), request.ErrContactInfoNotConstructed)
	assert.ErrorIs(t, request.Ship{}.Validate(), request.ErrShipNotConstructed)
	assert.ErrorIs(t, request.Package{}.Validate(), request.ErrPackageNotConstructed)
	assert.ErrorIs(t, request.InternationalDetail{}.Validate(), request.ErrInternationalDetailNotConstructed)

	assert.NoError(t, samplePackage(t).Validate())
	assert.NoError(t, sampleShip(t).Validate())
	assert.NoError(t, request.Services{}.Validate())
}

func TestNewContactInfo_RejectsZeroParts(t *testing.T) {
	c, err := request.NewContact("Jane Doe", "Acme", "+1 555 0100")
	require.NoError(t, err)
	a, err := request.NewAddress("1 Main St", "Springfield", "12345", "US")
	require.NoError(t, err)

	_, err = request.NewContactInfo(request.Contact{}, a)
	assert.ErrorIs(t, err, request.ErrContactNotConstructed)

	_, err = request.NewContactInfo(c, request.Address{})
	assert.ErrorIs(t, err, request.ErrAddressNotConstructed)
}

func TestNewShip_RejectsZeroParties(t *testing.T) {
	_, err := request.NewShip(request.ContactInfo{}, sampleContactInfo(t, "B"))
	require.Error(t, err)
	assert.ErrorIs(t, err, request.ErrContactInfoNotConstructed)
	assert.Contains(t, err.Error(), "shipper")

	_, err = request.NewShip(sampleContactInfo(t, "A"), request.ContactInfo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient")
}

func TestShip_ZeroBuyerIsRejected(t *testing.T) {
	ship := sampleShip(t).WithBuyer(request.ContactInfo{})
	err := ship.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, request.ErrContactInfoNotConstructed)
	assert.Contains(t, err.Error(), "buyer")
}

func TestShipmentInfoBuilder_RejectsZeroBillingAndServices(t *testing.T) {
	_, err := baseBuilder().Billing(request.Billing{}).Build()
	assert.ErrorIs(t, err, request.ErrBillingNotConstructed)

	insurance, err := request.NewService("II")
	require.NoError(t, err)
	_, err = baseBuilder().SpecialServices(request.NewServices(insurance, request.Service{})).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, request.ErrServiceNotConstructed)
	assert.Contains(t, err.Error(), "special service 2")

	billing, err := request.NewBilling("123456789", value.PaymentShipper)
	require.NoError(t, err)
	info, err := baseBuilder().Billing(billing).SpecialServices(request.NewServices(insurance)).Build()
	require.NoError(t, err)
	assert.True(t, info.Billing().IsSome())
}

func TestNewShipmentRequest_RejectsZeroSections(t *testing.T) {
	info, err := baseBuilder().Build()
	require.NoError(t, err)

	_, err = request.NewShipmentRequest(info, time.Now(), "DAP",
		request.Ship{},
		[]request.Package{samplePackage(t), {}},
		request.InternationalDetail{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, request.ErrShipNotConstructed)
	assert.ErrorIs(t, err, request.ErrPackageNotConstructed)
	assert.ErrorIs(t, err, request.ErrInternationalDetailNotConstructed)
	assert.Contains(t, err.Error(), "package 2")
}

func TestNewShipmentRequest_RequiresPackages(t *testing.T) {
	info, err := baseBuilder().Build()
	require.NoError(t, err)

	_, err = request.NewShipmentRequest(info, time.Now(), "DAP", sampleShip(t), nil, sampleInternationalDetail(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one package")
}

func TestNewShipmentDeleteRequest(t *testing.T) {
	del, err := request.NewShipmentDeleteRequest(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "DE", "PRG200227000256", "Jane Doe", request.WithReason("006"))
	require.NoError(t, err)
	assert.NoError(t, del.Validate())
	assert.Equal(t, "006", del.Reason().OrElse(value.DeleteReason{}).String())

	_, err = request.NewShipmentDeleteRequest(time.Now(), "DE", "PRG200227000256", "Jane Doe", request.WithReason("010"))
	assert.ErrorIs(t, err, value.ErrUnknownCode)
}

func sampleContactInfo(t *testing.T, name string) request.ContactInfo {
	t.Helper()
	c, err := request.NewContact(name, "Acme", "+49 30 1234")
	require.NoError(t, err)
	a, err := request.NewAddress("Hauptstraße 1", "Berlin", "10115", "DE")
	require.NoError(t, err)
	ci, err := request.NewContactInfo(c, a)
	require.NoError(t, err)
	return ci
}

func sampleShip(t *testing.T) request.Ship {
	t.Helper()
	ship, err := request.NewShip(sampleContactInfo(t, "A"), sampleContactInfo(t, "B"))
	require.NoError(t, err)
	return ship
}

func samplePackage(t *testing.T) request.Package {
	t.Helper()
	p, err := request.NewPackage(1, 1.5, "ref-1")
	require.NoError(t, err)
	return p
}

func sampleInternationalDetail(t *testing.T) request.InternationalDetail {
	t.Helper()
	d, err := request.NewInternationalDetail("Books", value.ContentNonDocuments, request.WithCustomsValue(25))
	require.NoError(t, err)
	return d
}
