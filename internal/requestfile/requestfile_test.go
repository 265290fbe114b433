package requestfile_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tournevent/dhlexpress/internal/requestfile"
	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

func TestLoad_Shipment(t *testing.T) {
	f, err := requestfile.Load("testdata/shipment.yaml")
	require.NoError(t, err)
	assert.Equal(t, requestfile.KindShipment, f.Kind)

	req, err := f.ShipmentRequest()
	require.NoError(t, err)
	require.NoError(t, req.Validate())

	info := req.ShipmentInfo()
	assert.Equal(t, "REQUEST_COURIER", info.DropOffType().String())
	assert.Equal(t, "950000002", info.Account().OrElse(value.Account{}).String())
	assert.True(t, info.LabelType().IsSome())
	assert.True(t, info.LabelTemplate().IsNone())
	assert.Equal(t, 1, info.SpecialServices().OrElse(request.Services{}).Len())

	assert.Equal(t, time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC), req.ShipTimestamp().UTC())
	assert.Len(t, req.Packages(), 1)
	assert.True(t, req.Packages()[0].Dimensions().IsSome())
	assert.True(t, req.PickupLocation().IsSome())
	assert.True(t, req.SpecialPickupInstruction().IsNone())

	recipient := req.Ship().Recipient().Address()
	assert.Equal(t, "US", recipient.CountryCode().String())
	assert.True(t, recipient.StateOrProvinceCode().IsSome())
	assert.True(t, req.Ship().Buyer().IsNone())
}

func TestLoad_Delete(t *testing.T) {
	f, err := requestfile.Load("testdata/delete.yaml")
	require.NoError(t, err)

	req, err := f.DeleteRequest()
	require.NoError(t, err)
	assert.Equal(t, "PRG200227000256", req.DispatchConfirmationNumber().String())
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), req.PickupDate())
	assert.True(t, req.Reason().IsSome())
}

func TestLoad_Tracking(t *testing.T) {
	f, err := requestfile.Load("testdata/tracking.yaml")
	require.NoError(t, err)

	now := time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)
	req, err := f.TrackingRequest(now)
	require.NoError(t, err)
	assert.Equal(t, []string{"2807474290"}, req.AWBNumbers())
	assert.Equal(t, request.PiecesBoth, req.PiecesEnabled())
	assert.True(t, req.EstimatedDeliveryDateRequested())
	assert.Equal(t, "0123456789abcdef0123456789abcdef", req.Message().MessageReference().String())
	assert.Equal(t, now, req.Message().MessageTime())
}

func TestTracking_Defaults(t *testing.T) {
	f, err := requestfile.Parse([]byte("kind: tracking\ntracking:\n  awb_numbers: [\"1\"]\n"))
	require.NoError(t, err)

	req, err := f.TrackingRequest(time.Now())
	require.NoError(t, err)
	assert.Equal(t, request.AllCheckPoints, req.LevelOfDetails())
	assert.Equal(t, request.PiecesShipment, req.PiecesEnabled())
	assert.Len(t, req.Message().MessageReference().String(), 32)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty document"},
		{"unknown kind", "kind: quote\n", "unknown kind"},
		{"missing section", "kind: delete\n", "requires a delete section"},
		{"unknown field", "kind: tracking\ntracking:\n  awbs: [\"1\"]\n", "field awbs not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := requestfile.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFile_KindMismatch(t *testing.T) {
	f, err := requestfile.Load("testdata/delete.yaml")
	require.NoError(t, err)

	_, err = f.ShipmentRequest()
	assert.ErrorIs(t, err, requestfile.ErrKindMismatch)
	_, err = f.TrackingRequest(time.Now())
	assert.ErrorIs(t, err, requestfile.ErrKindMismatch)
}

func TestShipment_ReportsEveryViolation(t *testing.T) {
	doc := `kind: shipment
shipment:
  info:
    drop_off_type: SOMETIMES
    service_type: P
    currency: EUR
    unit_of_measurement: SI
  ship_timestamp: "2026-03-02T14:30:00+01:00"
  payment_info: DAP
  shipper:
    contact: {person_name: A, company_name: B, phone_number: "1"}
    address: {street_lines: S, city: C, postal_code: "1", country_code: DEU}
  recipient:
    contact: {person_name: A, company_name: B, phone_number: "1"}
    address: {street_lines: S, city: C, postal_code: "1", country_code: US}
  packages:
    - {number: 1, weight: 1, customer_reference: r}
  international_detail: {description: d, content: NON_DOCUMENTS}
`
	f, err := requestfile.Parse([]byte(doc))
	require.NoError(t, err)

	_, err = f.ShipmentRequest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DropOffType")
	assert.Contains(t, err.Error(), "CountryCode")
}
