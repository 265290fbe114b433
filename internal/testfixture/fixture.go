// Package testfixture builds valid request envelopes for tests.
package testfixture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

// ShipTime is the ship timestamp of every fixture request.
var ShipTime = time.Date(2026, 3, 2, 14, 30, 0, 0, time.FixedZone("CET", 3600))

// Builder returns a builder with the mandatory fields only.
func Builder() request.ShipmentInfoBuilder {
	return request.NewShipmentInfoBuilder(value.DropOffRequestCourier, "P", "EUR", value.UnitSI)
}

// ShipmentRequest builds a two-package request from b.
func ShipmentRequest(t testing.TB, b request.ShipmentInfoBuilder) *request.ShipmentRequest {
	t.Helper()

	info, err := b.Build()
	require.NoError(t, err)

	shipper := contactInfo(t, "Max Mustermann", "Hauptstraße 1", "Berlin", "10115", "DE")
	recipient := contactInfo(t, "Jane Doe", "1 Main St", "New York", "10001", "US")

	var packages []request.Package
	for i := 1; i <= 2; i++ {
		p, err := request.NewPackage(i, 1.5, "order-42",
			request.WithDimensions(request.Dimensions{Length: 20, Width: 15, Height: 10}))
		require.NoError(t, err)
		packages = append(packages, p)
	}

	detail, err := request.NewInternationalDetail("Books", value.ContentNonDocuments,
		request.WithCustomsValue(25.5), request.WithNumberOfPieces(2))
	require.NoError(t, err)

	ship, err := request.NewShip(shipper, recipient)
	require.NoError(t, err)

	req, err := request.NewShipmentRequest(info, ShipTime, "DAP",
		ship,
		packages,
		detail,
		request.WithPickupLocation("Reception"),
		request.WithPickupLocationCloseTime("17:00"),
	)
	require.NoError(t, err)
	return req
}

// DeleteRequest builds a delete request for the pickup dcn.
func DeleteRequest(t testing.TB, dcn string) *request.ShipmentDeleteRequest {
	t.Helper()
	req, err := request.NewShipmentDeleteRequest(ShipTime, "DE", dcn, "Max Mustermann", request.WithReason("001"))
	require.NoError(t, err)
	return req
}

// TrackingRequest asks for all checkpoints of awbs, shipment and pieces, with the delivery date.
func TrackingRequest(t testing.TB, awbs ...string) *request.TrackingRequest {
	t.Helper()
	msg, err := request.NewMessage(ShipTime, "0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	return request.NewTrackingRequest(msg, awbs, request.AllCheckPoints, request.PiecesBoth, true)
}

func contactInfo(t testing.TB, name, street, city, postal, country string) request.ContactInfo {
	t.Helper()
	c, err := request.NewContact(name, "Acme", "+49 30 1234567", request.WithEmailAddress("ops@acme.test"))
	require.NoError(t, err)
	a, err := request.NewAddress(street, city, postal, country)
	require.NoError(t, err)
	ci, err := request.NewContactInfo(c, a)
	require.NoError(t, err)
	return ci
}
