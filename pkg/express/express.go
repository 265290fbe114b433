// Package express defines the DHL Express service adapters.
//
// Callers depend on ShipmentServiceAdapter and TrackingServiceAdapter only. The soap, rest and
// mock packages provide interchangeable implementations; Registry selects one by name.
package express

import (
	"context"

	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/response"
)

// ShipmentServiceAdapter creates and deletes shipments.
//
// Both operations are a single synchronous exchange: the adapter does not cache, queue or
// retry. Failures are a *TransportError when the call could not complete or the endpoint
// returned a fault, and a *RequestValidationError when the request was rejected as invalid
// before or during transmission.
type ShipmentServiceAdapter interface {
	CreateShipment(ctx context.Context, req *request.ShipmentRequest) (*response.ShipmentResponse, error)
	DeleteShipment(ctx context.Context, req *request.ShipmentDeleteRequest) (*response.ShipmentDeleteResponse, error)
}

// TrackingServiceAdapter looks up the status of waybills.
type TrackingServiceAdapter interface {
	GetTrackingInformation(ctx context.Context, req *request.TrackingRequest) (*response.TrackingResponse, error)
}

// Transport is a named implementation of both adapters.
type Transport interface {
	// Name returns the transport identifier ("soap", "rest", "mock").
	Name() string

	ShipmentServiceAdapter
	TrackingServiceAdapter
}
