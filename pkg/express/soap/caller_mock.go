package soap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tournevent/dhlexpress/pkg/express/schema"
)

// MockCaller is a Caller returning canned replies, for tests.
type MockCaller struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCreateShipment func(ctx context.Context, in schema.ShipmentRequest) (schema.ShipmentResponse, error)
	OnDeleteShipment func(ctx context.Context, in schema.DeleteRequest) (schema.DeleteResponse, error)
	OnTrackShipment  func(ctx context.Context, in schema.TrackShipmentRequest) (schema.TrackShipmentResponse, error)

	mu    sync.Mutex
	calls []string
}

// NewMockCaller returns a MockCaller answering with canned replies.
func NewMockCaller() *MockCaller {
	return &MockCaller{}
}

// Calls returns the operations invoked so far.
func (m *MockCaller) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Call records operation and fills out with the hook reply or a canned one.
func (m *MockCaller) Call(ctx context.Context, operation string, in, out any) error {
	m.mu.Lock()
	m.calls = append(m.calls, operation)
	m.mu.Unlock()

	if m.SimulateLatency > 0 {
		select {
		case <-time.After(m.SimulateLatency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if m.SimulateErrors {
		return &Fault{Code: "soapenv:Server", String: "Simulated fault"}
	}

	switch operation {
	case OpCreateShipment:
		req, ok := in.(schema.ShipmentRequest)
		dst, okOut := out.(*schema.ShipmentResponse)
		if !ok || !okOut {
			return fmt.Errorf("%s: unexpected documents %T, %T", operation, in, out)
		}
		if m.OnCreateShipment != nil {
			resp, err := m.OnCreateShipment(ctx, req)
			*dst = resp
			return err
		}
		*dst = cannedShipmentResponse(req)

	case OpDeleteShipment:
		req, ok := in.(schema.DeleteRequest)
		dst, okOut := out.(*schema.DeleteResponse)
		if !ok || !okOut {
			return fmt.Errorf("%s: unexpected documents %T, %T", operation, in, out)
		}
		if m.OnDeleteShipment != nil {
			resp, err := m.OnDeleteShipment(ctx, req)
			*dst = resp
			return err
		}
		*dst = schema.DeleteResponse{
			ServiceInvocationID: uuid.NewString(),
			Notification:        []schema.Notification{{Code: 0, Message: "Successfully cancelled"}},
		}

	case OpTrackShipment:
		req, ok := in.(schema.TrackShipmentRequest)
		dst, okOut := out.(*schema.TrackShipmentResponse)
		if !ok || !okOut {
			return fmt.Errorf("%s: unexpected documents %T, %T", operation, in, out)
		}
		if m.OnTrackShipment != nil {
			resp, err := m.OnTrackShipment(ctx, req)
			*dst = resp
			return err
		}
		*dst = cannedTrackingResponse(req)

	default:
		return &Fault{Code: "soapenv:Client", String: "unknown operation " + operation}
	}
	return nil
}

func cannedShipmentResponse(req schema.ShipmentRequest) schema.ShipmentResponse {
	resp := schema.ShipmentResponse{
		Notification:                 []schema.Notification{{Code: 0}},
		ShipmentIdentificationNumber: "2807474290",
		LabelImage: []schema.LabelImage{{
			LabelImageFormat: "PDF",
			GraphicImage:     "JVBERi0xLjQ=",
		}},
	}
	if lt := req.RequestedShipment.ShipmentInfo.LabelType; lt != nil {
		resp.LabelImage[0].LabelImageFormat = *lt
	}
	for _, p := range req.RequestedShipment.Packages.RequestedPackages {
		resp.PackagesResult.PackageResult = append(resp.PackagesResult.PackageResult, schema.PackageResult{
			Number:         p.Number,
			TrackingNumber: fmt.Sprintf("JD0146000062812307%02d", p.Number),
		})
	}
	if req.RequestedShipment.ShipmentInfo.DropOffType == "REQUEST_COURIER" {
		resp.DispatchConfirmationNumber = "PRG200227000256"
	}
	return resp
}

func cannedTrackingResponse(req schema.TrackShipmentRequest) schema.TrackShipmentResponse {
	var resp schema.TrackShipmentResponse
	body := &resp.TrackingResponse.TrackingResponse
	for _, awb := range req.TrackingRequest.TrackingRequest.AWBNumber.ArrayOfAWBNumberItem {
		body.AWBInfo.ArrayOfAWBInfoItem = append(body.AWBInfo.ArrayOfAWBInfoItem, schema.AWBInfo{
			AWBNumber: awb,
			Status:    schema.Status{ActionStatus: "Success"},
			ShipmentInfo: &schema.TrackedShipment{ShipmentEvent: &schema.ShipmentEvents{
				ArrayOfShipmentEventItem: []schema.EventItem{{
					Date:         "2026-03-02",
					Time:         "14:30:00",
					ServiceEvent: schema.ServiceEvent{EventCode: "PU", Description: "Shipment picked up"},
					ServiceArea:  schema.ServiceArea{ServiceAreaCode: "BER"},
				}},
			}},
		})
	}
	return resp
}
