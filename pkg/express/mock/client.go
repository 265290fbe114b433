// Package mock provides an in-memory DHL Express transport for tests and local runs.
//
// Created shipments are remembered, so a later tracking call returns their checkpoints and a
// delete call cancels their pickup.
package mock

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tournevent/dhlexpress/pkg/express"
	"github.com/tournevent/dhlexpress/pkg/express/opt"
	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/response"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

// Name is the default transport name.
const Name = "mock"

// Tracking action statuses.
const (
	StatusSuccess  = "Success"
	StatusNotFound = "No Shipments Found"
)

const (
	// NotFoundCode is the notification code for an unknown dispatch confirmation number.
	NotFoundCode     = 1001
	CancelledMessage = "Pickup cancelled"
	LabelContents    = "%PDF-1.4 mock dhl express label"
)

// Client is an in-memory transport.
type Client struct {
	name string

	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCreateShipment         func(ctx context.Context, req *request.ShipmentRequest) (*response.ShipmentResponse, error)
	OnDeleteShipment         func(ctx context.Context, req *request.ShipmentDeleteRequest) (*response.ShipmentDeleteResponse, error)
	OnGetTrackingInformation func(ctx context.Context, req *request.TrackingRequest) (*response.TrackingResponse, error)

	mu        sync.Mutex
	shipments map[string]*shipment // by AWB
	pickups   map[string]string    // dispatch confirmation number -> AWB
	seq       int
	now       func() time.Time
}

type shipment struct {
	awb           string
	createdAt     time.Time
	licensePlates []string
	cancelled     bool
}

// New creates a mock transport registered under name.
func New(name string) *Client {
	return &Client{
		name:      name,
		shipments: make(map[string]*shipment),
		pickups:   make(map[string]string),
		now:       time.Now,
	}
}

// Name returns the name the transport is registered under.
func (c *Client) Name() string {
	return c.name
}

// CreateShipment books an in-memory shipment and returns a placeholder label.
func (c *Client) CreateShipment(ctx context.Context, req *request.ShipmentRequest) (*response.ShipmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, express.NewRequestValidationError(express.OpCreateShipment, err)
	}
	if err := c.simulate(ctx, express.OpCreateShipment); err != nil {
		return nil, err
	}
	if c.OnCreateShipment != nil {
		resp, err := c.OnCreateShipment(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		if err := express.CheckNotifications(express.OpCreateShipment, resp.Notifications); err != nil {
			return nil, err
		}
		return resp, nil
	}

	info := req.ShipmentInfo()

	c.mu.Lock()
	defer c.mu.Unlock()

	awb := generateDigits(10)
	if own, ok := info.UseOwnShipmentIdentificationNumber().Get(); ok && own.String() == value.Yes {
		if n, ok := info.ShipmentIdentificationNumber().Get(); ok {
			awb = n.String()
		}
	}

	s := &shipment{awb: awb, createdAt: c.now()}
	resp := &response.ShipmentResponse{
		Notifications:                []response.Notification{{Code: 0}},
		ShipmentIdentificationNumber: awb,
	}

	for _, p := range req.Packages() {
		plate := "JD01" + generateDigits(16)
		s.licensePlates = append(s.licensePlates, plate)
		resp.PackagesResult = append(resp.PackagesResult, response.PackageResult{
			Number:         p.Number(),
			TrackingNumber: plate,
		})
	}

	if info.DropOffType().String() == value.DropOffRequestCourier {
		c.seq++
		dcn := fmt.Sprintf("PRG%s%06d", s.createdAt.Format("060102"), c.seq)
		c.pickups[dcn] = awb
		resp.DispatchConfirmationNumber = dcn
	}

	// The carrier labels in PDF unless asked otherwise.
	format := value.LabelPDF
	if lt, ok := info.LabelType().Get(); ok {
		format = lt.String()
	}
	resp.LabelImages = []response.LabelImage{{Format: format, Data: []byte(LabelContents)}}

	c.shipments[awb] = s
	return resp, nil
}

// DeleteShipment cancels a pickup booked by CreateShipment.
func (c *Client) DeleteShipment(ctx context.Context, req *request.ShipmentDeleteRequest) (*response.ShipmentDeleteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, express.NewRequestValidationError(express.OpDeleteShipment, err)
	}
	if err := c.simulate(ctx, express.OpDeleteShipment); err != nil {
		return nil, err
	}
	if c.OnDeleteShipment != nil {
		resp, err := c.OnDeleteShipment(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		if err := express.CheckNotifications(express.OpDeleteShipment, resp.Notifications); err != nil {
			return nil, err
		}
		return resp, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dcn := req.DispatchConfirmationNumber().String()
	awb, ok := c.pickups[dcn]
	if !ok {
		return nil, express.RejectedByCarrier(express.OpDeleteShipment, []response.Notification{{
			Code:    NotFoundCode,
			Message: fmt.Sprintf("dispatch confirmation number %s not found", dcn),
		}})
	}
	delete(c.pickups, dcn)
	c.shipments[awb].cancelled = true

	return &response.ShipmentDeleteResponse{
		ServiceInvocationID: uuid.NewString(),
		Notifications:       []response.Notification{{Code: 0, Message: CancelledMessage}},
	}, nil
}

// GetTrackingInformation reports the shipments booked by CreateShipment.
func (c *Client) GetTrackingInformation(ctx context.Context, req *request.TrackingRequest) (*response.TrackingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, express.NewRequestValidationError(express.OpTrackShipment, err)
	}
	if err := c.simulate(ctx, express.OpTrackShipment); err != nil {
		return nil, err
	}
	if c.OnGetTrackingInformation != nil {
		resp, err := c.OnGetTrackingInformation(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		if err := express.CheckNotifications(express.OpTrackShipment, resp.Notifications); err != nil {
			return nil, err
		}
		return resp, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	resp := &response.TrackingResponse{}
	for _, awb := range req.AWBNumbers() {
		s, ok := c.shipments[awb]
		if !ok {
			resp.AWBs = append(resp.AWBs, response.AWBInfo{AWBNumber: awb, Status: StatusNotFound})
			continue
		}
		resp.AWBs = append(resp.AWBs, c.trackingInfo(s, req))
	}
	return resp, nil
}

func (c *Client) trackingInfo(s *shipment, req *request.TrackingRequest) response.AWBInfo {
	events := []response.Event{{
		Timestamp:   s.createdAt,
		Code:        "PU",
		Description: "Shipment picked up",
		ServiceArea: "MOCK",
	}}
	if s.cancelled {
		events = append(events, response.Event{
			Timestamp:   s.createdAt,
			Code:        "CA",
			Description: CancelledMessage,
			ServiceArea: "MOCK",
		})
	}
	if req.LevelOfDetails() == request.LastCheckPointOnly {
		events = events[len(events)-1:]
	}

	info := response.AWBInfo{
		AWBNumber: s.awb,
		Status:    StatusSuccess,
		Events:    events,
	}

	if p := req.PiecesEnabled(); p == request.PiecesBoth || p == request.PiecesOnly {
		for _, plate := range s.licensePlates {
			info.Pieces = append(info.Pieces, response.PieceInfo{LicensePlate: plate, Events: events})
		}
		if p == request.PiecesOnly {
			info.Events = nil
		}
	}

	if req.EstimatedDeliveryDateRequested() {
		info.EstimatedDeliveryDate = opt.Some(s.createdAt.AddDate(0, 0, 3))
	}
	return info
}

func (c *Client) simulate(ctx context.Context, operation string) error {
	if c.SimulateLatency > 0 {
		select {
		case <-time.After(c.SimulateLatency):
		case <-ctx.Done():
			return express.NewTransportError(c.name, operation, "request cancelled").WithCause(ctx.Err())
		}
	}
	if c.SimulateErrors {
		return express.NewTransportError(c.name, operation, "simulated transport error").WithCode("MOCK_ERROR")
	}
	return nil
}

// generateDigits returns n random decimal digits (n <= 19).
func generateDigits(n int) string {
	u := uuid.New()
	v := binary.BigEndian.Uint64(u[:8])
	mod := uint64(1)
	for range n {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", n, v%mod)
}
