// Package soap implements the DHL Express adapters on top of a SOAP Caller.
package soap

import (
	"context"
	"errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tournevent/dhlexpress/pkg/express"
	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/response"
	"github.com/tournevent/dhlexpress/pkg/express/schema"
)

// Name is the transport name of the SOAP client.
const Name = "soap"

// Client is the SOAP transport.
type Client struct {
	caller Caller
	logger *otelzap.Logger
	tracer trace.Tracer
}

// New creates a SOAP client. tracer may be nil.
func New(caller Caller, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		caller: caller,
		logger: logger,
		tracer: tracer,
	}
}

// Name returns the transport name.
func (c *Client) Name() string {
	return Name
}

// CreateShipment books a shipment and returns its waybill, labels and pickup confirmation.
func (c *Client) CreateShipment(ctx context.Context, req *request.ShipmentRequest) (resp *response.ShipmentResponse, err error) {
	if err := req.Validate(); err != nil {
		return nil, express.NewRequestValidationError(express.OpCreateShipment, err)
	}

	ctx, span := express.StartSpan(ctx, c.tracer, Name, express.OpCreateShipment)
	defer func() { express.EndSpan(span, err) }()

	info := req.ShipmentInfo()
	c.logger.Ctx(ctx).Info("Creating DHL Express shipment",
		zap.String("transport", Name),
		zap.String("service_type", info.ServiceType().String()),
		zap.String("drop_off_type", info.DropOffType().String()),
		zap.Int("package_count", len(req.Packages())),
	)

	var out schema.ShipmentResponse
	if err := c.caller.Call(ctx, OpCreateShipment, schema.FromShipmentRequest(req), &out); err != nil {
		return nil, c.callError(ctx, express.OpCreateShipment, err)
	}

	resp, err = schema.ToShipmentResponse(out)
	if err != nil {
		return nil, c.decodeError(ctx, express.OpCreateShipment, err)
	}
	if err := express.CheckNotifications(express.OpCreateShipment, resp.Notifications); err != nil {
		c.logger.Ctx(ctx).Warn("DHL Express rejected shipment", zap.Error(err))
		return nil, err
	}

	c.logger.Ctx(ctx).Info("DHL Express shipment created",
		zap.String("awb", resp.ShipmentIdentificationNumber),
		zap.String("dispatch_confirmation_number", resp.DispatchConfirmationNumber),
	)
	return resp, nil
}

// DeleteShipment cancels the pickup booked for a shipment.
func (c *Client) DeleteShipment(ctx context.Context, req *request.ShipmentDeleteRequest) (resp *response.ShipmentDeleteResponse, err error) {
	if err := req.Validate(); err != nil {
		return nil, express.NewRequestValidationError(express.OpDeleteShipment, err)
	}

	ctx, span := express.StartSpan(ctx, c.tracer, Name, express.OpDeleteShipment)
	defer func() { express.EndSpan(span, err) }()

	c.logger.Ctx(ctx).Info("Deleting DHL Express shipment",
		zap.String("transport", Name),
		zap.String("dispatch_confirmation_number", req.DispatchConfirmationNumber().String()),
	)

	var out schema.DeleteResponse
	if err := c.caller.Call(ctx, OpDeleteShipment, schema.FromDeleteRequest(req), &out); err != nil {
		return nil, c.callError(ctx, express.OpDeleteShipment, err)
	}

	resp = schema.ToDeleteResponse(out)
	if err := express.CheckNotifications(express.OpDeleteShipment, resp.Notifications); err != nil {
		c.logger.Ctx(ctx).Warn("DHL Express rejected delete", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// GetTrackingInformation returns the checkpoints of the requested waybills.
func (c *Client) GetTrackingInformation(ctx context.Context, req *request.TrackingRequest) (resp *response.TrackingResponse, err error) {
	if err := req.Validate(); err != nil {
		return nil, express.NewRequestValidationError(express.OpTrackShipment, err)
	}

	ctx, span := express.StartSpan(ctx, c.tracer, Name, express.OpTrackShipment)
	defer func() { express.EndSpan(span, err) }()

	c.logger.Ctx(ctx).Info("Tracking DHL Express shipments",
		zap.String("transport", Name),
		zap.Strings("awb_numbers", req.AWBNumbers()),
		zap.String("level_of_details", req.LevelOfDetails()),
	)

	var out schema.TrackShipmentResponse
	if err := c.caller.Call(ctx, OpTrackShipment, schema.FromTrackingRequest(req), &out); err != nil {
		return nil, c.callError(ctx, express.OpTrackShipment, err)
	}

	resp, err = schema.ToTrackingResponse(out)
	if err != nil {
		return nil, c.decodeError(ctx, express.OpTrackShipment, err)
	}
	if err := express.CheckNotifications(express.OpTrackShipment, resp.Notifications); err != nil {
		c.logger.Ctx(ctx).Warn("DHL Express rejected tracking request", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (c *Client) callError(ctx context.Context, operation string, err error) error {
	c.logger.Ctx(ctx).Error("DHL Express SOAP call failed", zap.String("operation", operation), zap.Error(err))

	var fault *Fault
	if errors.As(err, &fault) {
		return express.NewTransportError(Name, operation, fault.String).
			WithCode(fault.Code).
			WithCause(err)
	}
	return express.NewTransportError(Name, operation, "call failed").WithCause(err)
}

func (c *Client) decodeError(ctx context.Context, operation string, err error) error {
	c.logger.Ctx(ctx).Error("DHL Express SOAP reply undecodable", zap.String("operation", operation), zap.Error(err))
	return express.NewTransportError(Name, operation, "undecodable reply").WithCause(err)
}
