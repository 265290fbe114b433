// Package rest implements the DHL Express adapters over the JSON REST endpoints.
//
// The client builds requests and decodes replies; sending them is delegated to a Doer, so
// credentials, TLS and timeouts are configured on the caller's *http.Client.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tournevent/dhlexpress/pkg/express"
	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/response"
	"github.com/tournevent/dhlexpress/pkg/express/schema"
)

// Name is the transport name of the REST client.
const Name = "rest"

// DefaultBaseURL is the production endpoint.
const DefaultBaseURL = "https://wsbexpress.dhl.com/rest/sndpt"

const (
	// maxErrorBody bounds how much of a failed reply is copied into an error.
	maxErrorBody = 512
	// MaxReplyBytes bounds the size of a reply body. Larger replies fail with a TransportError.
	MaxReplyBytes = 8 << 20
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds REST client configuration.
type Config struct {
	BaseURL string
}

// Client is the REST transport.
type Client struct {
	baseURL string
	doer    Doer
	logger  *otelzap.Logger
	tracer  trace.Tracer
}

// New creates a REST client. tracer may be nil.
func New(cfg Config, doer Doer, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    doer,
		logger:  logger,
		tracer:  tracer,
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

	c.logger.Ctx(ctx).Info("Creating DHL Express shipment",
		zap.String("transport", Name),
		zap.String("service_type", req.ShipmentInfo().ServiceType().String()),
		zap.Int("package_count", len(req.Packages())),
	)

	var out schema.ShipmentResponse
	if err := c.post(ctx, express.OpCreateShipment, "/ShipmentRequest",
		"ShipmentRequest", schema.FromShipmentRequest(req),
		"ShipmentResponse", &out); err != nil {
		return nil, err
	}

	resp, err = schema.ToShipmentResponse(out)
	if err != nil {
		return nil, express.NewTransportError(Name, express.OpCreateShipment, "undecodable reply").WithCause(err)
	}
	if err := express.CheckNotifications(express.OpCreateShipment, resp.Notifications); err != nil {
		c.logger.Ctx(ctx).Warn("DHL Express rejected shipment", zap.Error(err))
		return nil, err
	}

	c.logger.Ctx(ctx).Info("DHL Express shipment created", zap.String("awb", resp.ShipmentIdentificationNumber))
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
	if err := c.post(ctx, express.OpDeleteShipment, "/DeleteRequest",
		"DeleteRequest", schema.FromDeleteRequest(req),
		"DeleteResponse", &out); err != nil {
		return nil, err
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
	)

	var out schema.TrackShipmentResponse
	if err := c.post(ctx, express.OpTrackShipment, "/TrackingRequest",
		"trackShipmentRequest", schema.FromTrackingRequest(req),
		"trackShipmentRequestResponse", &out); err != nil {
		return nil, err
	}

	resp, err = schema.ToTrackingResponse(out)
	if err != nil {
		return nil, express.NewTransportError(Name, express.OpTrackShipment, "undecodable reply").WithCause(err)
	}
	if err := express.CheckNotifications(express.OpTrackShipment, resp.Notifications); err != nil {
		c.logger.Ctx(ctx).Warn("DHL Express rejected tracking request", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// post sends {reqRoot: in} to path and decodes the reply member respRoot into out.
func (c *Client) post(ctx context.Context, operation, path, reqRoot string, in any, respRoot string, out any) error {
	body, err := json.Marshal(map[string]any{reqRoot: in})
	if err != nil {
		return express.NewTransportError(Name, operation, "encode request").WithCause(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return express.NewTransportError(Name, operation, "build request").WithCause(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		c.logger.Ctx(ctx).Error("DHL Express REST call failed", zap.String("operation", operation), zap.Error(err))
		return express.NewTransportError(Name, operation, "request failed").WithCause(err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, MaxReplyBytes+1))
	if err != nil {
		return express.NewTransportError(Name, operation, "read reply").
			WithStatusCode(httpResp.StatusCode).
			WithCause(err)
	}
	if len(raw) > MaxReplyBytes {
		return express.NewTransportError(Name, operation, fmt.Sprintf("reply exceeds %d bytes", MaxReplyBytes)).
			WithStatusCode(httpResp.StatusCode)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		c.logger.Ctx(ctx).Error("DHL Express REST call returned an error status",
			zap.String("operation", operation),
			zap.Int("status_code", httpResp.StatusCode),
		)
		return express.NewTransportError(Name, operation, truncate(raw)).WithStatusCode(httpResp.StatusCode)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return express.NewTransportError(Name, operation, "undecodable reply").
			WithStatusCode(httpResp.StatusCode).
			WithCause(err)
	}
	member, ok := envelope[respRoot]
	if !ok {
		return express.NewTransportError(Name, operation, fmt.Sprintf("reply has no %s member", respRoot)).
			WithStatusCode(httpResp.StatusCode)
	}
	if err := json.Unmarshal(member, out); err != nil {
		return express.NewTransportError(Name, operation, "undecodable reply").
			WithStatusCode(httpResp.StatusCode).
			WithCause(err)
	}
	return nil
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty reply"
	}
	if len(s) <= maxErrorBody {
		return s
	}
	s = s[:maxErrorBody]
	// Drop a rune split by the cut.
	for range utf8.UTFMax - 1 {
		if r, size := utf8.DecodeLastRuneInString(s); r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s + "..."
}
