package express

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/tournevent/dhlexpress/pkg/express/request"
	"github.com/tournevent/dhlexpress/pkg/express/response"
)

// Call outcomes reported to a Recorder.
const (
	OutcomeOK              = "ok"
	OutcomeTransportError  = "transport_error"
	OutcomeValidationError = "validation_error"
	OutcomeError           = "error"
)

// Outcome classifies the result of an adapter call.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrTransport):
		return OutcomeTransportError
	case errors.Is(err, ErrRequestValidation):
		return OutcomeValidationError
	default:
		return OutcomeError
	}
}

// Recorder receives one observation per adapter call.
type Recorder interface {
	ObserveCall(transport, operation string, duration time.Duration, err error)
}

// Instrument wraps t so every call is reported to rec. Calls and errors pass through
// untouched.
func Instrument(t Transport, rec Recorder) Transport {
	return &instrumented{next: t, rec: rec, now: time.Now}
}

type instrumented struct {
	next Transport
	rec  Recorder
	now  func() time.Time
}

func (i *instrumented) Name() string {
	return i.next.Name()
}

func (i *instrumented) CreateShipment(ctx context.Context, req *request.ShipmentRequest) (*response.ShipmentResponse, error) {
	start := i.now()
	resp, err := i.next.CreateShipment(ctx, req)
	i.rec.ObserveCall(i.next.Name(), OpCreateShipment, i.now().Sub(start), err)
	return resp, err
}

func (i *instrumented) DeleteShipment(ctx context.Context, req *request.ShipmentDeleteRequest) (*response.ShipmentDeleteResponse, error) {
	start := i.now()
	resp, err := i.next.DeleteShipment(ctx, req)
	i.rec.ObserveCall(i.next.Name(), OpDeleteShipment, i.now().Sub(start), err)
	return resp, err
}

func (i *instrumented) GetTrackingInformation(ctx context.Context, req *request.TrackingRequest) (*response.TrackingResponse, error) {
	start := i.now()
	resp, err := i.next.GetTrackingInformation(ctx, req)
	i.rec.ObserveCall(i.next.Name(), OpTrackShipment, i.now().Sub(start), err)
	return resp, err
}

// StartSpan opens a client span for one adapter call. A nil tracer yields a no-op span.
func StartSpan(ctx context.Context, tracer trace.Tracer, transport, operation string) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return tracer.Start(ctx, "dhlexpress."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("dhlexpress.transport", transport),
			attribute.String("dhlexpress.operation", operation),
		),
	)
}

// EndSpan records err on span and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("dhlexpress.outcome", Outcome(err)))
	span.End()
}
