package express_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/tournevent/dhlexpress/internal/testfixture"
	"github.com/tournevent/dhlexpress/pkg/express"
	"github.com/tournevent/dhlexpress/pkg/express/mock"
	"github.com/tournevent/dhlexpress/pkg/express/response"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := express.NewRegistry()
	registry.Register(mock.New("mock"))

	got, err := registry.Get("mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", got.Name())
}

func TestRegistry_Override(t *testing.T) {
	registry := express.NewRegistry()
	registry.Register(mock.New("soap"))
	registry.Register(mock.New("soap"))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_NotFound(t *testing.T) {
	_, err := express.NewRegistry().Get("carrier-pigeon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, express.ErrTransportNotFound))
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestRegistry_NamesSorted(t *testing.T) {
	registry := express.NewRegistry()
	registry.Register(mock.New("soap"))
	registry.Register(mock.New("mock"))
	registry.Register(mock.New("rest"))

	assert.Equal(t, []string{"mock", "rest", "soap"}, registry.Names())
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection reset")
	err := express.NewTransportError("rest", express.OpCreateShipment, "request failed").
		WithStatusCode(502).
		WithCause(cause)

	assert.EqualError(t, err, "rest create_shipment: request failed (status 502): connection reset")
	assert.ErrorIs(t, err, express.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, express.ErrRequestValidation)

	wrapped := fmt.Errorf("shipping order 7: %w", err)
	var te *express.TransportError
	require.ErrorAs(t, wrapped, &te)
	assert.Equal(t, 502, te.StatusCode)
}

func TestTransportError_Fault(t *testing.T) {
	err := express.NewTransportError("soap", express.OpDeleteShipment, "Server Error").WithCode("soapenv:Server")
	assert.EqualError(t, err, "soap delete_shipment: Server Error (fault soapenv:Server)")
}

func TestRequestValidationError(t *testing.T) {
	err := express.CheckNotifications(express.OpCreateShipment, []response.Notification{
		{Code: 0},
		{Code: 998, Message: "Process failure occurred"},
		{Code: 1001, Message: "Product not available"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, express.ErrRequestValidation)
	assert.EqualError(t, err, "create_shipment rejected: [998] Process failure occurred; [1001] Product not available")

	var rve *express.RequestValidationError
	require.ErrorAs(t, err, &rve)
	assert.Len(t, rve.Notifications, 2)

	assert.NoError(t, express.CheckNotifications(express.OpCreateShipment, []response.Notification{{Code: 0}}))
	assert.NoError(t, express.CheckNotifications(express.OpCreateShipment, nil))
}

func TestRequestValidationError_LocalCause(t *testing.T) {
	cause := errors.New("not built")
	err := express.NewRequestValidationError(express.OpTrackShipment, cause)
	assert.EqualError(t, err, "track_shipment: invalid request: not built")
	assert.ErrorIs(t, err, cause)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, express.OutcomeOK, express.Outcome(nil))
	assert.Equal(t, express.OutcomeTransportError, express.Outcome(express.NewTransportError("x", "y", "z")))
	assert.Equal(t, express.OutcomeValidationError, express.Outcome(express.NewRequestValidationError("y", nil)))
	assert.Equal(t, express.OutcomeError, express.Outcome(errors.New("other")))
}

type call struct {
	transport string
	operation string
	err       error
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeRecorder) ObserveCall(transport, operation string, _ time.Duration, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{transport, operation, err})
}

func TestInstrument(t *testing.T) {
	ctx := context.Background()
	inner := mock.New("mock")
	rec := &fakeRecorder{}
	transport := express.Instrument(inner, rec)

	assert.Equal(t, "mock", transport.Name())

	created, err := transport.CreateShipment(ctx, testfixture.ShipmentRequest(t, testfixture.Builder()))
	require.NoError(t, err)

	_, err = transport.GetTrackingInformation(ctx, testfixture.TrackingRequest(t, created.ShipmentIdentificationNumber))
	require.NoError(t, err)

	inner.SimulateErrors = true
	_, err = transport.DeleteShipment(ctx, testfixture.DeleteRequest(t, created.DispatchConfirmationNumber))
	require.Error(t, err)

	require.Len(t, rec.calls, 3)
	assert.Equal(t, call{"mock", express.OpCreateShipment, nil}, rec.calls[0])
	assert.Equal(t, express.OpTrackShipment, rec.calls[1].operation)
	assert.Equal(t, express.OpDeleteShipment, rec.calls[2].operation)
	assert.Same(t, err, rec.calls[2].err)
}

func TestSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := tp.Tracer("test")

	_, span := express.StartSpan(context.Background(), tracer, "soap", express.OpCreateShipment)
	express.EndSpan(span, express.NewTransportError("soap", express.OpCreateShipment, "fault"))

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "dhlexpress.create_shipment", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Events(), 1)
}

func TestSpans_NilTracer(t *testing.T) {
	ctx, span := express.StartSpan(context.Background(), nil, "rest", express.OpTrackShipment)
	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() { express.EndSpan(span, nil) })
}
