package express

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tournevent/dhlexpress/pkg/express/response"
)

// Operation names used in errors, logs and metrics.
const (
	OpCreateShipment = "create_shipment"
	OpDeleteShipment = "delete_shipment"
	OpTrackShipment  = "track_shipment"
)

var (
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport error")

	// ErrRequestValidation matches every *RequestValidationError.
	ErrRequestValidation = errors.New("request validation error")

	// ErrTransportNotFound indicates the requested transport is not registered.
	ErrTransportNotFound = errors.New("transport not found")
)

// TransportError signals that a call could not complete, or that the remote endpoint returned
// a fault. It is never retried here.
type TransportError struct {
	Transport  string
	Operation  string
	Code       string // SOAP fault code, if any
	Message    string
	StatusCode int // HTTP status, if any
	Cause      error
}

// NewTransportError creates a TransportError without cause, fault code or status.
func NewTransportError(transport, operation, message string) *TransportError {
	return &TransportError{
		Transport: transport,
		Operation: operation,
		Message:   message,
	}
}

// Error renders transport, operation and message, followed by whatever detail is set.
func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s", e.Transport, e.Operation, e.Message)
	if e.Code != "" {
		fmt.Fprintf(&b, " (fault %s)", e.Code)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrTransport) true for any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// WithCause sets the underlying error.
func (e *TransportError) WithCause(err error) *TransportError {
	e.Cause = err
	return e
}

// WithCode sets the SOAP fault code.
func (e *TransportError) WithCode(code string) *TransportError {
	e.Code = code
	return e
}

// WithStatusCode sets the HTTP status of the reply.
func (e *TransportError) WithStatusCode(code int) *TransportError {
	e.StatusCode = code
	return e
}

// RequestValidationError signals that the request was rejected as structurally invalid,
// either locally before transmission or by the carrier through error notifications.
type RequestValidationError struct {
	Operation     string
	Notifications []response.Notification
	Cause         error
}

// NewRequestValidationError wraps a local validation failure.
func NewRequestValidationError(operation string, cause error) *RequestValidationError {
	return &RequestValidationError{Operation: operation, Cause: cause}
}

// RejectedByCarrier builds the error for a reply carrying error notifications.
func RejectedByCarrier(operation string, notifications []response.Notification) *RequestValidationError {
	return &RequestValidationError{Operation: operation, Notifications: notifications}
}

// Error lists the carrier notifications, or the local cause when there are none.
func (e *RequestValidationError) Error() string {
	if len(e.Notifications) > 0 {
		msgs := make([]string, 0, len(e.Notifications))
		for _, n := range e.Notifications {
			msgs = append(msgs, fmt.Sprintf("[%d] %s", n.Code, n.Message))
		}
		return fmt.Sprintf("%s rejected: %s", e.Operation, strings.Join(msgs, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: invalid request: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: invalid request", e.Operation)
}

// Unwrap returns the local validation failure, nil for carrier rejections.
func (e *RequestValidationError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrRequestValidation) true for any RequestValidationError.
func (e *RequestValidationError) Is(target error) bool {
	return target == ErrRequestValidation
}

// CheckNotifications returns a RequestValidationError when any notification carries a
// non-zero code.
func CheckNotifications(operation string, notifications []response.Notification) error {
	if errs := response.Errors(notifications); len(errs) > 0 {
		return RejectedByCarrier(operation, errs)
	}
	return nil
}
