package soap

import (
	"context"
	"fmt"
)

// SOAP operations of the DHL Express web service.
const (
	OpCreateShipment = "createShipmentRequest"
	OpDeleteShipment = "deleteShipmentRequest"
	OpTrackShipment  = "trackShipmentRequest"
)

// Caller performs one SOAP operation. It owns the envelope, the WS-Security header and the
// HTTP exchange: in is the body document to send, out a pointer to the body document to decode
// the reply into. A remote fault is reported as *Fault.
type Caller interface {
	Call(ctx context.Context, operation string, in, out any) error
}

// Fault is a SOAP fault returned by the endpoint.
type Fault struct {
	Code   string
	String string
	Detail string
}

// Error renders the fault code and string.
func (f *Fault) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("soap fault %s: %s (%s)", f.Code, f.String, f.Detail)
	}
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}
