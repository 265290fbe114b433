// Package response holds the carrier replies returned by shipment and tracking adapters.
package response

import (
	"time"

	"github.com/tournevent/dhlexpress/pkg/express/opt"
)

// Notification is a carrier message attached to a reply. Code 0 means success.
type Notification struct {
	Code    int
	Message string
}

// IsError reports whether the notification signals a rejected request.
func (n Notification) IsError() bool {
	return n.Code != 0
}

// Errors returns the notifications with a non-zero code.
func Errors(notifications []Notification) []Notification {
	var out []Notification
	for _, n := range notifications {
		if n.IsError() {
			out = append(out, n)
		}
	}
	return out
}

// LabelImage is one decoded label document.
type LabelImage struct {
	Format string // PDF, ZPL, EPL or LP2
	Data   []byte
}

// PackageResult maps a request package to its piece tracking number.
type PackageResult struct {
	Number         int
	TrackingNumber string
}

// ShipmentResponse is the reply to a create shipment call.
type ShipmentResponse struct {
	Notifications                []Notification
	ShipmentIdentificationNumber string // AWB
	DispatchConfirmationNumber   string // empty when no pickup was booked
	PackagesResult               []PackageResult
	LabelImages                  []LabelImage
}

// ShipmentDeleteResponse is the reply to a delete shipment call.
type ShipmentDeleteResponse struct {
	ServiceInvocationID string
	Notifications       []Notification
}

// TrackingResponse is the reply to a tracking call, one entry per requested AWB.
type TrackingResponse struct {
	Notifications []Notification
	AWBs          []AWBInfo
}

// AWBInfo is the tracking state of one waybill.
type AWBInfo struct {
	AWBNumber             string
	Status                string
	Events                []Event
	Pieces                []PieceInfo
	EstimatedDeliveryDate opt.Option[time.Time]
}

// Delivered reports whether the latest event is a delivery.
func (a AWBInfo) Delivered() bool {
	if len(a.Events) == 0 {
		return false
	}
	return a.Events[len(a.Events)-1].Code == EventDelivered
}

// EventDelivered is the carrier event code for a completed delivery.
const EventDelivered = "OK"

// Event is one checkpoint of a shipment or piece.
type Event struct {
	Timestamp   time.Time
	Code        string
	Description string
	ServiceArea string
}

// PieceInfo is the tracking state of one piece, identified by its license plate.
type PieceInfo struct {
	LicensePlate string
	Events       []Event
}
