package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tournevent/dhlexpress/internal/guard"
	"github.com/tournevent/dhlexpress/pkg/express/value"
)

// Level of details returned by a tracking call.
const (
	LastCheckPointOnly = "LAST_CHECK_POINT_ONLY"
	AllCheckPoints     = "ALL_CHECK_POINTS"
)

// Pieces enabled flag: shipment only, both shipment and pieces, pieces only.
const (
	PiecesShipment = "S"
	PiecesBoth     = "B"
	PiecesOnly     = "P"
)

var ErrTrackingRequestNotConstructed = errors.New("tracking request must be created via NewTrackingRequest")

// Message identifies one request for correlation on the carrier side.
type Message struct {
	messageTime      time.Time
	messageReference value.MessageReference
}

// NewMessage validates a caller supplied reference.
func NewMessage(messageTime time.Time, reference string) (Message, error) {
	ref, err := value.NewMessageReference(reference)
	if err != nil {
		return Message{}, err
	}
	return Message{messageTime: messageTime, messageReference: ref}, nil
}

// GenerateMessage returns a Message stamped at now with a random 32 character reference.
func GenerateMessage(now time.Time) Message {
	ref, err := value.NewMessageReference(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if err != nil {
		// A uuid without dashes is always 32 characters.
		panic(err)
	}
	return Message{messageTime: now, messageReference: ref}
}

// MessageTime returns when the message was created.
func (m Message) MessageTime() time.Time { return m.messageTime }

// MessageReference returns the unique reference of the message.
func (m Message) MessageReference() value.MessageReference { return m.messageReference }

// TrackingRequest asks for the status of one or more waybills. It is read-only once built.
//
// The AWB list is not checked for emptiness here. Whether an empty list is acceptable is up to
// the carrier, which reports it through a notification.
type TrackingRequest struct {
	message               Message
	awbNumbers            []string
	levelOfDetails        string
	piecesEnabled         string
	estimatedDeliveryDate bool

	guard guard.Constructed
}

// NewTrackingRequest stores its inputs unchanged. awbNumbers is copied.
func NewTrackingRequest(
	message Message,
	awbNumbers []string,
	levelOfDetails string,
	piecesEnabled string,
	estimatedDeliveryDate bool,
) *TrackingRequest {
	return &TrackingRequest{
		message:               message,
		awbNumbers:            cloneSlice(awbNumbers),
		levelOfDetails:        levelOfDetails,
		piecesEnabled:         piecesEnabled,
		estimatedDeliveryDate: estimatedDeliveryDate,
		guard:                 guard.New(),
	}
}

// Validate reports whether r was built by NewTrackingRequest.
func (r *TrackingRequest) Validate() error {
	if r == nil {
		return ErrTrackingRequestNotConstructed
	}
	return r.guard.Validate(ErrTrackingRequestNotConstructed)
}

// Message returns the message header.
func (r *TrackingRequest) Message() Message { return r.message }

// AWBNumbers returns a copy of the waybill numbers in request order.
func (r *TrackingRequest) AWBNumbers() []string { return cloneSlice(r.awbNumbers) }

// LevelOfDetails returns ALL_CHECK_POINTS or LAST_CHECK_POINT_ONLY.
func (r *TrackingRequest) LevelOfDetails() string { return r.levelOfDetails }

// PiecesEnabled returns S, P or B.
func (r *TrackingRequest) PiecesEnabled() string { return r.piecesEnabled }

// EstimatedDeliveryDateRequested reports whether the estimated delivery date is asked for.
func (r *TrackingRequest) EstimatedDeliveryDateRequested() bool { return r.estimatedDeliveryDate }
