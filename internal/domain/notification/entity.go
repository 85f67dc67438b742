package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRecipient = errors.New("recipient is required")
	ErrMissingRequest   = errors.New("source request is required")
	ErrInvalidKind      = errors.New("invalid notification kind")
)

// Kind maps 1:1 to the negotiation transition that produced the notification,
// plus the initial offer itself.
type Kind string

const (
	KindOfferReceived  Kind = "offer_received"
	KindOfferAccepted  Kind = "offer_accepted"
	KindOfferDeclined  Kind = "offer_declined"
	KindOfferCountered Kind = "offer_countered"
	KindOfferExpired   Kind = "offer_expired"
	KindOrderCompleted Kind = "order_completed"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindOfferReceived, KindOfferAccepted, KindOfferDeclined,
		KindOfferCountered, KindOfferExpired, KindOrderCompleted:
		return true
	default:
		return false
	}
}

// Notification is a per-user record of a negotiation event. Records are never
// deleted; the recipient only flips the read flag.
type Notification struct {
	id          uuid.UUID
	recipientID uuid.UUID
	requestID   uuid.UUID
	kind        Kind
	read        bool
	createdAt   time.Time
}

func New(recipientID, requestID uuid.UUID, kind Kind, now time.Time) (*Notification, error) {
	if recipientID == uuid.Nil {
		return nil, ErrMissingRecipient
	}
	if requestID == uuid.Nil {
		return nil, ErrMissingRequest
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Notification{
		id:          uuid.New(),
		recipientID: recipientID,
		requestID:   requestID,
		kind:        kind,
		createdAt:   now,
	}, nil
}

func Reconstruct(id, recipientID, requestID uuid.UUID, kind Kind, read bool, createdAt time.Time) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		requestID:   requestID,
		kind:        kind,
		read:        read,
		createdAt:   createdAt,
	}
}

func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) ID() uuid.UUID          { return n.id }
func (n *Notification) RecipientID() uuid.UUID { return n.recipientID }
func (n *Notification) RequestID() uuid.UUID   { return n.requestID }
func (n *Notification) Kind() Kind             { return n.kind }
func (n *Notification) Read() bool             { return n.read }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }
