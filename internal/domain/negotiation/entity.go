package negotiation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSameParty         = errors.New("client and seller must be distinct")
	ErrCreatorNotAParty  = errors.New("creator must be one of the two parties")
	ErrExpiryNotFuture   = errors.New("expiry must be in the future")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotAParty         = errors.New("actor is not a party to this request")
	ErrOutOfTurn         = errors.New("actor must wait for the other party")
	ErrRequestExpired    = errors.New("request is past its expiry")
	ErrOrderIDRequired   = errors.New("order id is required to fulfill")
)

// transitions is the full edge table of the negotiation lifecycle. A missing
// entry means the action is rejected from that status.
var transitions = map[Status]map[ActionKind]Status{
	StatusPending: {
		ActionAccept:  StatusAccepted,
		ActionDecline: StatusDeclined,
		ActionCounter: StatusCountered,
		ActionExpire:  StatusExpired,
	},
	StatusCountered: {
		ActionAccept:  StatusAccepted,
		ActionDecline: StatusDeclined,
		ActionCounter: StatusCountered,
		ActionExpire:  StatusExpired,
	},
	StatusAccepted: {
		ActionFulfill: StatusCompleted,
	},
}

// OrderRequest is a proposed engagement between a client and a seller,
// negotiated through counter-offers until it is accepted, declined, expires,
// or completes into a binding order.
type OrderRequest struct {
	id          uuid.UUID
	clientID    uuid.UUID
	sellerID    uuid.UUID
	status      Status
	pkg         ServicePackage
	pricing     Pricing
	expires     time.Time
	actionTaken time.Time
	lastActor   uuid.UUID
	turnCount   int
	orderID     *uuid.UUID
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOrderRequest(
	clientID, sellerID, createdBy uuid.UUID,
	pkg ServicePackage,
	pricing Pricing,
	expires time.Time,
	now time.Time,
) (*OrderRequest, error) {
	if clientID == sellerID {
		return nil, ErrSameParty
	}
	if createdBy != clientID && createdBy != sellerID {
		return nil, ErrCreatorNotAParty
	}
	if !expires.After(now) {
		return nil, ErrExpiryNotFuture
	}

	return &OrderRequest{
		id:          uuid.New(),
		clientID:    clientID,
		sellerID:    sellerID,
		status:      StatusPending,
		pkg:         pkg,
		pricing:     pricing,
		expires:     expires,
		actionTaken: now,
		lastActor:   createdBy,
		turnCount:   1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructOrderRequest(
	id, clientID, sellerID uuid.UUID,
	status Status,
	pkg ServicePackage,
	pricing Pricing,
	expires, actionTaken time.Time,
	lastActor uuid.UUID,
	turnCount int,
	orderID *uuid.UUID,
	version int64,
	createdAt, updatedAt time.Time,
) *OrderRequest {
	return &OrderRequest{
		id:          id,
		clientID:    clientID,
		sellerID:    sellerID,
		status:      status,
		pkg:         pkg,
		pricing:     pricing,
		expires:     expires,
		actionTaken: actionTaken,
		lastActor:   lastActor,
		turnCount:   turnCount,
		orderID:     orderID,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Apply validates the action against the current state and, on success,
// mutates the request and returns the committed transition. It is the single
// transition authority: actor-driven actions and sweep-driven expiry both go
// through here.
func (r *OrderRequest) Apply(a Action, actorID uuid.UUID, now time.Time) (Transition, error) {
	system := a.Kind().IsSystem()
	if !system {
		if actorID != r.clientID && actorID != r.sellerID {
			return Transition{}, ErrNotAParty
		}
		if r.status.IsAwaitingReply() && now.After(r.expires) {
			// The sweeper owns this edge; the caller observes its outcome.
			return Transition{}, ErrRequestExpired
		}
	}

	to, ok := transitions[r.status][a.Kind()]
	if !ok {
		return Transition{}, ErrInvalidTransition
	}

	// Turn alternation: whoever recorded the last action must wait for the
	// other party before acting again.
	if !system && actorID == r.lastActor {
		return Transition{}, ErrOutOfTurn
	}

	switch act := a.(type) {
	case Counter:
		if !act.Expires.After(now) {
			return Transition{}, ErrExpiryNotFuture
		}
		r.pkg = act.Package
		r.pricing = act.Pricing
		r.expires = act.Expires
	case Fulfill:
		if act.OrderID == uuid.Nil {
			return Transition{}, ErrOrderIDRequired
		}
		orderID := act.OrderID
		r.orderID = &orderID
	}

	from := r.status
	r.status = to
	r.actionTaken = now
	r.updatedAt = now
	if !system {
		r.lastActor = actorID
		r.turnCount++
	}

	return Transition{
		RequestID: r.id,
		From:      from,
		To:        to,
		Action:    a.Kind(),
		Actor:     actorIDForTransition(actorID, system),
		At:        now,
	}, nil
}

func actorIDForTransition(actorID uuid.UUID, system bool) uuid.UUID {
	if system {
		return uuid.Nil
	}
	return actorID
}

// Counterpart returns the party that is not actorID.
func (r *OrderRequest) Counterpart(actorID uuid.UUID) uuid.UUID {
	if actorID == r.clientID {
		return r.sellerID
	}
	return r.clientID
}

// IsDue reports whether the sweeper should force-expire this request.
func (r *OrderRequest) IsDue(now time.Time) bool {
	return r.status.IsAwaitingReply() && now.After(r.expires)
}

// Invariants checks the structural rules that must hold after every
// transition.
func (r *OrderRequest) Invariants() error {
	if r.clientID == r.sellerID {
		return ErrSameParty
	}
	if !r.status.IsValid() {
		return ErrInvalidTransition
	}
	if (r.orderID != nil) != (r.status == StatusCompleted) {
		return ErrOrderIDRequired
	}
	return nil
}

func (r *OrderRequest) ID() uuid.UUID          { return r.id }
func (r *OrderRequest) ClientID() uuid.UUID    { return r.clientID }
func (r *OrderRequest) SellerID() uuid.UUID    { return r.sellerID }
func (r *OrderRequest) Status() Status         { return r.status }
func (r *OrderRequest) Package() ServicePackage { return r.pkg }
func (r *OrderRequest) Pricing() Pricing       { return r.pricing }
func (r *OrderRequest) Expires() time.Time     { return r.expires }
func (r *OrderRequest) ActionTaken() time.Time { return r.actionTaken }
func (r *OrderRequest) LastActor() uuid.UUID   { return r.lastActor }
func (r *OrderRequest) TurnCount() int         { return r.turnCount }
func (r *OrderRequest) OrderID() *uuid.UUID    { return r.orderID }
func (r *OrderRequest) Version() int64         { return r.version }
func (r *OrderRequest) CreatedAt() time.Time   { return r.createdAt }
func (r *OrderRequest) UpdatedAt() time.Time   { return r.updatedAt }
