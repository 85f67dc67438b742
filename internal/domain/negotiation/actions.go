package negotiation

import (
	"time"

	"github.com/google/uuid"
)

// Action is the closed set of things that can happen to an order request.
// Each variant carries only the fields its transition needs.
type Action interface {
	Kind() ActionKind
	isAction()
}

type Accept struct{}

func (Accept) Kind() ActionKind { return ActionAccept }
func (Accept) isAction()        {}

type Decline struct{}

func (Decline) Kind() ActionKind { return ActionDecline }
func (Decline) isAction()        {}

// Counter replaces the negotiated terms and restarts the reply window.
type Counter struct {
	Package ServicePackage
	Pricing Pricing
	Expires time.Time
}

func (Counter) Kind() ActionKind { return ActionCounter }
func (Counter) isAction()        {}

// Expire is the sweep-driven transition for overdue requests.
type Expire struct{}

func (Expire) Kind() ActionKind { return ActionExpire }
func (Expire) isAction()        {}

// Fulfill is submitted by the escrow collaborator once payment clears.
type Fulfill struct {
	OrderID uuid.UUID
}

func (Fulfill) Kind() ActionKind { return ActionFulfill }
func (Fulfill) isAction()        {}

// Transition records a committed state change; it is the unit the
// notification dispatcher consumes.
type Transition struct {
	RequestID uuid.UUID
	From      Status
	To        Status
	Action    ActionKind
	Actor     uuid.UUID // uuid.Nil for system-driven transitions
	At        time.Time
}

func (t Transition) IsSystem() bool {
	return t.Actor == uuid.Nil
}
