package commands

import (
	"context"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/domain/notification"

	"github.com/google/uuid"
)

// OrderRequestStore is the write-side port. Commit takes the version the
// caller loaded; a concurrent writer makes it fail with a STALE_WRITE
// repository error.
type OrderRequestStore interface {
	Create(ctx context.Context, req *negotiation.OrderRequest) error
	Get(ctx context.Context, id uuid.UUID) (*negotiation.OrderRequest, error)
	Commit(ctx context.Context, req *negotiation.OrderRequest, expectedVersion int64) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]*negotiation.OrderRequest, error)
}

type NotificationStore interface {
	Append(ctx context.Context, n *notification.Notification) error
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

// UnreadInvalidator drops a recipient's cached unread count. A nil-safe
// no-op implementation is wired when the cache is disabled.
type UnreadInvalidator interface {
	Invalidate(ctx context.Context, recipientID uuid.UUID) error
}

// Dispatcher receives committed transitions and fans them out as
// notifications. Delivery is asynchronous and must never fail the
// transition that triggered it.
type Dispatcher interface {
	RequestCreated(req *negotiation.OrderRequest)
	TransitionCommitted(req *negotiation.OrderRequest, tr negotiation.Transition)
}

type NopInvalidator struct{}

func (NopInvalidator) Invalidate(context.Context, uuid.UUID) error { return nil }
