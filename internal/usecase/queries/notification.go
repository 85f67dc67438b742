package queries

import (
	"context"
	"time"

	"gig-negotiation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationQueryFailed = errs.New("notification query failed")

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	Kind      string    `json:"kind"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationFeed is what the presentation layer renders: the recipient's
// log, newest first, plus the unread badge count.
type NotificationFeed struct {
	Notifications []*NotificationView `json:"notifications"`
	Unread        int64               `json:"unread"`
}

type NotificationReadStore interface {
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

// UnreadCounter abstracts the unread count so a cache can sit in front of the
// read store.
type UnreadCounter interface {
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListForUser(ctx context.Context, recipientID uuid.UUID, limit int) (*NotificationFeed, error)
}

type notificationQueriesImpl struct {
	store  NotificationReadStore
	unread UnreadCounter
}

func NewNotificationQueries(store NotificationReadStore, unread UnreadCounter) NotificationQueries {
	return &notificationQueriesImpl{store: store, unread: unread}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, recipientID uuid.UUID, limit int) (*NotificationFeed, error) {
	if limit <= 0 {
		limit = 50
	}
	items, err := q.store.FindByRecipient(ctx, recipientID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrNotificationQueryFailed)
	}
	unread, err := q.unread.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, errs.Mark(err, ErrNotificationQueryFailed)
	}
	return &NotificationFeed{Notifications: items, Unread: unread}, nil
}
