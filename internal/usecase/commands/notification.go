package commands

import (
	"context"

	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type notificationCommandsImpl struct {
	store      NotificationStore
	invalidate UnreadInvalidator
}

func NewNotificationCommands(store NotificationStore, invalidate UnreadInvalidator) NotificationCommands {
	return &notificationCommandsImpl{store: store, invalidate: invalidate}
}

func (u *notificationCommandsImpl) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if err := u.store.MarkRead(ctx, recipientID, notificationID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotificationNotFound)
		}
		return errs.Mark(err, ErrStoreFailed)
	}
	_ = u.invalidate.Invalidate(ctx, recipientID)
	return nil
}

func (u *notificationCommandsImpl) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	count, err := u.store.MarkAllRead(ctx, recipientID)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreFailed)
	}
	_ = u.invalidate.Invalidate(ctx, recipientID)
	return count, nil
}
