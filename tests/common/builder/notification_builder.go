//go:build unit || integration

package builder

import (
	"time"

	"gig-negotiation/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationBuilder struct {
	RecipientID uuid.UUID
	RequestID   uuid.UUID
	Kind        notification.Kind
	Now         time.Time
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		RecipientID: uuid.New(),
		RequestID:   uuid.New(),
		Kind:        notification.KindOfferReceived,
		Now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) BuildDomain() (*notification.Notification, error) {
	return notification.New(b.RecipientID, b.RequestID, b.Kind, b.Now)
}
