package response

import (
	"time"

	"gig-negotiation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"request_id"`
	Kind      string    `json:"kind"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationFeedResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Unread        int64                   `json:"unread"`
}

func FromNotificationFeed(feed *queries.NotificationFeed) *NotificationFeedResponse {
	return &NotificationFeedResponse{
		Notifications: lo.Map(feed.Notifications, func(v *queries.NotificationView, _ int) *NotificationResponse {
			return &NotificationResponse{
				ID:        v.ID,
				RequestID: v.RequestID,
				Kind:      v.Kind,
				Read:      v.Read,
				CreatedAt: v.CreatedAt,
			}
		}),
		Unread: feed.Unread,
	}
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

type SweepResponse struct {
	Scanned int `json:"scanned"`
	Expired int `json:"expired"`
}
