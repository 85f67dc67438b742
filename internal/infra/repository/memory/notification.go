package memory

import (
	"context"
	"sort"
	"sync"

	"gig-negotiation/internal/domain/notification"
	"gig-negotiation/internal/infra"

	"github.com/google/uuid"
)

type NotificationStore struct {
	mu            sync.RWMutex
	notifications map[uuid.UUID]*notification.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{notifications: make(map[uuid.UUID]*notification.Notification)}
}

func (s *NotificationStore) Append(_ context.Context, n *notification.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[n.ID()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "notification already exists", nil)
	}
	s.notifications[n.ID()] = n
	return nil
}

func (s *NotificationStore) MarkRead(_ context.Context, recipientID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok || n.RecipientID() != recipientID {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	n.MarkRead()
	return nil
}

func (s *NotificationStore) MarkAllRead(_ context.Context, recipientID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.notifications {
		if n.RecipientID() == recipientID && !n.Read() {
			n.MarkRead()
			count++
		}
	}
	return count, nil
}

// ListByRecipient returns the recipient's notifications newest first. Test
// helper; the HTTP read path goes through the readstore.
func (s *NotificationStore) ListByRecipient(_ context.Context, recipientID uuid.UUID) []*notification.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*notification.Notification
	for _, n := range s.notifications {
		if n.RecipientID() == recipientID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out
}
