//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/domain/notification"
	"gig-negotiation/internal/infra/repository/memory"
	"gig-negotiation/internal/pkg/clock"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newDispatcher(store commands.NotificationStore) *commands.NotificationDispatcher {
	return commands.NewNotificationDispatcher(
		store,
		commands.NopInvalidator{},
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		slog.Default(),
	)
}

func TestNotificationDispatcher(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	t.Run("initial offer notifies the counterpart of the creator", func(t *testing.T) {
		store := memory.NewNotificationStore()
		d := newDispatcher(store)
		d.Start()

		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		d.RequestCreated(req)
		d.Stop()

		sellerFeed := store.ListByRecipient(ctx, b.SellerID)
		require.Len(t, sellerFeed, 1)
		assert.Equal(t, notification.KindOfferReceived, sellerFeed[0].Kind())
		assert.Equal(t, req.ID(), sellerFeed[0].RequestID())
		assert.Empty(t, store.ListByRecipient(ctx, b.ClientID))
	})

	t.Run("party transition notifies only the other side", func(t *testing.T) {
		store := memory.NewNotificationStore()
		d := newDispatcher(store)
		d.Start()

		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		tr, err := req.Apply(negotiation.Accept{}, b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)

		d.TransitionCommitted(req, tr)
		d.Stop()

		clientFeed := store.ListByRecipient(ctx, b.ClientID)
		require.Len(t, clientFeed, 1)
		assert.Equal(t, notification.KindOfferAccepted, clientFeed[0].Kind())
		assert.Empty(t, store.ListByRecipient(ctx, b.SellerID))
	})

	t.Run("system transition notifies both parties", func(t *testing.T) {
		store := memory.NewNotificationStore()
		d := newDispatcher(store)
		d.Start()

		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		tr, err := req.Apply(negotiation.Expire{}, uuid.Nil, b.Expires.Add(time.Minute))
		require.NoError(t, err)

		d.TransitionCommitted(req, tr)
		d.Stop()

		for _, recipient := range []uuid.UUID{b.ClientID, b.SellerID} {
			feed := store.ListByRecipient(ctx, recipient)
			require.Len(t, feed, 1)
			assert.Equal(t, notification.KindOfferExpired, feed[0].Kind())
		}
	})

	t.Run("every transition kind maps to a notification", func(t *testing.T) {
		store := memory.NewNotificationStore()
		d := newDispatcher(store)
		d.Start()

		b := builder.NewOrderRequestBuilder()
		expected := map[negotiation.ActionKind]notification.Kind{
			negotiation.ActionAccept:  notification.KindOfferAccepted,
			negotiation.ActionDecline: notification.KindOfferDeclined,
			negotiation.ActionCounter: notification.KindOfferCountered,
			negotiation.ActionExpire:  notification.KindOfferExpired,
			negotiation.ActionFulfill: notification.KindOrderCompleted,
		}

		for action := range expected {
			req, err := b.BuildDomain()
			require.NoError(t, err)
			d.TransitionCommitted(req, negotiation.Transition{
				RequestID: req.ID(),
				Action:    action,
				Actor:     b.SellerID,
				At:        b.Now,
			})
		}
		d.Stop()

		feed := store.ListByRecipient(ctx, b.ClientID)
		kinds := lo.Map(feed, func(n *notification.Notification, _ int) notification.Kind { return n.Kind() })
		assert.ElementsMatch(t, lo.Values(expected), kinds)
	})

	t.Run("stop drains pending deliveries", func(t *testing.T) {
		store := memory.NewNotificationStore()
		d := newDispatcher(store)
		d.Start()

		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		for range 20 {
			d.RequestCreated(req)
		}
		d.Stop()

		assert.Len(t, store.ListByRecipient(ctx, b.SellerID), 20)
	})

	t.Run("dispatch after stop drops instead of panicking", func(t *testing.T) {
		store := memory.NewNotificationStore()
		d := newDispatcher(store)
		d.Start()
		d.Stop()

		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		tr, err := req.Apply(negotiation.Accept{}, b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			d.RequestCreated(req)
			d.TransitionCommitted(req, tr)
			d.Stop()
		})
		assert.Empty(t, store.ListByRecipient(ctx, b.ClientID))
		assert.Empty(t, store.ListByRecipient(ctx, b.SellerID))
	})
}
