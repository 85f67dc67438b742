//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/domain/notification"
	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/infra/db"
	"gig-negotiation/internal/infra/readstore"
	"gig-negotiation/internal/infra/repository"
	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, cleanup, err := db.Connect(ctx, config.DBConfig{
		Host:     host,
		Port:     fmt.Sprintf("%d", port.Int()),
		User:     "test",
		Password: "test",
		DBName:   "test_db",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, db.Migrate(ctx, pool))
	return pool
}

func TestOrderRequestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	repo := repository.NewOrderRequestRepository(pool)

	b := builder.NewOrderRequestBuilder()
	req, err := b.BuildDomain()
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, req))

	t.Run("duplicate insert", func(t *testing.T) {
		err := repo.Create(ctx, req)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("get round-trips every field", func(t *testing.T) {
		got, err := repo.Get(ctx, req.ID())
		require.NoError(t, err)

		assert.Equal(t, req.ID(), got.ID())
		assert.Equal(t, req.ClientID(), got.ClientID())
		assert.Equal(t, req.SellerID(), got.SellerID())
		assert.Equal(t, negotiation.StatusPending, got.Status())
		assert.Equal(t, req.Package(), got.Package())
		assert.True(t, got.Pricing().Total().Decimal().Equal(req.Pricing().Total().Decimal()))
		assert.Equal(t, int64(1), got.Version())
		assert.True(t, got.Expires().Equal(req.Expires()))
	})

	t.Run("commit with the loaded version wins", func(t *testing.T) {
		loaded, err := repo.Get(ctx, req.ID())
		require.NoError(t, err)
		_, err = loaded.Apply(negotiation.Accept{}, b.SellerID, time.Now().UTC())
		require.NoError(t, err)

		require.NoError(t, repo.Commit(ctx, loaded, loaded.Version()))

		fresh, err := repo.Get(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusAccepted, fresh.Status())
		assert.Equal(t, int64(2), fresh.Version())
	})

	t.Run("commit against a stale version loses", func(t *testing.T) {
		loaded, err := repo.Get(ctx, req.ID())
		require.NoError(t, err)
		err = repo.Commit(ctx, loaded, loaded.Version()-1)
		assert.True(t, infra.IsKind(err, infra.KindStaleWrite))
	})

	t.Run("commit on a missing row", func(t *testing.T) {
		ghost, err := builder.NewOrderRequestBuilder().BuildDomain()
		require.NoError(t, err)
		err = repo.Commit(ctx, ghost, 1)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderRequestRepository_ListDue(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	repo := repository.NewOrderRequestRepository(pool)

	now := time.Now().UTC()

	seed := func(expires time.Time) *negotiation.OrderRequest {
		b := builder.NewOrderRequestBuilder()
		b.Now = now.Add(-time.Hour)
		b.Expires = expires
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, req))
		return req
	}

	overdue := seed(now.Add(-30 * time.Minute))
	seed(now.Add(24 * time.Hour))

	due, err := repo.ListDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, overdue.ID(), due[0].ID())
}

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	repo := repository.NewNotificationRepository(pool)

	b := builder.NewNotificationBuilder()
	n, err := b.BuildDomain()
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, n))

	t.Run("mark read scoped to the owner", func(t *testing.T) {
		err := repo.MarkRead(ctx, uuid.New(), n.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		require.NoError(t, repo.MarkRead(ctx, n.RecipientID(), n.ID()))
	})

	t.Run("mark all read counts the flips", func(t *testing.T) {
		other, err := builder.NewNotificationBuilder().With(func(nb *builder.NotificationBuilder) {
			nb.RecipientID = n.RecipientID()
		}).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, other))

		count, err := repo.MarkAllRead(ctx, n.RecipientID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestNotificationReadStore_Feed(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)
	repo := repository.NewNotificationRepository(pool)
	store := readstore.NewNotificationReadStore(pool)

	owner := uuid.New()
	stranger := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(recipient uuid.UUID, at time.Time) *notification.Notification {
		n, err := builder.NewNotificationBuilder().With(func(nb *builder.NotificationBuilder) {
			nb.RecipientID = recipient
			nb.Now = at
		}).BuildDomain()
		require.NoError(t, err)
		require.NoError(t, repo.Append(ctx, n))
		return n
	}

	oldest := seed(owner, base)
	newest := seed(owner, base.Add(2*time.Hour))
	middle := seed(owner, base.Add(time.Hour))
	seed(stranger, base.Add(30*time.Minute))

	t.Run("feed is owner-scoped, newest first", func(t *testing.T) {
		feed, err := store.FindByRecipient(ctx, owner, 10)
		require.NoError(t, err)
		require.Len(t, feed, 3)
		assert.Equal(t, newest.ID(), feed[0].ID)
		assert.Equal(t, middle.ID(), feed[1].ID)
		assert.Equal(t, oldest.ID(), feed[2].ID)

		strangerFeed, err := store.FindByRecipient(ctx, stranger, 10)
		require.NoError(t, err)
		require.Len(t, strangerFeed, 1)
	})

	t.Run("unread count follows read flips", func(t *testing.T) {
		unread, err := store.CountUnread(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(3), unread)

		require.NoError(t, repo.MarkRead(ctx, owner, newest.ID()))

		unread, err = store.CountUnread(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(2), unread)
	})
}
