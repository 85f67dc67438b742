//go:build unit

package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/infra/repository/memory"
	"gig-negotiation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRequestStore_CreateGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewOrderRequestStore()

	req, err := builder.NewOrderRequestBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, store.Create(ctx, req))

	t.Run("duplicate create", func(t *testing.T) {
		err := store.Create(ctx, req)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("get returns a detached copy", func(t *testing.T) {
		got, err := store.Get(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, req.ID(), got.ID())
		assert.Equal(t, int64(1), got.Version())

		// Mutating the copy must not leak into the store.
		_, err = got.Apply(negotiation.Decline{}, got.SellerID(), got.Expires().Add(-time.Hour))
		require.NoError(t, err)

		fresh, err := store.Get(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusPending, fresh.Status())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderRequestStore_CommitVersioning(t *testing.T) {
	ctx := context.Background()

	t.Run("commit bumps the version", func(t *testing.T) {
		store := memory.NewOrderRequestStore()
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, req))

		loaded, err := store.Get(ctx, req.ID())
		require.NoError(t, err)
		_, err = loaded.Apply(negotiation.Accept{}, b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)

		require.NoError(t, store.Commit(ctx, loaded, loaded.Version()))

		fresh, err := store.Get(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(2), fresh.Version())
		assert.Equal(t, negotiation.StatusAccepted, fresh.Status())
	})

	t.Run("stale version is rejected", func(t *testing.T) {
		store := memory.NewOrderRequestStore()
		req, err := builder.NewOrderRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, req))

		err = store.Commit(ctx, req, 99)
		assert.True(t, infra.IsKind(err, infra.KindStaleWrite))
	})

	t.Run("exactly one of two concurrent commits wins", func(t *testing.T) {
		store := memory.NewOrderRequestStore()
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, req))

		apply := func(action negotiation.Action, actor uuid.UUID) *negotiation.OrderRequest {
			loaded, err := store.Get(ctx, req.ID())
			require.NoError(t, err)
			_, err = loaded.Apply(action, actor, b.Now.Add(time.Minute))
			require.NoError(t, err)
			return loaded
		}

		accept := apply(negotiation.Accept{}, b.SellerID)
		decline := apply(negotiation.Decline{}, b.SellerID)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, loaded := range []*negotiation.OrderRequest{accept, decline} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = store.Commit(ctx, loaded, loaded.Version())
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
			} else {
				assert.True(t, infra.IsKind(err, infra.KindStaleWrite))
			}
		}
		assert.Equal(t, 1, winners)

		fresh, err := store.Get(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(2), fresh.Version())
		assert.True(t, fresh.Status() == negotiation.StatusAccepted || fresh.Status() == negotiation.StatusDeclined)
	})
}

func TestOrderRequestStore_ListDue(t *testing.T) {
	ctx := context.Background()
	store := memory.NewOrderRequestStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mustSeed := func(expires time.Time) *negotiation.OrderRequest {
		b := builder.NewOrderRequestBuilder()
		b.Expires = expires
		req, err := b.BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, req))
		return req
	}

	due := mustSeed(now.Add(time.Hour))
	mustSeed(now.Add(50 * time.Hour))

	listed, err := store.ListDue(ctx, now.Add(2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, due.ID(), listed[0].ID())
}
