//go:build unit

package negotiation_test

import (
	"testing"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constructorCase struct {
	name   string
	mutate func(*builder.OrderRequestBuilder)
	errIs  error
}

func TestNewOrderRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, negotiation.StatusPending, actual.Status())
		assert.Equal(t, b.CreatedBy, actual.LastActor())
		assert.Equal(t, 1, actual.TurnCount())
		assert.Nil(t, actual.OrderID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.NoError(t, actual.Invariants())
	})

	t.Run("seller can open the negotiation", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder().With(func(b *builder.OrderRequestBuilder) {
			b.CreatedBy = b.SellerID
		})
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, b.SellerID, actual.LastActor())
	})

	t.Run("constructor validation", func(t *testing.T) {
		runConstructorCases(t, []constructorCase{
			{
				name:   "client and seller must differ",
				mutate: func(b *builder.OrderRequestBuilder) { b.SellerID = b.ClientID; b.CreatedBy = b.ClientID },
				errIs:  negotiation.ErrSameParty,
			},
			{
				name:   "creator must be a party",
				mutate: func(b *builder.OrderRequestBuilder) { b.CreatedBy = uuid.New() },
				errIs:  negotiation.ErrCreatorNotAParty,
			},
			{
				name:   "expiry in the past",
				mutate: func(b *builder.OrderRequestBuilder) { b.Expires = b.Now.Add(-time.Hour) },
				errIs:  negotiation.ErrExpiryNotFuture,
			},
			{
				name:   "expiry equal to now",
				mutate: func(b *builder.OrderRequestBuilder) { b.Expires = b.Now },
				errIs:  negotiation.ErrExpiryNotFuture,
			},
		})
	})
}

func runConstructorCases(t *testing.T, cases []constructorCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOrderRequestBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
		})
	}
}

func counterAction(b *builder.OrderRequestBuilder, expires time.Time) negotiation.Counter {
	return negotiation.Counter{
		Package: b.BuildPackage(),
		Pricing: b.BuildPricing(),
		Expires: expires,
	}
}

func TestOrderRequest_Apply_TransitionTable(t *testing.T) {
	type tableCase struct {
		name     string
		action   negotiation.Action
		asSeller bool
		wantTo   negotiation.Status
		errIs    error
	}

	t.Run("from pending", func(t *testing.T) {
		cases := []tableCase{
			{name: "accept", action: negotiation.Accept{}, asSeller: true, wantTo: negotiation.StatusAccepted},
			{name: "decline", action: negotiation.Decline{}, asSeller: true, wantTo: negotiation.StatusDeclined},
			{name: "expire", action: negotiation.Expire{}, wantTo: negotiation.StatusExpired},
			{name: "fulfill rejected", action: negotiation.Fulfill{OrderID: uuid.New()}, errIs: negotiation.ErrInvalidTransition},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewOrderRequestBuilder()
				req, err := b.BuildDomain()
				require.NoError(t, err)

				actor := uuid.Nil
				if tc.asSeller {
					actor = b.SellerID
				}
				later := b.Now.Add(time.Hour)

				tr, err := req.Apply(tc.action, actor, later)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Equal(t, negotiation.StatusPending, req.Status())
					return
				}
				require.NoError(t, err)
				assert.Equal(t, negotiation.StatusPending, tr.From)
				assert.Equal(t, tc.wantTo, tr.To)
				assert.Equal(t, tc.wantTo, req.Status())
				assert.Equal(t, later, req.ActionTaken())
			})
		}
	})

	t.Run("counter from pending restarts the window", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		newTerms := builder.NewOrderRequestBuilder().With(func(nb *builder.OrderRequestBuilder) {
			nb.DeliveryDays = 21
			nb.PackageType = "premium"
		})
		newExpires := b.Now.Add(96 * time.Hour)

		tr, err := req.Apply(counterAction(newTerms, newExpires), b.SellerID, b.Now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusCountered, tr.To)
		assert.Equal(t, "premium", req.Package().Kind())
		assert.Equal(t, 21, req.Package().DeliveryDays())
		assert.Equal(t, newExpires, req.Expires())
		assert.Equal(t, b.SellerID, req.LastActor())
		assert.Equal(t, 2, req.TurnCount())
	})

	t.Run("terminal states reject every action", func(t *testing.T) {
		terminalVia := map[string]negotiation.Action{
			"declined": negotiation.Decline{},
			"expired":  negotiation.Expire{},
		}
		for name, settle := range terminalVia {
			t.Run(name, func(t *testing.T) {
				b := builder.NewOrderRequestBuilder()
				req, err := b.BuildDomain()
				require.NoError(t, err)

				actor := b.SellerID
				if settle.Kind().IsSystem() {
					actor = uuid.Nil
				}
				_, err = req.Apply(settle, actor, b.Now.Add(time.Minute))
				require.NoError(t, err)

				for _, action := range []negotiation.Action{
					negotiation.Accept{},
					negotiation.Decline{},
					counterAction(b, b.Now.Add(time.Hour)),
					negotiation.Expire{},
					negotiation.Fulfill{OrderID: uuid.New()},
				} {
					_, err := req.Apply(action, b.ClientID, b.Now.Add(2*time.Minute))
					assert.ErrorIs(t, err, negotiation.ErrInvalidTransition, "action %s", action.Kind())
				}
			})
		}
	})

	t.Run("accepted only admits fulfill", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = req.Apply(negotiation.Accept{}, b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)

		_, err = req.Apply(negotiation.Accept{}, b.ClientID, b.Now.Add(2*time.Minute))
		assert.ErrorIs(t, err, negotiation.ErrInvalidTransition)

		orderID := uuid.New()
		tr, err := req.Apply(negotiation.Fulfill{OrderID: orderID}, uuid.Nil, b.Now.Add(3*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusCompleted, tr.To)
		require.NotNil(t, req.OrderID())
		assert.Equal(t, orderID, *req.OrderID())
		assert.NoError(t, req.Invariants())
	})

	t.Run("fulfill requires an order id", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = req.Apply(negotiation.Accept{}, b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)

		_, err = req.Apply(negotiation.Fulfill{}, uuid.Nil, b.Now.Add(2*time.Minute))
		assert.ErrorIs(t, err, negotiation.ErrOrderIDRequired)
		assert.Equal(t, negotiation.StatusAccepted, req.Status())
	})
}

func TestOrderRequest_Apply_TurnAlternation(t *testing.T) {
	t.Run("creator cannot answer their own offer", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = req.Apply(negotiation.Accept{}, b.ClientID, b.Now.Add(time.Minute))
		assert.ErrorIs(t, err, negotiation.ErrOutOfTurn)
	})

	t.Run("turns swap across counter-offers", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = req.Apply(counterAction(b, b.Now.Add(80*time.Hour)), b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)

		// Seller just countered, so it is the client's move.
		_, err = req.Apply(counterAction(b, b.Now.Add(90*time.Hour)), b.SellerID, b.Now.Add(2*time.Minute))
		assert.ErrorIs(t, err, negotiation.ErrOutOfTurn)

		tr, err := req.Apply(negotiation.Accept{}, b.ClientID, b.Now.Add(3*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusAccepted, tr.To)
		assert.Equal(t, 3, req.TurnCount())
	})

	t.Run("strangers are rejected before turn checks", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = req.Apply(negotiation.Accept{}, uuid.New(), b.Now.Add(time.Minute))
		assert.ErrorIs(t, err, negotiation.ErrNotAParty)
	})
}

func TestOrderRequest_Apply_Expiry(t *testing.T) {
	t.Run("party action after expiry is rejected", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		past := b.Expires.Add(time.Minute)
		_, err = req.Apply(negotiation.Accept{}, b.SellerID, past)
		assert.ErrorIs(t, err, negotiation.ErrRequestExpired)
		assert.Equal(t, negotiation.StatusPending, req.Status())
	})

	t.Run("system expire still lands after the deadline", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		past := b.Expires.Add(time.Minute)
		tr, err := req.Apply(negotiation.Expire{}, uuid.Nil, past)
		require.NoError(t, err)
		assert.Equal(t, negotiation.StatusExpired, tr.To)
		assert.True(t, tr.IsSystem())
		// System transitions do not consume a turn.
		assert.Equal(t, 1, req.TurnCount())
	})

	t.Run("counter with past expiry is rejected", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		_, err = req.Apply(counterAction(b, b.Now.Add(-time.Hour)), b.SellerID, b.Now.Add(time.Minute))
		assert.ErrorIs(t, err, negotiation.ErrExpiryNotFuture)
	})

	t.Run("IsDue tracks only awaiting-reply states", func(t *testing.T) {
		b := builder.NewOrderRequestBuilder()
		req, err := b.BuildDomain()
		require.NoError(t, err)

		assert.False(t, req.IsDue(b.Now))
		assert.True(t, req.IsDue(b.Expires.Add(time.Second)))

		_, err = req.Apply(negotiation.Accept{}, b.SellerID, b.Now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, req.IsDue(b.Expires.Add(time.Hour)))
	})
}

func TestOrderRequest_Counterpart(t *testing.T) {
	b := builder.NewOrderRequestBuilder()
	req, err := b.BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, b.SellerID, req.Counterpart(b.ClientID))
	assert.Equal(t, b.ClientID, req.Counterpart(b.SellerID))
}
