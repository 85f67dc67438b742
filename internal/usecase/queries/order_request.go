package queries

import (
	"context"
	"time"

	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound    = errs.New("order request not found")
	ErrRequestAccess      = errs.New("order request access denied")
	ErrRequestQueryFailed = errs.New("order request query failed")
)

// Read models (DTO for read side)
type OrderRequestView struct {
	ID           uuid.UUID       `json:"id"`
	ClientID     uuid.UUID       `json:"client_id"`
	SellerID     uuid.UUID       `json:"seller_id"`
	Status       string          `json:"status"`
	Revisions    string          `json:"revisions"`
	DeliveryDays int             `json:"delivery_days"`
	PackageType  string          `json:"package_type"`
	SubTotal     decimal.Decimal `json:"sub_total"`
	Total        decimal.Decimal `json:"total"`
	Expires      time.Time       `json:"expires"`
	ActionTaken  time.Time       `json:"action_taken"`
	LastActor    uuid.UUID       `json:"last_actor"`
	TurnCount    int             `json:"turn_count"`
	OrderID      *uuid.UUID      `json:"order_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type OrderRequestListItem struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	Status      string          `json:"status"`
	PackageType string          `json:"package_type"`
	Total       decimal.Decimal `json:"total"`
	Expires     time.Time       `json:"expires"`
	ActionTaken time.Time       `json:"action_taken"`
}

type OrderRequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderRequestView, error)
	FindByParty(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderRequestListItem, error)
}

type OrderRequestQueries interface {
	// GetByID is scoped to the two parties of the request.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderRequestView, error)
	ListByParty(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderRequestListItem, error)
}

type orderRequestQueriesImpl struct {
	store OrderRequestReadStore
}

func NewOrderRequestQueries(store OrderRequestReadStore) OrderRequestQueries {
	return &orderRequestQueriesImpl{store: store}
}

func (q *orderRequestQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*OrderRequestView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrRequestQueryFailed)
	}
	if actorID != view.ClientID && actorID != view.SellerID {
		return nil, ErrRequestAccess
	}
	return view, nil
}

func (q *orderRequestQueriesImpl) ListByParty(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderRequestListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	items, err := q.store.FindByParty(ctx, userID, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrRequestQueryFailed)
	}
	return items, nil
}
