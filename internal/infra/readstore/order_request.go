package readstore

import (
	"context"
	"errors"

	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRequestReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderRequestReadStore(pool *pgxpool.Pool) *OrderRequestReadStore {
	return &OrderRequestReadStore{pool: pool}
}

func (s *OrderRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderRequestView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, client_id, seller_id, status, revisions, delivery_days, package_type,
		       sub_total, total, expires_at, action_taken_at, last_actor, turn_count,
		       order_id, created_at, updated_at
		FROM order_requests
		WHERE id = $1
	`, id)

	var v queries.OrderRequestView
	err := row.Scan(
		&v.ID, &v.ClientID, &v.SellerID, &v.Status, &v.Revisions, &v.DeliveryDays, &v.PackageType,
		&v.SubTotal, &v.Total, &v.Expires, &v.ActionTaken, &v.LastActor, &v.TurnCount,
		&v.OrderID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order request not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read order request", err)
	}
	return &v, nil
}

// FindByParty lists requests in which the user appears on either side,
// most recently acted on first.
func (s *OrderRequestReadStore) FindByParty(ctx context.Context, userID uuid.UUID, limit int) ([]*queries.OrderRequestListItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, client_id, seller_id, status, package_type, total, expires_at, action_taken_at
		FROM order_requests
		WHERE client_id = $1 OR seller_id = $1
		ORDER BY action_taken_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list order requests", err)
	}
	defer rows.Close()

	items := make([]*queries.OrderRequestListItem, 0, limit)
	for rows.Next() {
		var it queries.OrderRequestListItem
		if err := rows.Scan(
			&it.ID, &it.ClientID, &it.SellerID, &it.Status,
			&it.PackageType, &it.Total, &it.Expires, &it.ActionTaken,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order request row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate order request rows", err)
	}
	return items, nil
}
