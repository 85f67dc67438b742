package repository

import (
	"context"
	"errors"
	"time"

	"gig-negotiation/internal/domain/negotiation"
	"gig-negotiation/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const orderRequestColumns = `
	id, client_id, seller_id, status, revisions, delivery_days, package_type,
	sub_total, total, expires_at, action_taken_at, last_actor, turn_count,
	order_id, version, created_at, updated_at`

type OrderRequestRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRequestRepository(pool *pgxpool.Pool) *OrderRequestRepository {
	return &OrderRequestRepository{pool: pool}
}

func (r *OrderRequestRepository) Create(ctx context.Context, req *negotiation.OrderRequest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO order_requests
		(id, client_id, seller_id, status, revisions, delivery_days, package_type,
		 sub_total, total, expires_at, action_taken_at, last_actor, turn_count,
		 order_id, version, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,1,$15,$16)
	`,
		req.ID(), req.ClientID(), req.SellerID(), req.Status().String(),
		req.Package().Revisions(), req.Package().DeliveryDays(), req.Package().Kind(),
		req.Pricing().SubTotal().Decimal(), req.Pricing().Total().Decimal(),
		req.Expires(), req.ActionTaken(), req.LastActor(), req.TurnCount(),
		req.OrderID(), req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "order request already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create order request", err)
	}
	return nil
}

func (r *OrderRequestRepository) Get(ctx context.Context, id uuid.UUID) (*negotiation.OrderRequest, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderRequestColumns+` FROM order_requests WHERE id = $1`, id)

	req, err := scanOrderRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "order request not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to get order request", err)
	}
	return req, nil
}

// Commit persists the mutated request iff nobody else has committed against
// expectedVersion in the meantime. Losing writers get STALE_WRITE and must
// reload.
func (r *OrderRequestRepository) Commit(ctx context.Context, req *negotiation.OrderRequest, expectedVersion int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE order_requests SET
			status = $2, revisions = $3, delivery_days = $4, package_type = $5,
			sub_total = $6, total = $7, expires_at = $8, action_taken_at = $9,
			last_actor = $10, turn_count = $11, order_id = $12,
			version = version + 1, updated_at = $13
		WHERE id = $1 AND version = $14
	`,
		req.ID(), req.Status().String(),
		req.Package().Revisions(), req.Package().DeliveryDays(), req.Package().Kind(),
		req.Pricing().SubTotal().Decimal(), req.Pricing().Total().Decimal(),
		req.Expires(), req.ActionTaken(), req.LastActor(), req.TurnCount(),
		req.OrderID(), req.UpdatedAt(), expectedVersion,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit order request", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if qErr := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM order_requests WHERE id = $1)`, req.ID()).Scan(&exists); qErr != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to check order request existence", qErr)
		}
		if !exists {
			return infra.WrapRepoErr(infra.KindNotFound, "order request not found", nil)
		}
		return infra.WrapRepoErr(infra.KindStaleWrite, "order request version conflict", nil)
	}
	return nil
}

// ListDue returns requests still awaiting a reply whose expiry has passed.
func (r *OrderRequestRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*negotiation.OrderRequest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderRequestColumns+`
		FROM order_requests
		WHERE status IN ('pending', 'countered') AND expires_at < $1
		ORDER BY expires_at ASC
		LIMIT $2
	`, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list due order requests", err)
	}
	defer rows.Close()

	var out []*negotiation.OrderRequest
	for rows.Next() {
		req, err := scanOrderRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan order request", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate due order requests", err)
	}
	return out, nil
}

func scanOrderRequest(row pgx.Row) (*negotiation.OrderRequest, error) {
	var (
		id, clientID, sellerID, lastActor uuid.UUID
		status, revisions, packageType    string
		deliveryDays, turnCount           int
		subTotal, total                   decimal.Decimal
		expires, actionTaken              time.Time
		orderID                           *uuid.UUID
		version                           int64
		createdAt, updatedAt              time.Time
	)
	if err := row.Scan(
		&id, &clientID, &sellerID, &status, &revisions, &deliveryDays, &packageType,
		&subTotal, &total, &expires, &actionTaken, &lastActor, &turnCount,
		&orderID, &version, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return negotiation.ReconstructOrderRequest(
		id, clientID, sellerID,
		negotiation.Status(status),
		negotiation.ReconstructServicePackage(revisions, deliveryDays, packageType),
		negotiation.ReconstructPricing(subTotal, total),
		expires, actionTaken,
		lastActor, turnCount,
		orderID, version,
		createdAt, updatedAt,
	), nil
}
