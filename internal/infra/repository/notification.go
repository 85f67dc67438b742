package repository

import (
	"context"

	"gig-negotiation/internal/domain/notification"
	"gig-negotiation/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Append(ctx context.Context, n *notification.Notification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (id, recipient_id, request_id, kind, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, n.ID(), n.RecipientID(), n.RequestID(), n.Kind().String(), n.Read(), n.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to append notification", err)
	}
	return nil
}

// MarkRead flips the read flag for a single notification, scoped to its
// owner; a foreign id is indistinguishable from a missing one.
func (r *NotificationRepository) MarkRead(ctx context.Context, recipientID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND recipient_id = $2
	`, id, recipientID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE recipient_id = $1 AND read = FALSE
	`, recipientID)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
