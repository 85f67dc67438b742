package readstore

import (
	"context"

	"gig-negotiation/internal/infra"
	"gig-negotiation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationReadStore struct {
	pool *pgxpool.Pool
}

func NewNotificationReadStore(pool *pgxpool.Pool) *NotificationReadStore {
	return &NotificationReadStore{pool: pool}
}

func (s *NotificationReadStore) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*queries.NotificationView, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, request_id, kind, read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, recipientID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	items := make([]*queries.NotificationView, 0, limit)
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.RequestID, &v.Kind, &v.Read, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate notification rows", err)
	}
	return items, nil
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications
		WHERE recipient_id = $1 AND read = FALSE
	`, recipientID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count unread notifications", err)
	}
	return count, nil
}
