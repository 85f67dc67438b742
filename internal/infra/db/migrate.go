package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied idempotently at startup. Order requests carry an explicit
// version column for optimistic concurrency; notifications are append-only.
const schema = `
CREATE TABLE IF NOT EXISTS order_requests (
    id              UUID PRIMARY KEY,
    client_id       UUID NOT NULL,
    seller_id       UUID NOT NULL,
    status          TEXT NOT NULL,
    revisions       TEXT NOT NULL,
    delivery_days   INT NOT NULL,
    package_type    TEXT NOT NULL,
    sub_total       NUMERIC(12,2) NOT NULL,
    total           NUMERIC(12,2) NOT NULL,
    expires_at      TIMESTAMPTZ NOT NULL,
    action_taken_at TIMESTAMPTZ NOT NULL,
    last_actor      UUID NOT NULL,
    turn_count      INT NOT NULL,
    order_id        UUID,
    version         BIGINT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT order_requests_distinct_parties CHECK (client_id <> seller_id),
    CONSTRAINT order_requests_order_id_completed CHECK ((order_id IS NOT NULL) = (status = 'completed'))
);

CREATE INDEX IF NOT EXISTS idx_order_requests_party
    ON order_requests (client_id, seller_id);
CREATE INDEX IF NOT EXISTS idx_order_requests_due
    ON order_requests (expires_at)
    WHERE status IN ('pending', 'countered');

CREATE TABLE IF NOT EXISTS notifications (
    id           UUID PRIMARY KEY,
    recipient_id UUID NOT NULL,
    request_id   UUID NOT NULL,
    kind         TEXT NOT NULL,
    read         BOOLEAN NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_notifications_recipient
    ON notifications (recipient_id, created_at DESC);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
