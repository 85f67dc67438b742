package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"gig-negotiation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const unreadKeyPrefix = "notif:unread:"

// UnreadCountCache fronts the unread-count query with Redis. A miss or any
// Redis failure falls through to the backing store; the cache is never
// authoritative.
type UnreadCountCache struct {
	client *redis.Client
	next   queries.UnreadCounter
	ttl    time.Duration
	logger *slog.Logger
}

func NewUnreadCountCache(client *redis.Client, next queries.UnreadCounter, ttl time.Duration, logger *slog.Logger) *UnreadCountCache {
	return &UnreadCountCache{client: client, next: next, ttl: ttl, logger: logger}
}

func unreadKey(recipientID uuid.UUID) string {
	return unreadKeyPrefix + recipientID.String()
}

func (c *UnreadCountCache) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	key := unreadKey(recipientID)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		if count, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			return count, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn("unread cache read failed", slog.String("error", err.Error()))
	}

	count, err := c.next.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	if err := c.client.Set(ctx, key, fmt.Sprintf("%d", count), c.ttl).Err(); err != nil {
		c.logger.Warn("unread cache write failed", slog.String("error", err.Error()))
	}
	return count, nil
}

// Invalidate drops the cached count after anything that changes it: a new
// notification or a read-state flip.
func (c *UnreadCountCache) Invalidate(ctx context.Context, recipientID uuid.UUID) error {
	if err := c.client.Del(ctx, unreadKey(recipientID)).Err(); err != nil {
		c.logger.Warn("unread cache invalidation failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
