package components

import (
	"context"
	"log/slog"

	"gig-negotiation/internal/infra/cache"
	"gig-negotiation/internal/infra/readstore"
	repo_impl "gig-negotiation/internal/infra/repository"
	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewOrderRequestRepository,
			fx.As(new(commands.OrderRequestStore)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationStore)),
		),
		fx.Annotate(
			readstore.NewOrderRequestReadStore,
			fx.As(new(queries.OrderRequestReadStore)),
		),
		readstore.NewNotificationReadStore,
		fx.Annotate(
			func(s *readstore.NotificationReadStore) *readstore.NotificationReadStore { return s },
			fx.As(new(queries.NotificationReadStore)),
		),
		NewUnreadReadSide,
	),
)

// NewUnreadReadSide wires the unread-count path: through Redis when an
// address is configured, straight to postgres otherwise.
func NewUnreadReadSide(
	lc fx.Lifecycle,
	cfg config.Config,
	store *readstore.NotificationReadStore,
	logger *slog.Logger,
) (queries.UnreadCounter, commands.UnreadInvalidator, error) {
	if !cfg.Redis.Enabled() {
		return store, commands.NopInvalidator{}, nil
	}

	client, cleanup, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	unread := cache.NewUnreadCountCache(client, store, cfg.Redis.TTL, logger)
	return unread, unread, nil
}
