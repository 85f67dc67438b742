package components

import (
	"context"
	"log/slog"

	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(
		registerDispatcher,
		registerSweeper,
	),
)

func NewSweeper(sweep commands.SweeperCommands, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(sweep, cfg.Sweep.Interval, logger)
}

func registerDispatcher(lc fx.Lifecycle, dispatcher *commands.NotificationDispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			dispatcher.Stop()
			return nil
		},
	})
}

func registerSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
