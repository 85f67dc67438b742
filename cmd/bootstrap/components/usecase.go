package components

import (
	"gig-negotiation/internal/pkg/clock"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewNotificationDispatcher,
	fx.Annotate(
		func(d *commands.NotificationDispatcher) *commands.NotificationDispatcher { return d },
		fx.As(new(commands.Dispatcher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderRequestCommands,
		commands.NewNotificationCommands,
		commands.NewSweeperCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderRequestQueries,
		queries.NewNotificationQueries,
	),
)
