package components

import (
	"gig-negotiation/internal/handler"
	"gig-negotiation/internal/handler/api"
	"gig-negotiation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderRequestHandler,
		api.NewNotificationHandler,
		api.NewSweepHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
