package bootstrap

import (
	"gig-negotiation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.OfferConfig { return cfg.Offer },
		func(cfg config.Config) config.SweepConfig { return cfg.Sweep },
	),
)
