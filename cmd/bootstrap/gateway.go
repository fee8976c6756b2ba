package bootstrap

import (
	"moveit-backend/internal/infra/gateway"
	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.GatewayConfig {
			return cfg.Gateway
		},
		fx.Annotate(
			func(cfg config.GatewayConfig) *gateway.FlutterwaveClient {
				return gateway.NewFlutterwaveClient(cfg)
			},
			fx.As(new(commands.PaymentGateway)),
		),
	),
)
