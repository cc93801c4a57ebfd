package bootstrap

import (
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads the process environment once at startup; everything
// else receives the resulting Config by injection.
var ConfigModule = fx.Module("config", fx.Provide(config.LoadConfig))
