package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"elope/internal/config"
)

var Module = fx.Provide(
	config.Load, provideLogger)

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
