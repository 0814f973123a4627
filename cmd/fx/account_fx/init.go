package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"elope/internal/config"
	"elope/internal/repositories"
	"elope/internal/services"
	"elope/pkg/utils"
)

var Module = fx.Provide(
	provideTokenMinter, provideAccountRepo, provideAccountService)

func provideTokenMinter(cfg *config.Config) *utils.TokenMinter {
	return utils.NewTokenMinter(cfg.JWTSecret, cfg.TokenTTL)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenMinter, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, logger)
}
