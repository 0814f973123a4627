package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"elope/internal/config"
	"elope/internal/services"
	mem "elope/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore, provideQuizService)

func provideSessionStore() mem.QuizSessionStore {
	return mem.NewQuizSessions()
}

func provideQuizService(sessions mem.QuizSessionStore, trips services.TripServiceInterface, cfg *config.Config, logger *zap.Logger) services.QuizServiceInterface {
	return services.NewQuizService(sessions, trips, cfg.QuizSessionTTL, logger)
}
