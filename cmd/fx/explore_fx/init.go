package explore_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"elope/internal/repositories"
	"elope/internal/services"
)

var Module = fx.Provide(provideExploreService)

func provideExploreService(tripRepo repositories.TripRepository, logger *zap.Logger) services.ExploreServiceInterface {
	return services.NewExploreService(tripRepo, logger)
}
