package controllers_fx

import (
	"go.uber.org/fx"

	"elope/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewExploreController))
