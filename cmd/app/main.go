package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"elope/cmd/fx/account_fx"
	"elope/cmd/fx/config_fx"
	"elope/cmd/fx/controllers_fx"
	"elope/cmd/fx/db_fx"
	"elope/cmd/fx/explore_fx"
	"elope/cmd/fx/quiz_fx"
	"elope/cmd/fx/trip_fx"
	"elope/internal/api/controllers"
	"elope/internal/config"
	"elope/pkg/middleware"
	"elope/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		quiz_fx.Module,
		explore_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenMinter,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	tripController *controllers.TripController,
	quizController *controllers.QuizController,
	exploreController *controllers.ExploreController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tokens, accountController, catalogController, tripController, quizController, exploreController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.TokenMinter,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	tripController *controllers.TripController,
	quizController *controllers.QuizController,
	exploreController *controllers.ExploreController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	catalogGroup := r.Group("/catalog")
	catalogGroup.GET("/cities", catalogController.ListCities)
	catalogGroup.GET("/cities/:id", catalogController.GetCity)

	auth := middleware.JWTAuthMiddleware(tokens)

	tripGroup := r.Group("/trips", auth)
	tripGroup.POST("", tripController.CreateTrip)
	tripGroup.GET("", tripController.ListTrips)

	quizGroup := r.Group("/quiz", auth)
	quizGroup.POST("/start", quizController.StartSession)
	quizGroup.GET("/:id", quizController.GetSession)
	quizGroup.POST("/:id/event", quizController.ApplyEvent)
	quizGroup.POST("/:id/save", quizController.SaveSession)

	r.GET("/explore", auth, exploreController.Explore)
}
