package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cgtourism/cmd/fx/aifx"
	"cgtourism/cmd/fx/assistantfx"
	"cgtourism/cmd/fx/contentfx"
	"cgtourism/cmd/fx/dbfx"
	"cgtourism/cmd/fx/gemsfx"
	"cgtourism/cmd/fx/weatherfx"
	"cgtourism/internal/api/controllers"
	"cgtourism/internal/infra"
	"cgtourism/pkg/ai"
	"cgtourism/pkg/config"
	"cgtourism/pkg/middleware"
)

// Submitted images are data-URLs capped at 5 MB; the extra megabyte covers
// base64 expansion and the rest of the JSON body.
const maxGemBodyBytes = 6 << 20

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		dbfx.Module,
		aifx.Module,
		gemsfx.Module,
		assistantfx.Module,
		weatherfx.Module,
		contentfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, aiClient ai.Client) {
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
			infra.ClosePostgresql(db)
			return aiClient.Close()
		},
	})
}

func ProvideRouter(
	gemsController *controllers.GemsController,
	assistantController *controllers.AssistantController,
	weatherController *controllers.WeatherController,
	contentController *controllers.ContentController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, gemsController, assistantController, weatherController, contentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	gemsController *controllers.GemsController,
	assistantController *controllers.AssistantController,
	weatherController *controllers.WeatherController,
	contentController *controllers.ContentController) {

	api := r.Group("/api")

	gemsGroup := api.Group("/gems")
	gemsGroup.Use(middleware.BodySizeLimit(maxGemBodyBytes))
	gemsGroup.GET("", gemsController.ListGems)
	gemsGroup.POST("", gemsController.CreateGem)

	assistantGroup := api.Group("/assistant")
	assistantGroup.POST("/chat", assistantController.Chat)
	assistantGroup.DELETE("/chat/:sessionId", assistantController.ResetChat)
	assistantGroup.POST("/itinerary", assistantController.GenerateItinerary)
	assistantGroup.POST("/folklore", assistantController.GenerateFolklore)
	assistantGroup.POST("/tribal-detail", assistantController.GetTribalDetail)
	assistantGroup.POST("/art", assistantController.GenerateArt)

	api.GET("/weather/:city", weatherController.GetWeather)
	api.GET("/destinations", contentController.ListDestinations)
	api.GET("/tribal-items", contentController.ListTribalItems)
	api.GET("/cities", contentController.ListCities)
}
