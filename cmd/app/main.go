package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wayfare/cmd/fx/config_fx"
	"wayfare/cmd/fx/itinerary_fx"
	"wayfare/cmd/fx/places_fx"
	"wayfare/internal/api/controllers"
	"wayfare/internal/config"
	"wayfare/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		config_fx.Module,
		places_fx.Module,
		itinerary_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%d", cfg.Server.Port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.CorsOrigins))

	RegisterRoutes(r, placesController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	itineraryController *controllers.ItineraryController) {

	placesGroup := r.Group("/places")
	placesGroup.POST("/fetch", placesController.FetchPlaces)
	placesGroup.GET("/:sessionId", placesController.GetPlaces)
	placesGroup.GET("/:sessionId/export", placesController.ExportPlaces)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/generate", itineraryController.GenerateItinerary)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})
}
