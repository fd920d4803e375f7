// Command server exposes the ride-sharing model over HTTP. It starts from
// the demonstration data set and accepts new rides, assignments and
// requests. Configuration comes from RIDESHARE_* environment variables.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"ridesharing/internal/api"
	"ridesharing/internal/api/handlers"
	"ridesharing/internal/config"
	"ridesharing/internal/demo"
	"ridesharing/internal/logger"
	"ridesharing/internal/repository/memory"
	"ridesharing/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(config.NewDefaultConfig().Log).WithError(err).Fatal("failed to load config")
	}
	log := logger.New(cfg.Log)

	// Initialize repositories
	rideRepo := memory.NewRideRepository()
	driverRepo := memory.NewDriverRepository()
	riderRepo := memory.NewRiderRepository()

	// Initialize services
	notificationService := services.NewNotificationService(os.Stdout, log)
	dispatchService := services.NewDispatchService(rideRepo, driverRepo, riderRepo, notificationService, log)

	if err := demo.Seed(context.Background(), dispatchService); err != nil {
		log.WithError(err).Fatal("failed to seed sample data")
	}

	// Initialize handlers
	rideHandler := handlers.NewRideHandler(dispatchService)
	driverHandler := handlers.NewDriverHandler(dispatchService)
	riderHandler := handlers.NewRiderHandler(dispatchService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	router := api.NewRouter(rideHandler, driverHandler, riderHandler, notificationHandler, log)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	router.Setup(engine)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.WithField("addr", cfg.Server.Port).Info("starting ride-sharing server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}
