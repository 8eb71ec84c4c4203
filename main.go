// File: agendo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendo/config"
	"agendo/database"
	appointmentRepo "agendo/database/repository/appointment"
	availabilityRepo "agendo/database/repository/availability"
	blockedRepo "agendo/database/repository/blocked"
	providerRepo "agendo/database/repository/provider"
	reviewRepo "agendo/database/repository/review"
	serviceRepo "agendo/database/repository/service"
	"agendo/handlers"
	"agendo/middleware"
	"agendo/routes"
	"agendo/services/availability"
	"agendo/services/ranking"
	"agendo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSlotCache()
	utils.StartHealthMonitor(utils.GetSlotCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	blockRepo := blockedRepo.NewMongoBlockedRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()
	provRepo := providerRepo.NewMongoProviderRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()

	// services.
	slotCache := availability.NewRedisSlotCache(utils.GetSlotCacheClient())
	availabilityService := availability.NewAvailabilityService(availRepo, apptRepo, blockRepo, svcRepo, slotCache)
	availabilityService.CacheTTL = time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second
	if config.AppConfig.SlotStepMinutes > 0 {
		availabilityService.DefaultStep = config.AppConfig.SlotStepMinutes
	}

	rankingService := ranking.NewRankingService(provRepo, revRepo, apptRepo, svcRepo, availabilityService)

	// handlers.
	generateTimeout := time.Duration(config.AppConfig.GenerateTimeoutSeconds) * time.Second
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, generateTimeout)
	rankingHandler := handlers.NewRankingHandler(rankingService)

	// Register routes.
	routes.RegisterRoutes(router, availabilityHandler, rankingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
