// File: pawbooker/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawbooker/config"
	"pawbooker/cron"
	"pawbooker/database"
	blackoutRepo "pawbooker/database/repository/blackout"
	bookingRepo "pawbooker/database/repository/booking"
	ruleRepo "pawbooker/database/repository/rule"
	serviceRepo "pawbooker/database/repository/service"
	"pawbooker/handlers"
	"pawbooker/middleware"
	"pawbooker/routes"
	"pawbooker/services/admin"
	"pawbooker/services/availability"
	"pawbooker/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	businessLoc, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	boRepo := blackoutRepo.NewMongoBlackoutRepo()
	rlRepo := ruleRepo.NewMongoRuleRepo()

	// services.
	engine := &availability.DefaultEngine{
		ServiceRepo:  svcRepo,
		BookingRepo:  bkRepo,
		BlackoutRepo: boRepo,
		RuleRepo:     rlRepo,
		Location:     businessLoc,
		HoldTTL:      time.Duration(config.AppConfig.HoldTTLMins) * time.Minute,
	}
	adminService := &admin.DefaultAdminService{
		BlackoutRepo: boRepo,
		RuleRepo:     rlRepo,
		ServiceRepo:  svcRepo,
	}

	cacheClient := utils.GetCacheClient()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(engine, cacheClient, logger),
		Booking:      handlers.NewBookingHandler(engine, cacheClient, logger),
		Catalog:      handlers.NewCatalogHandler(svcRepo, logger),
		Admin:        handlers.NewAdminHandler(adminService, cacheClient, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitHoldSweeper(engine)
	utils.StartHealthMonitor(cacheClient, database.MongoClient)

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
