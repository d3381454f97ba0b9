// File: shramic/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shramic/config"
	"shramic/database"
	bookingRepoPkg "shramic/database/repository/booking"
	equipmentRepoPkg "shramic/database/repository/equipment"
	"shramic/handlers"
	"shramic/middleware"
	"shramic/routes"
	"shramic/services/dashboard"
	"shramic/services/listing"
	"shramic/services/storage"
	"shramic/services/verification"
	"shramic/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitOTPCache()
	utils.FirebaseInit()

	storageService, err := storage.NewFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	equipmentRepo := equipmentRepoPkg.NewMongoEquipmentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	otpProvider := &verification.RedisOTPProvider{
		Cache:  utils.GetOTPCacheClient(),
		Sender: &verification.LogSMSSender{},
		Auth:   utils.GetAuthClient(),
	}
	verificationManager := verification.NewManager(otpProvider, verification.PolicyFromConfig(), verification.Options{})
	defer verificationManager.Shutdown()

	listingService := &listing.DefaultListingService{
		Repo:    equipmentRepo,
		Storage: storageService,
	}

	dashboardService := &dashboard.DefaultDashboardService{
		EquipmentRepo: equipmentRepo,
		BookingRepo:   bookingRepo,
		Cache:         utils.GetCacheClient(),
		CacheTTL:      30 * time.Second,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verification: handlers.NewVerificationHandler(verificationManager),
		Equipment:    handlers.NewEquipmentHandler(listingService, dashboardService, equipmentRepo),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"otp":   utils.GetOTPCacheClient(),
	}, database.MongoClient)

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
