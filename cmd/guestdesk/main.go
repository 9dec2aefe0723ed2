package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"guestdesk/internal/api"
	"guestdesk/internal/api/handlers"
	"guestdesk/internal/geo"
	"guestdesk/internal/platform"
	"guestdesk/internal/repository"
	"guestdesk/internal/scheduler"
	"guestdesk/internal/service"
	"guestdesk/pkg/auth"
	"guestdesk/pkg/config"
	"guestdesk/pkg/logger"
	"guestdesk/pkg/postgres"
	"guestdesk/pkg/redis"

	"go.uber.org/zap"
)

// @title GuestDesk API
// @version 1.0
// @description Reply suggestion service for hotel guest messages across booking platforms

// @contact.name API Support
// @contact.email support@guestdesk.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting GuestDesk service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional: without it duplicate platform messages are still
	// rejected by the unique index, just with more round trips.
	var ingestMarker service.IngestMarker
	redisClient, err := redis.NewClient(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, ingestion dedup cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		ingestMarker = service.NewRedisIngestMarker(redisClient, cfg.Scheduler.PollInterval*4)
	}

	// Initialize repositories
	hotelRepo := repository.NewHotelRepository(db, appLogger)
	bookingRepo := repository.NewBookingRepository(db, appLogger)
	messageRepo := repository.NewMessageRepository(db, appLogger)
	templateRepo := repository.NewTemplateRepository(db, appLogger)
	responseRepo := repository.NewResponseLogRepository(db, appLogger)
	staffRepo := repository.NewStaffRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(staffRepo, jwtManager, appLogger)
	intentService := service.NewIntentService(appLogger)

	var places geo.Provider
	if cfg.Maps.APIKey != "" {
		places, err = geo.NewGoogleProvider(cfg.Maps.APIKey, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize Google Places client", zap.Error(err))
		}
		appLogger.Info("Using Google Places provider")
	} else {
		places = geo.NewStaticProvider(appLogger)
		appLogger.Info("MAPS_API_KEY not set, using static place data")
	}

	contextService := service.NewContextService(places, cfg.Maps.SearchRadiusM, appLogger)
	analyticsService := service.NewAnalyticsService(bookingRepo, appLogger)
	suggestionService := service.NewSuggestionService(
		templateRepo, messageRepo, responseRepo, contextService, &cfg.Suggest, appLogger)

	connectors := []platform.Connector{
		platform.NewBookingConnector(&cfg.Platforms, appLogger),
		platform.NewAirbnbConnector(&cfg.Platforms, appLogger),
	}
	messageService := service.NewMessageService(
		connectors, hotelRepo, bookingRepo, messageRepo, responseRepo,
		intentService, ingestMarker, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	hotelHandler := handlers.NewHotelHandler(hotelRepo, contextService, analyticsService, appLogger)
	messageHandler := handlers.NewMessageHandler(
		messageService, suggestionService, intentService, hotelRepo, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, hotelHandler, messageHandler, jwtManager, appLogger)

	// Background ingestion
	schedCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	if cfg.Scheduler.Enabled {
		ingestor := scheduler.NewIngestor(hotelRepo, messageService, &cfg.Scheduler, appLogger)
		go ingestor.Run(schedCtx)
	}

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	stopScheduler()
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
