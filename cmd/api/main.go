package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wisata-lombok/internal/config"
	httpDelivery "github.com/wisata-lombok/internal/delivery/http"
	"github.com/wisata-lombok/internal/delivery/http/handler"
	"github.com/wisata-lombok/internal/domain"
	domainRepo "github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/infrastructure/geoip"
	"github.com/wisata-lombok/internal/infrastructure/osrm"
	"github.com/wisata-lombok/internal/pkg/logger"
	"github.com/wisata-lombok/internal/repository/cache"
	"github.com/wisata-lombok/internal/repository/catalog"
	"github.com/wisata-lombok/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Wisata Lombok API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Load the static catalog. A missing or broken file degrades to an
	// empty catalog; the service still starts.
	catalogRepo := catalog.NewFileRepository(cfg.Catalog.WisataPath, log)
	eventRepo := catalog.NewEventRepository(cfg.Catalog.EventsPath, log)

	// 4. Connect to Redis. The cache is an optimization: without it every
	// route and stats request goes straight to its source.
	var cacheRepo domainRepo.CacheRepository
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			log.Warn("Redis health check failed, running without cache", zap.Error(err))
		} else {
			cacheRepo = cache.NewCacheRepository(redisClient)
			log.Info("Redis connected and healthy")
		}
		cancel()
	}

	// 5. External service clients
	routingRepo := osrm.NewOSRMClient(&cfg.Routing, log)
	locationProvider := geoip.NewGeoIPClient(&cfg.Location, log)

	// 6. Shared current-position state (written only by the location use case)
	positions := domain.NewPositionStore()

	// 7. Initialize Use Cases
	wisataUC := usecase.NewWisataUseCase(catalogRepo, positions, log)
	markerUC := usecase.NewMarkerUseCase(catalogRepo, log)
	locationUC := usecase.NewLocationUseCase(locationProvider, positions, &cfg.Location, log)
	routeUC := usecase.NewRouteUseCase(
		routingRepo,
		catalogRepo,
		cacheRepo,
		positions,
		log,
		cfg.Cache.RouteCacheTTL,
	)
	statsUC := usecase.NewStatsUseCase(catalogRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)
	eventUC := usecase.NewEventUseCase(eventRepo, catalogRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize Handlers
	wisataHandler := handler.NewWisataHandler(wisataUC, locationUC, log)
	markerHandler := handler.NewMarkerHandler(markerUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	eventHandler := handler.NewEventHandler(eventUC, log)

	// 9. Initialize and start HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		wisataHandler,
		markerHandler,
		locationHandler,
		routeHandler,
		statsHandler,
		eventHandler,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
