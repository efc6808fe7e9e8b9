package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/delivery/http/handler"
	"github.com/wisata-lombok/internal/delivery/http/middleware"
	"go.uber.org/zap"
)

// Server is the Fiber HTTP server
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	wisataHandler   *handler.WisataHandler
	markerHandler   *handler.MarkerHandler
	locationHandler *handler.LocationHandler
	routeHandler    *handler.RouteHandler
	statsHandler    *handler.StatsHandler
	eventHandler    *handler.EventHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	wisataHandler *handler.WisataHandler,
	markerHandler *handler.MarkerHandler,
	locationHandler *handler.LocationHandler,
	routeHandler *handler.RouteHandler,
	statsHandler *handler.StatsHandler,
	eventHandler *handler.EventHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Wisata Lombok API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		wisataHandler:   wisataHandler,
		markerHandler:   markerHandler,
		locationHandler: locationHandler,
		routeHandler:    routeHandler,
		statsHandler:    statsHandler,
		eventHandler:    eventHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Catalog routes (beranda, kategori, peta result list)
	api.Get("/wisata", s.wisataHandler.List)
	api.Get("/wisata/unggulan", s.wisataHandler.Featured)
	api.Post("/wisata/terdekat", s.wisataHandler.Nearby)
	api.Get("/wisata/:id", s.wisataHandler.GetByID)

	// Map markers
	api.Get("/markers", s.markerHandler.Markers)

	// Location ("Dekat Saya")
	api.Post("/location", s.locationHandler.Locate)

	// Route planning
	api.Post("/route", s.routeHandler.Plan)
	api.Get("/route", s.routeHandler.Current)
	api.Delete("/route", s.routeHandler.Clear)

	// Events page
	api.Get("/events", s.eventHandler.List)
	api.Get("/events/rekomendasi", s.eventHandler.Recommendations)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start runs the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
