package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	logger     *zap.Logger
}

// NewOSRMClient creates a client for the OSRM route API
func NewOSRMClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		profile: cfg.Profile,
		logger:  logger,
	}
}

// GetDrivingRoute requests one route between origin and destination.
// OSRM expects lon,lat ordering in the path.
func (c *client) GetDrivingRoute(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
) (*domain.RoutePath, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL,
		c.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	c.logger.Debug("Calling OSRM route API",
		zap.String("url", url),
		zap.Float64("origin_lat", origin.Lat),
		zap.Float64("origin_lon", origin.Lon),
		zap.Float64("dest_lat", destination.Lat),
		zap.Float64("dest_lon", destination.Lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OSRM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("osrm API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var routeResp domain.RouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if routeResp.Code != "Ok" {
		c.logger.Error("OSRM API returned non-OK code",
			zap.String("code", routeResp.Code),
			zap.String("message", routeResp.Message))
		return nil, fmt.Errorf("osrm API returned code: %s", routeResp.Code)
	}

	if len(routeResp.Routes) == 0 {
		c.logger.Error("OSRM API returned no routes")
		return nil, fmt.Errorf("osrm API returned no routes")
	}

	best := routeResp.Routes[0]

	c.logger.Debug("OSRM route API call successful",
		zap.Float64("distance_m", best.Distance),
		zap.Float64("duration_s", best.Duration))

	return &domain.RoutePath{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        best.Geometry,
	}, nil
}
