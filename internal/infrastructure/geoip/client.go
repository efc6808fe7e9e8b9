package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"go.uber.org/zap"
)

// lookupResponse mirrors the ip-api style JSON lookup payload
type lookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewGeoIPClient creates a best-effort IP geolocation provider. An empty
// provider URL means the capability is absent, not an error.
func NewGeoIPClient(cfg *config.LocationConfig, logger *zap.Logger) repository.LocationProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.ProviderURL,
		logger:  logger,
	}
}

func (c *client) Available() bool {
	return c.baseURL != ""
}

func (c *client) CurrentLocation(ctx context.Context) (domain.Coordinate, error) {
	if !c.Available() {
		return domain.Coordinate{}, fmt.Errorf("no location provider configured")
	}

	url := c.baseURL + "/json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Location provider returned error",
			zap.Int("status_code", resp.StatusCode))
		return domain.Coordinate{}, fmt.Errorf("location provider error: status %d", resp.StatusCode)
	}

	var lookup lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lookup); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return domain.Coordinate{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if lookup.Status != "success" {
		c.logger.Error("Location provider refused lookup",
			zap.String("status", lookup.Status),
			zap.String("message", lookup.Message))
		return domain.Coordinate{}, fmt.Errorf("location lookup refused: %s", lookup.Message)
	}

	c.logger.Debug("Location lookup successful",
		zap.Float64("lat", lookup.Lat),
		zap.Float64("lon", lookup.Lon))

	return domain.Coordinate{Lat: lookup.Lat, Lon: lookup.Lon}, nil
}
