package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteUseCase plans routes from the current position to a catalog
// destination. At most one route is active; a new request supersedes any
// pending or displayed route before the routing service is contacted, and
// a response belonging to a superseded request is discarded, never
// re-displayed.
type RouteUseCase struct {
	routingRepo repository.RoutingRepository
	catalogRepo repository.CatalogRepository
	cacheRepo   repository.CacheRepository
	positions   *domain.PositionStore
	logger      *zap.Logger
	cacheTTL    time.Duration

	mu         sync.Mutex
	generation uint64
	current    *domain.RouteResult
}

func NewRouteUseCase(
	routingRepo repository.RoutingRepository,
	catalogRepo repository.CatalogRepository,
	cacheRepo repository.CacheRepository,
	positions *domain.PositionStore,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routingRepo: routingRepo,
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		positions:   positions,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Plan requests a route to the destination. NoOrigin when no position fix
// exists; in that case the routing service is never contacted. On a routing
// failure the route state stays cleared.
func (uc *RouteUseCase) Plan(ctx context.Context, req dto.PlanRouteRequest) (*domain.RouteResult, error) {
	dest, ok := uc.catalogRepo.GetByID(req.DestinationID)
	if !ok {
		return nil, errors.ErrWisataNotFound
	}

	origin, ok := uc.positions.Current()
	if !ok {
		return nil, errors.ErrNoOrigin
	}

	// Supersede: the prior route goes away before the new request is sent
	uc.mu.Lock()
	uc.generation++
	gen := uc.generation
	uc.current = nil
	uc.mu.Unlock()

	path, err := uc.resolvePath(ctx, origin, dest.Coordinate())
	if err != nil {
		uc.logger.Error("Route planning failed",
			zap.String("destination_id", dest.ID),
			zap.Error(err))
		return nil, errors.ErrRoutingUnavailable
	}

	result := buildRouteResult(path, dest)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.generation != gen {
		// A newer Plan or Clear won the race; this response is stale
		uc.logger.Debug("Discarding stale route response",
			zap.String("destination_id", dest.ID))
		return nil, errors.ErrRouteSuperseded
	}
	uc.current = result

	uc.logger.Info("Route planned",
		zap.String("route_id", result.ID),
		zap.String("destination", result.DestinationName),
		zap.String("distance_km", result.DistanceKm),
		zap.String("duration", result.DurationText))

	return result, nil
}

// resolvePath consults the cache before the routing service
func (uc *RouteUseCase) resolvePath(
	ctx context.Context,
	origin domain.Coordinate,
	destination domain.Coordinate,
) (*domain.RoutePath, error) {
	key := routeCacheKey(origin, destination)

	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
			var cached domain.RoutePath
			if err := json.Unmarshal(data, &cached); err == nil {
				uc.logger.Debug("Route served from cache", zap.String("key", key))
				return &cached, nil
			}
		}
	}

	path, err := uc.routingRepo.GetDrivingRoute(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(path); err == nil {
			if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache route", zap.String("key", key), zap.Error(err))
			}
		}
	}

	return path, nil
}

// Current returns the active route, if any
func (uc *RouteUseCase) Current() (*domain.RouteResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return nil, errors.ErrNoActiveRoute
	}
	return uc.current, nil
}

// Clear drops the active route and invalidates any in-flight response.
// Idempotent: clearing with no active route is a no-op.
func (uc *RouteUseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.generation++
	uc.current = nil
}

func buildRouteResult(path *domain.RoutePath, dest *domain.Wisata) *domain.RouteResult {
	minutes := int(math.Round(path.DurationSeconds / 60))

	return &domain.RouteResult{
		ID:                    uuid.NewString(),
		DistanceKm:            fmt.Sprintf("%.1f", path.DistanceMeters/1000),
		DurationText:          formatDuration(minutes),
		DurationMinutes:       minutes,
		DestinationName:       dest.Name,
		DestinationCoordinate: dest.Coordinate(),
		Geometry:              path.Geometry,
	}
}

// formatDuration renders minutes as Indonesian travel-time text:
// "45 menit", "1 jam 30 menit", "2 jam"
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d menit", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest > 0 {
		return fmt.Sprintf("%d jam %d menit", hours, rest)
	}
	return fmt.Sprintf("%d jam", hours)
}

func routeCacheKey(origin, destination domain.Coordinate) string {
	return fmt.Sprintf("route:%.5f:%.5f:%.5f:%.5f",
		origin.Lat, origin.Lon, destination.Lat, destination.Lon)
}
