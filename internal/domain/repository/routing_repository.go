package repository

import (
	"context"

	"github.com/wisata-lombok/internal/domain"
)

// RoutingRepository defines the external routing service contract
type RoutingRepository interface {
	// GetDrivingRoute requests a driving route between two points and
	// returns its total distance, duration and geometry
	GetDrivingRoute(
		ctx context.Context,
		origin domain.Coordinate,
		destination domain.Coordinate,
	) (*domain.RoutePath, error)
}
