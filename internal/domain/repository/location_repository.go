package repository

import (
	"context"

	"github.com/wisata-lombok/internal/domain"
)

// LocationProvider is the platform location capability: a single-shot,
// best-effort coordinate fix
type LocationProvider interface {
	// Available reports whether the platform can resolve a location at all
	Available() bool

	// CurrentLocation resolves one coordinate fix. The caller bounds the
	// call with a context deadline.
	CurrentLocation(ctx context.Context) (domain.Coordinate, error)
}
