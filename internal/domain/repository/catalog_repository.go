package repository

import (
	"github.com/wisata-lombok/internal/domain"
)

// CatalogRepository exposes read access to the wisata catalog. The catalog
// is loaded once at startup and never mutated afterwards.
type CatalogRepository interface {
	// All returns the full catalog in load order
	All() []domain.Wisata

	// GetByID returns one entry by its identifier
	GetByID(id string) (*domain.Wisata, bool)

	// Count returns the catalog size
	Count() int
}

// EventRepository exposes the static events list
type EventRepository interface {
	All() []domain.Event
}
