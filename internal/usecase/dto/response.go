package dto

import (
	"time"

	"github.com/wisata-lombok/internal/domain"
)

// WisataWithDistance is a catalog entry annotated with its distance from
// the current position
type WisataWithDistance struct {
	domain.Wisata
	DistanceKm   float64 `json:"distance_km"`
	DistanceText string  `json:"distance_text"`
}

// NearbyResponse is the distance-sorted catalog view
type NearbyResponse struct {
	Origin domain.Coordinate    `json:"origin"`
	Wisata []WisataWithDistance `json:"wisata"`
	Total  int                  `json:"total"`
}

// LocationResponse reports an acquired position
type LocationResponse struct {
	Position   domain.Coordinate `json:"position"`
	ObtainedAt time.Time         `json:"obtained_at"`
	Cached     bool              `json:"cached"`
}
