package usecase

import (
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"go.uber.org/zap"
)

// MarkerUseCase turns catalog entries into map-marker descriptors for the
// map widget
type MarkerUseCase struct {
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

func NewMarkerUseCase(
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
) *MarkerUseCase {
	return &MarkerUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ToMarkers maps entries to marker descriptors. highlightedID may be empty;
// a highlighted entry gets the larger pin.
func ToMarkers(entries []domain.Wisata, highlightedID string) []domain.MarkerDescriptor {
	markers := make([]domain.MarkerDescriptor, 0, len(entries))

	for _, w := range entries {
		highlighted := highlightedID != "" && w.ID == highlightedID
		size := domain.MarkerSizeNormal
		if highlighted {
			size = domain.MarkerSizeHighlighted
		}

		markers = append(markers, domain.MarkerDescriptor{
			WisataID:    w.ID,
			Coordinate:  w.Coordinate(),
			Color:       domain.MarkerColorForCategory(w.Category),
			SizePx:      size,
			Highlighted: highlighted,
			Popup: domain.PopupContent{
				Name:        w.Name,
				ImageURL:    w.ImageURL,
				Category:    w.Category,
				Region:      w.Region,
				Hours:       w.Hours,
				TicketPrice: w.TicketPrice,
			},
		})
	}

	return markers
}

// Markers returns descriptors for the filtered catalog
func (uc *MarkerUseCase) Markers(criteria domain.FilterCriteria, highlightedID string) []domain.MarkerDescriptor {
	filtered := Filter(uc.catalogRepo.All(), criteria)
	return ToMarkers(filtered, highlightedID)
}
