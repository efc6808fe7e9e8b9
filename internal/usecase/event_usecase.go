package usecase

import (
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"go.uber.org/zap"
)

// recommendationMinRating is the threshold for the events-page
// recommendation list
const recommendationMinRating = 4.5

// EventUseCase serves the events page: the events list and top-rated
// destination recommendations
type EventUseCase struct {
	eventRepo   repository.EventRepository
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

func NewEventUseCase(
	eventRepo repository.EventRepository,
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
) *EventUseCase {
	return &EventUseCase{
		eventRepo:   eventRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListEvents returns the static events list
func (uc *EventUseCase) ListEvents() []domain.Event {
	return uc.eventRepo.All()
}

// Recommendations returns up to limit destinations rated at or above the
// threshold, in catalog order
func (uc *EventUseCase) Recommendations(limit int) []domain.Wisata {
	if limit <= 0 {
		limit = 3
	}

	result := make([]domain.Wisata, 0, limit)
	for _, w := range uc.catalogRepo.All() {
		if w.Rating == nil || *w.Rating < recommendationMinRating {
			continue
		}
		result = append(result, w)
		if len(result) == limit {
			break
		}
	}

	return result
}
