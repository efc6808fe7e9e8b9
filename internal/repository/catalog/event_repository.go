package catalog

import (
	"encoding/json"
	"os"

	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"go.uber.org/zap"
)

// eventRepository serves the static events list, same degrade-to-empty
// policy as the wisata catalog
type eventRepository struct {
	events []domain.Event
	logger *zap.Logger
}

func NewEventRepository(path string, logger *zap.Logger) repository.EventRepository {
	repo := &eventRepository{logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read events file, serving empty list",
			zap.String("path", path),
			zap.Error(err))
		return repo
	}

	if err := json.Unmarshal(data, &repo.events); err != nil {
		repo.events = nil
		logger.Warn("Failed to parse events file, serving empty list",
			zap.String("path", path),
			zap.Error(err))
		return repo
	}

	logger.Info("Events loaded",
		zap.String("path", path),
		zap.Int("entries", len(repo.events)))

	return repo
}

func (r *eventRepository) All() []domain.Event {
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}
