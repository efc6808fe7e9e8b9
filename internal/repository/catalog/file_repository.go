package catalog

import (
	"encoding/json"
	"os"

	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/pkg/utils"
	"go.uber.org/zap"
)

// fileRepository serves the wisata catalog from a static JSON file. The
// file is read exactly once; a load failure degrades to an empty catalog
// so dependent views can render their "no results" state.
type fileRepository struct {
	wisata []domain.Wisata
	byID   map[string]int
	logger *zap.Logger
}

// NewFileRepository loads the catalog from path
func NewFileRepository(path string, logger *zap.Logger) repository.CatalogRepository {
	repo := &fileRepository{
		byID:   make(map[string]int),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Failed to read wisata catalog, serving empty catalog",
			zap.String("path", path),
			zap.Error(err))
		return repo
	}

	var entries []domain.Wisata
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn("Failed to parse wisata catalog, serving empty catalog",
			zap.String("path", path),
			zap.Error(err))
		return repo
	}

	for _, w := range entries {
		if w.ID == "" {
			logger.Warn("Skipping wisata entry without id", zap.String("nama", w.Name))
			continue
		}
		// Every rendered entry must carry a valid position
		if !utils.ValidateCoordinates(w.Lat, w.Lon) {
			logger.Warn("Skipping wisata entry with invalid coordinates",
				zap.String("id", w.ID),
				zap.Float64("lat", w.Lat),
				zap.Float64("lng", w.Lon))
			continue
		}
		if _, exists := repo.byID[w.ID]; exists {
			logger.Warn("Skipping duplicate wisata id", zap.String("id", w.ID))
			continue
		}
		repo.byID[w.ID] = len(repo.wisata)
		repo.wisata = append(repo.wisata, w)
	}

	logger.Info("Wisata catalog loaded",
		zap.String("path", path),
		zap.Int("entries", len(repo.wisata)))

	return repo
}

func (r *fileRepository) All() []domain.Wisata {
	// Copy so callers cannot mutate the catalog
	out := make([]domain.Wisata, len(r.wisata))
	copy(out, r.wisata)
	return out
}

func (r *fileRepository) GetByID(id string) (*domain.Wisata, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	w := r.wisata[idx]
	return &w, true
}

func (r *fileRepository) Count() int {
	return len(r.wisata)
}
