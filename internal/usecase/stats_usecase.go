package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"go.uber.org/zap"
)

const statsCacheKey = "stats:current"

// StatsUseCase computes the beranda counters over the catalog
type StatsUseCase struct {
	catalogRepo repository.CatalogRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewStatsUseCase(
	catalogRepo repository.CatalogRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetStatistics returns catalog statistics, cached between requests.
// An empty catalog yields all-zero counters.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, statsCacheKey); err == nil && data != nil {
			var cached domain.Statistics
			if err := json.Unmarshal(data, &cached); err == nil {
				uc.logger.Debug("Statistics served from cache")
				return &cached, nil
			}
		}
	}

	stats := uc.compute()

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache statistics", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (uc *StatsUseCase) compute() *domain.Statistics {
	all := uc.catalogRepo.All()

	byCategory := make(map[string]int)
	regions := make(map[string]struct{})
	events := 0

	for _, w := range all {
		byCategory[w.Category]++
		regions[w.Region] = struct{}{}
		if w.HasEvent {
			events++
		}
	}

	return &domain.Statistics{
		TotalWisata:   len(all),
		TotalKategori: len(byCategory),
		TotalEvent:    events,
		TotalWilayah:  len(regions),
		ByCategory:    byCategory,
		LastUpdated:   time.Now(),
	}
}
