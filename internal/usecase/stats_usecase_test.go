package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/usecase"
)

func statsCatalog() []domain.Wisata {
	rating := 4.8
	return []domain.Wisata{
		{ID: "w001", Name: "Pantai Kuta Mandalika", Category: domain.CategoryAlam, Region: "Lombok Tengah", HasEvent: true, Rating: &rating},
		{ID: "w002", Name: "Gili Trawangan", Category: domain.CategoryAlam, Region: "Lombok Utara"},
		{ID: "w003", Name: "Desa Sade", Category: domain.CategoryBudaya, Region: "Lombok Tengah", HasEvent: true},
		{ID: "w004", Name: "Masjid Islamic Center", Category: domain.CategoryReligi, Region: "Mataram"},
	}
}

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()

	t.Run("computes counters over the catalog", func(t *testing.T) {
		catalogRepo := new(MockCatalogRepository)
		catalogRepo.On("All").Return(statsCatalog())

		uc := usecase.NewStatsUseCase(catalogRepo, nil, logger, time.Minute)

		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 4, stats.TotalWisata)
		assert.Equal(t, 3, stats.TotalKategori)
		assert.Equal(t, 2, stats.TotalEvent)
		assert.Equal(t, 3, stats.TotalWilayah)
		assert.Equal(t, 2, stats.ByCategory[domain.CategoryAlam])
		assert.Equal(t, 1, stats.ByCategory[domain.CategoryBudaya])
		assert.Equal(t, 1, stats.ByCategory[domain.CategoryReligi])
	})

	t.Run("empty catalog yields all-zero counters", func(t *testing.T) {
		catalogRepo := new(MockCatalogRepository)
		catalogRepo.On("All").Return([]domain.Wisata{})

		uc := usecase.NewStatsUseCase(catalogRepo, nil, logger, time.Minute)

		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Zero(t, stats.TotalWisata)
		assert.Zero(t, stats.TotalKategori)
		assert.Zero(t, stats.TotalEvent)
		assert.Zero(t, stats.TotalWilayah)
		assert.Empty(t, stats.ByCategory)
	})

	t.Run("serves cached statistics without recomputing", func(t *testing.T) {
		cached := &domain.Statistics{TotalWisata: 42, TotalKategori: 5}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		catalogRepo := new(MockCatalogRepository)
		cacheRepo := new(MockCacheRepository)
		cacheRepo.On("Get", mock.Anything, "stats:current").Return(data, nil)

		uc := usecase.NewStatsUseCase(catalogRepo, cacheRepo, logger, time.Minute)

		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 42, stats.TotalWisata)
		catalogRepo.AssertNotCalled(t, "All")
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		catalogRepo := new(MockCatalogRepository)
		catalogRepo.On("All").Return(statsCatalog())

		cacheRepo := new(MockCacheRepository)
		cacheRepo.On("Get", mock.Anything, "stats:current").Return(nil, assert.AnError)
		cacheRepo.On("Set", mock.Anything, "stats:current", mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewStatsUseCase(catalogRepo, cacheRepo, logger, time.Minute)

		stats, err := uc.GetStatistics(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 4, stats.TotalWisata)
		cacheRepo.AssertExpectations(t)
	})
}
