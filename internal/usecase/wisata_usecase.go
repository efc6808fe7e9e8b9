package usecase

import (
	"sort"
	"strings"

	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/usecase/dto"
	"go.uber.org/zap"
)

// WisataUseCase serves catalog reads: filtering, lookup, featured entries
// and distance-sorted views
type WisataUseCase struct {
	catalogRepo repository.CatalogRepository
	positions   *domain.PositionStore
	logger      *zap.Logger
}

func NewWisataUseCase(
	catalogRepo repository.CatalogRepository,
	positions *domain.PositionStore,
	logger *zap.Logger,
) *WisataUseCase {
	return &WisataUseCase{
		catalogRepo: catalogRepo,
		positions:   positions,
		logger:      logger,
	}
}

// Filter applies region, category and name-search predicates as a
// conjunction. Order-preserving and non-mutating; an empty result is a
// valid outcome, not an error.
func Filter(entries []domain.Wisata, criteria domain.FilterCriteria) []domain.Wisata {
	result := make([]domain.Wisata, 0, len(entries))
	search := strings.ToLower(criteria.Search)

	for _, w := range entries {
		if criteria.Region != "" && criteria.Region != domain.FilterAll && w.Region != criteria.Region {
			continue
		}
		if criteria.Category != "" && criteria.Category != domain.FilterAll && w.Category != criteria.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(w.Name), search) {
			continue
		}
		result = append(result, w)
	}

	return result
}

// List returns the catalog filtered by criteria
func (uc *WisataUseCase) List(criteria domain.FilterCriteria) []domain.Wisata {
	return Filter(uc.catalogRepo.All(), criteria)
}

// GetByID returns one catalog entry
func (uc *WisataUseCase) GetByID(id string) (*domain.Wisata, error) {
	w, ok := uc.catalogRepo.GetByID(id)
	if !ok {
		return nil, errors.ErrWisataNotFound
	}
	return w, nil
}

// Featured returns the first n catalog entries for the beranda page
func (uc *WisataUseCase) Featured(n int) []domain.Wisata {
	all := uc.catalogRepo.All()
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// SortByDistance orders entries ascending by great-circle distance from
// origin. The sort is stable: equidistant entries keep catalog order.
func SortByDistance(entries []domain.Wisata, origin domain.Coordinate) []dto.WisataWithDistance {
	result := make([]dto.WisataWithDistance, 0, len(entries))
	for _, w := range entries {
		km := utils.HaversineDistance(origin.Lat, origin.Lon, w.Lat, w.Lon)
		result = append(result, dto.WisataWithDistance{
			Wisata:       w,
			DistanceKm:   km,
			DistanceText: utils.FormatDistance(km),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result
}

// Nearby returns the filtered catalog sorted by distance from the current
// position. NoOrigin when no fix has been established yet.
func (uc *WisataUseCase) Nearby(criteria domain.FilterCriteria) (*dto.NearbyResponse, error) {
	origin, ok := uc.positions.Current()
	if !ok {
		return nil, errors.ErrNoOrigin
	}

	sorted := SortByDistance(uc.List(criteria), origin)

	return &dto.NearbyResponse{
		Origin: origin,
		Wisata: sorted,
		Total:  len(sorted),
	}, nil
}
