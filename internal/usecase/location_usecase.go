package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/pkg/utils"
	"github.com/wisata-lombok/internal/usecase/dto"
	"go.uber.org/zap"
)

// LocationUseCase acquires a single best-effort position fix. On success it
// writes the process-wide current position; it is the only writer of that
// state. No automatic retry on failure.
type LocationUseCase struct {
	provider  repository.LocationProvider
	positions *domain.PositionStore
	logger    *zap.Logger
	timeout   time.Duration
	maxFixAge time.Duration

	now func() time.Time
}

func NewLocationUseCase(
	provider repository.LocationProvider,
	positions *domain.PositionStore,
	cfg *config.LocationConfig,
	logger *zap.Logger,
) *LocationUseCase {
	return &LocationUseCase{
		provider:  provider,
		positions: positions,
		logger:    logger,
		timeout:   cfg.RequestTimeout,
		maxFixAge: cfg.MaxFixAge,
		now:       time.Now,
	}
}

// Locate resolves the current position. A client-reported device fix wins;
// otherwise a fix younger than maxFixAge is reused, and only then the
// provider is consulted under the acquisition timeout.
func (uc *LocationUseCase) Locate(ctx context.Context, req dto.LocateRequest) (*dto.LocationResponse, error) {
	now := uc.now()

	if req.HasFix() {
		if !utils.ValidateCoordinates(*req.Lat, *req.Lon) {
			return nil, errors.ErrInvalidCoordinates
		}
		coord := domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
		uc.positions.Set(coord, now)
		uc.logger.Info("Client-reported position accepted",
			zap.String("fix_id", uuid.NewString()),
			zap.Float64("lat", coord.Lat),
			zap.Float64("lon", coord.Lon))
		return &dto.LocationResponse{Position: coord, ObtainedAt: now}, nil
	}

	if coord, ok := uc.positions.Fresh(uc.maxFixAge, now); ok {
		uc.logger.Debug("Reusing recent position fix")
		return &dto.LocationResponse{Position: coord, ObtainedAt: now, Cached: true}, nil
	}

	if uc.provider == nil || !uc.provider.Available() {
		return nil, errors.ErrLocationUnavailable
	}

	fixCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	coord, err := uc.provider.CurrentLocation(fixCtx)
	if err != nil {
		if stderrors.Is(fixCtx.Err(), context.DeadlineExceeded) {
			uc.logger.Warn("Location acquisition timed out", zap.Duration("timeout", uc.timeout))
			return nil, errors.ErrLocationTimeout
		}
		uc.logger.Warn("Location acquisition failed", zap.Error(err))
		return nil, errors.ErrLocationDenied.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}

	uc.positions.Set(coord, now)
	uc.logger.Info("Position fix acquired",
		zap.String("fix_id", uuid.NewString()),
		zap.Float64("lat", coord.Lat),
		zap.Float64("lon", coord.Lon))

	return &dto.LocationResponse{Position: coord, ObtainedAt: now}, nil
}
