package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/pkg/errors"
	"github.com/wisata-lombok/internal/usecase/dto"
)

// fakeProvider is a scriptable LocationProvider
type fakeProvider struct {
	available bool
	coord     domain.Coordinate
	err       error
	delay     time.Duration
	calls     int
}

func (p *fakeProvider) Available() bool { return p.available }

func (p *fakeProvider) CurrentLocation(ctx context.Context) (domain.Coordinate, error) {
	p.calls++
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.Coordinate{}, ctx.Err()
		case <-time.After(p.delay):
		}
	}
	if p.err != nil {
		return domain.Coordinate{}, p.err
	}
	return p.coord, nil
}

func locationConfig() *config.LocationConfig {
	return &config.LocationConfig{
		RequestTimeout: 10 * time.Second,
		MaxFixAge:      60 * time.Second,
	}
}

func float64Ptr(v float64) *float64 { return &v }

func TestLocationUseCase_Locate(t *testing.T) {
	logger := zap.NewNop()

	t.Run("client-reported fix wins and updates the shared position", func(t *testing.T) {
		positions := domain.NewPositionStore()
		provider := &fakeProvider{available: true, coord: domain.Coordinate{Lat: 1, Lon: 1}}
		uc := NewLocationUseCase(provider, positions, locationConfig(), logger)

		result, err := uc.Locate(context.Background(), dto.LocateRequest{
			Lat: float64Ptr(-8.65),
			Lon: float64Ptr(116.3167),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.Coordinate{Lat: -8.65, Lon: 116.3167}, result.Position)
		assert.Zero(t, provider.calls)

		current, ok := positions.Current()
		require.True(t, ok)
		assert.Equal(t, result.Position, current)
	})

	t.Run("client fix with invalid coordinates is rejected", func(t *testing.T) {
		positions := domain.NewPositionStore()
		uc := NewLocationUseCase(&fakeProvider{}, positions, locationConfig(), logger)

		_, err := uc.Locate(context.Background(), dto.LocateRequest{
			Lat: float64Ptr(100),
			Lon: float64Ptr(200),
		})
		assert.Equal(t, errors.ErrInvalidCoordinates, err)

		_, ok := positions.Current()
		assert.False(t, ok)
	})

	t.Run("recent fix is reused without hitting the provider", func(t *testing.T) {
		positions := domain.NewPositionStore()
		provider := &fakeProvider{available: true, coord: domain.Coordinate{Lat: 2, Lon: 2}}
		uc := NewLocationUseCase(provider, positions, locationConfig(), logger)

		base := time.Now()
		positions.Set(domain.Coordinate{Lat: -8.58, Lon: 116.11}, base)
		uc.now = func() time.Time { return base.Add(30 * time.Second) }

		result, err := uc.Locate(context.Background(), dto.LocateRequest{})
		require.NoError(t, err)
		assert.True(t, result.Cached)
		assert.Equal(t, domain.Coordinate{Lat: -8.58, Lon: 116.11}, result.Position)
		assert.Zero(t, provider.calls)
	})

	t.Run("stale fix triggers a fresh provider lookup", func(t *testing.T) {
		positions := domain.NewPositionStore()
		provider := &fakeProvider{available: true, coord: domain.Coordinate{Lat: -8.34, Lon: 116.03}}
		uc := NewLocationUseCase(provider, positions, locationConfig(), logger)

		base := time.Now()
		positions.Set(domain.Coordinate{Lat: -8.58, Lon: 116.11}, base)
		uc.now = func() time.Time { return base.Add(2 * time.Minute) }

		result, err := uc.Locate(context.Background(), dto.LocateRequest{})
		require.NoError(t, err)
		assert.False(t, result.Cached)
		assert.Equal(t, domain.Coordinate{Lat: -8.34, Lon: 116.03}, result.Position)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("no capability yields LocationUnavailable", func(t *testing.T) {
		uc := NewLocationUseCase(&fakeProvider{available: false}, domain.NewPositionStore(), locationConfig(), logger)

		_, err := uc.Locate(context.Background(), dto.LocateRequest{})
		assert.Equal(t, errors.ErrLocationUnavailable, err)
	})

	t.Run("provider error yields LocationDenied", func(t *testing.T) {
		provider := &fakeProvider{available: true, err: assert.AnError}
		positions := domain.NewPositionStore()
		uc := NewLocationUseCase(provider, positions, locationConfig(), logger)

		_, err := uc.Locate(context.Background(), dto.LocateRequest{})
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "LOCATION_DENIED", appErr.Code)

		_, hasFix := positions.Current()
		assert.False(t, hasFix)
	})

	t.Run("slow provider yields LocationTimeout", func(t *testing.T) {
		cfg := locationConfig()
		cfg.RequestTimeout = 20 * time.Millisecond

		provider := &fakeProvider{available: true, delay: 200 * time.Millisecond}
		uc := NewLocationUseCase(provider, domain.NewPositionStore(), cfg, logger)

		_, err := uc.Locate(context.Background(), dto.LocateRequest{})
		assert.Equal(t, errors.ErrLocationTimeout, err)
	})
}
