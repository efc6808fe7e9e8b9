package geoip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/infrastructure/geoip"
)

func newTestProvider(providerURL string) repository.LocationProvider {
	return geoip.NewGeoIPClient(&config.LocationConfig{
		ProviderURL:    providerURL,
		RequestTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestCurrentLocation_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json", r.URL.Path)
		w.Write([]byte(`{"status": "success", "lat": -8.5833, "lon": 116.1167}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)

	require.True(t, provider.Available())

	coord, err := provider.CurrentLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: -8.5833, Lon: 116.1167}, coord)
}

func TestCurrentLocation_RefusedLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range"}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).CurrentLocation(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private range")
}

func TestCurrentLocation_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL).CurrentLocation(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestAvailable_EmptyProviderURL(t *testing.T) {
	provider := newTestProvider("")

	assert.False(t, provider.Available())

	_, err := provider.CurrentLocation(context.Background())
	assert.Error(t, err)
}
