package osrm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wisata-lombok/internal/config"
	"github.com/wisata-lombok/internal/domain"
	"github.com/wisata-lombok/internal/domain/repository"
	"github.com/wisata-lombok/internal/infrastructure/osrm"
)

func newTestClient(baseURL string) repository.RoutingRepository {
	return osrm.NewOSRMClient(&config.RoutingConfig{
		BaseURL:        baseURL,
		Profile:        "driving",
		RequestTimeout: 5,
	}, zap.NewNop())
}

func TestGetDrivingRoute_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [
				{"distance": 15320.4, "duration": 1845.2, "geometry": {"type": "LineString", "coordinates": []}}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	origin := domain.Coordinate{Lat: -8.5833, Lon: 116.1167}
	dest := domain.Coordinate{Lat: -8.8956, Lon: 116.2811}

	path, err := client.GetDrivingRoute(context.Background(), origin, dest)
	require.NoError(t, err)

	assert.Equal(t, 15320.4, path.DistanceMeters)
	assert.Equal(t, 1845.2, path.DurationSeconds)
	assert.NotEmpty(t, path.Geometry)

	// lon,lat ordering in the request path
	assert.Contains(t, gotPath, "/route/v1/driving/116.11")
}

func TestGetDrivingRoute_NonOKCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "message": "Impossible route between points", "routes": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetDrivingRoute(context.Background(),
		domain.Coordinate{Lat: -8.5, Lon: 116.1},
		domain.Coordinate{Lat: -8.9, Lon: 116.3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoRoute")
}

func TestGetDrivingRoute_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetDrivingRoute(context.Background(),
		domain.Coordinate{Lat: -8.5, Lon: 116.1},
		domain.Coordinate{Lat: -8.9, Lon: 116.3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestGetDrivingRoute_EmptyRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "Ok", "routes": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetDrivingRoute(context.Background(),
		domain.Coordinate{Lat: -8.5, Lon: 116.1},
		domain.Coordinate{Lat: -8.9, Lon: 116.3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no routes")
}
