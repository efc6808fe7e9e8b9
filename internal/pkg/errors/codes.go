package errors

import "net/http"

// User-facing messages are in Indonesian, matching the site copy.
var (
	ErrWisataNotFound = New(
		"WISATA_NOT_FOUND",
		"Destinasi wisata tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Koordinat tidak valid",
		http.StatusBadRequest,
	)

	ErrDataLoadFailure = New(
		"DATA_LOAD_FAILURE",
		"Gagal memuat data wisata",
		http.StatusInternalServerError,
	)

	ErrLocationUnavailable = New(
		"LOCATION_UNAVAILABLE",
		"Layanan lokasi tidak tersedia di perangkat ini",
		http.StatusServiceUnavailable,
	)

	ErrLocationTimeout = New(
		"LOCATION_TIMEOUT",
		"Tidak dapat mengakses lokasi: waktu permintaan habis",
		http.StatusGatewayTimeout,
	)

	ErrLocationDenied = New(
		"LOCATION_DENIED",
		"Tidak dapat mengakses lokasi: izin ditolak",
		http.StatusForbidden,
	)

	ErrNoOrigin = New(
		"NO_ORIGIN",
		"Aktifkan \"Dekat Saya\" terlebih dahulu untuk melihat rute",
		http.StatusUnprocessableEntity,
	)

	ErrRoutingUnavailable = New(
		"ROUTING_UNAVAILABLE",
		"Gagal menghitung rute. Silakan coba lagi.",
		http.StatusBadGateway,
	)

	ErrRouteSuperseded = New(
		"ROUTE_SUPERSEDED",
		"Permintaan rute digantikan oleh permintaan yang lebih baru",
		http.StatusConflict,
	)

	ErrNoActiveRoute = New(
		"NO_ACTIVE_ROUTE",
		"Tidak ada rute aktif",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Parameter permintaan tidak valid",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Terjadi kesalahan pada server",
		http.StatusInternalServerError,
	)
)
