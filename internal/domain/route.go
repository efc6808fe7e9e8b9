package domain

import "encoding/json"

// RoutePath is the raw path returned by the routing service
type RoutePath struct {
	DistanceMeters  float64         `json:"distance_meters"`
	DurationSeconds float64         `json:"duration_seconds"`
	Geometry        json.RawMessage `json:"geometry,omitempty"`
}

// RouteResult is the active route as presented to the client. It lives only
// until the next route request or an explicit clear.
type RouteResult struct {
	ID                    string          `json:"id"`
	DistanceKm            string          `json:"distance_km"`
	DurationText          string          `json:"duration_text"`
	DurationMinutes       int             `json:"duration_minutes"`
	DestinationName       string          `json:"destination_name"`
	DestinationCoordinate Coordinate      `json:"destination_coordinate"`
	Geometry              json.RawMessage `json:"geometry,omitempty"`
}

// RouteResponse mirrors the OSRM route endpoint payload
type RouteResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message,omitempty"`
	Routes  []Route `json:"routes"`
}

// Route is a single OSRM route: total distance in meters, duration in
// seconds, geometry as GeoJSON
type Route struct {
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
	Geometry json.RawMessage `json:"geometry"`
}
