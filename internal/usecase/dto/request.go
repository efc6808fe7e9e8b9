package dto

// FilterRequest carries the peta page filter controls. Values arrive as
// query parameters; "all" (or absence) disables a predicate.
type FilterRequest struct {
	Region    string `query:"wilayah"`
	Category  string `query:"kategori"`
	Search    string `query:"cari"`
	Highlight string `query:"highlight"`
}

// LocateRequest is a location acquisition. A client that already holds a
// device fix reports it; otherwise the server-side provider is consulted.
type LocateRequest struct {
	Lat *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
}

// HasFix reports whether the client supplied its own coordinate
func (r LocateRequest) HasFix() bool {
	return r.Lat != nil && r.Lon != nil
}

// PlanRouteRequest asks for a route from the current position to a
// catalog destination
type PlanRouteRequest struct {
	DestinationID string `json:"destination_id" validate:"required"`
}
