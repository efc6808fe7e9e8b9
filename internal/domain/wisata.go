package domain

// Wisata represents a single tourism destination from the static catalog.
// Field names keep the catalog's Indonesian keys.
type Wisata struct {
	ID          string   `json:"id"`
	Name        string   `json:"nama"`
	Description string   `json:"deskripsi,omitempty"`
	Category    string   `json:"kategori"`
	Region      string   `json:"wilayah"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lng"`
	Hours       string   `json:"jam"`
	TicketPrice string   `json:"tiket"`
	Rating      *float64 `json:"rating,omitempty"`
	ImageURL    string   `json:"gambar"`
	HasEvent    bool     `json:"event"`
}

// Coordinate is an immutable lat/lon pair
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (w Wisata) Coordinate() Coordinate {
	return Coordinate{Lat: w.Lat, Lon: w.Lon}
}

// Wisata category codes
const (
	CategoryAlam    = "alam"
	CategoryBudaya  = "budaya"
	CategoryKuliner = "kuliner"
	CategoryReligi  = "religi"
	CategoryBuatan  = "buatan"
)

// FilterAll disables a region or category predicate
const FilterAll = "all"

// FilterCriteria describes one filter pass over the catalog.
// Produced by the client per interaction, never persisted.
type FilterCriteria struct {
	Region   string `json:"wilayah"`
	Category string `json:"kategori"`
	Search   string `json:"cari"`
}
