package domain

// Marker pixel sizes, matching the map widget's divIcon dimensions
const (
	MarkerSizeNormal      = 12
	MarkerSizeHighlighted = 16
)

// MarkerColorFallback is used for categories outside the known set
const MarkerColorFallback = "gray"

// markerColors is the closed category -> color table
var markerColors = map[string]string{
	CategoryAlam:    "green",
	CategoryBudaya:  "orange",
	CategoryKuliner: "red",
	CategoryReligi:  "purple",
	CategoryBuatan:  "blue",
}

// MarkerColorForCategory resolves the pin color for a category.
// Unknown categories fall back to gray rather than failing.
func MarkerColorForCategory(category string) string {
	if color, ok := markerColors[category]; ok {
		return color
	}
	return MarkerColorFallback
}

// MarkerDescriptor is everything the map widget needs to draw one pin
type MarkerDescriptor struct {
	WisataID    string       `json:"wisata_id"`
	Coordinate  Coordinate   `json:"coordinate"`
	Color       string       `json:"color"`
	SizePx      int          `json:"size_px"`
	Highlighted bool         `json:"highlighted"`
	Popup       PopupContent `json:"popup"`
}

// PopupContent is the marker popup body, derived from catalog fields
type PopupContent struct {
	Name        string `json:"nama"`
	ImageURL    string `json:"gambar"`
	Category    string `json:"kategori"`
	Region      string `json:"wilayah"`
	Hours       string `json:"jam"`
	TicketPrice string `json:"tiket"`
}
