package domain

// Event is one entry of the events page
type Event struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image"`
}
