package domain

import "time"

// Statistics are the beranda page counters, computed over the catalog
type Statistics struct {
	TotalWisata   int            `json:"total_wisata"`
	TotalKategori int            `json:"total_kategori"`
	TotalEvent    int            `json:"total_event"`
	TotalWilayah  int            `json:"total_wilayah"`
	ByCategory    map[string]int `json:"by_category"`
	LastUpdated   time.Time      `json:"last_updated"`
}
