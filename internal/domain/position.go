package domain

import (
	"sync"
	"time"
)

// PositionFix is one successful location acquisition
type PositionFix struct {
	Coordinate Coordinate `json:"coordinate"`
	ObtainedAt time.Time  `json:"obtained_at"`
}

// PositionStore holds the process-wide current position. The location
// service is the only writer; last write wins. Distance sorting and route
// planning read from here.
type PositionStore struct {
	mu  sync.RWMutex
	fix *PositionFix
}

func NewPositionStore() *PositionStore {
	return &PositionStore{}
}

// Set records a new fix, replacing any previous one
func (s *PositionStore) Set(coord Coordinate, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fix = &PositionFix{Coordinate: coord, ObtainedAt: at}
}

// Current returns the last known position, if any
func (s *PositionStore) Current() (Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fix == nil {
		return Coordinate{}, false
	}
	return s.fix.Coordinate, true
}

// Fresh returns the last fix only if it is younger than maxAge
func (s *PositionStore) Fresh(maxAge time.Duration, now time.Time) (Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fix == nil || now.Sub(s.fix.ObtainedAt) > maxAge {
		return Coordinate{}, false
	}
	return s.fix.Coordinate, true
}
