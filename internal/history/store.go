// Package history keeps the most recent ambient-temperature observations in memory.
package history

import "thermostat_api/internal/models"

// DefaultCapacity is the number of observations kept when none is configured.
const DefaultCapacity = 100

// Store is a fixed-capacity ring of observations read newest-first. Once full,
// each append overwrites the oldest entry.
// Not safe for concurrent use; the owning aggregate serializes access.
type Store struct {
	buf      []models.Observation
	capacity int
	head     int // next write position
	count    int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		buf:      make([]models.Observation, capacity),
		capacity: capacity,
	}
}

// Append records o as the newest observation.
func (s *Store) Append(o models.Observation) {
	s.buf[s.head] = o
	s.head = (s.head + 1) % s.capacity
	if s.count < s.capacity {
		s.count++
	}
}

// List returns observations newest-first. A nil limit returns all of them;
// otherwise at most *limit entries are returned and a limit <= 0 yields none.
func (s *Store) List(limit *int) []models.Observation {
	n := s.count
	if limit != nil && *limit < n {
		n = max(*limit, 0)
	}
	out := make([]models.Observation, n)
	// newest entry sits just behind head
	for i := 0; i < n; i++ {
		out[i] = s.buf[(s.head-1-i+2*s.capacity)%s.capacity]
	}
	return out
}

// Count is the number of stored observations.
func (s *Store) Count() int { return s.count }

func (s *Store) Capacity() int { return s.capacity }

// Clear drops every observation.
func (s *Store) Clear() {
	clear(s.buf)
	s.head = 0
	s.count = 0
}
