package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/i474232898/weather-insights/internal/weather"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("weather record not found")

	// ErrInvalidRange is returned when a range query has from after to.
	ErrInvalidRange = errors.New("invalid date range: from is after to")
)

// MemoryStore holds the record collection loaded at startup. It is never
// mutated after construction, so reads need no locking.
type MemoryStore struct {
	records []weather.WeatherRecord

	// key: record id, value: position in records
	byID map[string]int
}

// NewMemoryStore validates and copies records into a new store.
func NewMemoryStore(records []weather.WeatherRecord) (*MemoryStore, error) {
	if err := weather.ValidateRecords(records); err != nil {
		return nil, fmt.Errorf("build record store: %w", err)
	}

	s := &MemoryStore{
		records: make([]weather.WeatherRecord, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(s.records, records)
	for i, r := range s.records {
		s.byID[r.ID] = i
	}
	return s, nil
}

// Len returns the number of records held.
func (s *MemoryStore) Len() int {
	return len(s.records)
}

// All returns a copy of the full collection in source order.
func (s *MemoryStore) All() []weather.WeatherRecord {
	out := make([]weather.WeatherRecord, len(s.records))
	copy(out, s.records)
	return out
}

// GetByID returns the record with the given id.
func (s *MemoryStore) GetByID(id string) (weather.WeatherRecord, error) {
	i, ok := s.byID[id]
	if !ok {
		return weather.WeatherRecord{}, ErrNotFound
	}
	return s.records[i], nil
}

// GetRange returns the records dated between from and to (inclusive, by
// calendar day) in source order. An empty match is an empty slice.
func (s *MemoryStore) GetRange(from, to time.Time) ([]weather.WeatherRecord, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	inRange := weather.DateBetween(from, to)
	result := make([]weather.WeatherRecord, 0)
	for _, r := range s.records {
		if inRange(r) {
			result = append(result, r)
		}
	}
	return result, nil
}
