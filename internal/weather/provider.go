package weather

import (
	"context"
	"time"
)

// Source abstracts where the record collection comes from (a bundled file,
// a URL). It is consulted once at startup.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]WeatherRecord, error)
}

// Store is the read-only record collection the Service queries.
type Store interface {
	All() []WeatherRecord
	GetByID(id string) (WeatherRecord, error)
	GetRange(from, to time.Time) ([]WeatherRecord, error)
}
