package weather

import (
	"fmt"
	"log"
	"time"
)

// Service is the query engine over a Store. It keeps no state of its own:
// every view is recomputed from the store on each call.
type Service struct {
	store Store
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{
		store: store,
	}
}

// Records returns every record, enriched, in source order.
func (s *Service) Records() []EnrichedRecord {
	return Enrich(s.store.All())
}

// Record returns a single enriched record.
func (s *Service) Record(id string) (EnrichedRecord, error) {
	r, err := s.store.GetByID(id)
	if err != nil {
		return EnrichedRecord{}, err
	}
	return Enrich([]WeatherRecord{r})[0], nil
}

// Range returns the enriched records dated within [from, to].
func (s *Service) Range(from, to time.Time) ([]EnrichedRecord, error) {
	records, err := s.store.GetRange(from, to)
	if err != nil {
		return nil, err
	}
	return Enrich(records), nil
}

// Query runs the full view pipeline: enrich, filter, sort.
func (s *Service) Query(params QueryParameters) ([]EnrichedRecord, error) {
	params, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	log.Printf("DEBUG: Query windField=%s windDirection=%q extreme=%t hotDry=%t sortBy=%s",
		params.WindField, params.WindDirection, params.ExtremeWeather, params.HotDry, params.SortBy)

	filtered, err := ApplyFilters(s.Records(), params)
	if err != nil {
		return nil, err
	}
	return SortBy(filtered, params.SortBy)
}

// Directions returns the wind directions present for field.
func (s *Service) Directions(field Field) ([]string, error) {
	return UniqueValues(s.store.All(), field)
}

// Summary aggregates the full collection.
func (s *Service) Summary() (SummaryStatistics, error) {
	stats, err := Summarize(s.store.All())
	if err != nil {
		return SummaryStatistics{}, fmt.Errorf("summarize records: %w", err)
	}
	return stats, nil
}

// Search runs the threshold searches over the enriched collection.
func (s *Service) Search(tempThreshold, windThreshold float64) SearchResults {
	return Search(s.Records(), tempThreshold, windThreshold)
}

// Report runs one of the canned knowledge-base queries.
func (s *Service) Report(name ReportName) (FormattedResults, error) {
	return RunReport(s.store.All(), name)
}
