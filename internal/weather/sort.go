package weather

import "sort"

// SortBy returns a copy of records ordered by key, highest first. Equal keys
// keep their input order.
func SortBy(records []EnrichedRecord, key Field) ([]EnrichedRecord, error) {
	f, err := ParseSortField(string(key))
	if err != nil {
		return nil, err
	}

	sorted := make([]EnrichedRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return numericValue(sorted[i].WeatherRecord, f) > numericValue(sorted[j].WeatherRecord, f)
	})
	return sorted, nil
}
