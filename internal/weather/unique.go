package weather

import "sort"

// UniqueValues collects the distinct non-empty values of a wind-direction
// field, sorted ascending.
func UniqueValues(records []WeatherRecord, field Field) ([]string, error) {
	f, err := ParseWindField(string(field))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		v := directionValue(r, f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values, nil
}
