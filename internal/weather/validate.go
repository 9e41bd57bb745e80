package weather

import (
	"fmt"
	"math"
)

// ValidateRecords checks every record and returns the first failure as a
// *DataIntegrityError. Duplicate ids are rejected as well.
func ValidateRecords(records []WeatherRecord) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if err := validateRecord(i, r); err != nil {
			return err
		}
		if prev, ok := seen[r.ID]; ok {
			return &DataIntegrityError{
				Index:  i,
				ID:     r.ID,
				Field:  "id",
				Reason: fmt.Sprintf("duplicate of record #%d", prev),
			}
		}
		seen[r.ID] = i
	}
	return nil
}

func validateRecord(i int, r WeatherRecord) error {
	fail := func(field, reason string) error {
		return &DataIntegrityError{Index: i, ID: r.ID, Field: field, Reason: reason}
	}

	if r.ID == "" {
		return fail("id", "missing")
	}
	if r.Date.IsZero() {
		return fail("date", "missing")
	}

	numeric := []struct {
		name  string
		value float64
	}{
		{"MinTemp", r.MinTemp},
		{"MaxTemp", r.MaxTemp},
		{"Rainfall", r.Rainfall},
		{"WindGustSpeed", r.WindGustSpeed},
		{"Humidity3pm", r.Humidity3pm},
	}
	for _, n := range numeric {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fail(n.name, "not a finite number")
		}
	}

	if r.Rainfall < 0 {
		return fail("Rainfall", "negative")
	}
	if r.WindGustSpeed < 0 {
		return fail("WindGustSpeed", "negative")
	}
	if r.Humidity3pm < 0 || r.Humidity3pm > 100 {
		return fail("Humidity3pm", "outside [0,100]")
	}
	if !r.RainToday.Valid() {
		return fail("RainToday", fmt.Sprintf("%q is not Yes or No", r.RainToday))
	}
	if !r.RainTomorrow.Valid() {
		return fail("RainTomorrow", fmt.Sprintf("%q is not Yes or No", r.RainTomorrow))
	}
	return nil
}
