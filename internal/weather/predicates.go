package weather

import "time"

// Thresholds used by the fixed views.
const (
	ExtremeTempThreshold = 35.0
	ExtremeWindThreshold = 40.0

	HotDryTempThreshold     = 35.0
	HotDryHumidityThreshold = 30.0

	HotWindyTempThreshold = 30.0
	HotWindyWindThreshold = 40.0
)

// Predicate is a boolean test over a record.
type Predicate func(WeatherRecord) bool

// HighTemp matches records whose MaxTemp exceeds threshold.
func HighTemp(threshold float64) Predicate {
	return func(r WeatherRecord) bool {
		return r.MaxTemp > threshold
	}
}

// HighWind matches records whose WindGustSpeed exceeds threshold.
func HighWind(threshold float64) Predicate {
	return func(r WeatherRecord) bool {
		return r.WindGustSpeed > threshold
	}
}

// Combined matches records that are hot OR windy. The OR is intentional:
// the extreme-weather view keeps a day if either condition holds.
func Combined(tempThreshold, windThreshold float64) Predicate {
	return Or(HighTemp(tempThreshold), HighWind(windThreshold))
}

// HotAndDry matches MaxTemp > 35 AND Humidity3pm < 30.
func HotAndDry(r WeatherRecord) bool {
	return r.MaxTemp > HotDryTempThreshold && r.Humidity3pm < HotDryHumidityThreshold
}

// HotAndWindy matches MaxTemp > 30 AND WindGustSpeed > 40.
func HotAndWindy(r WeatherRecord) bool {
	return r.MaxTemp > HotWindyTempThreshold && r.WindGustSpeed > HotWindyWindThreshold
}

func RainToday(r WeatherRecord) bool {
	return r.RainToday == RainYes
}

func RainTomorrow(r WeatherRecord) bool {
	return r.RainTomorrow == RainYes
}

// SurpriseRain matches a dry day followed by a rainy one.
func SurpriseRain(r WeatherRecord) bool {
	return r.RainToday == RainNo && r.RainTomorrow == RainYes
}

// WindDirectionEquals matches records whose field equals value. An empty
// value matches every record ("All Directions"). Unknown fields are rejected
// rather than producing a predicate that never matches.
func WindDirectionEquals(field Field, value string) (Predicate, error) {
	f, err := ParseWindField(string(field))
	if err != nil {
		return nil, err
	}
	return func(r WeatherRecord) bool {
		return value == "" || directionValue(r, f) == value
	}, nil
}

// DateBetween matches records dated within [from, to], compared by calendar day.
func DateBetween(from, to time.Time) Predicate {
	start := truncateDay(from)
	end := truncateDay(to)
	return func(r WeatherRecord) bool {
		d := truncateDay(r.Date)
		return !d.Before(start) && !d.After(end)
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// And matches when every predicate matches.
func And(ps ...Predicate) Predicate {
	return func(r WeatherRecord) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches.
func Or(ps ...Predicate) Predicate {
	return func(r WeatherRecord) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Observation is satisfied by WeatherRecord and EnrichedRecord.
type Observation interface {
	Observed() WeatherRecord
}

// Where returns the records matching p, in input order. The input is not modified.
func Where[T Observation](records []T, p Predicate) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if p(r.Observed()) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many records match p.
func Count[T Observation](records []T, p Predicate) int {
	n := 0
	for _, r := range records {
		if p(r.Observed()) {
			n++
		}
	}
	return n
}
