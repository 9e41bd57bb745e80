package weather

import "time"

// day builds a valid record; callers override the fields a test cares about.
func day(id string, mutate ...func(*WeatherRecord)) WeatherRecord {
	r := WeatherRecord{
		ID:            id,
		Date:          time.Date(2008, 12, 1, 0, 0, 0, 0, time.UTC),
		MinTemp:       10,
		MaxTemp:       20,
		Rainfall:      0,
		WindGustSpeed: 20,
		WindGustDir:   "W",
		WindDir9am:    "N",
		WindDir3pm:    "S",
		Humidity3pm:   50,
		RainToday:     RainNo,
		RainTomorrow:  RainNo,
	}
	for _, m := range mutate {
		m(&r)
	}
	return r
}

func ids(records []EnrichedRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
