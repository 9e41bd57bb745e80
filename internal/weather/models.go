package weather

import (
	"time"
)

// RainFlag is the categorical rain indicator used by the source data.
type RainFlag string

const (
	RainYes RainFlag = "Yes"
	RainNo  RainFlag = "No"
)

// Valid reports whether f is one of the recognised literals.
func (f RainFlag) Valid() bool {
	return f == RainYes || f == RainNo
}

// WeatherRecord is one day's observation. Records are never mutated once a
// store has been built from them. See json.go for the wire form.
type WeatherRecord struct {
	ID            string
	Date          time.Time
	MinTemp       float64
	MaxTemp       float64
	Rainfall      float64
	WindGustSpeed float64
	WindGustDir   string
	WindDir9am    string
	WindDir3pm    string
	Humidity3pm   float64
	RainToday     RainFlag
	RainTomorrow  RainFlag
}

// Observed returns the underlying observation. EnrichedRecord inherits it
// through embedding, which lets predicates run over either type.
func (r WeatherRecord) Observed() WeatherRecord {
	return r
}

// EnrichedRecord is a WeatherRecord plus the fields derived from it.
type EnrichedRecord struct {
	WeatherRecord

	DailyRange float64
	IsHotDry   bool
	IsExtreme  bool
}

// QueryParameters describes a single view request against the record set.
// The zero value selects every record sorted by MaxTemp.
type QueryParameters struct {
	WindField      Field  `json:"windField"`
	WindDirection  string `json:"windDirection"`
	ExtremeWeather bool   `json:"extremeWeather"`
	HotDry         bool   `json:"hotDry"`
	SortBy         Field  `json:"sortBy"`
}

// SummaryStatistics aggregates the whole record collection.
type SummaryStatistics struct {
	TotalDays            int     `json:"totalDays"`
	RainTomorrowDays     int     `json:"rainTomorrowDays"`
	HotWindyDays         int     `json:"hotWindyDays"`
	SurpriseRainDays     int     `json:"noRainTodayButRainTomorrowDays"`
	AverageMaxTemp       float64 `json:"averageMaxTemp"`
	AverageMinTemp       float64 `json:"averageMinTemp"`
	AverageWindGustSpeed float64 `json:"averageWindGustSpeed"`
}

// SearchResults groups the threshold searches shown side by side.
type SearchResults struct {
	HighTempDays    []EnrichedRecord `json:"highTempDays"`
	HighWindDays    []EnrichedRecord `json:"highWindDays"`
	CombinedResults []EnrichedRecord `json:"combinedResults"`
	RainyDays       int              `json:"rainyDays"`
}

// FormattedResults is a titled, trimmed projection of a record list.
type FormattedResults struct {
	Title string         `json:"title"`
	Count int            `json:"count"`
	Data  []FormattedDay `json:"data"`
}

// FormattedDay carries the subset of fields shown in a result listing.
type FormattedDay struct {
	Date          string   `json:"date"`
	MinTemp       float64  `json:"minTemp"`
	MaxTemp       float64  `json:"maxTemp"`
	Rainfall      float64  `json:"rainfall"`
	WindGustSpeed float64  `json:"windGustSpeed"`
	RainToday     RainFlag `json:"rainToday"`
	RainTomorrow  RainFlag `json:"rainTomorrow"`
}
