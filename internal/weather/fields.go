package weather

import "strings"

// Field names a record attribute addressable by queries.
type Field string

const (
	FieldMaxTemp     Field = "MaxTemp"
	FieldRainfall    Field = "Rainfall"
	FieldHumidity3pm Field = "Humidity3pm"

	FieldWindGustDir Field = "WindGustDir"
	FieldWindDir9am  Field = "WindDir9am"
	FieldWindDir3pm  Field = "WindDir3pm"
)

// SortFields are the numeric fields a view can be ordered by.
var SortFields = []Field{FieldMaxTemp, FieldRainfall, FieldHumidity3pm}

// WindFields are the compass-direction fields a view can be filtered on.
var WindFields = []Field{FieldWindGustDir, FieldWindDir9am, FieldWindDir3pm}

// ParseSortField resolves name (case-insensitively) to a sort key.
func ParseSortField(name string) (Field, error) {
	return parseField(name, SortFields)
}

// ParseWindField resolves name (case-insensitively) to a wind-direction field.
func ParseWindField(name string) (Field, error) {
	return parseField(name, WindFields)
}

func parseField(name string, allowed []Field) (Field, error) {
	for _, f := range allowed {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", &UnknownFieldError{Name: name, Allowed: allowed}
}

func numericValue(r WeatherRecord, f Field) float64 {
	switch f {
	case FieldMaxTemp:
		return r.MaxTemp
	case FieldRainfall:
		return r.Rainfall
	case FieldHumidity3pm:
		return r.Humidity3pm
	}
	return 0
}

func directionValue(r WeatherRecord, f Field) string {
	switch f {
	case FieldWindGustDir:
		return r.WindGustDir
	case FieldWindDir9am:
		return r.WindDir9am
	case FieldWindDir3pm:
		return r.WindDir3pm
	}
	return ""
}
