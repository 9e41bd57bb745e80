// Package dataset decodes and validates the bundled weather data file and
// provides the sources it can be loaded from.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/weather-insights/internal/weather"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON key names so errors match the data file.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// rawRecord mirrors one entry of the data file. Numeric fields are pointers
// so that a missing value can be told apart from zero.
type rawRecord struct {
	ID            json.RawMessage `json:"id" validate:"required"`
	Date          string          `json:"date" validate:"required"`
	MinTemp       *float64        `json:"MinTemp" validate:"required"`
	MaxTemp       *float64        `json:"MaxTemp" validate:"required"`
	Rainfall      *float64        `json:"Rainfall" validate:"required,gte=0"`
	WindGustDir   string          `json:"WindGustDir"`
	WindGustSpeed *float64        `json:"WindGustSpeed" validate:"required,gte=0"`
	WindDir9am    string          `json:"WindDir9am"`
	WindDir3pm    string          `json:"WindDir3pm"`
	Humidity3pm   *float64        `json:"Humidity3pm" validate:"required,gte=0,lte=100"`
	RainToday     string          `json:"RainToday" validate:"required,oneof=Yes No"`
	RainTomorrow  string          `json:"RainTomorrow" validate:"required,oneof=Yes No"`
}

var dateLayouts = []string{weather.DateLayout, time.RFC3339}

// Decode reads a JSON array of records. The first record failing type or
// field validation is reported as a *weather.DataIntegrityError.
func Decode(r io.Reader) ([]weather.WeatherRecord, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode weather data: %w", err)
	}

	records := make([]weather.WeatherRecord, 0, len(raws))
	for i, raw := range raws {
		rec, err := decodeRecord(i, raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := weather.ValidateRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeRecord(i int, raw json.RawMessage) (weather.WeatherRecord, error) {
	var rr rawRecord
	if err := json.Unmarshal(raw, &rr); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return weather.WeatherRecord{}, &weather.DataIntegrityError{
				Index:  i,
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return weather.WeatherRecord{}, &weather.DataIntegrityError{Index: i, Reason: err.Error()}
	}

	id, idErr := parseID(rr.ID)

	if err := validate.Struct(rr); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return weather.WeatherRecord{}, &weather.DataIntegrityError{
				Index:  i,
				ID:     id,
				Field:  fe.Field(),
				Reason: describe(fe),
			}
		}
		return weather.WeatherRecord{}, &weather.DataIntegrityError{Index: i, ID: id, Reason: err.Error()}
	}

	if idErr != nil {
		return weather.WeatherRecord{}, &weather.DataIntegrityError{Index: i, Field: "id", Reason: idErr.Error()}
	}

	date, err := parseDate(rr.Date)
	if err != nil {
		return weather.WeatherRecord{}, &weather.DataIntegrityError{Index: i, ID: id, Field: "date", Reason: err.Error()}
	}

	return weather.WeatherRecord{
		ID:            id,
		Date:          date,
		MinTemp:       *rr.MinTemp,
		MaxTemp:       *rr.MaxTemp,
		Rainfall:      *rr.Rainfall,
		WindGustSpeed: *rr.WindGustSpeed,
		WindGustDir:   strings.TrimSpace(rr.WindGustDir),
		WindDir9am:    strings.TrimSpace(rr.WindDir9am),
		WindDir3pm:    strings.TrimSpace(rr.WindDir3pm),
		Humidity3pm:   *rr.Humidity3pm,
		RainToday:     weather.RainFlag(rr.RainToday),
		RainTomorrow:  weather.RainFlag(rr.RainTomorrow),
	}, nil
}

// parseID accepts either a JSON string or an integer.
func parseID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", errors.New("missing")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return "", errors.New("empty")
		}
		return s, nil
	}

	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return "", fmt.Errorf("expected string or integer, got %s", raw)
	}
	return strconv.FormatInt(n, 10), nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q; use YYYY-MM-DD or RFC3339", s)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing"
	case "oneof":
		return fmt.Sprintf("%v is not one of %s", fe.Value(), fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
