package weather

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-day format of the data file and of every JSON view.
const DateLayout = "2006-01-02"

type recordJSON struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	MinTemp       float64  `json:"minTemp"`
	MaxTemp       float64  `json:"maxTemp"`
	Rainfall      float64  `json:"rainfall"`
	WindGustSpeed float64  `json:"windGustSpeed"`
	WindGustDir   string   `json:"windGustDir,omitempty"`
	WindDir9am    string   `json:"windDir9am,omitempty"`
	WindDir3pm    string   `json:"windDir3pm,omitempty"`
	Humidity3pm   float64  `json:"humidity3pm"`
	RainToday     RainFlag `json:"rainToday"`
	RainTomorrow  RainFlag `json:"rainTomorrow"`
}

type enrichedJSON struct {
	recordJSON

	DailyRange float64 `json:"dailyRange"`
	IsHotDry   bool    `json:"isHotDry"`
	IsExtreme  bool    `json:"isExtreme"`
}

func (r WeatherRecord) toJSON() recordJSON {
	return recordJSON{
		ID:            r.ID,
		Date:          r.Date.Format(DateLayout),
		MinTemp:       r.MinTemp,
		MaxTemp:       r.MaxTemp,
		Rainfall:      r.Rainfall,
		WindGustSpeed: r.WindGustSpeed,
		WindGustDir:   r.WindGustDir,
		WindDir9am:    r.WindDir9am,
		WindDir3pm:    r.WindDir3pm,
		Humidity3pm:   r.Humidity3pm,
		RainToday:     r.RainToday,
		RainTomorrow:  r.RainTomorrow,
	}
}

func (j recordJSON) toRecord() (WeatherRecord, error) {
	var date time.Time
	if j.Date != "" {
		d, err := time.Parse(DateLayout, j.Date)
		if err != nil {
			return WeatherRecord{}, fmt.Errorf("weather: invalid date %q: %w", j.Date, err)
		}
		date = d
	}

	return WeatherRecord{
		ID:            j.ID,
		Date:          date,
		MinTemp:       j.MinTemp,
		MaxTemp:       j.MaxTemp,
		Rainfall:      j.Rainfall,
		WindGustSpeed: j.WindGustSpeed,
		WindGustDir:   j.WindGustDir,
		WindDir9am:    j.WindDir9am,
		WindDir3pm:    j.WindDir3pm,
		Humidity3pm:   j.Humidity3pm,
		RainToday:     j.RainToday,
		RainTomorrow:  j.RainTomorrow,
	}, nil
}

func (r WeatherRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toJSON())
}

func (r *WeatherRecord) UnmarshalJSON(data []byte) error {
	var j recordJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rec, err := j.toRecord()
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// MarshalJSON is defined on EnrichedRecord as well so the promoted
// WeatherRecord method does not drop the derived fields.
func (e EnrichedRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(enrichedJSON{
		recordJSON: e.WeatherRecord.toJSON(),
		DailyRange: e.DailyRange,
		IsHotDry:   e.IsHotDry,
		IsExtreme:  e.IsExtreme,
	})
}

func (e *EnrichedRecord) UnmarshalJSON(data []byte) error {
	var j enrichedJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rec, err := j.recordJSON.toRecord()
	if err != nil {
		return err
	}
	*e = EnrichedRecord{
		WeatherRecord: rec,
		DailyRange:    j.DailyRange,
		IsHotDry:      j.IsHotDry,
		IsExtreme:     j.IsExtreme,
	}
	return nil
}
