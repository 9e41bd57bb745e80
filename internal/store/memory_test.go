package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-insights/internal/weather"
)

func record(id string, day int) weather.WeatherRecord {
	return weather.WeatherRecord{
		ID:            id,
		Date:          time.Date(2008, 12, day, 0, 0, 0, 0, time.UTC),
		MinTemp:       10,
		MaxTemp:       20 + float64(day),
		WindGustSpeed: 30,
		WindGustDir:   "W",
		Humidity3pm:   40,
		RainToday:     weather.RainNo,
		RainTomorrow:  weather.RainYes,
	}
}

func TestMemoryStore_AllPreservesOrderAndCopies(t *testing.T) {
	input := []weather.WeatherRecord{record("3", 3), record("1", 1), record("2", 2)}

	s, err := NewMemoryStore(input)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	// Changing the caller's slice does not reach the store.
	input[0].MaxTemp = -99

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID)
	assert.Equal(t, 23.0, all[0].MaxTemp)

	// Neither does changing a returned slice.
	all[0] = record("x", 9)
	assert.Equal(t, "3", s.All()[0].ID)
}

func TestMemoryStore_GetByID(t *testing.T) {
	s, err := NewMemoryStore([]weather.WeatherRecord{record("a", 1), record("b", 2)})
	require.NoError(t, err)

	r, err := s.GetByID("b")
	require.NoError(t, err)
	assert.Equal(t, 22.0, r.MaxTemp)

	_, err = s.GetByID("c")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetRange(t *testing.T) {
	s, err := NewMemoryStore([]weather.WeatherRecord{record("1", 1), record("5", 5), record("3", 3), record("9", 9)})
	require.NoError(t, err)

	from := time.Date(2008, 12, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2008, 12, 5, 0, 0, 0, 0, time.UTC)

	got, err := s.GetRange(from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "5", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	none, err := s.GetRange(to.AddDate(1, 0, 0), to.AddDate(2, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = s.GetRange(to, from)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestMemoryStore_RejectsInvalidRecords(t *testing.T) {
	bad := record("x", 1)
	bad.RainToday = "maybe"

	_, err := NewMemoryStore([]weather.WeatherRecord{record("a", 1), bad})
	var integrity *weather.DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, 1, integrity.Index)
	assert.Equal(t, "RainToday", integrity.Field)

	_, err = NewMemoryStore([]weather.WeatherRecord{record("a", 1), record("a", 2)})
	require.ErrorAs(t, err, &integrity)
	assert.Equal(t, "id", integrity.Field)
}

func TestMemoryStore_Empty(t *testing.T) {
	s, err := NewMemoryStore(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}
