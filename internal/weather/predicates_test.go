package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdPredicates(t *testing.T) {
	hot := day("hot", func(r *WeatherRecord) { r.MaxTemp = 36; r.WindGustSpeed = 20; r.Humidity3pm = 25 })
	windy := day("windy", func(r *WeatherRecord) { r.MaxTemp = 20; r.WindGustSpeed = 50; r.Humidity3pm = 60 })

	assert.True(t, HighTemp(35)(hot))
	assert.False(t, HighTemp(36)(hot), "threshold is strict")
	assert.False(t, HighTemp(35)(windy))

	assert.True(t, HighWind(40)(windy))
	assert.False(t, HighWind(40)(hot))

	// Either condition is enough.
	combined := Combined(35, 40)
	assert.True(t, combined(hot))
	assert.True(t, combined(windy))
	assert.False(t, combined(day("mild")))
}

func TestHotAndDryUsesAnd(t *testing.T) {
	assert.True(t, HotAndDry(day("a", func(r *WeatherRecord) { r.MaxTemp = 36; r.Humidity3pm = 29 })))
	assert.False(t, HotAndDry(day("b", func(r *WeatherRecord) { r.MaxTemp = 36; r.Humidity3pm = 30 })))
	assert.False(t, HotAndDry(day("c", func(r *WeatherRecord) { r.MaxTemp = 35; r.Humidity3pm = 10 })))
}

func TestHotAndWindy(t *testing.T) {
	assert.True(t, HotAndWindy(day("a", func(r *WeatherRecord) { r.MaxTemp = 31; r.WindGustSpeed = 41 })))
	assert.False(t, HotAndWindy(day("b", func(r *WeatherRecord) { r.MaxTemp = 31; r.WindGustSpeed = 40 })))
	assert.False(t, HotAndWindy(day("c", func(r *WeatherRecord) { r.MaxTemp = 30; r.WindGustSpeed = 60 })))
}

func TestRainPredicates(t *testing.T) {
	cases := []struct {
		today, tomorrow               RainFlag
		rainToday, rainTmrw, surprise bool
	}{
		{RainNo, RainNo, false, false, false},
		{RainNo, RainYes, false, true, true},
		{RainYes, RainYes, true, true, false},
		{RainYes, RainNo, true, false, false},
	}

	for _, tc := range cases {
		r := day("x", func(r *WeatherRecord) { r.RainToday = tc.today; r.RainTomorrow = tc.tomorrow })
		assert.Equal(t, tc.rainToday, RainToday(r), "RainToday %s/%s", tc.today, tc.tomorrow)
		assert.Equal(t, tc.rainTmrw, RainTomorrow(r), "RainTomorrow %s/%s", tc.today, tc.tomorrow)
		assert.Equal(t, tc.surprise, SurpriseRain(r), "SurpriseRain %s/%s", tc.today, tc.tomorrow)
	}
}

func TestWindDirectionEquals(t *testing.T) {
	records := []WeatherRecord{
		day("1", func(r *WeatherRecord) { r.WindGustDir = "W"; r.WindDir3pm = "NE" }),
		day("2", func(r *WeatherRecord) { r.WindGustDir = "NW"; r.WindDir3pm = "NE" }),
		day("3", func(r *WeatherRecord) { r.WindGustDir = "" }),
	}

	t.Run("empty value matches all", func(t *testing.T) {
		p, err := WindDirectionEquals(FieldWindGustDir, "")
		require.NoError(t, err)
		assert.Equal(t, len(records), Count(records, p))
	})

	t.Run("exact match", func(t *testing.T) {
		p, err := WindDirectionEquals(FieldWindGustDir, "W")
		require.NoError(t, err)
		assert.True(t, p(records[0]))
		assert.False(t, p(records[1]))
		assert.False(t, p(records[2]))
	})

	t.Run("field name is case-insensitive", func(t *testing.T) {
		p, err := WindDirectionEquals("winddir3pm", "NE")
		require.NoError(t, err)
		assert.Equal(t, 2, Count(records, p))
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := WindDirectionEquals("MaxTemp", "W")
		var unknown *UnknownFieldError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "MaxTemp", unknown.Name)
		assert.Equal(t, WindFields, unknown.Allowed)
	})
}

func TestDateBetweenIsInclusive(t *testing.T) {
	at := func(d int) WeatherRecord {
		return day("d", func(r *WeatherRecord) { r.Date = time.Date(2008, 12, d, 0, 0, 0, 0, time.UTC) })
	}
	p := DateBetween(time.Date(2008, 12, 2, 0, 0, 0, 0, time.UTC), time.Date(2008, 12, 4, 15, 0, 0, 0, time.UTC))

	assert.False(t, p(at(1)))
	assert.True(t, p(at(2)))
	assert.True(t, p(at(4)))
	assert.False(t, p(at(5)))
}

func TestCombinators(t *testing.T) {
	r := day("a", func(r *WeatherRecord) { r.MaxTemp = 40 })
	yes := func(WeatherRecord) bool { return true }
	no := func(WeatherRecord) bool { return false }

	assert.True(t, And()(r))
	assert.True(t, And(yes, HighTemp(35))(r))
	assert.False(t, And(yes, no)(r))
	assert.False(t, Or()(r))
	assert.True(t, Or(no, yes)(r))
}

func TestWhereAndCountOverEitherRecordType(t *testing.T) {
	raw := []WeatherRecord{
		day("cool"),
		day("hot", func(r *WeatherRecord) { r.MaxTemp = 36 }),
		day("hotter", func(r *WeatherRecord) { r.MaxTemp = 39 }),
	}
	enriched := Enrich(raw)

	hot := Where(enriched, HighTemp(35))
	assert.Equal(t, []string{"hot", "hotter"}, ids(hot))
	assert.InDelta(t, 29.0, hot[1].DailyRange, 1e-9, "derived fields survive filtering")

	assert.Equal(t, 2, Count(raw, HighTemp(35)))
	assert.Equal(t, 2, Count(enriched, HighTemp(35)))
	assert.Equal(t, 3, Count(raw, And()))
	assert.Empty(t, Where(raw, Or()))
	assert.Equal(t, "cool", raw[0].ID, "input is untouched")
}
