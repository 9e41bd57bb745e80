package weather

// Summarize aggregates counts and means over records. Means are undefined
// for an empty collection, so that case returns ErrEmptyCollection.
func Summarize(records []WeatherRecord) (SummaryStatistics, error) {
	if len(records) == 0 {
		return SummaryStatistics{}, ErrEmptyCollection
	}

	var (
		sumMaxTemp float64
		sumMinTemp float64
		sumWind    float64
		stats      SummaryStatistics
	)

	for _, r := range records {
		sumMaxTemp += r.MaxTemp
		sumMinTemp += r.MinTemp
		sumWind += r.WindGustSpeed

		if RainTomorrow(r) {
			stats.RainTomorrowDays++
		}
		if HotAndWindy(r) {
			stats.HotWindyDays++
		}
		if SurpriseRain(r) {
			stats.SurpriseRainDays++
		}
	}

	n := float64(len(records))

	stats.TotalDays = len(records)
	stats.AverageMaxTemp = sumMaxTemp / n
	stats.AverageMinTemp = sumMinTemp / n
	stats.AverageWindGustSpeed = sumWind / n

	return stats, nil
}

// Search runs the high-temperature, high-wind and combined threshold
// searches over the same enriched set.
func Search(records []EnrichedRecord, tempThreshold, windThreshold float64) SearchResults {
	return SearchResults{
		HighTempDays:    Where(records, HighTemp(tempThreshold)),
		HighWindDays:    Where(records, HighWind(windThreshold)),
		CombinedResults: Where(records, Combined(tempThreshold, windThreshold)),
		RainyDays:       Count(records, RainToday),
	}
}

// FormatResults projects records into a titled listing.
func FormatResults(title string, records []WeatherRecord) FormattedResults {
	data := make([]FormattedDay, 0, len(records))
	for _, r := range records {
		data = append(data, FormattedDay{
			Date:          r.Date.Format(DateLayout),
			MinTemp:       r.MinTemp,
			MaxTemp:       r.MaxTemp,
			Rainfall:      r.Rainfall,
			WindGustSpeed: r.WindGustSpeed,
			RainToday:     r.RainToday,
			RainTomorrow:  r.RainTomorrow,
		})
	}

	return FormattedResults{
		Title: title,
		Count: len(data),
		Data:  data,
	}
}
