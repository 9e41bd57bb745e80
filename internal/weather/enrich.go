package weather

// Enrich derives DailyRange, IsHotDry and IsExtreme for every record.
// Order and count are preserved; no rounding is applied.
func Enrich(records []WeatherRecord) []EnrichedRecord {
	out := make([]EnrichedRecord, len(records))
	for i, r := range records {
		out[i] = EnrichedRecord{
			WeatherRecord: r,
			DailyRange:    r.MaxTemp - r.MinTemp,
			IsHotDry:      HotAndDry(r),
			IsExtreme:     HotAndWindy(r),
		}
	}
	return out
}
