package weather

// Normalize fills defaults and resolves field names. Unknown names are
// reported as *UnknownFieldError.
func (p QueryParameters) Normalize() (QueryParameters, error) {
	if p.WindField == "" {
		p.WindField = FieldWindGustDir
	}
	wf, err := ParseWindField(string(p.WindField))
	if err != nil {
		return p, err
	}
	p.WindField = wf

	if p.SortBy == "" {
		p.SortBy = FieldMaxTemp
	}
	sf, err := ParseSortField(string(p.SortBy))
	if err != nil {
		return p, err
	}
	p.SortBy = sf

	return p, nil
}

// ApplyFilters keeps the records matching every enabled filter. The filters
// are conjunctive across categories even though the extreme-weather filter
// is an OR internally.
func ApplyFilters(records []EnrichedRecord, params QueryParameters) ([]EnrichedRecord, error) {
	params, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	var narrowing []Predicate

	if params.WindDirection != "" {
		byDirection, err := WindDirectionEquals(params.WindField, params.WindDirection)
		if err != nil {
			return nil, err
		}
		narrowing = append(narrowing, byDirection)
	}

	if params.ExtremeWeather {
		narrowing = append(narrowing, Combined(ExtremeTempThreshold, ExtremeWindThreshold))
	}

	if params.HotDry {
		narrowing = append(narrowing, HotAndDry)
	}

	return Where(records, And(narrowing...)), nil
}
