package weather

import (
	"fmt"
	"sort"
)

// ReportName identifies one of the canned knowledge-base queries.
type ReportName string

const (
	ReportRainTomorrow ReportName = "rain-tomorrow"
	ReportHotWindy     ReportName = "hot-windy"
	ReportSurpriseRain ReportName = "surprise-rain"
	ReportHotDry       ReportName = "hot-dry"
)

type report struct {
	title string
	match Predicate
}

var reports = map[ReportName]report{
	ReportRainTomorrow: {title: "Days with Rain Tomorrow", match: RainTomorrow},
	ReportHotWindy:     {title: "Hot & Windy Days", match: HotAndWindy},
	ReportSurpriseRain: {title: "Surprise Rain Days", match: SurpriseRain},
	ReportHotDry:       {title: "Hot & Dry Days", match: HotAndDry},
}

// ReportNames lists the known reports in a stable order.
func ReportNames() []ReportName {
	names := make([]ReportName, 0, len(reports))
	for n := range reports {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// UnknownReportError is returned for a report name that is not registered.
type UnknownReportError struct {
	Name string
}

func (e *UnknownReportError) Error() string {
	return fmt.Sprintf("weather: unknown report %q", e.Name)
}

// RunReport filters records with the named report's predicate and formats them.
func RunReport(records []WeatherRecord, name ReportName) (FormattedResults, error) {
	rep, ok := reports[name]
	if !ok {
		return FormattedResults{}, &UnknownReportError{Name: string(name)}
	}

	return FormatResults(rep.title, Where(records, rep.match)), nil
}
