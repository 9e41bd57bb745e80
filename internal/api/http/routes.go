package httpapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-insights/internal/store"
	"github.com/i474232898/weather-insights/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/records", func(c *fiber.Ctx) error {
		records := service.Records()
		return c.JSON(fiber.Map{
			"count":   len(records),
			"records": records,
		})
	})

	// Static record routes go before /records/:id so they are not captured as ids.
	v1.Get("/records/range", func(c *fiber.Ctx) error {
		var req rangeQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		records, err := service.Range(req.From, req.To)
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(fiber.Map{
			"from":    req.From.Format(weather.DateLayout),
			"to":      req.To.Format(weather.DateLayout),
			"count":   len(records),
			"records": records,
		})
	})

	v1.Get("/records/query", func(c *fiber.Ctx) error {
		var req viewQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		params, err := req.toParameters().Normalize()
		if err != nil {
			return toFiberError(err)
		}

		records, err := service.Query(params)
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(fiber.Map{
			"params":  params,
			"count":   len(records),
			"records": records,
		})
	})

	v1.Get("/records/:id", func(c *fiber.Ctx) error {
		id, err := url.PathUnescape(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid record id")
		}

		record, err := service.Record(id)
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(record)
	})

	v1.Get("/directions", func(c *fiber.Ctx) error {
		field := weather.Field(c.Query("field", string(weather.FieldWindGustDir)))
		directions, err := service.Directions(field)
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(fiber.Map{
			"field":      field,
			"directions": directions,
		})
	})

	v1.Get("/summary", func(c *fiber.Ctx) error {
		stats, err := service.Summary()
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(stats)
	})

	v1.Get("/search", func(c *fiber.Ctx) error {
		var req searchQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(service.Search(req.Temp, req.Wind))
	})

	v1.Get("/reports", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"reports": weather.ReportNames()})
	})

	v1.Get("/reports/:name", func(c *fiber.Ctx) error {
		results, err := service.Report(weather.ReportName(c.Params("name")))
		if err != nil {
			return toFiberError(err)
		}
		return c.JSON(results)
	})
}

// toFiberError maps engine and store errors to HTTP status codes.
func toFiberError(err error) error {
	var (
		unknownField  *weather.UnknownFieldError
		unknownReport *weather.UnknownReportError
	)

	switch {
	case errors.As(err, &unknownField):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrInvalidRange):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &unknownReport):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "no weather record with requested id")
	case errors.Is(err, weather.ErrEmptyCollection):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "no weather records loaded")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute weather view")
	}
}

// viewQuery holds query parameters for the filtered, sorted view.
type viewQuery struct {
	WindField     string
	WindDirection string `validate:"omitempty,max=3,alpha"`
	Extreme       bool
	HotDry        bool
	SortBy        string
}

func (q *viewQuery) bind(c *fiber.Ctx) error {
	q.WindField = c.Query("windField")
	q.WindDirection = c.Query("windDirection")
	q.SortBy = c.Query("sortBy")

	var err error
	if q.Extreme, err = parseFlag(c.Query("extreme")); err != nil {
		return fmt.Errorf("extreme: %w", err)
	}
	if q.HotDry, err = parseFlag(c.Query("hotDry")); err != nil {
		return fmt.Errorf("hotDry: %w", err)
	}
	return nil
}

func (q viewQuery) toParameters() weather.QueryParameters {
	return weather.QueryParameters{
		WindField:      weather.Field(q.WindField),
		WindDirection:  q.WindDirection,
		ExtremeWeather: q.Extreme,
		HotDry:         q.HotDry,
		SortBy:         weather.Field(q.SortBy),
	}
}

// rangeQuery holds query parameters for the date range endpoint. Both
// bounds are truncated to the calendar day, so ordering is by day too.
type rangeQuery struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

func (r *rangeQuery) bind(c *fiber.Ctx) error {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseDate(fromStr)
	if err != nil {
		return err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return err
	}

	r.From = startOfDay(from)
	r.To = startOfDay(to)
	return nil
}

// searchQuery holds the thresholds for the search endpoint.
type searchQuery struct {
	Temp float64 `validate:"gte=-100,lte=100"`
	Wind float64 `validate:"gte=0,lte=500"`
}

func (s *searchQuery) bind(c *fiber.Ctx) error {
	var err error
	if s.Temp, err = parseFloatDefault(c.Query("temp"), weather.ExtremeTempThreshold); err != nil {
		return fmt.Errorf("temp: %w", err)
	}
	if s.Wind, err = parseFloatDefault(c.Query("wind"), weather.ExtremeWindThreshold); err != nil {
		return fmt.Errorf("wind: %w", err)
	}
	return nil
}

// parseDate accepts YYYY-MM-DD or RFC3339.
func parseDate(s string) (time.Time, error) {
	if ts, err := time.Parse(weather.DateLayout, s); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	return time.Time{}, errors.New("invalid date format; use YYYY-MM-DD or RFC3339")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New("expected true or false")
	}
	return b, nil
}

func parseFloatDefault(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("expected a number")
	}
	return f, nil
}
