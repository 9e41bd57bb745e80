package weather

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCollection is returned when an aggregate is requested over zero records.
var ErrEmptyCollection = errors.New("weather: empty record collection")

// DataIntegrityError reports a record that failed field validation.
type DataIntegrityError struct {
	Index  int    // position in the source collection, -1 if unknown
	ID     string // record id, if it could be read
	Field  string
	Reason string
}

func (e *DataIntegrityError) Error() string {
	var b strings.Builder
	b.WriteString("weather: invalid record")
	if e.Index >= 0 {
		fmt.Fprintf(&b, " #%d", e.Index)
	}
	if e.ID != "" {
		fmt.Fprintf(&b, " (id %s)", e.ID)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %s", e.Field)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// UnknownFieldError is returned for a field name outside the accepted set.
type UnknownFieldError struct {
	Name    string
	Allowed []Field
}

func (e *UnknownFieldError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, f := range e.Allowed {
		allowed[i] = string(f)
	}
	return fmt.Sprintf("weather: unknown field %q (expected one of %s)", e.Name, strings.Join(allowed, ", "))
}
