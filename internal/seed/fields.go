package seed

import (
	"fmt"
	"strconv"
	"time"
)

// Snapshot timestamps are parsed strictly against a closed layout list.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// row is one snapshot record with enough position information to produce
// a useful fatal diagnostic. Field access is positional; the caller knows
// the per-entity column order.
type row struct {
	file   string
	line   int
	fields []string
}

func (r row) errf(col int, format string, args ...any) error {
	return fmt.Errorf("%s line %d column %d: %s", r.file, r.line, col, fmt.Sprintf(format, args...))
}

// String returns the raw field. Quote characters were already replaced
// with the NUL placeholder by the record reader.
func (r row) String(col int) string {
	return r.fields[col]
}

// OptionalString treats the empty string as absent.
func (r row) OptionalString(col int) *string {
	if r.fields[col] == "" {
		return nil
	}
	s := r.fields[col]
	return &s
}

// Int parses strictly; a failure is a fatal load error.
func (r row) Int(col int) (int, error) {
	v, err := strconv.Atoi(r.fields[col])
	if err != nil {
		return 0, r.errf(col, "parse %q as int", r.fields[col])
	}
	return v, nil
}

// OptionalInt applies the parse-or-absent policy used by optional foreign
// keys: anything that does not parse as an integer (including the empty
// string placeholder) is absent, never an error.
func (r row) OptionalInt(col int) *int {
	v, err := strconv.Atoi(r.fields[col])
	if err != nil {
		return nil
	}
	return &v
}

// Time parses strictly; a failure is a fatal load error.
func (r row) Time(col int) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, r.fields[col]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, r.errf(col, "parse %q as time", r.fields[col])
}

// OptionalTime treats the empty string as absent; any other value must
// parse or the load fails.
func (r row) OptionalTime(col int) (*time.Time, error) {
	if r.fields[col] == "" {
		return nil, nil
	}
	t, err := r.Time(col)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Flag decodes the single literal truth token; anything else is false.
func (r row) Flag(col int) bool {
	return r.fields[col] == "1"
}
