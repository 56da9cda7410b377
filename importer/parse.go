package importer

import (
	"fmt"
	"time"

	"zeitblatt/internal/timeutil"
)

// Clockify exports use these fixed column formats. They are a contract:
// anything else in a date/time/duration field fails the whole import.
const (
	dateLayout  = "01/02/2006"
	clockLayout = "15:04:05"
)

// ParseError reports a malformed field in an input row. The import aborts on
// the first one; there is no best-effort mode.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: field %q: cannot parse %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected MM/DD/YYYY: %w", err)
	}
	return timeutil.Date(parsed.Year(), parsed.Month(), parsed.Day()), nil
}

// parseClock parses an HH:MM:SS value into a duration after midnight. The
// same format carries both start times and durations in Clockify exports, so
// durations are capped below 24h by the layout itself.
func parseClock(value string) (time.Duration, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM:SS: %w", err)
	}
	return time.Duration(parsed.Hour())*time.Hour +
		time.Duration(parsed.Minute())*time.Minute +
		time.Duration(parsed.Second())*time.Second, nil
}
