// Package vacation models paid vacation periods and their lookup against
// calendar days.
package vacation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"zeitblatt/internal/timeutil"
)

// Period is a vacation with an inclusive date range and the paid working
// time credited per vacation day. Start is never after End.
type Period struct {
	Start      time.Time
	End        time.Time
	PaidPerDay time.Duration
}

// Contains reports whether date lies within the period, bounds included.
func (p Period) Contains(date time.Time) bool {
	return timeutil.DateInRange(date, p.Start, p.End)
}

// Find returns the first period in list order that contains date, or nil.
// Overlapping periods are allowed; the first match wins.
func Find(date time.Time, periods []Period) *Period {
	for i := range periods {
		if periods[i].Contains(date) {
			return &periods[i]
		}
	}
	return nil
}

// ValidationError reports a malformed vacation specifier.
type ValidationError struct {
	Spec   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid vacation %q: %s", e.Spec, e.Reason)
}

// ParsePeriod parses a vacation specifier in the form
// "YYYY-MM-DD:YYYY-MM-DD:hh", where hh is the paid working time per day in
// hours and may carry decimals.
func ParsePeriod(spec string) (Period, error) {
	fields := strings.Split(spec, ":")
	if len(fields) != 3 {
		return Period{}, &ValidationError{Spec: spec, Reason: "expected format YYYY-MM-DD:YYYY-MM-DD:hh"}
	}

	start, err := parseDate(fields[0])
	if err != nil {
		return Period{}, &ValidationError{Spec: spec, Reason: fmt.Sprintf("start date: %v", err)}
	}
	end, err := parseDate(fields[1])
	if err != nil {
		return Period{}, &ValidationError{Spec: spec, Reason: fmt.Sprintf("end date: %v", err)}
	}
	if end.Before(start) {
		return Period{}, &ValidationError{Spec: spec, Reason: "end date must not be before start date"}
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return Period{}, &ValidationError{Spec: spec, Reason: fmt.Sprintf("not a valid hours value: %q", fields[2])}
	}
	if hours < 0 {
		return Period{}, &ValidationError{Spec: spec, Reason: "paid hours must not be negative"}
	}

	return Period{Start: start, End: end, PaidPerDay: HoursToDuration(hours)}, nil
}

// HoursToDuration converts decimal hours to a duration.
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid date: %q", value)
	}
	return timeutil.Date(parsed.Year(), parsed.Month(), parsed.Day()), nil
}
