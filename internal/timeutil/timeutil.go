// Package timeutil provides the calendar and clock arithmetic shared by the
// timesheet pipeline. Calendar days are time.Time values at midnight UTC as
// produced by Date; clock times and durations are time.Duration offsets.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// Date builds the canonical representation of a calendar day. All packages
// must construct day values through this function so they compare equal as
// map keys.
func Date(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// AddClock adds a duration to a clock time, wrapping within a 24h reference
// day. There is no date carry; inputs are bounded by the domain.
func AddClock(clock, duration time.Duration) time.Duration {
	sum := (clock + duration) % day
	if sum < 0 {
		sum += day
	}
	return sum
}

// DateInRange reports whether date lies within [start, end], bounds included.
func DateInRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// RoundDurationToQuarterHour rounds a duration to the nearest multiple of 15
// minutes. Ties round away from zero, so 7m30s becomes 15m.
func RoundDurationToQuarterHour(duration time.Duration) time.Duration {
	quarters := math.Round(duration.Minutes() / 15)
	return time.Duration(quarters) * 15 * time.Minute
}

// RoundClockToQuarterHour rounds a clock time to the nearest quarter hour
// after midnight. Rounding 23:53 wraps to 00:00.
func RoundClockToQuarterHour(clock time.Duration) time.Duration {
	return AddClock(0, RoundDurationToQuarterHour(clock))
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// EndDate computes the end of the billing period that begins at start: the
// day before the same day number in the following month. For example,
// 2000-12-15 yields 2001-01-14.
//
// The rule can name a day that does not exist. A start on the first of a
// month would need day zero, and a start late in a long month can overflow a
// short successor (2024-01-31 would need February 30th). Both cases are
// rejected instead of being normalized to a neighbouring date.
func EndDate(start time.Time) (time.Time, error) {
	year := start.Year()
	month := start.Month()
	if month == time.December {
		year++
		month = time.January
	} else {
		month++
	}

	dayOfMonth := start.Day() - 1
	if dayOfMonth < 1 {
		return time.Time{}, fmt.Errorf("start date %s has no end date: a period starting on the first of a month would end on day 0", FormatDate(start))
	}
	if last := DaysInMonth(year, month); dayOfMonth > last {
		return time.Time{}, fmt.Errorf("start date %s has no end date: %04d-%02d has only %d days", FormatDate(start), year, int(month), last)
	}

	return Date(year, month, dayOfMonth), nil
}

// FormatDuration renders a duration as decimal hours with two digits, e.g.
// "7.50". This is the column format of the timesheet table.
func FormatDuration(duration time.Duration) string {
	return fmt.Sprintf("%0.2f", duration.Hours())
}

// FormatClock renders a clock time as "HH:MM".
func FormatClock(clock time.Duration) string {
	hours := int(clock / time.Hour)
	minutes := int(clock % time.Hour / time.Minute)
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// FormatDate renders a date as "DD.MM.YYYY".
func FormatDate(date time.Time) string {
	return date.Format("02.01.2006")
}
