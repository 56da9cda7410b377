// Package output builds the monthly timesheet table and renders it into the
// LaTeX document.
package output

import (
	"fmt"
	"time"

	"zeitblatt/internal/timeutil"
	"zeitblatt/vacation"
	"zeitblatt/worklog"
)

type RowKind int

const (
	RowEmpty RowKind = iota
	RowWork
	RowVacation
)

// Row is the rendered content for one calendar day. The weekend flag is
// orthogonal to the kind: a weekend day can still carry a work row, while a
// vacation falling on a weekend is rendered as empty.
type Row struct {
	Day     int
	Weekend bool
	Kind    RowKind

	// Work rows: quarter-hour rounded values.
	Start time.Duration
	End   time.Duration
	Pause time.Duration

	// Work rows carry the rounded duration, vacation rows the paid hours.
	Total time.Duration
}

// ConflictError reports a work entry on a day covered by a vacation period.
type ConflictError struct {
	Date   time.Time
	Period vacation.Period
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("work time recorded on %s which is during vacation (%s-%s)",
		timeutil.FormatDate(e.Date),
		timeutil.FormatDate(e.Period.Start),
		timeutil.FormatDate(e.Period.End))
}

// BuildMonthRows emits one row per calendar day of the given month, in
// ascending day order. Work on a vacation day fails with a ConflictError.
func BuildMonthRows(records map[time.Time]worklog.DayRecord, year int, month time.Month, vacations []vacation.Period) ([]Row, error) {
	numberOfDays := timeutil.DaysInMonth(year, month)
	rows := make([]Row, 0, numberOfDays)

	for day := 1; day <= numberOfDays; day++ {
		date := timeutil.Date(year, month, day)
		row := Row{Day: day, Weekend: timeutil.IsWeekend(date)}

		if record, worked := records[date]; worked {
			if period := vacation.Find(date, vacations); period != nil {
				return nil, &ConflictError{Date: date, Period: *period}
			}
			row.Kind = RowWork
			row.Start = timeutil.RoundClockToQuarterHour(record.Start)
			row.Total = timeutil.RoundDurationToQuarterHour(record.Total)
			row.End = timeutil.AddClock(row.Start, row.Total)
			row.Pause = 0
		} else if period := vacation.Find(date, vacations); period != nil && !row.Weekend {
			row.Kind = RowVacation
			row.Total = period.PaidPerDay
		}

		rows = append(rows, row)
	}

	return rows, nil
}
