// Package worklog holds the normalized work-time records and the per-day
// aggregation the table renderer consumes.
package worklog

import (
	"time"

	"zeitblatt/internal/timeutil"
)

// Entry is one recorded work session as produced by the importer.
type Entry struct {
	Date     time.Time     // calendar day, midnight UTC (see timeutil.Date)
	Start    time.Duration // clock time of the session start
	Duration time.Duration // recorded working time, non-negative
}

// DayRecord is the folded result for one calendar day: the start of the
// first session seen and the summed duration of all sessions.
type DayRecord struct {
	Start time.Duration
	Total time.Duration
}

// DateRange is an inclusive pair of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange derives the billing period that begins at start; the end date
// is one month later minus one day (timeutil.EndDate).
func NewDateRange(start time.Time) (DateRange, error) {
	end, err := timeutil.EndDate(start)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether date lies within the range, bounds included.
func (r DateRange) Contains(date time.Time) bool {
	return timeutil.DateInRange(date, r.Start, r.End)
}

// Aggregate folds entries into one DayRecord per calendar day. Entries
// outside bounds are skipped when bounds is non-nil. Entries are consumed in
// input order and no sorting happens: the stored start time is the start of
// the first entry encountered for a day, later entries only add duration.
func Aggregate(entries []Entry, bounds *DateRange) map[time.Time]DayRecord {
	records := make(map[time.Time]DayRecord, len(entries))
	for _, entry := range entries {
		if bounds != nil && !bounds.Contains(entry.Date) {
			continue
		}
		record, seen := records[entry.Date]
		if !seen {
			records[entry.Date] = DayRecord{Start: entry.Start, Total: entry.Duration}
			continue
		}
		record.Total += entry.Duration
		records[entry.Date] = record
	}
	return records
}
