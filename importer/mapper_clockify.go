package importer

import (
	"zeitblatt/worklog"
)

// ClockifyMapper reads the "Start Date", "Start Time" and "Duration (h)"
// columns of a Clockify detailed export.
type ClockifyMapper struct{}

func (m *ClockifyMapper) Name() string {
	return "clockify"
}

func (m *ClockifyMapper) Map(record Record) (*worklog.Entry, bool, error) {
	dateValue := record.Get("Start Date")
	startValue := record.Get("Start Time")
	durationValue := record.Get("Duration (h)")

	// Clockify appends summary rows without a date; skip fully blank rows.
	if dateValue == "" && startValue == "" && durationValue == "" {
		return nil, false, nil
	}

	date, err := parseDate(dateValue)
	if err != nil {
		return nil, false, &ParseError{Row: record.RowNumber, Field: "Start Date", Value: dateValue, Err: err}
	}

	start, err := parseClock(startValue)
	if err != nil {
		return nil, false, &ParseError{Row: record.RowNumber, Field: "Start Time", Value: startValue, Err: err}
	}

	duration, err := parseClock(durationValue)
	if err != nil {
		return nil, false, &ParseError{Row: record.RowNumber, Field: "Duration (h)", Value: durationValue, Err: err}
	}

	entry := &worklog.Entry{
		Date:     date,
		Start:    start,
		Duration: duration,
	}

	return entry, true, nil
}
