package output

import (
	"errors"
	"testing"
	"time"

	"zeitblatt/internal/timeutil"
	"zeitblatt/vacation"
	"zeitblatt/worklog"
)

func TestBuildMonthRowsEmitsOneRowPerDay(t *testing.T) {
	t.Parallel()

	// April 2024: the 10th is a Wednesday, the 20th/21st a weekend.
	records := map[time.Time]worklog.DayRecord{
		timeutil.Date(2024, time.April, 10): {Start: 9 * time.Hour, Total: 8 * time.Hour},
	}
	vacations := []vacation.Period{
		{
			Start:      timeutil.Date(2024, time.April, 22),
			End:        timeutil.Date(2024, time.April, 26),
			PaidPerDay: 8 * time.Hour,
		},
	}

	rows, err := BuildMonthRows(records, 2024, time.April, vacations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 30 {
		t.Fatalf("expected 30 rows, got %d", len(rows))
	}

	for i, row := range rows {
		if row.Day != i+1 {
			t.Fatalf("expected ascending days without gaps, row %d has day %d", i, row.Day)
		}
	}

	if rows[9].Kind != RowWork {
		t.Fatalf("expected work row on day 10")
	}
	for day := 22; day <= 26; day++ {
		if rows[day-1].Kind != RowVacation {
			t.Fatalf("expected vacation row on day %d", day)
		}
	}
	for _, day := range []int{1, 2, 15, 27, 30} {
		if rows[day-1].Kind == RowVacation || (day != 10 && rows[day-1].Kind == RowWork) {
			t.Fatalf("expected plain row on day %d", day)
		}
	}
}

func TestBuildMonthRowsRoundsWorkValues(t *testing.T) {
	t.Parallel()

	records := map[time.Time]worklog.DayRecord{
		timeutil.Date(2024, time.April, 10): {
			Start: 9*time.Hour + 7*time.Minute,
			Total: 7*time.Hour + 52*time.Minute,
		},
	}

	rows, err := BuildMonthRows(records, 2024, time.April, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := rows[9]
	if row.Start != 9*time.Hour {
		t.Fatalf("expected rounded start 09:00, got %v", row.Start)
	}
	if row.Total != 7*time.Hour+45*time.Minute {
		t.Fatalf("expected rounded total 7h45m, got %v", row.Total)
	}
	if row.End != 16*time.Hour+45*time.Minute {
		t.Fatalf("expected end 16:45, got %v", row.End)
	}
	if row.Pause != 0 {
		t.Fatalf("expected zero pause, got %v", row.Pause)
	}
}

func TestBuildMonthRowsMarksWeekends(t *testing.T) {
	t.Parallel()

	// Work on Saturday April 20th keeps the work row, weekend flag set.
	records := map[time.Time]worklog.DayRecord{
		timeutil.Date(2024, time.April, 20): {Start: 10 * time.Hour, Total: 2 * time.Hour},
	}

	rows, err := BuildMonthRows(records, 2024, time.April, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saturday := rows[19]
	if !saturday.Weekend || saturday.Kind != RowWork {
		t.Fatalf("expected weekend work row, got %+v", saturday)
	}

	sunday := rows[20]
	if !sunday.Weekend || sunday.Kind != RowEmpty {
		t.Fatalf("expected empty weekend row, got %+v", sunday)
	}
}

func TestBuildMonthRowsSuppressesVacationOnWeekend(t *testing.T) {
	t.Parallel()

	vacations := []vacation.Period{
		{
			Start:      timeutil.Date(2024, time.April, 19),
			End:        timeutil.Date(2024, time.April, 22),
			PaidPerDay: 8 * time.Hour,
		},
	}

	rows, err := BuildMonthRows(nil, 2024, time.April, vacations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[18].Kind != RowVacation {
		t.Fatalf("expected vacation row on Friday the 19th")
	}
	if rows[19].Kind != RowEmpty || !rows[19].Weekend {
		t.Fatalf("expected empty weekend row on Saturday the 20th, got %+v", rows[19])
	}
	if rows[20].Kind != RowEmpty || !rows[20].Weekend {
		t.Fatalf("expected empty weekend row on Sunday the 21st, got %+v", rows[20])
	}
	if rows[21].Kind != RowVacation {
		t.Fatalf("expected vacation row on Monday the 22nd")
	}
}

func TestBuildMonthRowsRejectsWorkDuringVacation(t *testing.T) {
	t.Parallel()

	records := map[time.Time]worklog.DayRecord{
		timeutil.Date(2024, time.April, 23): {Start: 9 * time.Hour, Total: 4 * time.Hour},
	}
	vacations := []vacation.Period{
		{
			Start:      timeutil.Date(2024, time.April, 22),
			End:        timeutil.Date(2024, time.April, 26),
			PaidPerDay: 8 * time.Hour,
		},
	}

	_, err := BuildMonthRows(records, 2024, time.April, vacations)
	if err == nil {
		t.Fatalf("expected conflict error")
	}

	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T", err)
	}
	if !conflict.Date.Equal(timeutil.Date(2024, time.April, 23)) {
		t.Fatalf("unexpected conflict date: %v", conflict.Date)
	}
	if !conflict.Period.Start.Equal(vacations[0].Start) || !conflict.Period.End.Equal(vacations[0].End) {
		t.Fatalf("unexpected conflict period: %+v", conflict.Period)
	}
}
