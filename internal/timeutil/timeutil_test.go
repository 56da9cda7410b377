package timeutil

import (
	"testing"
	"time"
)

func TestIsWeekend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "friday", date: Date(2024, time.March, 1), want: false},
		{name: "saturday", date: Date(2024, time.March, 2), want: true},
		{name: "sunday", date: Date(2024, time.March, 3), want: true},
		{name: "monday", date: Date(2024, time.March, 4), want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsWeekend(tc.date); got != tc.want {
				t.Fatalf("IsWeekend(%v): want %v, got %v", tc.date, tc.want, got)
			}
		})
	}
}

func TestAddClockWrapsAtMidnight(t *testing.T) {
	t.Parallel()

	clock := 23*time.Hour + 30*time.Minute
	got := AddClock(clock, time.Hour)
	if want := 30 * time.Minute; got != want {
		t.Fatalf("expected wrap to %v, got %v", want, got)
	}
}

func TestAddClockPlainSum(t *testing.T) {
	t.Parallel()

	got := AddClock(9*time.Hour, 7*time.Hour+45*time.Minute)
	if want := 16*time.Hour + 45*time.Minute; got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRoundDurationToQuarterHour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input time.Duration
		want  time.Duration
	}{
		{name: "already aligned", input: 45 * time.Minute, want: 45 * time.Minute},
		{name: "rounds down", input: 52 * time.Minute, want: 45 * time.Minute},
		{name: "rounds up", input: 53 * time.Minute, want: 60 * time.Minute},
		{name: "tie rounds away from zero", input: 7*time.Minute + 30*time.Second, want: 15 * time.Minute},
		{name: "second tie also up", input: 22*time.Minute + 30*time.Second, want: 30 * time.Minute},
		{name: "zero", input: 0, want: 0},
		{name: "full day stays", input: 8 * time.Hour, want: 8 * time.Hour},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := RoundDurationToQuarterHour(tc.input)
			if got != tc.want {
				t.Fatalf("round %v: want %v, got %v", tc.input, tc.want, got)
			}
			if again := RoundDurationToQuarterHour(got); again != got {
				t.Fatalf("rounding is not idempotent: %v became %v", got, again)
			}
		})
	}
}

func TestRoundClockToQuarterHourWraps(t *testing.T) {
	t.Parallel()

	got := RoundClockToQuarterHour(23*time.Hour + 53*time.Minute)
	if got != 0 {
		t.Fatalf("expected 23:53 to round to midnight, got %v", got)
	}
}

func TestDateInRangeBoundsInclusive(t *testing.T) {
	t.Parallel()

	start := Date(2024, time.January, 10)
	end := Date(2024, time.January, 20)

	if !DateInRange(start, start, end) {
		t.Fatalf("start bound must be included")
	}
	if !DateInRange(end, start, end) {
		t.Fatalf("end bound must be included")
	}
	if DateInRange(Date(2024, time.January, 9), start, end) {
		t.Fatalf("day before start must be excluded")
	}
	if DateInRange(Date(2024, time.January, 21), start, end) {
		t.Fatalf("day after end must be excluded")
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{year: 2024, month: time.February, want: 29},
		{year: 2023, month: time.February, want: 28},
		{year: 2024, month: time.December, want: 31},
		{year: 2024, month: time.April, want: 30},
	}

	for _, tc := range tests {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %v): want %d, got %d", tc.year, tc.month, tc.want, got)
		}
	}
}

func TestEndDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   time.Time
		want    time.Time
		wantErr bool
	}{
		{name: "mid month", start: Date(2024, time.March, 15), want: Date(2024, time.April, 14)},
		{name: "december rolls year", start: Date(2000, time.December, 15), want: Date(2001, time.January, 14)},
		{name: "day two ends on first", start: Date(2024, time.May, 2), want: Date(2024, time.June, 1)},
		{name: "first of month rejected", start: Date(2024, time.May, 1), wantErr: true},
		{name: "overflow into short month rejected", start: Date(2024, time.January, 31), wantErr: true},
		{name: "leap february fits", start: Date(2024, time.January, 30), want: Date(2024, time.February, 29)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := EndDate(tc.start)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for start %v", tc.start)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("EndDate(%v): want %v, got %v", tc.start, tc.want, got)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	if got := FormatDuration(7*time.Hour + 30*time.Minute); got != "7.50" {
		t.Fatalf("expected 7.50, got %s", got)
	}
	if got := FormatDuration(0); got != "0.00" {
		t.Fatalf("expected 0.00, got %s", got)
	}
	if got := FormatClock(9*time.Hour + 5*time.Minute); got != "09:05" {
		t.Fatalf("expected 09:05, got %s", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %s", got)
	}
	if got := FormatDate(Date(2024, time.March, 7)); got != "07.03.2024" {
		t.Fatalf("expected 07.03.2024, got %s", got)
	}
}
