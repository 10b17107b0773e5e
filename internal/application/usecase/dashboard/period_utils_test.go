package dashboard

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{name: "mid month", date: "2024-03-15", wantStart: "2024-03-01", wantEnd: "2024-03-31"},
		{name: "leap february", date: "2024-02-14", wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "non-leap february", date: "2023-02-14", wantStart: "2023-02-01", wantEnd: "2023-02-28"},
		{name: "first day", date: "2024-04-01", wantStart: "2024-04-01", wantEnd: "2024-04-30"},
		{name: "last day", date: "2024-12-31", wantStart: "2024-12-01", wantEnd: "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(day(tt.date))
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
		})
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{name: "wednesday", date: "2024-03-20", wantStart: "2024-03-17", wantEnd: "2024-03-23"},
		{name: "sunday is its own week start", date: "2024-03-17", wantStart: "2024-03-17", wantEnd: "2024-03-23"},
		{name: "saturday closes the week", date: "2024-03-23", wantStart: "2024-03-17", wantEnd: "2024-03-23"},
		{name: "week spanning a month boundary", date: "2024-04-02", wantStart: "2024-03-31", wantEnd: "2024-04-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(day(tt.date))
			if got := start.Format("2006-01-02"); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := end.Format("2006-01-02"); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
			if start.Weekday() != WeekStartDay {
				t.Errorf("start weekday = %s, want %s", start.Weekday(), WeekStartDay)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 59, 123, time.UTC)
	got := dateOnly(ts)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("dateOnly(%s) = %s, want %s", ts, got, want)
	}
}
