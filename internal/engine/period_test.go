package engine

import (
	"testing"
	"time"
)

func testPeriod() Period {
	return Period{
		Start:     time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC),
		Days:      30,
		HijriYear: 1447,
	}
}

func TestCurrentDayClamps(t *testing.T) {
	p := testPeriod()

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"week before start", p.Start.AddDate(0, 0, -7), 1},
		{"day before start", p.Start.AddDate(0, 0, -1), 1},
		{"day 1", p.Start, 1},
		{"day 1 evening", p.Start.Add(23 * time.Hour), 1},
		{"day 10", p.Start.AddDate(0, 0, 9), 10},
		{"last day", p.Start.AddDate(0, 0, 29), 30},
		{"day after period", p.Start.AddDate(0, 0, 30), 30},
		{"weeks after period", p.Start.AddDate(0, 0, 45), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.CurrentDay(tt.now); got != tt.want {
				t.Fatalf("CurrentDay=%d, want %d", got, tt.want)
			}
		})
	}
}

func TestBeforeAfterBoundaries(t *testing.T) {
	p := testPeriod()

	if !p.Before(p.Start.AddDate(0, 0, -1)) {
		t.Fatalf("day before start: Before=false, want true")
	}
	if p.Before(p.Start) {
		t.Fatalf("day 1: Before=true, want false")
	}
	if p.After(p.Start.AddDate(0, 0, 29)) {
		t.Fatalf("last day: After=true, want false")
	}
	if !p.After(p.Start.AddDate(0, 0, 30)) {
		t.Fatalf("day after last: After=false, want true")
	}
}

func TestEditablePolicy(t *testing.T) {
	p := testPeriod()

	// Inside the window: past and current days editable, future locked.
	day10 := p.Start.AddDate(0, 0, 9)
	if !p.Editable(1, day10) || !p.Editable(10, day10) {
		t.Fatalf("past/current days should be editable inside the window")
	}
	if p.Editable(11, day10) || p.Editable(30, day10) {
		t.Fatalf("future days should be locked inside the window")
	}

	// Outside the window every day is editable.
	before := p.Start.AddDate(0, 0, -3)
	after := p.Start.AddDate(0, 0, 35)
	for _, day := range []int{1, 15, 30} {
		if !p.Editable(day, before) {
			t.Fatalf("day %d locked before the window", day)
		}
		if !p.Editable(day, after) {
			t.Fatalf("day %d locked after the window", day)
		}
	}
}

func TestDateOf(t *testing.T) {
	p := testPeriod()
	if got := p.DateOf(1); !got.Equal(p.Start) {
		t.Fatalf("DateOf(1)=%v, want %v", got, p.Start)
	}
	want := time.Date(2026, time.March, 19, 0, 0, 0, 0, time.UTC)
	if got := p.DateOf(30); !got.Equal(want) {
		t.Fatalf("DateOf(30)=%v, want %v", got, want)
	}
}

func TestHijriDateOf(t *testing.T) {
	p := testPeriod()
	h := p.HijriDateOf(27)
	if h.Day != 27 || h.Month != "Ramadan" || h.Year != 1447 {
		t.Fatalf("HijriDateOf(27)=%+v", h)
	}
}
