package engine

import (
	"math"
	"time"
)

// DefaultPeriodDays is the length of the observance period.
const DefaultPeriodDays = 30

// Period anchors the observance window. Start is day 1; the display date of
// day n is a fixed linear offset from Start (no real lunar computation).
type Period struct {
	Start     time.Time
	Days      int
	HijriYear int
}

// DefaultPeriod is Ramadan 1447: February 18 through March 19, 2026.
func DefaultPeriod() Period {
	return Period{
		Start:     time.Date(2026, time.February, 18, 0, 0, 0, 0, time.Local),
		Days:      DefaultPeriodDays,
		HijriYear: 1447,
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysSince(start, now time.Time) int {
	d := midnight(now).Sub(midnight(start))
	// Round, not floor: DST shifts make some civil days 23 or 25 hours.
	return int(math.Round(d.Hours() / 24))
}

// CurrentDay maps now to a day number, clamped to [1, Days]. Before the
// period it is 1; after it, Days.
func (p Period) CurrentDay(now time.Time) int {
	day := daysSince(p.Start, now) + 1
	if day < 1 {
		return 1
	}
	if day > p.Days {
		return p.Days
	}
	return day
}

// Before reports whether now falls strictly before day 1.
func (p Period) Before(now time.Time) bool {
	return daysSince(p.Start, now) < 0
}

// After reports whether now falls strictly after the last day.
func (p Period) After(now time.Time) bool {
	return daysSince(p.Start, now) >= p.Days
}

// Editable reports whether the given day may be edited at time now. Outside
// the window every day is editable; inside it, only days up to the current
// day (future days stay locked). This is presentation policy: the tracker's
// mutators do not enforce it themselves.
func (p Period) Editable(day int, now time.Time) bool {
	if p.Before(now) || p.After(now) {
		return true
	}
	return day <= p.CurrentDay(now)
}

// DateOf returns the Gregorian display date of the given day number.
func (p Period) DateOf(day int) time.Time {
	return midnight(p.Start).AddDate(0, 0, day-1)
}

// HijriDate is a display-only lunar date derived by linear offset.
type HijriDate struct {
	Day   int
	Month string
	Year  int
}

// HijriDateOf maps a day number to its Hijri display date. Day n of the
// period is day n of Ramadan in the configured year.
func (p Period) HijriDateOf(day int) HijriDate {
	return HijriDate{Day: day, Month: "Ramadan", Year: p.HijriYear}
}
