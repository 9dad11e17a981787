package engine

import (
	"math"

	"github.com/jubams/ramadan-tracker/internal/catalog"
)

// PrayerCompletion scores a prayer record as three equal sub-components:
// prayed in time, athkar read, and sunna units completed (fractional).
// The result is a rounded percentage in [0,100].
func PrayerCompletion(rec ItemRecord, it catalog.Item) int {
	done := 0.0
	if rec.InTime {
		done++
	}
	if rec.AthkarRead {
		done++
	}
	if it.SunnaCount > 0 {
		done += float64(rec.SunnaCompleted) / float64(it.SunnaCount)
	}
	return int(math.Round(done / 3.0 * 100))
}

// CheckboxGoalCompletion is all-or-nothing.
func CheckboxGoalCompletion(rec ItemRecord) int {
	if rec.Completed {
		return 100
	}
	return 0
}

// NumberGoalCompletion scores value against the item's target, capped at
// 100%. Values above target are legal (Max may exceed Target); a
// non-positive target always scores 0.
func NumberGoalCompletion(rec ItemRecord, it catalog.Item) int {
	if it.Target <= 0 {
		return 0
	}
	progress := float64(rec.Value) / float64(it.Target)
	if progress > 1 {
		progress = 1
	}
	return int(math.Round(progress * 100))
}

// ItemCompletion dispatches on the definition's kind.
func ItemCompletion(rec ItemRecord, it catalog.Item) int {
	switch it.Kind {
	case catalog.KindPrayer:
		return PrayerCompletion(rec, it)
	case catalog.KindGoal:
		if it.GoalKind == catalog.GoalNumber {
			return NumberGoalCompletion(rec, it)
		}
		return CheckboxGoalCompletion(rec)
	default:
		return 0
	}
}

// AggregateDay computes a day's weighted overall percentage and its count of
// fully completed items. Items absent from the record (legacy data) count as
// their zero state, never as complete.
func AggregateDay(rec DayRecord) (overall int, completedItems int) {
	total := 0.0
	for _, it := range catalog.Items() {
		ir, ok := rec.Items[it.ID]
		if !ok {
			ir = NewItemRecord(it)
		}
		completion := ItemCompletion(ir, it)
		total += float64(completion) * catalog.Weight() / 100
		if completion == 100 {
			completedItems++
		}
	}
	return int(math.Round(total)), completedItems
}
