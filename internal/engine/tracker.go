package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/jubams/ramadan-tracker/internal/catalog"
	"github.com/jubams/ramadan-tracker/internal/storage"
)

// StorageKey is the versioned slot the dataset lives under. Bump the suffix
// on any incompatible schema change so old layouts are never misread.
const StorageKey = "ramadan_tracker_v4"

// Tracker owns the per-day dataset for one session. All mutation goes
// through UpdateField, which recomputes derived fields and persists the full
// dataset before returning. Reads hand out repaired copies and never mutate.
type Tracker struct {
	store  storage.Store
	period Period
	now    func() time.Time

	data Dataset
}

// NewTracker loads the dataset from the store, falling back to a fresh
// zero-state dataset when the slot is absent or its contents are
// unparseable. Corrupt-but-present state is not an error; it is discarded on
// the next write. Only backend failures are returned.
func NewTracker(ctx context.Context, store storage.Store, period Period) (*Tracker, error) {
	if period.Days <= 0 {
		period.Days = DefaultPeriodDays
	}
	t := &Tracker{store: store, period: period, now: time.Now}

	raw, ok, err := store.Load(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if !ok {
		t.data = NewDataset(period.Days)
		return t, nil
	}

	var data Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		t.data = NewDataset(period.Days)
		return t, nil
	}
	t.data = RepairDataset(data, period.Days)
	return t, nil
}

// Period returns the tracker's observance window.
func (t *Tracker) Period() Period { return t.period }

// CurrentDay returns today's day number, clamped to the period.
func (t *Tracker) CurrentDay() int { return t.period.CurrentDay(t.now()) }

// BeforePeriod reports whether today falls strictly before day 1.
func (t *Tracker) BeforePeriod() bool { return t.period.Before(t.now()) }

// AfterPeriod reports whether today falls strictly after the last day.
func (t *Tracker) AfterPeriod() bool { return t.period.After(t.now()) }

// Editable reports the consumer-side edit policy for the given day.
func (t *Tracker) Editable(day int) bool { return t.period.Editable(day, t.now()) }

// UpdateField sets one field of one item record, recomputes the item's
// completion percentage and the owning day's aggregates, and persists the
// dataset. It is the sole mutation entry point. Values are taken as given:
// clamping to the field's legal range is the caller's job (ClampFieldValue).
func (t *Tracker) UpdateField(ctx context.Context, day int, itemID string, field Field, value any) error {
	if day < 1 || day > t.period.Days {
		return fmt.Errorf("day %d out of range [1,%d]", day, t.period.Days)
	}
	it, ok := catalog.ByID(itemID)
	if !ok {
		return fmt.Errorf("unknown item: %q", itemID)
	}
	if !field.IsValid() {
		return fmt.Errorf("invalid field: %q", field)
	}
	if !field.AppliesTo(it) {
		return fmt.Errorf("field %q does not apply to item %q", field, itemID)
	}

	rec := RepairDay(t.data[day])
	ir := rec.Items[itemID]
	if err := setField(&ir, field, value); err != nil {
		return err
	}
	ir.Completion = ItemCompletion(ir, it)
	rec.Items[itemID] = ir
	rec.OverallCompletion, rec.CompletedItems = AggregateDay(rec)
	t.data[day] = rec

	return t.persist(ctx)
}

func setField(ir *ItemRecord, field Field, value any) error {
	switch field {
	case FieldInTime, FieldAthkar, FieldCompleted:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %q wants a bool, got %T", field, value)
		}
		switch field {
		case FieldInTime:
			ir.InTime = b
		case FieldAthkar:
			ir.AthkarRead = b
		case FieldCompleted:
			ir.Completed = b
		}
	case FieldSunnaCompleted, FieldValue:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("field %q wants an int, got %T", field, value)
		}
		if field == FieldSunnaCompleted {
			ir.SunnaCompleted = n
		} else {
			ir.Value = n
		}
	default:
		return fmt.Errorf("invalid field: %q", field)
	}
	return nil
}

// Day returns a repaired copy of the given day. Reading never mutates the
// dataset; an out-of-range day yields a zero-state record.
func (t *Tracker) Day(day int) DayRecord {
	rec, ok := t.data[day]
	if !ok {
		return NewDayRecord()
	}
	return RepairDay(rec)
}

// Statistics summarizes the whole period.
type Statistics struct {
	OverallPercentage   int
	BestDay             int
	BestDayPercentage   int
	CurrentStreak       int
	BestStreak          int
	TotalDaysCompleted  int
	TotalItemsCompleted int
}

// Statistics computes period-wide aggregates from the stored day records'
// derived fields. The current streak walks backward from the current day;
// the best streak scans days in increasing order.
func (t *Tracker) Statistics() Statistics {
	var st Statistics
	st.BestDay = 1

	total := 0
	streak := 0
	for day := 1; day <= t.period.Days; day++ {
		rec := t.data[day]
		total += rec.OverallCompletion
		st.TotalItemsCompleted += rec.CompletedItems
		if rec.OverallCompletion > st.BestDayPercentage {
			st.BestDayPercentage = rec.OverallCompletion
			st.BestDay = day
		}
		if rec.OverallCompletion == 100 {
			st.TotalDaysCompleted++
			streak++
			if streak > st.BestStreak {
				st.BestStreak = streak
			}
		} else {
			streak = 0
		}
	}
	st.OverallPercentage = int(math.Round(float64(total) / float64(t.period.Days)))

	for day := t.CurrentDay(); day >= 1; day-- {
		if t.data[day].OverallCompletion != 100 {
			break
		}
		st.CurrentStreak++
	}
	return st
}

// ExportSnapshot produces the versioned backup envelope. The returned
// snapshot holds a deep copy; later mutations do not leak into it.
func (t *Tracker) ExportSnapshot() Snapshot {
	return Snapshot{
		Version:    SnapshotVersion,
		Data:       RepairDataset(t.data, t.period.Days),
		ExportedAt: t.now().UTC(),
	}
}

// ImportSnapshot replaces the entire dataset with the one in the backup blob
// and persists it. On a ValidationError nothing is changed. Beyond structural
// repair (missing days/items backfilled, kind tags restored), record values
// are accepted as-is.
func (t *Tracker) ImportSnapshot(ctx context.Context, raw []byte) error {
	snap, err := ParseSnapshot(raw)
	if err != nil {
		return err
	}
	t.data = RepairDataset(snap.Data, t.period.Days)
	return t.persist(ctx)
}

// Reset replaces the dataset with a fresh zero state and persists it. The
// caller is responsible for confirming the gesture first.
func (t *Tracker) Reset(ctx context.Context) error {
	t.data = NewDataset(t.period.Days)
	return t.persist(ctx)
}

func (t *Tracker) persist(ctx context.Context) error {
	raw, err := json.Marshal(t.data)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := t.store.Save(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}
