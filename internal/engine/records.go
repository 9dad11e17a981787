package engine

import (
	"encoding/json"

	"github.com/jubams/ramadan-tracker/internal/catalog"
)

// ItemRecord is the mutable per-(day, item) state. It is a tagged union over
// the item's catalog kind: prayer records use InTime/AthkarRead/SunnaCompleted,
// checkbox goals use Completed, number goals use Value. Completion is derived
// and only ever written by the tracker's mutation path.
type ItemRecord struct {
	Kind     catalog.Kind
	GoalKind catalog.GoalKind

	InTime         bool
	AthkarRead     bool
	SunnaCompleted int

	Completed bool

	Value int

	Completion int
}

// itemRecordJSON is the wire shape shared with the original localStorage
// layout. Pointer fields let each variant serialize only its own fields.
type itemRecordJSON struct {
	InTime         *bool `json:"inTime,omitempty"`
	AthkarRead     *bool `json:"athkar,omitempty"`
	SunnaCompleted *int  `json:"sunnaCompleted,omitempty"`
	Completed      *bool `json:"completed,omitempty"`
	Value          *int  `json:"value,omitempty"`
	Completion     int   `json:"completionPercentage"`
}

func (r ItemRecord) MarshalJSON() ([]byte, error) {
	w := itemRecordJSON{Completion: r.Completion}
	switch {
	case r.Kind == catalog.KindPrayer:
		w.InTime = &r.InTime
		w.AthkarRead = &r.AthkarRead
		w.SunnaCompleted = &r.SunnaCompleted
	case r.Kind == catalog.KindGoal && r.GoalKind == catalog.GoalNumber:
		w.Value = &r.Value
	case r.Kind == catalog.KindGoal && r.GoalKind == catalog.GoalCheckbox:
		w.Completed = &r.Completed
	default:
		// Unknown kind (e.g. an imported record for an id not in the
		// catalog): keep every present field so nothing is lost.
		w.InTime = &r.InTime
		w.AthkarRead = &r.AthkarRead
		w.SunnaCompleted = &r.SunnaCompleted
		w.Completed = &r.Completed
		w.Value = &r.Value
	}
	return json.Marshal(w)
}

func (r *ItemRecord) UnmarshalJSON(data []byte) error {
	var w itemRecordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = ItemRecord{Completion: w.Completion}
	if w.InTime != nil {
		r.InTime = *w.InTime
	}
	if w.AthkarRead != nil {
		r.AthkarRead = *w.AthkarRead
	}
	if w.SunnaCompleted != nil {
		r.SunnaCompleted = *w.SunnaCompleted
	}
	if w.Completed != nil {
		r.Completed = *w.Completed
	}
	if w.Value != nil {
		r.Value = *w.Value
	}
	// Kind tags are not stored on the wire; the repair pass restores them
	// from the catalog.
	return nil
}

// DayRecord holds one day's item records plus its derived aggregates.
type DayRecord struct {
	Items             map[string]ItemRecord `json:"items"`
	OverallCompletion int                   `json:"overallCompletion"`
	CompletedItems    int                   `json:"completedItems"`
}

// Dataset maps day number (1..period length) to that day's record.
// JSON keys are day-number strings, matching the persisted layout.
type Dataset map[int]DayRecord

// NewItemRecord returns the zero-state record for the given definition.
func NewItemRecord(it catalog.Item) ItemRecord {
	return ItemRecord{Kind: it.Kind, GoalKind: it.GoalKind}
}

// NewDayRecord returns a fresh day with every catalog item zero-initialized.
func NewDayRecord() DayRecord {
	items := make(map[string]ItemRecord, catalog.Len())
	for _, it := range catalog.Items() {
		items[it.ID] = NewItemRecord(it)
	}
	return DayRecord{Items: items}
}

// NewDataset returns a fully populated zero-state dataset for days 1..days.
func NewDataset(days int) Dataset {
	data := make(Dataset, days)
	for day := 1; day <= days; day++ {
		data[day] = NewDayRecord()
	}
	return data
}

// RepairDay returns a deep copy of rec with every catalog item present and
// its kind tags restored from the catalog. Missing items (written by older
// schema versions) are backfilled with zero-state records. Field values are
// never corrected; repair is structural only.
func RepairDay(rec DayRecord) DayRecord {
	out := DayRecord{
		Items:             make(map[string]ItemRecord, catalog.Len()),
		OverallCompletion: rec.OverallCompletion,
		CompletedItems:    rec.CompletedItems,
	}
	for id, ir := range rec.Items {
		if it, ok := catalog.ByID(id); ok {
			ir.Kind = it.Kind
			ir.GoalKind = it.GoalKind
		}
		out.Items[id] = ir
	}
	for _, it := range catalog.Items() {
		if _, ok := out.Items[it.ID]; !ok {
			out.Items[it.ID] = NewItemRecord(it)
		}
	}
	return out
}

// RepairDataset applies RepairDay to every day and backfills any day that is
// missing entirely, so the result always covers days 1..days.
func RepairDataset(data Dataset, days int) Dataset {
	out := make(Dataset, days)
	for day, rec := range data {
		out[day] = RepairDay(rec)
	}
	for day := 1; day <= days; day++ {
		if _, ok := out[day]; !ok {
			out[day] = NewDayRecord()
		}
	}
	return out
}
