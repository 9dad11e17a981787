package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jubams/ramadan-tracker/internal/catalog"
)

func TestItemRecordWireShape(t *testing.T) {
	prayer := ItemRecord{Kind: catalog.KindPrayer, InTime: true, SunnaCompleted: 1, Completion: 50}
	raw, err := json.Marshal(prayer)
	if err != nil {
		t.Fatalf("marshal prayer: %v", err)
	}
	for _, field := range []string{`"inTime":true`, `"athkar":false`, `"sunnaCompleted":1`, `"completionPercentage":50`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("prayer wire %s missing %s", raw, field)
		}
	}
	if strings.Contains(string(raw), "completed") || strings.Contains(string(raw), "value") {
		t.Fatalf("prayer wire %s leaks goal fields", raw)
	}

	checkbox := ItemRecord{Kind: catalog.KindGoal, GoalKind: catalog.GoalCheckbox, Completed: true, Completion: 100}
	raw, err = json.Marshal(checkbox)
	if err != nil {
		t.Fatalf("marshal checkbox: %v", err)
	}
	if !strings.Contains(string(raw), `"completed":true`) || strings.Contains(string(raw), "inTime") {
		t.Fatalf("checkbox wire %s has wrong fields", raw)
	}

	number := ItemRecord{Kind: catalog.KindGoal, GoalKind: catalog.GoalNumber, Value: 7, Completion: 35}
	raw, err = json.Marshal(number)
	if err != nil {
		t.Fatalf("marshal number: %v", err)
	}
	if !strings.Contains(string(raw), `"value":7`) || strings.Contains(string(raw), "completed\":") {
		t.Fatalf("number wire %s has wrong fields", raw)
	}
}

func TestItemRecordUnmarshalPreservesFields(t *testing.T) {
	raw := `{"inTime":true,"athkar":false,"sunnaCompleted":2,"completionPercentage":67}`
	var rec ItemRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !rec.InTime || rec.AthkarRead || rec.SunnaCompleted != 2 || rec.Completion != 67 {
		t.Fatalf("rec=%+v", rec)
	}
}

func TestRepairDayBackfillsMissingItems(t *testing.T) {
	legacy := DayRecord{
		Items: map[string]ItemRecord{
			"fajr": {InTime: true, Completion: 33},
		},
		OverallCompletion: 4,
		CompletedItems:    0,
	}

	repaired := RepairDay(legacy)
	if len(repaired.Items) != catalog.Len() {
		t.Fatalf("repaired day has %d items, want %d", len(repaired.Items), catalog.Len())
	}
	fajr := repaired.Items["fajr"]
	if !fajr.InTime || fajr.Completion != 33 {
		t.Fatalf("repair changed stored values: %+v", fajr)
	}
	if fajr.Kind != catalog.KindPrayer {
		t.Fatalf("repair did not restore kind tag: %+v", fajr)
	}
	isha := repaired.Items["isha"]
	if isha.Completion != 0 || isha.InTime {
		t.Fatalf("backfilled item not zero state: %+v", isha)
	}

	// Repair copies; mutating the result must not touch the input.
	repaired.Items["fajr"] = ItemRecord{}
	if !legacy.Items["fajr"].InTime {
		t.Fatalf("repair aliases the input map")
	}
}

func TestRepairDatasetBackfillsMissingDays(t *testing.T) {
	data := Dataset{5: NewDayRecord()}
	repaired := RepairDataset(data, 30)
	if len(repaired) != 30 {
		t.Fatalf("repaired dataset has %d days, want 30", len(repaired))
	}
	for day := 1; day <= 30; day++ {
		if len(repaired[day].Items) != catalog.Len() {
			t.Fatalf("day %d has %d items, want %d", day, len(repaired[day].Items), catalog.Len())
		}
	}
}

func TestDatasetJSONKeysAreDayStrings(t *testing.T) {
	raw, err := json.Marshal(Dataset{1: NewDayRecord()})
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	if !strings.HasPrefix(string(raw), `{"1":`) {
		t.Fatalf("dataset wire %s does not key by day string", raw[:20])
	}
}
