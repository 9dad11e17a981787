package catalog

import (
	"math"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	items := Items()
	if len(items) != 9 {
		t.Fatalf("catalog has %d items, want 9", len(items))
	}

	seen := map[string]bool{}
	for _, it := range items {
		if it.ID == "" {
			t.Fatalf("item with empty id")
		}
		if seen[it.ID] {
			t.Fatalf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true

		if !it.Kind.IsValid() {
			t.Fatalf("item %q has invalid kind %q", it.ID, it.Kind)
		}
		switch it.Kind {
		case KindPrayer:
			if it.SunnaCount <= 0 {
				t.Fatalf("prayer %q has sunna count %d, want > 0", it.ID, it.SunnaCount)
			}
		case KindGoal:
			if !it.GoalKind.IsValid() {
				t.Fatalf("goal %q has invalid goal kind %q", it.ID, it.GoalKind)
			}
			if it.GoalKind == GoalNumber {
				if it.Target <= 0 {
					t.Fatalf("number goal %q has target %d, want > 0", it.ID, it.Target)
				}
				if it.Max < it.Target {
					t.Fatalf("number goal %q has max %d < target %d", it.ID, it.Max, it.Target)
				}
			}
		}
	}
}

func TestWeightsSumToHundred(t *testing.T) {
	sum := 0.0
	for range Items() {
		sum += Weight()
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("weights sum to %v, want 100", sum)
	}
}

func TestByID(t *testing.T) {
	it, ok := ByID("fajr")
	if !ok {
		t.Fatalf("ByID(fajr) not found")
	}
	if it.Kind != KindPrayer || it.SunnaCount != 2 {
		t.Fatalf("fajr = %+v, want prayer with sunna count 2", it)
	}

	if _, ok := ByID("nonexistent"); ok {
		t.Fatalf("ByID(nonexistent) found")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	a := Items()
	a[0].ID = "mutated"
	b := Items()
	if b[0].ID == "mutated" {
		t.Fatalf("Items() exposes internal state")
	}
}
