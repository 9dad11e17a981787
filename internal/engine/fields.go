package engine

import (
	"fmt"
	"strings"

	"github.com/jubams/ramadan-tracker/internal/catalog"
)

// Field names the single mutable field an update targets. The names match
// the persisted wire layout.
type Field string

const (
	FieldInTime         Field = "inTime"
	FieldAthkar         Field = "athkar"
	FieldSunnaCompleted Field = "sunnaCompleted"
	FieldCompleted      Field = "completed"
	FieldValue          Field = "value"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldInTime, FieldAthkar, FieldSunnaCompleted, FieldCompleted, FieldValue:
		return true
	default:
		return false
	}
}

// AppliesTo reports whether the field is legal for the given item kind.
func (f Field) AppliesTo(it catalog.Item) bool {
	switch f {
	case FieldInTime, FieldAthkar, FieldSunnaCompleted:
		return it.Kind == catalog.KindPrayer
	case FieldCompleted:
		return it.Kind == catalog.KindGoal && it.GoalKind == catalog.GoalCheckbox
	case FieldValue:
		return it.Kind == catalog.KindGoal && it.GoalKind == catalog.GoalNumber
	default:
		return false
	}
}

// ParseField parses user input to a Field. Accepts the wire names
// case-insensitively plus a few CLI-friendly aliases.
func ParseField(input string) (Field, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "intime", "in-time", "in_time":
		return FieldInTime, nil
	case "athkar":
		return FieldAthkar, nil
	case "sunnacompleted", "sunna":
		return FieldSunnaCompleted, nil
	case "completed", "done":
		return FieldCompleted, nil
	case "value", "pages":
		return FieldValue, nil
	default:
		return "", fmt.Errorf("invalid field: %q", input)
	}
}

// ClampFieldValue clamps a numeric field value into its legal range for the
// item: sunnaCompleted to [0, SunnaCount], value to [0, Max]. The tracker
// itself does not clamp; callers apply this at the input boundary.
func ClampFieldValue(it catalog.Item, field Field, v int) int {
	var max int
	switch field {
	case FieldSunnaCompleted:
		max = it.SunnaCount
	case FieldValue:
		max = it.Max
	default:
		return v
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
