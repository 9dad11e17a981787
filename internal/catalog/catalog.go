package catalog

// Kind is the behavioral kind of a daily item.
type Kind string

const (
	KindPrayer Kind = "prayer"
	KindGoal   Kind = "goal"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindPrayer, KindGoal:
		return true
	default:
		return false
	}
}

// GoalKind refines KindGoal into its two input styles.
type GoalKind string

const (
	GoalCheckbox GoalKind = "checkbox"
	GoalNumber   GoalKind = "number"
)

func (g GoalKind) IsValid() bool {
	switch g {
	case GoalCheckbox, GoalNumber:
		return true
	default:
		return false
	}
}

// Item is one immutable daily-item definition. Ids are stable across
// versions; persisted records are keyed by them.
type Item struct {
	ID       string
	Kind     Kind
	GoalKind GoalKind // only set when Kind == KindGoal

	SunnaCount int // prayers: required sunna units
	Max        int // number goals: input clamp ceiling
	Target     int // number goals: value that means 100%
}

// items is the single ordered catalog for the 30-day period.
// Prayers and goals are interleaved in daily order.
var items = []Item{
	{ID: "fajr", Kind: KindPrayer, SunnaCount: 2},
	{ID: "morning_athkar", Kind: KindGoal, GoalKind: GoalCheckbox},
	{ID: "dhuhr", Kind: KindPrayer, SunnaCount: 6},
	{ID: "quran_day", Kind: KindGoal, GoalKind: GoalNumber, Max: 20, Target: 20},
	{ID: "asr", Kind: KindPrayer, SunnaCount: 4},
	{ID: "evening_athkar", Kind: KindGoal, GoalKind: GoalCheckbox},
	{ID: "maghrib", Kind: KindPrayer, SunnaCount: 2},
	{ID: "isha", Kind: KindPrayer, SunnaCount: 2},
	{ID: "quran_tarawih", Kind: KindGoal, GoalKind: GoalNumber, Max: 20, Target: 20},
}

var byID = func() map[string]Item {
	m := make(map[string]Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}()

// Items returns the catalog in display/aggregation order.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Len returns the number of catalog items.
func Len() int { return len(items) }

// ByID looks up an item definition by its id.
func ByID(id string) (Item, bool) {
	it, ok := byID[id]
	return it, ok
}

// Weight is the contribution of each item to a day's overall percentage.
// All items are weighted equally and the weights sum to exactly 100.
func Weight() float64 {
	return 100.0 / float64(len(items))
}
