package models

// Slot is one of the six fixed meal periods of a day.
type Slot string

const (
	Meal1 Slot = "Meal 1"
	Meal2 Slot = "Meal 2"
	Meal3 Slot = "Meal 3"
	Meal4 Slot = "Meal 4"
	Meal5 Slot = "Meal 5"
	Meal6 Slot = "Meal 6"
)

// Slots lists every slot in consumption order.
var Slots = []Slot{Meal1, Meal2, Meal3, Meal4, Meal5, Meal6}

// ValidSlot reports whether s names one of the six slots.
func ValidSlot(s Slot) bool {
	for _, slot := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// MealRecord is an immutable nutrition snapshot. Edits replace the whole
// record; the macros are not validated against the calorie figure.
type MealRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`
	Carbs       int    `json:"carbs"`
	Fat         int    `json:"fat"`
}

// DailyMeals maps each slot to its ordered list of records for one day.
type DailyMeals map[Slot][]MealRecord

// NewDailyMeals returns a day with all six slots present and empty.
func NewDailyMeals() DailyMeals {
	m := make(DailyMeals, len(Slots))
	for _, s := range Slots {
		m[s] = []MealRecord{}
	}
	return m
}

// Clone deep-copies the day so archived snapshots cannot alias live state.
func (d DailyMeals) Clone() DailyMeals {
	out := make(DailyMeals, len(d))
	for slot, meals := range d {
		cp := make([]MealRecord, len(meals))
		copy(cp, meals)
		out[slot] = cp
	}
	return out
}

type DailyTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Metric returns the named total, or 0 for an unknown metric name.
func (t DailyTotals) Metric(name string) int {
	switch name {
	case "calories":
		return t.Calories
	case "protein":
		return t.Protein
	case "carbs":
		return t.Carbs
	case "fat":
		return t.Fat
	}
	return 0
}

// HistoryEntry is one archived (or in-progress) day. Totals are a cached
// copy of the fold over Meals and must stay consistent with it.
type HistoryEntry struct {
	Date   string      `json:"date"`
	Meals  DailyMeals  `json:"meals"`
	Totals DailyTotals `json:"totals"`
}

// MealHistory is the date-keyed archive, one entry per YYYY-MM-DD.
type MealHistory map[string]HistoryEntry
