package domain

import (
	"fmt"
	"time"
)

// DayType is the discrete training-load classification driving the calorie
// multiplier.
type DayType string

const (
	DayTypeRest     DayType = "rest"
	DayTypeTraining DayType = "training"
	DayTypeHigh     DayType = "high"
)

// DailyTargets are the whole-day macro targets for one date. All values are
// non-negative grams (kcal for Kcal).
type DailyTargets struct {
	Kcal          int `json:"kcal"`
	ProteinG      int `json:"protein_g"`
	CarbsG        int `json:"carbs_g"`
	FatG          int `json:"fat_g"`
	IntraChoGPerH int `json:"intra_cho_g_per_h"`
}

// MacroSet is a kcal/protein/carb/fat tuple used for per-meal targets.
type MacroSet struct {
	Kcal     int `json:"kcal"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// IntraNutritionPlan is the in-session fueling recommendation derived from
// the day's primary workout.
type IntraNutritionPlan struct {
	ShouldInclude      bool     `json:"should_include"`
	DurationMin        int      `json:"duration_min"`
	CarbsGPerH         int      `json:"recommended_carbs_g_per_h"`
	HydrationMlPerH    int      `json:"recommended_hydration_ml_per_h"`
	ElectrolytesMg     int      `json:"recommended_electrolytes_mg"`
	ProductSuggestions []string `json:"product_suggestions"`
}

// MealType labels a meal slot.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
	MealIntra     MealType = "intra"
)

// MealTemplate is one slot in a fixed meal skeleton.
type MealTemplate struct {
	Slot          int
	Type          MealType
	TimeMin       int // default time, minutes since midnight
	Emoji         string
	TargetKcalPct int
}

// MealTarget is a resolved meal slot: allocated macros, final time, and the
// recipe chosen for it. TimeMin is minutes since midnight and may exceed
// 24h when the gap sweep pushes a dense day past midnight; Clock renders it
// on the 24h dial.
type MealTarget struct {
	Slot    int      `json:"slot"`
	Type    MealType `json:"meal_type"`
	TimeMin int      `json:"time_min"`
	Emoji   string   `json:"emoji"`
	Target  MacroSet `json:"target_macros"`
	Recipe  *Recipe  `json:"recipe,omitempty"`
}

// Clock formats TimeMin as HH:MM, wrapping at midnight.
func (m MealTarget) Clock() string {
	min := m.TimeMin % (24 * 60)
	if min < 0 {
		min += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Ingredient is one recipe line item.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is the concrete dish selected for a meal slot. Recipes are
// regenerated per planning run and never persisted as catalog entities.
type Recipe struct {
	Title       string       `json:"title"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	Notes       string       `json:"notes,omitempty"`
}

// DayPlan is the externally visible planning output for one date.
type DayPlan struct {
	Date    time.Time          `json:"date"`
	DayType DayType            `json:"day_type"`
	Targets DailyTargets       `json:"daily_targets"`
	Intra   IntraNutritionPlan `json:"intra_nutrition"`
	Meals   []MealTarget       `json:"meals"`
}

// WeekPlan is the ordered sequence of day plans for an inclusive date range.
type WeekPlan struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
	Days  []DayPlan `json:"days"`
}
