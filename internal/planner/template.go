package planner

import "example.com/nutrition/internal/domain"

const (
	minMealsPerDay = 3
	maxMealsPerDay = 6
)

// mealSkeletons is the entire meal-template contract: one fixed skeleton per
// supported meal count. Snack count rises and per-meal share falls as the
// count goes up. Percentages in each skeleton sum to 100.
var mealSkeletons = map[int][]domain.MealTemplate{
	3: {
		{Slot: 1, Type: domain.MealBreakfast, TimeMin: clock(7, 30), Emoji: "🍳", TargetKcalPct: 30},
		{Slot: 2, Type: domain.MealLunch, TimeMin: clock(12, 30), Emoji: "🥗", TargetKcalPct: 40},
		{Slot: 3, Type: domain.MealDinner, TimeMin: clock(19, 0), Emoji: "🍽️", TargetKcalPct: 30},
	},
	4: {
		{Slot: 1, Type: domain.MealBreakfast, TimeMin: clock(7, 30), Emoji: "🍳", TargetKcalPct: 25},
		{Slot: 2, Type: domain.MealLunch, TimeMin: clock(12, 30), Emoji: "🥗", TargetKcalPct: 30},
		{Slot: 3, Type: domain.MealSnack, TimeMin: clock(16, 0), Emoji: "🍌", TargetKcalPct: 15},
		{Slot: 4, Type: domain.MealDinner, TimeMin: clock(19, 0), Emoji: "🍽️", TargetKcalPct: 30},
	},
	5: {
		{Slot: 1, Type: domain.MealBreakfast, TimeMin: clock(7, 30), Emoji: "🍳", TargetKcalPct: 25},
		{Slot: 2, Type: domain.MealSnack, TimeMin: clock(10, 30), Emoji: "🥜", TargetKcalPct: 10},
		{Slot: 3, Type: domain.MealLunch, TimeMin: clock(12, 30), Emoji: "🥗", TargetKcalPct: 30},
		{Slot: 4, Type: domain.MealSnack, TimeMin: clock(16, 0), Emoji: "🍌", TargetKcalPct: 10},
		{Slot: 5, Type: domain.MealDinner, TimeMin: clock(19, 0), Emoji: "🍽️", TargetKcalPct: 25},
	},
	6: {
		{Slot: 1, Type: domain.MealBreakfast, TimeMin: clock(7, 0), Emoji: "🍳", TargetKcalPct: 20},
		{Slot: 2, Type: domain.MealSnack, TimeMin: clock(10, 0), Emoji: "🥜", TargetKcalPct: 10},
		{Slot: 3, Type: domain.MealLunch, TimeMin: clock(12, 30), Emoji: "🥗", TargetKcalPct: 25},
		{Slot: 4, Type: domain.MealSnack, TimeMin: clock(15, 30), Emoji: "🍌", TargetKcalPct: 10},
		{Slot: 5, Type: domain.MealDinner, TimeMin: clock(18, 30), Emoji: "🍽️", TargetKcalPct: 25},
		{Slot: 6, Type: domain.MealSnack, TimeMin: clock(21, 0), Emoji: "🍶", TargetKcalPct: 10},
	},
}

// TemplatesFor returns a copy of the skeleton for the requested meal count.
// Counts outside the supported range are clamped, not rejected.
func TemplatesFor(mealsPerDay int) []domain.MealTemplate {
	count := clampi(mealsPerDay, minMealsPerDay, maxMealsPerDay)
	skeleton := mealSkeletons[count]
	out := make([]domain.MealTemplate, len(skeleton))
	copy(out, skeleton)
	return out
}

func clock(hour, minute int) int {
	return hour*60 + minute
}
