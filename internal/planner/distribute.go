package planner

import (
	"sort"
	"strconv"
	"strings"

	"example.com/nutrition/internal/domain"
)

const (
	preWorkoutLeadMin   = 60
	postWorkoutDelayMin = 60
	minMealGapMin       = 30
)

// DistributeMeals allocates the day's targets across the meal skeleton,
// appends an intra-workout slot when fueling is included, and resolves slot
// times around the primary workout.
//
// Rounding drift is corrected by giving the remainder of every macro to the
// last meal, so per-day sums match the daily targets exactly. The last meal
// absorbing the drift is an intentional, visible bias.
func DistributeMeals(targets domain.DailyTargets, templates []domain.MealTemplate, intra domain.IntraNutritionPlan, primary *domain.Workout) []domain.MealTarget {
	meals := allocate(targets, templates)

	intraIdx := -1
	if targets.IntraChoGPerH > 0 && primary != nil && primary.DurationHours() > 0 {
		carbs := roundi(float64(targets.IntraChoGPerH) * primary.DurationHours())
		meals = append(meals, domain.MealTarget{
			Type:    domain.MealIntra,
			TimeMin: clock(12, 0),
			Emoji:   "⚡",
			Target: domain.MacroSet{
				Kcal:   carbs * 4,
				CarbsG: carbs,
			},
		})
		intraIdx = len(meals) - 1
	}

	retimeAroundWorkout(meals, intraIdx, primary)
	enforceGaps(meals)

	for i := range meals {
		meals[i].Slot = i + 1
	}
	return meals
}

// allocate splits the daily targets proportionally by each slot's calorie
// share, deriving carbs as the per-meal remainder, then pushes the rounding
// delta of every macro into the final slot.
func allocate(targets domain.DailyTargets, templates []domain.MealTemplate) []domain.MealTarget {
	meals := make([]domain.MealTarget, 0, len(templates)+1)
	var kcalSum, proteinSum, carbsSum, fatSum int

	for _, tpl := range templates {
		share := float64(tpl.TargetKcalPct) / 100
		kcal := roundi(float64(targets.Kcal) * share)
		protein := roundi(float64(targets.ProteinG) * share)
		fat := roundi(float64(targets.FatG) * share)
		carbs := carbRemainder(kcal, protein, fat)

		kcalSum += kcal
		proteinSum += protein
		carbsSum += carbs
		fatSum += fat

		meals = append(meals, domain.MealTarget{
			Type:    tpl.Type,
			TimeMin: tpl.TimeMin,
			Emoji:   tpl.Emoji,
			Target: domain.MacroSet{
				Kcal:     kcal,
				ProteinG: protein,
				CarbsG:   carbs,
				FatG:     fat,
			},
		})
	}

	if len(meals) == 0 {
		return meals
	}

	last := &meals[len(meals)-1].Target
	last.Kcal = maxi(0, last.Kcal+targets.Kcal-kcalSum)
	last.ProteinG = maxi(0, last.ProteinG+targets.ProteinG-proteinSum)
	last.CarbsG = maxi(0, last.CarbsG+targets.CarbsG-carbsSum)
	last.FatG = maxi(0, last.FatG+targets.FatG-fatSum)
	return meals
}

// retimeAroundWorkout shifts the nearest pre-workout slot to one hour before
// the session, the nearest post-workout slot to one hour after it, and the
// intra slot to the session midpoint. Without a known start time no slot
// moves.
func retimeAroundWorkout(meals []domain.MealTarget, intraIdx int, primary *domain.Workout) {
	if primary == nil {
		return
	}
	start, ok := parseClock(primary.StartTime)
	if !ok {
		return
	}
	end := start + primary.DurationMin()

	preIdx := nearestSlot(meals, start, intraIdx, -1, false, domain.MealBreakfast, domain.MealSnack)
	if preIdx >= 0 {
		meals[preIdx].TimeMin = start - preWorkoutLeadMin
	}

	postIdx := nearestSlot(meals, end, intraIdx, preIdx, true, domain.MealLunch, domain.MealDinner, domain.MealSnack)
	if postIdx >= 0 {
		meals[postIdx].TimeMin = end + postWorkoutDelayMin
	}

	if intraIdx >= 0 {
		meals[intraIdx].TimeMin = start + primary.DurationMin()/2
	}
}

// nearestSlot finds the slot of an allowed type closest in time to anchor.
// Scanning from the end makes ties resolve to the later slot, which is the
// behavior wanted for post-workout meals.
func nearestSlot(meals []domain.MealTarget, anchor, skipA, skipB int, fromEnd bool, allowed ...domain.MealType) int {
	best := -1
	bestDist := 0
	visit := func(i int) {
		if i == skipA || i == skipB || !typeAllowed(meals[i].Type, allowed) {
			return
		}
		dist := absi(meals[i].TimeMin - anchor)
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if fromEnd {
		for i := len(meals) - 1; i >= 0; i-- {
			visit(i)
		}
	} else {
		for i := range meals {
			visit(i)
		}
	}
	return best
}

func typeAllowed(t domain.MealType, allowed []domain.MealType) bool {
	for _, a := range allowed {
		if t == a {
			return true
		}
	}
	return false
}

// enforceGaps sorts slots by time and walks them forward, pushing any slot
// closer than the minimum gap to exactly previous+gap. The sweep is
// forward-only: earlier slots never move back, so a dense day can extend
// past midnight.
func enforceGaps(meals []domain.MealTarget) {
	sort.SliceStable(meals, func(i, j int) bool {
		return meals[i].TimeMin < meals[j].TimeMin
	})
	for i := 1; i < len(meals); i++ {
		if meals[i].TimeMin < meals[i-1].TimeMin+minMealGapMin {
			meals[i].TimeMin = meals[i-1].TimeMin + minMealGapMin
		}
	}
}

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absi(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
