package planner

import (
	"math"

	"example.com/nutrition/internal/domain"
)

// calorieMultiplier is the kcal-per-kg factor by training load. Single
// source of truth; nothing else encodes day-type calories.
var calorieMultiplier = map[domain.DayType]float64{
	domain.DayTypeRest:     27,
	domain.DayTypeTraining: 30,
	domain.DayTypeHigh:     34,
}

// Fat stays inside a fixed band regardless of body weight so portions remain
// realistic at the extremes.
const (
	proteinGPerKg = 1.8
	fatGPerKg     = 0.9
	fatFloorG     = 40
	fatCeilingG   = 120
)

// DailyTargetsFor converts body weight and the day classification into the
// whole-day macro targets. Protein and fat are fixed first; carbohydrate is
// the flexible remainder term and never goes negative. These are conservative
// sports-nutrition heuristics, not a physiological model.
func DailyTargetsFor(weightKg float64, dayType domain.DayType, intra domain.IntraNutritionPlan) domain.DailyTargets {
	kcal := roundi(weightKg * calorieMultiplier[dayType])
	protein := roundi(weightKg * proteinGPerKg)
	fat := clampi(roundi(weightKg*fatGPerKg), fatFloorG, fatCeilingG)
	carbs := carbRemainder(kcal, protein, fat)

	targets := domain.DailyTargets{
		Kcal:     kcal,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	}
	if intra.ShouldInclude {
		targets.IntraChoGPerH = intra.CarbsGPerH
	}
	return targets
}

// carbRemainder fills carbohydrate from the calories left after protein and
// fat, clamped at zero. When the fat floor forces the remainder negative the
// day simply under-delivers calories; that is accepted, not an error.
func carbRemainder(kcal, proteinG, fatG int) int {
	remainder := float64(kcal-proteinG*4-fatG*9) / 4
	if remainder < 0 {
		return 0
	}
	return roundi(remainder)
}

func roundi(v float64) int {
	return int(math.Round(v))
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
