package planner

import "example.com/nutrition/internal/domain"

// Fueling decision thresholds. Duration- and load-gated heuristics: sessions
// shorter than 45 minutes never warrant in-session fuel, and only long or
// key sessions cross the inclusion bar.
const (
	fuelMinKeyDurationMin  = 45
	fuelMinLongDurationMin = 75
	keySessionTSS          = 80.0
	keySessionIF           = 0.75
	keySessionRPE          = 6.0
)

// keySessionKeywords mark a session as key by its type or title alone.
var keySessionKeywords = []string{"interval", "tempo", "race"}

// productsBySport is a static lookup of in-session fuel suggestions.
var productsBySport = map[domain.Sport][]string{
	domain.SportBike:  {"energy gel", "sports drink mix", "rice bars"},
	domain.SportRun:   {"energy gel", "chews", "electrolyte drink"},
	domain.SportSwim:  {"sports drink bottle at the wall", "energy gel between sets"},
	domain.SportOther: {"sports drink", "energy gel"},
}

// PrimaryWorkout selects the session that dominates the day's fueling:
// the one maximizing TSS + duration*50, a load-weighted tie-break that
// favors one long, hard session over several short ones.
func PrimaryWorkout(workouts []domain.Workout) (domain.Workout, bool) {
	if len(workouts) == 0 {
		return domain.Workout{}, false
	}
	best := workouts[0]
	bestScore := workoutScore(best)
	for _, w := range workouts[1:] {
		if score := workoutScore(w); score > bestScore {
			best, bestScore = w, score
		}
	}
	return best, true
}

func workoutScore(w domain.Workout) float64 {
	return domain.Metric(w.TSS) + w.DurationHours()*50
}

// FuelingFor decides whether the day warrants in-session carbohydrate,
// fluid, and electrolyte intake, and how much per hour.
func FuelingFor(workouts []domain.Workout) domain.IntraNutritionPlan {
	primary, ok := PrimaryWorkout(workouts)
	if !ok {
		return domain.IntraNutritionPlan{ProductSuggestions: []string{}}
	}

	durationMin := primary.DurationMin()
	if !shouldFuel(primary, durationMin) {
		return domain.IntraNutritionPlan{DurationMin: durationMin, ProductSuggestions: []string{}}
	}

	// Intensity scales every recommendation linearly between its floor and
	// ceiling; a missing intensity factor lands on the floor.
	f := clampf(domain.Metric(primary.IntensityFactor), 0, 1)

	plan := domain.IntraNutritionPlan{
		ShouldInclude:   true,
		DurationMin:     durationMin,
		CarbsGPerH:      roundi(30 + f*30),
		HydrationMlPerH: roundi(500 + f*250),
		ElectrolytesMg:  roundi(300 + f*300),
	}

	sport := domain.NormalizeSport(primary.Sport)
	products, ok := productsBySport[sport]
	if !ok {
		products = productsBySport[domain.SportOther]
	}
	plan.ProductSuggestions = append([]string(nil), products...)
	if f >= 0.8 {
		plan.ProductSuggestions = append(plan.ProductSuggestions, "salt capsules")
	}
	return plan
}

func shouldFuel(w domain.Workout, durationMin int) bool {
	return durationMin >= fuelMinLongDurationMin || isKeySession(w, durationMin)
}

func isKeySession(w domain.Workout, durationMin int) bool {
	if durationMin < fuelMinKeyDurationMin {
		return false
	}
	return domain.Metric(w.TSS) >= keySessionTSS ||
		domain.Metric(w.IntensityFactor) >= keySessionIF ||
		(domain.Metric(w.RPE) >= keySessionRPE && durationMin > fuelMinKeyDurationMin) ||
		w.HasSessionKeyword(keySessionKeywords...)
}
