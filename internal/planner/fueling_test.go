package planner

import (
	"testing"
	"time"

	"example.com/nutrition/internal/domain"
)

func TestPrimaryWorkoutPicksHighestLoad(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	short := workoutOn(day)
	short.ID = "w-short"
	short.TSS = fp(60)
	short.ActualHours = fp(1)

	long := workoutOn(day)
	long.ID = "w-long"
	long.TSS = fp(90)
	long.ActualHours = fp(3)

	primary, ok := PrimaryWorkout([]domain.Workout{short, long})
	if !ok {
		t.Fatal("expected a primary workout")
	}
	if primary.ID != "w-long" {
		t.Fatalf("expected w-long got %s", primary.ID)
	}
}

func TestPrimaryWorkoutEmpty(t *testing.T) {
	if _, ok := PrimaryWorkout(nil); ok {
		t.Fatal("expected no primary workout for empty day")
	}
}

func TestFuelingForShortEasySessionExcluded(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.ActualHours = fp(1)
	w.TSS = fp(50)

	plan := FuelingFor([]domain.Workout{w})
	if plan.ShouldInclude {
		t.Fatal("60 min easy session should not warrant fueling")
	}
	if plan.DurationMin != 60 {
		t.Fatalf("expected duration 60 got %d", plan.DurationMin)
	}
}

func TestFuelingForLongSessionIncluded(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.ActualHours = fp(1.5)

	plan := FuelingFor([]domain.Workout{w})
	if !plan.ShouldInclude {
		t.Fatal("90 min session should include fueling")
	}
	// Missing intensity lands on the floor of every recommendation.
	if plan.CarbsGPerH != 30 {
		t.Fatalf("expected 30 g/h got %d", plan.CarbsGPerH)
	}
	if plan.HydrationMlPerH != 500 {
		t.Fatalf("expected 500 ml/h got %d", plan.HydrationMlPerH)
	}
	if plan.ElectrolytesMg != 300 {
		t.Fatalf("expected 300 mg got %d", plan.ElectrolytesMg)
	}
}

func TestFuelingForKeySessionIncluded(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.ActualHours = fp(1)
	w.Title = "VO2 intervals"

	plan := FuelingFor([]domain.Workout{w})
	if !plan.ShouldInclude {
		t.Fatal("60 min interval session should include fueling")
	}
}

func TestFuelingForSubKeyDurationExcluded(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.ActualHours = fp(0.5)
	w.Title = "Race openers"
	w.TSS = fp(120)

	if plan := FuelingFor([]domain.Workout{w}); plan.ShouldInclude {
		t.Fatal("30 min session never warrants in-session fuel")
	}
}

func TestFuelingScalesWithIntensity(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.ActualHours = fp(2)
	w.IntensityFactor = fp(0.8)

	plan := FuelingFor([]domain.Workout{w})
	if plan.CarbsGPerH != 54 {
		t.Fatalf("expected 54 g/h got %d", plan.CarbsGPerH)
	}
	if plan.HydrationMlPerH != 700 {
		t.Fatalf("expected 700 ml/h got %d", plan.HydrationMlPerH)
	}
	if plan.ElectrolytesMg != 540 {
		t.Fatalf("expected 540 mg got %d", plan.ElectrolytesMg)
	}

	found := false
	for _, p := range plan.ProductSuggestions {
		if p == "salt capsules" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected salt capsules at IF 0.8, got %v", plan.ProductSuggestions)
	}
}

func TestFuelingProductsFollowSport(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.Sport = "open water swim"
	w.ActualHours = fp(1.5)

	plan := FuelingFor([]domain.Workout{w})
	if len(plan.ProductSuggestions) == 0 {
		t.Fatal("expected product suggestions")
	}
	if plan.ProductSuggestions[0] != "sports drink bottle at the wall" {
		t.Fatalf("expected swim products got %v", plan.ProductSuggestions)
	}
}
