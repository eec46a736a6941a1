package planner

import (
	"testing"
	"time"

	"example.com/nutrition/internal/catalog"
	"example.com/nutrition/internal/domain"
)

func TestPlanWeekRaceWeekScenario(t *testing.T) {
	engine := NewEngine(catalog.New())
	profile := testProfile()

	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)
	ride := workoutOn(day)
	ride.Title = "Long ride"
	ride.ActualHours = fp(2)
	ride.TSS = fp(180)
	ride.StartTime = "07:00"

	week := engine.PlanWeek(profile, []domain.Workout{ride}, day, day)
	if len(week.Days) != 1 {
		t.Fatalf("expected 1 day got %d", len(week.Days))
	}

	got := week.Days[0]
	if got.DayType != domain.DayTypeHigh {
		t.Fatalf("expected high day got %s", got.DayType)
	}
	if got.Targets.Kcal != 2380 {
		t.Fatalf("expected 2380 kcal got %d", got.Targets.Kcal)
	}
	if got.Targets.ProteinG != 126 {
		t.Fatalf("expected 126 g protein got %d", got.Targets.ProteinG)
	}
	if got.Targets.FatG != 63 {
		t.Fatalf("expected 63 g fat got %d", got.Targets.FatG)
	}
	if !got.Intra.ShouldInclude {
		t.Fatal("2 h high-load ride should include in-session fueling")
	}
	if got.Intra.CarbsGPerH < 30 || got.Intra.CarbsGPerH > 60 {
		t.Fatalf("intra rate %d outside [30,60]", got.Intra.CarbsGPerH)
	}

	sum := sumMeals(got.Meals)
	if sum.Kcal != got.Targets.Kcal || sum.ProteinG != got.Targets.ProteinG ||
		sum.CarbsG != got.Targets.CarbsG || sum.FatG != got.Targets.FatG {
		t.Fatalf("meal sums %+v do not match daily targets %+v", sum, got.Targets)
	}

	var sawPre, sawPost, sawIntra bool
	for _, m := range got.Meals {
		switch {
		case m.Type == domain.MealBreakfast && m.Clock() == "06:00":
			sawPre = true
		case m.Type == domain.MealLunch && m.Clock() == "10:00":
			sawPost = true
		case m.Type == domain.MealIntra:
			sawIntra = true
			if m.Recipe != nil {
				t.Fatal("intra slot should not carry a recipe")
			}
		}
		if m.Type != domain.MealIntra && m.Recipe == nil {
			t.Fatalf("meal slot %d has no recipe", m.Slot)
		}
	}
	if !sawPre {
		t.Fatal("breakfast was not moved to 06:00 before the 07:00 start")
	}
	if !sawPost {
		t.Fatal("lunch was not moved to 10:00 after the ride")
	}
	if !sawIntra {
		t.Fatal("no intra slot in the plan")
	}
}

func TestPlanWeekRestDayWithoutWorkouts(t *testing.T) {
	engine := NewEngine(catalog.New())
	profile := testProfile()

	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	week := engine.PlanWeek(profile, nil, day, day)

	got := week.Days[0]
	if got.DayType != domain.DayTypeRest {
		t.Fatalf("expected rest day got %s", got.DayType)
	}
	if got.Intra.ShouldInclude {
		t.Fatal("rest day should not include fueling")
	}
	if got.Targets.Kcal != 1890 {
		t.Fatalf("expected 1890 kcal got %d", got.Targets.Kcal)
	}
	if len(got.Meals) != profile.MealsPerDay {
		t.Fatalf("expected %d meals got %d", profile.MealsPerDay, len(got.Meals))
	}
}

func TestPlanWeekReproducible(t *testing.T) {
	profile := testProfile()
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	var workouts []domain.Workout
	for i := 0; i < 3; i++ {
		w := workoutOn(start.AddDate(0, 0, i*2))
		w.ID = w.Date.Format("2006-01-02")
		w.ActualHours = fp(1.5)
		w.TSS = fp(95)
		w.StartTime = "06:30"
		workouts = append(workouts, w)
	}

	first := NewEngine(catalog.New()).PlanWeek(profile, workouts, start, end)
	second := NewEngine(catalog.New()).PlanWeek(profile, workouts, start, end)

	if len(first.Days) != 7 || len(second.Days) != 7 {
		t.Fatalf("expected 7 days got %d and %d", len(first.Days), len(second.Days))
	}
	for d := range first.Days {
		a, b := first.Days[d], second.Days[d]
		if a.DayType != b.DayType {
			t.Fatalf("day %d type differs: %s vs %s", d, a.DayType, b.DayType)
		}
		if len(a.Meals) != len(b.Meals) {
			t.Fatalf("day %d meal count differs", d)
		}
		for i := range a.Meals {
			if a.Meals[i].Recipe == nil || b.Meals[i].Recipe == nil {
				continue
			}
			if a.Meals[i].Recipe.Title != b.Meals[i].Recipe.Title {
				t.Fatalf("day %d slot %d recipes differ: %q vs %q",
					d, i, a.Meals[i].Recipe.Title, b.Meals[i].Recipe.Title)
			}
		}
	}
}

func TestPlanWeekNormalizesTimestamps(t *testing.T) {
	engine := NewEngine(catalog.New())
	profile := testProfile()

	// A mid-day timestamp still resolves to its UTC calendar day.
	start := time.Date(2026, time.March, 6, 15, 30, 0, 0, time.UTC)
	week := engine.PlanWeek(profile, nil, start, start)
	if !week.Start.Equal(time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start not normalized: %s", week.Start)
	}
	if len(week.Days) != 1 {
		t.Fatalf("expected 1 day got %d", len(week.Days))
	}
}

type captureDiag struct {
	notes []string
}

func (c *captureDiag) Note(_ time.Time, component, msg string) {
	c.notes = append(c.notes, component+": "+msg)
}

func TestPlanWeekDiagnosticsDoNotChangeOutput(t *testing.T) {
	profile := testProfile()
	profile.WeightKg = 15 // forces the zero-carb degradation

	day := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)

	diag := &captureDiag{}
	plain := NewEngine(catalog.New()).PlanWeek(profile, nil, day, day)
	noted := NewEngine(catalog.New(), WithDiagnostics(diag)).PlanWeek(profile, nil, day, day)

	if len(diag.notes) == 0 {
		t.Fatal("expected a diagnostics note for the zero-carb day")
	}
	if plain.Days[0].Targets != noted.Days[0].Targets {
		t.Fatal("installing diagnostics changed planning output")
	}
}
