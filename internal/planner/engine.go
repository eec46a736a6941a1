package planner

import (
	"time"

	"example.com/nutrition/internal/catalog"
	"example.com/nutrition/internal/domain"
)

// Diagnostics is an optional sink for local degradations the engine absorbs
// silently by default (catalog gaps, clamps, slots pushed past midnight).
// Installing a sink never changes planning output.
type Diagnostics interface {
	Note(date time.Time, component, msg string)
}

type noopDiagnostics struct{}

func (noopDiagnostics) Note(time.Time, string, string) {}

// Engine is the weekly planning orchestrator. It is synchronous and owns the
// variety state for the duration of one PlanWeek call; everything else it
// calls is a pure function.
type Engine struct {
	catalog *catalog.Catalog
	diag    Diagnostics
}

// Option configures optional behaviour for the Engine.
type Option func(*Engine)

// WithDiagnostics installs a diagnostics sink.
func WithDiagnostics(d Diagnostics) Option {
	return func(e *Engine) {
		e.diag = d
	}
}

// NewEngine constructs an Engine over the given catalog.
func NewEngine(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		diag:    noopDiagnostics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PlanWeek drives the full pipeline for every date in [start, end]
// inclusive and assembles the per-day outputs. Days are planned in date
// order; they are independent except for the variety state's per-day reset.
func (e *Engine) PlanWeek(profile domain.AthleteProfile, workouts []domain.Workout, start, end time.Time) domain.WeekPlan {
	start = midnightUTC(start)
	end = midnightUTC(end)

	byDate := make(map[string][]domain.Workout)
	for _, w := range workouts {
		key := w.Date.UTC().Format("2006-01-02")
		byDate[key] = append(byDate[key], w)
	}

	state := NewVarietyState(start)
	week := domain.WeekPlan{Start: start, End: end}

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		state.ResetDay(date)
		week.Days = append(week.Days, e.planDay(profile, byDate[date.Format("2006-01-02")], date, state))
	}
	return week
}

func (e *Engine) planDay(profile domain.AthleteProfile, workouts []domain.Workout, date time.Time, state *VarietyState) domain.DayPlan {
	dayType := ClassifyDay(workouts)
	intra := FuelingFor(workouts)
	targets := DailyTargetsFor(profile.WeightKg, dayType, intra)
	templates := TemplatesFor(profile.MealsPerDay)

	var primary *domain.Workout
	if p, ok := PrimaryWorkout(workouts); ok {
		primary = &p
	}

	meals := DistributeMeals(targets, templates, intra, primary)

	if targets.CarbsG == 0 && targets.Kcal > 0 {
		e.diag.Note(date, "macros", "fat floor forced carbohydrate to zero; day under-delivers calories")
	}

	dayOfWeek := int(date.Weekday())
	mealIndex := 0
	for i := range meals {
		if meals[i].TimeMin >= 24*60 {
			e.diag.Note(date, "timing", "meal slot pushed past midnight by gap enforcement")
		}
		if meals[i].Type == domain.MealIntra {
			continue
		}
		recipe := SelectRecipe(e.catalog, meals[i].Type, &meals[i].Target, profile, state, dayOfWeek, mealIndex)
		meals[i].Recipe = &recipe
		mealIndex++
	}

	return domain.DayPlan{
		Date:    date,
		DayType: dayType,
		Targets: targets,
		Intra:   intra,
		Meals:   meals,
	}
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
