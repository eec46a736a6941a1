package planner

import (
	"testing"
	"time"

	"example.com/nutrition/internal/domain"
)

func fp(v float64) *float64 { return &v }

func workoutOn(day time.Time) domain.Workout {
	return domain.Workout{
		ID:       "w-1",
		TenantID: "tenant-1",
		UserID:   "user-1",
		Date:     day,
		Sport:    "bike",
	}
}

func TestClassifyDayRestWithoutWorkouts(t *testing.T) {
	if got := ClassifyDay(nil); got != domain.DayTypeRest {
		t.Fatalf("expected rest got %s", got)
	}
}

func TestClassifyDayTraining(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.TSS = fp(90)
	w.ActualHours = fp(1.5)

	if got := ClassifyDay([]domain.Workout{w}); got != domain.DayTypeTraining {
		t.Fatalf("expected training got %s", got)
	}
}

func TestClassifyDayHighThresholds(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(*domain.Workout)
	}{
		{"tss", func(w *domain.Workout) { w.TSS = fp(150) }},
		{"rpe", func(w *domain.Workout) { w.RPE = fp(7) }},
		{"intensity factor", func(w *domain.Workout) { w.IntensityFactor = fp(0.85) }},
		{"title keyword", func(w *domain.Workout) { w.Title = "Morning Threshold Repeats" }},
		{"sport keyword", func(w *domain.Workout) { w.Sport = "race simulation" }},
	}

	for _, tc := range cases {
		w := workoutOn(day)
		tc.mutate(&w)
		if got := ClassifyDay([]domain.Workout{w}); got != domain.DayTypeHigh {
			t.Fatalf("%s: expected high got %s", tc.name, got)
		}
	}
}

func TestClassifyDayBelowThresholdsStaysTraining(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	w := workoutOn(day)
	w.TSS = fp(149.9)
	w.RPE = fp(6.9)
	w.IntensityFactor = fp(0.84)
	w.Title = "Endurance spin"

	if got := ClassifyDay([]domain.Workout{w}); got != domain.DayTypeTraining {
		t.Fatalf("expected training got %s", got)
	}
}

func TestClassifyDaySingleQualifyingSessionPromotesDay(t *testing.T) {
	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	easy := workoutOn(day)
	easy.TSS = fp(40)

	hard := workoutOn(day)
	hard.ID = "w-2"
	hard.Title = "Track intervals"

	if got := ClassifyDay([]domain.Workout{easy, hard}); got != domain.DayTypeHigh {
		t.Fatalf("expected high got %s", got)
	}
}
