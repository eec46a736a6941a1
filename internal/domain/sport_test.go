package domain

import "testing"

func TestNormalizeSport(t *testing.T) {
	cases := []struct {
		raw  string
		want Sport
	}{
		{"Bike", SportBike},
		{"Indoor Trainer Session", SportBike},
		{"Easy Run", SportRun},
		{"Open Water", SportSwim},
		{"Gym - upper body", SportStrength},
		{"Rest", SportRest},
		{"rowing", SportOther},
		{"", SportOther},
	}
	for _, tc := range cases {
		if got := NormalizeSport(tc.raw); got != tc.want {
			t.Fatalf("%q: expected %s got %s", tc.raw, tc.want, got)
		}
	}
}

func TestWorkoutDurationFallbacks(t *testing.T) {
	planned, actual := 2.0, 1.5
	w := Workout{PlannedHours: &planned, ActualHours: &actual}
	if w.DurationHours() != 1.5 {
		t.Fatalf("actual hours should win, got %v", w.DurationHours())
	}

	w = Workout{PlannedHours: &planned}
	if w.DurationHours() != 2.0 {
		t.Fatalf("planned hours fallback failed, got %v", w.DurationHours())
	}

	w = Workout{}
	if w.DurationHours() != 0 {
		t.Fatalf("missing durations should be zero, got %v", w.DurationHours())
	}
	if w.DurationMin() != 0 {
		t.Fatalf("missing durations should be zero minutes, got %d", w.DurationMin())
	}
}

func TestMealTargetClockWrapsMidnight(t *testing.T) {
	m := MealTarget{TimeMin: 25 * 60}
	if got := m.Clock(); got != "01:00" {
		t.Fatalf("expected 01:00 got %s", got)
	}
	m = MealTarget{TimeMin: 19*60 + 30}
	if got := m.Clock(); got != "19:30" {
		t.Fatalf("expected 19:30 got %s", got)
	}
}
