package planner

import (
	"testing"
	"time"
)

func TestWeekSeedStableForSameWeekStart(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	a := NewVarietyState(start)
	b := NewVarietyState(start)

	for meal := 0; meal < 6; meal++ {
		for dow := 0; dow < 7; dow++ {
			if a.PickIndex(dow, meal, 5) != b.PickIndex(dow, meal, 5) {
				t.Fatalf("same week start produced different picks (dow=%d meal=%d)", dow, meal)
			}
		}
	}
}

func TestWeekSeedDiffersAcrossWeeks(t *testing.T) {
	a := NewVarietyState(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	b := NewVarietyState(time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC))
	if a.weekSeed == b.weekSeed {
		t.Fatal("adjacent weeks share a seed")
	}
}

func TestPickIndexStaysInRange(t *testing.T) {
	state := NewVarietyState(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	for n := 1; n <= 7; n++ {
		for dow := 0; dow < 7; dow++ {
			for meal := 0; meal < 6; meal++ {
				idx := state.PickIndex(dow, meal, n)
				if idx < 0 || idx >= n {
					t.Fatalf("index %d out of range for n=%d", idx, n)
				}
			}
		}
	}
	if idx := state.PickIndex(3, 2, 0); idx != 0 {
		t.Fatalf("empty list should pick 0, got %d", idx)
	}
}

func TestResetDayClearsUsedSet(t *testing.T) {
	state := NewVarietyState(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	state.ResetDay(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	state.MarkUsed("Berry oatmeal bowl")
	if !state.Used("Berry oatmeal bowl") {
		t.Fatal("expected title marked used")
	}

	state.ResetDay(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	if state.Used("Berry oatmeal bowl") {
		t.Fatal("used set survived the day reset")
	}
}
