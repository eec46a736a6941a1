package planner

import (
	"testing"

	"example.com/nutrition/internal/domain"
)

func TestDailyTargetsForSeventyKilos(t *testing.T) {
	cases := []struct {
		dayType domain.DayType
		kcal    int
	}{
		{domain.DayTypeRest, 1890},
		{domain.DayTypeTraining, 2100},
		{domain.DayTypeHigh, 2380},
	}

	for _, tc := range cases {
		got := DailyTargetsFor(70, tc.dayType, domain.IntraNutritionPlan{})
		if got.Kcal != tc.kcal {
			t.Fatalf("%s: expected %d kcal got %d", tc.dayType, tc.kcal, got.Kcal)
		}
		if got.ProteinG != 126 {
			t.Fatalf("%s: expected 126 g protein got %d", tc.dayType, got.ProteinG)
		}
		if got.FatG != 63 {
			t.Fatalf("%s: expected 63 g fat got %d", tc.dayType, got.FatG)
		}

		recomputed := got.ProteinG*4 + got.CarbsG*4 + got.FatG*9
		if absi(recomputed-got.Kcal) > 4 {
			t.Fatalf("%s: macros recompute to %d kcal, target %d", tc.dayType, recomputed, got.Kcal)
		}
	}
}

func TestDailyTargetsFatFloorAtLowWeight(t *testing.T) {
	got := DailyTargetsFor(30, domain.DayTypeRest, domain.IntraNutritionPlan{})
	if got.FatG != 40 {
		t.Fatalf("expected fat floor 40 got %d", got.FatG)
	}
	if got.CarbsG < 0 {
		t.Fatalf("carbs went negative: %d", got.CarbsG)
	}
}

func TestDailyTargetsFatCeilingAtHighWeight(t *testing.T) {
	got := DailyTargetsFor(150, domain.DayTypeTraining, domain.IntraNutritionPlan{})
	if got.FatG != 120 {
		t.Fatalf("expected fat ceiling 120 got %d", got.FatG)
	}
}

func TestDailyTargetsCarbsClampToZero(t *testing.T) {
	// At very low body weight the fat floor dominates the calorie pool.
	got := DailyTargetsFor(15, domain.DayTypeRest, domain.IntraNutritionPlan{})
	if got.CarbsG != 0 {
		t.Fatalf("expected zero carbs got %d", got.CarbsG)
	}
}

func TestDailyTargetsCopiesIntraRate(t *testing.T) {
	intra := domain.IntraNutritionPlan{ShouldInclude: true, CarbsGPerH: 54}
	got := DailyTargetsFor(70, domain.DayTypeHigh, intra)
	if got.IntraChoGPerH != 54 {
		t.Fatalf("expected intra rate 54 got %d", got.IntraChoGPerH)
	}

	excluded := domain.IntraNutritionPlan{ShouldInclude: false, CarbsGPerH: 54}
	got = DailyTargetsFor(70, domain.DayTypeHigh, excluded)
	if got.IntraChoGPerH != 0 {
		t.Fatalf("expected intra rate 0 when fueling excluded got %d", got.IntraChoGPerH)
	}
}
