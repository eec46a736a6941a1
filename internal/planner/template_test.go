package planner

import (
	"testing"

	"example.com/nutrition/internal/domain"
)

func TestTemplatesForSupportedCounts(t *testing.T) {
	for count := 3; count <= 6; count++ {
		templates := TemplatesFor(count)
		if len(templates) != count {
			t.Fatalf("count %d: got %d slots", count, len(templates))
		}

		pctSum := 0
		for i, tpl := range templates {
			pctSum += tpl.TargetKcalPct
			if i > 0 && templates[i-1].TimeMin >= tpl.TimeMin {
				t.Fatalf("count %d: slot %d not later than slot %d", count, i+1, i)
			}
		}
		if pctSum != 100 {
			t.Fatalf("count %d: percentages sum to %d", count, pctSum)
		}

		if templates[0].Type != domain.MealBreakfast {
			t.Fatalf("count %d: first slot is %s", count, templates[0].Type)
		}
	}
}

func TestTemplatesForClampsOutOfRangeCounts(t *testing.T) {
	if got := len(TemplatesFor(1)); got != 3 {
		t.Fatalf("expected clamp to 3 got %d", got)
	}
	if got := len(TemplatesFor(9)); got != 6 {
		t.Fatalf("expected clamp to 6 got %d", got)
	}
}

func TestTemplatesForReturnsCopy(t *testing.T) {
	first := TemplatesFor(4)
	first[0].TargetKcalPct = 99

	second := TemplatesFor(4)
	if second[0].TargetKcalPct == 99 {
		t.Fatal("mutating a returned skeleton leaked into the shared table")
	}
}
