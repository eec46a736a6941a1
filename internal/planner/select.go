package planner

import (
	"fmt"

	"example.com/nutrition/internal/catalog"
	"example.com/nutrition/internal/domain"
)

// Role-specific portion bounds in grams (ml for oils). Clamping keeps
// portions realistic even when meal targets are extreme.
const (
	proteinQtyMin, proteinQtyMax = 50.0, 300.0
	carbQtyMin, carbQtyMax       = 60.0, 300.0
	fatQtyMin, fatQtyMax         = 5.0, 30.0

	supportingQtyG  = 100.0
	supportingQtyMl = 5.0
)

// Fixed fallback portions for cold-start selection with no target macros.
const (
	defaultProteinQty = 150.0
	defaultCarbQty    = 150.0
	defaultFatQty     = 10.0
)

// SelectRecipe picks a concrete recipe for a meal slot and scales its
// macro-bearing ingredients toward the target. The used-set in state
// guarantees no same-day repeats until every variation for the meal type is
// exhausted, after which repetition is forced rather than failing.
func SelectRecipe(cat *catalog.Catalog, mealType domain.MealType, target *domain.MacroSet, profile domain.AthleteProfile, state *VarietyState, dayOfWeek, mealIndex int) domain.Recipe {
	variations := cat.Variations(mealType, profile.DietTag, profile.Allergies)
	if len(variations) == 0 {
		return fallbackRecipe(mealType)
	}

	idx := state.PickIndex(dayOfWeek, mealIndex, len(variations))
	chosen := variations[idx]
	for i := 0; i < len(variations); i++ {
		candidate := variations[(idx+i)%len(variations)]
		if !state.Used(candidate.Title) {
			chosen = candidate
			break
		}
	}
	state.MarkUsed(chosen.Title)

	return buildRecipe(cat, chosen, target)
}

func buildRecipe(cat *catalog.Catalog, v catalog.Variation, target *domain.MacroSet) domain.Recipe {
	recipe := domain.Recipe{
		Title:    v.Title,
		Servings: 1,
		Steps:    append([]string(nil), v.Steps...),
	}

	appendRole := func(name string, targetG, defaultQty, lo, hi float64, macroOf func(catalog.Macros) float64) {
		info, ok := cat.Ingredient(name)
		if !ok {
			// Missing catalog entry: skip the role. The recipe will
			// under-shoot its target, which is accepted behavior.
			return
		}
		qty := defaultQty
		if target != nil {
			if per100 := macroOf(info.Per100); per100 > 0 {
				qty = targetG / per100 * 100
			}
		}
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			Name:     info.Name,
			Quantity: roundQty(clampf(qty, lo, hi)),
			Unit:     info.Unit,
		})
	}

	var proteinG, carbsG, fatG float64
	if target != nil {
		proteinG = float64(target.ProteinG)
		carbsG = float64(target.CarbsG)
		fatG = float64(target.FatG)
	}

	appendRole(v.ProteinSource, proteinG, defaultProteinQty, proteinQtyMin, proteinQtyMax,
		func(m catalog.Macros) float64 { return m.ProteinG })
	appendRole(v.CarbSource, carbsG, defaultCarbQty, carbQtyMin, carbQtyMax,
		func(m catalog.Macros) float64 { return m.CarbsG })
	appendRole(v.FatSource, fatG, defaultFatQty, fatQtyMin, fatQtyMax,
		func(m catalog.Macros) float64 { return m.FatG })

	for _, name := range v.Supporting {
		info, ok := cat.Ingredient(name)
		if !ok {
			continue
		}
		qty := supportingQtyG
		if info.Unit == "ml" && info.Per100.FatG >= 90 {
			qty = supportingQtyMl
		}
		recipe.Ingredients = append(recipe.Ingredients, domain.Ingredient{
			Name:     info.Name,
			Quantity: qty,
			Unit:     info.Unit,
		})
	}

	return recipe
}

func fallbackRecipe(mealType domain.MealType) domain.Recipe {
	return domain.Recipe{
		Title:    fmt.Sprintf("Build-your-own %s plate", mealType),
		Servings: 1,
		Steps: []string{
			"Combine a protein, a carbohydrate, and a fat source you tolerate.",
		},
		Notes: "No catalog variation matched the diet and allergy constraints.",
	}
}

// roundQty rounds portions to whole grams/ml; nobody weighs fractions.
func roundQty(v float64) float64 {
	return float64(roundi(v))
}
