// Package catalog holds the static nutritional database and the recipe
// variation library keyed by meal type. It is a leaf component: pure data
// plus lookups, no dependencies beyond the domain types.
package catalog

import (
	"strings"

	"example.com/nutrition/internal/domain"
)

// Macros are nutrient densities per 100 g (or 100 ml for liquids).
type Macros struct {
	Kcal     float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// IngredientInfo describes one catalog ingredient.
type IngredientInfo struct {
	Name   string
	Unit   string // "g" or "ml"
	Per100 Macros
}

// Variation is one recipe template. The three macro-bearing roles are solved
// against meal targets at selection time; supporting ingredients keep fixed
// default quantities.
type Variation struct {
	Title         string
	MealType      domain.MealType
	ProteinSource string
	CarbSource    string
	FatSource     string
	Supporting    []string
	Steps         []string
	Diets         []string // compatible diet tags; empty means omnivore-only
}

// Catalog bundles the ingredient table with the variation library.
type Catalog struct {
	ingredients map[string]IngredientInfo
	variations  map[domain.MealType][]Variation
}

// New builds the catalog from the built-in tables.
func New() *Catalog {
	c := &Catalog{
		ingredients: make(map[string]IngredientInfo, len(ingredientTable)),
		variations:  make(map[domain.MealType][]Variation),
	}
	for _, info := range ingredientTable {
		c.ingredients[strings.ToLower(info.Name)] = info
	}
	for _, v := range variationTable {
		c.variations[v.MealType] = append(c.variations[v.MealType], v)
	}
	return c
}

// Ingredient looks up an ingredient by name, case-insensitively.
func (c *Catalog) Ingredient(name string) (IngredientInfo, bool) {
	info, ok := c.ingredients[strings.ToLower(name)]
	return info, ok
}

// Variations returns the variation list for a meal type, filtered by the
// athlete's diet tag and allergy list. The returned slice is a copy.
func (c *Catalog) Variations(mealType domain.MealType, dietTag string, allergies []string) []Variation {
	all := c.variations[mealType]
	out := make([]Variation, 0, len(all))
	for _, v := range all {
		if !dietCompatible(v, dietTag) {
			continue
		}
		if containsAllergen(v, allergies) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func dietCompatible(v Variation, dietTag string) bool {
	if dietTag == "" {
		return true
	}
	for _, d := range v.Diets {
		if strings.EqualFold(d, dietTag) {
			return true
		}
	}
	return false
}

func containsAllergen(v Variation, allergies []string) bool {
	if len(allergies) == 0 {
		return false
	}
	names := append([]string{v.ProteinSource, v.CarbSource, v.FatSource}, v.Supporting...)
	for _, name := range names {
		lowered := strings.ToLower(name)
		for _, allergen := range allergies {
			a := strings.ToLower(strings.TrimSpace(allergen))
			if a != "" && strings.Contains(lowered, a) {
				return true
			}
		}
	}
	return false
}
