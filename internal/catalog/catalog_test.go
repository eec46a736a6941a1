package catalog

import (
	"testing"

	"example.com/nutrition/internal/domain"
)

func TestIngredientLookupIsCaseInsensitive(t *testing.T) {
	cat := New()

	info, ok := cat.Ingredient("Chicken Breast")
	if !ok {
		t.Fatal("expected chicken breast in the catalog")
	}
	if info.Per100.ProteinG != 31 {
		t.Fatalf("unexpected protein density %v", info.Per100.ProteinG)
	}

	if _, ok := cat.Ingredient("unicorn steak"); ok {
		t.Fatal("unexpected hit for unknown ingredient")
	}
}

func TestVariationsPerMealType(t *testing.T) {
	cat := New()

	// Breakfast needs enough variations to avoid same-day repeats at the
	// largest meal count.
	for _, mt := range []domain.MealType{domain.MealBreakfast, domain.MealLunch, domain.MealDinner} {
		if got := len(cat.Variations(mt, "", nil)); got < 4 {
			t.Fatalf("%s: only %d variations", mt, got)
		}
	}
	if got := len(cat.Variations(domain.MealSnack, "", nil)); got < 3 {
		t.Fatalf("snack: only %d variations", got)
	}
}

func TestVariationsFilterByDiet(t *testing.T) {
	cat := New()

	vegan := cat.Variations(domain.MealDinner, "vegan", nil)
	if len(vegan) == 0 {
		t.Fatal("expected at least one vegan dinner")
	}
	for _, v := range vegan {
		found := false
		for _, d := range v.Diets {
			if d == "vegan" {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q is not tagged vegan", v.Title)
		}
	}

	all := cat.Variations(domain.MealDinner, "", nil)
	if len(all) <= len(vegan) {
		t.Fatal("empty diet tag should widen the pool")
	}
}

func TestVariationsFilterByAllergy(t *testing.T) {
	cat := New()

	filtered := cat.Variations(domain.MealBreakfast, "", []string{"peanut"})
	for _, v := range filtered {
		names := append([]string{v.ProteinSource, v.CarbSource, v.FatSource}, v.Supporting...)
		for _, name := range names {
			if name == "peanut butter" {
				t.Fatalf("%q still contains peanut butter", v.Title)
			}
		}
	}
	all := cat.Variations(domain.MealBreakfast, "", nil)
	if len(filtered) >= len(all) {
		t.Fatal("peanut filter removed nothing")
	}
}

func TestVariationsReturnCopies(t *testing.T) {
	cat := New()

	first := cat.Variations(domain.MealLunch, "", nil)
	first[0].Title = "mutated"

	second := cat.Variations(domain.MealLunch, "", nil)
	if second[0].Title == "mutated" {
		t.Fatal("mutating a returned variation leaked into the catalog")
	}
}
