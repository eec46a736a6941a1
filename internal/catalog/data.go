package catalog

import "example.com/nutrition/internal/domain"

// ingredientTable lists nutrient densities per 100 g (100 ml for liquids).
// Values follow common food-composition references and are intentionally
// coarse; the planner treats them as configuration, not measurement.
var ingredientTable = []IngredientInfo{
	{Name: "chicken breast", Unit: "g", Per100: Macros{Kcal: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6}},
	{Name: "salmon fillet", Unit: "g", Per100: Macros{Kcal: 208, ProteinG: 20, CarbsG: 0, FatG: 13}},
	{Name: "lean beef", Unit: "g", Per100: Macros{Kcal: 250, ProteinG: 26, CarbsG: 0, FatG: 15}},
	{Name: "eggs", Unit: "g", Per100: Macros{Kcal: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11}},
	{Name: "greek yogurt", Unit: "g", Per100: Macros{Kcal: 59, ProteinG: 10, CarbsG: 3.6, FatG: 0.4}},
	{Name: "cottage cheese", Unit: "g", Per100: Macros{Kcal: 98, ProteinG: 11, CarbsG: 3.4, FatG: 4.3}},
	{Name: "tofu", Unit: "g", Per100: Macros{Kcal: 76, ProteinG: 8, CarbsG: 1.9, FatG: 4.8}},
	{Name: "lentils", Unit: "g", Per100: Macros{Kcal: 116, ProteinG: 9, CarbsG: 20, FatG: 0.4}},
	{Name: "whey protein", Unit: "g", Per100: Macros{Kcal: 380, ProteinG: 78, CarbsG: 8, FatG: 5}},
	{Name: "rolled oats", Unit: "g", Per100: Macros{Kcal: 389, ProteinG: 16.9, CarbsG: 66, FatG: 6.9}},
	{Name: "white rice", Unit: "g", Per100: Macros{Kcal: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3}},
	{Name: "pasta", Unit: "g", Per100: Macros{Kcal: 131, ProteinG: 5, CarbsG: 25, FatG: 1.1}},
	{Name: "potatoes", Unit: "g", Per100: Macros{Kcal: 77, ProteinG: 2, CarbsG: 17, FatG: 0.1}},
	{Name: "quinoa", Unit: "g", Per100: Macros{Kcal: 120, ProteinG: 4.4, CarbsG: 21, FatG: 1.9}},
	{Name: "wholegrain bread", Unit: "g", Per100: Macros{Kcal: 247, ProteinG: 13, CarbsG: 41, FatG: 3.4}},
	{Name: "banana", Unit: "g", Per100: Macros{Kcal: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3}},
	{Name: "mixed berries", Unit: "g", Per100: Macros{Kcal: 57, ProteinG: 0.7, CarbsG: 14, FatG: 0.3}},
	{Name: "olive oil", Unit: "ml", Per100: Macros{Kcal: 884, ProteinG: 0, CarbsG: 0, FatG: 100}},
	{Name: "peanut butter", Unit: "g", Per100: Macros{Kcal: 588, ProteinG: 25, CarbsG: 20, FatG: 50}},
	{Name: "almonds", Unit: "g", Per100: Macros{Kcal: 579, ProteinG: 21, CarbsG: 22, FatG: 50}},
	{Name: "avocado", Unit: "g", Per100: Macros{Kcal: 160, ProteinG: 2, CarbsG: 9, FatG: 15}},
	{Name: "spinach", Unit: "g", Per100: Macros{Kcal: 23, ProteinG: 2.9, CarbsG: 3.6, FatG: 0.4}},
	{Name: "broccoli", Unit: "g", Per100: Macros{Kcal: 34, ProteinG: 2.8, CarbsG: 7, FatG: 0.4}},
	{Name: "tomatoes", Unit: "g", Per100: Macros{Kcal: 18, ProteinG: 0.9, CarbsG: 3.9, FatG: 0.2}},
	{Name: "bell pepper", Unit: "g", Per100: Macros{Kcal: 31, ProteinG: 1, CarbsG: 6, FatG: 0.3}},
	{Name: "milk", Unit: "ml", Per100: Macros{Kcal: 64, ProteinG: 3.4, CarbsG: 4.8, FatG: 3.6}},
}

var variationTable = []Variation{
	// Breakfast
	{
		Title: "Berry oatmeal bowl", MealType: domain.MealBreakfast,
		ProteinSource: "greek yogurt", CarbSource: "rolled oats", FatSource: "almonds",
		Supporting: []string{"mixed berries", "milk"},
		Steps: []string{
			"Simmer the oats in milk until creamy.",
			"Stir in the yogurt off the heat.",
			"Top with berries and chopped almonds.",
		},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Scrambled eggs on toast", MealType: domain.MealBreakfast,
		ProteinSource: "eggs", CarbSource: "wholegrain bread", FatSource: "olive oil",
		Supporting: []string{"spinach", "tomatoes"},
		Steps: []string{
			"Toast the bread.",
			"Soft-scramble the eggs in olive oil with spinach.",
			"Serve on toast with sliced tomato.",
		},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Greek yogurt parfait", MealType: domain.MealBreakfast,
		ProteinSource: "greek yogurt", CarbSource: "banana", FatSource: "peanut butter",
		Supporting: []string{"mixed berries", "rolled oats"},
		Steps: []string{
			"Layer yogurt, sliced banana, and berries.",
			"Drizzle with peanut butter and scatter oats on top.",
		},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Banana protein porridge", MealType: domain.MealBreakfast,
		ProteinSource: "whey protein", CarbSource: "rolled oats", FatSource: "peanut butter",
		Supporting: []string{"banana", "milk"},
		Steps: []string{
			"Cook the oats in milk.",
			"Whisk in the protein powder off the heat.",
			"Top with banana and peanut butter.",
		},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Tofu scramble wrap", MealType: domain.MealBreakfast,
		ProteinSource: "tofu", CarbSource: "wholegrain bread", FatSource: "avocado",
		Supporting: []string{"spinach", "bell pepper"},
		Steps: []string{
			"Crumble and fry the tofu with pepper and spinach.",
			"Pile onto the bread with sliced avocado.",
		},
		Diets: []string{"vegetarian", "vegan"},
	},

	// Lunch
	{
		Title: "Chicken rice bowl", MealType: domain.MealLunch,
		ProteinSource: "chicken breast", CarbSource: "white rice", FatSource: "olive oil",
		Supporting: []string{"broccoli", "bell pepper"},
		Steps: []string{
			"Cook the rice.",
			"Pan-fry the chicken in olive oil, add the vegetables.",
			"Serve over rice.",
		},
	},
	{
		Title: "Salmon pasta", MealType: domain.MealLunch,
		ProteinSource: "salmon fillet", CarbSource: "pasta", FatSource: "olive oil",
		Supporting: []string{"spinach", "tomatoes"},
		Steps: []string{
			"Boil the pasta.",
			"Flake the cooked salmon through with spinach and tomato.",
			"Finish with olive oil.",
		},
	},
	{
		Title: "Quinoa lentil salad", MealType: domain.MealLunch,
		ProteinSource: "lentils", CarbSource: "quinoa", FatSource: "olive oil",
		Supporting: []string{"tomatoes", "bell pepper", "spinach"},
		Steps: []string{
			"Cook quinoa and lentils separately, then cool.",
			"Toss with the chopped vegetables and olive oil.",
		},
		Diets: []string{"vegetarian", "vegan"},
	},
	{
		Title: "Beef burrito bowl", MealType: domain.MealLunch,
		ProteinSource: "lean beef", CarbSource: "white rice", FatSource: "avocado",
		Supporting: []string{"tomatoes", "bell pepper"},
		Steps: []string{
			"Brown the beef with the pepper.",
			"Serve over rice with tomato salsa and avocado.",
		},
	},
	{
		Title: "Egg salad sandwich", MealType: domain.MealLunch,
		ProteinSource: "eggs", CarbSource: "wholegrain bread", FatSource: "avocado",
		Supporting: []string{"spinach"},
		Steps: []string{
			"Hard-boil and chop the eggs.",
			"Mash with avocado, season, and fill the sandwich with spinach.",
		},
		Diets: []string{"vegetarian"},
	},

	// Dinner
	{
		Title: "Salmon with roast potatoes", MealType: domain.MealDinner,
		ProteinSource: "salmon fillet", CarbSource: "potatoes", FatSource: "olive oil",
		Supporting: []string{"broccoli"},
		Steps: []string{
			"Roast the potatoes in olive oil.",
			"Bake the salmon, steam the broccoli, plate together.",
		},
	},
	{
		Title: "Chicken pesto pasta", MealType: domain.MealDinner,
		ProteinSource: "chicken breast", CarbSource: "pasta", FatSource: "olive oil",
		Supporting: []string{"spinach", "tomatoes"},
		Steps: []string{
			"Boil the pasta.",
			"Sear the chicken, slice, and toss everything with oil and spinach.",
		},
	},
	{
		Title: "Beef stir-fry with rice", MealType: domain.MealDinner,
		ProteinSource: "lean beef", CarbSource: "white rice", FatSource: "olive oil",
		Supporting: []string{"broccoli", "bell pepper"},
		Steps: []string{
			"Stir-fry the beef hot and fast.",
			"Add the vegetables, then serve over rice.",
		},
	},
	{
		Title: "Tofu coconut curry", MealType: domain.MealDinner,
		ProteinSource: "tofu", CarbSource: "white rice", FatSource: "olive oil",
		Supporting: []string{"spinach", "bell pepper", "tomatoes"},
		Steps: []string{
			"Fry the tofu until golden.",
			"Simmer with tomato and pepper, wilt in the spinach, serve on rice.",
		},
		Diets: []string{"vegetarian", "vegan"},
	},
	{
		Title: "Lentil potato stew", MealType: domain.MealDinner,
		ProteinSource: "lentils", CarbSource: "potatoes", FatSource: "olive oil",
		Supporting: []string{"tomatoes", "spinach"},
		Steps: []string{
			"Sweat the tomato in oil, add lentils, potato, and water.",
			"Simmer until tender and stir in the spinach.",
		},
		Diets: []string{"vegetarian", "vegan"},
	},

	// Snacks
	{
		Title: "Yogurt and almonds", MealType: domain.MealSnack,
		ProteinSource: "greek yogurt", CarbSource: "banana", FatSource: "almonds",
		Steps: []string{"Slice the banana into the yogurt and top with almonds."},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Peanut butter banana toast", MealType: domain.MealSnack,
		ProteinSource: "cottage cheese", CarbSource: "wholegrain bread", FatSource: "peanut butter",
		Supporting: []string{"banana"},
		Steps: []string{"Spread the toast with peanut butter and cottage cheese, top with banana."},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Protein shake", MealType: domain.MealSnack,
		ProteinSource: "whey protein", CarbSource: "banana", FatSource: "peanut butter",
		Supporting: []string{"milk"},
		Steps: []string{"Blend everything with ice until smooth."},
		Diets: []string{"vegetarian"},
	},
	{
		Title: "Berry cottage bowl", MealType: domain.MealSnack,
		ProteinSource: "cottage cheese", CarbSource: "mixed berries", FatSource: "almonds",
		Steps: []string{"Spoon the berries over the cottage cheese and scatter with almonds."},
		Diets: []string{"vegetarian"},
	},
}
