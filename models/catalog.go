package models

// MealCategory groups reusable meal templates under an icon.
type MealCategory struct {
	Icon  string       `json:"icon"`
	Meals []MealRecord `json:"meals"`
}

// MealCategories is the whole catalog, persisted as one snapshot.
type MealCategories map[string]MealCategory

// DefaultCategories seeds the catalog on first run.
func DefaultCategories() MealCategories {
	return MealCategories{
		"Breakfast": {
			Icon: "sunny-outline",
			Meals: []MealRecord{
				{Name: "Breakfast Bowl", Description: "• 3 large eggs\n• 80g oats\n• ½ scoop whey\n• 30g blueberries", Calories: 405, Protein: 27, Carbs: 35, Fat: 16},
				{Name: "Eggs on Toast", Description: "• 3 large eggs\n• 2 brown bread", Calories: 310, Protein: 21, Carbs: 20, Fat: 15},
			},
		},
		"Chicken Meals": {
			Icon: "nutrition-outline",
			Meals: []MealRecord{
				{Name: "Chicken Wrap", Description: "• 150g chicken breast\n• 1 brown wrap\n• 1 tbsp sriracha", Calories: 340, Protein: 38, Carbs: 18, Fat: 9},
				{Name: "Chicken & Brown Rice", Description: "• 150g chicken breast\n• 100g brown rice\n• 1 tbsp sriracha", Calories: 355, Protein: 36, Carbs: 30, Fat: 7},
			},
		},
		"Mince Meals": {
			Icon: "restaurant-outline",
			Meals: []MealRecord{
				{Name: "Lean Mince Wrap", Description: "• 150g lean mince\n• 1 brown wrap\n• 1 tbsp sriracha", Calories: 370, Protein: 36, Carbs: 18, Fat: 13},
			},
		},
		"Tuna Meals": {
			Icon: "fish-outline",
			Meals: []MealRecord{
				{Name: "Zero Noodle Tuna", Description: "• 1 pack zero noodles\n• 1 tin tuna\n• 1 tbsp sriracha", Calories: 130, Protein: 26, Carbs: 0, Fat: 1},
			},
		},
		"Protein Shakes": {
			Icon: "fitness-outline",
			Meals: []MealRecord{
				{Name: "NPL Whey Plus", Description: "• 1 scoop whey", Calories: 120, Protein: 24, Carbs: 2, Fat: 1},
				{Name: "Protein Shake Plus", Description: "• 1 scoop whey\n• 1 banana\n• 1 tbsp peanut butter", Calories: 270, Protein: 26, Carbs: 21, Fat: 9},
			},
		},
		"Cheat Meals": {
			Icon: "pizza-outline",
			Meals: []MealRecord{
				{Name: "Burger & Fries", Description: "• 1 beef burger\n• 1 brioche bun\n• Regular fries", Calories: 850, Protein: 35, Carbs: 89, Fat: 38},
				{Name: "Pizza Slice", Description: "• 2 slices pizza\n• Ranch dip", Calories: 560, Protein: 22, Carbs: 65, Fat: 24},
				{Name: "Ice Cream Bowl", Description: "• 2 scoops vanilla\n• Chocolate sauce\n• Sprinkles", Calories: 380, Protein: 8, Carbs: 48, Fat: 18},
			},
		},
	}
}
