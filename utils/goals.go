package utils

import (
	"errors"
	"math"

	"github.com/Voltexs/CalorieTracker-and-Counter-with-AI-Search/models"
)

const kgToLbs = 2.20462

var activityMultipliers = map[string]float64{
	"sedentary":  1.2,   // little or no exercise
	"light":      1.375, // 1-3 days/week
	"moderate":   1.55,  // 3-5 days/week
	"active":     1.725, // 6-7 days/week
	"veryActive": 1.9,   // hard exercise daily
}

var proteinPerKg = map[string]float64{"cut": 2.2, "maintain": 1.6, "bulk": 2.0}
var carbsPerKg = map[string]float64{"cut": 3.5, "maintain": 4.5, "bulk": 6.0}

// CalculateBMR uses the Mifflin-St Jeor equation. Height in cm, weight in kg.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr)), nil
}

// CalculateNutritionGoals derives daily targets from the profile inputs.
// Two methods are supported: "mifflin" (BMR x activity, macros per kg of
// bodyweight) and "nippard" (bodyweight-in-lbs shortcut with fixed fat).
func CalculateNutritionGoals(weightKg, heightCm float64, age int, gender, activity, goal, method string) (models.NutritionGoals, error) {
	if method == "nippard" {
		return nippardGoals(weightKg, goal)
	}
	return mifflinGoals(weightKg, heightCm, age, gender, activity, goal)
}

func mifflinGoals(weightKg, heightCm float64, age int, gender, activity, goal string) (models.NutritionGoals, error) {
	bmr, err := CalculateBMR(weightKg, heightCm, age, gender)
	if err != nil {
		return models.NutritionGoals{}, err
	}
	mult, ok := activityMultipliers[activity]
	if !ok {
		return models.NutritionGoals{}, errors.New("unknown activity level")
	}
	tdee := int(math.Round(float64(bmr) * mult))
	calories := adjustForGoal(tdee, goal)

	protein := int(math.Round(weightKg * proteinPerKg[orMaintain(goal)]))
	carbs := int(math.Round(weightKg * carbsPerKg[orMaintain(goal)]))

	remaining := calories - protein*4 - carbs*4
	fat := int(math.Round(float64(remaining) / 9))
	if floor := int(math.Round(weightKg * 0.8)); fat < floor {
		fat = floor
	}

	return models.NutritionGoals{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}, nil
}

func nippardGoals(weightKg float64, goal string) (models.NutritionGoals, error) {
	if weightKg <= 0 {
		return models.NutritionGoals{}, errors.New("weight must be positive")
	}
	lbs := weightKg * kgToLbs
	base := int(math.Round(lbs * 10))
	calories := adjustForGoal(base, goal)

	protein := int(math.Round(lbs))
	fat := 50
	carbs := int(math.Round(float64(calories-protein*4-fat*9) / 4))

	return models.NutritionGoals{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}, nil
}

func adjustForGoal(calories int, goal string) int {
	switch goal {
	case "cut":
		return int(math.Round(float64(calories) * 0.8))
	case "bulk":
		return int(math.Round(float64(calories) * 1.1))
	default:
		return calories
	}
}

func orMaintain(goal string) string {
	if _, ok := proteinPerKg[goal]; ok {
		return goal
	}
	return "maintain"
}
