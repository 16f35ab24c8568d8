package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR(t *testing.T) {
	t.Run("male", func(t *testing.T) {
		bmr, err := CalculateBMR(80, 180, 30, "male")
		require.NoError(t, err)
		assert.Equal(t, 1780, bmr)
	})

	t.Run("female", func(t *testing.T) {
		bmr, err := CalculateBMR(60, 165, 28, "female")
		require.NoError(t, err)
		assert.Equal(t, 1330, bmr) // 600 + 1031.25 - 140 - 161 = 1330.25
	})

	t.Run("non-positive inputs rejected", func(t *testing.T) {
		_, err := CalculateBMR(0, 180, 30, "male")
		assert.Error(t, err)
		_, err = CalculateBMR(80, -1, 30, "male")
		assert.Error(t, err)
		_, err = CalculateBMR(80, 180, 0, "male")
		assert.Error(t, err)
	})
}

func TestCalculateNutritionGoals(t *testing.T) {
	t.Run("mifflin maintain", func(t *testing.T) {
		goals, err := CalculateNutritionGoals(80, 180, 30, "male", "moderate", "maintain", "mifflin")
		require.NoError(t, err)
		assert.Equal(t, 2759, goals.Calories) // 1780 * 1.55
		assert.Equal(t, 128, goals.Protein)   // 80 * 1.6
		assert.Equal(t, 360, goals.Carbs)     // 80 * 4.5
		assert.Equal(t, 90, goals.Fat)        // (2759 - 512 - 1440) / 9
	})

	t.Run("mifflin cut scales calories and macros", func(t *testing.T) {
		goals, err := CalculateNutritionGoals(80, 180, 30, "male", "moderate", "cut", "mifflin")
		require.NoError(t, err)
		assert.Equal(t, 2207, goals.Calories) // 2759 * 0.8
		assert.Equal(t, 176, goals.Protein)   // 80 * 2.2
		assert.Equal(t, 280, goals.Carbs)     // 80 * 3.5
	})

	t.Run("fat never drops below 0.8 g per kg", func(t *testing.T) {
		goals, err := CalculateNutritionGoals(80, 180, 30, "male", "sedentary", "cut", "mifflin")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, goals.Fat, 64)
	})

	t.Run("nippard uses bodyweight in pounds", func(t *testing.T) {
		goals, err := CalculateNutritionGoals(80, 180, 30, "male", "moderate", "maintain", "nippard")
		require.NoError(t, err)
		// 80 kg = 176.37 lbs
		assert.Equal(t, 1764, goals.Calories)
		assert.Equal(t, 176, goals.Protein)
		assert.Equal(t, 50, goals.Fat)
		assert.Equal(t, 153, goals.Carbs) // (1764 - 704 - 450) / 4
	})

	t.Run("unknown activity level rejected", func(t *testing.T) {
		_, err := CalculateNutritionGoals(80, 180, 30, "male", "extreme", "maintain", "mifflin")
		assert.Error(t, err)
	})
}
