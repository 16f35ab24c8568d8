package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBodyFat(t *testing.T) {
	t.Run("male formula", func(t *testing.T) {
		pct, err := CalculateBodyFat(100, "male")
		require.NoError(t, err)
		assert.Equal(t, 13.1, pct) // 0.1051*100 + 2.585
	})

	t.Run("female formula", func(t *testing.T) {
		pct, err := CalculateBodyFat(100, "female")
		require.NoError(t, err)
		assert.Equal(t, 19.1, pct) // 0.1548*100 + 3.58
	})

	t.Run("result is clamped to 100", func(t *testing.T) {
		pct, err := CalculateBodyFat(10000, "male")
		require.NoError(t, err)
		assert.Equal(t, 100.0, pct)
	})

	t.Run("non-positive sum rejected", func(t *testing.T) {
		_, err := CalculateBodyFat(0, "male")
		assert.Error(t, err)
	})
}
