package utils

import (
	"errors"
	"math"
)

// CalculateBodyFat estimates body-fat percentage from the sum of six
// skinfold sites (back, tricep, supra-iliac, abdomen, thigh, calf) in mm.
// The result is clamped to [0, 100].
func CalculateBodyFat(sumSkinfoldsMm float64, gender string) (float64, error) {
	if sumSkinfoldsMm <= 0 {
		return 0, errors.New("skinfold sum must be positive")
	}

	var pct float64
	if gender == "male" {
		pct = 0.1051*sumSkinfoldsMm + 2.585
	} else {
		pct = 0.1548*sumSkinfoldsMm + 3.58
	}

	return math.Round(math.Max(math.Min(pct, 100), 0)*10) / 10, nil
}
