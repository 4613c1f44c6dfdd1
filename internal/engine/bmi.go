package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a caller passes values outside the documented domain.
var ErrInvalidInput = errors.New("invalid input")

// ClassifyBMI computes weight / height_m² rounded to two decimals and maps it to a category.
func ClassifyBMI(heightCm, weightKg float64) (float64, BMICategory, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, "", fmt.Errorf("%w: height and weight must be positive (height=%v, weight=%v)", ErrInvalidInput, heightCm, weightKg)
	}

	heightM := heightCm / 100
	bmi := roundTo(weightKg/(heightM*heightM), 2)
	return bmi, CategoryFor(bmi), nil
}

// CategoryFor maps an already computed BMI onto its band.
func CategoryFor(bmi float64) BMICategory {
	for _, band := range bmiBands {
		if bmi >= band.floor {
			return band.category
		}
	}
	return Underweight
}

// roundTo rounds half away from zero.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
