package utils

import (
	"errors"
	"math"
	"strings"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR uses the Mifflin-St Jeor equation. Sex accepts
// "male"/"female" (case-insensitive).
func CalculateBMR(heightCm, weightKg float64, ageYears int, sex string) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 || ageYears <= 0 {
		return 0, errors.New("height, weight and age must be positive")
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch strings.ToLower(strings.TrimSpace(sex)) {
	case "male", "m":
		return math.Round(base + 5), nil
	case "female", "f":
		return math.Round(base - 161), nil
	default:
		return 0, errors.New("sex must be male or female")
	}
}

var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"athlete":   1.9,
}

// DailyCalories scales BMR by the named activity level.
func DailyCalories(bmr float64, activityLevel string) (float64, error) {
	factor, ok := activityFactors[strings.ToLower(strings.TrimSpace(activityLevel))]
	if !ok {
		return 0, errors.New("unknown activity level")
	}
	return math.Round(bmr * factor), nil
}
