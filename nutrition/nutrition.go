// Package nutrition holds the pure calculation helpers: Harris-Benedict
// basal metabolic rate, maintenance calories per activity level, and the
// bottom-up aggregation of food items into meal and diet totals.
package nutrition

import (
	"strings"

	"github.com/lontso23/FitnessCoachApp/entity"
)

// activityMultipliers maps an activity level to its maintenance factor.
var activityMultipliers = map[string]float64{
	"sedentaria": 1.2,
	"ligera":     1.375,
	"moderada":   1.55,
	"alta":       1.725,
	"muy_alta":   1.9,
}

// Totals carries the four aggregated nutrient values.
type Totals struct {
	Kcal    float64
	Protein float64
	Carbs   float64
	Fats    float64
}

// BasalMetabolicRate calculates the TMB using the Harris-Benedict
// equation. Sex "H" (case-insensitive) takes the male branch; any other
// value takes the female branch, matching the permissive behavior the
// rest of the system relies on.
func BasalMetabolicRate(sex string, weightKg, heightCm float64, ageYears int) float64 {
	if strings.EqualFold(sex, "H") {
		return 66.5 + (13.75 * weightKg) + (5.003 * heightCm) - (6.75 * float64(ageYears))
	}
	return 655.1 + (9.563 * weightKg) + (1.850 * heightCm) - (4.676 * float64(ageYears))
}

// MaintenanceKcal calculates maintenance calories from a TMB and an
// activity level. Unknown levels fall back to the sedentary multiplier.
func MaintenanceKcal(tmb float64, activityLevel string) float64 {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = 1.2
	}
	return tmb * multiplier
}

// AggregateMeal sums the nutrient fields of the given food items. An empty
// list yields all-zero totals.
func AggregateMeal(items []entity.FoodItem) Totals {
	var t Totals
	for _, item := range items {
		t.Kcal += item.Kcal
		t.Protein += item.Protein
		t.Carbs += item.Carbs
		t.Fats += item.Fats
	}
	return t
}

// AggregateDiet sums the meal-level totals. An empty list yields all-zero
// totals.
func AggregateDiet(meals []entity.Meal) Totals {
	var t Totals
	for _, meal := range meals {
		t.Kcal += meal.TotalKcal
		t.Protein += meal.TotalProtein
		t.Carbs += meal.TotalCarbs
		t.Fats += meal.TotalFats
	}
	return t
}
