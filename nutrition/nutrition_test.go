package nutrition

import (
	"testing"

	"github.com/lontso23/FitnessCoachApp/entity"
	"github.com/stretchr/testify/require"
)

func TestBasalMetabolicRateMale(t *testing.T) {
	// 66.5 + 13.75*75 + 5.003*175 - 6.75*30 = 1770.775
	got := BasalMetabolicRate("H", 75, 175, 30)
	require.InDelta(t, 1770.775, got, 1e-9)

	// Sex comparison is case-insensitive.
	require.Equal(t, got, BasalMetabolicRate("h", 75, 175, 30))
}

func TestBasalMetabolicRateFemale(t *testing.T) {
	// 655.1 + 9.563*60 + 1.850*165 - 4.676*25 = 1417.23
	got := BasalMetabolicRate("M", 60, 165, 25)
	require.InDelta(t, 655.1+9.563*60+1.850*165-4.676*25, got, 1e-9)
}

func TestBasalMetabolicRateUnknownSexTakesFemaleBranch(t *testing.T) {
	require.Equal(t,
		BasalMetabolicRate("M", 70, 170, 40),
		BasalMetabolicRate("X", 70, 170, 40))
}

func TestMaintenanceKcal(t *testing.T) {
	cases := map[string]float64{
		"sedentaria": 1.2,
		"ligera":     1.375,
		"moderada":   1.55,
		"alta":       1.725,
		"muy_alta":   1.9,
	}
	for level, multiplier := range cases {
		require.InDelta(t, 2000*multiplier, MaintenanceKcal(2000, level), 1e-9, "level %s", level)
	}
}

func TestMaintenanceKcalUnknownLevelDefaultsToSedentary(t *testing.T) {
	require.InDelta(t, 2000*1.2, MaintenanceKcal(2000, "extrema"), 1e-9)
	require.InDelta(t, 2000*1.2, MaintenanceKcal(2000, ""), 1e-9)
}

func TestAggregateMeal(t *testing.T) {
	items := []entity.FoodItem{
		{Kcal: 250, Protein: 10, Carbs: 30, Fats: 8.5},
		{Kcal: 130, Protein: 2.7, Carbs: 28, Fats: 0.3},
		{Kcal: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	}
	got := AggregateMeal(items)
	require.InDelta(t, 545, got.Kcal, 1e-9)
	require.InDelta(t, 43.7, got.Protein, 1e-9)
	require.InDelta(t, 58, got.Carbs, 1e-9)
	require.InDelta(t, 12.4, got.Fats, 1e-9)
}

func TestAggregateMealEmpty(t *testing.T) {
	require.Equal(t, Totals{}, AggregateMeal(nil))
	require.Equal(t, Totals{}, AggregateMeal([]entity.FoodItem{}))
}

func TestAggregateDiet(t *testing.T) {
	meals := []entity.Meal{
		{TotalKcal: 545, TotalProtein: 43.7, TotalCarbs: 58, TotalFats: 12.4},
		{TotalKcal: 700, TotalProtein: 40, TotalCarbs: 80, TotalFats: 20},
	}
	got := AggregateDiet(meals)
	require.InDelta(t, 1245, got.Kcal, 1e-9)
	require.InDelta(t, 83.7, got.Protein, 1e-9)
	require.InDelta(t, 138, got.Carbs, 1e-9)
	require.InDelta(t, 32.4, got.Fats, 1e-9)
}

func TestAggregateDietEmpty(t *testing.T) {
	require.Equal(t, Totals{}, AggregateDiet(nil))
}
