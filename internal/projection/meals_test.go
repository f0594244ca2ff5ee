package projection_test

import (
	"testing"

	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func meal(mt entity.MealType, kcal float64) entity.MealEntry {
	return entity.MealEntry{MealType: mt, Name: string(mt), Calories: ptr(kcal)}
}

func TestMealsForWeekdayOrdersAndTotals(t *testing.T) {
	plans := []entity.MealPlanDay{{
		DaySlot: 0,
		Meals: []entity.MealEntry{
			{MealType: entity.MealLunch, Calories: ptr(600), Protein: ptr(40), Carbs: ptr(70), Fat: ptr(15)},
			{MealType: entity.MealBreakfast, Calories: ptr(400), Protein: ptr(20), Carbs: ptr(50)},
		},
	}}
	meals := projection.MealsForWeekday(projection.Monday, plans)
	if assert.Len(t, meals, 2) {
		assert.Equal(t, entity.MealBreakfast, meals[0].MealType)
		assert.Equal(t, entity.MealLunch, meals[1].MealType)
	}
	totals := projection.DailyTotals(meals)
	assert.Equal(t, entity.MacroTotals{Calories: 1000, Protein: 60, Carbs: 120, Fat: 15}, totals)
	// input left untouched
	assert.Equal(t, entity.MealLunch, plans[0].Meals[0].MealType)
}

func TestMealsForWeekdayFixedOrder(t *testing.T) {
	testCases := []struct {
		Desc  string
		Input []entity.MealEntry
	}{
		{
			Desc: "reversed",
			Input: []entity.MealEntry{
				meal(entity.MealDinner, 1), meal(entity.MealSnack, 1), meal(entity.MealLunch, 1),
				meal(entity.MealMidMorning, 1), meal(entity.MealBreakfast, 1),
			},
		},
		{
			Desc: "shuffled",
			Input: []entity.MealEntry{
				meal(entity.MealSnack, 1), meal(entity.MealBreakfast, 1), meal(entity.MealDinner, 1),
				meal(entity.MealLunch, 1), meal(entity.MealMidMorning, 1),
			},
		},
		{
			Desc: "with unknown type",
			Input: []entity.MealEntry{
				meal("brunch", 1), meal(entity.MealDinner, 1), meal(entity.MealBreakfast, 1),
				meal(entity.MealMidMorning, 1), meal(entity.MealSnack, 1), meal(entity.MealLunch, 1),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			plans := []entity.MealPlanDay{{DaySlot: 3, Meals: tc.Input}}
			meals := projection.MealsForWeekday(projection.Thursday, plans)
			got := make([]entity.MealType, 0, len(meals))
			for _, m := range meals {
				got = append(got, m.MealType)
			}
			assert.Equal(t, projection.MealOrder, got)
		})
	}
}

func TestMealsForWeekdayNoPlan(t *testing.T) {
	plans := []entity.MealPlanDay{{DaySlot: 0, Meals: []entity.MealEntry{meal(entity.MealLunch, 500)}}}
	meals := projection.MealsForWeekday(projection.Sunday, plans)
	assert.Empty(t, meals)
	assert.Equal(t, entity.MacroTotals{}, projection.DailyTotals(meals))
	assert.Equal(t, entity.MacroTotals{}, projection.DailyTotals(nil))
	assert.False(t, projection.HasMeals(projection.Sunday, plans))
	assert.True(t, projection.HasMeals(projection.Monday, plans))
}

func TestDailyTotalsOrderIndependent(t *testing.T) {
	a := []entity.MealEntry{
		{MealType: entity.MealBreakfast, Calories: ptr(350.5), Fat: ptr(10)},
		{MealType: entity.MealLunch, Protein: ptr(42)},
		{MealType: entity.MealDinner, Calories: ptr(720), Carbs: ptr(88), Fat: ptr(22.5)},
	}
	b := []entity.MealEntry{a[2], a[0], a[1]}
	assert.Equal(t, projection.DailyTotals(a), projection.DailyTotals(b))
	assert.Equal(t, entity.MacroTotals{Calories: 1070.5, Protein: 42, Carbs: 88, Fat: 32.5}, projection.DailyTotals(a))
}

func TestWeeklyTotalsAndAverage(t *testing.T) {
	plans := []entity.MealPlanDay{
		{DaySlot: 0, Meals: []entity.MealEntry{meal(entity.MealLunch, 2000)}},
		{DaySlot: 6, Meals: []entity.MealEntry{meal(entity.MealDinner, 1000), meal(entity.MealBreakfast, 500)}},
	}
	week := projection.WeeklyTotals(plans)
	assert.Equal(t, 2000.0, week[0].Calories)
	assert.Equal(t, 0.0, week[3].Calories)
	assert.Equal(t, 1500.0, week[6].Calories)
	assert.Equal(t, 1750.0, projection.WeekAverage(plans).Calories)
	assert.Equal(t, entity.MacroTotals{}, projection.WeekAverage(nil))
}
