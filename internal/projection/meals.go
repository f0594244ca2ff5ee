package projection

import (
	"sort"

	"github.com/limbo/coachplan/pkg/entity"
)

// MealOrder is the display order of a day's meals.
var MealOrder = []entity.MealType{
	entity.MealBreakfast,
	entity.MealMidMorning,
	entity.MealLunch,
	entity.MealSnack,
	entity.MealDinner,
}

var mealRank = func() map[entity.MealType]int {
	rank := make(map[entity.MealType]int, len(MealOrder))
	for i, mt := range MealOrder {
		rank[mt] = i
	}
	return rank
}()

func KnownMealType(mt entity.MealType) bool {
	_, ok := mealRank[mt]
	return ok
}

// MealsForWeekday returns the meals stored for day, in MealOrder. Meals with
// an unknown type are dropped; missing types are simply absent.
func MealsForWeekday(day Weekday, plans []entity.MealPlanDay) []entity.MealEntry {
	slot := day.MealSlot()
	for _, p := range plans {
		if p.DaySlot == slot {
			return SortMeals(p.Meals)
		}
	}
	return []entity.MealEntry{}
}

// SortMeals returns a sorted copy of meals; the input is left untouched.
func SortMeals(meals []entity.MealEntry) []entity.MealEntry {
	sorted := make([]entity.MealEntry, 0, len(meals))
	for _, m := range meals {
		if KnownMealType(m.MealType) {
			sorted = append(sorted, m)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return mealRank[sorted[i].MealType] < mealRank[sorted[j].MealType]
	})
	return sorted
}

// DailyTotals sums the nutrients of meals. Absent values count as zero.
func DailyTotals(meals []entity.MealEntry) entity.MacroTotals {
	var t entity.MacroTotals
	for _, m := range meals {
		t.Calories += valueOrZero(m.Calories)
		t.Protein += valueOrZero(m.Protein)
		t.Carbs += valueOrZero(m.Carbs)
		t.Fat += valueOrZero(m.Fat)
	}
	return t
}

// WeeklyTotals returns the daily totals of every weekday, indexed Monday=0.
func WeeklyTotals(plans []entity.MealPlanDay) [7]entity.MacroTotals {
	var week [7]entity.MacroTotals
	for d := Monday; d <= Sunday; d++ {
		week[d.MealSlot()] = DailyTotals(MealsForWeekday(d, plans))
	}
	return week
}

// WeekAverage averages the daily totals over the days that have any meals
// planned. A week with no planned days averages to zero.
func WeekAverage(plans []entity.MealPlanDay) entity.MacroTotals {
	var (
		sum  entity.MacroTotals
		days int
	)
	for d := Monday; d <= Sunday; d++ {
		meals := MealsForWeekday(d, plans)
		if len(meals) == 0 {
			continue
		}
		t := DailyTotals(meals)
		sum.Calories += t.Calories
		sum.Protein += t.Protein
		sum.Carbs += t.Carbs
		sum.Fat += t.Fat
		days++
	}
	if days == 0 {
		return sum
	}
	n := float64(days)
	return entity.MacroTotals{
		Calories: sum.Calories / n,
		Protein:  sum.Protein / n,
		Carbs:    sum.Carbs / n,
		Fat:      sum.Fat / n,
	}
}

func HasMeals(day Weekday, plans []entity.MealPlanDay) bool {
	return len(MealsForWeekday(day, plans)) > 0
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
