// Package projection maps a client's weekly templates (meals per weekday,
// workout per weekday) onto concrete calendar dates and computes the derived
// aggregates shown to staff and clients. Everything here is pure: no I/O, no
// shared state.
package projection

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/coachplan/internal/error_values"
)

// Weekday is the ISO weekday, Monday=1 .. Sunday=7. It is the only weekday
// numbering used inside the package; stored collections are converted at the
// boundary with the MealSlot/RoutineSlot helpers.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayOf returns the ISO weekday of date in date's own location.
func WeekdayOf(date time.Time) Weekday {
	wd := date.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d-1]
}

// MealSlot is the 0-based key of meal_plans.day_of_week (Monday=0).
func (d Weekday) MealSlot() int {
	return int(d) - 1
}

// RoutineSlot is the 1-based key of workout_routines.day_of_week and
// training_schedule.day_of_week (Monday=1).
func (d Weekday) RoutineSlot() int {
	return int(d)
}

func WeekdayFromMealSlot(slot int) (Weekday, error) {
	d := Weekday(slot + 1)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: meal slot %d out of range 0..6", errorvalues.ErrInvalidSlot, slot)
	}
	return d, nil
}

func WeekdayFromRoutineSlot(slot int) (Weekday, error) {
	d := Weekday(slot)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: routine slot %d out of range 1..7", errorvalues.ErrInvalidSlot, slot)
	}
	return d, nil
}

// WeekOf returns the Monday..Sunday dates of the week containing date.
func WeekOf(date time.Time) [7]time.Time {
	day := DateOnly(date)
	monday := day.AddDate(0, 0, -(int(WeekdayOf(day)) - 1))
	var week [7]time.Time
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}
