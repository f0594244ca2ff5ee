package projection

import (
	"sort"
	"time"

	"github.com/limbo/coachplan/pkg/entity"
)

// DayWorkout is the workout planned for a date. Rest is set, and Routine is
// nil, when no routine is stored for the date's weekday.
type DayWorkout struct {
	Date    time.Time              `json:"date"`
	Weekday Weekday                `json:"weekday"`
	Rest    bool                   `json:"rest"`
	Routine *entity.WorkoutRoutine `json:"routine,omitempty"`
}

func routineFor(day Weekday, routines []entity.WorkoutRoutine) (entity.WorkoutRoutine, bool) {
	slot := day.RoutineSlot()
	for _, r := range routines {
		if r.DaySlot == slot {
			return r, true
		}
	}
	return entity.WorkoutRoutine{}, false
}

func WorkoutForDate(date time.Time, routines []entity.WorkoutRoutine) DayWorkout {
	day := WeekdayOf(date)
	res := DayWorkout{Date: DateOnly(date), Weekday: day}
	r, ok := routineFor(day, routines)
	if !ok {
		res.Rest = true
		return res
	}
	r.Exercises = sortExercises(r.Exercises)
	res.Routine = &r
	return res
}

// HasWorkout reports whether a routine is planned on date; it never disagrees
// with WorkoutForDate.
func HasWorkout(date time.Time, routines []entity.WorkoutRoutine) bool {
	_, ok := routineFor(WeekdayOf(date), routines)
	return ok
}

func sortExercises(exercises []entity.Exercise) []entity.Exercise {
	sorted := make([]entity.Exercise, len(exercises))
	copy(sorted, exercises)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}
