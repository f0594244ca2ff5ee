package projection_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOf(t *testing.T) {
	// 2024-01-01 was a Monday.
	start := time.Date(2024, time.January, 1, 15, 30, 0, 0, time.UTC)
	want := []projection.Weekday{
		projection.Monday, projection.Tuesday, projection.Wednesday, projection.Thursday,
		projection.Friday, projection.Saturday, projection.Sunday,
	}
	for i, w := range want {
		d := start.AddDate(0, 0, i)
		assert.Equal(t, w, projection.WeekdayOf(d), d.Format(time.DateOnly))
	}
}

func TestSlotConversions(t *testing.T) {
	for d := projection.Monday; d <= projection.Sunday; d++ {
		meal, err := projection.WeekdayFromMealSlot(d.MealSlot())
		require.NoError(t, err)
		assert.Equal(t, d, meal)
		routine, err := projection.WeekdayFromRoutineSlot(d.RoutineSlot())
		require.NoError(t, err)
		assert.Equal(t, d, routine)
	}
	assert.Equal(t, 0, projection.Monday.MealSlot())
	assert.Equal(t, 6, projection.Sunday.MealSlot())
	assert.Equal(t, 7, projection.Sunday.RoutineSlot())

	_, err := projection.WeekdayFromMealSlot(7)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidSlot)
	_, err = projection.WeekdayFromMealSlot(-1)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidSlot)
	_, err = projection.WeekdayFromRoutineSlot(0)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidSlot)
	_, err = projection.WeekdayFromRoutineSlot(8)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidSlot)
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "Mon", projection.Monday.String())
	assert.Equal(t, "Sun", projection.Sunday.String())
	assert.Equal(t, "Weekday(9)", projection.Weekday(9).String())
}

func TestWeekOf(t *testing.T) {
	// Sunday 2024-03-10 belongs to the week starting Monday 2024-03-04.
	week := projection.WeekOf(time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), week[0])
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), week[6])
	for i, d := range week {
		assert.Equal(t, projection.Weekday(i+1), projection.WeekdayOf(d))
	}
}

func TestParseDate(t *testing.T) {
	d, err := projection.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2023-02-29", "29/02/2024", "2024-2-1"} {
		_, err := projection.ParseDate(bad)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate, bad)
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 4, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 3, projection.DaysBetween(from, to))
	assert.Equal(t, -3, projection.DaysBetween(to, from))
	assert.Equal(t, 0, projection.DaysBetween(from, from.Add(-time.Hour)))
}
