package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarData(clientID uuid.UUID) clientData {
	return clientData{
		meals: []entity.MealPlanDay{{DaySlot: 0, Meals: []entity.MealEntry{{MealType: entity.MealLunch, Name: "Rice"}}}},
		routines: []entity.WorkoutRoutine{{
			ID:        uuid.New(),
			ClientID:  clientID,
			DaySlot:   1,
			Name:      "Push",
			Exercises: []entity.Exercise{{Name: "Bench press", Sets: 4, Reps: "8", Rest: "2 min"}},
		}},
		schedule: []entity.TrainingSession{{ID: uuid.New(), ClientID: clientID, DaySlot: 3, StartTime: "18:00", EndTime: "19:00", Trainer: "Carlos"}},
	}
}

func TestMonth(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	e := newEnv(t)
	serv := service.NewCalendarService(e.loader, clock)
	e.expectSnapshot(clientID, calendarData(clientID))

	view, err := serv.Month(context.Background(), clientSession(clientID), clientID, 2024, time.February)
	require.NoError(t, err)
	require.Len(t, view.Cells, projection.GridCells)
	// Feb 2024 starts on Thursday, so the grid opens with Mon Jan 29
	first := view.Cells[0]
	assert.Equal(t, time.Date(2024, time.January, 29, 0, 0, 0, 0, time.UTC), first.Date)
	assert.False(t, first.InMonth)
	assert.True(t, first.HasWorkout)
	assert.True(t, first.HasMeals)
	assert.Equal(t, 0, first.Sessions)

	wednesday := view.Cells[16]
	assert.Equal(t, 14, wednesday.Date.Day())
	assert.True(t, wednesday.IsToday)
	assert.Equal(t, 1, wednesday.Sessions)
	assert.False(t, wednesday.HasWorkout)

	today := 0
	for _, c := range view.Cells {
		if c.IsToday {
			today++
		}
	}
	assert.Equal(t, 1, today)
}

func TestMonthInvalid(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	serv := service.NewCalendarService(e.loader, clock)
	_, err := serv.Month(context.Background(), adminSession(), uuid.New(), 2024, time.Month(13))
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
}

func TestExportICS(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	e := newEnv(t)
	serv := service.NewCalendarService(e.loader, clock)
	e.expectSnapshot(clientID, calendarData(clientID))

	data, err := serv.ExportICS(context.Background(), adminSession(), clientID, 2024, time.February)
	require.NoError(t, err)
	ics := string(data)
	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR"))
	assert.Contains(t, ics, "PRODID:-//coachplan//calendar//EN")
	// four Mondays and four Wednesdays in February 2024
	assert.Equal(t, 4, strings.Count(ics, "SUMMARY:Workout: Push"))
	assert.Equal(t, 4, strings.Count(ics, "SUMMARY:Training with Carlos"))
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240205")
	assert.Contains(t, ics, "DTSTART:20240207T180000Z")

	_, err = serv.ExportICS(context.Background(), clientSession(uuid.New()), clientID, 2024, time.February)
	assert.ErrorIs(t, err, errorvalues.ErrForbidden)
}
