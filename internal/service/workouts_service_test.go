package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWorkout(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	e := newEnv(t)
	serv := service.NewWorkoutsService(e.routines, e.loader)
	e.expectSnapshot(clientID, clientData{routines: []entity.WorkoutRoutine{{
		ClientID: clientID,
		DaySlot:  1,
		Name:     "Push",
		Exercises: []entity.Exercise{
			{Name: "Dips", OrderIndex: 1},
			{Name: "Bench press", OrderIndex: 0},
		},
	}}})
	ctx := context.Background()
	monday := time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC)

	dw, err := serv.DayWorkout(ctx, clientSession(clientID), clientID, monday)
	require.NoError(t, err)
	assert.False(t, dw.Rest)
	require.NotNil(t, dw.Routine)
	assert.Equal(t, "Bench press", dw.Routine.Exercises[0].Name)

	sunday := monday.AddDate(0, 0, 6)
	dw, err = serv.DayWorkout(ctx, clientSession(clientID), clientID, sunday)
	require.NoError(t, err)
	assert.True(t, dw.Rest)
	assert.Nil(t, dw.Routine)
}

func TestUpsertRoutine(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	req := service.RoutineRequest{
		Name: "Push",
		Exercises: []service.ExerciseRequest{
			{Name: "Bench press", Sets: 4, Reps: "8"},
			{Name: "Dips", Sets: 3, Reps: "12"},
		},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Session      entity.Session
		Slot         int
		MockPrepFunc func(e *env)
	}{
		{
			Desc:    "success",
			Session: adminSession(),
			Slot:    7,
			MockPrepFunc: func(e *env) {
				e.routines.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *entity.WorkoutRoutine) (uuid.UUID, error) {
						r.ID = uuid.New()
						return r.ID, nil
					})
			},
		},
		{
			Desc:         "slot zero is not a routine day",
			Error:        errorvalues.ErrInvalidSlot,
			Session:      adminSession(),
			Slot:         0,
			MockPrepFunc: func(e *env) {},
		},
		{
			Desc:         "client cannot edit routines",
			Error:        errorvalues.ErrForbidden,
			Session:      clientSession(clientID),
			Slot:         1,
			MockPrepFunc: func(e *env) {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			e := newEnv(t)
			serv := service.NewWorkoutsService(e.routines, e.loader)
			tc.MockPrepFunc(e)
			r := req
			routine, err := serv.UpsertRoutine(ctx, tc.Session, clientID, tc.Slot, &r)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, 7, routine.DaySlot)
				require.Len(t, routine.Exercises, 2)
				assert.Equal(t, 1, routine.Exercises[1].OrderIndex)
			}
		})
	}
}

func TestDeleteRoutine(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	routineID := uuid.New()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		e := newEnv(t)
		serv := service.NewWorkoutsService(e.routines, e.loader)
		e.routines.EXPECT().GetByID(gomock.Any(), routineID).Return(&entity.WorkoutRoutine{ID: routineID, ClientID: clientID}, nil)
		e.routines.EXPECT().Delete(gomock.Any(), routineID).Return(nil)
		assert.NoError(t, serv.DeleteRoutine(ctx, adminSession(), routineID))
	})
	t.Run("not found", func(t *testing.T) {
		e := newEnv(t)
		serv := service.NewWorkoutsService(e.routines, e.loader)
		e.routines.EXPECT().GetByID(gomock.Any(), routineID).Return(nil, errorvalues.ErrRoutineNotFound)
		assert.ErrorIs(t, serv.DeleteRoutine(ctx, adminSession(), routineID), errorvalues.ErrRoutineNotFound)
	})
}
