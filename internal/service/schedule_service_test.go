package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestUpsertTrainingSession(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Req          service.TrainingSessionRequest
		Trainer      string
		MockPrepFunc func(e *env)
	}{
		{
			Desc:    "default trainer",
			Req:     service.TrainingSessionRequest{DaySlot: 2, StartTime: "18:00", EndTime: "19:00"},
			Trainer: service.DefaultTrainer,
			MockPrepFunc: func(e *env) {
				e.schedule.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			},
		},
		{
			Desc:    "named trainer",
			Req:     service.TrainingSessionRequest{DaySlot: 7, StartTime: "09:30", EndTime: "10:30", Trainer: "Marta"},
			Trainer: "Marta",
			MockPrepFunc: func(e *env) {
				e.schedule.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			},
		},
		{
			Desc:         "end before start",
			Error:        errorvalues.ErrValidation,
			Req:          service.TrainingSessionRequest{DaySlot: 2, StartTime: "18:00", EndTime: "17:00"},
			MockPrepFunc: func(e *env) {},
		},
		{
			Desc:         "day out of range",
			Error:        errorvalues.ErrValidation,
			Req:          service.TrainingSessionRequest{DaySlot: 0, StartTime: "18:00", EndTime: "19:00"},
			MockPrepFunc: func(e *env) {},
		},
		{
			Desc:         "malformed time",
			Error:        errorvalues.ErrValidation,
			Req:          service.TrainingSessionRequest{DaySlot: 1, StartTime: "6pm", EndTime: "19:00"},
			MockPrepFunc: func(e *env) {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			e := newEnv(t)
			serv := service.NewScheduleService(e.schedule, e.loader)
			tc.MockPrepFunc(e)
			req := tc.Req
			session, err := serv.Upsert(ctx, adminSession(), clientID, &req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.Trainer, session.Trainer)
				assert.Equal(t, clientID, session.ClientID)
			}
		})
	}
}

func TestScheduleAccess(t *testing.T) {
	t.Parallel()
	clientID := uuid.New()
	ctx := context.Background()
	e := newEnv(t)
	serv := service.NewScheduleService(e.schedule, e.loader)
	sessions := []entity.TrainingSession{{ClientID: clientID, DaySlot: 2, StartTime: "18:00", EndTime: "19:00", Trainer: "Carlos"}}
	e.expectSnapshot(clientID, clientData{schedule: sessions})

	list, err := serv.List(ctx, clientSession(clientID), clientID)
	assert.NoError(t, err)
	assert.Equal(t, sessions, list)

	_, err = serv.Upsert(ctx, clientSession(clientID), clientID, &service.TrainingSessionRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrForbidden)

	id := uuid.New()
	e.schedule.EXPECT().GetByID(gomock.Any(), id).Return(nil, errorvalues.ErrScheduleNotFound)
	assert.ErrorIs(t, serv.Delete(ctx, adminSession(), id), errorvalues.ErrScheduleNotFound)
}
