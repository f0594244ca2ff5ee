package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/repository/mocks"
	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreateClient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewClientsService(repo)
	admin := adminSession()
	valid := service.CreateClientRequest{
		Email:    "ana@example.com",
		FullName: "Ana Ruiz",
		Password: "test_password",
	}
	withTargets := valid
	withTargets.TargetCalories = iptr(2100)
	badEmail := valid
	badEmail.Email = "not-an-email"
	testCases := []struct {
		Desc         string
		Error        error
		Session      entity.Session
		Req          service.CreateClientRequest
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Session: admin,
			Req:     valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:    "targets stored by update",
			Session: admin,
			Req:     withTargets,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:         "client cannot create clients",
			Error:        errorvalues.ErrForbidden,
			Session:      clientSession(uuid.New()),
			Req:          valid,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "validation error",
			Error:        errorvalues.ErrValidation,
			Session:      admin,
			Req:          badEmail,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "email taken",
			Error:   errorvalues.ErrUserExists,
			Session: admin,
			Req:     valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			req := tc.Req
			profile, err := serv.CreateClient(ctx, tc.Session, &req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, entity.RoleClient, profile.Role)
				assert.NotEqual(t, req.Password, profile.PasswordHash)
			}
		})
	}
}

func TestGetClient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewClientsService(repo)
	clientID := uuid.New()
	client := &entity.Profile{ID: clientID, Role: entity.RoleClient}
	testCases := []struct {
		Desc         string
		Error        error
		Session      entity.Session
		ID           uuid.UUID
		MockPrepFunc func()
	}{
		{
			Desc:    "client reads own profile",
			Session: clientSession(clientID),
			ID:      clientID,
			MockPrepFunc: func() {
				repo.EXPECT().FindByID(gomock.Any(), clientID).Return(client, nil)
			},
		},
		{
			Desc:         "client reads other profile",
			Error:        errorvalues.ErrForbidden,
			Session:      clientSession(uuid.New()),
			ID:           clientID,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "not found",
			Error:   errorvalues.ErrClientNotFound,
			Session: adminSession(),
			ID:      clientID,
			MockPrepFunc: func() {
				repo.EXPECT().FindByID(gomock.Any(), clientID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:    "admin profile is not a client",
			Error:   errorvalues.ErrClientNotFound,
			Session: adminSession(),
			ID:      clientID,
			MockPrepFunc: func() {
				repo.EXPECT().FindByID(gomock.Any(), clientID).Return(&entity.Profile{ID: clientID, Role: entity.RoleAdmin}, nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.GetClient(ctx, tc.Session, tc.ID)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestUpdateClient(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfilesRepositoryI(ctrl)
	serv := service.NewClientsService(repo)
	clientID := uuid.New()
	ctx := context.Background()

	repo.EXPECT().FindByID(gomock.Any(), clientID).
		Return(&entity.Profile{ID: clientID, FullName: "Ana", Phone: "600", Role: entity.RoleClient}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	profile, err := serv.UpdateClient(ctx, adminSession(), clientID, &service.UpdateClientRequest{
		FullName:     sptr("Ana Ruiz"),
		TargetWeight: fptr(64),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Ruiz", profile.FullName)
	assert.Equal(t, "600", profile.Phone)
	assert.Equal(t, 64.0, *profile.TargetWeight)

	_, err = serv.UpdateClient(ctx, clientSession(clientID), clientID, &service.UpdateClientRequest{})
	assert.ErrorIs(t, err, errorvalues.ErrForbidden)
}
