package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
)

type ClientsService struct {
	repo repository.ProfilesRepositoryI
}

func NewClientsService(profilesRepo repository.ProfilesRepositoryI) *ClientsService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ClientsService{
		repo: profilesRepo,
	}
}

func (cs *ClientsService) CreateClient(ctx context.Context, sess entity.Session, req *CreateClientRequest) (*entity.Profile, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	profile := &entity.Profile{
		Email:          req.Email,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           entity.RoleClient,
		HasTraining:    req.HasTraining,
		TargetCalories: req.TargetCalories,
		TargetWeight:   req.TargetWeight,
		CurrentWeight:  req.CurrentWeight,
		PasswordHash:   passwordHash,
	}
	if err = cs.repo.Create(ctx, profile); err != nil {
		return nil, repoError("profiles", err)
	}
	// targets are not part of the insert
	if req.TargetCalories != nil || req.TargetWeight != nil || req.CurrentWeight != nil {
		if err = cs.repo.Update(ctx, profile); err != nil {
			return nil, repoError("profiles", err)
		}
	}
	return profile, nil
}

func (cs *ClientsService) ListClients(ctx context.Context, sess entity.Session) ([]*entity.Profile, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	clients, err := cs.repo.ListClients(ctx)
	if err != nil {
		return nil, repoError("profiles", err)
	}
	return clients, nil
}

func (cs *ClientsService) GetClient(ctx context.Context, sess entity.Session, id uuid.UUID) (*entity.Profile, error) {
	if err := canRead(sess, id); err != nil {
		return nil, err
	}
	profile, err := cs.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrClientNotFound
		}
		return nil, repoError("profiles", err)
	}
	if profile.Role != entity.RoleClient {
		return nil, errorvalues.ErrClientNotFound
	}
	return profile, nil
}

func (cs *ClientsService) UpdateClient(ctx context.Context, sess entity.Session, id uuid.UUID, req *UpdateClientRequest) (*entity.Profile, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	profile, err := cs.GetClient(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.HasTraining != nil {
		profile.HasTraining = *req.HasTraining
	}
	if req.TargetCalories != nil {
		profile.TargetCalories = req.TargetCalories
	}
	if req.TargetWeight != nil {
		profile.TargetWeight = req.TargetWeight
	}
	if req.CurrentWeight != nil {
		profile.CurrentWeight = req.CurrentWeight
	}
	if err = cs.repo.Update(ctx, profile); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrClientNotFound
		}
		return nil, repoError("profiles", err)
	}
	return profile, nil
}
