package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo repository.ProfilesRepositoryI
}

func NewAuthService(profilesRepo repository.ProfilesRepositoryI) *AuthService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &AuthService{
		repo: profilesRepo,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (as *AuthService) Login(ctx context.Context, email, password string) (*entity.Profile, error) {
	profile, err := as.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, repoError("profiles", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return profile, nil
}

func (as *AuthService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := as.repo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError("profiles", err)
	}
	return profile, nil
}

// EnsureAdmin creates the staff account on first start. An existing admin
// with the same email is returned untouched.
func (as *AuthService) EnsureAdmin(ctx context.Context, email, password, fullName string) (*entity.Profile, error) {
	profile, err := as.repo.FindByEmail(ctx, email)
	if err == nil {
		if profile.Role != entity.RoleAdmin {
			return nil, errorvalues.ErrUserExists
		}
		return profile, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, repoError("profiles", err)
	}
	if len(password) < 8 || len(password) > 72 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("admin password must be 8-72 characters long"))
	}
	passwordHash, err := Hash(password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	profile = &entity.Profile{
		Email:        email,
		FullName:     fullName,
		Role:         entity.RoleAdmin,
		PasswordHash: passwordHash,
	}
	if err = as.repo.Create(ctx, profile); err != nil {
		return nil, repoError("profiles", err)
	}
	return profile, nil
}
