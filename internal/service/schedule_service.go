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

const DefaultTrainer = "Carlos"

type ScheduleService struct {
	repo   repository.TrainingScheduleRepositoryI
	loader SnapshotLoaderI
}

func NewScheduleService(scheduleRepo repository.TrainingScheduleRepositoryI, loader SnapshotLoaderI) *ScheduleService {
	if scheduleRepo == nil || loader == nil {
		log.Fatal("on schedule service provided nil dependencies")
	}
	return &ScheduleService{
		repo:   scheduleRepo,
		loader: loader,
	}
}

func (ss *ScheduleService) List(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]entity.TrainingSession, error) {
	snap, err := clientSnapshot(ctx, ss.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	return snap.Schedule, nil
}

func (ss *ScheduleService) Upsert(ctx context.Context, sess entity.Session, clientID uuid.UUID, req *TrainingSessionRequest) (*entity.TrainingSession, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	// both are validated HH:MM, so they compare as strings
	if req.EndTime <= req.StartTime {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("end time must be after start time"))
	}
	session := &entity.TrainingSession{
		ClientID:  clientID,
		DaySlot:   req.DaySlot,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Trainer:   req.Trainer,
		Notes:     req.Notes,
	}
	if session.Trainer == "" {
		session.Trainer = DefaultTrainer
	}
	id, err := ss.repo.Upsert(ctx, session)
	if err != nil {
		return nil, repoError("training schedule", err)
	}
	session.ID = id
	ss.loader.Invalidate(clientID)
	return session, nil
}

func (ss *ScheduleService) Delete(ctx context.Context, sess entity.Session, id uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	session, err := ss.repo.GetByID(ctx, id)
	if err != nil {
		return repoError("training schedule", err)
	}
	if err = ss.repo.Delete(ctx, id); err != nil {
		return repoError("training schedule", err)
	}
	ss.loader.Invalidate(session.ClientID)
	return nil
}
