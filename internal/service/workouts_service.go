package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
)

type WorkoutsService struct {
	repo   repository.WorkoutRoutinesRepositoryI
	loader SnapshotLoaderI
}

func NewWorkoutsService(routinesRepo repository.WorkoutRoutinesRepositoryI, loader SnapshotLoaderI) *WorkoutsService {
	if routinesRepo == nil || loader == nil {
		log.Fatal("on workouts service provided nil dependencies")
	}
	return &WorkoutsService{
		repo:   routinesRepo,
		loader: loader,
	}
}

func (ws *WorkoutsService) GetRoutines(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]entity.WorkoutRoutine, error) {
	snap, err := clientSnapshot(ctx, ws.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	return snap.Workouts, nil
}

func (ws *WorkoutsService) UpsertRoutine(ctx context.Context, sess entity.Session, clientID uuid.UUID, slot int, req *RoutineRequest) (*entity.WorkoutRoutine, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := projection.WeekdayFromRoutineSlot(slot); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	routine := &entity.WorkoutRoutine{
		ClientID:  clientID,
		DaySlot:   slot,
		Name:      req.Name,
		Duration:  req.Duration,
		Exercises: make([]entity.Exercise, 0, len(req.Exercises)),
	}
	for i, e := range req.Exercises {
		routine.Exercises = append(routine.Exercises, entity.Exercise{
			Name:       e.Name,
			Sets:       e.Sets,
			Reps:       e.Reps,
			Rest:       e.Rest,
			Notes:      e.Notes,
			OrderIndex: i,
		})
	}
	if _, err := ws.repo.Upsert(ctx, routine); err != nil {
		return nil, repoError("workout routines", err)
	}
	ws.loader.Invalidate(clientID)
	return routine, nil
}

func (ws *WorkoutsService) DeleteRoutine(ctx context.Context, sess entity.Session, routineID uuid.UUID) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	routine, err := ws.repo.GetByID(ctx, routineID)
	if err != nil {
		return repoError("workout routines", err)
	}
	if err = ws.repo.Delete(ctx, routineID); err != nil {
		return repoError("workout routines", err)
	}
	ws.loader.Invalidate(routine.ClientID)
	return nil
}

func (ws *WorkoutsService) DayWorkout(ctx context.Context, sess entity.Session, clientID uuid.UUID, date time.Time) (projection.DayWorkout, error) {
	snap, err := clientSnapshot(ctx, ws.loader, sess, clientID)
	if err != nil {
		return projection.DayWorkout{}, err
	}
	return projection.WorkoutForDate(date, snap.Workouts), nil
}
