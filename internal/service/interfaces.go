package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/internal/snapshot"
	"github.com/limbo/coachplan/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/limbo/coachplan/internal/service AuthServiceI,ClientsServiceI,PlansServiceI,WorkoutsServiceI,BonosServiceI,ScheduleServiceI,CalendarServiceI

// Clock returns the current time in the business time zone.
type Clock func() time.Time

type SnapshotLoaderI interface {
	// Returns cached client snapshot or loads it
	Get(ctx context.Context, clientID uuid.UUID) (*snapshot.Snapshot, error)
	// Drops cached snapshot after client's data changed
	Invalidate(clientID uuid.UUID)
}

type AuthServiceI interface {
	// Compares given credentials. If ok, gives back profile
	Login(ctx context.Context, email, password string) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}

type ClientsServiceI interface {
	CreateClient(ctx context.Context, sess entity.Session, req *CreateClientRequest) (*entity.Profile, error)
	ListClients(ctx context.Context, sess entity.Session) ([]*entity.Profile, error)
	GetClient(ctx context.Context, sess entity.Session, id uuid.UUID) (*entity.Profile, error)
	UpdateClient(ctx context.Context, sess entity.Session, id uuid.UUID, req *UpdateClientRequest) (*entity.Profile, error)
}

type PlansServiceI interface {
	GetMealPlans(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]entity.MealPlanDay, error)
	// Replaces meals of the weekday given by 0-based slot
	UpsertMealPlanDay(ctx context.Context, sess entity.Session, clientID uuid.UUID, slot int, req *MealPlanDayRequest) (*entity.MealPlanDay, error)
	// Ordered meals of the date's weekday with their totals
	DayMeals(ctx context.Context, sess entity.Session, clientID uuid.UUID, date time.Time) (*DayMeals, error)
	// Monday..Sunday of the date's week with per-day totals and workout markers
	WeekOverview(ctx context.Context, sess entity.Session, clientID uuid.UUID, date time.Time) (*WeekOverview, error)
}

type WorkoutsServiceI interface {
	GetRoutines(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]entity.WorkoutRoutine, error)
	// Creates or replaces routine of the weekday given by 1-based slot
	UpsertRoutine(ctx context.Context, sess entity.Session, clientID uuid.UUID, slot int, req *RoutineRequest) (*entity.WorkoutRoutine, error)
	DeleteRoutine(ctx context.Context, sess entity.Session, routineID uuid.UUID) error
	DayWorkout(ctx context.Context, sess entity.Session, clientID uuid.UUID, date time.Time) (projection.DayWorkout, error)
}

type BonosServiceI interface {
	List(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]BonoView, error)
	Create(ctx context.Context, sess entity.Session, clientID uuid.UUID, req *BonoRequest) (*BonoView, error)
	Update(ctx context.Context, sess entity.Session, id uuid.UUID, req *UpdateBonoRequest) (*BonoView, error)
	Delete(ctx context.Context, sess entity.Session, id uuid.UUID) error
	// Spends one session of the bono
	RecordSession(ctx context.Context, sess entity.Session, id uuid.UUID) (*BonoView, error)
	Dashboard(ctx context.Context, sess entity.Session) (*Dashboard, error)
}

type ScheduleServiceI interface {
	List(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]entity.TrainingSession, error)
	Upsert(ctx context.Context, sess entity.Session, clientID uuid.UUID, req *TrainingSessionRequest) (*entity.TrainingSession, error)
	Delete(ctx context.Context, sess entity.Session, id uuid.UUID) error
}

type CalendarServiceI interface {
	Month(ctx context.Context, sess entity.Session, clientID uuid.UUID, year int, month time.Month) (*MonthView, error)
	// Renders the month's workouts and training sessions as an iCalendar feed
	ExportICS(ctx context.Context, sess entity.Session, clientID uuid.UUID, year int, month time.Month) ([]byte, error)
}
