package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/coachplan/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks github.com/limbo/coachplan/internal/repository ProfilesRepositoryI,MealPlansRepositoryI,WorkoutRoutinesRepositoryI,BonosRepositoryI,TrainingScheduleRepositoryI

type ProfilesRepositoryI interface {
	// Creates new profile. Returns generated id and creation time stored in profile
	Create(ctx context.Context, profile *entity.Profile) error
	// Looks up profile by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	// Looks up profile by id
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// Lists profiles with client role, newest first
	ListClients(ctx context.Context) ([]*entity.Profile, error)
	// Counts profiles with client role
	CountClients(ctx context.Context) (int, error)
	// Updates editable profile fields (name, phone, training flag, targets)
	Update(ctx context.Context, profile *entity.Profile) error
}

type MealPlansRepositoryI interface {
	// Lists all weekday plans of a client with their meals, ordered by weekday
	GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.MealPlanDay, error)
	// Replaces meals of client's weekday (0-based slot). Returns plan id
	Upsert(ctx context.Context, clientID uuid.UUID, daySlot int, meals []entity.MealEntry) (uuid.UUID, error)
}

type WorkoutRoutinesRepositoryI interface {
	// Lists all routines of a client with ordered exercises, ordered by weekday
	GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.WorkoutRoutine, error)
	// Searches routine by id, exercises are not loaded
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutRoutine, error)
	// Creates or replaces routine for client's weekday (1-based slot) together with its exercises
	Upsert(ctx context.Context, routine *entity.WorkoutRoutine) (uuid.UUID, error)
	// Deletes routine with its exercises
	Delete(ctx context.Context, id uuid.UUID) error
}

type BonosRepositoryI interface {
	// Lists client's bonos, newest first
	GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Bono, error)
	// Lists bonos not expired at the given date, across all clients
	ListActive(ctx context.Context, asOf time.Time) ([]entity.Bono, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bono, error)
	// Creates bono, filling ID and CreatedAt
	Create(ctx context.Context, bono *entity.Bono) error
	Update(ctx context.Context, bono *entity.Bono) error
	// Adds one used session and returns the new used count
	IncrementUsed(ctx context.Context, id uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TrainingScheduleRepositoryI interface {
	// Lists client's weekly training sessions ordered by weekday and start time
	GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.TrainingSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TrainingSession, error)
	// Creates or updates session keyed by client, weekday and start time. Returns its id
	Upsert(ctx context.Context, session *entity.TrainingSession) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
