package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/pkg/entity"
)

type WorkoutRoutinesRepository struct {
	conn PgConnection
}

func NewWorkoutRoutinesRepo(conn PgConnection) *WorkoutRoutinesRepository {
	return &WorkoutRoutinesRepository{
		conn: conn,
	}
}

func (wr *WorkoutRoutinesRepository) GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.WorkoutRoutine, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, day_of_week, name, COALESCE(duration, '')
		FROM workout_routines WHERE client_id = $1 ORDER BY day_of_week;`, clientID)
	if err != nil {
		return nil, errors.New("getting workout routines error: " + err.Error())
	}
	routines := make([]entity.WorkoutRoutine, 0, 7)
	index := make(map[uuid.UUID]int, 7)
	for rows.Next() {
		r := entity.WorkoutRoutine{ClientID: clientID, Exercises: []entity.Exercise{}}
		if err := rows.Scan(&r.ID, &r.DaySlot, &r.Name, &r.Duration); err != nil {
			rows.Close()
			return nil, errors.New("unmarshalling workout routine error: " + err.Error())
		}
		index[r.ID] = len(routines)
		routines = append(routines, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning routines: " + err.Error())
	}
	if len(routines) == 0 {
		return routines, nil
	}

	rows, err = wr.conn.Query(ctx, `SELECT e.id, e.routine_id, e.name, e.sets, e.reps, COALESCE(e.rest, ''),
		COALESCE(e.notes, ''), e.order_index
		FROM exercises e JOIN workout_routines r ON r.id = e.routine_id
		WHERE r.client_id = $1 ORDER BY e.routine_id, e.order_index;`, clientID)
	if err != nil {
		return nil, errors.New("getting exercises error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			e         entity.Exercise
			routineID uuid.UUID
		)
		if err := rows.Scan(&e.ID, &routineID, &e.Name, &e.Sets, &e.Reps, &e.Rest, &e.Notes, &e.OrderIndex); err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		i, ok := index[routineID]
		if !ok {
			continue
		}
		routines[i].Exercises = append(routines[i].Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning exercises: " + err.Error())
	}
	return routines, nil
}

func (wr *WorkoutRoutinesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutRoutine, error) {
	r := entity.WorkoutRoutine{ID: id}
	row := wr.conn.QueryRow(ctx, `SELECT client_id, day_of_week, name, COALESCE(duration, '')
		FROM workout_routines WHERE id = $1;`, id)
	if err := row.Scan(&r.ClientID, &r.DaySlot, &r.Name, &r.Duration); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRoutineNotFound
		}
		return nil, errors.New("getting routine by id error: " + err.Error())
	}
	return &r, nil
}

// Upsert keeps a single routine per client and weekday. Exercises are
// replaced as a whole and renumbered in the given order.
func (wr *WorkoutRoutinesRepository) Upsert(ctx context.Context, routine *entity.WorkoutRoutine) (id uuid.UUID, err error) {
	tx, err := wr.conn.Begin(ctx)
	if err != nil {
		return uuid.Nil, errors.New("starting transaction error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	row := tx.QueryRow(ctx, `INSERT INTO workout_routines (client_id, day_of_week, name, duration) VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id, day_of_week) DO UPDATE SET name = EXCLUDED.name, duration = EXCLUDED.duration,
		updated_at = NOW() RETURNING id;`,
		routine.ClientID, routine.DaySlot, routine.Name, routine.Duration)
	if err = row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgFKViolation {
			err = errorvalues.ErrClientNotFound
			return uuid.Nil, err
		}
		err = errors.New("upserting routine error: " + err.Error())
		return uuid.Nil, err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM exercises WHERE routine_id = $1;`, id); err != nil {
		err = errors.New("removing old exercises error: " + err.Error())
		return uuid.Nil, err
	}
	for i, e := range routine.Exercises {
		_, err = tx.Exec(ctx, `INSERT INTO exercises (routine_id, name, sets, reps, rest, notes, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			id, e.Name, e.Sets, e.Reps, e.Rest, e.Notes, i,
		)
		if err != nil {
			err = errors.New("inserting exercise error: " + err.Error())
			return uuid.Nil, err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		err = errors.New("committing routine error: " + err.Error())
		return uuid.Nil, err
	}
	routine.ID = id
	return id, nil
}

func (wr *WorkoutRoutinesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := wr.conn.Exec(ctx, `DELETE FROM workout_routines WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting routine error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRoutineNotFound
	}
	return nil
}
