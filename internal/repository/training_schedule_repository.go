package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/pkg/entity"
)

type TrainingScheduleRepository struct {
	conn PgConnection
}

func NewTrainingScheduleRepo(conn PgConnection) *TrainingScheduleRepository {
	return &TrainingScheduleRepository{
		conn: conn,
	}
}

func (tr *TrainingScheduleRepository) GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.TrainingSession, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, client_id, day_of_week, start_time, end_time, trainer, COALESCE(notes, '')
		FROM training_schedule WHERE client_id = $1 ORDER BY day_of_week, start_time;`, clientID)
	if err != nil {
		return nil, errors.New("getting training schedule error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]entity.TrainingSession, 0)
	for rows.Next() {
		var s entity.TrainingSession
		if err := rows.Scan(&s.ID, &s.ClientID, &s.DaySlot, &s.StartTime, &s.EndTime, &s.Trainer, &s.Notes); err != nil {
			return nil, errors.New("unmarshalling training session error: " + err.Error())
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning training sessions: " + err.Error())
	}
	return sessions, nil
}

func (tr *TrainingScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TrainingSession, error) {
	s := entity.TrainingSession{ID: id}
	row := tr.conn.QueryRow(ctx, `SELECT client_id, day_of_week, start_time, end_time, trainer, COALESCE(notes, '')
		FROM training_schedule WHERE id = $1;`, id)
	if err := row.Scan(&s.ClientID, &s.DaySlot, &s.StartTime, &s.EndTime, &s.Trainer, &s.Notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrScheduleNotFound
		}
		return nil, errors.New("getting training session error: " + err.Error())
	}
	return &s, nil
}

func (tr *TrainingScheduleRepository) Upsert(ctx context.Context, session *entity.TrainingSession) (uuid.UUID, error) {
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO training_schedule (client_id, day_of_week, start_time, end_time, trainer, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_id, day_of_week, start_time) DO UPDATE SET end_time = EXCLUDED.end_time,
		trainer = EXCLUDED.trainer, notes = EXCLUDED.notes RETURNING id;`,
		session.ClientID,
		session.DaySlot,
		session.StartTime,
		session.EndTime,
		session.Trainer,
		session.Notes,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgFKViolation {
			return uuid.Nil, errorvalues.ErrClientNotFound
		}
		return uuid.Nil, errors.New("upserting training session error: " + err.Error())
	}
	session.ID = id
	return id, nil
}

func (tr *TrainingScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM training_schedule WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting training session error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrScheduleNotFound
	}
	return nil
}
