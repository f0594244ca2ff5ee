package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestTrainingSchedule(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTrainingScheduleRepo(mock)
	ctx := context.Background()
	session := entity.TrainingSession{
		ClientID:  clientID,
		DaySlot:   2,
		StartTime: "18:00",
		EndTime:   "19:00",
		Trainer:   "Carlos",
	}
	upsert := regexp.QuoteMeta(`INSERT INTO training_schedule (client_id, day_of_week, start_time, end_time, trainer, notes)`)
	t.Run("upsert", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(upsert).WithArgs(clientID, 2, "18:00", "19:00", "Carlos", "").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		s := session
		got, err := repo.Upsert(ctx, &s)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
		assert.Equal(t, id, s.ID)
	})
	t.Run("upsert unknown client", func(t *testing.T) {
		mock.ExpectQuery(upsert).WithArgs(clientID, 2, "18:00", "19:00", "Carlos", "").
			WillReturnError(&pgconn.PgError{Code: "23503"})
		s := session
		_, err := repo.Upsert(ctx, &s)
		assert.ErrorIs(t, err, errorvalues.ErrClientNotFound)
	})
	t.Run("list", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "client_id", "day_of_week", "start_time", "end_time", "trainer", "notes"}).
			AddRow(uuid.New(), clientID, 2, "18:00", "19:00", "Carlos", "").
			AddRow(uuid.New(), clientID, 4, "07:30", "08:30", "Marta", "pool")
		mock.ExpectQuery(regexp.QuoteMeta(`FROM training_schedule WHERE client_id = $1 ORDER BY day_of_week, start_time;`)).
			WithArgs(clientID).
			WillReturnRows(rows)
		sessions, err := repo.GetByClient(ctx, clientID)
		assert.NoError(t, err)
		if assert.Len(t, sessions, 2) {
			assert.Equal(t, "Marta", sessions[1].Trainer)
			assert.Equal(t, 4, sessions[1].DaySlot)
		}
	})
	t.Run("list db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM training_schedule WHERE client_id = $1`)).
			WithArgs(clientID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByClient(ctx, clientID)
		assert.Error(t, err)
	})
	t.Run("delete not found", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM training_schedule WHERE id = $1;`)).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrScheduleNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
