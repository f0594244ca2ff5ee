package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var bonoCols = []string{"id", "client_id", "bono_type", "sessions_total", "sessions_used",
	"start_date", "expiry_date", "notes", "created_at"}

func testBono() entity.Bono {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	return entity.Bono{
		ID:            uuid.New(),
		ClientID:      clientID,
		BonoType:      "10 sessions",
		SessionsTotal: 10,
		SessionsUsed:  3,
		StartDate:     start,
		ExpiryDate:    start.AddDate(0, 3, 0),
		Notes:         "paid cash",
		CreatedAt:     start,
	}
}

func bonoRow(rows *pgxmock.Rows, b entity.Bono) *pgxmock.Rows {
	return rows.AddRow(b.ID, b.ClientID, b.BonoType, b.SessionsTotal, b.SessionsUsed,
		b.StartDate, b.ExpiryDate, b.Notes, b.CreatedAt)
}

func TestGetBonos(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBonosRepo(mock)
	ctx := context.Background()
	bono := testBono()
	t.Run("by client", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM client_bonos WHERE client_id = $1 ORDER BY created_at DESC;`)).
			WithArgs(clientID).
			WillReturnRows(bonoRow(pgxmock.NewRows(bonoCols), bono))
		bonos, err := repo.GetByClient(ctx, clientID)
		assert.NoError(t, err)
		assert.Equal(t, []entity.Bono{bono}, bonos)
	})
	t.Run("active", func(t *testing.T) {
		asOf := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM client_bonos WHERE expiry_date >= $1 ORDER BY expiry_date;`)).
			WithArgs(asOf).
			WillReturnRows(bonoRow(pgxmock.NewRows(bonoCols), bono))
		bonos, err := repo.ListActive(ctx, asOf)
		assert.NoError(t, err)
		assert.Len(t, bonos, 1)
	})
	t.Run("by id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM client_bonos WHERE id = $1;`)).
			WithArgs(bono.ID).
			WillReturnRows(bonoRow(pgxmock.NewRows(bonoCols), bono))
		b, err := repo.GetByID(ctx, bono.ID)
		assert.NoError(t, err)
		assert.Equal(t, bono, *b)
	})
	t.Run("by id not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM client_bonos WHERE id = $1;`)).
			WithArgs(bono.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, bono.ID)
		assert.ErrorIs(t, err, errorvalues.ErrBonoNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM client_bonos WHERE client_id = $1`)).
			WithArgs(clientID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByClient(ctx, clientID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBono(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBonosRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO client_bonos`)
	bono := testBono()
	args := []any{bono.ClientID, bono.BonoType, bono.SessionsTotal, bono.SessionsUsed,
		bono.StartDate, bono.ExpiryDate, bono.Notes}
	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		created := time.Now()
		mock.ExpectQuery(query).WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, created))
		b := bono
		assert.NoError(t, repo.Create(ctx, &b))
		assert.Equal(t, id, b.ID)
		assert.Equal(t, created, b.CreatedAt)
	})
	t.Run("unknown client", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		b := bono
		assert.ErrorIs(t, repo.Create(ctx, &b), errorvalues.ErrClientNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteBono(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBonosRepo(mock)
	ctx := context.Background()
	bono := testBono()
	update := regexp.QuoteMeta(`UPDATE client_bonos SET bono_type = $1`)
	args := []any{bono.BonoType, bono.SessionsTotal, bono.SessionsUsed, bono.StartDate,
		bono.ExpiryDate, bono.Notes, bono.ID}
	t.Run("update", func(t *testing.T) {
		mock.ExpectExec(update).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &bono))
	})
	t.Run("update not found", func(t *testing.T) {
		mock.ExpectExec(update).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &bono), errorvalues.ErrBonoNotFound)
	})
	t.Run("increment used", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE client_bonos SET sessions_used = sessions_used + 1
		WHERE id = $1 AND sessions_used < sessions_total RETURNING sessions_used;`)).
			WithArgs(bono.ID).
			WillReturnRows(pgxmock.NewRows([]string{"sessions_used"}).AddRow(4))
		used, err := repo.IncrementUsed(ctx, bono.ID)
		assert.NoError(t, err)
		assert.Equal(t, 4, used)
	})
	t.Run("increment exhausted bono", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`AND sessions_used < sessions_total`)).
			WithArgs(bono.ID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM client_bonos WHERE id = $1);`)).
			WithArgs(bono.ID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		_, err := repo.IncrementUsed(ctx, bono.ID)
		assert.ErrorIs(t, err, errorvalues.ErrBonoExhausted)
	})
	t.Run("increment unknown bono", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`AND sessions_used < sessions_total`)).
			WithArgs(bono.ID).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM client_bonos WHERE id = $1);`)).
			WithArgs(bono.ID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		_, err := repo.IncrementUsed(ctx, bono.ID)
		assert.ErrorIs(t, err, errorvalues.ErrBonoNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM client_bonos WHERE id = $1;`)).
			WithArgs(bono.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, bono.ID))
	})
	t.Run("delete not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM client_bonos WHERE id = $1;`)).
			WithArgs(bono.ID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, bono.ID), errorvalues.ErrBonoNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
