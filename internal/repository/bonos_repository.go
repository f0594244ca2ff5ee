package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/pkg/entity"
)

const bonoColumns = `id, client_id, bono_type, sessions_total, sessions_used, start_date, expiry_date,
		COALESCE(notes, ''), created_at`

type BonosRepository struct {
	conn PgConnection
}

func NewBonosRepo(conn PgConnection) *BonosRepository {
	return &BonosRepository{
		conn: conn,
	}
}

func (br *BonosRepository) GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.Bono, error) {
	rows, err := br.conn.Query(ctx, `SELECT `+bonoColumns+` FROM client_bonos WHERE client_id = $1 ORDER BY created_at DESC;`, clientID)
	if err != nil {
		return nil, errors.New("getting bonos by client error: " + err.Error())
	}
	return collectBonos(rows)
}

func (br *BonosRepository) ListActive(ctx context.Context, asOf time.Time) ([]entity.Bono, error) {
	rows, err := br.conn.Query(ctx, `SELECT `+bonoColumns+` FROM client_bonos WHERE expiry_date >= $1 ORDER BY expiry_date;`, asOf)
	if err != nil {
		return nil, errors.New("listing active bonos error: " + err.Error())
	}
	return collectBonos(rows)
}

func (br *BonosRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bono, error) {
	row := br.conn.QueryRow(ctx, `SELECT `+bonoColumns+` FROM client_bonos WHERE id = $1;`, id)
	b, err := scanBono(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBonoNotFound
		}
		return nil, errors.New("getting bono by id error: " + err.Error())
	}
	return &b, nil
}

func (br *BonosRepository) Create(ctx context.Context, bono *entity.Bono) error {
	row := br.conn.QueryRow(ctx, `INSERT INTO client_bonos
		(client_id, bono_type, sessions_total, sessions_used, start_date, expiry_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;`,
		bono.ClientID,
		bono.BonoType,
		bono.SessionsTotal,
		bono.SessionsUsed,
		bono.StartDate,
		bono.ExpiryDate,
		bono.Notes,
	)
	if err := row.Scan(&bono.ID, &bono.CreatedAt); err != nil {
		if pgErrorCode(err) == pgFKViolation {
			return errorvalues.ErrClientNotFound
		}
		return errors.New("creating bono error: " + err.Error())
	}
	return nil
}

func (br *BonosRepository) Update(ctx context.Context, bono *entity.Bono) error {
	ct, err := br.conn.Exec(ctx, `UPDATE client_bonos SET bono_type = $1, sessions_total = $2, sessions_used = $3,
		start_date = $4, expiry_date = $5, notes = $6 WHERE id = $7;`,
		bono.BonoType,
		bono.SessionsTotal,
		bono.SessionsUsed,
		bono.StartDate,
		bono.ExpiryDate,
		bono.Notes,
		bono.ID,
	)
	if err != nil {
		return errors.New("updating bono error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBonoNotFound
	}
	return nil
}

// IncrementUsed consumes one session of the bono. The guard lives in the
// UPDATE so concurrent calls can't go past sessions_total.
func (br *BonosRepository) IncrementUsed(ctx context.Context, id uuid.UUID) (int, error) {
	var used int
	row := br.conn.QueryRow(ctx, `UPDATE client_bonos SET sessions_used = sessions_used + 1
		WHERE id = $1 AND sessions_used < sessions_total RETURNING sessions_used;`, id)
	err := row.Scan(&used)
	if err == nil {
		return used, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, errors.New("incrementing used sessions error: " + err.Error())
	}
	var exists bool
	if err := br.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM client_bonos WHERE id = $1);`, id).Scan(&exists); err != nil {
		return 0, errors.New("checking bono error: " + err.Error())
	}
	if exists {
		return 0, errorvalues.ErrBonoExhausted
	}
	return 0, errorvalues.ErrBonoNotFound
}

func (br *BonosRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM client_bonos WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting bono error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBonoNotFound
	}
	return nil
}

func scanBono(row pgx.Row) (entity.Bono, error) {
	var b entity.Bono
	err := row.Scan(&b.ID, &b.ClientID, &b.BonoType, &b.SessionsTotal, &b.SessionsUsed,
		&b.StartDate, &b.ExpiryDate, &b.Notes, &b.CreatedAt)
	return b, err
}

func collectBonos(rows pgx.Rows) ([]entity.Bono, error) {
	defer rows.Close()
	bonos := make([]entity.Bono, 0)
	for rows.Next() {
		b, err := scanBono(rows)
		if err != nil {
			return nil, errors.New("unmarshalling bono error: " + err.Error())
		}
		bonos = append(bonos, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning bonos: " + err.Error())
	}
	return bonos, nil
}
