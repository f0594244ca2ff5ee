package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/pkg/entity"
)

const profileColumns = `id, email, full_name, COALESCE(phone, ''), role, has_training,
		target_calories, target_weight, current_weight, password_hash, created_at`

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(conn PgConnection) *ProfilesRepository {
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO profiles (email, full_name, phone, role, has_training, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
		profile.Email,
		profile.FullName,
		profile.Phone,
		string(profile.Role),
		profile.HasTraining,
		profile.PasswordHash,
	)
	if err := row.Scan(&profile.ID, &profile.CreatedAt); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating profile db error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1;`, email)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching profile by email error: " + err.Error())
	}
	return profile, nil
}

func (pr *ProfilesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1;`, id)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching profile by id error: " + err.Error())
	}
	return profile, nil
}

func (pr *ProfilesRepository) ListClients(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE role = $1 ORDER BY created_at DESC;`,
		string(entity.RoleClient))
	if err != nil {
		return nil, errors.New("listing clients error: " + err.Error())
	}
	defer rows.Close()
	profiles := make([]*entity.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, errors.New("unmarshalling profile error: " + err.Error())
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning profiles: " + err.Error())
	}
	return profiles, nil
}

func (pr *ProfilesRepository) CountClients(ctx context.Context) (int, error) {
	var count int
	row := pr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE role = $1;`, string(entity.RoleClient))
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting clients error: " + err.Error())
	}
	return count, nil
}

func (pr *ProfilesRepository) Update(ctx context.Context, profile *entity.Profile) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET full_name = $1, phone = $2, has_training = $3,
		target_calories = $4, target_weight = $5, current_weight = $6 WHERE id = $7;`,
		profile.FullName,
		profile.Phone,
		profile.HasTraining,
		profile.TargetCalories,
		profile.TargetWeight,
		profile.CurrentWeight,
		profile.ID,
	)
	if err != nil {
		return errors.New("updating profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var (
		p    entity.Profile
		role string
	)
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &role, &p.HasTraining,
		&p.TargetCalories, &p.TargetWeight, &p.CurrentWeight, &p.PasswordHash, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Role = entity.Role(role)
	return &p, nil
}
