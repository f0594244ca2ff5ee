package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/pkg/entity"
)

type MealPlansRepository struct {
	conn PgConnection
}

func NewMealPlansRepo(conn PgConnection) *MealPlansRepository {
	return &MealPlansRepository{
		conn: conn,
	}
}

func (mr *MealPlansRepository) GetByClient(ctx context.Context, clientID uuid.UUID) ([]entity.MealPlanDay, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, day_of_week FROM meal_plans WHERE client_id = $1 ORDER BY day_of_week;`, clientID)
	if err != nil {
		return nil, errors.New("getting meal plans error: " + err.Error())
	}
	plans := make([]entity.MealPlanDay, 0, 7)
	index := make(map[uuid.UUID]int, 7)
	for rows.Next() {
		p := entity.MealPlanDay{ClientID: clientID, Meals: []entity.MealEntry{}}
		if err := rows.Scan(&p.ID, &p.DaySlot); err != nil {
			rows.Close()
			return nil, errors.New("unmarshalling meal plan error: " + err.Error())
		}
		index[p.ID] = len(plans)
		plans = append(plans, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning meal plans: " + err.Error())
	}
	if len(plans) == 0 {
		return plans, nil
	}

	rows, err = mr.conn.Query(ctx, `SELECT m.id, m.meal_plan_id, m.meal_type, m.name, COALESCE(m.time, ''),
		m.calories, m.protein, m.carbs, m.fat, COALESCE(m.notes, '')
		FROM meals m JOIN meal_plans p ON p.id = m.meal_plan_id WHERE p.client_id = $1;`, clientID)
	if err != nil {
		return nil, errors.New("getting meals error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			m        entity.MealEntry
			planID   uuid.UUID
			mealType string
		)
		err := rows.Scan(&m.ID, &planID, &mealType, &m.Name, &m.TimeOfDay,
			&m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.Notes)
		if err != nil {
			return nil, errors.New("unmarshalling meal error: " + err.Error())
		}
		m.MealType = entity.MealType(mealType)
		i, ok := index[planID]
		if !ok {
			continue
		}
		plans[i].Meals = append(plans[i].Meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning meals: " + err.Error())
	}
	return plans, nil
}

// Upsert makes meals the complete content of the weekday: listed meal types
// are inserted or updated in place, other meal types of that day are removed.
func (mr *MealPlansRepository) Upsert(ctx context.Context, clientID uuid.UUID, daySlot int, meals []entity.MealEntry) (planID uuid.UUID, err error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return uuid.Nil, errors.New("starting transaction error: " + err.Error())
	}
	defer rollback(ctx, tx, &err)

	row := tx.QueryRow(ctx, `INSERT INTO meal_plans (client_id, day_of_week) VALUES ($1, $2)
		ON CONFLICT (client_id, day_of_week) DO UPDATE SET updated_at = NOW() RETURNING id;`,
		clientID, daySlot)
	if err = row.Scan(&planID); err != nil {
		if pgErrorCode(err) == pgFKViolation {
			err = errorvalues.ErrClientNotFound
			return uuid.Nil, err
		}
		err = errors.New("upserting meal plan error: " + err.Error())
		return uuid.Nil, err
	}

	types := make([]string, 0, len(meals))
	for _, m := range meals {
		types = append(types, string(m.MealType))
	}
	_, err = tx.Exec(ctx, `DELETE FROM meals WHERE meal_plan_id = $1 AND NOT (meal_type = ANY($2));`, planID, types)
	if err != nil {
		err = errors.New("removing dropped meals error: " + err.Error())
		return uuid.Nil, err
	}
	for _, m := range meals {
		_, err = tx.Exec(ctx, `INSERT INTO meals (meal_plan_id, meal_type, name, time, calories, protein, carbs, fat, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (meal_plan_id, meal_type) DO UPDATE SET name = EXCLUDED.name, time = EXCLUDED.time,
		calories = EXCLUDED.calories, protein = EXCLUDED.protein, carbs = EXCLUDED.carbs,
		fat = EXCLUDED.fat, notes = EXCLUDED.notes;`,
			planID, string(m.MealType), m.Name, m.TimeOfDay, m.Calories, m.Protein, m.Carbs, m.Fat, m.Notes,
		)
		if err != nil {
			err = errors.New("upserting meal error: " + err.Error())
			return uuid.Nil, err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		err = errors.New("committing meal plan error: " + err.Error())
		return uuid.Nil, err
	}
	return planID, nil
}
