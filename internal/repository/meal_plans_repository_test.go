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
	"github.com/stretchr/testify/require"
)

var (
	clientID = uuid.New()
	mealCols = []string{"id", "meal_plan_id", "meal_type", "name", "time",
		"calories", "protein", "carbs", "fat", "notes"}
)

func fptr(v float64) *float64 {
	return &v
}

func TestGetMealPlansByClient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMealPlansRepo(mock)
	ctx := context.Background()
	plansQuery := regexp.QuoteMeta(`SELECT id, day_of_week FROM meal_plans WHERE client_id = $1 ORDER BY day_of_week;`)
	mealsQuery := regexp.QuoteMeta(`FROM meals m JOIN meal_plans p ON p.id = m.meal_plan_id WHERE p.client_id = $1;`)
	monday, friday := uuid.New(), uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(plansQuery).WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "day_of_week"}).
				AddRow(monday, 0).
				AddRow(friday, 4))
		breakfast, lunch, dinner := uuid.New(), uuid.New(), uuid.New()
		mock.ExpectQuery(mealsQuery).WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows(mealCols).
				AddRow(lunch, monday, "lunch", "Rice and chicken", "14:00", fptr(600), fptr(45), fptr(70), fptr(12), "").
				AddRow(breakfast, monday, "breakfast", "Oats", "08:00", fptr(400), nil, nil, nil, "with fruit").
				AddRow(dinner, friday, "dinner", "Salmon", "", fptr(550), fptr(38), nil, fptr(25), ""))
		plans, err := repo.GetByClient(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, 0, plans[0].DaySlot)
		assert.Equal(t, clientID, plans[0].ClientID)
		require.Len(t, plans[0].Meals, 2)
		assert.Equal(t, entity.MealLunch, plans[0].Meals[0].MealType)
		assert.Equal(t, 600.0, *plans[0].Meals[0].Calories)
		assert.Nil(t, plans[0].Meals[1].Protein)
		assert.Equal(t, "with fruit", plans[0].Meals[1].Notes)
		assert.Equal(t, 4, plans[1].DaySlot)
		require.Len(t, plans[1].Meals, 1)
		assert.Equal(t, entity.MealDinner, plans[1].Meals[0].MealType)
	})
	t.Run("no plans skips meals query", func(t *testing.T) {
		mock.ExpectQuery(plansQuery).WithArgs(clientID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "day_of_week"}))
		plans, err := repo.GetByClient(ctx, clientID)
		assert.NoError(t, err)
		assert.Empty(t, plans)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(plansQuery).WithArgs(clientID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByClient(ctx, clientID)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMealPlan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMealPlansRepo(mock)
	ctx := context.Background()
	planQuery := regexp.QuoteMeta(`INSERT INTO meal_plans (client_id, day_of_week) VALUES ($1, $2)`)
	pruneQuery := regexp.QuoteMeta(`DELETE FROM meals WHERE meal_plan_id = $1 AND NOT (meal_type = ANY($2));`)
	mealQuery := regexp.QuoteMeta(`INSERT INTO meals (meal_plan_id, meal_type, name, time, calories, protein, carbs, fat, notes)`)
	meals := []entity.MealEntry{
		{MealType: entity.MealBreakfast, Name: "Oats", TimeOfDay: "08:00", Calories: fptr(400)},
		{MealType: entity.MealDinner, Name: "Salmon", Calories: fptr(550), Fat: fptr(25)},
	}
	planID := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(planQuery).WithArgs(clientID, 2).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(planID))
		mock.ExpectExec(pruneQuery).WithArgs(planID, []string{"breakfast", "dinner"}).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		for _, m := range meals {
			mock.ExpectExec(mealQuery).
				WithArgs(planID, string(m.MealType), m.Name, m.TimeOfDay, m.Calories, m.Protein, m.Carbs, m.Fat, m.Notes).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()
		id, err := repo.Upsert(ctx, clientID, 2, meals)
		assert.NoError(t, err)
		assert.Equal(t, planID, id)
	})
	t.Run("unknown client", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(planQuery).WithArgs(clientID, 2).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		mock.ExpectRollback()
		_, err := repo.Upsert(ctx, clientID, 2, meals)
		assert.ErrorIs(t, err, errorvalues.ErrClientNotFound)
	})
	t.Run("meal insert error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(planQuery).WithArgs(clientID, 2).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(planID))
		mock.ExpectExec(pruneQuery).WithArgs(planID, []string{"breakfast", "dinner"}).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec(mealQuery).WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.Upsert(ctx, clientID, 2, meals)
		assert.Error(t, err)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.Upsert(ctx, clientID, 2, meals)
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
