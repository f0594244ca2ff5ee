package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/entity"
)

type PlansService struct {
	repo   repository.MealPlansRepositoryI
	loader SnapshotLoaderI
	now    Clock
}

func NewPlansService(mealsRepo repository.MealPlansRepositoryI, loader SnapshotLoaderI, clock Clock) *PlansService {
	if mealsRepo == nil || loader == nil {
		log.Fatal("on plans service provided nil dependencies")
	}
	return &PlansService{
		repo:   mealsRepo,
		loader: loader,
		now:    orNow(clock),
	}
}

func (ps *PlansService) GetMealPlans(ctx context.Context, sess entity.Session, clientID uuid.UUID) ([]entity.MealPlanDay, error) {
	snap, err := clientSnapshot(ctx, ps.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	return snap.Meals, nil
}

func (ps *PlansService) UpsertMealPlanDay(ctx context.Context, sess entity.Session, clientID uuid.UUID, slot int, req *MealPlanDayRequest) (*entity.MealPlanDay, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := projection.WeekdayFromMealSlot(slot); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	seen := make(map[entity.MealType]bool, len(req.Meals))
	meals := make([]entity.MealEntry, 0, len(req.Meals))
	for _, m := range req.Meals {
		mt := entity.MealType(m.MealType)
		if seen[mt] {
			return nil, fmt.Errorf("%w: %s", errorvalues.ErrDuplicateMeal, mt)
		}
		seen[mt] = true
		meals = append(meals, entity.MealEntry{
			MealType:  mt,
			Name:      m.Name,
			TimeOfDay: m.Time,
			Calories:  m.Calories,
			Protein:   m.Protein,
			Carbs:     m.Carbs,
			Fat:       m.Fat,
			Notes:     m.Notes,
		})
	}
	id, err := ps.repo.Upsert(ctx, clientID, slot, meals)
	if err != nil {
		return nil, repoError("meal plans", err)
	}
	ps.loader.Invalidate(clientID)
	return &entity.MealPlanDay{
		ID:       id,
		ClientID: clientID,
		DaySlot:  slot,
		Meals:    projection.SortMeals(meals),
	}, nil
}

func (ps *PlansService) DayMeals(ctx context.Context, sess entity.Session, clientID uuid.UUID, date time.Time) (*DayMeals, error) {
	snap, err := clientSnapshot(ctx, ps.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	day := projection.WeekdayOf(date)
	meals := projection.MealsForWeekday(day, snap.Meals)
	return &DayMeals{
		Date:    projection.DateOnly(date),
		Weekday: day,
		Meals:   meals,
		Totals:  projection.DailyTotals(meals),
	}, nil
}

func (ps *PlansService) WeekOverview(ctx context.Context, sess entity.Session, clientID uuid.UUID, date time.Time) (*WeekOverview, error) {
	snap, err := clientSnapshot(ctx, ps.loader, sess, clientID)
	if err != nil {
		return nil, err
	}
	today := ps.now()
	totals := projection.WeeklyTotals(snap.Meals)
	overview := &WeekOverview{
		Average: projection.WeekAverage(snap.Meals),
	}
	for i, d := range projection.WeekOf(date) {
		day := projection.WeekdayOf(d)
		overview.Days[i] = WeekDay{
			Date:       d,
			Weekday:    day,
			Totals:     totals[day.MealSlot()],
			HasMeals:   projection.HasMeals(day, snap.Meals),
			HasWorkout: projection.HasWorkout(d, snap.Workouts),
			IsToday:    projection.SameDate(d, today),
		}
	}
	return overview, nil
}
