package service

import (
	"time"

	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/pkg/entity"
)

type CreateClientRequest struct {
	Email          string   `json:"email" validate:"required,email,max=254"`
	FullName       string   `json:"full_name" validate:"required,min=2,max=200"`
	Phone          string   `json:"phone" validate:"omitempty,max=30"`
	Password       string   `json:"password" validate:"required,min=8,max=72"`
	HasTraining    bool     `json:"has_training"`
	TargetCalories *int     `json:"target_calories" validate:"omitempty,min=0,max=10000"`
	TargetWeight   *float64 `json:"target_weight" validate:"omitempty,gt=0,lt=500"`
	CurrentWeight  *float64 `json:"current_weight" validate:"omitempty,gt=0,lt=500"`
}

// UpdateClientRequest changes only the fields that are set.
type UpdateClientRequest struct {
	FullName       *string  `json:"full_name" validate:"omitempty,min=2,max=200"`
	Phone          *string  `json:"phone" validate:"omitempty,max=30"`
	HasTraining    *bool    `json:"has_training"`
	TargetCalories *int     `json:"target_calories" validate:"omitempty,min=0,max=10000"`
	TargetWeight   *float64 `json:"target_weight" validate:"omitempty,gt=0,lt=500"`
	CurrentWeight  *float64 `json:"current_weight" validate:"omitempty,gt=0,lt=500"`
}

type MealRequest struct {
	MealType string   `json:"meal_type" validate:"required,meal_type"`
	Name     string   `json:"name" validate:"required,max=200"`
	Time     string   `json:"time" validate:"omitempty,clock"`
	Calories *float64 `json:"calories" validate:"omitempty,min=0"`
	Protein  *float64 `json:"protein" validate:"omitempty,min=0"`
	Carbs    *float64 `json:"carbs" validate:"omitempty,min=0"`
	Fat      *float64 `json:"fat" validate:"omitempty,min=0"`
	Notes    string   `json:"notes" validate:"max=1000"`
}

// MealPlanDayRequest replaces every meal of one weekday.
type MealPlanDayRequest struct {
	Meals []MealRequest `json:"meals" validate:"max=5,dive"`
}

type ExerciseRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Sets  int    `json:"sets" validate:"min=0,max=100"`
	Reps  string `json:"reps" validate:"max=50"`
	Rest  string `json:"rest" validate:"max=50"`
	Notes string `json:"notes" validate:"max=1000"`
}

// RoutineRequest replaces the routine of one weekday. Exercises keep the
// request order.
type RoutineRequest struct {
	Name      string            `json:"name" validate:"required,max=200"`
	Duration  string            `json:"duration" validate:"max=50"`
	Exercises []ExerciseRequest `json:"exercises" validate:"max=50,dive"`
}

type BonoRequest struct {
	BonoType      string `json:"bono_type" validate:"required,max=100"`
	SessionsTotal int    `json:"sessions_total" validate:"min=1,max=1000"`
	SessionsUsed  int    `json:"sessions_used" validate:"min=0"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate    string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Notes         string `json:"notes" validate:"max=1000"`
}

type UpdateBonoRequest struct {
	BonoType      *string `json:"bono_type" validate:"omitempty,max=100"`
	SessionsTotal *int    `json:"sessions_total" validate:"omitempty,min=1,max=1000"`
	SessionsUsed  *int    `json:"sessions_used" validate:"omitempty,min=0"`
	StartDate     *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate    *string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes" validate:"omitempty,max=1000"`
}

type TrainingSessionRequest struct {
	DaySlot   int    `json:"day_of_week" validate:"min=1,max=7"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Trainer   string `json:"trainer" validate:"max=100"`
	Notes     string `json:"notes" validate:"max=1000"`
}

type DayMeals struct {
	Date    time.Time          `json:"date"`
	Weekday projection.Weekday `json:"weekday"`
	Meals   []entity.MealEntry `json:"meals"`
	Totals  entity.MacroTotals `json:"totals"`
}

type WeekDay struct {
	Date       time.Time          `json:"date"`
	Weekday    projection.Weekday `json:"weekday"`
	Totals     entity.MacroTotals `json:"totals"`
	HasMeals   bool               `json:"has_meals"`
	HasWorkout bool               `json:"has_workout"`
	IsToday    bool               `json:"is_today"`
}

type WeekOverview struct {
	Days    [7]WeekDay         `json:"days"`
	Average entity.MacroTotals `json:"average"`
}

type BonoView struct {
	entity.Bono
	Status projection.BonoStatus `json:"status"`
}

type Dashboard struct {
	TotalClients int `json:"total_clients"`
	ActiveBonos  int `json:"active_bonos"`
	ExpiringSoon int `json:"expiring_soon"`
}

type DayMarker struct {
	Date       time.Time `json:"date"`
	InMonth    bool      `json:"in_month"`
	IsToday    bool      `json:"is_today"`
	HasWorkout bool      `json:"has_workout"`
	HasMeals   bool      `json:"has_meals"`
	Sessions   int       `json:"sessions"`
}

type MonthView struct {
	Year  int         `json:"year"`
	Month time.Month  `json:"month"`
	Cells []DayMarker `json:"cells"`
}
