package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

type Profile struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	Role           Role      `json:"role"`
	HasTraining    bool      `json:"has_training"`
	TargetCalories *int      `json:"target_calories,omitempty"`
	TargetWeight   *float64  `json:"target_weight,omitempty"`
	CurrentWeight  *float64  `json:"current_weight,omitempty"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Session identifies the caller of a service operation.
type Session struct {
	UserID uuid.UUID
	Role   Role
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type MealType string

const (
	MealBreakfast  MealType = "breakfast"
	MealMidMorning MealType = "mid_morning"
	MealLunch      MealType = "lunch"
	MealSnack      MealType = "snack"
	MealDinner     MealType = "dinner"
)

// MealEntry is one meal of a weekday template. Nutrient values are optional,
// absent values count as zero in every aggregate.
type MealEntry struct {
	ID        uuid.UUID `json:"id"`
	MealType  MealType  `json:"meal_type"`
	Name      string    `json:"name"`
	TimeOfDay string    `json:"time,omitempty"`
	Calories  *float64  `json:"calories,omitempty"`
	Protein   *float64  `json:"protein,omitempty"`
	Carbs     *float64  `json:"carbs,omitempty"`
	Fat       *float64  `json:"fat,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// MealPlanDay holds the meals of one weekday. DaySlot is 0-based, Monday=0.
type MealPlanDay struct {
	ID       uuid.UUID   `json:"id"`
	ClientID uuid.UUID   `json:"client_id"`
	DaySlot  int         `json:"day_of_week"`
	Meals    []MealEntry `json:"meals"`
}

type Exercise struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Sets       int       `json:"sets"`
	Reps       string    `json:"reps"`
	Rest       string    `json:"rest,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	OrderIndex int       `json:"order_index"`
}

// WorkoutRoutine is the workout of one weekday. DaySlot is 1-based, Monday=1.
type WorkoutRoutine struct {
	ID        uuid.UUID  `json:"id"`
	ClientID  uuid.UUID  `json:"client_id"`
	DaySlot   int        `json:"day_of_week"`
	Name      string     `json:"name"`
	Duration  string     `json:"duration,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

type Bono struct {
	ID            uuid.UUID `json:"id"`
	ClientID      uuid.UUID `json:"client_id"`
	BonoType      string    `json:"bono_type"`
	SessionsTotal int       `json:"sessions_total"`
	SessionsUsed  int       `json:"sessions_used"`
	StartDate     time.Time `json:"start_date"`
	ExpiryDate    time.Time `json:"expiry_date"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TrainingSession is a recurring weekly slot with a trainer. DaySlot is 1-based, Monday=1.
type TrainingSession struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	DaySlot   int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Trainer   string    `json:"trainer"`
	Notes     string    `json:"notes,omitempty"`
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
