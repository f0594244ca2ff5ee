package service

import (
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const clockLayout = "15:04"

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("meal_type", func(fl validator.FieldLevel) bool {
			return projection.KnownMealType(entity.MealType(fl.Field().String()))
		})
		// HH:MM, 24h
		validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(clockLayout, fl.Field().String())
			return err == nil
		})
	})
}

// validateRequest checks req against its struct tags. Field errors are joined
// behind ErrValidation.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
