package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("user with such email already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrForbidden        = errors.New("not allowed for this account")

	ErrClientNotFound   = errors.New("client doesn't exist")
	ErrRoutineNotFound  = errors.New("workout routine doesn't exist")
	ErrBonoNotFound     = errors.New("bono doesn't exist")
	ErrScheduleNotFound = errors.New("training session doesn't exist")

	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidSlot   = errors.New("invalid weekday slot")
	ErrValidation    = errors.New("validation error")
	ErrDuplicateMeal = errors.New("meal type repeated for the same day")
	ErrBonoExhausted = errors.New("no sessions left on bono")
	ErrStaleLoad     = errors.New("load superseded by a newer one")
)
