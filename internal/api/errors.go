package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/pkg/httputil"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{errorvalues.ErrValidation, http.StatusBadRequest, "invalid request data"},
	{errorvalues.ErrInvalidDate, http.StatusBadRequest, "invalid date"},
	{errorvalues.ErrInvalidSlot, http.StatusBadRequest, "invalid day slot"},
	{errorvalues.ErrDuplicateMeal, http.StatusBadRequest, "meal type repeated within a day"},
	{errorvalues.ErrWrongCredentials, http.StatusUnauthorized, "invalid email or password"},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
	{errorvalues.ErrForbidden, http.StatusForbidden, "not allowed for this account"},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{errorvalues.ErrClientNotFound, http.StatusNotFound, "client not found"},
	{errorvalues.ErrRoutineNotFound, http.StatusNotFound, "routine not found"},
	{errorvalues.ErrBonoNotFound, http.StatusNotFound, "bono not found"},
	{errorvalues.ErrScheduleNotFound, http.StatusNotFound, "training session not found"},
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such email already exists"},
	{errorvalues.ErrBonoExhausted, http.StatusConflict, "bono has no sessions left"},
	{errorvalues.ErrStaleLoad, http.StatusConflict, "client data changed, retry"},
}

// writeServiceError logs err under op and writes the matching status. Client
// errors carry the error text in details, internal ones don't.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			logger.Error(op+" error: "+m.message, slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, m.status, m.message, err)
			return
		}
	}
	logger.Error(op+" error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
}
