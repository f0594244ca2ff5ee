package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/httputil"
)

func (s *Server) GetRoutines(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get routines")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get routines")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routines, err := s.workoutsService.GetRoutines(ctx, sess, clientID)
	if err != nil {
		writeServiceError(w, logger, "get routines", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"client_id": clientID.String(),
		"routines":  routines,
	})
}

func (s *Server) UpsertRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "upsert routine")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "upsert routine")
	if !ok {
		return
	}
	slot, ok := pathSlot(w, r, "upsert routine")
	if !ok {
		return
	}
	var req service.RoutineRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "upsert routine", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	routine, err := s.workoutsService.UpsertRoutine(ctx, sess, clientID, slot, &req)
	if err != nil {
		writeServiceError(w, logger, "upsert routine", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, routine)
	logger.Info("routine saved", slog.String("client_id", clientID.String()), slog.Int("slot", slot))
}

func (s *Server) DeleteRoutine(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "delete routine")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "delete routine")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.workoutsService.DeleteRoutine(ctx, sess, id); err != nil {
		writeServiceError(w, logger, "delete routine", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("routine deleted", slog.String("routine_id", id.String()))
}

func (s *Server) GetDayWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get day workout")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get day workout")
	if !ok {
		return
	}
	date, err := s.queryDate(r)
	if err != nil {
		writeServiceError(w, logger, "get day workout", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	workout, err := s.workoutsService.DayWorkout(ctx, sess, clientID, date)
	if err != nil {
		writeServiceError(w, logger, "get day workout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
}
