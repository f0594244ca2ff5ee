package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/httputil"
)

func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get schedule")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get schedule")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	sessions, err := s.scheduleService.List(ctx, sess, clientID)
	if err != nil {
		writeServiceError(w, logger, "get schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"client_id": clientID.String(),
		"sessions":  sessions,
	})
}

func (s *Server) UpsertTrainingSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "upsert training session")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "upsert training session")
	if !ok {
		return
	}
	var req service.TrainingSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "upsert training session", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.scheduleService.Upsert(ctx, sess, clientID, &req)
	if err != nil {
		writeServiceError(w, logger, "upsert training session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("training session saved", slog.String("client_id", clientID.String()), slog.Int("slot", session.DaySlot))
}

func (s *Server) DeleteTrainingSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "delete training session")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "delete training session")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.scheduleService.Delete(ctx, sess, id); err != nil {
		writeServiceError(w, logger, "delete training session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("training session deleted", slog.String("session_id", id.String()))
}
