package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/httputil"
)

func (s *Server) GetBonos(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get bonos")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get bonos")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	bonos, err := s.bonosService.List(ctx, sess, clientID)
	if err != nil {
		writeServiceError(w, logger, "get bonos", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"client_id": clientID.String(),
		"bonos":     bonos,
	})
}

func (s *Server) CreateBono(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "create bono")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "create bono")
	if !ok {
		return
	}
	var req service.BonoRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "create bono", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	bono, err := s.bonosService.Create(ctx, sess, clientID, &req)
	if err != nil {
		writeServiceError(w, logger, "create bono", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, bono)
	logger.Info("bono created", slog.String("bono_id", bono.ID.String()))
}

func (s *Server) UpdateBono(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "update bono")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "update bono")
	if !ok {
		return
	}
	var req service.UpdateBonoRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "update bono", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	bono, err := s.bonosService.Update(ctx, sess, id, &req)
	if err != nil {
		writeServiceError(w, logger, "update bono", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, bono)
	logger.Info("bono updated", slog.String("bono_id", id.String()))
}

func (s *Server) DeleteBono(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "delete bono")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "delete bono")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.bonosService.Delete(ctx, sess, id); err != nil {
		writeServiceError(w, logger, "delete bono", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("bono deleted", slog.String("bono_id", id.String()))
}

func (s *Server) RecordBonoSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "record bono session")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "record bono session")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	bono, err := s.bonosService.RecordSession(ctx, sess, id)
	if err != nil {
		writeServiceError(w, logger, "record bono session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, bono)
	logger.Info("bono session recorded", slog.String("bono_id", id.String()), slog.Int("sessions_left", bono.Status.SessionsLeft))
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get dashboard")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	dashboard, err := s.bonosService.Dashboard(ctx, sess)
	if err != nil {
		writeServiceError(w, logger, "get dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}
