package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/httputil"
)

func (s *Server) ListClients(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "list clients")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	clients, err := s.clientsService.ListClients(ctx, sess)
	if err != nil {
		writeServiceError(w, logger, "list clients", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"clients": clients,
	})
}

func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "create client")
	if !ok {
		return
	}
	var req service.CreateClientRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "create client", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	client, err := s.clientsService.CreateClient(ctx, sess, &req)
	if err != nil {
		writeServiceError(w, logger, "create client", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, client)
	logger.Info("client created", slog.String("client_id", client.ID.String()))
}

func (s *Server) GetClient(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get client")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "get client")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	client, err := s.clientsService.GetClient(ctx, sess, id)
	if err != nil {
		writeServiceError(w, logger, "get client", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, client)
}

func (s *Server) UpdateClient(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "update client")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id", "update client")
	if !ok {
		return
	}
	var req service.UpdateClientRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "update client", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	client, err := s.clientsService.UpdateClient(ctx, sess, id, &req)
	if err != nil {
		writeServiceError(w, logger, "update client", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, client)
	logger.Info("client updated", slog.String("client_id", id.String()))
}
