package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/limbo/coachplan/pkg/httputil"
)

func (s *Server) GetMonth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get month")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get month")
	if !ok {
		return
	}
	year, month, err := s.queryMonth(r)
	if err != nil {
		writeServiceError(w, logger, "get month", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.calendarService.Month(ctx, sess, clientID, year, month)
	if err != nil {
		writeServiceError(w, logger, "get month", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "export calendar")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "export calendar")
	if !ok {
		return
	}
	year, month, err := s.queryMonth(r)
	if err != nil {
		writeServiceError(w, logger, "export calendar", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := s.calendarService.ExportICS(ctx, sess, clientID, year, month)
	if err != nil {
		writeServiceError(w, logger, "export calendar", err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="coachplan-%04d-%02d.ics"`, year, int(month)))
	httputil.WriteRawResponse(w, http.StatusOK, "text/calendar; charset=utf-8", data)
	logger.Info("calendar exported", slog.String("client_id", clientID.String()))
}
