package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/pkg/httputil"
)

func (s *Server) GetMealPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get meal plans")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get meal plans")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	plans, err := s.plansService.GetMealPlans(ctx, sess, clientID)
	if err != nil {
		writeServiceError(w, logger, "get meal plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"client_id": clientID.String(),
		"days":      plans,
	})
}

func (s *Server) UpsertMealPlanDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "upsert meal plan")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "upsert meal plan")
	if !ok {
		return
	}
	slot, ok := pathSlot(w, r, "upsert meal plan")
	if !ok {
		return
	}
	var req service.MealPlanDayRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, r, "upsert meal plan", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	day, err := s.plansService.UpsertMealPlanDay(ctx, sess, clientID, slot, &req)
	if err != nil {
		writeServiceError(w, logger, "upsert meal plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("meal plan day saved", slog.String("client_id", clientID.String()), slog.Int("slot", slot))
}

func (s *Server) GetDayMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get day meals")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get day meals")
	if !ok {
		return
	}
	date, err := s.queryDate(r)
	if err != nil {
		writeServiceError(w, logger, "get day meals", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meals, err := s.plansService.DayMeals(ctx, sess, clientID, date)
	if err != nil {
		writeServiceError(w, logger, "get day meals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meals)
}

func (s *Server) GetWeekOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get week overview")
	if !ok {
		return
	}
	clientID, ok := pathUUID(w, r, "id", "get week overview")
	if !ok {
		return
	}
	date, err := s.queryDate(r)
	if err != nil {
		writeServiceError(w, logger, "get week overview", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	week, err := s.plansService.WeekOverview(ctx, sess, clientID, date)
	if err != nil {
		writeServiceError(w, logger, "get week overview", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week)
}
