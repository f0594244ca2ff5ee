package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/coachplan/internal/error_values"
	"github.com/limbo/coachplan/internal/projection"
	"github.com/limbo/coachplan/pkg/entity"
	"github.com/limbo/coachplan/pkg/httputil"
)

const requestTimeout = time.Second * 10

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string      `json:"uid"`
	Role   entity.Role `json:"role"`
	Token  string      `json:"token"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(profile)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		UserID: profile.ID.String(),
		Role:   profile.Role,
		Token:  token,
	})
	logger.Info("successful login", slog.String("uid", profile.ID.String()))
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	sess, ok := requireSession(w, r, "get me")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.authService.GetByID(ctx, sess.UserID)
	if err != nil {
		writeServiceError(w, logger, "get me", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

// requireSession writes 401 when the request carries no session.
func requireSession(w http.ResponseWriter, r *http.Request, op string) (entity.Session, bool) {
	sess, err := GetSessionFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return entity.Session{}, false
	}
	return sess, true
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
}

// pathUUID reads the uuid path parameter, writing 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid " + name)
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+name+" parameter", nil)
		return uuid.Nil, false
	}
	return id, true
}

func pathSlot(w http.ResponseWriter, r *http.Request, op string) (int, bool) {
	slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error(op + " error: invalid slot")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid slot parameter", nil)
		return 0, false
	}
	return slot, true
}

// queryDate reads ?date=YYYY-MM-DD. Missing date means today.
func (s *Server) queryDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return projection.DateOnly(s.clock()), nil
	}
	return projection.ParseDate(raw)
}

// queryMonth reads ?year=&month=. Missing values fall back to the current
// month.
func (s *Server) queryMonth(r *http.Request) (int, time.Month, error) {
	now := s.clock()
	year, month := now.Year(), now.Month()
	q := r.URL.Query()
	if raw := q.Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: year %q", errorvalues.ErrInvalidDate, raw)
		}
		year = v
	}
	if raw := q.Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: month %q", errorvalues.ErrInvalidDate, raw)
		}
		month = time.Month(v)
	}
	if month < time.January || month > time.December {
		return 0, 0, fmt.Errorf("%w: month %d", errorvalues.ErrInvalidDate, month)
	}
	return year, month, nil
}

func writeBadBody(w http.ResponseWriter, r *http.Request, op string, err error) {
	GetLoggerFromCtx(r.Context()).Error(op+" error: invalid body", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
}
