package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/coachplan/internal/service"
)

type Server struct {
	mx              *chi.Mux
	authService     service.AuthServiceI
	clientsService  service.ClientsServiceI
	plansService    service.PlansServiceI
	workoutsService service.WorkoutsServiceI
	bonosService    service.BonosServiceI
	scheduleService service.ScheduleServiceI
	calendarService service.CalendarServiceI
	jwtService      JWTServiceI
	limiter         *rateLimiterStore
	clock           service.Clock
}

type ServicesList struct {
	AuthService     service.AuthServiceI
	ClientsService  service.ClientsServiceI
	PlansService    service.PlansServiceI
	WorkoutsService service.WorkoutsServiceI
	BonosService    service.BonosServiceI
	ScheduleService service.ScheduleServiceI
	CalendarService service.CalendarServiceI
	JwtService      JWTServiceI
	// Source of "today" for requests without explicit date. Defaults to time.Now
	Clock service.Clock
	// Requests per second allowed from one IP. Zero disables limiting
	RateLimitRPS   int
	RateLimitBurst int
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		authService:     servicesOptions.AuthService,
		clientsService:  servicesOptions.ClientsService,
		plansService:    servicesOptions.PlansService,
		workoutsService: servicesOptions.WorkoutsService,
		bonosService:    servicesOptions.BonosService,
		scheduleService: servicesOptions.ScheduleService,
		calendarService: servicesOptions.CalendarService,
		jwtService:      servicesOptions.JwtService,
		clock:           servicesOptions.Clock,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if servicesOptions.RateLimitRPS > 0 {
		s.limiter = newRateLimiterStore(servicesOptions.RateLimitRPS, servicesOptions.RateLimitBurst)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.RateLimitMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/me", s.Me)
			r.Get("/clients/{id}", s.GetClient)
			r.Get("/clients/{id}/meal-plans", s.GetMealPlans)
			r.Get("/clients/{id}/meals", s.GetDayMeals)
			r.Get("/clients/{id}/week", s.GetWeekOverview)
			r.Get("/clients/{id}/workouts", s.GetRoutines)
			r.Get("/clients/{id}/workout", s.GetDayWorkout)
			r.Get("/clients/{id}/calendar", s.GetMonth)
			r.Get("/clients/{id}/calendar.ics", s.ExportCalendar)
			r.Get("/clients/{id}/bonos", s.GetBonos)
			r.Get("/clients/{id}/schedule", s.GetSchedule)

			r.Group(func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)
				r.Get("/clients", s.ListClients)
				r.Post("/clients", s.CreateClient)
				r.Patch("/clients/{id}", s.UpdateClient)
				r.Put("/clients/{id}/meal-plans/{slot}", s.UpsertMealPlanDay)
				r.Put("/clients/{id}/workouts/{slot}", s.UpsertRoutine)
				r.Delete("/workouts/{id}", s.DeleteRoutine)
				r.Post("/clients/{id}/bonos", s.CreateBono)
				r.Patch("/bonos/{id}", s.UpdateBono)
				r.Delete("/bonos/{id}", s.DeleteBono)
				r.Post("/bonos/{id}/sessions", s.RecordBonoSession)
				r.Put("/clients/{id}/schedule", s.UpsertTrainingSession)
				r.Delete("/schedule/{id}", s.DeleteTrainingSession)
				r.Get("/dashboard", s.GetDashboard)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
