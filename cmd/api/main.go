// @title Coachplan API
// @description API for coaching app: meal plans, workouts, bonos and training schedule
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/coachplan/internal/api"
	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/internal/service"
	"github.com/limbo/coachplan/internal/snapshot"
	"github.com/limbo/coachplan/pkg/cleanup"
	"github.com/limbo/coachplan/pkg/config"
	jwtservice "github.com/limbo/coachplan/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	if cfg.GetInt("MIGRATE_ON_START", 0) == 1 {
		err := repository.Migrate("up", &dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", repository.DefaultMigrationsDir))
		if err != nil {
			log.Fatal(err)
		}
	}
	pool := repository.NewPool(&dbCfg)

	jwtSecret := cfg.GetString("JWT_SECRET")
	if err := jwtservice.CheckSecret(jwtSecret); err != nil {
		log.Fatal("JWT_SECRET: " + err.Error())
	}

	loc := cfg.Location("TIMEZONE")
	clock := func() time.Time { return time.Now().In(loc) }

	profilesRepo := repository.NewProfilesRepo(pool)
	mealsRepo := repository.NewMealPlansRepo(pool)
	routinesRepo := repository.NewWorkoutRoutinesRepo(pool)
	bonosRepo := repository.NewBonosRepo(pool)
	scheduleRepo := repository.NewTrainingScheduleRepo(pool)
	loader := snapshot.NewLoader(mealsRepo, routinesRepo, bonosRepo, scheduleRepo)

	authService := service.NewAuthService(profilesRepo)
	if email := cfg.GetString("ADMIN_EMAIL"); email != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err := authService.EnsureAdmin(ctx, email, cfg.GetString("ADMIN_PASSWORD"), cfg.GetStringOr("ADMIN_NAME", "Admin"))
		cancel()
		if err != nil {
			log.Fatal("seeding admin error: " + err.Error())
		}
	}

	serv := api.New(&api.ServicesList{
		AuthService:     authService,
		ClientsService:  service.NewClientsService(profilesRepo),
		PlansService:    service.NewPlansService(mealsRepo, loader, clock),
		WorkoutsService: service.NewWorkoutsService(routinesRepo, loader),
		BonosService:    service.NewBonosService(bonosRepo, profilesRepo, loader, clock),
		ScheduleService: service.NewScheduleService(scheduleRepo, loader),
		CalendarService: service.NewCalendarService(loader, clock),
		JwtService:      jwtservice.New(jwtSecret, cfg.GetDuration("JWT_TTL", 0)),
		Clock:           clock,
		RateLimitRPS:    cfg.GetInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  cfg.GetInt("RATE_LIMIT_BURST", 40),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
