package main

import (
	"log"
	"os"

	"github.com/limbo/coachplan/internal/repository"
	"github.com/limbo/coachplan/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: go run ./cmd/migrate [up|status|down]")
	}

	command := os.Args[1]
	switch command {
	case "up", "status", "down":
	default:
		log.Fatalf("unsupported command %q (allowed: up, status, down)", command)
	}

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	dir := cfg.GetStringOr("MIGRATIONS_DIR", repository.DefaultMigrationsDir)
	log.Printf("migrate: command=%s dir=%s", command, dir)

	if err := repository.Migrate(command, &dbCfg, dir); err != nil {
		log.Fatal(err)
	}

	log.Printf("migrate: %s completed successfully", command)
}
