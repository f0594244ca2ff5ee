package repository

import (
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const DefaultMigrationsDir = "migrations"

// Migrate runs a goose command (up, down, status, ...) against the database
// described by cfg using the SQL files in dir.
func Migrate(command string, cfg DBConfig, dir string) error {
	if dir == "" {
		dir = DefaultMigrationsDir
	}
	db, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		return errors.New("opening database error: " + err.Error())
	}
	defer db.Close()
	if err = db.Ping(); err != nil {
		return errors.New("pinging database error: " + err.Error())
	}
	if err = goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err = goose.Run(command, db, dir); err != nil {
		return errors.New("goose " + command + " error: " + err.Error())
	}
	return nil
}
