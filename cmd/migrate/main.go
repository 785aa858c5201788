package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"vismify/internal/config"
	"vismify/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "Migration command: up, down, down-to, status, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	migrationsDir := flag.String("dir", "migrations", "Directory holding goose migrations")
	flag.Parse()

	cfg := config.Load()

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck
	sugar := lg.Sugar()

	db, err := open(cfg, *command == "up")
	if err != nil {
		sugar.Fatalw("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		sugar.Fatalw("failed to set dialect", zap.Error(err))
	}

	if err := run(db, *command, *migrationsDir, *name, *targetVersion); err != nil {
		sugar.Fatalw("migration failed", "command", *command, zap.Error(err))
	}
	sugar.Infow("migration finished", "command", *command)
}

func run(db *sql.DB, command, dir, name string, version int64) error {
	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "down-to":
		return goose.DownTo(db, dir, version)
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return errors.New("migration name is required for create")
		}
		return goose.Create(db, dir, name, "sql")
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// open connects to the configured database. When create is set and the
// database is missing, it is created first.
func open(cfg *config.Config, create bool) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err == nil {
		return db, nil
	}
	db.Close()

	if !create || !isDatabaseDoesNotExistError(err) {
		return nil, err
	}
	if err := createDatabase(cfg); err != nil {
		return nil, err
	}

	db, err = sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func isDatabaseDoesNotExistError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "3D000"
}

func createDatabase(cfg *config.Config) error {
	admin := cfg.Database
	admin.Name = "postgres"

	db, err := sql.Open("postgres", admin.DSN())
	if err != nil {
		return fmt.Errorf("open maintenance database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}

	_, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.Database.Name))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42P04" {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}
