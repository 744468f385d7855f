// Command migrate applies the SQL migrations in ./migrations with goose.
//
// Usage: migrate [-dir migrations] up|down|status|version|redo|reset
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Berlkot/django-proj-kek-2025/internal/app"
	"github.com/Berlkot/django-proj-kek-2025/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose dialect: %v", err)
	}

	if err := goose.RunContext(context.Background(), command, db, *dir, flag.Args()[min(1, flag.NArg()):]...); err != nil {
		logger.Error("migration failed", slog.String("command", command), slog.String("error", err.Error()))
		db.Close()
		os.Exit(1)
	}
	logger.Info("migration finished", slog.String("command", command))
}
