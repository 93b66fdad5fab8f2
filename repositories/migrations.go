package repositories

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/ankaa-erp/backend/infra"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// embed migrations sql folder
//
//go:embed migrations/*.sql
var embedMigrations embed.FS

func RunMigrations(pgConfig infra.PgConfig, logger *slog.Logger) error {
	db, err := sql.Open("pgx", pgConfig.GetConnectionString())
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Info("migrations starting")
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose.Up error: %w", err)
	}

	logger.Info("migrations done")
	return nil
}
