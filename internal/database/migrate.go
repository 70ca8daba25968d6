package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/wagerlab/predictgate/migrations"
)

// Migrate brings the schema up to date using the embedded migration files.
// Runs on startup when the postgres backend is selected; safe to call on an
// already-migrated database.
func Migrate(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied)
	return nil
}
