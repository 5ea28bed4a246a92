package spells

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/KirkDiggler/spellbook-api/internal/errors"
	"github.com/KirkDiggler/spellbook-api/internal/repositories/spells/migrations"
)

// RunMigrations applies the embedded schema migrations to the database at dsn
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open database for migrations")
	}
	defer func() { _ = sqlDB.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}
	return nil
}
