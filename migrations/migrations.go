// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

func setup() error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Down rolls back the latest migration, or down to target when target > 0.
func Down(ctx context.Context, db *sql.DB, target int64) error {
	if err := setup(); err != nil {
		return err
	}
	if target > 0 {
		if err := goose.DownToContext(ctx, db, ".", target); err != nil {
			return fmt.Errorf("rollback to version %d: %w", target, err)
		}
		return nil
	}
	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("rollback latest migration: %w", err)
	}
	return nil
}

// Status logs applied and pending migrations through goose's logger.
func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	return nil
}
