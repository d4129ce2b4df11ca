package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/phonebook/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Migrate applies pending schema migrations over a database/sql handle
// borrowed from pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	logger.InfoContext(runCtx, "applying migrations")
	if err := migrations.Up(runCtx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.InfoContext(runCtx, "migrations applied")
	return nil
}
