// migrate applies or rolls back the embedded schema migrations.
// Run: go run ./cmd/migrate [-cmd up|down|status] [-to VERSION]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ErlanBelekov/phonebook/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/phonebook/migrations"
	"github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up, down or status")
	to := flag.Int64("to", 0, "with -cmd down, roll back to this version instead of one step")
	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set (run: direnv allow)")
	}

	if err := run(dbURL, *cmd, *to); err != nil {
		log.Fatalf("%s: %v", *cmd, err)
	}
	log.Printf("%s: done", *cmd)
}

func run(dbURL, cmd string, to int64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	switch cmd {
	case "up":
		return migrations.Up(ctx, db)
	case "down":
		return migrations.Down(ctx, db, to)
	case "status":
		return migrations.Status(ctx, db)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}
