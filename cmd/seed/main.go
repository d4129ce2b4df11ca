// seed inserts a demo user and a handful of contacts into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/phonebook/internal/usecase"
)

const (
	seedUsername = "seeduser"
	seedPassword = "seedpassword"
)

type contactSpec struct {
	name  string
	phone string
}

var contacts = []contactSpec{
	{"Alice Johnson", "79001234567"},
	{"Bob Smith", "79007654321"},
	{"Malik Hassan", "79005550101"},
	{"Carol White", "79005550102"},
	{"Dan Brown", "01234567890"}, // leading zero survives the round trip
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set (run: direnv allow)")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	auth := usecase.NewAuthUsecase(userRepo, nil)
	contactsUC := usecase.NewContactUsecase(postgres.NewContactRepository(pool))

	// Reuse the seed user on re-runs
	user, err := auth.Register(ctx, seedUsername, seedPassword)
	if errors.Is(err, domain.ErrUserExists) {
		user, err = userRepo.FindByUsername(ctx, seedUsername)
	}
	if err != nil {
		pool.Close()
		log.Fatalf("seed user: %v", err)
	}

	existing, err := contactsUC.List(ctx, user.ID, "")
	if err != nil {
		pool.Close()
		log.Fatalf("list contacts: %v", err)
	}
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c.Name] = true
	}

	var inserted, skipped int
	for _, spec := range contacts {
		if have[spec.name] {
			skipped++
			continue
		}
		_, err := contactsUC.Create(ctx, usecase.CreateContactInput{
			UserID: user.ID,
			Name:   spec.name,
			Phone:  spec.phone,
		})
		if err != nil {
			pool.Close()
			log.Fatalf("insert contact %s: %v", spec.name, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  User:             %s / %s\n", seedUsername, seedPassword)
	fmt.Printf("  User ID:          %s\n", user.ID)
	fmt.Printf("  Contacts created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1: log in as the seed user:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/api/user/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"username\":\"%s\",\"password\":\"%s\"}'\n", seedUsername, seedPassword)
	fmt.Println("    # → {\"token\":\"eyJ...\"}")
	fmt.Println()
	fmt.Println("  Step 2: search contacts:")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s 'http://localhost:8080/api/contact?search=ali' -H \"Authorization: Bearer $JWT\"")
	fmt.Println("    # → Alice Johnson and Malik Hassan")
}
