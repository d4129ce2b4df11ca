package repository

import (
	"context"

	"github.com/ErlanBelekov/phonebook/internal/domain"
)

// ContactRepository methods are scoped to the owning user.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	// List filters by case-insensitive name substring when search is non-empty.
	List(ctx context.Context, userID, search string) ([]*domain.Contact, error)
	// Update changes name and phone of c.ID only if it belongs to c.UserID.
	Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}
