package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/metrics"
	"github.com/ErlanBelekov/phonebook/internal/repository"
)

// ContactUsecase runs every operation on behalf of a single owner. Input is
// expected to be validated by the transport layer.
type ContactUsecase struct {
	repo repository.ContactRepository
}

func NewContactUsecase(repo repository.ContactRepository) *ContactUsecase {
	return &ContactUsecase{repo: repo}
}

type CreateContactInput struct {
	UserID string
	Name   string
	Phone  string
}

type EditContactInput struct {
	ID     string
	UserID string
	Name   string
	Phone  string
}

func (u *ContactUsecase) Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	c, err := u.repo.Create(ctx, &domain.Contact{
		UserID: input.UserID,
		Name:   input.Name,
		Phone:  input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	metrics.ContactOperationsTotal.WithLabelValues("create").Inc()
	return c, nil
}

// List returns the owner's contacts, narrowed to names containing search
// (case-insensitive) when search is not blank.
func (u *ContactUsecase) List(ctx context.Context, userID, search string) ([]*domain.Contact, error) {
	contacts, err := u.repo.List(ctx, userID, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (u *ContactUsecase) Edit(ctx context.Context, input EditContactInput) (*domain.Contact, error) {
	c, err := u.repo.Update(ctx, &domain.Contact{
		ID:     input.ID,
		UserID: input.UserID,
		Name:   input.Name,
		Phone:  input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("edit contact: %w", err)
	}
	metrics.ContactOperationsTotal.WithLabelValues("edit").Inc()
	return c, nil
}

// Delete removes the owner's contact and reports how many rows went away.
// Zero is a valid result, not an error.
func (u *ContactUsecase) Delete(ctx context.Context, id, userID string) (int64, error) {
	n, err := u.repo.Delete(ctx, id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete contact: %w", err)
	}
	if n > 0 {
		metrics.ContactOperationsTotal.WithLabelValues("delete").Add(float64(n))
	}
	return n, nil
}
