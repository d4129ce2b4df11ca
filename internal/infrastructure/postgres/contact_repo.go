package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, user_id, name, phone, created_at, updated_at`

// phoneDigits is the fixed width phones are rendered back to; the column is
// a BIGINT, so leading zeros are restored on read.
const phoneDigits = 11

type ContactRepository struct {
	db DBTX
}

func NewContactRepository(db DBTX) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	phone, err := phoneToInt(c.Phone)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO contacts (user_id, name, phone)
		VALUES ($1, $2, $3)
		RETURNING ` + contactColumns

	created, err := scanContact(r.db.QueryRow(ctx, query, c.UserID, c.Name, phone))
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return created, nil
}

func (r *ContactRepository) List(ctx context.Context, userID, search string) ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE user_id = $1`
	args := []any{userID}

	if search != "" {
		// position() instead of LIKE so that % and _ in the term match literally.
		query += ` AND position(lower($2) in lower(name)) > 0`
		args = append(args, search)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

// Update is a single conditional statement: a contact owned by someone else
// and a contact deleted concurrently both come back as ErrContactNotFound.
func (r *ContactRepository) Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	phone, err := phoneToInt(c.Phone)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE contacts SET name = $3, phone = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + contactColumns

	updated, err := scanContact(r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Name, phone))
	if err != nil {
		if errors.Is(err, domain.ErrContactNotFound) {
			return nil, err
		}
		if isInvalidText(err) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return updated, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM contacts WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		if isInvalidText(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("delete contact: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var (
		c     domain.Contact
		phone int64
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}
	c.Phone = fmt.Sprintf("%0*d", phoneDigits, phone)
	return &c, nil
}

func phoneToInt(phone string) (int64, error) {
	if len(phone) != phoneDigits {
		return 0, fmt.Errorf("phone must be %d digits, got %d", phoneDigits, len(phone))
	}
	for _, ch := range phone {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("phone contains non-digit %q", ch)
		}
	}
	return strconv.ParseInt(phone, 10, 64)
}
