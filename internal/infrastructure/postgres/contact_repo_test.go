package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/infrastructure/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactCols = []string{"id", "user_id", "name", "phone", "created_at", "updated_at"}

func TestContactRepository_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts (user_id, name, phone)")).
		WithArgs("user-1", "Jane Doe", int64(12345678901)).
		WillReturnRows(pgxmock.NewRows(contactCols).
			AddRow("c-1", "user-1", "Jane Doe", int64(12345678901), now, now))

	c, err := postgres.NewContactRepository(mock).Create(context.Background(), &domain.Contact{
		UserID: "user-1",
		Name:   "Jane Doe",
		Phone:  "12345678901",
	})
	require.NoError(t, err)
	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, "12345678901", c.Phone)
}

func TestContactRepository_Create_PreservesLeadingZero(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contacts")).
		WithArgs("user-1", "Jane Doe", int64(1234567890)).
		WillReturnRows(pgxmock.NewRows(contactCols).
			AddRow("c-1", "user-1", "Jane Doe", int64(1234567890), now, now))

	c, err := postgres.NewContactRepository(mock).Create(context.Background(), &domain.Contact{
		UserID: "user-1",
		Name:   "Jane Doe",
		Phone:  "01234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "01234567890", c.Phone)
}

func TestContactRepository_Create_RejectsBadPhone(t *testing.T) {
	mock := newMock(t)
	repo := postgres.NewContactRepository(mock)

	for _, phone := range []string{"1234567890", "+1234567890", "1234567890a"} {
		_, err := repo.Create(context.Background(), &domain.Contact{UserID: "user-1", Name: "Jane", Phone: phone})
		assert.Error(t, err, "phone %q", phone)
	}
}

func TestContactRepository_List_All(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY created_at, id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(contactCols).
			AddRow("c-1", "user-1", "Alice", int64(11111111111), now, now).
			AddRow("c-2", "user-1", "Bob", int64(22222222222), now, now))

	got, err := postgres.NewContactRepository(mock).List(context.Background(), "user-1", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "Bob", got[1].Name)
}

func TestContactRepository_List_Search(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("AND position(lower($2) in lower(name)) > 0")).
		WithArgs("user-1", "ali").
		WillReturnRows(pgxmock.NewRows(contactCols))

	got, err := postgres.NewContactRepository(mock).List(context.Background(), "user-1", "ali")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContactRepository_Update_ScopedToOwner(t *testing.T) {
	mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
		WithArgs("c-1", "user-1", "Jane Roe", int64(12345678901)).
		WillReturnRows(pgxmock.NewRows(contactCols).
			AddRow("c-1", "user-1", "Jane Roe", int64(12345678901), now, now))

	c, err := postgres.NewContactRepository(mock).Update(context.Background(), &domain.Contact{
		ID:     "c-1",
		UserID: "user-1",
		Name:   "Jane Roe",
		Phone:  "12345678901",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", c.Name)
}

func TestContactRepository_Update_NotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE contacts")).
		WithArgs("c-1", "user-2", "Jane Roe", int64(12345678901)).
		WillReturnError(pgx.ErrNoRows)

	_, err := postgres.NewContactRepository(mock).Update(context.Background(), &domain.Contact{
		ID:     "c-1",
		UserID: "user-2",
		Name:   "Jane Roe",
		Phone:  "12345678901",
	})
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestContactRepository_Delete(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts WHERE id = $1 AND user_id = $2")).
		WithArgs("c-1", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	n, err := postgres.NewContactRepository(mock).Delete(context.Background(), "c-1", "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestContactRepository_Delete_NothingMatched(t *testing.T) {
	mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contacts")).
		WithArgs("c-404", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := postgres.NewContactRepository(mock).Delete(context.Background(), "c-404", "user-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}
