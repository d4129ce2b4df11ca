package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/transport/http/handler"
	"github.com/ErlanBelekov/phonebook/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactID = "6f1c2a52-6d5e-4c1b-9a57-1f0a4c3b2d10"

type fakeContactUsecase struct {
	create func(ctx context.Context, input usecase.CreateContactInput) (*domain.Contact, error)
	list   func(ctx context.Context, userID, search string) ([]*domain.Contact, error)
	edit   func(ctx context.Context, input usecase.EditContactInput) (*domain.Contact, error)
	delete func(ctx context.Context, id, userID string) (int64, error)
}

func (f *fakeContactUsecase) Create(ctx context.Context, input usecase.CreateContactInput) (*domain.Contact, error) {
	return f.create(ctx, input)
}

func (f *fakeContactUsecase) List(ctx context.Context, userID, search string) ([]*domain.Contact, error) {
	return f.list(ctx, userID, search)
}

func (f *fakeContactUsecase) Edit(ctx context.Context, input usecase.EditContactInput) (*domain.Contact, error) {
	return f.edit(ctx, input)
}

func (f *fakeContactUsecase) Delete(ctx context.Context, id, userID string) (int64, error) {
	return f.delete(ctx, id, userID)
}

var owner = &domain.User{ID: "owner-1", Username: "alice"}

func newContactEngine(uc *fakeContactUsecase) *gin.Engine {
	h := handler.NewContactHandler(uc, testLogger())

	r := gin.New()
	g := r.Group("/api/contact", withUser(owner))
	g.POST("/create", h.Create)
	g.POST("/edit", h.Edit)
	g.DELETE("/delete", h.Delete)
	g.GET("", h.List)
	return r
}

func echoCreate(_ context.Context, in usecase.CreateContactInput) (*domain.Contact, error) {
	now := time.Now()
	return &domain.Contact{ID: contactID, UserID: in.UserID, Name: in.Name, Phone: in.Phone, CreatedAt: now, UpdatedAt: now}, nil
}

func TestCreateContact_TenDigitPhone_Returns400(t *testing.T) {
	w := postJSON(newContactEngine(&fakeContactUsecase{create: echoCreate}), "/api/contact/create",
		`{"name":"Jane Doe","phone":"1234567890"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "phone")
}

func TestCreateContact_NonNumericPhone_Returns400(t *testing.T) {
	w := postJSON(newContactEngine(&fakeContactUsecase{create: echoCreate}), "/api/contact/create",
		`{"name":"Jane Doe","phone":"1234567890a"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContact_NameLengthBounds(t *testing.T) {
	engine := newContactEngine(&fakeContactUsecase{create: echoCreate})

	w := postJSON(engine, "/api/contact/create", `{"name":"J","phone":"12345678901"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(engine, "/api/contact/create", `{"name":"Jo","phone":"12345678901"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(engine, "/api/contact/create", `{"name":"abcdefghijklmnopqrstuvwxyzabcd","phone":"12345678901"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(engine, "/api/contact/create", `{"name":"abcdefghijklmnopqrstuvwxyzabcde","phone":"12345678901"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContact_MissingFields_ReportsEach(t *testing.T) {
	w := postJSON(newContactEngine(&fakeContactUsecase{}), "/api/contact/create", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, decodeError(t, w).Errors, 2)
}

func TestCreateContact_Success_ScopedToCaller(t *testing.T) {
	var gotOwner string
	uc := &fakeContactUsecase{
		create: func(ctx context.Context, in usecase.CreateContactInput) (*domain.Contact, error) {
			gotOwner = in.UserID
			return echoCreate(ctx, in)
		},
	}
	w := postJSON(newContactEngine(uc), "/api/contact/create", `{"name":"Jane Doe","phone":"12345678901"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, owner.ID, gotOwner)

	var body struct {
		Contact struct {
			ID     string `json:"id"`
			UserID string `json:"userId"`
			Name   string `json:"name"`
			Phone  string `json:"phone"`
		} `json:"contact"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, contactID, body.Contact.ID)
	assert.Equal(t, owner.ID, body.Contact.UserID)
	assert.Equal(t, "12345678901", body.Contact.Phone)
}

func TestEditContact_InvalidID_Returns400(t *testing.T) {
	w := postJSON(newContactEngine(&fakeContactUsecase{}), "/api/contact/edit",
		`{"id":"42","name":"Jane Roe","phone":"12345678901"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditContact_NotFound_Returns400(t *testing.T) {
	uc := &fakeContactUsecase{
		edit: func(_ context.Context, _ usecase.EditContactInput) (*domain.Contact, error) {
			return nil, domain.ErrContactNotFound
		},
	}
	w := postJSON(newContactEngine(uc), "/api/contact/edit",
		`{"id":"`+contactID+`","name":"Jane Roe","phone":"12345678901"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "contact not found", decodeError(t, w).Message)
}

func TestDeleteContact_MissingID_Returns400(t *testing.T) {
	w := httptest.NewRecorder()
	newContactEngine(&fakeContactUsecase{}).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/contact/delete", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "contact id is required", decodeError(t, w).Message)
}

func TestDeleteContact_NonExistent_ReturnsZero(t *testing.T) {
	uc := &fakeContactUsecase{
		delete: func(_ context.Context, id, userID string) (int64, error) {
			assert.Equal(t, contactID, id)
			assert.Equal(t, owner.ID, userID)
			return 0, nil
		},
	}
	w := httptest.NewRecorder()
	newContactEngine(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/contact/delete?contactId="+contactID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedContact":0}`, w.Body.String())
}

func TestListContacts_PassesSearch(t *testing.T) {
	var gotSearch string
	uc := &fakeContactUsecase{
		list: func(_ context.Context, userID, search string) ([]*domain.Contact, error) {
			gotSearch = search
			return []*domain.Contact{}, nil
		},
	}
	w := httptest.NewRecorder()
	newContactEngine(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/contact?search=ali", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ali", gotSearch)
	assert.JSONEq(t, `{"contacts":[]}`, w.Body.String())
}
