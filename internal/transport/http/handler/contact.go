package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/phonebook/internal/domain"
	"github.com/ErlanBelekov/phonebook/internal/identity"
	"github.com/ErlanBelekov/phonebook/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contactUsecaser interface {
	Create(ctx context.Context, input usecase.CreateContactInput) (*domain.Contact, error)
	List(ctx context.Context, userID, search string) ([]*domain.Contact, error)
	Edit(ctx context.Context, input usecase.EditContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}

type ContactHandler struct {
	uc     contactUsecaser
	logger *slog.Logger
}

func NewContactHandler(uc contactUsecaser, logger *slog.Logger) *ContactHandler {
	setupValidation()
	return &ContactHandler{uc: uc, logger: logger.With("component", "contact_handler")}
}

type createContactRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=30"`
	Phone string `json:"phone" binding:"required,len=11,number"`
}

type editContactRequest struct {
	ID    string `json:"id"    binding:"required,uuid"`
	Name  string `json:"name"  binding:"required,min=2,max=30"`
	Phone string `json:"phone" binding:"required,len=11,number"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ownerID returns the id of the user attached by the auth middleware.
func (h *ContactHandler) ownerID(c *gin.Context, op string) (string, bool) {
	user := identity.FromContext(c.Request.Context())
	if user == nil {
		respondError(c, h.logger, op, domain.ErrUnauthorized)
		return "", false
	}
	return user.ID, true
}

// POST /api/contact/create
func (h *ContactHandler) Create(c *gin.Context) {
	owner, ok := h.ownerID(c, "create contact")
	if !ok {
		return
	}

	var req createContactRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "create contact", err)
		return
	}

	contact, err := h.uc.Create(c.Request.Context(), usecase.CreateContactInput{
		UserID: owner,
		Name:   req.Name,
		Phone:  req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, "create contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": toContactResponse(contact)})
}

// POST /api/contact/edit
func (h *ContactHandler) Edit(c *gin.Context) {
	owner, ok := h.ownerID(c, "edit contact")
	if !ok {
		return
	}

	var req editContactRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "edit contact", err)
		return
	}

	contact, err := h.uc.Edit(c.Request.Context(), usecase.EditContactInput{
		ID:     req.ID,
		UserID: owner,
		Name:   req.Name,
		Phone:  req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, "edit contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contact": toContactResponse(contact)})
}

// DELETE /api/contact/delete?contactId=<id>
// Deleting a contact that does not exist (or is not the caller's) reports 0.
func (h *ContactHandler) Delete(c *gin.Context) {
	owner, ok := h.ownerID(c, "delete contact")
	if !ok {
		return
	}

	id := c.Query("contactId")
	if id == "" {
		respondError(c, h.logger, "delete contact", domain.ErrContactIDMissing)
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, h.logger, "delete contact", domain.ErrContactIDInvalid)
		return
	}

	n, err := h.uc.Delete(c.Request.Context(), id, owner)
	if err != nil {
		respondError(c, h.logger, "delete contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedContact": n})
}

// GET /api/contact?search=<term>
func (h *ContactHandler) List(c *gin.Context) {
	owner, ok := h.ownerID(c, "list contacts")
	if !ok {
		return
	}

	contacts, err := h.uc.List(c.Request.Context(), owner, c.Query("search"))
	if err != nil {
		respondError(c, h.logger, "list contacts", err)
		return
	}

	items := make([]contactResponse, len(contacts))
	for i, contact := range contacts {
		items[i] = toContactResponse(contact)
	}
	c.JSON(http.StatusOK, gin.H{"contacts": items})
}
