package domain

import (
	"time"
)

var (
	ErrContactNotFound  = NewError(KindBadRequest, "contact not found")
	ErrContactIDMissing = NewError(KindBadRequest, "contact id is required")
	ErrContactIDInvalid = NewError(KindBadRequest, "invalid contact id")
)

type Contact struct {
	ID        string
	UserID    string // owner
	Name      string
	Phone     string // exactly 11 digits
	CreatedAt time.Time
	UpdatedAt time.Time
}
