package domain

import (
	"errors"
	"strings"
)

// Kind classifies an error for the transport boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is a classified error. Sentinels below are *Error values so that
// errors.Is matches them by identity through any amount of wrapping.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field validation messages, if any.
	Fields []string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ValidationError builds a BadRequest error from collected field messages.
func ValidationError(fields []string) *Error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = strings.Join(fields, "; ")
	}
	return &Error{Kind: KindBadRequest, Message: msg, Fields: fields}
}

// KindOf returns the kind of the first *Error in err's chain.
// Unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
