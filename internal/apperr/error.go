package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies domain failures so handlers can map them to status codes.
type Kind string

const (
	KindNotFound      Kind = "NOT_FOUND"
	KindConflict      Kind = "CONFLICT"
	KindInvalidInput  Kind = "INVALID_INPUT"
	KindUnauthorized  Kind = "UNAUTHORIZED"
	KindStateConflict Kind = "STATE_CONFLICT"
)

// kind sentinels, usable with errors.Is
var (
	NotFound      = &Error{Kind: KindNotFound}
	Conflict      = &Error{Kind: KindConflict}
	InvalidInput  = &Error{Kind: KindInvalidInput}
	Unauthorized  = &Error{Kind: KindUnauthorized}
	StateConflict = &Error{Kind: KindStateConflict}
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap keeps cause in the chain, but only message is shown to clients.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func NewNotFound(message string) *Error {
	return New(KindNotFound, message)
}

func NewConflict(message string) *Error {
	return New(KindConflict, message)
}

func NewInvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

func NewUnauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func NewStateConflict(message string) *Error {
	return New(KindStateConflict, message)
}

// KindOf returns the kind of the first *Error in the chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
