package store

import (
	"errors"
	"fmt"
)

// Sentinel errors for store operations. The typed errors below unwrap to
// these so callers can match with errors.Is without caring about the id.
var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail  = errors.New("invalid email")
)

// NotFoundError reports a find or delete against an absent identifier.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %d not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError reports a save against an identifier that is
// already present.
type AlreadyExistsError struct {
	ID uint64
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("user %d already exists", e.ID)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// InvalidEmailError is reserved: it is part of the store's error contract
// but no operation returns it. The store performs no email validation.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email: %s", e.Email)
}

func (e *InvalidEmailError) Unwrap() error {
	return ErrInvalidEmail
}
