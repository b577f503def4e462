package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Patch carries the mutable profile fields; nil means leave unchanged
type Patch struct {
	Email        *string
	FirstName    *string
	LastName     *string
	PasswordHash *string
}

// Store is the credential store. The database implementation is Repository;
// tests substitute fakes.
type Store interface {
	Create(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, patch Patch) error
}
