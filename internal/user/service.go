package user

import (
	"context"
	"errors"
	"fmt"
)

// PasswordHasher is satisfied by auth.Argon2Hasher. The service needs it so
// a password sent on a profile update is never stored in clear text.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// ProfilePatch carries the updatable profile fields; nil means unchanged
type ProfilePatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	Password  *string
}

// Service handles user profile operations
type Service struct {
	store  Store
	hasher PasswordHasher
}

func NewService(store Store, hasher PasswordHasher) *Service {
	return &Service{store: store, hasher: hasher}
}

// UpdateProfile applies a partial update to the user's profile
func (s *Service) UpdateProfile(ctx context.Context, id int64, patch ProfilePatch) error {
	update := Patch{
		Email:     patch.Email,
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	if err := s.store.Update(ctx, id, update); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateEmail) {
			return err
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
