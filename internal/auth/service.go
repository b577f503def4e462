package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redmonkez12/bookmarks-api/internal/logging"
	"github.com/redmonkez12/bookmarks-api/internal/user"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so a login response never reveals whether an account exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// Service handles authentication business logic
type Service struct {
	users         user.Store
	hasher        *Argon2Hasher
	tokens        TokenService
	logger        *logging.Logger
	tokenDuration time.Duration
}

func NewService(
	users user.Store,
	hasher *Argon2Hasher,
	tokens TokenService,
	logger *logging.Logger,
	tokenDuration time.Duration,
) *Service {
	return &Service{
		users:         users,
		hasher:        hasher,
		tokens:        tokens,
		logger:        logger,
		tokenDuration: tokenDuration,
	}
}

// Register hashes the password and persists a new user. A duplicate email
// surfaces as user.ErrDuplicateEmail; no token is issued at registration.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, in.Email, passwordHash, in.FirstName, in.LastName)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", newUser.ID)

	return nil
}

// Login authenticates a user and issues an access token keyed on (id, email)
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	match, err := s.hasher.Verify(existing.PasswordHash, password)
	if err != nil {
		// a stored hash we cannot parse is a server problem, not bad credentials
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existing.ID, existing.Email, s.tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", existing.ID)

	return existing, token, nil
}
