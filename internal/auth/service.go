// Package auth provides account registration, login and token
// verification for the HTTP API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

var (
	// ErrEmailTaken is returned when registering an address that
	// already has an account.
	ErrEmailTaken = errors.New("auth: email already registered")

	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidInput is returned for malformed registration input.
	ErrInvalidInput = errors.New("auth: invalid input")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Service manages accounts and tokens.
type Service struct {
	users  store.UserRepo
	secret []byte
	ttl    time.Duration
}

// NewService creates an auth Service. secret signs tokens, ttl bounds
// their lifetime.
func NewService(users store.UserRepo, secret []byte, ttl time.Duration) *Service {
	return &Service{users: users, secret: secret, ttl: ttl}
}

// Register creates an account and returns it with a fresh token.
func (s *Service) Register(ctx context.Context, name, email, password string) (*store.UserRecord, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}

	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := issueToken(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*store.UserRecord, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := issueToken(user.ID, s.secret, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify validates a token and returns the user id it belongs to.
func (s *Service) Verify(tokenString string) (uuid.UUID, error) {
	return parseToken(tokenString, s.secret)
}
