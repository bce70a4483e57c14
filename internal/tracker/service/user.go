package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/crewlabs/crewlog/internal/tracker/domain"
	"github.com/crewlabs/crewlog/internal/tracker/store"
	"github.com/crewlabs/crewlog/pkg/cryptox"
	"github.com/crewlabs/crewlog/pkg/idx"
	"github.com/crewlabs/crewlog/pkg/slogx"
)

var (
	ErrDuplicateEmail = errors.New("service: email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must never distinguish the two in user-facing messages.
	ErrInvalidCredentials = errors.New("service: invalid credentials")
)

type UserService struct {
	Store store.Store
}

// Register creates a new user with a hashed password. The email is
// pre-checked and the store's unique constraint backs it up, so a race
// between two registrations still yields ErrDuplicateEmail for the loser.
func (s *UserService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("login failed", "email", email)
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
