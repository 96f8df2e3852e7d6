package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/taskboardhq/taskboard/internal/taskboard/domain"
	apperrors "github.com/taskboardhq/taskboard/internal/taskboard/domain/errors"
	"github.com/taskboardhq/taskboard/internal/taskboard/store"
	"github.com/taskboardhq/taskboard/pkg/cryptox"
	"github.com/taskboardhq/taskboard/pkg/idx"
)

// UserService owns user credentials: registration hashes and stores them,
// Authenticate verifies a candidate password. The plaintext never leaves this
// layer and the hash never reaches a client.
type UserService struct {
	Store store.Store
}

// Register creates a new user with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, apperrors.Validation("Please provide a username and password")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, apperrors.Duplicate("username")
		}
		return domain.User{}, err
	}

	return u, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords produce the same error so callers can't probe which usernames
// exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, apperrors.Validation("Please enter your username and password")
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, apperrors.Unauthenticated("Incorrect username or password.")
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, apperrors.Unauthenticated("Incorrect username or password.")
	}

	return u, nil
}

// GetByID fetches a user by id. Used by the auth middleware to resolve a
// verified token subject to a live user record.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}
