// Package accounts implements registration and credential checks on top of
// the user store.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/stolasapp/larder/internal/sec"
	"github.com/stolasapp/larder/internal/storage"
	"github.com/stolasapp/larder/internal/storage/db"
)

const (
	// ErrDuplicateUsername is returned when registering a name that is taken.
	ErrDuplicateUsername Error = "username already exists"
	// ErrInvalidCredentials is returned for both unknown users and wrong
	// passwords.
	ErrInvalidCredentials Error = "invalid username or password"
	// ErrInvalidUsername is returned when a username fails validation.
	ErrInvalidUsername Error = "username must be 1-80 characters"
	// ErrInvalidPassword is returned when a password is empty or too long.
	ErrInvalidPassword Error = "password must be 1-72 bytes"
)

// Error is an error type returned by the accounts service.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// MaxUsernameLen is the longest username accepted, in characters.
const MaxUsernameLen = 80

var usernameRules = "required,max=" + strconv.Itoa(MaxUsernameLen)

// NormalizeUsername trims surrounding whitespace. Names are stored and looked
// up in this form.
func NormalizeUsername(name string) string {
	return strings.TrimSpace(name)
}

// Service is the credential store.
type Service struct {
	users    storage.Users
	validate *validator.Validate
}

// New creates a Service backed by users.
func New(users storage.Users) *Service {
	return &Service{
		users:    users,
		validate: validator.New(),
	}
}

// Register creates a user with a bcrypt hash of password and returns the new
// user's ID. The name must be non-empty once trimmed and at most
// [MaxUsernameLen] characters. An [ErrDuplicateUsername] is returned, and nothing is written, if
// the name is taken.
func (s *Service) Register(ctx context.Context, username, password string) (uint64, error) {
	username = NormalizeUsername(username)
	if err := s.validate.Var(username, usernameRules); err != nil {
		return 0, ErrInvalidUsername
	}
	if password == "" || len(password) > sec.MaxPasswordLen {
		return 0, ErrInvalidPassword
	}

	switch _, err := s.users.GetUserByName(ctx, username); {
	case err == nil:
		return 0, ErrDuplicateUsername
	case !errors.Is(err, storage.ErrNotFound):
		return 0, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	// the insert re-checks uniqueness in case of a concurrent registration
	user, err := s.users.CreateUser(ctx, db.User{Name: username, PasswordHash: hash})
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return 0, ErrDuplicateUsername
	case err != nil:
		return 0, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return user.ID, nil
}

// FindByUsername returns the user with the given name, or
// [storage.ErrNotFound].
func (s *Service) FindByUsername(ctx context.Context, username string) (db.User, error) {
	return s.users.GetUserByName(ctx, NormalizeUsername(username))
}

// Verify returns the user if password matches the stored hash. Unknown users
// and wrong passwords both return [ErrInvalidCredentials] after one bcrypt
// comparison.
func (s *Service) Verify(ctx context.Context, username, password string) (db.User, error) {
	username = NormalizeUsername(username)
	user, err := s.users.GetUserByName(ctx, username)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		_ = sec.CompareDummy(password)
		return db.User{}, ErrInvalidCredentials
	case err != nil:
		return db.User{}, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if err = sec.ComparePassword(password, user.PasswordHash); err != nil {
		return db.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// List returns up to limit users whose names sort after afterName.
func (s *Service) List(ctx context.Context, afterName string, limit int32) ([]db.User, error) {
	return s.users.ListUsers(ctx, afterName, limit)
}
