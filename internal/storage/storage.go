// Package storage provides the state management for users, recipes and
// sessions.
package storage

import (
	"context"

	"github.com/stolasapp/larder/internal/storage/db"
)

const (
	// ErrNotFound is returned when a user, recipe or session cannot be found.
	ErrNotFound Error = "not found"
	// ErrAlreadyExists is returned if a unique user already exists.
	ErrAlreadyExists Error = "already exists"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Users are the methods on a storage implementation that are responsible for
// accessing and creating users. Users are never modified or removed.
type Users interface {
	// ListUsers returns the users in a list, paginated by the given name (if
	// provided) up to the given limit of records.
	ListUsers(ctx context.Context, afterName string, limit int32) ([]db.User, error)
	// GetUser returns a single user with the specified ID. An [ErrNotFound] is
	// returned if the user ID does not exist.
	GetUser(ctx context.Context, userID uint64) (db.User, error)
	// GetUserByName returns a single user with the specified name. An
	// [ErrNotFound] is returned if the user name does not exist.
	GetUserByName(ctx context.Context, name string) (db.User, error)
	// CreateUser inserts the user, assigning an ID if one is not set. An
	// [ErrAlreadyExists] error is returned if the name is already in use, in
	// which case the existing record is left untouched.
	CreateUser(ctx context.Context, user db.User) (db.User, error)
}

// Recipes are the methods on a storage implementation that are responsible
// for accessing and modifying recipes.
type Recipes interface {
	// ListRecipes returns every recipe in insertion order, along with the
	// owner's name.
	ListRecipes(ctx context.Context) ([]db.GetRecipesRow, error)
	// ListRecipesByOwner returns the recipes owned by the user in insertion
	// order.
	ListRecipesByOwner(ctx context.Context, owner uint64) ([]db.GetRecipesRow, error)
	// GetRecipe returns a single recipe. An [ErrNotFound] is returned if the
	// recipe does not exist.
	GetRecipe(ctx context.Context, recipeID uint64) (db.Recipe, error)
	// GetRecipeOwner returns the user that owns the recipe. An [ErrNotFound] is
	// returned if the recipe does not exist.
	GetRecipeOwner(ctx context.Context, recipeID uint64) (db.User, error)
	// CreateRecipe inserts the recipe, assigning an ID and timestamps. The
	// owner must reference an existing user.
	CreateRecipe(ctx context.Context, recipe db.Recipe) (db.Recipe, error)
	// UpdateRecipe overwrites the title, ingredients and instructions of the
	// recipe in a single statement. The owner is never changed. An
	// [ErrNotFound] is returned if the recipe does not exist.
	UpdateRecipe(ctx context.Context, recipe db.Recipe) error
	// DeleteRecipe permanently removes the recipe. An [ErrNotFound] is
	// returned if the recipe does not exist.
	DeleteRecipe(ctx context.Context, recipeID uint64) error
}

// Sessions are the methods on a storage implementation that are responsible
// for tracking live browser sessions.
type Sessions interface {
	// CreateSession records a new session for a user.
	CreateSession(ctx context.Context, session db.Session) error
	// GetSession returns the session with the given ID. An [ErrNotFound] is
	// returned if the session does not exist or was ended.
	GetSession(ctx context.Context, sessionID string) (db.Session, error)
	// DeleteSession ends the session. Deleting an unknown session is not an
	// error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// Store is the combination interface for [Users], [Recipes] and [Sessions].
type Store interface {
	Users
	Recipes
	Sessions
	// Close releases any resources held by the store. An error is returned if
	// the store cannot be cleanly closed.
	Close() error
}
