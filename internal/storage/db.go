package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/influxdata/influxdb/pkg/snowflake"

	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
	"github.com/stolasapp/larder/internal/storage/db"
)

// DB is a [Store] backed by a SQLite database.
type DB struct {
	ids     *snowflake.Generator
	db      *sql.DB
	queries *db.Queries
	now     func() time.Time
}

// NewDB initializes a DB with the given config and logger.
func NewDB(ctx context.Context, cfg *larderv1.Config, logger *slog.Logger) (*DB, error) {
	handle, err := db.Open(ctx, logger, cfg.GetDbFilepath())
	if err != nil {
		return nil, err
	}
	return &DB{
		ids:     snowflake.New(rand.IntN(1023)), //nolint:gosec,mnd // this isn't for crypto
		db:      handle,
		queries: db.New(handle),
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error {
	return d.db.Close()
}

// ListUsers satisfies the [Users] interface.
func (d *DB) ListUsers(ctx context.Context, afterName string, limit int32) ([]db.User, error) {
	return d.queries.GetUsers(ctx, db.GetUsersParams{
		AfterName: afterName,
		Limit:     int64(limit),
	})
}

// GetUser satisfies the [Users] interface.
func (d *DB) GetUser(ctx context.Context, userID uint64) (db.User, error) {
	user, err := d.queries.GetUser(ctx, userID)
	return user, notFound(err)
}

// GetUserByName satisfies the [Users] interface.
func (d *DB) GetUserByName(ctx context.Context, name string) (db.User, error) {
	user, err := d.queries.GetUserByName(ctx, name)
	return user, notFound(err)
}

// CreateUser satisfies the [Users] interface.
func (d *DB) CreateUser(ctx context.Context, user db.User) (db.User, error) {
	if user.ID == 0 {
		user.ID = d.ids.Next()
	}
	switch created, err := d.queries.InsertUser(ctx, db.InsertUserParams(user)); {
	case errors.Is(err, sql.ErrNoRows):
		return db.User{}, ErrAlreadyExists
	default:
		return created, err
	}
}

// ListRecipes satisfies the [Recipes] interface.
func (d *DB) ListRecipes(ctx context.Context) ([]db.GetRecipesRow, error) {
	return d.queries.GetRecipes(ctx)
}

// ListRecipesByOwner satisfies the [Recipes] interface.
func (d *DB) ListRecipesByOwner(ctx context.Context, owner uint64) ([]db.GetRecipesRow, error) {
	rows, err := d.queries.GetRecipesByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]db.GetRecipesRow, len(rows))
	for i, row := range rows {
		out[i] = db.GetRecipesRow(row)
	}
	return out, nil
}

// GetRecipe satisfies the [Recipes] interface.
func (d *DB) GetRecipe(ctx context.Context, recipeID uint64) (db.Recipe, error) {
	recipe, err := d.queries.GetRecipe(ctx, recipeID)
	return recipe, notFound(err)
}

// GetRecipeOwner satisfies the [Recipes] interface.
func (d *DB) GetRecipeOwner(ctx context.Context, recipeID uint64) (db.User, error) {
	user, err := d.queries.GetRecipeOwner(ctx, recipeID)
	return user, notFound(err)
}

// CreateRecipe satisfies the [Recipes] interface.
func (d *DB) CreateRecipe(ctx context.Context, recipe db.Recipe) (db.Recipe, error) {
	now := d.now()
	created, err := d.queries.InsertRecipe(ctx, db.InsertRecipeParams{
		ID:           d.ids.Next(),
		Owner:        recipe.Owner,
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		CreateTime:   now,
		UpdateTime:   now,
	})
	if err != nil {
		return created, fmt.Errorf("failed to insert recipe: %w", err)
	}
	return created, nil
}

// UpdateRecipe satisfies the [Recipes] interface.
func (d *DB) UpdateRecipe(ctx context.Context, recipe db.Recipe) error {
	n, err := d.queries.UpdateRecipe(ctx, db.UpdateRecipeParams{
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		UpdateTime:   d.now(),
		ID:           recipe.ID,
	})
	return affected(n, err)
}

// DeleteRecipe satisfies the [Recipes] interface.
func (d *DB) DeleteRecipe(ctx context.Context, recipeID uint64) error {
	return affected(d.queries.DeleteRecipe(ctx, recipeID))
}

// CreateSession satisfies the [Sessions] interface.
func (d *DB) CreateSession(ctx context.Context, session db.Session) error {
	if session.CreateTime.IsZero() {
		session.CreateTime = d.now()
	}
	return d.queries.InsertSession(ctx, db.InsertSessionParams(session))
}

// GetSession satisfies the [Sessions] interface.
func (d *DB) GetSession(ctx context.Context, sessionID string) (db.Session, error) {
	session, err := d.queries.GetSession(ctx, sessionID)
	return session, notFound(err)
}

// DeleteSession satisfies the [Sessions] interface.
func (d *DB) DeleteSession(ctx context.Context, sessionID string) error {
	return d.queries.DeleteSession(ctx, sessionID)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func affected(rows int64, err error) error {
	switch {
	case err != nil:
		return err
	case rows == 0:
		return ErrNotFound
	default:
		return nil
	}
}

var _ Store = (*DB)(nil)
