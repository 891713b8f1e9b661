// Package recipes implements the recipe store and its ownership-gated
// mutations.
package recipes

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

// MaxTitleLen is the longest title accepted, in characters.
const MaxTitleLen = 100

// titleTag is the validation alias for titles, bound to [MaxTitleLen].
const titleTag = "recipe_title"

// Input holds the mutable fields of a recipe as submitted by a user.
type Input struct {
	Title        string `validate:"recipe_title"`
	Ingredients  string `validate:"required"`
	Instructions string `validate:"required"`
}

// Normalize trims surrounding whitespace from every field.
func (in Input) Normalize() Input {
	return Input{
		Title:        strings.TrimSpace(in.Title),
		Ingredients:  strings.TrimSpace(in.Ingredients),
		Instructions: strings.TrimSpace(in.Instructions),
	}
}

// FromRecipe extracts the mutable fields of r.
func FromRecipe(r db.Recipe) Input {
	return Input{
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}

// ValidationError describes which fields of an [Input] were rejected. Fields
// maps the field name (lowercase) to a human-readable reason.
type ValidationError struct {
	Fields map[string]string
}

// Error satisfies [error].
func (verr *ValidationError) Error() string {
	parts := make([]string, 0, len(verr.Fields))
	for _, name := range []string{"title", "ingredients", "instructions"} {
		if reason, ok := verr.Fields[name]; ok {
			parts = append(parts, name+" "+reason)
		}
	}
	return "invalid recipe: " + strings.Join(parts, ", ")
}

// Service is the recipe store.
type Service struct {
	store    storage.Recipes
	validate *validator.Validate
}

// New creates a Service backed by store.
func New(store storage.Recipes) *Service {
	validate := validator.New()
	validate.RegisterAlias(titleTag, "required,max="+strconv.Itoa(MaxTitleLen))
	return &Service{
		store:    store,
		validate: validate,
	}
}

// Validate normalizes in and checks that every field is present. A
// [*ValidationError] is returned if not.
func (s *Service) Validate(in Input) (Input, error) {
	in = in.Normalize()
	err := s.validate.Struct(in)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return in, err
	}
	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		reason := "is required"
		if fe.ActualTag() == "max" {
			reason = fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		verr.Fields[strings.ToLower(fe.Field())] = reason
	}
	return in, verr
}

// Create stores a new recipe owned by owner and returns its ID.
func (s *Service) Create(ctx context.Context, owner uint64, in Input) (uint64, error) {
	in, err := s.Validate(in)
	if err != nil {
		return 0, err
	}
	recipe, err := s.store.CreateRecipe(ctx, db.Recipe{
		Owner:        owner,
		Title:        in.Title,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
	})
	if err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

// List returns every recipe in insertion order.
func (s *Service) List(ctx context.Context) ([]db.GetRecipesRow, error) {
	return s.store.ListRecipes(ctx)
}

// ListByOwner returns the recipes owned by owner in insertion order.
func (s *Service) ListByOwner(ctx context.Context, owner uint64) ([]db.GetRecipesRow, error) {
	return s.store.ListRecipesByOwner(ctx, owner)
}

// Get returns the recipe or [storage.ErrNotFound].
func (s *Service) Get(ctx context.Context, id uint64) (db.Recipe, error) {
	return s.store.GetRecipe(ctx, id)
}

// Owner returns the user who owns the recipe or [storage.ErrNotFound].
func (s *Service) Owner(ctx context.Context, id uint64) (db.User, error) {
	return s.store.GetRecipeOwner(ctx, id)
}

// Update overwrites the title, ingredients and instructions of the recipe
// together. The owner is unchanged. No ownership check is performed; see
// [Service.UpdateOwned].
func (s *Service) Update(ctx context.Context, id uint64, in Input) error {
	in, err := s.Validate(in)
	if err != nil {
		return err
	}
	return s.store.UpdateRecipe(ctx, db.Recipe{
		ID:           id,
		Title:        in.Title,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
	})
}

// Delete removes the recipe permanently. Deleting a missing recipe returns
// [storage.ErrNotFound]. No ownership check is performed; see
// [Service.DeleteOwned].
func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.DeleteRecipe(ctx, id)
}

// Authorize loads the recipe and checks that who may modify it. The recipe is
// returned along with [storage.ErrNotFound], [sec.ErrUnauthenticated] or
// [sec.ErrNotOwner] when refused.
func (s *Service) Authorize(ctx context.Context, who sec.Identity, id uint64) (db.Recipe, error) {
	recipe, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return recipe, err
	}
	return recipe, sec.CheckOwner(who, recipe.Owner)
}

// UpdateOwned is [Service.Update] gated on who owning the recipe. The check
// happens before any write.
func (s *Service) UpdateOwned(ctx context.Context, who sec.Identity, id uint64, in Input) error {
	if _, err := s.Authorize(ctx, who, id); err != nil {
		return err
	}
	return s.Update(ctx, id, in)
}

// DeleteOwned is [Service.Delete] gated on who owning the recipe. The check
// happens before any write.
func (s *Service) DeleteOwned(ctx context.Context, who sec.Identity, id uint64) error {
	if _, err := s.Authorize(ctx, who, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}
