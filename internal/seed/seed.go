// Package seed fills an empty store with fake users and recipes for
// development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/stolasapp/larder/internal/accounts"
	"github.com/stolasapp/larder/internal/recipes"
)

// Password is shared by every seeded user.
const Password = "larder"

// Corpus generation constants.
const (
	defaultUsers      = 4
	minRecipes        = 2
	maxExtraRecipes   = 5 // 2-6 recipes per user
	minIngredients    = 3
	maxExtraIngred    = 6 // 3-8 ingredients
	minSteps          = 2
	maxExtraSteps     = 4 // 2-5 steps
	minStepWords      = 6
	maxExtraStepWords = 8
	tipProbability    = 0.3
)

// Options tune the generated corpus.
type Options struct {
	// Seed makes the corpus reproducible.
	Seed uint64
	// Users is the number of accounts to create; zero uses a default.
	Users int
}

// FromEnv returns the seed from the LARDER_SEED environment variable, or a
// random value if not set.
func FromEnv() uint64 {
	if env := os.Getenv("LARDER_SEED"); env != "" {
		if seed, err := strconv.ParseUint(env, 10, 64); err == nil {
			return seed
		}
	}
	return rand.Uint64() //nolint:gosec // intentionally weak random for test data
}

// Result lists what was created.
type Result struct {
	Users   []string
	Recipes int
}

// Run creates fake users, each owning a handful of recipes. Nothing is written
// if any user already exists.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	users *accounts.Service,
	recipeSvc *recipes.Service,
	opts Options,
) (Result, error) {
	var res Result
	existing, err := users.List(ctx, "", 1)
	if err != nil {
		return res, err
	}
	if len(existing) > 0 {
		logger.DebugContext(ctx, "store already populated, skipping seed")
		return res, nil
	}

	count := opts.Users
	if count <= 0 {
		count = defaultUsers
	}
	faker := gofakeit.New(opts.Seed)

	for len(res.Users) < count {
		name := username(faker)
		userID, err := users.Register(ctx, name, Password)
		if errors.Is(err, accounts.ErrDuplicateUsername) {
			continue
		} else if err != nil {
			return res, fmt.Errorf("failed to seed user %q: %w", name, err)
		}
		res.Users = append(res.Users, name)

		for range minRecipes + faker.IntN(maxExtraRecipes) {
			if _, err = recipeSvc.Create(ctx, userID, recipe(faker)); err != nil {
				return res, fmt.Errorf("failed to seed recipe for %q: %w", name, err)
			}
			res.Recipes++
		}
	}

	logger.InfoContext(ctx, "seeded store",
		slog.Uint64("seed", opts.Seed),
		slog.Any("users", res.Users),
		slog.Int("recipes", res.Recipes),
		slog.String("password", Password),
	)
	return res, nil
}

func username(faker *gofakeit.Faker) string {
	return faker.FirstName() + " " + faker.LastName()
}

var units = []string{
	"cup", "cups", "tbsp", "tsp", "g", "ml", "pinch of", "handful of", "",
}

func recipe(faker *gofakeit.Faker) recipes.Input {
	return recipes.Input{
		Title:        title(faker),
		Ingredients:  ingredients(faker),
		Instructions: instructions(faker),
	}
}

func title(faker *gofakeit.Faker) string {
	patterns := []func(*gofakeit.Faker) string{
		func(f *gofakeit.Faker) string { return f.Dinner() },
		func(f *gofakeit.Faker) string { return f.Breakfast() },
		func(f *gofakeit.Faker) string { return f.Dessert() },
		func(f *gofakeit.Faker) string {
			return fmt.Sprintf("%s %s salad", titleCase(f.Adjective()), f.Vegetable())
		},
		func(f *gofakeit.Faker) string {
			return fmt.Sprintf("Grandma's %s %s", f.Fruit(), "pie")
		},
	}
	t := patterns[faker.IntN(len(patterns))](faker)
	return titleCase(strings.TrimSpace(truncate(t, recipes.MaxTitleLen)))
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func ingredients(faker *gofakeit.Faker) string {
	n := minIngredients + faker.IntN(maxExtraIngred)
	lines := make([]string, n)
	for i := range n {
		item := faker.Vegetable()
		if faker.Float64() < 0.5 { //nolint:mnd // coin flip
			item = faker.Fruit()
		}
		unit := units[faker.IntN(len(units))]
		qty := strconv.Itoa(1 + faker.IntN(4)) //nolint:mnd // small quantities
		lines[i] = strings.Join(strings.Fields(fmt.Sprintf("- %s %s %s", qty, unit, strings.ToLower(item))), " ")
	}
	return strings.Join(lines, "\n")
}

func instructions(faker *gofakeit.Faker) string {
	var b strings.Builder
	n := minSteps + faker.IntN(maxExtraSteps)
	for i := range n {
		fmt.Fprintf(&b, "%d. %s\n", i+1, faker.Sentence(minStepWords+faker.IntN(maxExtraStepWords)))
	}
	if faker.Float64() < tipProbability {
		fmt.Fprintf(&b, "\n**Tip:** serve %s.\n", faker.Adverb())
	}
	return b.String()
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
