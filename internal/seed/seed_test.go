package seed

import (
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/larder/internal/accounts"
	"github.com/stolasapp/larder/internal/recipes"
	"github.com/stolasapp/larder/internal/storage/storagetest"
)

func TestRun(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, seed uint64) ([]string, Result) {
		t.Helper()
		store := storagetest.New(t)
		users, recipeSvc := accounts.New(store), recipes.New(store)
		res, err := Run(t.Context(), slog.New(slog.DiscardHandler), users, recipeSvc, Options{Seed: seed, Users: 3})
		require.NoError(t, err)

		rows, err := recipeSvc.List(t.Context())
		require.NoError(t, err)
		titles := make([]string, len(rows))
		for i, row := range rows {
			titles[i] = row.Recipe.Title
			_, err = recipeSvc.Validate(recipes.FromRecipe(row.Recipe))
			require.NoError(t, err, "seeded recipes are valid")
		}
		assert.Len(t, rows, res.Recipes)

		for _, name := range res.Users {
			assert.LessOrEqual(t, utf8.RuneCountInString(name), accounts.MaxUsernameLen, name)
			_, err = users.Verify(t.Context(), name, Password)
			require.NoError(t, err)
		}

		again, err := Run(t.Context(), slog.New(slog.DiscardHandler), users, recipeSvc, Options{Seed: seed})
		require.NoError(t, err)
		assert.Empty(t, again.Users, "populated stores are left alone")
		return titles, res
	}

	titles, res := run(t, 42)
	assert.Len(t, res.Users, 3)
	assert.GreaterOrEqual(t, res.Recipes, 3*minRecipes)

	sameTitles, sameRes := run(t, 42)
	assert.Equal(t, titles, sameTitles)
	assert.Equal(t, res, sameRes)
}

func TestInstructions(t *testing.T) {
	t.Parallel()
	faker := gofakeit.New(7)
	for range 20 {
		assert.Regexp(t, `^1\. `, instructions(faker))
		assert.Regexp(t, `^- \d `, ingredients(faker))
		assert.LessOrEqual(t, utf8.RuneCountInString(title(faker)), recipes.MaxTitleLen)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"soup", 10, "soup"},
		{"soup", 4, "soup"},
		{"soupe", 4, "soup"},
		{"crème brûlée", 4, "crèm"},
		{"crème brûlée", 11, "crème brûlé"},
		{"日本のカレー", 3, "日本の"},
	}
	for _, test := range tests {
		got := truncate(test.in, test.n)
		assert.Equal(t, test.want, got, test.in)
		assert.True(t, utf8.ValidString(got), test.in)
	}

	assert.Equal(t, "Éclair", titleCase("éclair"))
	assert.Empty(t, titleCase(""))

	long := strings.Repeat("é", recipes.MaxTitleLen+5)
	_, err := recipes.New(nil).Validate(recipes.Input{
		Title:        truncate(long, recipes.MaxTitleLen),
		Ingredients:  "- 1 egg",
		Instructions: "1. Boil.",
	})
	require.NoError(t, err)
}
