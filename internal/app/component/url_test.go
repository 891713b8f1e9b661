package component

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		params ListParams
		query  string
		url    string
	}{
		{
			name:   "all recipes",
			params: ListParams{},
			query:  "",
			url:    "/",
		},
		{
			name:   "mine only",
			params: ListParams{Mine: true},
			query:  "mine=true",
			url:    "/?mine=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.query, tt.params.QueryString())
			assert.Equal(t, tt.url, tt.params.URL())

			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.params, ParseListParams(values))
		})
	}
}

func TestParseListParams_Lenient(t *testing.T) {
	t.Parallel()
	assert.False(t, ParseListParams(url.Values{"mine": {"yes"}}).Mine)
	assert.False(t, ParseListParams(url.Values{"mine": {""}}).Mine)
	assert.False(t, ParseListParams(nil).Mine)
}

func TestRecipeURLs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/recipe/42", RecipeURL(42))
	assert.Equal(t, "/recipe/42/edit", EditURL(42))
	assert.Equal(t, "/recipe/42/delete", DeleteURL(42))
	assert.Equal(t, "/recipe/18446744073709551615", RecipeURL(^uint64(0)))
}
