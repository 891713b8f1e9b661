package component

import "net/url"

// Route paths.
const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathLogout   = "/logout"
	PathRegister = "/register"
	PathNew      = "/recipe/new"
)

const boolTrue = "true"

// ListParams holds the state of the recipe list for URL building.
type ListParams struct {
	Mine bool
}

// QueryString returns the query string portion of the URL (without leading ?).
func (p ListParams) QueryString() string {
	params := url.Values{}
	if p.Mine {
		params.Set("mine", boolTrue)
	}
	return params.Encode()
}

// URL returns the home URL showing the list.
func (p ListParams) URL() string {
	qs := p.QueryString()
	if qs == "" {
		return PathHome
	}
	return PathHome + "?" + qs
}

// ParseListParams reads list state from query values.
func ParseListParams(query url.Values) ListParams {
	return ListParams{Mine: query.Get("mine") == boolTrue}
}

// RecipeURL is the page of a single recipe.
func RecipeURL(id uint64) string {
	return "/recipe/" + FormatID(id)
}

// EditURL is the edit form of a recipe.
func EditURL(id uint64) string {
	return RecipeURL(id) + "/edit"
}

// DeleteURL deletes a recipe.
func DeleteURL(id uint64) string {
	return RecipeURL(id) + "/delete"
}
