package component

import (
	"strconv"
	"time"
)

// RecipeItem is a recipe as shown in a list.
type RecipeItem struct {
	ID        uint64
	Title     string
	OwnerName string
	Summary   string
	Mine      bool
}

// RecipeDetail is a recipe as shown on its own page.
type RecipeDetail struct {
	ID               uint64
	Title            string
	OwnerName        string
	Ingredients      []string
	InstructionsHTML string
	Updated          time.Time
	Mine             bool
}

// UpdatedISO formats the update time for a datetime attribute.
func (d RecipeDetail) UpdatedISO() string {
	return d.Updated.Format(time.RFC3339)
}

// UpdatedDisplay formats the update time for reading.
func (d RecipeDetail) UpdatedDisplay() string {
	return d.Updated.Format("2 Jan 2006")
}

// RecipeForm holds the state of a create or edit form.
type RecipeForm struct {
	Action       string
	Submit       string
	Title        string
	Ingredients  string
	Instructions string
	// Errors maps a field name to the reason it was rejected.
	Errors map[string]string
}

// FormatID renders a recipe ID for URLs and attributes.
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
