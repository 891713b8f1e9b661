package uitest

import (
	"fmt"

	"github.com/stolasapp/larder/internal/app/component"
)

// CSS selectors built from component constants.
// These ensure test selectors stay in sync with the component DOM structure.

// Element selectors.
var (
	// SelectorRecipeList selects the recipe list container by ID.
	SelectorRecipeList = "#" + component.IDRecipeList

	// SelectorNotice selects the flash notice by ID.
	SelectorNotice = "#" + component.IDNotice

	// SelectorSiteHeader selects the site header by class.
	SelectorSiteHeader = "header." + component.ClassSiteHeader

	// SelectorSiteUser selects the logged in user's name in the header.
	SelectorSiteUser = SelectorSiteHeader + " ." + component.ClassSiteUser

	// SelectorRecipeForm selects the create/edit form by ID.
	SelectorRecipeForm = "#" + component.IDRecipeForm

	// SelectorLoginForm selects the login form by ID.
	SelectorLoginForm = "#" + component.IDLoginForm

	// SelectorRegisterForm selects the registration form by ID.
	SelectorRegisterForm = "#" + component.IDRegisterForm

	// SelectorIngredients selects the ingredient items on a recipe page.
	SelectorIngredients = "." + component.ClassIngredients + " li"

	// SelectorInstructions selects the rendered instructions on a recipe page.
	SelectorInstructions = "." + component.ClassInstructions

	// SelectorFieldError selects form validation messages.
	SelectorFieldError = "." + component.ClassFieldError
)

// List item selectors.
var (
	// SelectorListItem selects any recipe card.
	SelectorListItem = "div[role='list'] > article"

	// SelectorOwnedItem selects recipe cards owned by the viewer.
	SelectorOwnedItem = fmt.Sprintf("div[role='list'] > article[%s]", component.DataAttrOwned)
)

// Navigation selectors.
var (
	SelectorNewLink      = selectorByAction("a", component.ActionNew)
	SelectorMineLink     = selectorByAction("a", component.ActionMine)
	SelectorLogoutLink   = selectorByAction("a", component.ActionLogout)
	SelectorLoginLink    = selectorByAction("a", component.ActionLogin)
	SelectorRegisterLink = selectorByAction("a", component.ActionRegister)
)

// selectorByAction returns a selector for elements with a specific data-action.
func selectorByAction(tag, action string) string {
	return fmt.Sprintf("%s[%s='%s']", tag, component.DataAttrAction, action)
}

// RecipeCard returns a selector for the list card of a recipe.
func RecipeCard(id string) string {
	return fmt.Sprintf("div[role='list'] > article[%s='%s']", component.DataAttrRecipe, id)
}

// EditLink returns a selector for the edit link inside scope.
func EditLink(scope string) string {
	return scope + " " + selectorByAction("a", component.ActionEdit)
}

// DeleteButton returns a selector for the delete button inside scope.
func DeleteButton(scope string) string {
	return scope + " " + selectorByAction("button", component.ActionDelete)
}

// Input returns a selector for a named form field inside form.
func Input(form, name string) string {
	return fmt.Sprintf("%s [name='%s']", form, name)
}

// Submit returns a selector for the submit button of form.
func Submit(form string) string {
	return form + " button[type='submit']"
}
