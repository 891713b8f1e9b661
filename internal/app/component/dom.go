package component

// Element IDs.
const (
	IDNotice       = "notice"
	IDRecipeList   = "recipe-list"
	IDRecipeForm   = "recipe-form"
	IDLoginForm    = "login-form"
	IDRegisterForm = "register-form"
)

// Data attribute names with prefix (for use in CSS selectors and tests).
const (
	DataAttrAction = "data-action"
	DataAttrRecipe = "data-recipe"
	DataAttrOwned  = "data-owned"
	DataAttrKind   = "data-kind"
)

// Values for the data-action attribute.
const (
	ActionNew      = "new"
	ActionMine     = "mine"
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionRegister = "register"
	ActionEdit     = "edit"
	ActionDelete   = "delete"
)

// CSS class names.
const (
	ClassSiteHeader   = "site-header"
	ClassSiteTitle    = "site-title"
	ClassSiteUser     = "site-user"
	ClassRecipe       = "recipe"
	ClassRecipeOwner  = "recipe-owner"
	ClassIngredients  = "recipe-ingredients"
	ClassInstructions = "recipe-instructions"
	ClassFieldError   = "field-error"
)

// CSRFField is the form field carrying the CSRF token.
const CSRFField = "_csrf"
