package uitest

import (
	"strings"
	"testing"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/larder/internal/app/component"
	"github.com/stolasapp/larder/internal/seed"
)

const (
	// defaultTimeout is the default timeout for all browser operations.
	defaultTimeout = 10 * time.Second
	// stableTimeout is the timeout for waiting for page stability.
	stableTimeout = 5 * time.Second
)

// testPage wraps a rod.Page with consistent timeout handling.
type testPage struct {
	*rod.Page

	t      *testing.T
	server *Server
}

// el finds a single element with the default timeout.
func (p *testPage) el(selector string) *rod.Element {
	return p.Page.Timeout(defaultTimeout).MustElement(selector)
}

// els finds multiple elements without waiting for them to appear.
func (p *testPage) els(selector string) rod.Elements {
	els, _ := p.Page.Elements(selector)
	return els
}

// text returns the trimmed text of the element, or "" if it does not exist.
func (p *testPage) text(selector string) string {
	els := p.els(selector)
	if len(els) == 0 {
		return ""
	}
	return strings.TrimSpace(els.First().MustText())
}

// path returns the path of the current page URL.
func (p *testPage) path() string {
	u := p.MustInfo().URL
	return strings.TrimPrefix(u, p.server.BaseURL())
}

// click clicks an element found by selector and waits for the resulting
// navigation to finish.
func (p *testPage) click(selector string) {
	wait := p.Page.Timeout(defaultTimeout).MustWaitNavigation()
	p.el(selector).MustClick()
	wait()
	p.waitStable()
}

// visit navigates to path and waits for the page to load.
func (p *testPage) visit(path string) {
	p.Page.Timeout(defaultTimeout).MustNavigate(p.server.URL(path)).MustWaitLoad()
	p.waitStable()
}

// fill replaces the value of a named field in form.
func (p *testPage) fill(form, name, value string) {
	p.el(Input(form, name)).MustSelectAllText().MustInput(value)
}

// waitStable waits for the page to stabilize.
func (p *testPage) waitStable() {
	p.Page.Timeout(stableTimeout).MustWaitStable()
}

// TestUI is the parent test that sets up the browser and server,
// then runs all UI subtests. It skips when running with -short flag or when
// no browser is installed.
func TestUI(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping UI tests in short mode")
	}
	path, ok := launcher.LookPath()
	if !ok {
		t.Skip("no browser available for UI tests")
	}

	// Setup test server
	server := newTestServer()
	t.Cleanup(server.Close)

	// Setup headless browser
	u := launcher.New().Bin(path).Headless(true).MustLaunch()
	browser := rod.New().ControlURL(u).MustConnect()
	t.Cleanup(func() { browser.MustClose() })

	// Each page gets its own cookie jar so sessions never leak between
	// subtests.
	newPage := func(t *testing.T) *testPage {
		t.Helper()
		page := browser.MustIncognito().Timeout(defaultTimeout).MustPage(server.URL("/"))
		t.Cleanup(func() {
			_ = page.Close()
		})
		page.Timeout(stableTimeout).MustWaitStable()
		return &testPage{Page: page.CancelTimeout(), t: t, server: server}
	}

	// Run subtests serially to avoid browser contention
	t.Run("LoginRequired", func(t *testing.T) {
		testLoginRequired(t, newPage)
	})
	t.Run("RegisterAndLogin", func(t *testing.T) {
		testRegisterAndLogin(t, newPage)
	})
	t.Run("SeededUser", func(t *testing.T) {
		testSeededUser(t, newPage, server)
	})
	t.Run("RecipeLifecycle", func(t *testing.T) {
		testRecipeLifecycle(t, newPage, server)
	})
	t.Run("OthersRecipes", func(t *testing.T) {
		testOthersRecipes(t, newPage)
	})
	t.Run("Logout", func(t *testing.T) {
		testLogout(t, newPage)
	})
}

// register creates an account through the registration form.
func register(p *testPage, name, password string) {
	p.visit(component.PathRegister)
	p.fill(SelectorRegisterForm, "username", name)
	p.fill(SelectorRegisterForm, "password", password)
	p.click(Submit(SelectorRegisterForm))
}

// login signs in through the login form.
func login(p *testPage, name, password string) {
	p.visit(component.PathLogin)
	p.fill(SelectorLoginForm, "username", name)
	p.fill(SelectorLoginForm, "password", password)
	p.click(Submit(SelectorLoginForm))
}

// testLoginRequired verifies anonymous visitors land on the login page.
func testLoginRequired(t *testing.T, newPage func(*testing.T) *testPage) {
	p := newPage(t)

	assert.Equal(t, component.PathLogin, p.path())
	assert.Equal(t, "Please log in to continue", p.text(SelectorNotice))
	require.NotNil(t, p.el(SelectorLoginForm))
	assert.NotEmpty(t, p.els(SelectorRegisterLink))
	assert.Empty(t, p.els(SelectorLogoutLink))
}

// testRegisterAndLogin walks through account creation and the first login.
func testRegisterAndLogin(t *testing.T, newPage func(*testing.T) *testPage) {
	p := newPage(t)

	register(p, "ui_alice", "correct horse")
	assert.Equal(t, component.PathLogin, p.path())
	assert.Equal(t, "Registration successful", p.text(SelectorNotice))

	login(p, "ui_alice", "wrong")
	assert.Equal(t, "Invalid username or password", p.text(SelectorNotice))

	login(p, "ui_alice", "correct horse")
	assert.Equal(t, component.PathHome, p.path())
	assert.Equal(t, "Logged in successfully", p.text(SelectorNotice))
	assert.Equal(t, "ui_alice", p.text(SelectorSiteUser))

	require.NotNil(t, p.el(SelectorRecipeList))
	assert.NotEmpty(t, p.els(SelectorListItem), "expected seeded recipes")
	assert.Empty(t, p.els(SelectorOwnedItem), "new users own nothing")

	p.visit(component.PathHome)
	assert.Empty(t, p.text(SelectorNotice), "notices are shown once")
}

// testSeededUser checks the "mine" filter against a seeded account.
func testSeededUser(t *testing.T, newPage func(*testing.T) *testPage, server *Server) {
	require.NotEmpty(t, server.Seeded)
	name := server.Seeded[0]
	p := newPage(t)
	login(p, name, seed.Password)

	want, err := server.RecipeCount(t.Context(), name)
	require.NoError(t, err)

	p.click(SelectorMineLink)
	assert.Equal(t, component.ListParams{Mine: true}.URL(), p.path())
	assert.Len(t, p.els(SelectorListItem), want)
	assert.Len(t, p.els(SelectorOwnedItem), want)
}

// testRecipeLifecycle creates, views, edits and deletes a recipe.
func testRecipeLifecycle(t *testing.T, newPage func(*testing.T) *testPage, server *Server) {
	p := newPage(t)
	login(p, "ui_alice", "correct horse")

	p.click(SelectorNewLink)
	assert.Equal(t, component.PathNew, p.path())
	p.fill(SelectorRecipeForm, "title", "Weeknight dal")
	p.fill(SelectorRecipeForm, "ingredients", "- 1 cup red lentils\n- 1 onion\n- 2 tsp cumin")
	p.fill(SelectorRecipeForm, "instructions", "Rinse the lentils.\n\nSimmer until *soft*.")
	p.click(Submit(SelectorRecipeForm))

	assert.Equal(t, component.PathHome, p.path())
	assert.Equal(t, "Recipe created successfully", p.text(SelectorNotice))
	owned := p.els(SelectorOwnedItem)
	require.Len(t, owned, 1)
	id := *owned.First().MustAttribute(component.DataAttrRecipe)
	card := RecipeCard(id)

	// view
	p.click(card + " h2 a")
	assert.Equal(t, component.RecipeURL(mustParseID(t, id)), p.path())
	assert.Len(t, p.els(SelectorIngredients), 3)
	assert.Equal(t, "soft", p.text(SelectorInstructions+" em"))

	// edit
	p.click(EditLink("article"))
	p.fill(SelectorRecipeForm, "title", "Weekend dal")
	p.click(Submit(SelectorRecipeForm))
	assert.Equal(t, "Recipe updated successfully", p.text(SelectorNotice))
	assert.Contains(t, p.text(card+" h2"), "Weekend dal")

	// delete
	p.click(DeleteButton(card))
	assert.Equal(t, "Recipe deleted successfully", p.text(SelectorNotice))
	assert.Empty(t, p.els(card))

	count, err := server.RecipeCount(t.Context(), "ui_alice")
	require.NoError(t, err)
	assert.Zero(t, count)
}

// testOthersRecipes verifies recipes of other users are read-only.
func testOthersRecipes(t *testing.T, newPage func(*testing.T) *testPage) {
	p := newPage(t)
	register(p, "ui_bob", "hunter22")
	login(p, "ui_bob", "hunter22")

	items := p.els(SelectorListItem)
	require.NotEmpty(t, items)
	assert.Empty(t, p.els(SelectorOwnedItem))
	id := mustParseID(t, *items.First().MustAttribute(component.DataAttrRecipe))

	p.visit(component.RecipeURL(id))
	assert.Empty(t, p.els(EditLink("article")))
	assert.Empty(t, p.els(DeleteButton("article")))

	p.visit(component.EditURL(id))
	assert.Equal(t, component.PathHome, p.path())
	assert.Equal(t, "You can only edit your own recipes", p.text(SelectorNotice))
}

// testLogout verifies logging out ends the session.
func testLogout(t *testing.T, newPage func(*testing.T) *testPage) {
	p := newPage(t)
	login(p, "ui_bob", "hunter22")
	require.Equal(t, component.PathHome, p.path())

	p.click(SelectorLogoutLink)
	assert.Equal(t, component.PathLogin, p.path())
	assert.NotEmpty(t, p.els(SelectorLoginLink))

	p.visit(component.PathHome)
	assert.Equal(t, component.PathLogin, p.path())
}
