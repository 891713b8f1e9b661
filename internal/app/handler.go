package app

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stolasapp/larder/internal/accounts"
	"github.com/stolasapp/larder/internal/app/component"
	"github.com/stolasapp/larder/internal/app/component/page"
	"github.com/stolasapp/larder/internal/content"
	"github.com/stolasapp/larder/internal/recipes"
	"github.com/stolasapp/larder/internal/sec"
	"github.com/stolasapp/larder/internal/session"
	"github.com/stolasapp/larder/internal/storage"
	"github.com/stolasapp/larder/internal/storage/db"
)

// summaryLen is the longest instructions excerpt shown in the recipe list.
const summaryLen = 140

type handler struct {
	logger   *slog.Logger
	accounts *accounts.Service
	recipes  *recipes.Service
	sessions *session.Manager
}

func (h handler) register(e *echo.Echo) {
	e.GET(component.PathLogin, h.loginForm)
	e.POST(component.PathLogin, h.login)
	e.GET(component.PathRegister, h.registerForm)
	e.POST(component.PathRegister, h.registerUser)
	e.GET(component.PathLogout, h.logout)

	e.GET(component.PathHome, h.home, requireLogin)
	e.GET(component.PathNew, h.newRecipe, requireLogin)
	e.POST(component.PathNew, h.createRecipe, requireLogin)

	recipe := e.Group("/recipe/:id")
	recipe.GET("", h.viewRecipe, requireLogin)
	recipe.GET("/edit", h.editRecipe, requireLogin)
	recipe.POST("/edit", h.updateRecipe, requireLogin)
	recipe.GET("/delete", h.deleteRecipe, requireLogin)
	recipe.POST("/delete", h.deleteRecipe, requireLogin)
}

func (h handler) home(c echo.Context) error {
	ctx := c.Request().Context()
	who := sec.GetIdentity(ctx)
	list := component.ParseListParams(c.QueryParams())

	var (
		rows []db.GetRecipesRow
		err  error
	)
	if list.Mine {
		rows, err = h.recipes.ListByOwner(ctx, who.UserID)
	} else {
		rows, err = h.recipes.List(ctx)
	}
	if err != nil {
		return err
	}

	items := make([]component.RecipeItem, len(rows))
	for i, row := range rows {
		items[i] = component.RecipeItem{
			ID:        row.Recipe.ID,
			Title:     row.Recipe.Title,
			OwnerName: row.OwnerName,
			Summary:   content.Summary(row.Recipe.Instructions, summaryLen),
			Mine:      sec.Authorize(who, row.Recipe.Owner) == sec.Allowed,
		}
	}

	title := "All recipes"
	if list.Mine {
		title = "My recipes"
	}
	return render(c, http.StatusOK, page.Home(h.page(c, title), items, list))
}

func (h handler) loginForm(c echo.Context) error {
	return render(c, http.StatusOK, page.Login(h.page(c, "Log in"), ""))
}

func (h handler) login(c echo.Context) error {
	ctx := c.Request().Context()
	username := c.FormValue("username")

	user, err := h.accounts.Verify(ctx, username, c.FormValue("password"))
	switch {
	case errors.Is(err, accounts.ErrInvalidCredentials):
		p := h.page(c, "Log in")
		p.Notice = component.Notice{Kind: component.NoticeError, Message: msgBadCredentials}
		return render(c, http.StatusUnauthorized, page.Login(p, username))
	case err != nil:
		return err
	}

	if err = h.sessions.Begin(ctx, c.Response(), user); err != nil {
		return err
	}
	h.logger.InfoContext(ctx, "user logged in", slog.Any("user", user))
	return redirect(c, component.PathHome, component.Notice{
		Kind:    component.NoticeSuccess,
		Message: msgLoggedIn,
	})
}

func (h handler) registerForm(c echo.Context) error {
	return render(c, http.StatusOK, page.Register(h.page(c, "Register"), ""))
}

func (h handler) registerUser(c echo.Context) error {
	ctx := c.Request().Context()
	username := c.FormValue("username")

	userID, err := h.accounts.Register(ctx, username, c.FormValue("password"))
	var status int
	switch {
	case err == nil:
		h.logger.InfoContext(ctx, "user registered",
			slog.Uint64("id", userID),
			slog.String("name", username),
		)
		return redirect(c, component.PathLogin, component.Notice{
			Kind:    component.NoticeSuccess,
			Message: msgRegistered,
		})
	case errors.Is(err, accounts.ErrDuplicateUsername):
		status = http.StatusConflict
		err = errors.New(msgDuplicateUser)
	case errors.Is(err, accounts.ErrInvalidUsername), errors.Is(err, accounts.ErrInvalidPassword):
		status = http.StatusUnprocessableEntity
	default:
		return err
	}

	p := h.page(c, "Register")
	p.Notice = component.Notice{Kind: component.NoticeError, Message: sentence(err.Error())}
	return render(c, status, page.Register(p, username))
}

func (h handler) logout(c echo.Context) error {
	if err := h.sessions.End(c.Request().Context(), c.Response(), c.Request()); err != nil {
		return err
	}
	return redirect(c, component.PathLogin, component.Notice{})
}

func (h handler) newRecipe(c echo.Context) error {
	return render(c, http.StatusOK, page.RecipeForm(h.page(c, "New recipe"), component.RecipeForm{
		Action: component.PathNew,
		Submit: "Create recipe",
	}))
}

func (h handler) createRecipe(c echo.Context) error {
	ctx := c.Request().Context()
	who := sec.GetIdentity(ctx)
	in := recipeInput(c)

	id, err := h.recipes.Create(ctx, who.UserID, in)
	if verr := (*recipes.ValidationError)(nil); errors.As(err, &verr) {
		return render(c, http.StatusUnprocessableEntity, page.RecipeForm(h.page(c, "New recipe"), component.RecipeForm{
			Action:       component.PathNew,
			Submit:       "Create recipe",
			Title:        in.Title,
			Ingredients:  in.Ingredients,
			Instructions: in.Instructions,
			Errors:       verr.Fields,
		}))
	} else if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "recipe created", slog.Uint64("id", id), slog.Any("user", who))
	return redirect(c, component.PathHome, component.Notice{
		Kind:    component.NoticeSuccess,
		Message: msgCreated,
	})
}

func (h handler) viewRecipe(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.Get(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	owner, err := h.recipes.Owner(ctx, id)
	if err != nil {
		return toHTTPError(err)
	}
	instructions, err := content.Instructions(recipe.Instructions)
	if err != nil {
		return err
	}

	return render(c, http.StatusOK, page.RecipeView(h.page(c, recipe.Title), component.RecipeDetail{
		ID:               recipe.ID,
		Title:            recipe.Title,
		OwnerName:        owner.Name,
		Ingredients:      content.Ingredients(recipe.Ingredients),
		InstructionsHTML: instructions,
		Updated:          recipe.UpdateTime,
		Mine:             sec.Authorize(sec.GetIdentity(ctx), recipe.Owner) == sec.Allowed,
	}))
}

func (h handler) editRecipe(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.Authorize(ctx, sec.GetIdentity(ctx), id)
	if err != nil {
		return h.denied(c, err, msgNotEditOwner)
	}

	return render(c, http.StatusOK, page.RecipeForm(h.page(c, "Edit recipe"), component.RecipeForm{
		Action:       component.EditURL(id),
		Submit:       "Save changes",
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
	}))
}

func (h handler) updateRecipe(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := recipeID(c)
	if err != nil {
		return err
	}
	in := recipeInput(c)

	err = h.recipes.UpdateOwned(ctx, sec.GetIdentity(ctx), id, in)
	if verr := (*recipes.ValidationError)(nil); errors.As(err, &verr) {
		return render(c, http.StatusUnprocessableEntity, page.RecipeForm(h.page(c, "Edit recipe"), component.RecipeForm{
			Action:       component.EditURL(id),
			Submit:       "Save changes",
			Title:        in.Title,
			Ingredients:  in.Ingredients,
			Instructions: in.Instructions,
			Errors:       verr.Fields,
		}))
	} else if err != nil {
		return h.denied(c, err, msgNotEditOwner)
	}

	return redirect(c, component.PathHome, component.Notice{
		Kind:    component.NoticeSuccess,
		Message: msgUpdated,
	})
}

func (h handler) deleteRecipe(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := recipeID(c)
	if err != nil {
		return err
	}

	// The POST form is covered by the CSRF middleware; a bare link is not.
	if c.Request().Method == http.MethodGet &&
		c.Request().Header.Get(echo.HeaderSecFetchSite) == "cross-site" {
		return redirect(c, component.PathHome, component.Notice{
			Kind:    component.NoticeError,
			Message: msgCrossSiteDelete,
		})
	}

	who := sec.GetIdentity(ctx)
	if err = h.recipes.DeleteOwned(ctx, who, id); err != nil {
		return h.denied(c, err, msgNotDeleteOwner)
	}

	h.logger.InfoContext(ctx, "recipe deleted", slog.Uint64("id", id), slog.Any("user", who))
	return redirect(c, component.PathHome, component.Notice{
		Kind:    component.NoticeSuccess,
		Message: msgDeleted,
	})
}

// denied converts an ownership-gated failure into its response: a redirect
// with notOwner for someone else's recipe, a login redirect for anonymous
// callers, or an HTTP error.
func (h handler) denied(c echo.Context, err error, notOwner string) error {
	switch {
	case errors.Is(err, sec.ErrNotOwner):
		return redirect(c, component.PathHome, component.Notice{
			Kind:    component.NoticeError,
			Message: notOwner,
		})
	case errors.Is(err, sec.ErrUnauthenticated):
		return redirect(c, component.PathLogin, component.Notice{
			Kind:    component.NoticeInfo,
			Message: msgLoginRequired,
		})
	default:
		return toHTTPError(err)
	}
}

// page assembles the state shared by every full page, consuming any pending
// notice.
func (h handler) page(c echo.Context, title string) component.Page {
	csrf, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return component.Page{
		Title:  title,
		User:   sec.GetIdentity(c.Request().Context()),
		Notice: takeNotice(c),
		CSRF:   csrf,
	}
}

// handleError renders errors as an HTML error page. Unexpected errors are
// logged and shown as a generic 500.
func (h handler) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = http.StatusText(status)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = sentence(msg)
		}
	} else {
		h.logger.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("uri", c.Request().RequestURI),
			slog.Any("error", err),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = render(c, status, page.Error(h.page(c, http.StatusText(status)), status, message))
	}
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "failed to render error page", slog.Any("error", err))
	}
}

func recipeInput(c echo.Context) recipes.Input {
	return recipes.Input{
		Title:        c.FormValue("title"),
		Ingredients:  c.FormValue("ingredients"),
		Instructions: c.FormValue("instructions"),
	}
}

// recipeID parses the :id path parameter. Anything but a positive integer is
// a 404.
func recipeID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// toHTTPError converts an error to an Echo HTTPError with the appropriate
// HTTP status code; other errors pass through unchanged.
func toHTTPError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return echo.ErrNotFound
	case errors.Is(err, sec.ErrUnauthenticated):
		return echo.ErrUnauthorized
	case errors.Is(err, sec.ErrNotOwner):
		return echo.ErrForbidden
	default:
		return err
	}
}

// sentence upper-cases the first letter of msg.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

var renderBufferPool = sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

func render(c echo.Context, status int, comp templ.Component) error {
	buf := renderBufferPool.Get().(*bytes.Buffer) //nolint:forcetypeassert // guaranteed by impl
	defer renderBufferPool.Put(buf)
	buf.Reset()

	if err := comp.Render(c.Request().Context(), buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}
