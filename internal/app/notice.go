package app

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/larder/internal/app/component"
)

// Notice messages.
const (
	msgRegistered      = "Registration successful"
	msgLoggedIn        = "Logged in successfully"
	msgBadCredentials  = "Invalid username or password"
	msgDuplicateUser   = "Username already exists"
	msgCreated         = "Recipe created successfully"
	msgUpdated         = "Recipe updated successfully"
	msgDeleted         = "Recipe deleted successfully"
	msgNotEditOwner    = "You can only edit your own recipes"
	msgNotDeleteOwner  = "You can only delete your own recipes"
	msgLoginRequired   = "Please log in to continue"
	msgCrossSiteDelete = "Recipes can only be deleted from this site"
)

const noticeCookie = "larder_notice"

// noticeSep separates the kind from the message in the cookie value.
const noticeSep = "\x1f"

// redirect sends the client to path, showing n on the next rendered page.
func redirect(c echo.Context, path string, n component.Notice) error {
	if !n.Empty() {
		c.SetCookie(&http.Cookie{
			Name:     noticeCookie,
			Value:    base64.RawURLEncoding.EncodeToString([]byte(string(n.Kind) + noticeSep + n.Message)),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// takeNotice returns the pending notice, if any, and clears it so it is only
// shown once.
func takeNotice(c echo.Context) component.Notice {
	cookie, err := c.Cookie(noticeCookie)
	if err != nil {
		return component.Notice{}
	}
	c.SetCookie(&http.Cookie{
		Name:     noticeCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return component.Notice{}
	}
	kind, msg, ok := strings.Cut(string(raw), noticeSep)
	if !ok {
		return component.Notice{}
	}
	switch kind := component.NoticeKind(kind); kind {
	case component.NoticeInfo, component.NoticeSuccess, component.NoticeError:
		return component.Notice{Kind: kind, Message: msg}
	default:
		return component.Notice{}
	}
}
