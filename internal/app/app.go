// Package app contains the web front-end.
package app

import (
	"embed"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/stolasapp/larder/internal/accounts"
	"github.com/stolasapp/larder/internal/app/component"
	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
	"github.com/stolasapp/larder/internal/recipes"
	"github.com/stolasapp/larder/internal/sec"
	"github.com/stolasapp/larder/internal/session"
)

//go:embed static
var staticFiles embed.FS

// Services are the domain services behind the web front-end.
type Services struct {
	Accounts *accounts.Service
	Recipes  *recipes.Service
	Sessions *session.Manager
}

// New creates a web front-end server.
func New(cfg *larderv1.Config, logger *slog.Logger, svc Services) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)

	h := handler{
		logger:   logger,
		accounts: svc.Accounts,
		recipes:  svc.Recipes,
		sessions: svc.Sessions,
	}
	srv.HTTPErrorHandler = h.handleError

	if cfg.GetDevMode() {
		srv.Debug = true
		srv.Use(logRequests(logger))
	} else {
		srv.Use(middleware.Recover())
	}

	srv.Use(
		middleware.Decompress(),
		middleware.Gzip(),
		middleware.Secure(),
		middleware.CSRFWithConfig(middleware.CSRFConfig{
			TokenLookup:    "form:" + component.CSRFField,
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.GetSecureCookies(),
			CookieSameSite: http.SameSiteLaxMode,
		}),
		middleware.RequestID(),
		identify(svc.Sessions),
	)

	h.register(srv)
	staticFS := echo.MustSubFS(staticFiles, "static")
	srv.StaticFS("/static/", staticFS)
	srv.FileFS("/robots.txt", "robots.txt", staticFS)
	return srv
}

// identify resolves the session cookie into the identity carried by the
// request context.
func identify(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := sessions.Current(req.Context(), req)
			c.SetRequest(req.WithContext(sec.WithIdentity(req.Context(), id)))
			return next(c)
		}
	}
}

// requireLogin redirects anonymous requests to the login page before the
// handler runs.
func requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !sec.GetIdentity(c.Request().Context()).Authenticated() {
			return redirect(c, component.PathLogin, component.Notice{
				Kind:    component.NoticeInfo,
				Message: msgLoginRequired,
			})
		}
		return next(c)
	}
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.String("route", c.Path()),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
				slog.Any("user", sec.GetIdentity(req.Context())),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(
				req.Context(),
				slog.LevelDebug,
				"request handled",
				attrs...,
			)
			return err
		}
	}
}
