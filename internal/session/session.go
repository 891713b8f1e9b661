// Package session binds browser requests to authenticated users. A session is
// a row in the store plus a signed cookie naming it; both must agree for a
// request to be treated as logged in.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
	"github.com/stolasapp/larder/internal/sec"
	"github.com/stolasapp/larder/internal/storage"
	"github.com/stolasapp/larder/internal/storage/db"
)

// CookieName is the name of the cookie carrying the session token.
const CookieName = "larder_session"

const (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession Error = "no session"
	// ErrRevoked is returned when the token is valid but its session has
	// ended or belongs to another user.
	ErrRevoked Error = "session revoked"
)

// Error is an error type returned by the session manager.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Manager creates, resolves and ends sessions.
type Manager struct {
	logger   *slog.Logger
	sessions storage.Sessions
	users    storage.Users
	key      []byte
	secure   bool
	ttl      time.Duration
	now      func() time.Time
}

// New creates a Manager signing tokens with the configured session key.
func New(
	cfg *larderv1.Config,
	logger *slog.Logger,
	sessions storage.Sessions,
	users storage.Users,
) *Manager {
	return &Manager{
		logger:   logger,
		sessions: sessions,
		users:    users,
		key:      []byte(cfg.GetSessionKey()),
		secure:   cfg.GetSecureCookies(),
		ttl:      cfg.GetSessionTtl().AsDuration(),
		now:      time.Now,
	}
}

// Begin starts a new session for user and writes its cookie to w.
func (m *Manager) Begin(ctx context.Context, w http.ResponseWriter, user db.User) error {
	now := m.now()
	sessionID := uuid.NewString()
	if err := m.sessions.CreateSession(ctx, db.Session{
		ID:         sessionID,
		User:       user.ID,
		CreateTime: now.UTC(),
	}); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:       sessionID,
		Subject:  strconv.FormatUint(user.ID, 10),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	cookie := m.cookie(token)
	if m.ttl > 0 {
		cookie.MaxAge = int(m.ttl.Seconds())
	}
	http.SetCookie(w, cookie)
	return nil
}

// End deletes the session named by the request's cookie, if any, and expires
// the cookie. A missing or invalid cookie is not an error.
func (m *Manager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie := m.cookie("")
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	claims, err := m.parse(r)
	if err != nil {
		return nil //nolint:nilerr // nothing to end
	}
	if err = m.sessions.DeleteSession(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Current returns the identity behind the request, or [sec.Anonymous] if the
// request has no valid session.
func (m *Manager) Current(ctx context.Context, r *http.Request) sec.Identity {
	id, err := m.resolve(ctx, r)
	switch {
	case errors.Is(err, ErrNoSession):
		return sec.Anonymous
	case err != nil:
		m.logger.DebugContext(ctx, "ignoring session", slog.Any("error", err))
		return sec.Anonymous
	default:
		return id
	}
}

func (m *Manager) resolve(ctx context.Context, r *http.Request) (sec.Identity, error) {
	claims, err := m.parse(r)
	if err != nil {
		return sec.Anonymous, err
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return sec.Anonymous, fmt.Errorf("invalid session subject: %w", err)
	}

	session, err := m.sessions.GetSession(ctx, claims.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return sec.Anonymous, ErrRevoked
	case err != nil:
		return sec.Anonymous, err
	case session.User != userID:
		return sec.Anonymous, ErrRevoked
	}

	user, err := m.users.GetUser(ctx, userID)
	if err != nil {
		return sec.Anonymous, fmt.Errorf("session user: %w", err)
	}
	return sec.Identity{UserID: user.ID, Name: user.Name}, nil
}

func (m *Manager) parse(r *http.Request) (*jwt.RegisteredClaims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(
		cookie.Value,
		claims,
		func(*jwt.Token) (any, error) { return m.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if claims.ID == "" {
		return nil, errors.New("invalid session token: missing id")
	}
	return claims, nil
}

func (m *Manager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
