package session

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/stolasapp/larder/internal/config"
	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
	"github.com/stolasapp/larder/internal/sec"
	"github.com/stolasapp/larder/internal/storage"
	"github.com/stolasapp/larder/internal/storage/db"
	"github.com/stolasapp/larder/internal/storage/storagetest"
)

const testKey = "0123456789abcdef0123456789abcdef"

func setup(t *testing.T, mod func(cfg *larderv1.Config)) (*Manager, *storage.DB, db.User) {
	t.Helper()
	store := storagetest.New(t)
	user, err := store.CreateUser(t.Context(), db.User{Name: "alice", PasswordHash: []byte{}})
	require.NoError(t, err)
	cfg := config.Default()
	cfg.SetSessionKey(testKey)
	if mod != nil {
		mod(cfg)
	}
	return New(cfg, slog.New(slog.DiscardHandler), store, store), store, user
}

func begin(t *testing.T, mgr *Manager, user db.User) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Begin(t.Context(), rec, user))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func request(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestManager_Begin(t *testing.T) {
	t.Parallel()
	mgr, _, user := setup(t, nil)

	cookie := begin(t, mgr, user)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Zero(t, cookie.MaxAge)

	id := mgr.Current(t.Context(), request(cookie))
	assert.Equal(t, sec.Identity{UserID: user.ID, Name: "alice"}, id)
}

func TestManager_BeginTTL(t *testing.T) {
	t.Parallel()
	mgr, _, user := setup(t, func(cfg *larderv1.Config) {
		cfg.SetSessionTtl(durationpb.New(time.Hour))
		cfg.SetSecureCookies(true)
	})

	cookie := begin(t, mgr, user)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.Secure)
	assert.True(t, mgr.Current(t.Context(), request(cookie)).Authenticated())

	mgr.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err := mgr.resolve(t.Context(), request(cookie))
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_End(t *testing.T) {
	t.Parallel()
	mgr, _, user := setup(t, nil)

	cookie := begin(t, mgr, user)
	other := begin(t, mgr, user)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.End(t.Context(), rec, request(cookie)))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, CookieName, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)

	// replaying the old token does not restore the session
	_, err := mgr.resolve(t.Context(), request(cookie))
	require.ErrorIs(t, err, ErrRevoked)

	// sessions are independent
	assert.True(t, mgr.Current(t.Context(), request(other)).Authenticated())

	// ending without a session still clears the cookie
	rec = httptest.NewRecorder()
	require.NoError(t, mgr.End(t.Context(), rec, request(nil)))
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestManager_resolve(t *testing.T) {
	t.Parallel()
	mgr, store, user := setup(t, nil)

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) *http.Cookie {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return &http.Cookie{Name: CookieName, Value: token}
	}

	const sessionID = "9b1f8f0e-1c39-4b7a-8a52-0f1c0d0b7a11"
	require.NoError(t, store.CreateSession(t.Context(), db.Session{ID: sessionID, User: user.ID}))
	bob, err := store.CreateUser(t.Context(), db.User{Name: "bob", PasswordHash: []byte{}})
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie func(t *testing.T) *http.Cookie
		err    error
	}{
		{
			name:   "no cookie",
			cookie: func(*testing.T) *http.Cookie { return nil },
			err:    ErrNoSession,
		},
		{
			name: "garbage",
			cookie: func(*testing.T) *http.Cookie {
				return &http.Cookie{Name: CookieName, Value: "not-a-token"}
			},
			err: jwt.ErrTokenMalformed,
		},
		{
			name: "wrong key",
			cookie: func(t *testing.T) *http.Cookie {
				return sign(t, jwt.SigningMethodHS256, []byte("another key of at least 32 bytes!"),
					jwt.RegisteredClaims{ID: sessionID, Subject: "1"})
			},
			err: jwt.ErrTokenSignatureInvalid,
		},
		{
			name: "wrong algorithm",
			cookie: func(t *testing.T) *http.Cookie {
				return sign(t, jwt.SigningMethodHS512, []byte(testKey),
					jwt.RegisteredClaims{ID: sessionID, Subject: "1"})
			},
			err: jwt.ErrTokenSignatureInvalid,
		},
		{
			name: "unknown session",
			cookie: func(t *testing.T) *http.Cookie {
				return sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.RegisteredClaims{
					ID:      "00000000-0000-0000-0000-000000000000",
					Subject: formatID(user.ID),
				})
			},
			err: ErrRevoked,
		},
		{
			name: "session of another user",
			cookie: func(t *testing.T) *http.Cookie {
				return sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.RegisteredClaims{
					ID:      sessionID,
					Subject: formatID(bob.ID),
				})
			},
			err: ErrRevoked,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			id, err := mgr.resolve(t.Context(), request(test.cookie(t)))
			require.ErrorIs(t, err, test.err)
			assert.Equal(t, sec.Anonymous, id)
		})
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		cookie := sign(t, jwt.SigningMethodHS256, []byte(testKey), jwt.RegisteredClaims{
			ID:      sessionID,
			Subject: formatID(user.ID),
		})
		id, err := mgr.resolve(t.Context(), request(cookie))
		require.NoError(t, err)
		assert.Equal(t, user.ID, id.UserID)
	})
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
