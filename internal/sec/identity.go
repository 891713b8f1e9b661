package sec

import (
	"context"
	"log/slog"

	"connectrpc.com/authn"
)

// Identity is the authenticated user behind a request. The zero value is
// anonymous.
type Identity struct {
	UserID uint64
	Name   string
}

// Anonymous is the identity of a request without a valid session.
var Anonymous = Identity{}

// Authenticated reports whether the identity refers to a logged in user.
func (id Identity) Authenticated() bool {
	return id.UserID != 0
}

// LogValue satisfies [slog.LogValuer].
func (id Identity) LogValue() slog.Value {
	if !id.Authenticated() {
		return slog.StringValue("anonymous")
	}
	return slog.GroupValue(
		slog.Uint64("id", id.UserID),
		slog.String("name", id.Name),
	)
}

// GetIdentity returns the identity for the request. Returns [Anonymous] if
// the context has no identity or if the stored value is not an Identity
// (should only happen if middleware is misconfigured).
func GetIdentity(ctx context.Context) Identity {
	if id, ok := authn.GetInfo(ctx).(Identity); ok {
		return id
	}
	return Anonymous
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return authn.SetInfo(ctx, id)
}
