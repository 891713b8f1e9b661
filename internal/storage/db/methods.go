package db

import "log/slog"

// LogValue satisfies [slog.LogValuer], omitting the password hash.
func (u User) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("id", u.ID),
		slog.String("name", u.Name),
	)
}

// LogValue satisfies [slog.LogValuer], omitting the free-text fields.
func (r Recipe) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("id", r.ID),
		slog.Uint64("owner", r.Owner),
		slog.String("title", r.Title),
	)
}
