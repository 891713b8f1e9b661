// Package storagetest provides SQLite-backed stores for tests.
package storagetest

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stolasapp/larder/internal/config"
	"github.com/stolasapp/larder/internal/storage"
)

// New opens a migrated store in a temporary directory that is closed when the
// test completes.
func New(tb testing.TB) *storage.DB {
	tb.Helper()
	cfg := config.Default()
	cfg.SetDbFilepath(filepath.Join(tb.TempDir(), "db.sqlite"))
	store, err := storage.NewDB(tb.Context(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = store.Close() })
	return store
}
