package command

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"golang.org/x/term"

	"github.com/stolasapp/larder/internal/accounts"
	"github.com/stolasapp/larder/internal/app"
	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
	"github.com/stolasapp/larder/internal/recipes"
	"github.com/stolasapp/larder/internal/session"
	"github.com/stolasapp/larder/internal/storage"
)

type configKey struct{}

// runtimeEnv bundles what a subcommand needs once the config is resolved.
type runtimeEnv struct {
	cfg    *larderv1.Config
	logger *slog.Logger
	store  *storage.DB
	svc    app.Services
}

// Close releases the underlying store.
func (e *runtimeEnv) Close() error {
	return e.store.Close()
}

// openEnv opens the store named by the resolved config and wires the
// account, recipe, and session services on top of it.
func openEnv(ctx context.Context) (*runtimeEnv, error) {
	cfg, ok := ctx.Value(configKey{}).(*larderv1.Config)
	if !ok {
		return nil, errors.New("config file resolution failed")
	}
	logger := slog.Default()
	store, err := storage.NewDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return &runtimeEnv{
		cfg:    cfg,
		logger: logger,
		store:  store,
		svc: app.Services{
			Accounts: accounts.New(store),
			Recipes:  recipes.New(store),
			Sessions: session.New(cfg, logger, store, store),
		},
	}, nil
}

// prompt writes msg to stderr when stdin is a terminal and reads one line of
// input. With mask set and a terminal attached, echo is disabled.
func prompt(msg string, mask bool) ([]byte, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // stdin fd fits in an int
	if !term.IsTerminal(fd) {
		return readLine(os.Stdin)
	}
	if _, err := os.Stderr.WriteString(msg); err != nil {
		return nil, err
	}
	if mask {
		line, err := term.ReadPassword(fd)
		_, _ = os.Stderr.WriteString("\n")
		return line, err
	}
	return readLine(os.Stdin)
}

// readLine reads up to the first newline, dropping the line terminator. A
// final line without a newline is returned as-is.
func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// version reports the module version for tagged builds, falling back to the
// VCS revision for local ones.
func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	rev, ok := settings["vcs.revision"]
	if !ok {
		return "unknown"
	}
	if settings["vcs.modified"] == "true" {
		rev += "-dev"
	}
	return rev
}
