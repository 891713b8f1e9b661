// Package uitest provides UI testing utilities using Rod.
package uitest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/larder/internal/accounts"
	"github.com/stolasapp/larder/internal/app"
	"github.com/stolasapp/larder/internal/config"
	larderv1 "github.com/stolasapp/larder/internal/gen/stolasapp/larder/v1"
	"github.com/stolasapp/larder/internal/recipes"
	"github.com/stolasapp/larder/internal/seed"
	"github.com/stolasapp/larder/internal/server"
	"github.com/stolasapp/larder/internal/session"
	"github.com/stolasapp/larder/internal/storage"
)

// TestSeed is the fixed seed used for reproducible test data.
const TestSeed uint64 = 12345

// Server is a test server that runs the app in dev mode against a seeded
// temporary database.
type Server struct {
	baseURL string
	cancel  context.CancelFunc
	grp     *errgroup.Group
	store   *storage.DB
	dir     string
	// Seeded lists the fake users created at startup; each has the password
	// [seed.Password].
	Seeded []string
}

// newTestServer creates and starts a new test server.
// It panics on errors since it runs before any subtest can report them.
func newTestServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	grp, ctx := errgroup.WithContext(ctx)

	logger := slog.New(slog.DiscardHandler)

	dir, err := os.MkdirTemp("", "larder-uitest-")
	if err != nil {
		cancel()
		panic(fmt.Sprintf("failed to create temp dir: %v", err))
	}
	cfg := testConfig(dir)
	store, err := storage.NewDB(ctx, cfg, logger)
	if err != nil {
		cancel()
		panic(fmt.Sprintf("failed to create storage: %v", err))
	}

	svc := app.Services{
		Accounts: accounts.New(store),
		Recipes:  recipes.New(store),
		Sessions: session.New(cfg, logger, store, store),
	}
	res, err := seed.Run(ctx, logger, svc.Accounts, svc.Recipes, seed.Options{Seed: TestSeed})
	if err != nil {
		cancel()
		_ = store.Close()
		panic(fmt.Sprintf("failed to seed storage: %v", err))
	}

	appAddr, err := server.Start(ctx, grp, logger, "127.0.0.1:0", app.New(cfg, logger, svc))
	if err != nil {
		cancel()
		_ = store.Close()
		panic(fmt.Sprintf("failed to start app server: %v", err))
	}

	return &Server{
		baseURL: "http://" + appAddr,
		cancel:  cancel,
		grp:     grp,
		store:   store,
		dir:     dir,
		Seeded:  res.Users,
	}
}

// BaseURL returns the base URL of the test server.
func (s *Server) BaseURL() string {
	return s.baseURL
}

// Close shuts down the test server.
// Errors are ignored since this runs during test cleanup where failures
// are typically unrecoverable and already logged by the errgroup.
func (s *Server) Close() {
	s.cancel()
	_ = s.grp.Wait()
	_ = s.store.Close()
	_ = os.RemoveAll(s.dir)
}

func testConfig(dir string) *larderv1.Config {
	cfg := config.Default()
	cfg.SetLogLevel(larderv1.Config_DEBUG)
	cfg.SetDbFilepath(filepath.Join(dir, "db.sqlite"))
	cfg.SetSessionKey(config.NewSessionKey())
	cfg.SetDevMode(true)
	return cfg
}

// URL constructs a full URL from the server base URL and a path.
func (s *Server) URL(path string) string {
	return fmt.Sprintf("%s%s", s.baseURL, path)
}

// RecipeCount returns the number of stored recipes owned by the named user.
func (s *Server) RecipeCount(ctx context.Context, name string) (int, error) {
	user, err := s.store.GetUserByName(ctx, name)
	if err != nil {
		return 0, err
	}
	rows, err := s.store.ListRecipesByOwner(ctx, user.ID)
	return len(rows), err
}
