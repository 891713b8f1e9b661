package command

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stolasapp/larder/internal/app"
	"github.com/stolasapp/larder/internal/seed"
	"github.com/stolasapp/larder/internal/server"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "serve the recipe sharing Web App",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			rt, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := rt.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			svc := rt.svc
			// In dev mode, populate an empty store with fake data
			if rt.cfg.GetDevMode() {
				if _, err = seed.Run(cmd.Context(), rt.logger, svc.Accounts, svc.Recipes, seed.Options{
					Seed: seed.FromEnv(),
				}); err != nil {
					return err
				}
			}

			grp, ctx := errgroup.WithContext(cmd.Context())
			addr, err := server.Start(ctx, grp, rt.logger, rt.cfg.GetWebAddress(), app.New(rt.cfg, rt.logger, svc))
			if err != nil {
				return err
			}
			rt.logger.InfoContext(ctx, "app server ready", slog.String("url", "http://"+addr+"/"))
			return grp.Wait()
		},
	}
}
