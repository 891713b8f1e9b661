package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stolasapp/larder/internal/seed"
)

func seedCommand() *cobra.Command {
	var opts seed.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty database with fake users and recipes",
		Long: "Creates fake users, each owning a few recipes, for local development.\n" +
			"Nothing is written if the database already has users. Every seeded user\n" +
			"shares the password \"" + seed.Password + "\".",
		Args: cobra.NoArgs,
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

			if !cmd.Flags().Changed("seed") {
				opts.Seed = seed.FromEnv()
			}
			res, err := seed.Run(cmd.Context(), rt.logger, rt.svc.Accounts, rt.svc.Recipes, opts)
			if err != nil {
				return err
			}
			for _, name := range res.Users {
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for reproducible data (default $LARDER_SEED or random)")
	cmd.Flags().IntVar(&opts.Users, "users", 0, "number of users to create")
	return cmd
}
