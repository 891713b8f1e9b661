package command

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// userPageSize is the number of users fetched per query when listing.
const userPageSize = 100

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
		userListCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create user",
		Long: "Creates user entry for the provided username and password. Passwords may be\n" +
			"provided via stdin or through the interactive prompt.",

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			rt, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := rt.Close(); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			name := args[0]
			passwd, err := prompt("password: ", true)
			if err != nil {
				return err
			}
			userID, err := rt.svc.Accounts.Register(cmd.Context(), name, string(passwd))
			if err != nil {
				return err
			}

			rt.logger.InfoContext(cmd.Context(), "created user",
				slog.String("name", name),
				slog.Uint64("id", userID),
			)
			return nil
		},
	}
}

func userListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
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

			svc := rt.svc.Accounts
			after := ""
			for {
				users, err := svc.List(cmd.Context(), after, userPageSize)
				if err != nil {
					return err
				}
				for _, user := range users {
					if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", user.ID, user.Name); err != nil {
						return err
					}
				}
				if len(users) < userPageSize {
					return nil
				}
				after = users[len(users)-1].Name
			}
		},
	}
}
