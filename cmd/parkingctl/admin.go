package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/internal/usecase/auth"
	"github.com/smart-parking/console/internal/usecase/sqldb"
)

var (
	ErrMissingCredentials = errors.New("--username and --password are required")
	ErrAdminExists        = errors.New("admin already exists; pass --reset to change the password")
)

type adminOptions struct {
	username string
	email    string
	password string
	reset    bool
}

func newCreateAdminCmd(flags *globalFlags) *cobra.Command {
	opts := &adminOptions{}

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a dashboard administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.username == "" || opts.password == "" {
				return ErrMissingCredentials
			}

			database, err := flags.openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			hash, err := auth.HashPassword(opts.password)
			if err != nil {
				return err
			}

			repo := sqldb.NewAdminRepo(database, cliLogger())
			ctx := cmd.Context()

			err = repo.Insert(ctx, &entity.Admin{
				ID:           uuid.NewString(),
				Username:     opts.username,
				Email:        opts.email,
				PasswordHash: hash,
				CreatedAt:    time.Now().Unix(),
			})

			var notUnique sqldb.NotUniqueError

			switch {
			case err == nil:
				green.Fprintf(cmd.OutOrStdout(), "admin %q created\n", opts.username)

				return nil
			case !errors.As(err, &notUnique):
				return err
			case !opts.reset:
				return fmt.Errorf("%q: %w", opts.username, ErrAdminExists)
			}

			if _, err := repo.UpdatePassword(ctx, opts.username, hash); err != nil {
				return err
			}

			yellow.Fprintf(cmd.OutOrStdout(), "admin %q password reset\n", opts.username)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "admin", "login name")
	cmd.Flags().StringVar(&opts.email, "email", "admin@parking.local", "contact email")
	cmd.Flags().StringVar(&opts.password, "password", "", "login password")
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "update the password when the admin exists")

	return cmd
}
