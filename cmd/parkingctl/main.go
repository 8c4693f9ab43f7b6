// Command parkingctl prepares a gateway database and its secrets: schema
// migrations, admin accounts, sample data and the JWT signing key.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	dbURL      string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "parkingctl",
		Short:         "Smart parking gateway administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&flags.dbURL, "db", "", "database URL, overrides the config file")

	cmd.AddCommand(
		newMigrateCmd(flags),
		newCreateAdminCmd(flags),
		newSeedCmd(flags),
		newStoreJWTKeyCmd(flags),
	)

	return cmd
}
