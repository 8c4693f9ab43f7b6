package main

import (
	"database/sql"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/logger"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	gray   = color.New(color.FgHiBlack)
)

func (f *globalFlags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// openDB opens the configured database and brings its schema up to date.
func (f *globalFlags) openDB() (*db.SQL, error) {
	url := f.dbURL

	if url == "" {
		cfg, err := f.loadConfig()
		if err != nil {
			return nil, err
		}

		url = cfg.DB.URL
	}

	database, err := db.New(url, sql.Open, db.ConnAttempts(1), db.EnableForeignKeys(true))
	if err != nil {
		return nil, err
	}

	if err := sqldb.Migrate(database); err != nil {
		database.Close()

		return nil, fmt.Errorf("migrating: %w", err)
	}

	return database, nil
}

func cliLogger() logger.Interface {
	return logger.New("error")
}

func newMigrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := flags.openDB()
			if err != nil {
				return err
			}
			defer database.Close()

			green.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", database.Dialect)

			return nil
		},
	}
}
