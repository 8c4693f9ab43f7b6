package sqldb

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/smart-parking/console/pkg/db"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies every pending migration. The pool stays open afterwards.
func Migrate(sqlDB *db.SQL) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("sqldb - Migrate - iofs.New: %w", err)
	}
	defer src.Close()

	var (
		driver database.Driver
		name   string
	)

	switch sqlDB.Dialect {
	case db.DialectPostgres:
		name = "pgx5"
		driver, err = pgxmigrate.WithInstance(sqlDB.Pool, &pgxmigrate.Config{})
	default:
		name = "sqlite"
		driver, err = sqlitemigrate.WithInstance(sqlDB.Pool, &sqlitemigrate.Config{})
	}

	if err != nil {
		return fmt.Errorf("sqldb - Migrate - %s.WithInstance: %w", name, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return fmt.Errorf("sqldb - Migrate - migrate.NewWithInstance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sqldb - Migrate - m.Up: %w", err)
	}

	return nil
}
