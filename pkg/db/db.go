// Package db opens the gateway's SQL pool. An empty URL selects an embedded
// sqlite file; postgres:// URLs go through the pgx stdlib driver.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

const (
	_defaultMaxPoolSize  = 1
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second

	// DefaultSQLiteFile is used when no database URL is configured.
	DefaultSQLiteFile = "parking.db"
)

// Dialect names understood by the repositories and migrations.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQL holds the pool together with a statement builder using the right
// placeholder format for the dialect.
type SQL struct {
	maxPoolSize       int
	connAttempts      int
	connTimeout       time.Duration
	enableForeignKeys bool

	Builder    squirrel.StatementBuilderType
	Pool       *sql.DB
	Dialect    string
	IsEmbedded bool
}

// OpenFunc matches sql.Open so tests can substitute the opener.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// New opens and pings the database described by url.
func New(url string, open OpenFunc, opts ...Option) (*SQL, error) {
	db := &SQL{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(db)
	}

	driver, dsn, err := db.resolve(url)
	if err != nil {
		return nil, err
	}

	pool, err := open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db - New - open: %w", err)
	}

	pool.SetMaxOpenConns(db.maxPoolSize)

	for db.connAttempts > 0 {
		if err = pool.Ping(); err == nil {
			break
		}

		db.connAttempts--

		time.Sleep(db.connTimeout)
	}

	if err != nil {
		pool.Close()

		return nil, fmt.Errorf("db - New - connAttempts == 0: %w", err)
	}

	if db.IsEmbedded && db.enableForeignKeys {
		if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
			pool.Close()

			return nil, fmt.Errorf("db - New - foreign keys: %w", err)
		}
	}

	db.Pool = pool

	return db, nil
}

func (db *SQL) resolve(url string) (driver, dsn string, err error) {
	switch {
	case url == "":
		db.Dialect = DialectSQLite
		db.IsEmbedded = true
		db.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

		return "sqlite", DefaultSQLiteFile, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		db.Dialect = DialectPostgres
		db.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

		return "pgx", url, nil
	case strings.HasPrefix(url, "sqlite://"), strings.HasPrefix(url, "file:"):
		db.Dialect = DialectSQLite
		db.IsEmbedded = true
		db.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

		path := strings.TrimPrefix(url, "sqlite://")
		if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return "", "", fmt.Errorf("db - New - mkdir: %w", err)
			}
		}

		return "sqlite", path, nil
	default:
		return "", "", fmt.Errorf("db - New - %w: %q", ErrUnsupportedURL, url)
	}
}

// Close -.
func (db *SQL) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
