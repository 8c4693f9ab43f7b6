package sqldb

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/smart-parking/console/pkg/consoleerrors"
)

const pgUniqueViolation = "23505"

type NotFoundError struct {
	Console consoleerrors.InternalError
}

func (e NotFoundError) Error() string {
	return e.Console.Error()
}

func (e NotFoundError) Unwrap() error {
	return e.Console.OriginalError
}

func (e NotFoundError) Wrap(function, call string, err error) error {
	e.Console = e.Console.WrapWithMessage(function, call, "Error not found", err)

	return e
}

type DatabaseError struct {
	Console consoleerrors.InternalError
}

func (e DatabaseError) Error() string {
	return e.Console.Error()
}

func (e DatabaseError) Unwrap() error {
	return e.Console.OriginalError
}

func (e DatabaseError) Wrap(function, call string, err error) error {
	e.Console = e.Console.WrapWithMessage(function, call, "database error", err)

	return e
}

type NotUniqueError struct {
	Console consoleerrors.InternalError
}

func (e NotUniqueError) Error() string {
	return e.Console.Error()
}

func (e NotUniqueError) Unwrap() error {
	return e.Console.OriginalError
}

func (e NotUniqueError) Wrap(function, call string, err error) error {
	e.Console = e.Console.WrapWithMessage(function, call, "unique constraint violation", err)

	return e
}

// CheckNotUnique reports whether err is a unique or primary key violation
// from either supported driver.
func CheckNotUnique(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()

		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
