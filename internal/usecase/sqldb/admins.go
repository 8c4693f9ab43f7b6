package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/pkg/consoleerrors"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/logger"
)

var (
	ErrAdminDatabase  = DatabaseError{Console: consoleerrors.CreateConsoleError("AdminRepo")}
	ErrAdminNotUnique = NotUniqueError{Console: consoleerrors.CreateConsoleError("AdminRepo")}
)

// AdminRepo -.
type AdminRepo struct {
	*db.SQL
	log logger.Interface
}

// NewAdminRepo -.
func NewAdminRepo(database *db.SQL, log logger.Interface) *AdminRepo {
	return &AdminRepo{database, log}
}

// GetByUsername returns nil when no admin has that username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	sqlQuery, args, err := r.Builder.
		Select("id", "username", "email", "password_hash", "created_at").
		From("admins").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return nil, ErrAdminDatabase.Wrap("GetByUsername", "r.Builder", err)
	}

	a := &entity.Admin{}

	err = r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, ErrAdminDatabase.Wrap("GetByUsername", "r.Pool.QueryRowContext", err)
	}

	return a, nil
}

// Insert -.
func (r *AdminRepo) Insert(ctx context.Context, a *entity.Admin) error {
	sqlQuery, args, err := r.Builder.
		Insert("admins").
		Columns("id", "username", "email", "password_hash", "created_at").
		Values(a.ID, a.Username, a.Email, a.PasswordHash, a.CreatedAt).
		ToSql()
	if err != nil {
		return ErrAdminDatabase.Wrap("Insert", "r.Builder", err)
	}

	if _, err := r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		if CheckNotUnique(err) {
			return ErrAdminNotUnique.Wrap("Insert", "r.Pool.ExecContext", err)
		}

		return ErrAdminDatabase.Wrap("Insert", "r.Pool.ExecContext", err)
	}

	return nil
}

// UpdatePassword -.
func (r *AdminRepo) UpdatePassword(ctx context.Context, username, passwordHash string) (bool, error) {
	sqlQuery, args, err := r.Builder.
		Update("admins").
		Set("password_hash", passwordHash).
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return false, ErrAdminDatabase.Wrap("UpdatePassword", "r.Builder", err)
	}

	res, err := r.Pool.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return false, ErrAdminDatabase.Wrap("UpdatePassword", "r.Pool.ExecContext", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, ErrAdminDatabase.Wrap("UpdatePassword", "res.RowsAffected", err)
	}

	return n > 0, nil
}
