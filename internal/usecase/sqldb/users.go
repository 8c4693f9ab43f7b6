package sqldb

import (
	"context"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/pkg/consoleerrors"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/logger"
)

var (
	ErrUserDatabase  = DatabaseError{Console: consoleerrors.CreateConsoleError("UserRepo")}
	ErrUserNotUnique = NotUniqueError{Console: consoleerrors.CreateConsoleError("UserRepo")}
)

// UserRepo -.
type UserRepo struct {
	*db.SQL
	log logger.Interface
}

// NewUserRepo -.
func NewUserRepo(database *db.SQL, log logger.Interface) *UserRepo {
	return &UserRepo{database, log}
}

// Count returns the number of registered users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	sqlQuery, args, err := r.Builder.
		Select("COUNT(*)").
		From("users").
		ToSql()
	if err != nil {
		return 0, ErrUserDatabase.Wrap("Count", "r.Builder", err)
	}

	var count int

	if err := r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, ErrUserDatabase.Wrap("Count", "r.Pool.QueryRowContext", err)
	}

	return count, nil
}

// Insert -.
func (r *UserRepo) Insert(ctx context.Context, u *entity.User) error {
	sqlQuery, args, err := r.Builder.
		Insert("users").
		Columns("rfid_id", "user_name", "vehicle_no", "wallet_balance", "contact", "email", "is_active", "created_at").
		Values(u.RFIDID, u.UserName, u.VehicleNo, u.WalletBalance, u.Contact, u.Email, u.IsActive, u.CreatedAt).
		ToSql()
	if err != nil {
		return ErrUserDatabase.Wrap("Insert", "r.Builder", err)
	}

	if _, err := r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		if CheckNotUnique(err) {
			return ErrUserNotUnique.Wrap("Insert", "r.Pool.ExecContext", err)
		}

		return ErrUserDatabase.Wrap("Insert", "r.Pool.ExecContext", err)
	}

	return nil
}
