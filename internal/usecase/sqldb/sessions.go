package sqldb

import (
	"context"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/pkg/consoleerrors"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/logger"
)

var (
	ErrSessionDatabase  = DatabaseError{Console: consoleerrors.CreateConsoleError("SessionRepo")}
	ErrSessionNotUnique = NotUniqueError{Console: consoleerrors.CreateConsoleError("SessionRepo")}
)

// SessionRepo -.
type SessionRepo struct {
	*db.SQL
	log logger.Interface
}

// NewSessionRepo -.
func NewSessionRepo(database *db.SQL, log logger.Interface) *SessionRepo {
	return &SessionRepo{database, log}
}

// dayExpr renders a unix-seconds column as a UTC YYYY-MM-DD string.
func (r *SessionRepo) dayExpr(column string) string {
	if r.Dialect == db.DialectPostgres {
		return "to_char(to_timestamp(" + column + ") AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}

	return "strftime('%Y-%m-%d', " + column + ", 'unixepoch')"
}

// RevenueSince sums amount_charged over completed sessions that exited at or
// after since (unix seconds).
func (r *SessionRepo) RevenueSince(ctx context.Context, since int64) (float64, error) {
	sqlQuery, args, err := r.Builder.
		Select("COALESCE(SUM(amount_charged), 0)").
		From("sessions").
		Where("status = ?", entity.SessionStatusCompleted).
		Where("exit_time >= ?", since).
		ToSql()
	if err != nil {
		return 0, ErrSessionDatabase.Wrap("RevenueSince", "r.Builder", err)
	}

	var total float64

	if err := r.Pool.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return 0, ErrSessionDatabase.Wrap("RevenueSince", "r.Pool.QueryRowContext", err)
	}

	return total, nil
}

// RevenueByDay groups completed sessions that exited at or after since by UTC
// day, oldest first.
func (r *SessionRepo) RevenueByDay(ctx context.Context, since int64) ([]entity.RevenueDay, error) {
	sqlQuery, args, err := r.Builder.
		Select(r.dayExpr("exit_time")+" AS day", "COALESCE(SUM(amount_charged), 0)", "COUNT(*)").
		From("sessions").
		Where("status = ?", entity.SessionStatusCompleted).
		Where("exit_time >= ?", since).
		GroupBy("day").
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, ErrSessionDatabase.Wrap("RevenueByDay", "r.Builder", err)
	}

	rows, err := r.Pool.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, ErrSessionDatabase.Wrap("RevenueByDay", "r.Pool.QueryContext", err)
	}

	defer rows.Close()

	days := make([]entity.RevenueDay, 0)

	for rows.Next() {
		var d entity.RevenueDay

		if err := rows.Scan(&d.Day, &d.Revenue, &d.Sessions); err != nil {
			return nil, ErrSessionDatabase.Wrap("RevenueByDay", "rows.Scan", err)
		}

		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, ErrSessionDatabase.Wrap("RevenueByDay", "rows.Err", err)
	}

	return days, nil
}

// Insert -.
func (r *SessionRepo) Insert(ctx context.Context, s *entity.Session) error {
	sqlQuery, args, err := r.Builder.
		Insert("sessions").
		Columns("session_id", "rfid_id", "vehicle_no", "slot_id", "entry_time", "exit_time", "amount_charged", "status").
		Values(s.SessionID, s.RFIDID, s.VehicleNo, s.SlotID, s.EntryTime, s.ExitTime, s.AmountCharged, s.Status).
		ToSql()
	if err != nil {
		return ErrSessionDatabase.Wrap("Insert", "r.Builder", err)
	}

	if _, err := r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		if CheckNotUnique(err) {
			return ErrSessionNotUnique.Wrap("Insert", "r.Pool.ExecContext", err)
		}

		return ErrSessionDatabase.Wrap("Insert", "r.Pool.ExecContext", err)
	}

	return nil
}
