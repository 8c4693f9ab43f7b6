package sqldb

import (
	"context"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/pkg/consoleerrors"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/logger"
)

var (
	ErrTransactionDatabase  = DatabaseError{Console: consoleerrors.CreateConsoleError("TransactionRepo")}
	ErrTransactionNotUnique = NotUniqueError{Console: consoleerrors.CreateConsoleError("TransactionRepo")}
)

// TransactionRepo -.
type TransactionRepo struct {
	*db.SQL
	log logger.Interface
}

// NewTransactionRepo -.
func NewTransactionRepo(database *db.SQL, log logger.Interface) *TransactionRepo {
	return &TransactionRepo{database, log}
}

// Recent returns up to limit transactions, newest first.
func (r *TransactionRepo) Recent(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit <= 0 {
		return []entity.Transaction{}, nil
	}

	sqlQuery, args, err := r.Builder.
		Select(
			"transaction_id",
			"rfid_id",
			"amount",
			"transaction_type",
			"balance_before",
			"balance_after",
			"session_id",
			"payment_method",
			"status",
			"timestamp",
		).
		From("transactions").
		OrderBy("timestamp DESC", "transaction_id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, ErrTransactionDatabase.Wrap("Recent", "r.Builder", err)
	}

	rows, err := r.Pool.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, ErrTransactionDatabase.Wrap("Recent", "r.Pool.QueryContext", err)
	}

	defer rows.Close()

	txs := make([]entity.Transaction, 0, limit)

	for rows.Next() {
		var t entity.Transaction

		err := rows.Scan(
			&t.TransactionID,
			&t.RFIDID,
			&t.Amount,
			&t.TransactionType,
			&t.BalanceBefore,
			&t.BalanceAfter,
			&t.SessionID,
			&t.PaymentMethod,
			&t.Status,
			&t.Timestamp,
		)
		if err != nil {
			return nil, ErrTransactionDatabase.Wrap("Recent", "rows.Scan", err)
		}

		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, ErrTransactionDatabase.Wrap("Recent", "rows.Err", err)
	}

	return txs, nil
}

// Insert -.
func (r *TransactionRepo) Insert(ctx context.Context, t *entity.Transaction) error {
	sqlQuery, args, err := r.Builder.
		Insert("transactions").
		Columns(
			"transaction_id",
			"rfid_id",
			"amount",
			"transaction_type",
			"balance_before",
			"balance_after",
			"session_id",
			"payment_method",
			"status",
			"timestamp",
		).
		Values(t.TransactionID, t.RFIDID, t.Amount, t.TransactionType, t.BalanceBefore, t.BalanceAfter, t.SessionID, t.PaymentMethod, t.Status, t.Timestamp).
		ToSql()
	if err != nil {
		return ErrTransactionDatabase.Wrap("Insert", "r.Builder", err)
	}

	if _, err := r.Pool.ExecContext(ctx, sqlQuery, args...); err != nil {
		if CheckNotUnique(err) {
			return ErrTransactionNotUnique.Wrap("Insert", "r.Pool.ExecContext", err)
		}

		return ErrTransactionDatabase.Wrap("Insert", "r.Pool.ExecContext", err)
	}

	return nil
}
