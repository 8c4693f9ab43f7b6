// Package dashboard computes the aggregates shown on the admin dashboard from
// the backend status and the local session, user and transaction tables.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/smart-parking/console/internal/cache"
	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/consoleerrors"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	DefaultTransactionLimit = 10
	MaxTransactionLimit     = 100
	DefaultRevenueDays      = 7
	MaxRevenueDays          = 366
)

var (
	ErrDashboardUseCase = consoleerrors.CreateConsoleError("DashboardUseCase")
	ErrDatabase         = sqldb.DatabaseError{Console: ErrDashboardUseCase}
)

// UseCase -.
type UseCase struct {
	sessions     SessionRepository
	users        UserRepository
	transactions TransactionRepository
	backend      Backend
	log          logger.Interface
	now          func() time.Time
	cache        *cache.Cache
}

// Option -.
type Option func(*UseCase)

// WithClock replaces time.Now when computing the "today" and "last N days" windows.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// WithCache serves Stats and RevenueByDay from c while entries are fresh.
func WithCache(c *cache.Cache) Option {
	return func(uc *UseCase) {
		uc.cache = c
	}
}

// New -.
func New(sessions SessionRepository, users UserRepository, transactions TransactionRepository, backend Backend, log logger.Interface, opts ...Option) *UseCase {
	uc := &UseCase{
		sessions:     sessions,
		users:        users,
		transactions: transactions,
		backend:      backend,
		log:          log,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Stats gathers the four dashboard numbers concurrently. The first failure
// cancels the rest and is returned.
func (uc *UseCase) Stats(ctx context.Context) (dto.DashboardStats, error) {
	if v, ok := uc.cache.Get(cache.KeyDashboardStats); ok {
		if stats, ok := v.(dto.DashboardStats); ok {
			return stats, nil
		}
	}

	var (
		status  dto.SystemStatus
		active  int
		revenue float64
		users   int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		status, err = uc.backend.Status(gctx)
		if err != nil {
			return ErrDashboardUseCase.Wrap("Stats", "uc.backend.Status", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		active, err = uc.backend.ActiveSessionCount(gctx)
		if err != nil {
			return ErrDashboardUseCase.Wrap("Stats", "uc.backend.ActiveSessionCount", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		revenue, err = uc.sessions.RevenueSince(gctx, startOfDay(uc.now()).Unix())
		if err != nil {
			return ErrDatabase.Wrap("Stats", "uc.sessions.RevenueSince", err)
		}

		return nil
	})

	g.Go(func() error {
		var err error

		users, err = uc.users.Count(gctx)
		if err != nil {
			return ErrDatabase.Wrap("Stats", "uc.users.Count", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return dto.DashboardStats{}, err
	}

	stats := dto.DashboardStats{
		Slots: dto.SlotCounts{
			Total:    status.TotalSlots,
			Occupied: status.OccupiedSlots,
			Free:     status.FreeSlots,
		},
		Sessions: dto.SessionCounts{Active: active},
		Revenue:  dto.RevenueToday{Today: revenue},
		Users:    dto.UserCounts{Total: users},
	}

	uc.cache.Set(cache.KeyDashboardStats, stats)

	return stats, nil
}

// RecentTransactions returns up to limit transactions, newest first. A
// non-positive limit means the default; larger values are capped.
func (uc *UseCase) RecentTransactions(ctx context.Context, limit int) ([]dto.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}

	data, err := uc.transactions.Recent(ctx, limit)
	if err != nil {
		return nil, ErrDatabase.Wrap("RecentTransactions", "uc.transactions.Recent", err)
	}

	out := make([]dto.Transaction, len(data))

	for i := range data {
		out[i] = uc.entityToDTO(&data[i])
	}

	return out, nil
}

// RevenueByDay returns per-day revenue for sessions completed within the last
// days days, oldest first.
func (uc *UseCase) RevenueByDay(ctx context.Context, days int) ([]dto.RevenueDay, error) {
	if days <= 0 {
		days = DefaultRevenueDays
	}

	if days > MaxRevenueDays {
		days = MaxRevenueDays
	}

	key := cache.MakeRevenueKey(days)
	if v, ok := uc.cache.Get(key); ok {
		if out, ok := v.([]dto.RevenueDay); ok {
			return out, nil
		}
	}

	since := uc.now().AddDate(0, 0, -days).Unix()

	data, err := uc.sessions.RevenueByDay(ctx, since)
	if err != nil {
		return nil, ErrDatabase.Wrap("RevenueByDay", "uc.sessions.RevenueByDay", err)
	}

	out := make([]dto.RevenueDay, len(data))

	for i, d := range data {
		out[i] = dto.RevenueDay{ID: d.Day, Revenue: d.Revenue, Sessions: d.Sessions}
	}

	uc.cache.Set(key, out)

	return out, nil
}

func (uc *UseCase) entityToDTO(t *entity.Transaction) dto.Transaction {
	return dto.Transaction{
		TransactionID:   t.TransactionID,
		RFIDID:          t.RFIDID,
		Amount:          t.Amount,
		TransactionType: t.TransactionType,
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		SessionID:       t.SessionID,
		PaymentMethod:   t.PaymentMethod,
		Status:          t.Status,
		Timestamp:       time.Unix(t.Timestamp, 0).UTC().Format(time.RFC3339),
	}
}

// startOfDay is local midnight of the day t falls on.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
