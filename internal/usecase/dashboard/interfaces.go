package dashboard

import (
	"context"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/internal/entity/dto/v1"
)

type (
	SessionRepository interface {
		RevenueSince(ctx context.Context, since int64) (float64, error)
		RevenueByDay(ctx context.Context, since int64) ([]entity.RevenueDay, error)
	}

	UserRepository interface {
		Count(ctx context.Context) (int, error)
	}

	TransactionRepository interface {
		Recent(ctx context.Context, limit int) ([]entity.Transaction, error)
	}

	// Backend is the slice of the parking backend the dashboard reads.
	Backend interface {
		Status(ctx context.Context) (dto.SystemStatus, error)
		ActiveSessionCount(ctx context.Context) (int, error)
	}

	Feature interface {
		Stats(ctx context.Context) (dto.DashboardStats, error)
		RecentTransactions(ctx context.Context, limit int) ([]dto.Transaction, error)
		RevenueByDay(ctx context.Context, days int) ([]dto.RevenueDay, error)
	}
)
