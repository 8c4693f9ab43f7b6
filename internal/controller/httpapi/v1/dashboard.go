package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smart-parking/console/internal/usecase/dashboard"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	msgDashboardStats   = "Failed to fetch dashboard stats"
	msgRecentTxns       = "Failed to fetch transactions"
	msgRevenueAnalytics = "Failed to fetch revenue analytics"
)

type limitQuery struct {
	Limit string `form:"limit"`
}

type daysQuery struct {
	Days string `form:"days"`
}

type dashboardRoutes struct {
	d dashboard.Feature
	l logger.Interface
}

func NewDashboardRoutes(handler *gin.RouterGroup, d dashboard.Feature, l logger.Interface) {
	r := &dashboardRoutes{d, l}

	handler.GET("/dashboard/stats", r.stats)
	handler.GET("/transactions/recent", r.recentTransactions)
	handler.GET("/analytics/revenue", r.revenue)
}

func (r *dashboardRoutes) stats(c *gin.Context) {
	stats, err := r.d.Stats(c.Request.Context())
	if err != nil {
		r.l.Error(err, "http - v1 - dashboard stats")
		abort(c, http.StatusInternalServerError, msgDashboardStats)

		return
	}

	c.JSON(http.StatusOK, stats)
}

// recentTransactions treats a missing or malformed limit as the default.
func (r *dashboardRoutes) recentTransactions(c *gin.Context) {
	var q limitQuery
	_ = c.ShouldBindQuery(&q)

	items, err := r.d.RecentTransactions(c.Request.Context(), atoiOr(q.Limit, dashboard.DefaultTransactionLimit))
	if err != nil {
		r.l.Error(err, "http - v1 - recent transactions")
		abort(c, http.StatusInternalServerError, msgRecentTxns)

		return
	}

	c.JSON(http.StatusOK, items)
}

func (r *dashboardRoutes) revenue(c *gin.Context) {
	var q daysQuery
	_ = c.ShouldBindQuery(&q)

	days, err := r.d.RevenueByDay(c.Request.Context(), atoiOr(q.Days, dashboard.DefaultRevenueDays))
	if err != nil {
		r.l.Error(err, "http - v1 - revenue analytics")
		abort(c, http.StatusInternalServerError, msgRevenueAnalytics)

		return
	}

	c.JSON(http.StatusOK, days)
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
