package cache

import "fmt"

// Cache key prefixes.
const (
	PrefixDashboard = "dashboard:"
	PrefixRevenue   = "revenue:"
)

// KeyDashboardStats holds the last dashboard.Stats result.
const KeyDashboardStats = PrefixDashboard + "stats"

// MakeRevenueKey creates a cache key for the revenue series over days.
func MakeRevenueKey(days int) string {
	return fmt.Sprintf("%s%d", PrefixRevenue, days)
}
