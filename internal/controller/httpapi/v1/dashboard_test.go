package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/mocks"
	"github.com/smart-parking/console/pkg/logger"
)

func dashboardTest(t *testing.T) (*mocks.MockDashboardFeature, *gin.Engine) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	dash := mocks.NewMockDashboardFeature(mockCtl)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	handler := engine.Group("/api")

	NewDashboardRoutes(handler, dash, logger.New("error"))

	return dash, engine
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	dash, engine := dashboardTest(t)

	dash.EXPECT().Stats(gomock.Any()).Return(dto.DashboardStats{
		Slots:    dto.SlotCounts{Total: 6, Occupied: 2, Free: 4},
		Sessions: dto.SessionCounts{Active: 2},
		Revenue:  dto.RevenueToday{Today: 120},
		Users:    dto.UserCounts{Total: 5},
	}, nil)

	w := get(engine, "/api/dashboard/stats")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"slots":{"total":6,"occupied":2,"free":4},"sessions":{"active":2},"revenue":{"today":120},"users":{"total":5}}`,
		w.Body.String())

	dash.EXPECT().Stats(gomock.Any()).Return(dto.DashboardStats{}, errors.New("backend down"))

	w = get(engine, "/api/dashboard/stats")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch dashboard stats", decodeError(t, w))
}

func TestRecentTransactions_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 10},
		{query: "?limit=25", want: 25},
		{query: "?limit=0", want: 10},
		{query: "?limit=-3", want: 10},
		{query: "?limit=abc", want: 10},
		{query: "?limit=500", want: 500},
	}

	for _, tc := range tests {
		t.Run("limit"+tc.query, func(t *testing.T) {
			t.Parallel()

			dash, engine := dashboardTest(t)
			dash.EXPECT().RecentTransactions(gomock.Any(), tc.want).Return([]dto.Transaction{}, nil)

			w := get(engine, "/api/transactions/recent"+tc.query)

			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestRevenueAnalytics(t *testing.T) {
	t.Parallel()

	dash, engine := dashboardTest(t)

	dash.EXPECT().RevenueByDay(gomock.Any(), 30).
		Return([]dto.RevenueDay{{ID: "2025-01-14", Revenue: 80, Sessions: 3}}, nil)

	w := get(engine, "/api/analytics/revenue?days=30")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"2025-01-14","revenue":80,"sessions":3}]`, w.Body.String())

	dash.EXPECT().RevenueByDay(gomock.Any(), 7).Return(nil, errors.New("no such table"))

	w = get(engine, "/api/analytics/revenue")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch revenue analytics", decodeError(t, w))
}
