package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/mocks"
	"github.com/smart-parking/console/internal/usecase"
	"github.com/smart-parking/console/internal/usecase/auth"
	"github.com/smart-parking/console/pkg/logger"
)

type routerMocks struct {
	auth *mocks.MockAuthFeature
	demo *mocks.MockDemoFeature
}

func routerTest(t *testing.T, mutate func(cfg *config.Config)) (routerMocks, *gin.Engine) {
	t.Helper()

	mockCtl := gomock.NewController(t)

	m := routerMocks{
		auth: mocks.NewMockAuthFeature(mockCtl),
		demo: mocks.NewMockDemoFeature(mockCtl),
	}

	uc := usecase.Usecases{
		Auth:       m.auth,
		Dashboard:  mocks.NewMockDashboardFeature(mockCtl),
		Demo:       m.demo,
		Monitor:    mocks.NewMockMonitorFeature(mockCtl),
		Backend:    mocks.NewMockForwarder(mockCtl),
		Vision:     mocks.NewMockVisionFeature(mockCtl),
		Aggregator: mocks.NewMockAggregatorFeature(mockCtl),
	}

	cfg := &config.Config{
		Auth: config.Auth{LoginRateLimit: 2, LoginRateWindow: time.Minute},
	}

	if mutate != nil {
		mutate(cfg)
	}

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	NewRouter(engine, logger.New("error"), uc, cfg)

	return m, engine
}

func serve(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()

	_, engine := routerTest(t, nil)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/healthz", "").Code)

	w := serve(engine, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestRouter_ProtectedNeedsToken(t *testing.T) {
	t.Parallel()

	_, engine := routerTest(t, nil)

	for _, target := range []string{"/api/status", "/api/demo", "/api/system/health", "/api/dashboard/stats"} {
		w := serve(engine, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestRouter_AuthDisabled(t *testing.T) {
	t.Parallel()

	m, engine := routerTest(t, func(cfg *config.Config) { cfg.Disabled = true })

	m.demo.EXPECT().Snapshot().Return(dto.DemoSnapshot{Phase: "idle"})

	w := serve(engine, http.MethodGet, "/api/demo", "")

	require.Equal(t, http.StatusOK, w.Code)

	var snap dto.DemoSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "idle", snap.Phase)
}

func TestRouter_LoginRateLimited(t *testing.T) {
	t.Parallel()

	m, engine := routerTest(t, nil)

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, auth.ErrInvalidCredentials).Times(2)

	body := `{"username":"admin","password":"guess"}`

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/api/admin/login", body).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodPost, "/api/admin/login", body).Code)

	w := serve(engine, http.MethodPost, "/api/admin/login", body)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.JSONEq(t, msgTooManyAttempts, w.Body.String())
}
