// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/smart-parking/console/config"
	v1 "github.com/smart-parking/console/internal/controller/httpapi/v1"
	"github.com/smart-parking/console/internal/usecase"
	"github.com/smart-parking/console/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// Public routes
	login := v1.NewLoginRoute(t.Auth, l)
	handler.POST("/api/admin/login", rateLimit(cfg.LoginRateLimit, cfg.LoginRateWindow), login.Login)

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes using JWT middleware
	var protected *gin.RouterGroup
	if cfg.Disabled {
		protected = handler.Group("/api")
	} else {
		protected = handler.Group("/api", login.JWTAuthMiddleware())
	}

	// Routers
	{
		v1.NewBackendRoutes(protected, t.Backend, l)
		v1.NewVisionRoutes(protected, t.Vision, l)
		v1.NewAggregatorRoutes(protected, t.Aggregator)
		v1.NewDashboardRoutes(protected, t.Dashboard, l)
		v1.NewDemoRoutes(protected, t.Demo, l)
		v1.NewSystemRoutes(protected, t.Monitor)
	}
}
