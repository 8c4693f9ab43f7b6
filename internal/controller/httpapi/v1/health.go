package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-parking/console/internal/usecase/monitor"
)

func NewSystemRoutes(handler *gin.RouterGroup, m monitor.Feature) {
	handler.GET("/system/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Snapshot())
	})
}
