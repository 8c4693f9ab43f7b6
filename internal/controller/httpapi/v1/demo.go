package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-parking/console/internal/usecase/demo"
	"github.com/smart-parking/console/pkg/logger"
)

type demoRoutes struct {
	d demo.Feature
	l logger.Interface
}

func NewDemoRoutes(handler *gin.RouterGroup, d demo.Feature, l logger.Interface) {
	r := &demoRoutes{d, l}

	h := handler.Group("/demo")
	{
		h.GET("", r.snapshot)
		h.POST("entry", r.entry)
		h.POST("exit", r.exit)
		h.POST("reset", r.reset)
	}
}

func (r *demoRoutes) snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, r.d.Snapshot())
}

// entry starts the run and returns at once; progress is read back through
// the snapshot or the sessions topic.
func (r *demoRoutes) entry(c *gin.Context) {
	if err := r.d.StartEntry(c.Request.Context()); err != nil {
		r.l.Warn("http - v1 - demo entry: %v", err)
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusAccepted, r.d.Snapshot())
}

func (r *demoRoutes) exit(c *gin.Context) {
	err := r.d.StartExit(c.Request.Context())

	switch {
	case errors.Is(err, demo.ErrNoActiveSession):
		c.Status(http.StatusNoContent)
	case err != nil:
		r.l.Warn("http - v1 - demo exit: %v", err)
		ErrorResponse(c, err)
	default:
		c.JSON(http.StatusAccepted, r.d.Snapshot())
	}
}

func (r *demoRoutes) reset(c *gin.Context) {
	r.d.Reset()

	c.JSON(http.StatusOK, r.d.Snapshot())
}
