package v1

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/usecase"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	msgFetchFrame      = "Failed to fetch camera frame"
	msgFetchDetections = "Failed to fetch detections"
)

type visionRoutes struct {
	v usecase.VisionFeature
	l logger.Interface
}

func NewVisionRoutes(handler *gin.RouterGroup, v usecase.VisionFeature, l logger.Interface) {
	r := &visionRoutes{v, l}

	if err := registerValidations(); err != nil {
		l.Fatal(fmt.Errorf("http - v1 - registerValidations: %w", err))
	}

	h := handler.Group("/vision")
	{
		h.GET("status", r.status)
		h.GET("cameras", r.cameras)
		h.GET("cameras/:id/frame", r.frame)
		h.GET("cameras/:id/detections", r.detections)
	}
}

func (r *visionRoutes) status(c *gin.Context) {
	c.JSON(http.StatusOK, r.v.StatusOrOffline(c.Request.Context()))
}

func (r *visionRoutes) cameras(c *gin.Context) {
	c.JSON(http.StatusOK, r.v.CamerasOrOffline(c.Request.Context()))
}

// frame streams the camera image straight through; an MJPEG feed stays open
// until the client goes away.
func (r *visionRoutes) frame(c *gin.Context) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		ErrorResponse(c, err)

		return
	}

	resp, err := r.v.Frame(c.Request.Context(), p.ID)
	if err != nil {
		r.l.Error(err, "http - v1 - vision frame")
		proxyErrorResponse(c, err, msgFetchFrame)

		return
	}
	defer resp.Body.Close()

	extra := map[string]string{"Cache-Control": "no-store"}

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), io.NopCloser(resp.Body), extra)
}

func (r *visionRoutes) detections(c *gin.Context) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		ErrorResponse(c, err)

		return
	}

	raw, err := r.v.Detections(c.Request.Context(), p.ID)
	if err != nil {
		r.l.Error(err, "http - v1 - vision detections")
		proxyErrorResponse(c, err, msgFetchDetections)

		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON, raw)
}

type aggregatorRoutes struct {
	a usecase.AggregatorFeature
}

func NewAggregatorRoutes(handler *gin.RouterGroup, a usecase.AggregatorFeature) {
	r := &aggregatorRoutes{a}

	handler.GET("/aggregator/status", r.status)
}

func (r *aggregatorRoutes) status(c *gin.Context) {
	c.JSON(http.StatusOK, r.a.StatusOrOffline(c.Request.Context()))
}
