package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/pkg/logger"
)

// Vision talks to the camera/occupancy detection service.
type Vision struct {
	c *client
}

// NewVision -.
func NewVision(baseURL string, timeout time.Duration, l logger.Interface) (*Vision, error) {
	c, err := newClient(ServiceVision, baseURL, timeout, l)
	if err != nil {
		return nil, err
	}

	return &Vision{c: c}, nil
}

// StatusOrOffline returns the service status document, or the offline
// placeholder when the service cannot answer.
func (v *Vision) StatusOrOffline(ctx context.Context) interface{} {
	raw, err := v.c.getRaw(ctx, "/status")
	if err != nil {
		v.c.log.Warn("upstream - vision - status: %v", err)

		return dto.OfflineVisionStatus()
	}

	return raw
}

// CamerasOrOffline returns the camera list, or an empty list when the service
// cannot answer.
func (v *Vision) CamerasOrOffline(ctx context.Context) interface{} {
	raw, err := v.c.getRaw(ctx, "/cameras")
	if err != nil {
		v.c.log.Warn("upstream - vision - cameras: %v", err)

		return dto.OfflineCameraList()
	}

	return raw
}

// Frame opens the image stream for one camera. The caller must close the body.
func (v *Vision) Frame(ctx context.Context, cameraID string) (*http.Response, error) {
	return v.c.send(ctx, v.c.stream, http.MethodGet, "/camera/"+url.PathEscape(cameraID)+"/frame", nil, nil)
}

// Detections returns the latest per-slot detections for one camera.
func (v *Vision) Detections(ctx context.Context, cameraID string) (json.RawMessage, error) {
	return v.c.getRaw(ctx, "/camera/"+url.PathEscape(cameraID)+"/detections")
}

// Probe -.
func (v *Vision) Probe(ctx context.Context) (string, error) {
	return v.c.probe(ctx, "/status")
}
