package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/mocks"
	"github.com/smart-parking/console/internal/repository/upstream"
	"github.com/smart-parking/console/pkg/logger"
)

func visionTest(t *testing.T) (*mocks.MockVisionFeature, *mocks.MockAggregatorFeature, *gin.Engine) {
	t.Helper()

	mockCtl := gomock.NewController(t)
	vision := mocks.NewMockVisionFeature(mockCtl)
	aggregator := mocks.NewMockAggregatorFeature(mockCtl)

	gin.SetMode(gin.TestMode)

	engine := gin.New()
	handler := engine.Group("/api")

	NewVisionRoutes(handler, vision, logger.New("error"))
	NewAggregatorRoutes(handler, aggregator)

	return vision, aggregator, engine
}

func get(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	return w
}

func TestVisionRoutes_Fallbacks(t *testing.T) {
	t.Parallel()

	vision, aggregator, engine := visionTest(t)

	vision.EXPECT().StatusOrOffline(gomock.Any()).Return(dto.OfflineVisionStatus())
	vision.EXPECT().CamerasOrOffline(gomock.Any()).Return(json.RawMessage(`{"cameras":[{"id":"CAM_01"}]}`))
	aggregator.EXPECT().StatusOrOffline(gomock.Any()).Return(dto.OfflineAggregatorStatus())

	w := get(engine, "/api/vision/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"offline","cameras":[],"slots_detected":0}`, w.Body.String())

	w = get(engine, "/api/vision/cameras")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"cameras":[{"id":"CAM_01"}]}`, w.Body.String())

	w = get(engine, "/api/aggregator/status")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"status":"offline","mqtt_connected":false,"vision_connected":false,"backend_connected":false}`,
		w.Body.String())
}

func TestVisionRoutes_Frame(t *testing.T) {
	t.Parallel()

	vision, _, engine := visionTest(t)

	vision.EXPECT().Frame(gomock.Any(), "CAM_01").Return(&http.Response{
		StatusCode:    http.StatusOK,
		Header:        http.Header{"Content-Type": {"image/jpeg"}},
		ContentLength: 4,
		Body:          io.NopCloser(strings.NewReader("\xff\xd8\xff\xd9")),
	}, nil)

	w := get(engine, "/api/vision/cameras/CAM_01/frame")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Equal(t, "\xff\xd8\xff\xd9", w.Body.String())
}

func TestVisionRoutes_FrameUnavailable(t *testing.T) {
	t.Parallel()

	vision, _, engine := visionTest(t)

	vision.EXPECT().Frame(gomock.Any(), "CAM_09").
		Return(nil, &upstream.Error{Service: upstream.ServiceVision, Status: http.StatusNotFound, Detail: "Camera not found"})

	w := get(engine, "/api/vision/cameras/CAM_09/frame")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Camera not found", decodeError(t, w))
}

func TestVisionRoutes_Detections(t *testing.T) {
	t.Parallel()

	vision, _, engine := visionTest(t)

	vision.EXPECT().Detections(gomock.Any(), "CAM_01").Return(json.RawMessage(`[{"slot_id":"SLOT_A1","occupied":true}]`), nil)

	w := get(engine, "/api/vision/cameras/CAM_01/detections")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"slot_id":"SLOT_A1","occupied":true}]`, w.Body.String())
}
