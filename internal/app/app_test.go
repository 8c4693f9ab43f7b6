package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/mocks"
	"github.com/smart-parking/console/internal/usecase"
	"github.com/smart-parking/console/pkg/logger"
)

type fakeKeyStore struct {
	values map[string]string
	err    error
}

func (f fakeKeyStore) GetKeyValue(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return f.values[key], nil
}

func TestLoadJWTKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		store   fakeKeyStore
		wantKey string
		wantErr error
	}{
		{
			name:    "found",
			store:   fakeKeyStore{values: map[string]string{"jwt-signing-key": "from-vault"}},
			wantKey: "from-vault",
		},
		{
			name:    "empty",
			store:   fakeKeyStore{values: map[string]string{}},
			wantKey: "from-config",
			wantErr: ErrEmptyJWTKey,
		},
		{
			name:    "store error",
			store:   fakeKeyStore{err: errors.New("permission denied")},
			wantKey: "from-config",
			wantErr: errors.New("permission denied"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.Config{Auth: config.Auth{JWTKey: "from-config", JWTKeySecretName: "jwt-signing-key"}}

			err := LoadJWTKey(context.Background(), cfg, tc.store)
			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tc.wantKey, cfg.JWTKey)
		})
	}
}

func TestSetupHub_Redis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{Redis: config.Redis{Addr: mr.Addr(), ChannelPrefix: "test:"}}

	hub := setupHub(ctx, cfg, logger.New("error"))
	defer hub.Close()

	ch, _, err := hub.Subscribe(ctx, "slots")
	require.NoError(t, err)

	require.NoError(t, hub.BroadcastSlotUpdate(ctx, map[string]string{"slot_id": "SLOT_A1"}))

	m := <-ch
	assert.Equal(t, "slot:update", m.Event)
	assert.JSONEq(t, `{"slot_id":"SLOT_A1"}`, string(m.Data))
}

func TestSetupHTTPHandler(t *testing.T) {
	t.Parallel()

	mockCtl := gomock.NewController(t)

	uc := &usecase.Usecases{
		Auth:       mocks.NewMockAuthFeature(mockCtl),
		Dashboard:  mocks.NewMockDashboardFeature(mockCtl),
		Demo:       mocks.NewMockDemoFeature(mockCtl),
		Monitor:    mocks.NewMockMonitorFeature(mockCtl),
		Backend:    mocks.NewMockForwarder(mockCtl),
		Vision:     mocks.NewMockVisionFeature(mockCtl),
		Aggregator: mocks.NewMockAggregatorFeature(mockCtl),
	}

	cfg := &config.Config{
		HTTP: config.HTTP{AllowedOrigins: []string{"http://localhost:3000"}, AllowedHeaders: []string{"*"}},
		Auth: config.Auth{LoginRateLimit: 20},
	}

	hub := setupHub(context.Background(), &config.Config{}, logger.New("error"))
	defer hub.Close()

	srv := httptest.NewServer(setupHTTPHandler(cfg, logger.New("error"), uc, hub))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	conn.Close()
}
