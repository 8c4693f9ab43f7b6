// Package usecase builds the gateway's use cases and the upstream clients
// behind them.
package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/cache"
	"github.com/smart-parking/console/internal/repository/upstream"
	"github.com/smart-parking/console/internal/usecase/auth"
	"github.com/smart-parking/console/internal/usecase/dashboard"
	"github.com/smart-parking/console/internal/usecase/demo"
	"github.com/smart-parking/console/internal/usecase/monitor"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/db"
	"github.com/smart-parking/console/pkg/logger"
	"github.com/smart-parking/console/pkg/pubsub"
)

type (
	// Forwarder relays an API request to the parking backend unchanged.
	Forwarder interface {
		Forward(ctx context.Context, method, path string, query url.Values, body []byte) (*upstream.Response, error)
	}

	VisionFeature interface {
		StatusOrOffline(ctx context.Context) interface{}
		CamerasOrOffline(ctx context.Context) interface{}
		Frame(ctx context.Context, cameraID string) (*http.Response, error)
		Detections(ctx context.Context, cameraID string) (json.RawMessage, error)
	}

	AggregatorFeature interface {
		StatusOrOffline(ctx context.Context) interface{}
	}
)

// Usecases -.
type Usecases struct {
	Auth       auth.Feature
	Dashboard  dashboard.Feature
	Demo       demo.Feature
	Monitor    monitor.Feature
	Backend    Forwarder
	Vision     VisionFeature
	Aggregator AggregatorFeature

	monitor   *monitor.Monitor
	sequencer *demo.Sequencer
}

// NewUseCases wires every use case against the store, the upstream services
// named in cfg and the broadcast hub. cfg.JWTKey must already be resolved.
func NewUseCases(database *db.SQL, log logger.Interface, cfg *config.Config, hub *pubsub.Hub) (*Usecases, error) {
	backend, err := upstream.NewBackend(cfg.BackendURL, cfg.Upstream.Timeout, log)
	if err != nil {
		return nil, err
	}

	vision, err := upstream.NewVision(cfg.VisionURL, cfg.Upstream.Timeout, log)
	if err != nil {
		return nil, err
	}

	aggregator, err := upstream.NewAggregator(cfg.AggregatorURL, cfg.Upstream.Timeout, log)
	if err != nil {
		return nil, err
	}

	sessions := sqldb.NewSessionRepo(database, log)
	users := sqldb.NewUserRepo(database, log)
	transactions := sqldb.NewTransactionRepo(database, log)

	mon := monitor.New(backend, vision, aggregator, hub, cfg.Monitor, log)
	seq := demo.New(backend, cfg.Demo, log, demo.WithBroadcaster(hub))

	return &Usecases{
		Auth: auth.New(sqldb.NewAdminRepo(database, log), cfg.JWTKey, cfg.JWTExpiration, log,
			auth.WithDemoMode(cfg.DemoMode)),
		Dashboard: dashboard.New(sessions, users, transactions, backend, log,
			dashboard.WithCache(cache.NewFromConfig(cfg))),
		Demo:       seq,
		Monitor:    mon,
		Backend:    backend,
		Vision:     vision,
		Aggregator: aggregator,
		monitor:    mon,
		sequencer:  seq,
	}, nil
}

// Start launches the background pollers; they stop when ctx ends.
func (u *Usecases) Start(ctx context.Context) {
	if u.monitor != nil {
		u.monitor.Start(ctx)
	}
}

// Close stops any demo run and waits for the background goroutines. The
// context passed to Start must be cancelled first.
func (u *Usecases) Close() {
	if u.sequencer != nil {
		u.sequencer.Close()
	}

	if u.monitor != nil {
		u.monitor.Wait()
	}
}
