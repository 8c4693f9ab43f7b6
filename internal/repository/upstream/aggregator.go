package upstream

import (
	"context"
	"time"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/pkg/logger"
)

// Aggregator talks to the MQTT aggregator's status API.
type Aggregator struct {
	c *client
}

// NewAggregator -.
func NewAggregator(baseURL string, timeout time.Duration, l logger.Interface) (*Aggregator, error) {
	c, err := newClient(ServiceAggregator, baseURL, timeout, l)
	if err != nil {
		return nil, err
	}

	return &Aggregator{c: c}, nil
}

// StatusOrOffline returns the aggregator status, or the offline placeholder
// when the service cannot answer.
func (a *Aggregator) StatusOrOffline(ctx context.Context) interface{} {
	raw, err := a.c.getRaw(ctx, "/status")
	if err != nil {
		a.c.log.Warn("upstream - aggregator - status: %v", err)

		return dto.OfflineAggregatorStatus()
	}

	return raw
}

// Probe -.
func (a *Aggregator) Probe(ctx context.Context) (string, error) {
	return a.c.probe(ctx, "/status")
}
