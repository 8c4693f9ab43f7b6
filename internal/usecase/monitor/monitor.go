// Package monitor polls the upstream services on fixed intervals. One loop
// keeps a health snapshot of the backend, vision and aggregator services;
// the other watches slot occupancy and broadcasts the slots that changed.
// The loops are independent and never wait on each other.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/repository/upstream"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	defaultHealthInterval = 5 * time.Second
	defaultSlotInterval   = 2 * time.Second
)

// Monitor -.
type Monitor struct {
	backend    Backend
	vision     Prober
	aggregator Prober
	bc         Broadcaster
	clock      clockwork.Clock
	log        logger.Interface

	healthInterval time.Duration
	slotInterval   time.Duration

	wg sync.WaitGroup

	mu     sync.RWMutex
	health dto.SystemHealth

	// occupancy is only touched by the slot loop
	occupancy map[string]bool
}

// Option -.
type Option func(*Monitor)

// WithClock -.
func WithClock(c clockwork.Clock) Option {
	return func(m *Monitor) {
		m.clock = c
	}
}

// New -.
func New(backend Backend, vision, aggregator Prober, bc Broadcaster, cfg config.Monitor, log logger.Interface, opts ...Option) *Monitor {
	m := &Monitor{
		backend:        backend,
		vision:         vision,
		aggregator:     aggregator,
		bc:             bc,
		clock:          clockwork.NewRealClock(),
		log:            log,
		healthInterval: cfg.HealthInterval,
		slotInterval:   cfg.SlotInterval,
	}

	if m.healthInterval <= 0 {
		m.healthInterval = defaultHealthInterval
	}

	if m.slotInterval <= 0 {
		m.slotInterval = defaultSlotInterval
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Start runs both loops until ctx is done. Each loop polls once right away.
func (m *Monitor) Start(ctx context.Context) {
	m.wg.Add(2)

	go m.loop(ctx, m.healthInterval, m.CheckHealth)
	go m.loop(ctx, m.slotInterval, m.PollSlots)
}

// Wait blocks until the loops started by Start have returned.
func (m *Monitor) Wait() {
	m.wg.Wait()
}

func (m *Monitor) loop(ctx context.Context, interval time.Duration, poll func(context.Context)) {
	defer m.wg.Done()

	ticker := m.clock.NewTicker(interval)
	defer ticker.Stop()

	poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			poll(ctx)
		}
	}
}

// Snapshot returns the latest health of every upstream service.
func (m *Monitor) Snapshot() dto.SystemHealth {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.health
}

// CheckHealth probes the three services concurrently and stores the result.
func (m *Monitor) CheckHealth(ctx context.Context) {
	var (
		g                     errgroup.Group
		backend, vision, aggr dto.ServiceHealth
	)

	g.Go(func() error {
		backend = m.probe(ctx, upstream.ServiceBackend, m.backend)

		return nil
	})

	g.Go(func() error {
		vision = m.probe(ctx, upstream.ServiceVision, m.vision)

		return nil
	})

	g.Go(func() error {
		aggr = m.probe(ctx, upstream.ServiceAggregator, m.aggregator)

		return nil
	})

	_ = g.Wait()

	m.mu.Lock()
	m.health = dto.SystemHealth{Backend: backend, Vision: vision, Aggregator: aggr}
	m.mu.Unlock()
}

func (m *Monitor) probe(ctx context.Context, service string, p Prober) dto.ServiceHealth {
	status, err := p.Probe(ctx)
	h := dto.ServiceHealth{Online: err == nil, Detail: status, CheckedAt: m.clock.Now()}

	if err != nil {
		h.Detail = dto.StatusOffline

		m.log.Debug("usecase - monitor - probe %s: %v", service, err)
	}

	if h.Online {
		upstreamUp.WithLabelValues(service).Set(1)
	} else {
		upstreamUp.WithLabelValues(service).Set(0)
	}

	return h
}

// PollSlots lists the slots and broadcasts every slot whose occupancy differs
// from the previous successful poll. The first poll only records a baseline.
func (m *Monitor) PollSlots(ctx context.Context) {
	slots, err := m.backend.ListSlots(ctx)
	if err != nil {
		m.log.Debug("usecase - monitor - ListSlots: %v", err)

		return
	}

	baseline := m.occupancy == nil
	next := make(map[string]bool, len(slots))

	for _, slot := range slots {
		next[slot.SlotID] = slot.IsOccupied

		if baseline {
			continue
		}

		if prev, seen := m.occupancy[slot.SlotID]; seen && prev == slot.IsOccupied {
			continue
		}

		slotChangesTotal.Inc()

		if err := m.bc.BroadcastSlotUpdate(ctx, slot); err != nil {
			m.log.Warn("usecase - monitor - BroadcastSlotUpdate: %v", err)
		}
	}

	m.occupancy = next
}
