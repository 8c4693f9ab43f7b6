// Package pubsub fans gateway events out to websocket subscribers by topic.
//
// A Hub is in-process by default. With WithRedis every publish goes through a
// redis channel per topic and a relay goroutine delivers what it receives to
// local subscribers, so several gateway instances share one broadcast stream.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/smart-parking/console/pkg/logger"
)

const (
	TopicSlots    = "slots"
	TopicSessions = "sessions"

	EventSlotUpdate    = "slot:update"
	EventSessionUpdate = "session:update"

	defaultBufferSize    = 64
	defaultChannelPrefix = "parking:"
)

var (
	ErrUnknownTopic = errors.New("unknown topic")
	ErrClosed       = errors.New("hub closed")
)

// Message is one event as written to subscribers.
type Message struct {
	Topic string          `json:"topic,omitempty"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type subscriber struct {
	ch   chan Message
	stop func() bool
}

// Hub -.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[string]*subscriber
	closed bool

	bufferSize int
	log        logger.Interface

	rdb       redis.UniversalClient
	prefix    string
	relay     *redis.PubSub
	relayDone chan struct{}
}

// Option -.
type Option func(*Hub)

// WithRedis routes publishes through redis channels named prefix+topic.
func WithRedis(client redis.UniversalClient, prefix string) Option {
	return func(h *Hub) {
		h.rdb = client
		if prefix != "" {
			h.prefix = prefix
		}
	}
}

// WithBufferSize sets the per-subscriber channel buffer.
func WithBufferSize(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.bufferSize = n
		}
	}
}

// New -.
func New(l logger.Interface, opts ...Option) *Hub {
	h := &Hub{
		subs: map[string]map[string]*subscriber{
			TopicSlots:    {},
			TopicSessions: {},
		},
		bufferSize: defaultBufferSize,
		log:        l,
		prefix:     defaultChannelPrefix,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ValidTopic reports whether topic is one the hub serves.
func ValidTopic(topic string) bool {
	return topic == TopicSlots || topic == TopicSessions
}

// Start subscribes to the redis channels and begins relaying. Without redis it
// does nothing.
func (h *Hub) Start(ctx context.Context) error {
	if h.rdb == nil {
		return nil
	}

	ps := h.rdb.Subscribe(ctx, h.channel(TopicSlots), h.channel(TopicSessions))

	// wait for the subscription to be confirmed before any publish can race it
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()

		return err
	}

	h.mu.Lock()
	h.relay = ps
	h.relayDone = make(chan struct{})
	h.mu.Unlock()

	go h.runRelay(ps.Channel(), h.relayDone)

	return nil
}

func (h *Hub) runRelay(ch <-chan *redis.Message, done chan struct{}) {
	defer close(done)

	for msg := range ch {
		var m Message
		if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
			h.log.Warn("pubsub - relay - dropping malformed payload on %s", msg.Channel)

			continue
		}

		h.deliver(m)
	}
}

func (h *Hub) channel(topic string) string {
	return h.prefix + topic
}

// Subscribe registers for messages on topic. The subscription ends when ctx is
// cancelled, Unsubscribe is called or the hub closes; the channel is closed then.
func (h *Hub) Subscribe(ctx context.Context, topic string) (<-chan Message, string, error) {
	if !ValidTopic(topic) {
		return nil, "", ErrUnknownTopic
	}

	id := uuid.NewString()
	sub := &subscriber{ch: make(chan Message, h.bufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, "", ErrClosed
	}

	h.subs[topic][id] = sub
	subscribersGauge.WithLabelValues(topic).Inc()
	h.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		h.Unsubscribe(topic, id)
	})

	h.mu.Lock()
	if _, ok := h.subs[topic][id]; ok {
		sub.stop = stop
	}
	h.mu.Unlock()

	return sub.ch, id, nil
}

// Unsubscribe removes a subscription and closes its channel.
func (h *Hub) Unsubscribe(topic, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subs[topic]
	if !ok {
		return
	}

	sub, ok := subs[id]
	if !ok {
		return
	}

	delete(subs, id)
	close(sub.ch)
	subscribersGauge.WithLabelValues(topic).Dec()

	if sub.stop != nil {
		sub.stop()
	}
}

// Publish sends event with data to every subscriber of topic.
func (h *Hub) Publish(ctx context.Context, topic, event string, data interface{}) error {
	if !ValidTopic(topic) {
		return ErrUnknownTopic
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m := Message{Topic: topic, Event: event, Data: raw}

	publishedTotal.WithLabelValues(topic).Inc()

	if h.rdb == nil {
		h.deliver(m)

		return nil
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return h.rdb.Publish(ctx, h.channel(topic), payload).Err()
}

// BroadcastSlotUpdate -.
func (h *Hub) BroadcastSlotUpdate(ctx context.Context, data interface{}) error {
	return h.Publish(ctx, TopicSlots, EventSlotUpdate, data)
}

// BroadcastSessionUpdate -.
func (h *Hub) BroadcastSessionUpdate(ctx context.Context, data interface{}) error {
	return h.Publish(ctx, TopicSessions, EventSessionUpdate, data)
}

// deliver never blocks: a subscriber with a full buffer misses the message.
func (h *Hub) deliver(m Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.subs[m.Topic] {
		select {
		case sub.ch <- m:
		default:
			droppedTotal.WithLabelValues(m.Topic).Inc()
			h.log.Debug("pubsub - deliver - dropped %s for slow subscriber %s", m.Event, id)
		}
	}
}

// Close stops the relay and closes every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return
	}

	h.closed = true

	for topic, subs := range h.subs {
		for id, sub := range subs {
			delete(subs, id)
			close(sub.ch)
			subscribersGauge.WithLabelValues(topic).Dec()

			if sub.stop != nil {
				sub.stop()
			}
		}
	}

	relay, done := h.relay, h.relayDone
	h.mu.Unlock()

	if relay != nil {
		if err := relay.Close(); err != nil {
			h.log.Warn("pubsub - close - redis: %v", err)
		}

		<-done
	}
}
