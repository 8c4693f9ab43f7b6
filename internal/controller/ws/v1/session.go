package v1

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/smart-parking/console/pkg/logger"
	"github.com/smart-parking/console/pkg/pubsub"
)

const (
	actionJoin  = "join"
	actionLeave = "leave"

	EventJoined = "joined"
	EventLeft   = "left"
	EventError  = "error"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	outBuffer      = 32
)

var (
	errBadRequest   = errors.New("expected {\"action\":\"join|leave\",\"topic\":\"slots|sessions\"}")
	errUnknownTopic = errors.New("unknown topic")
)

type request struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

// frame is what the client reads. Data is the published payload for update
// events; Topic names the subject of acks and errors.
type frame struct {
	Event string          `json:"event"`
	Topic string          `json:"topic,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

type subscription struct {
	id     string
	cancel context.CancelFunc
}

// session owns one connection. Only the read loop touches subs; only the
// write loop writes to conn.
type session struct {
	ctx    context.Context
	cancel context.CancelFunc
	conn   *websocket.Conn
	hub    Subscriber
	l      logger.Interface

	out  chan frame
	subs map[string]subscription
	wg   sync.WaitGroup
}

func newSession(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, hub Subscriber, l logger.Interface) *session {
	return &session{
		ctx:    ctx,
		cancel: cancel,
		conn:   conn,
		hub:    hub,
		l:      l,
		out:    make(chan frame, outBuffer),
		subs:   make(map[string]subscription),
	}
}

func (s *session) run() {
	s.wg.Add(1)

	go s.writeLoop()

	s.readLoop()
	s.cancel()

	for topic := range s.subs {
		s.leave(topic)
	}

	s.wg.Wait()
	_ = s.conn.Close()
}

func (s *session) readLoop() {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				s.l.Debug("ws - v1 - read: " + err.Error())
			}

			return
		}

		req, err := parseRequest(raw)
		if err != nil {
			s.send(frame{Event: EventError, Error: err.Error()})

			continue
		}

		switch req.Action {
		case actionJoin:
			s.join(req.Topic)
		case actionLeave:
			s.leave(req.Topic)
			s.send(frame{Event: EventLeft, Topic: req.Topic})
		}
	}
}

// parseRequest accepts {"action":"join","topic":"slots"} and the bare
// "join:slots" form, quoted or not.
func parseRequest(raw []byte) (request, error) {
	text := strings.TrimSpace(string(raw))

	var req request

	if strings.HasPrefix(text, "{") {
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return request{}, errBadRequest
		}
	} else {
		action, topic, ok := strings.Cut(strings.Trim(text, `"`), ":")
		if !ok {
			return request{}, errBadRequest
		}

		req = request{Action: action, Topic: topic}
	}

	if req.Action != actionJoin && req.Action != actionLeave {
		return request{}, errBadRequest
	}

	if !pubsub.ValidTopic(req.Topic) {
		return request{}, errUnknownTopic
	}

	return req, nil
}

func (s *session) join(topic string) {
	if _, ok := s.subs[topic]; ok {
		s.send(frame{Event: EventJoined, Topic: topic})

		return
	}

	subCtx, cancel := context.WithCancel(s.ctx)

	ch, id, err := s.hub.Subscribe(subCtx, topic)
	if err != nil {
		cancel()
		s.send(frame{Event: EventError, Topic: topic, Error: err.Error()})

		return
	}

	s.subs[topic] = subscription{id: id, cancel: cancel}

	s.wg.Add(1)

	go s.forward(subCtx, ch)

	s.send(frame{Event: EventJoined, Topic: topic})
}

// leave unsubscribes synchronously so nothing published afterwards reaches
// the client.
func (s *session) leave(topic string) {
	sub, ok := s.subs[topic]
	if !ok {
		return
	}

	delete(s.subs, topic)

	// cancel first so forward sees a cancelled context once the channel closes
	sub.cancel()
	s.hub.Unsubscribe(topic, sub.id)
}

func (s *session) forward(subCtx context.Context, ch <-chan pubsub.Message) {
	defer s.wg.Done()

	for m := range ch {
		if !s.send(frame{Event: m.Event, Data: m.Data}) {
			return
		}
	}

	// closed by the hub rather than by leave: nothing more will arrive
	if subCtx.Err() == nil {
		s.cancel()
	}
}

func (s *session) send(f frame) bool {
	select {
	case s.out <- f:
		return true
	case <-s.ctx.Done():
		return false
	}
}

func (s *session) writeLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case f := <-s.out:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := s.conn.WriteJSON(f); err != nil {
				s.l.Debug("ws - v1 - write: " + err.Error())
				s.cancel()
				_ = s.conn.Close()

				return
			}

			framesSentTotal.WithLabelValues(f.Event).Inc()
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.cancel()
				_ = s.conn.Close()

				return
			}
		case <-s.ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			_ = s.conn.Close()

			return
		}
	}
}
