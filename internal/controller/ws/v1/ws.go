// Package v1 serves the live update stream: browsers join the slots or
// sessions topic over a websocket and receive every event published there.
package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/smart-parking/console/pkg/logger"
	"github.com/smart-parking/console/pkg/pubsub"
)

// Upgrader turns an HTTP request into a websocket connection.
type Upgrader interface {
	Upgrade(w http.ResponseWriter, r *http.Request, responseHeader http.Header) (*websocket.Conn, error)
}

// Subscriber is the part of the broadcast hub a connection needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan pubsub.Message, string, error)
	Unsubscribe(topic, id string)
}

type routes struct {
	hub      Subscriber
	upgrader Upgrader
	l        logger.Interface
}

func RegisterRoutes(r *gin.Engine, l logger.Interface, hub Subscriber, u Upgrader) {
	rt := &routes{hub: hub, upgrader: u, l: l}

	r.GET("/ws", rt.websocketHandler)
}

func (rt *routes) websocketHandler(c *gin.Context) {
	conn, err := rt.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rt.l.Error(err, "ws - v1 - upgrade")

		return
	}

	connectionsGauge.Inc()
	defer connectionsGauge.Dec()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	newSession(ctx, cancel, conn, rt.hub, rt.l).run()
}
