package coordlog

import (
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"
)

// Hub streams coordination log lines to websocket clients. It stands in
// for a serial listener as the harvesting surface: attach it to a Log
// and serve Handler on an HTTP endpoint.
type Hub struct {
	lock  sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates a Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Handler returns the websocket handler keeping client connections
// registered until they close.
func (h *Hub) Handler() websocket.Handler {
	return websocket.Handler(func(conn *websocket.Conn) {
		h.lock.Lock()
		h.conns[conn] = struct{}{}
		h.lock.Unlock()
		glog.V(2).Infof("log client connected: %s", conn.Request().RemoteAddr)

		// clients only read; hold until the peer goes away.
		var discard string
		for {
			if err := websocket.Message.Receive(conn, &discard); err != nil {
				break
			}
		}

		h.lock.Lock()
		delete(h.conns, conn)
		h.lock.Unlock()
		glog.V(2).Infof("log client disconnected: %s", conn.Request().RemoteAddr)
	})
}

// Write implements io.Writer, broadcasting one log line to all clients.
// A failing client is dropped rather than stalling the loop.
func (h *Hub) Write(p []byte) (int, error) {
	h.lock.Lock()
	defer h.lock.Unlock()
	for conn := range h.conns {
		if err := websocket.Message.Send(conn, string(p)); err != nil {
			glog.V(2).Infof("drop log client: %v", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
	return len(p), nil
}
