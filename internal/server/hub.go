// Package server streams simulation frames to websocket clients and accepts
// control updates from them.
package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/realmfikri/pandemica/internal/chart"
	"github.com/realmfikri/pandemica/internal/sim"
	"github.com/realmfikri/pandemica/internal/wire"
)

// defaultWriteTimeout bounds every websocket write so a stalled client cannot
// hold up the simulation loop.
const defaultWriteTimeout = time.Second

// Hub tracks connected clients, broadcasts frames and applies client control
// updates to the world.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader

	writeTimeout time.Duration

	world  *sim.World
	logger *slog.Logger

	// chartMu guards the adapter and the revision it was refreshed at.
	chartMu  sync.Mutex
	adapter  *chart.Adapter
	revision uint64
	fresh    bool
}

// NewHub creates a hub for world. The adapter's scale is recomputed only when
// a population's time series changed.
func NewHub(world *sim.World, adapter *chart.Adapter, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		writeTimeout: defaultWriteTimeout,
		world:        world,
		logger:       logger,
		adapter:      adapter,
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
			h.logger.Warn("dropping client after failed write", "remote", conn.RemoteAddr().String(), "err", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) broadcastControl(c sim.ControlSettings) {
	payload, err := wire.EncodeControl(c)
	if err != nil {
		h.logger.Error("failed to encode control update", "err", err)
		return
	}
	h.broadcast(payload)
}

// Broadcast sends snap to every client as a frame.
func (h *Hub) Broadcast(snap sim.Snapshot) {
	payload, err := wire.EncodeFrame(wire.FrameFromSnapshot(snap, h.scale(snap)))
	if err != nil {
		h.logger.Error("failed to encode frame", "tick", snap.Tick, "err", err)
		return
	}
	h.broadcast(payload)
}

func (h *Hub) scale(snap sim.Snapshot) chart.Scale {
	h.chartMu.Lock()
	defer h.chartMu.Unlock()

	if rev := snap.Revision(); !h.fresh || rev != h.revision {
		h.adapter.Refresh(snap.Series()...)
		h.revision = rev
		h.fresh = true
	}
	return h.adapter.Scale()
}

// Handler upgrades the request, sends the current controls and then applies
// every control update the client sends until it disconnects.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", "err", err)
			return
		}
		h.add(conn)
		defer h.remove(conn)
		h.logger.Info("client connected", "remote", conn.RemoteAddr().String())

		// Send the current control state immediately.
		h.broadcastControl(h.world.Controls())

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				h.logger.Info("client disconnected", "remote", conn.RemoteAddr().String(), "err", err)
				return
			}

			env, err := wire.Decode(data)
			if err != nil {
				h.logger.Warn("unable to decode client message", "err", err)
				continue
			}
			if env.GetControl() == nil {
				h.logger.Warn("ignoring non-control message from client")
				continue
			}

			h.broadcastControl(h.world.ApplyControls(wire.Controls(env.GetControl())))
		}
	}
}
