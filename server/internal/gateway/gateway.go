// Package gateway is the HTTP/websocket front door for the replicated
// simulation: it upgrades connections, joins/leaves them against a
// replication.World, and drives the fixed-rate tick loop that steps the
// engine.Manager and fans its state out over the wire.
//
// Grounded on the teacher's Hub: websocket upgrade and per-connection
// read pump (internal/net/ws/handler.go), and the fixed-rate RunSimulation
// ticker (hub.go), generalized from the teacher's JSON broadcast to the
// binary §6 wire protocol served by internal/replication.
package gateway

import (
	"context"
	nethttp "net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"sandboxcore/server/internal/engine"
	"sandboxcore/server/internal/replication"
	"sandboxcore/server/internal/telemetry"
)

// TickRate is the fixed simulation rate, matching the teacher's 15Hz tick.
const TickRate = 15

// Config configures a Gateway.
type Config struct {
	Logger telemetry.Logger
}

// Gateway binds a replication.World to live websocket connections and owns
// the tick loop that steps the Manager underneath it.
type Gateway struct {
	manager  *engine.Manager
	world    *replication.World
	logger   telemetry.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*replication.Transport
}

// New constructs a Gateway. manager is the authoritative simulation; world
// must already be bound to the same manager (replication.NewWorld(manager, ...)).
func New(manager *engine.Manager, world *replication.World, cfg Config) *Gateway {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.LoggerFunc(func(string, ...any) {})
	}
	return &Gateway{
		manager: manager,
		world:   world,
		logger:  logger,
		conns:   make(map[string]*replication.Transport),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *nethttp.Request) bool { return true },
		},
	}
}

// Handler upgrades inbound HTTP requests to websocket connections and joins
// them to the World under the connection id taken from the request's "id"
// query parameter; a request without one is rejected with 400.
func (g *Gateway) Handler() nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		clientID := r.URL.Query().Get("id")
		if clientID == "" {
			nethttp.Error(w, "missing id", nethttp.StatusBadRequest)
			return
		}
		conn, err := g.upgrader.Upgrade(w, r, nil)
		if err != nil {
			g.logger.Printf("gateway: upgrade failed: %v", err)
			return
		}
		transport := replication.NewTransport(conn)
		g.world.Join(clientID)
		g.addConn(clientID, transport)
		g.logger.Printf("gateway: %s joined", clientID)

		defer func() {
			g.removeConn(clientID)
			g.world.Leave(clientID)
			transport.Close()
			g.logger.Printf("gateway: %s left", clientID)
		}()

		ctx := r.Context()
		for {
			frames, err := transport.Receive()
			if err != nil {
				return
			}
			for _, frame := range frames {
				if err := g.world.Dispatch(ctx, 0, clientID, frame); err != nil {
					g.logger.Printf("gateway: dispatch from %s failed: %v", clientID, err)
				}
			}
		}
	})
}

func (g *Gateway) addConn(clientID string, t *replication.Transport) {
	g.mu.Lock()
	g.conns[clientID] = t
	g.mu.Unlock()
}

func (g *Gateway) removeConn(clientID string) {
	g.mu.Lock()
	delete(g.conns, clientID)
	g.mu.Unlock()
}

func (g *Gateway) getConn(clientID string) (*replication.Transport, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.conns[clientID]
	return t, ok
}

// Run drives the fixed-rate tick loop until ctx is cancelled: each tick it
// steps the Manager, builds every session's delta, and sends it over that
// session's Transport.
func (g *Gateway) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	var tick uint64
	dt := time.Second / TickRate
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick++
			g.manager.RunTick(ctx, tick, dt)
			payloads := g.world.BroadcastTick()
			for clientID, payload := range payloads {
				if len(payload) == 0 {
					continue
				}
				t, ok := g.getConn(clientID)
				if !ok {
					continue
				}
				if err := t.Send(payload); err != nil {
					g.logger.Printf("gateway: send to %s failed: %v", clientID, err)
					g.removeConn(clientID)
				}
			}
		}
	}
}
