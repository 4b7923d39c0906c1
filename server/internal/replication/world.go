package replication

import (
	"context"
	"fmt"
	"sync"

	"sandboxcore/server/internal/engine"
	"sandboxcore/server/logging"
	loggingreplication "sandboxcore/server/logging/replication"
)

// World fans a single Manager's entity set out to every connected
// observer's Session, grounded on the teacher's Hub.BroadcastState
// iterating every subscriber with the same snapshot each tick.
type World struct {
	manager *engine.Manager
	pub     logging.Publisher

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewWorld binds a World to the manager whose entities it replicates.
func NewWorld(manager *engine.Manager, pub logging.Publisher) *World {
	if pub == nil {
		pub = logging.NopPublisher{}
	}
	return &World{manager: manager, pub: pub, sessions: make(map[string]*Session)}
}

// Join registers a new observer connection and returns its Session.
func (w *World) Join(clientID string) *Session {
	s := NewSession()
	w.mu.Lock()
	w.sessions[clientID] = s
	w.mu.Unlock()
	return s
}

// Leave drops a connection's Session.
func (w *World) Leave(clientID string) {
	w.mu.Lock()
	delete(w.sessions, clientID)
	w.mu.Unlock()
}

// BroadcastTick builds and returns this tick's framed payload for every
// connected session, keyed by client id, ready for each session's
// Transport to send. Entities are visible to every session; there is no
// interest management at this layer.
func (w *World) BroadcastTick() map[string][]byte {
	entities := w.manager.Entities()

	w.mu.Lock()
	sessions := make(map[string]*Session, len(w.sessions))
	for id, s := range w.sessions {
		sessions[id] = s
	}
	w.mu.Unlock()

	out := make(map[string][]byte, len(sessions))
	for clientID, session := range sessions {
		out[clientID] = session.BuildTick(entities)
	}
	return out
}

// Dispatch decodes one inbound packet from clientID and applies it: an
// EntityMessage is staged onto its target entity's script queue via the
// manager, exactly as a same-process sender would use engine.Message.
// EntityMessageResult, RemoteHitRequest and RemoteDamageRequest have no
// legitimate client-to-server direction in a single authoritative-server
// deployment (the spec's "connection" in §4.4 refers to a cross-process
// shard boundary, not a client) and are rejected.
func (w *World) Dispatch(ctx context.Context, tick uint64, clientID string, payload []byte) error {
	pt, body, err := Decode(payload)
	if err != nil {
		w.pub.Publish(ctx, logging.Event{
			Type:     loggingreplication.EventSchemaMismatch,
			Tick:     tick,
			Severity: logging.SeverityError,
			Category: "replication",
			Payload: loggingreplication.SchemaMismatchPayload{
				GotBytes: len(payload),
			},
		})
		return fmt.Errorf("replication: decode failed for %s: %w", clientID, err)
	}
	switch pt {
	case PacketEntityMessage:
		msg := body.(EntityMessage)
		w.manager.Enqueue(engine.Message{
			Sender:    clientID,
			Target:    msg.TargetID,
			Name:      msg.Name,
			Args:      msg.Args,
			PromiseID: msg.PromiseID,
		})
		return nil
	default:
		return fmt.Errorf("replication: packet type %d not accepted from a client connection", pt)
	}
}
