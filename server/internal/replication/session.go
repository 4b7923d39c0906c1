package replication

import (
	"sync"

	"sandboxcore/server/internal/entity"
	"sandboxcore/server/internal/wire"
)

// Session tracks one observer connection's view of the world: which
// entities it has already received an EntityCreate for, and the version it
// last sent for each — the per-connection cursor the EntityUpdate batching
// is defined against. A Session has no network code of its own; a
// Transport drives the actual socket and writes what BuildTick returns.
type Session struct {
	mu     sync.Mutex
	known  map[entity.ID]uint64
	outbox [][]byte
}

// NewSession starts a connection with an empty view: every currently
// visible entity is sent as an EntityCreate on the first BuildTick.
func NewSession() *Session {
	return &Session{known: make(map[entity.ID]uint64)}
}

// QueueMessage stages an EntityMessage for delivery in the next BuildTick's
// frame, mirroring the bounded-queue-read-once-per-tick discipline scripts
// run under locally.
func (s *Session) QueueMessage(p EntityMessage) { s.queue(EncodeEntityMessage(p)) }

// QueueMessageResult stages a reply to a previously received EntityMessage.
func (s *Session) QueueMessageResult(p EntityMessageResult) { s.queue(EncodeEntityMessageResult(p)) }

// QueueRemoteHit stages a RemoteHitRequest for the causing entity's
// connection.
func (s *Session) QueueRemoteHit(p RemoteHitRequest) { s.queue(EncodeRemoteHitRequest(p)) }

// QueueRemoteDamage stages a RemoteDamageRequest for the target entity's
// connection.
func (s *Session) QueueRemoteDamage(p RemoteDamageRequest) { s.queue(EncodeRemoteDamageRequest(p)) }

func (s *Session) queue(payload []byte) {
	s.mu.Lock()
	s.outbox = append(s.outbox, payload)
	s.mu.Unlock()
}

// Forget drops id from the session's known set without sending an
// EntityDestroy, for a connection closing rather than an entity dying.
func (s *Session) Forget(id entity.ID) {
	s.mu.Lock()
	delete(s.known, id)
	s.mu.Unlock()
}

// Known reports whether id has already been sent an EntityCreate on this
// session.
func (s *Session) Known(id entity.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.known[id]
	return ok
}

// BuildTick compares visible against the session's known set and returns
// one framed byte stream containing, in order: an EntityDestroy for every
// previously known entity no longer in visible, an EntityCreate for every
// newly visible entity, a single EntityUpdate batching every already-known
// entity whose version has advanced, then every packet queued since the
// last call. The caller writes the returned bytes as one network message.
func (s *Session) BuildTick(visible []*entity.Entity) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	stillVisible := make(map[entity.ID]bool, len(visible))
	var frames [][]byte

	for id := range s.known {
		stillVisible[id] = false
	}
	for _, e := range visible {
		stillVisible[e.ID()] = true
	}
	for id, visible := range stillVisible {
		if !visible {
			frames = append(frames, EncodeEntityDestroy(EntityDestroy{EntityID: id}))
			delete(s.known, id)
		}
	}

	for _, e := range visible {
		id := e.ID()
		if _, ok := s.known[id]; ok {
			continue
		}
		w := wire.NewWriter()
		e.Group().WriteFull(w)
		frames = append(frames, EncodeEntityCreate(EntityCreate{
			EntityID:    id,
			EntityType:  e.Kind().String(),
			InitPayload: w.Bytes(),
		}))
		s.known[id] = e.Group().MaxVersion()
	}

	var batch EntityUpdate
	for _, e := range visible {
		id := e.ID()
		from, ok := s.known[id]
		if !ok {
			continue // just created above; the full payload already carries everything
		}
		w := wire.NewWriter()
		changed, newVersion := e.Group().WriteDelta(w, from)
		if !changed {
			continue
		}
		batch.Batch = append(batch.Batch, EntityDeltaEntry{EntityID: id, Delta: w.Bytes(), NewVersion: newVersion})
		s.known[id] = newVersion
	}
	if len(batch.Batch) > 0 {
		frames = append(frames, EncodeEntityUpdate(batch))
	}

	frames = append(frames, s.outbox...)
	s.outbox = nil

	return joinFrames(frames)
}

// joinFrames concatenates already-encoded packets into one length-framed
// stream so a single network write carries an entire tick's worth of
// traffic for a connection.
func joinFrames(frames [][]byte) []byte {
	w := wire.NewWriter()
	w.WriteVLQU(uint64(len(frames)))
	for _, f := range frames {
		wire.WriteFrame(w, f)
	}
	return w.Bytes()
}

// SplitFrames reverses joinFrames, returning each packet's raw bytes for
// the caller to pass to Decode in turn.
func SplitFrames(payload []byte) ([][]byte, error) {
	r := wire.NewReader(payload)
	count, err := r.ReadVLQU()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		f, err := wire.ReadFrame(r)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
