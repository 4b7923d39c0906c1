// Package engine implements the Manager: the single tick-loop owner that
// creates and destroys entities, drives their per-tick update order, routes
// messages between them, and allocates process-unique ids. Grounded on the
// teacher's Hub/World split in hub.go/world_mutators.go — Manager plays the
// Hub's role (lifecycle, command staging, tick loop) over a World of
// entity.Entity values instead of the teacher's flat player/npc maps.
package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"sandboxcore/server/internal/combat"
	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/entity"
	"sandboxcore/server/internal/movement"
	"sandboxcore/server/internal/netelem"
	"sandboxcore/server/internal/script"
	"sandboxcore/server/internal/status"
	"sandboxcore/server/logging"
	loggingreplication "sandboxcore/server/logging/replication"
)

// Message is a script-to-script call staged for delivery at the start of
// the tick it targets, mirroring the teacher's pendingCommands staging.
type Message struct {
	Sender    string
	Target    entity.ID
	Name      string
	Args      core.Json
	PromiseID string
}

// Manager owns every entity in one world instance and drives its tick loop.
// Per the concurrency model, a Manager is single-threaded: RunTick must
// never be called concurrently with itself or with Spawn/Destroy/Enqueue
// from another goroutine without the caller's own synchronization —
// mirroring the teacher's single simulation-owning Hub.
type Manager struct {
	counter  *netelem.VersionCounter
	world    movement.WorldRef
	pub      logging.Publisher
	pipeline *combat.Pipeline

	mu       sync.Mutex
	entities map[entity.ID]*entity.Entity
	order    []entity.ID // kept sorted ascending; rebuilt on Spawn/Destroy
	nextID   entity.ID

	queueMu sync.Mutex
	queue   []Message
}

// New constructs an empty Manager bound to world for movement mutators.
func New(world movement.WorldRef, pub logging.Publisher) *Manager {
	if pub == nil {
		pub = logging.NopPublisher{}
	}
	return &Manager{
		counter:  &netelem.VersionCounter{},
		world:    world,
		pub:      pub,
		pipeline: combat.NewPipeline(),
		entities: make(map[entity.ID]*entity.Entity),
	}
}

// Counter exposes the shared version counter so callers constructing
// entities outside Spawn (e.g. tests) stamp through the same sequence.
func (m *Manager) Counter() *netelem.VersionCounter { return m.counter }

// Spawn allocates the next entity id, constructs an Entity from cfg, calls
// Init once, and adds it to the tick order. Ids are never reused.
func (m *Manager) Spawn(uniqueID string, cfg entity.Config, mode entity.Mode) (*entity.Entity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID

	e, err := entity.New(id, uniqueID, cfg, mode, m.counter)
	if err != nil {
		return nil, err
	}
	e.Init(m.world)

	m.entities[id] = e
	m.order = append(m.order, id)
	sort.Slice(m.order, func(i, j int) bool { return m.order[i] < m.order[j] })
	return e, nil
}

// Lookup returns the entity with id, if still alive.
func (m *Manager) Lookup(id entity.ID) (*entity.Entity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entities[id]
	return e, ok
}

// Count reports how many entities are currently tracked, alive or pending
// teardown.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entities)
}

// Entities returns every tracked entity in ascending id order, the same
// order RunTick visits them in. Callers (replication's per-tick frame
// builder) must not mutate the returned slice's entities outside the
// Manager's own tick.
func (m *Manager) Entities() []*entity.Entity {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Entity, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entities[id])
	}
	return out
}

// Enqueue stages a cross-entity script message for delivery at the start of
// the target's next RunTick, the same staged-queue shape as the teacher's
// commandsMu-guarded pendingCommands.
func (m *Manager) Enqueue(msg Message) {
	m.queueMu.Lock()
	m.queue = append(m.queue, msg)
	m.queueMu.Unlock()
}

func (m *Manager) drainQueue() []Message {
	m.queueMu.Lock()
	defer m.queueMu.Unlock()
	if len(m.queue) == 0 {
		return nil
	}
	drained := m.queue
	m.queue = nil
	return drained
}

// RunTick runs one authoritative simulation step: route staged messages to
// their target entities' script contexts, tick every live entity in
// ascending id order (the ordering guarantee the concurrency model
// requires for damage-source and observer-stream determinism), then sweep
// and destroy any entity that asked to die this tick.
func (m *Manager) RunTick(ctx context.Context, tick uint64, dt time.Duration) {
	m.mu.Lock()
	ids := append([]entity.ID(nil), m.order...)
	entitiesByID := make(map[entity.ID]*entity.Entity, len(m.entities))
	for id, e := range m.entities {
		entitiesByID[id] = e
	}
	m.mu.Unlock()

	m.routeMessages(ids, entitiesByID)

	var sources []combat.DamageSource
	for _, id := range ids {
		e, ok := entitiesByID[id]
		if !ok || e.Dead() {
			continue
		}
		if e.Mode() == entity.ModeMaster {
			e.TickMaster(ctx, tick, dt)
			sources = append(sources, e.DrainDamageSources()...)
		} else {
			e.TickSlave(dt)
		}
	}

	m.pipeline.Tick(dt.Seconds())
	if len(sources) > 0 {
		m.pipeline.ProcessSources(sources, m.damagePipelineDeps(entitiesByID))
	}

	dying := make([]entity.ID, 0)
	for _, id := range ids {
		e, ok := entitiesByID[id]
		if ok && e.ShouldDestroy() {
			dying = append(dying, id)
		}
	}
	for _, id := range dying {
		m.destroy(ctx, tick, id)
	}
}

// damagePipelineDeps builds this tick's combat.PipelineDeps against the
// entity set RunTick already snapshotted: broad phase is a circle of
// source.Radius plus the candidate's own movement radius, centered on the
// causing entity's position (the simplest
// shape the Data Model's "geometric-area damage" permits without a world
// geometry system), queryHit always connects once inside that radius (no
// shield/invulnerability windup states exist yet), and every target is
// local since a Manager never spans more than one process.
func (m *Manager) damagePipelineDeps(byID map[entity.ID]*entity.Entity) combat.PipelineDeps {
	byUniqueID := func(uniqueID string) (*entity.Entity, bool) {
		for _, e := range byID {
			if e.UniqueID() == uniqueID {
				return e, true
			}
		}
		return nil, false
	}

	return combat.PipelineDeps{
		FindCandidates: func(source combat.DamageSource) []combat.CandidateTarget {
			causer, ok := byUniqueID(source.CausingEntityID)
			if !ok {
				return nil
			}
			origin := causer.Movement().Position()
			var out []combat.CandidateTarget
			for _, e := range byID {
				if e.UniqueID() == source.CausingEntityID || e.Dead() {
					continue
				}
				pos := e.Movement().Position()
				dx, dy := pos.X-origin.X, pos.Y-origin.Y
				reach := source.Radius + e.Movement().Radius()
				if dx*dx+dy*dy > reach*reach {
					continue
				}
				out = append(out, combat.CandidateTarget{ID: e.UniqueID(), Team: e.Team(), IsLocalMaster: true})
			}
			return out
		},
		QueryHit: func(combat.DamageSource, combat.CandidateTarget) (combat.HitType, bool) {
			return combat.HitNormal, true
		},
		ApplyLocal: func(target combat.CandidateTarget, req status.DamageRequest) []status.DamageNotification {
			te, ok := byUniqueID(target.ID)
			if !ok {
				return nil
			}
			var sourceCtl *status.Controller
			if ce, ok := byUniqueID(req.SourceEntityID); ok {
				sourceCtl = ce.Status()
			}
			return te.Status().ApplyDamageRequest(req, sourceCtl)
		},
	}
}

func (m *Manager) routeMessages(_ []entity.ID, byID map[entity.ID]*entity.Entity) {
	for _, msg := range m.drainQueue() {
		target, ok := byID[msg.Target]
		if !ok || target.Dead() {
			continue
		}
		target.EnqueueMessage(script.QueuedMessage{
			Sender:    msg.Sender,
			Name:      msg.Name,
			Args:      msg.Args,
			PromiseID: msg.PromiseID,
		})
	}
}

// Destroy marks id for teardown immediately rather than waiting for its
// own script to request it, for manager-driven removals such as a
// disconnect or an admin command.
func (m *Manager) Destroy(ctx context.Context, tick uint64, id entity.ID) {
	m.mu.Lock()
	e, ok := m.entities[id]
	m.mu.Unlock()
	if !ok {
		return
	}
	e.MarkDying()
	m.destroy(ctx, tick, id)
}

func (m *Manager) destroy(ctx context.Context, tick uint64, id entity.ID) {
	m.mu.Lock()
	e, ok := m.entities[id]
	if ok {
		delete(m.entities, id)
		for i, oid := range m.order {
			if oid == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
	m.mu.Unlock()
	if !ok {
		return
	}
	ref := e.EntityRef()
	e.Destroy()
	loggingreplication.EntityDestroyed(ctx, m.pub, tick, ref, loggingreplication.EntityDestroyedPayload{Reason: "script requested"}, nil)
}
