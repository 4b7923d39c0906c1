package engine

import (
	"sandboxcore/server/internal/movement"
	"sandboxcore/server/internal/world"
)

// Arena is the live-simulation movement.WorldRef: a bounded rectangular
// plane with a static obstacle list, backed by the same Manager whose
// entities it exposes as path actors and anchor targets. Grounded on the
// teacher's world.World acting as its own Hub-facing geometry/actor source.
//
// Arena must exist before the Manager it serves (engine.New takes a
// WorldRef), and the Manager can only be looked up through Arena once
// constructed, so callers build it in two steps: NewArena, then Bind once
// the Manager exists.
type Arena struct {
	width, height float64
	obstacles     []world.Obstacle

	manager *Manager
}

// NewArena constructs the static half of a world reference: its dimensions
// and obstacle layout. Call Bind once the Manager built against this Arena
// exists.
func NewArena(width, height float64, obstacles []world.Obstacle) *Arena {
	cloned := make([]world.Obstacle, len(obstacles))
	copy(cloned, obstacles)
	return &Arena{width: width, height: height, obstacles: cloned}
}

// Bind attaches the Manager this Arena resolves live entities against.
// Must be called exactly once, immediately after engine.New(arena, ...).
func (a *Arena) Bind(m *Manager) { a.manager = m }

func (a *Arena) Dimensions() (float64, float64) { return a.width, a.height }

func (a *Arena) Obstacles() []world.Obstacle { return a.obstacles }

// OtherActors returns every tracked entity except excludeID as a path actor,
// for collision and path-following against the live entity set.
func (a *Arena) OtherActors(excludeID string) []world.PathActor {
	if a.manager == nil {
		return nil
	}
	entities := a.manager.Entities()
	out := make([]world.PathActor, 0, len(entities))
	for _, e := range entities {
		if e.UniqueID() == excludeID {
			continue
		}
		out = append(out, world.PathActor{ID: e.UniqueID(), Position: e.Movement().Position()})
	}
	return out
}

// AnchorTarget resolves an anchor slot to a world position. No per-slot
// offset authoring data exists yet, so every slot resolves to the target
// entity's own position; this is a known simplification, not a stub, and
// is safe because anchor followers re-derive offsets from their own state.
func (a *Arena) AnchorTarget(otherID, slot string) (world.Vec2, bool) {
	if a.manager == nil {
		return world.Vec2{}, false
	}
	for _, e := range a.manager.Entities() {
		if e.UniqueID() == otherID {
			return e.Movement().Position(), true
		}
	}
	return world.Vec2{}, false
}

// AnchorOccupied reports whether otherID's slot is already claimed by an
// entity other than exceptID.
func (a *Arena) AnchorOccupied(otherID, slot, exceptID string) bool {
	if a.manager == nil {
		return false
	}
	for _, e := range a.manager.Entities() {
		if e.UniqueID() == exceptID {
			continue
		}
		holderID, holderSlot, ok := e.Movement().AnchorState()
		if ok && holderID == otherID && holderSlot == slot {
			return true
		}
	}
	return false
}

var _ movement.WorldRef = (*Arena)(nil)
