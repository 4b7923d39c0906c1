package netelem

import (
	"time"

	"sandboxcore/server/internal/wire"
)

// DynamicGroup holds a variable number of children addressed by a
// master-assigned stable id rather than a fixed ordinal, for collections
// whose membership changes at runtime (inventory slots, active status
// effects, particle emitter instances). A factory builds a fresh child of
// the group's single element kind so a receiver can construct children it
// has never seen, and so it can also skip over an update addressed to an
// id it no longer holds, since that update's payload cannot otherwise be
// parsed without knowing the child's shape.
type DynamicGroup struct {
	counter *VersionCounter
	factory func() Element

	nextID    uint64
	order     []uint64
	children  map[uint64]Element
	addedAt   map[uint64]uint64
	removedAt map[uint64]uint64
}

func NewDynamicGroup(counter *VersionCounter, factory func() Element) *DynamicGroup {
	return &DynamicGroup{
		counter:   counter,
		factory:   factory,
		children:  make(map[uint64]Element),
		addedAt:   make(map[uint64]uint64),
		removedAt: make(map[uint64]uint64),
	}
}

// Add inserts a new child and returns its stable id.
func (g *DynamicGroup) Add(e Element) uint64 {
	g.nextID++
	id := g.nextID
	g.order = append(g.order, id)
	g.children[id] = e
	g.addedAt[id] = g.counter.Next()
	return id
}

// Remove tombstones a child so a pending delta to a lagging receiver
// still carries the removal.
func (g *DynamicGroup) Remove(id uint64) {
	if _, ok := g.children[id]; !ok {
		return
	}
	delete(g.children, id)
	delete(g.addedAt, id)
	g.removedAt[id] = g.counter.Next()
}

func (g *DynamicGroup) Child(id uint64) (Element, bool) {
	e, ok := g.children[id]
	return e, ok
}

func (g *DynamicGroup) Len() int { return len(g.children) }

func (g *DynamicGroup) MaxVersion() uint64 {
	var max uint64
	for _, v := range g.addedAt {
		if v > max {
			max = v
		}
	}
	for _, v := range g.removedAt {
		if v > max {
			max = v
		}
	}
	for _, c := range g.children {
		if v := c.MaxVersion(); v > max {
			max = v
		}
	}
	return max
}

// WriteFull is WriteDelta(0) with its bookkeeping return values
// discarded: every addedAt is strictly greater than fromVersion zero, so
// every present child lands in the "added" section, and any tombstones
// that happen to precede it are sent to a receiver that holds none of
// those ids anyway and silently drops them.
func (g *DynamicGroup) WriteFull(w *wire.Writer) {
	g.WriteDelta(w, 0)
}

func (g *DynamicGroup) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	var removed, added, updated []uint64
	for id, v := range g.removedAt {
		if v > fromVersion {
			removed = append(removed, id)
		}
	}
	for _, id := range g.order {
		if _, ok := g.children[id]; !ok {
			continue
		}
		if g.addedAt[id] > fromVersion {
			added = append(added, id)
			continue
		}
		if g.children[id].MaxVersion() > fromVersion {
			updated = append(updated, id)
		}
	}

	any := len(removed) > 0 || len(added) > 0 || len(updated) > 0

	w.WriteVLQU(uint64(len(removed)))
	for _, id := range removed {
		w.WriteVLQU(id)
	}
	w.WriteVLQU(uint64(len(added)))
	for _, id := range added {
		w.WriteVLQU(id)
		g.children[id].WriteFull(w)
	}
	w.WriteVLQU(uint64(len(updated)))
	for _, id := range updated {
		w.WriteVLQU(id)
		g.children[id].WriteDelta(w, fromVersion)
	}

	return any, g.MaxVersion()
}

func (g *DynamicGroup) ReadDelta(r *wire.Reader, interpTime time.Duration) error {
	removedCount, err := r.ReadVLQU()
	if err != nil {
		return err
	}
	for i := uint64(0); i < removedCount; i++ {
		id, err := r.ReadVLQU()
		if err != nil {
			return err
		}
		delete(g.children, id)
	}

	addedCount, err := r.ReadVLQU()
	if err != nil {
		return err
	}
	for i := uint64(0); i < addedCount; i++ {
		id, err := r.ReadVLQU()
		if err != nil {
			return err
		}
		child := g.factory()
		if err := child.ReadDelta(r, interpTime); err != nil {
			return err
		}
		if _, existed := g.children[id]; !existed {
			g.order = append(g.order, id)
		}
		g.children[id] = child
	}

	updatedCount, err := r.ReadVLQU()
	if err != nil {
		return err
	}
	for i := uint64(0); i < updatedCount; i++ {
		id, err := r.ReadVLQU()
		if err != nil {
			return err
		}
		child, ok := g.children[id]
		if !ok {
			// Unknown id: still decode with a throwaway child of the
			// same kind so the stream stays aligned, then drop it.
			child = g.factory()
		}
		if err := child.ReadDelta(r, interpTime); err != nil {
			return err
		}
	}
	return nil
}

func (g *DynamicGroup) Tick(dt time.Duration) {
	for _, c := range g.children {
		c.Tick(dt)
	}
}
