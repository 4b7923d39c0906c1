package netelem

import (
	"fmt"
	"time"

	"sandboxcore/server/internal/wire"
)

// Group is a fixed-schema composition of children addressed by ordinal
// index. Master and slave must Add the same children in the same order —
// the index, never a name, is what travels on the wire.
type Group struct {
	children []Element
}

func NewGroup() *Group { return &Group{} }

// Add appends the next child in schema order and returns its index.
func (g *Group) Add(e Element) int {
	g.children = append(g.children, e)
	return len(g.children) - 1
}

func (g *Group) Len() int { return len(g.children) }

func (g *Group) Child(i int) Element { return g.children[i] }

func (g *Group) MaxVersion() uint64 {
	var max uint64
	for _, c := range g.children {
		if v := c.MaxVersion(); v > max {
			max = v
		}
	}
	return max
}

// WriteFull writes every child unconditionally. It shares ReadDelta's
// wire layout (a layout bitset, here all-true, followed by each child's
// own full write) so a reader never needs to distinguish a full
// snapshot from a delta that happens to touch every child.
func (g *Group) WriteFull(w *wire.Writer) {
	allDirty := make([]bool, len(g.children))
	for i := range allDirty {
		allDirty[i] = true
	}
	writeBitset(w, allDirty)
	for _, c := range g.children {
		c.WriteFull(w)
	}
}

// WriteDelta emits a layout bitset (one bit per child, set when that
// child carries data this call) followed by each dirty child's delta in
// schema order.
func (g *Group) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	dirty := make([]bool, len(g.children))
	any := false
	for i, c := range g.children {
		if c.MaxVersion() > fromVersion {
			dirty[i] = true
			any = true
		}
	}
	writeBitset(w, dirty)
	if any {
		for i, c := range g.children {
			if dirty[i] {
				c.WriteDelta(w, fromVersion)
			}
		}
	}
	return any, g.MaxVersion()
}

func (g *Group) ReadDelta(r *wire.Reader, interpTime time.Duration) error {
	dirty, err := readBitset(r, len(g.children))
	if err != nil {
		return err
	}
	for i, d := range dirty {
		if !d {
			continue
		}
		if err := g.children[i].ReadDelta(r, interpTime); err != nil {
			return fmt.Errorf("netelem: child %d: %w", i, err)
		}
	}
	return nil
}

func (g *Group) Tick(dt time.Duration) {
	for _, c := range g.children {
		c.Tick(dt)
	}
}

func writeBitset(w *wire.Writer, bits []bool) {
	nbytes := (len(bits) + 7) / 8
	buf := make([]byte, nbytes)
	for i, b := range bits {
		if b {
			buf[i/8] |= 1 << uint(i%8)
		}
	}
	w.WriteBytes(buf)
}

func readBitset(r *wire.Reader, count int) ([]bool, error) {
	nbytes := (count + 7) / 8
	buf, err := r.ReadBytes(nbytes)
	if err != nil {
		return nil, err
	}
	bits := make([]bool, count)
	for i := range bits {
		bits[i] = buf[i/8]&(1<<uint(i%8)) != 0
	}
	return bits, nil
}
