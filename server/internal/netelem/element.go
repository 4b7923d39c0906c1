// Package netelem implements a replicated state tree: leaves and groups
// addressed by ordinal index, each leaf carrying a monotonically
// increasing version stamp, delta framing keyed by a receiver's
// last-seen version, and per-leaf float interpolation.
package netelem

import (
	"time"

	"sandboxcore/server/internal/wire"
)

// VersionCounter is the process-wide monotonic counter that stamps every
// leaf write. A single counter is shared by every net-element tree on one
// process so versions compare consistently across entities.
type VersionCounter struct {
	value uint64
}

// Next returns the next version number, starting at 1 so that 0 always
// means "never written".
func (c *VersionCounter) Next() uint64 {
	c.value++
	return c.value
}

// Current returns the last issued version without advancing the counter.
func (c *VersionCounter) Current() uint64 { return c.value }

// Element is satisfied by every leaf and group in the tree.
type Element interface {
	// MaxVersion returns the highest version stamp anywhere in this
	// element's subtree.
	MaxVersion() uint64

	// WriteDelta writes this element's delta for versions strictly
	// greater than fromVersion. It returns whether any changed data was
	// written (a group writes its layout header even when nothing changed,
	// and then returns false) and the subtree's current max version.
	WriteDelta(w *wire.Writer, fromVersion uint64) (wrote bool, newVersion uint64)

	// WriteFull writes a full snapshot, equivalent to WriteDelta(0) but
	// named separately so callers (keyframes, dynamic-group adds) can
	// request it without pretending a client is starting from version
	// zero.
	WriteFull(w *wire.Writer)

	// ReadDelta applies a delta previously produced by WriteDelta or
	// WriteFull. interpTime is the configured interpolation window for
	// any float leaf encountered; unseen leaves keep their current
	// (possibly interpolating) value.
	ReadDelta(r *wire.Reader, interpTime time.Duration) error

	// Tick advances any in-flight interpolation in the subtree.
	Tick(dt time.Duration)
}

// NetCompatibilityRules governs how a reader tolerates schema drift
// between sender and receiver generations: trailing bytes from a newer
// sender are skipped, and missing trailing optional fields from an older
// sender leave the receiver's value untouched. The leaf/child count
// itself is frozen at schema version boundaries and is never negotiated
// at runtime.
type NetCompatibilityRules struct {
	// TolerateTrailingBytes lets a data leaf reader discard bytes past
	// the fields it recognizes instead of treating them as corruption.
	TolerateTrailingBytes bool
}

// DefaultCompatibilityRules tolerates trailing bytes, covering the
// common "newer sender, older receiver" deployment skew.
func DefaultCompatibilityRules() NetCompatibilityRules {
	return NetCompatibilityRules{TolerateTrailingBytes: true}
}
