package netelem

import (
	"time"

	"sandboxcore/server/internal/wire"
)

// eventHistoryCapacity bounds how far back an Event leaf can answer an
// occurrence-count query. A receiver further behind than this either
// missed a full keyframe resync (a protocol bug elsewhere) or has been
// disconnected long enough that replaying stale one-shot events would be
// meaningless; such a receiver gets the capacity-bounded count instead of
// an unbounded history scan.
const eventHistoryCapacity = 32

// Event is a one-shot trigger leaf. trigger() raises the bit on the
// master; the delta carries the number of occurrences since fromVersion so
// a lagging-but-still-connected slave never loses or double-counts a
// trigger. pullOccurred on the slave returns true exactly once per
// trigger it has not yet reported.
type Event struct {
	counter *VersionCounter
	version uint64

	occurrences []uint64 // versions at which Trigger() fired, oldest first

	// slave-side bookkeeping
	pending uint64
}

func NewEvent(counter *VersionCounter) *Event { return &Event{counter: counter} }

// Trigger raises the event on the master.
func (e *Event) Trigger() {
	e.version = e.counter.Next()
	e.occurrences = append(e.occurrences, e.version)
	if len(e.occurrences) > eventHistoryCapacity {
		e.occurrences = e.occurrences[len(e.occurrences)-eventHistoryCapacity:]
	}
}

func (e *Event) MaxVersion() uint64 { return e.version }

func (e *Event) occurrencesSince(fromVersion uint64) uint64 {
	var n uint64
	for _, v := range e.occurrences {
		if v > fromVersion {
			n++
		}
	}
	return n
}

func (e *Event) WriteFull(w *wire.Writer) {
	w.WriteVLQU(e.occurrencesSince(0))
}

func (e *Event) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	n := e.occurrencesSince(fromVersion)
	if n == 0 {
		return false, e.version
	}
	w.WriteVLQU(n)
	return true, e.version
}

// ReadDelta accumulates the occurrence count reported by the sender. A
// full snapshot writes every leaf, so the count can be zero, which leaves
// the pending count unchanged.
func (e *Event) ReadDelta(r *wire.Reader, _ time.Duration) error {
	n, err := r.ReadVLQU()
	if err != nil {
		return err
	}
	e.pending += n
	return nil
}

// PullOccurred returns true exactly once per trigger the slave has not
// already reported, decrementing the pending counter.
func (e *Event) PullOccurred() bool {
	if e.pending == 0 {
		return false
	}
	e.pending--
	return true
}

func (e *Event) Tick(time.Duration) {}
