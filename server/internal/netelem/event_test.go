package netelem

import (
	"testing"
	"time"

	"sandboxcore/server/internal/wire"
)

func TestEventExactlyOnceAcrossDeltas(t *testing.T) {
	counter := &VersionCounter{}
	master := NewEvent(counter)
	baseline := master.MaxVersion()

	master.Trigger()
	master.Trigger()

	w := wire.NewWriter()
	wrote, _ := master.WriteDelta(w, baseline)
	if !wrote {
		t.Fatalf("expected delta after two triggers")
	}

	slave := NewEvent(&VersionCounter{})
	r := wire.NewReader(w.Bytes())
	if err := slave.ReadDelta(r, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !slave.PullOccurred() {
		t.Fatalf("expected first occurrence to be reported")
	}
	if !slave.PullOccurred() {
		t.Fatalf("expected second occurrence to be reported")
	}
	if slave.PullOccurred() {
		t.Fatalf("expected no third occurrence")
	}
}

func TestEventNoTriggerWritesNothing(t *testing.T) {
	counter := &VersionCounter{}
	master := NewEvent(counter)

	w := wire.NewWriter()
	wrote, _ := master.WriteDelta(w, 0)
	if wrote {
		t.Fatalf("expected no delta without a trigger")
	}
}

func TestEventLaggingReceiverGetsCumulativeCount(t *testing.T) {
	counter := &VersionCounter{}
	master := NewEvent(counter)

	master.Trigger()
	master.Trigger()
	master.Trigger()

	// A receiver still at version 0 should see all three.
	w := wire.NewWriter()
	master.WriteDelta(w, 0)
	slave := NewEvent(&VersionCounter{})
	r := wire.NewReader(w.Bytes())
	if err := slave.ReadDelta(r, time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := 0
	for slave.PullOccurred() {
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 occurrences, got %d", count)
	}
}
