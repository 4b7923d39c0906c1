package netelem

import (
	"testing"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/wire"
)

func TestHashMapDeltaCarriesSetsAndDeletes(t *testing.T) {
	counter := &VersionCounter{}
	master := NewHashMap(counter)
	master.Set("poisoned", core.NewBool(true))
	master.Set("stunned", core.NewBool(true))
	baseline := master.MaxVersion()

	master.Delete("stunned")
	master.Set("burning", core.NewBool(true))

	w := wire.NewWriter()
	wrote, _ := master.WriteDelta(w, baseline)
	if !wrote {
		t.Fatalf("expected a delta")
	}

	slave := NewHashMap(&VersionCounter{})
	// Seed the slave with the pre-baseline state so the delta is meaningful.
	slave.Set("poisoned", core.NewBool(true))
	slave.Set("stunned", core.NewBool(true))

	r := wire.NewReader(w.Bytes())
	if err := slave.ReadDelta(r, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := slave.Get("stunned"); ok {
		t.Fatalf("expected stunned to be removed")
	}
	if _, ok := slave.Get("burning"); !ok {
		t.Fatalf("expected burning to be present")
	}
	if _, ok := slave.Get("poisoned"); !ok {
		t.Fatalf("expected untouched key poisoned to remain present")
	}
}

func TestHashMapFullSnapshotOmitsTombstones(t *testing.T) {
	counter := &VersionCounter{}
	master := NewHashMap(counter)
	master.Set("a", core.NewInt(1))
	master.Set("b", core.NewInt(2))
	master.Delete("a")

	w := wire.NewWriter()
	master.WriteFull(w)

	slave := NewHashMap(&VersionCounter{})
	r := wire.NewReader(w.Bytes())
	if err := slave.ReadDelta(r, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := slave.Get("a"); ok {
		t.Fatalf("expected deleted key absent from full snapshot")
	}
	v, ok := slave.Get("b")
	if !ok {
		t.Fatalf("expected key b present")
	}
	if i, _ := v.Int(); i != 2 {
		t.Fatalf("expected 2, got %d", i)
	}
}
