package netelem

import (
	"time"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/wire"
)

// HashMap is a keyed-delta leaf: a string-keyed map of Json values where
// each key change is tracked independently, used for tag dictionaries and
// other sparse config overlays. Keys are ordered by first insertion so
// full snapshots are deterministic across identical master states.
type HashMap struct {
	counter *VersionCounter
	version uint64

	order  []string
	values map[string]core.Json
	stamp  map[string]uint64
	tomb   map[string]uint64 // key -> version at which it was removed
}

func NewHashMap(counter *VersionCounter) *HashMap {
	return &HashMap{
		counter: counter,
		values:  make(map[string]core.Json),
		stamp:   make(map[string]uint64),
		tomb:    make(map[string]uint64),
	}
}

func (h *HashMap) Get(key string) (core.Json, bool) {
	v, ok := h.values[key]
	return v, ok
}

func (h *HashMap) Set(key string, value core.Json) {
	if _, existed := h.values[key]; !existed {
		h.order = append(h.order, key)
	}
	delete(h.tomb, key)
	h.values[key] = value
	v := h.counter.Next()
	h.stamp[key] = v
	h.version = v
}

func (h *HashMap) Delete(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	delete(h.stamp, key)
	v := h.counter.Next()
	h.tomb[key] = v
	h.version = v
}

func (h *HashMap) MaxVersion() uint64 { return h.version }

func (h *HashMap) WriteFull(w *wire.Writer) {
	w.WriteVLQU(0) // no removals in a full snapshot
	present := make([]string, 0, len(h.order))
	for _, k := range h.order {
		if _, ok := h.values[k]; ok {
			present = append(present, k)
		}
	}
	w.WriteVLQU(uint64(len(present)))
	for _, k := range present {
		w.WriteString(k)
		value := h.values[k]
		wire.WriteJson(w, value)
	}
}

func (h *HashMap) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	var removed []string
	for k, v := range h.tomb {
		if v > fromVersion {
			removed = append(removed, k)
		}
	}
	var updated []string
	for _, k := range h.order {
		if _, ok := h.values[k]; !ok {
			continue
		}
		if h.stamp[k] > fromVersion {
			updated = append(updated, k)
		}
	}
	if len(removed) == 0 && len(updated) == 0 {
		return false, h.version
	}
	w.WriteVLQU(uint64(len(removed)))
	for _, k := range removed {
		w.WriteString(k)
	}
	w.WriteVLQU(uint64(len(updated)))
	for _, k := range updated {
		w.WriteString(k)
		wire.WriteJson(w, h.values[k])
	}
	return true, h.version
}

func (h *HashMap) ReadDelta(r *wire.Reader, _ time.Duration) error {
	removedCount, err := r.ReadVLQU()
	if err != nil {
		return err
	}
	for i := uint64(0); i < removedCount; i++ {
		key, err := r.ReadString()
		if err != nil {
			return err
		}
		if _, ok := h.values[key]; ok {
			delete(h.values, key)
		}
	}
	updatedCount, err := r.ReadVLQU()
	if err != nil {
		return err
	}
	for i := uint64(0); i < updatedCount; i++ {
		key, err := r.ReadString()
		if err != nil {
			return err
		}
		value, err := wire.ReadJson(r)
		if err != nil {
			return err
		}
		if _, existed := h.values[key]; !existed {
			h.order = append(h.order, key)
		}
		h.values[key] = value
	}
	return nil
}

func (h *HashMap) Tick(time.Duration) {}
