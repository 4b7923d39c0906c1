package netelem

import (
	"time"

	"sandboxcore/server/internal/wire"
)

// Float is a scalar leaf with optional interpolation. On the master it
// behaves like Int/Bool/String: Set stamps a new version immediately. On a
// slave with interpolation enabled, ReadDelta does not snap the visible
// value — it calls SetTarget, which stores (prev, target, deadline) and
// blends linearly across subsequent Tick calls.
type Float struct {
	counter *VersionCounter
	version uint64
	value   float64

	interpolate       bool
	extrapolationHint time.Duration

	prev     float64
	target   float64
	toTarget time.Duration
	elapsed  time.Duration
}

func NewFloat(counter *VersionCounter) *Float { return &Float{counter: counter} }

// EnableInterpolation turns on client-side blending for this leaf. hint is
// the extrapolationHint callers use to bound worst-case visual error during
// a stall.
func (f *Float) EnableInterpolation(hint time.Duration) {
	f.interpolate = true
	f.extrapolationHint = hint
}

// Get returns the leaf's current (possibly interpolated) value.
func (f *Float) Get() float64 { return f.value }

// Set is the master-side write: stamps a new version and snaps the value.
func (f *Float) Set(v float64) {
	if f.value == v && f.version != 0 {
		return
	}
	f.value = v
	f.version = f.counter.Next()
}

// SetTarget is the slave-side write used when interpolation is enabled: it
// begins blending from the current value towards v over interpTime.
func (f *Float) SetTarget(v float64, interpTime time.Duration) {
	if !f.interpolate || interpTime <= 0 {
		f.value = v
		return
	}
	f.prev = f.value
	f.target = v
	f.toTarget = interpTime
	f.elapsed = 0
}

func (f *Float) MaxVersion() uint64 { return f.version }

func (f *Float) WriteFull(w *wire.Writer) { w.WriteFloat32(float32(f.value)) }

func (f *Float) WriteDelta(w *wire.Writer, fromVersion uint64) (bool, uint64) {
	if f.version <= fromVersion {
		return false, f.version
	}
	f.WriteFull(w)
	return true, f.version
}

func (f *Float) ReadDelta(r *wire.Reader, interpTime time.Duration) error {
	v, err := r.ReadFloat32()
	if err != nil {
		return err
	}
	f.SetTarget(float64(v), interpTime)
	return nil
}

// Tick advances in-flight interpolation by dt.
func (f *Float) Tick(dt time.Duration) {
	if !f.interpolate || f.toTarget <= 0 {
		return
	}
	f.elapsed += dt
	t := float64(f.elapsed) / float64(f.toTarget)
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		t = 1
		f.value = f.target
		f.toTarget = 0
		return
	}
	f.value = f.prev + (f.target-f.prev)*t
}
