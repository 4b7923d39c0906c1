package status

import "errors"

// ErrUnknownResource is returned when a caller names a resource absent from
// the controller's configuration.
var ErrUnknownResource = errors.New("status: unknown resource")

// ErrUnknownEffect is returned when a caller names a unique effect absent
// from the controller's configuration.
var ErrUnknownEffect = errors.New("status: unknown effect")

// resource holds one named scalar resource's runtime state.
type resource struct {
	current float64
	hasMax  bool
	max     float64
	maxExpr func(stats map[string]float64) float64
	locked  bool
}

// ResourceConfig describes one resource at construction time.
type ResourceConfig struct {
	Name    string
	Initial float64
	// MaxExpr, if set, derives this resource's max from the resolved stat
	// table every time any modifier category changes. A resource with no
	// MaxExpr has no max and is never clamped from above.
	MaxExpr func(stats map[string]float64) float64
}

func newResource(cfg ResourceConfig) *resource {
	r := &resource{current: cfg.Initial, maxExpr: cfg.MaxExpr}
	return r
}

// ResourceSnapshot is the read-only view of a resource returned to callers.
type ResourceSnapshot struct {
	Current float64
	Max     float64
	HasMax  bool
	Locked  bool
}

func (r *resource) snapshot() ResourceSnapshot {
	return ResourceSnapshot{Current: r.current, Max: r.max, HasMax: r.hasMax, Locked: r.locked}
}

func (r *resource) clamp() {
	if r.current < 0 {
		r.current = 0
	}
	if r.hasMax && r.current > r.max {
		r.current = r.max
	}
}

func (r *resource) recomputeMax(stats map[string]float64) {
	if r.maxExpr == nil {
		return
	}
	r.max = r.maxExpr(stats)
	r.hasMax = true
	r.clamp()
}
