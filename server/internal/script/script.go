// Package script hosts the per-entity scripted behavior surface: the
// Script contract every variant implementation satisfies, the capability
// bindings installed at init, and a native Go implementation so variant
// behavior can be written in-repo without embedding an interpreter.
package script

import (
	"time"

	"sandboxcore/server/internal/core"
)

// Script is the embedded scripting boundary every variant implementation
// satisfies, native or otherwise: a native Go handler, an embedded Lua
// state, or a WebAssembly sandbox are all acceptable as long as they
// implement this interface. The callback tables passed to Init are pure
// closures over capability-scoped subsystem handles, never a reference to
// the subsystem itself.
type Script interface {
	Init(bindings Bindings) error
	Update(dt time.Duration) error
	HandleMessage(sender, name string, args core.Json) (core.Option[core.Json], error)
	Shutdown()
	GetStorage() core.Json
	SetStorage(core.Json)
	// ShouldDie reports whether the script has asked its owning entity to
	// die, either as an explicit request or because it entered the errored
	// state (see NativeScript.Errored).
	ShouldDie() bool
}

// PositionRef exposes an entity's position through bound closures rather
// than raw pointers, grounded on the teacher's internal/ai.PositionRef
// idiom but adapted: movement state here lives behind net-element
// Get/Set methods, not plain float64 storage, so the binding wraps calls
// instead of aliasing memory.
type PositionRef struct {
	Get func() (x, y float64)
	Set func(x, y float64)
}

// Value returns the current position, or the zero vector if unbound.
func (r PositionRef) Value() (x, y float64) {
	if r.Get == nil {
		return 0, 0
	}
	return r.Get()
}

// Apply sets the position through the bound setter, a no-op if unbound.
func (r PositionRef) Apply(x, y float64) {
	if r.Set == nil {
		return
	}
	r.Set(x, y)
}

// FacingAdapter wraps callbacks for reading and mutating an entity's
// facing, identical in shape to internal/ai.FacingAdapter.
type FacingAdapter struct {
	Get func() string
	Set func(string)
}

// Value retrieves the current facing using the configured getter.
func (f FacingAdapter) Value() string {
	if f.Get == nil {
		return ""
	}
	return f.Get()
}

// Apply updates the facing using the configured setter when present.
func (f FacingAdapter) Apply(value string) {
	if f.Set == nil {
		return
	}
	f.Set(value)
}

// Bindings is the capability table installed once at script init,
// namespaced exactly as the message-passing boundary names them: config,
// entity, and the subsystem handles a variant script needs. Bindings
// never expose the world or another entity directly — every write flows
// back through the owning entity's own closures.
type Bindings struct {
	Config      ConfigBinding
	Entity      EntityBinding
	Monster     MonsterBinding
	Npc         NpcBinding
	Animator    AnimatorBinding
	Status      StatusBinding
	Mcontroller McontrollerBinding
	Behavior    BehaviorBinding
}

// ConfigBinding resolves configuration values from the entity's merged
// JSON tree, the same query(path, default) surface StarConfigLuaBindings
// exposes over StarJson.hpp's path grammar.
type ConfigBinding struct {
	Query func(path string, def core.Json) core.Json
}

// Get queries a config value, returning def when unbound.
func (c ConfigBinding) Get(path string, def core.Json) core.Json {
	if c.Query == nil {
		return def
	}
	return c.Query(path, def)
}

// EntityBinding exposes an entity's identity, position and facing, and a
// narrow path to message other entities, mirroring StarEntityLuaBindings.
type EntityBinding struct {
	ID          func() string
	Position    PositionRef
	Facing      FacingAdapter
	SendMessage func(targetID, name string, args core.Json) (promiseID string)
}
