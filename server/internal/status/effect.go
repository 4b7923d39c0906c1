package status

import (
	"time"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/world"
)

// MovementCapability is the narrow slice of a movement controller a unique
// effect's script is permitted to touch. sandboxcore/server/internal/movement.Controller
// satisfies this directly.
type MovementCapability interface {
	Position() world.Vec2
	Velocity() world.Vec2
	SetPosition(world.Vec2) error
	SetVelocity(world.Vec2) error
}

// EffectScriptContext is the restricted capability set handed to a unique
// effect's script on init: its owner's own status controller and movement
// controller, nothing else. A script cannot reach the world, other
// entities, or the manager through this context.
type EffectScriptContext struct {
	Status   *Controller
	Movement MovementCapability
}

// EffectScript is the per-effect scripted behavior hook. init runs once when
// the effect is added; uninit runs once when it is removed (expiry or
// explicit removal). Any implementation — native Go closures, an embedded
// interpreter, anything — satisfying this interface is acceptable; the
// script host package supplies the interpreted case.
type EffectScript interface {
	Init(ctx EffectScriptContext)
	Uninit()
}

// EffectConfig describes a unique effect's static definition: the stat
// modifiers it contributes (grouped exactly like any other modifier
// category), a script factory, and the duration used when added without an
// explicit override. StatusProperties and ParentDirectives are stored with
// the definition only: activating an effect does not write StatusProperties
// into the owner's property bag and does not pass ParentDirectives to an
// animator.
type EffectConfig struct {
	ModifierGroup    []Modifier
	StatusProperties map[string]core.Json
	NewScript        func() EffectScript
	ParentDirectives core.Json
	DefaultDuration  time.Duration
}

type activeEffect struct {
	name      string
	category  string // empty for ephemeral
	remaining time.Duration
	hasExpiry bool
	script    EffectScript
}

// RegisterEffect adds or replaces an effect's static definition. Normally
// called once per name at construction time from the owning entity's
// variant configuration.
func (c *Controller) RegisterEffect(name string, cfg EffectConfig) {
	c.effectConfigs[name] = cfg
}

func (c *Controller) categoryForEffect(name string) string {
	return "effect:" + name
}

// AddEphemeralEffect adds name with expiry. duration overrides the config's
// DefaultDuration when non-zero; a zero duration with no configured default
// means the effect persists until RemoveEffect is called explicitly.
func (c *Controller) AddEphemeralEffect(name string, duration time.Duration) error {
	cfg, ok := c.effectConfigs[name]
	if !ok {
		return ErrUnknownEffect
	}
	if duration == 0 {
		duration = cfg.DefaultDuration
	}
	c.removeActive(name)
	active := c.activate(name, cfg)
	active.hasExpiry = duration > 0
	active.remaining = duration
	c.ephemeral[name] = active
	return nil
}

// AddPersistentEffect attaches name to category, lifetime-linked to it.
// SetPersistentCategory is normally used instead when a category's whole
// membership changes atomically (e.g. re-equipping armor); this variant
// adds a single effect without disturbing the rest of the category.
func (c *Controller) AddPersistentEffect(name, category string) error {
	cfg, ok := c.effectConfigs[name]
	if !ok {
		return ErrUnknownEffect
	}
	c.removeActive(name)
	active := c.activate(name, cfg)
	active.category = category
	if c.persistent[category] == nil {
		c.persistent[category] = make(map[string]*activeEffect)
	}
	c.persistent[category][name] = active
	return nil
}

// SetPersistentCategory atomically replaces every effect attached to
// category with names: effects no longer listed are removed (uninit'd),
// effects newly listed are added, effects already present are left intact.
func (c *Controller) SetPersistentCategory(category string, names []string) error {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	for name := range c.persistent[category] {
		if !wanted[name] {
			c.removeActive(name)
		}
	}
	for name := range wanted {
		if _, ok := c.persistent[category][name]; ok {
			continue
		}
		if err := c.AddPersistentEffect(name, category); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEffect removes an active effect by name, ephemeral or persistent,
// uninitialising its script and withdrawing its modifier category.
func (c *Controller) RemoveEffect(name string) {
	c.removeActive(name)
}

func (c *Controller) activate(name string, cfg EffectConfig) *activeEffect {
	active := &activeEffect{name: name}
	c.categories[c.categoryForEffect(name)] = cfg.ModifierGroup
	c.recomputeStats()
	if cfg.NewScript != nil {
		active.script = cfg.NewScript()
		active.script.Init(EffectScriptContext{Status: c, Movement: c.movement})
	}
	return active
}

func (c *Controller) removeActive(name string) {
	var active *activeEffect
	if a, ok := c.ephemeral[name]; ok {
		active = a
		delete(c.ephemeral, name)
	}
	for category, members := range c.persistent {
		if a, ok := members[name]; ok {
			active = a
			delete(members, name)
			if len(members) == 0 {
				delete(c.persistent, category)
			}
		}
	}
	if active == nil {
		return
	}
	if active.script != nil {
		active.script.Uninit()
	}
	delete(c.categories, c.categoryForEffect(name))
	c.recomputeStats()
}

// ActiveUniqueStatusEffectSummary lists every currently active effect name,
// ephemeral and persistent combined.
func (c *Controller) ActiveUniqueStatusEffectSummary() []string {
	out := make([]string, 0, len(c.ephemeral))
	for name := range c.ephemeral {
		out = append(out, name)
	}
	for _, members := range c.persistent {
		for name := range members {
			out = append(out, name)
		}
	}
	return out
}

// tickEffects ages ephemeral effects by dt, removing any whose remaining
// duration has elapsed.
func (c *Controller) tickEffects(dt time.Duration) {
	var expired []string
	for name, active := range c.ephemeral {
		if !active.hasExpiry {
			continue
		}
		active.remaining -= dt
		if active.remaining <= 0 {
			expired = append(expired, name)
		}
	}
	for _, name := range expired {
		c.removeActive(name)
	}
}
