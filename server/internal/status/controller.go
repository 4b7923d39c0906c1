// Package status implements the per-entity resource/stat-modifier/unique-effect
// engine and the damage application pipeline that runs on top of it: health
// and other named resources, layered stat modifiers grouped by category,
// ephemeral and persistent unique effects with scripted hooks, and
// applyDamageRequest's resistance/clamp/knockback/notify sequence.
package status

import (
	"time"

	"sandboxcore/server/internal/core"
)

// Config seeds a controller's resources, base stats, and effect catalogue.
// Normally built once per entity variant from its merged JSON configuration.
type Config struct {
	Resources           []ResourceConfig
	BaseStats           map[string]float64
	Effects             map[string]EffectConfig
	ElementalResistance map[string]string // elemental type -> resistance stat name
	DamageTypeResource  map[string]string // damage type -> resource name, default "health"
	NotificationHistory uint64            // observer stream step-history limit
}

// Controller owns one entity's resources, stat modifiers, and active unique
// effects, plus the damage-notification observer streams a script or
// network layer pulls from by cursor.
type Controller struct {
	baseStats  map[string]float64
	stats      map[string]float64
	categories map[string][]Modifier

	resources map[string]*resource

	effectConfigs map[string]EffectConfig
	ephemeral     map[string]*activeEffect
	persistent    map[string]map[string]*activeEffect

	properties map[string]core.Json

	elementalResistance map[string]string
	damageTypeResource  map[string]string

	movement MovementCapability

	damageTaken     *core.ObserverStream[DamageNotification]
	inflictedHits   *core.ObserverStream[HitRecord]
	inflictedDamage *core.ObserverStream[DamageNotification]
}

// New constructs a controller from cfg.
func New(cfg Config) *Controller {
	c := &Controller{
		baseStats:           cloneFloatMap(cfg.BaseStats),
		categories:          make(map[string][]Modifier),
		resources:           make(map[string]*resource),
		effectConfigs:       make(map[string]EffectConfig, len(cfg.Effects)),
		ephemeral:           make(map[string]*activeEffect),
		persistent:          make(map[string]map[string]*activeEffect),
		properties:          make(map[string]core.Json),
		elementalResistance: cfg.ElementalResistance,
		damageTypeResource:  cfg.DamageTypeResource,
		damageTaken:         core.NewObserverStream[DamageNotification](cfg.NotificationHistory),
		inflictedHits:       core.NewObserverStream[HitRecord](cfg.NotificationHistory),
		inflictedDamage:     core.NewObserverStream[DamageNotification](cfg.NotificationHistory),
	}
	for name, effectCfg := range cfg.Effects {
		c.effectConfigs[name] = effectCfg
	}
	for _, rc := range cfg.Resources {
		c.resources[rc.Name] = newResource(rc)
	}
	c.recomputeStats()
	return c
}

// BindMovement attaches the movement controller this entity's effect
// scripts and knockback application are permitted to touch.
func (c *Controller) BindMovement(m MovementCapability) { c.movement = m }

func cloneFloatMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// recomputeStats re-resolves every stat from base plus every modifier
// category, then recomputes every resource's max expression against the new
// totals. Re-deriving every resource on any category change is simpler than
// tracking which stats each max expression reads; at the scale of one
// entity's resource count this is not a meaningful cost.
func (c *Controller) recomputeStats() {
	c.stats = resolveStats(c.baseStats, c.categories)
	for _, r := range c.resources {
		r.recomputeMax(c.stats)
	}
}

// SetModifierCategory replaces category's modifier list wholesale and
// recomputes derived stats and resource maxes. Passing a nil or empty slice
// clears the category.
func (c *Controller) SetModifierCategory(category string, mods []Modifier) {
	if len(mods) == 0 {
		delete(c.categories, category)
	} else {
		c.categories[category] = mods
	}
	c.recomputeStats()
}

// Stat returns the fully-resolved value of a named stat.
func (c *Controller) Stat(name string) float64 { return c.stats[name] }

// Resource returns a snapshot of a named resource and whether it exists.
func (c *Controller) Resource(name string) (ResourceSnapshot, bool) {
	r, ok := c.resources[name]
	if !ok {
		return ResourceSnapshot{}, false
	}
	return r.snapshot(), true
}

// ConsumeResource subtracts amount from name only if current >= amount.
// Returns false and makes no change when the resource is too low.
func (c *Controller) ConsumeResource(name string, amount float64) (bool, error) {
	r, ok := c.resources[name]
	if !ok {
		return false, ErrUnknownResource
	}
	if r.current < amount {
		return false, nil
	}
	r.current -= amount
	r.clamp()
	return true, nil
}

// OverConsumeResource always subtracts amount, clamping at 0, and reports
// whether the subtraction would have fully succeeded without clamping.
func (c *Controller) OverConsumeResource(name string, amount float64) (bool, error) {
	r, ok := c.resources[name]
	if !ok {
		return false, ErrUnknownResource
	}
	fullySucceeded := r.current >= amount
	r.current -= amount
	r.clamp()
	return fullySucceeded, nil
}

// GiveResource adds amount to name, respecting its configured max.
func (c *Controller) GiveResource(name string, amount float64) error {
	r, ok := c.resources[name]
	if !ok {
		return ErrUnknownResource
	}
	r.current += amount
	r.clamp()
	return nil
}

// SetResourceLocked sets or clears the locked flag on a resource.
func (c *Controller) SetResourceLocked(name string, locked bool) error {
	r, ok := c.resources[name]
	if !ok {
		return ErrUnknownResource
	}
	r.locked = locked
	return nil
}

// Property reads a status-property by key, as last written by SetProperty.
// Active unique effects do not write to the property bag.
func (c *Controller) Property(key string) (core.Json, bool) {
	v, ok := c.properties[key]
	return v, ok
}

// SetProperty writes a status-property directly.
func (c *Controller) SetProperty(key string, value core.Json) { c.properties[key] = value }

// TickMaster ages ephemeral effects and prunes expired ones. Called once per
// server tick on the master alongside movement.TickMaster.
func (c *Controller) TickMaster(dt time.Duration) {
	c.tickEffects(dt)
}

// DamageTakenSince returns damage notifications recorded against this
// entity as the target since the given cursor, plus the new cursor.
func (c *Controller) DamageTakenSince(since uint64) ([]DamageNotification, uint64) {
	return c.damageTaken.Query(since)
}

// InflictedHitsSince returns hit records this entity caused since the given
// cursor, plus the new cursor.
func (c *Controller) InflictedHitsSince(since uint64) ([]HitRecord, uint64) {
	return c.inflictedHits.Query(since)
}

// InflictedDamageSince returns damage notifications this entity caused
// since the given cursor, plus the new cursor.
func (c *Controller) InflictedDamageSince(since uint64) ([]DamageNotification, uint64) {
	return c.inflictedDamage.Query(since)
}
