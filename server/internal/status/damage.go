package status

import (
	"math"
	"time"

	"sandboxcore/server/internal/world"
)

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// DamageRequest is the fully-resolved request passed to ApplyDamageRequest:
// everything the world-level damage pipeline already decided (who, how
// much, what kind, where) reduced to what one target's status controller
// needs to act on it.
type DamageRequest struct {
	SourceEntityID string
	TargetEntityID string

	Amount        float64
	DamageType    string // Normal, IgnoresDef, Knockback, Environment, Status
	ElementalType string

	Knockback world.Vec2
	Position  world.Vec2

	HitType          string
	DamageSourceKind string
	TargetMaterial   string

	EphemeralEffects []EphemeralEffectApplication
}

// EphemeralEffectApplication names one ephemeral effect a damage request
// applies on a successful hit, with an optional duration override.
type EphemeralEffectApplication struct {
	Name     string
	Duration float64 // seconds; 0 uses the effect's configured default
}

// DamageNotification is the outcome of one applied damage request, recorded
// into the target's and (when known) the source's observer streams.
type DamageNotification struct {
	Source           string
	Target           string
	Position         world.Vec2
	DamageDealt      float64
	HealthLost       float64
	HitType          string
	DamageSourceKind string
	TargetMaterial   string
}

// HitRecord is the lightweight "I hit something" event recorded on the
// causing entity's inflictedHits stream, independent of how much damage
// actually landed.
type HitRecord struct {
	Target  string
	HitType string
}

// ApplyDamageRequest runs the master-side damage application sequence on
// this (the target's) controller: invulnerability/death short-circuit,
// elemental resistance, health subtraction, knockback, ephemeral effect
// application, and notification. source, if non-nil, is the causing
// entity's own controller and receives the symmetric inflicted-hit and
// inflicted-damage records; it may be nil for environment damage.
func (c *Controller) ApplyDamageRequest(req DamageRequest, source *Controller) []DamageNotification {
	if c.Stat("invulnerable") > 0 {
		return nil
	}
	if health, ok := c.resources["health"]; ok && health.current <= 0 {
		return nil
	}
	resourceName := "health"
	if mapped, ok := c.damageTypeResource[req.DamageType]; ok && mapped != "" {
		resourceName = mapped
	}
	target, ok := c.resources[resourceName]
	if !ok {
		return nil
	}

	amount := req.Amount
	if req.ElementalType != "" {
		if statName, ok := c.elementalResistance[req.ElementalType]; ok {
			resistance := c.Stat(statName)
			amount = math.Max(0, amount*(1-resistance))
		}
	}

	before := target.current
	target.current -= amount
	target.clamp()
	healthLost := before - target.current

	if c.movement != nil && (req.Knockback.X != 0 || req.Knockback.Y != 0) {
		v := c.movement.Velocity()
		c.movement.SetVelocity(world.Vec2{X: v.X + req.Knockback.X, Y: v.Y + req.Knockback.Y})
	}

	for _, eff := range req.EphemeralEffects {
		c.AddEphemeralEffect(eff.Name, secondsToDuration(eff.Duration))
	}

	notification := DamageNotification{
		Source:           req.SourceEntityID,
		Target:           req.TargetEntityID,
		Position:         req.Position,
		DamageDealt:      amount,
		HealthLost:       healthLost,
		HitType:          req.HitType,
		DamageSourceKind: req.DamageSourceKind,
		TargetMaterial:   req.TargetMaterial,
	}
	c.damageTaken.Add(notification)
	if source != nil {
		source.inflictedHits.Add(HitRecord{Target: req.TargetEntityID, HitType: req.HitType})
		source.inflictedDamage.Add(notification)
	}
	return []DamageNotification{notification}
}
