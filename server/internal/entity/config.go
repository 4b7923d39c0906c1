package entity

import (
	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/movement"
)

// Config is the designer-authored, construction-time shape of one entity:
// its kind-independent subsystem configuration plus exactly one populated
// kind-specific block, selected by Kind. Unlike Variant (the runtime
// tagged-union state), Config is the JSON document a world file or spawn
// request supplies.
type Config struct {
	Kind Kind `json:"kind" jsonschema:"required,description=Which variant this entity instantiates."`

	Movement movement.Config `json:"movementSettings" jsonschema:"description=Collision radius, speeds, mass, gravity and jump tuning."`
	Status   StatusConfig    `json:"statusSettings" jsonschema:"description=Base stats, resources, elemental resistances and damage-type routing."`
	Animator AnimatorConfig  `json:"animatorSettings" jsonschema:"description=State machines, drawable parts, animation rate and RNG seed."`
	Combat   CombatConfig    `json:"combatSettings,omitempty" jsonschema:"description=Damage-pipeline team assignment."`

	Player     *PlayerConfig     `json:"player,omitempty" jsonschema:"description=Populated only when kind is player."`
	Npc        *NpcConfig        `json:"npc,omitempty" jsonschema:"description=Populated only when kind is npc."`
	Monster    *MonsterConfig    `json:"monster,omitempty" jsonschema:"description=Populated only when kind is monster."`
	ItemDrop   *ItemDropConfig   `json:"itemDrop,omitempty" jsonschema:"description=Populated only when kind is itemDrop."`
	Projectile *ProjectileConfig `json:"projectile,omitempty" jsonschema:"description=Populated only when kind is projectile."`
	Object     *ObjectConfig     `json:"object,omitempty" jsonschema:"description=Populated only when kind is object."`
	Plant      *PlantConfig      `json:"plant,omitempty" jsonschema:"description=Populated only when kind is plant."`
	Effect     *EffectConfig     `json:"effect,omitempty" jsonschema:"description=Populated only when kind is effect."`
}

// StatusConfig is the JSON-facing mirror of status.Config; kept distinct so
// resource authoring can carry jsonschema tags without reaching into the
// status package's own types. It has no effect catalogue: status.Config's
// Effects is left empty by toStatusConfig.
type StatusConfig struct {
	BaseStats           map[string]float64          `json:"baseStats,omitempty" jsonschema:"description=Undamaged, unmodified stat values."`
	Resources           []ResourceEntryConfig        `json:"resources,omitempty" jsonschema:"description=Named scalar pools such as health or stamina."`
	ElementalResistance map[string]string            `json:"elementalResistance,omitempty" jsonschema:"description=Elemental type to resistance stat name."`
	DamageTypeResource  map[string]string            `json:"damageTypeResource,omitempty" jsonschema:"description=Damage type to resource name, default health."`
	NotificationHistory uint64                       `json:"notificationHistory,omitempty" jsonschema:"description=Observer stream step-history limit."`
}

// ResourceEntryConfig authors one named resource's initial value; its max is
// derived at runtime from stat modifiers, not authored directly here.
type ResourceEntryConfig struct {
	Name    string  `json:"name" jsonschema:"required,minLength=1"`
	Initial float64 `json:"initial" jsonschema:"minimum=0"`
	MaxStat string  `json:"maxStat,omitempty" jsonschema:"description=Name of a baseStats entry this resource's max tracks; omit for an unbounded resource."`
}

// AnimatorConfig is the JSON-facing mirror of animator.Config.
type AnimatorConfig struct {
	StateMachines map[string]StateMachineEntryConfig `json:"stateMachines,omitempty" jsonschema:"description=Named frame-progression state machines."`
	Parts         []string                            `json:"parts,omitempty" jsonschema:"description=Drawable part names whose image paths accept tag substitution."`
	AnimationRate float64                              `json:"animationRate,omitempty" jsonschema:"minimum=0,description=Global multiplier applied to every state machine's frame rate."`
	Seed          string                               `json:"seed,omitempty" jsonschema:"description=RNG seed label combined with entity id for deterministic particle/sound selection."`
}

// StateMachineEntryConfig authors one state machine's named states.
type StateMachineEntryConfig struct {
	States map[string]animator.StateDef `json:"states" jsonschema:"required,description=State name to frame count, cycle duration, and loop flag."`
}

// PlayerConfig carries no variant-specific fields beyond the shared
// movement/status/animator blocks; present so Kind.String() always has a
// matching config slot and schema entry even when empty today.
type PlayerConfig struct{}

// NpcConfig authors a patrol/behavior-tree-driven actor: its AI type name
// (looked up in the scripted-behavior library) and patrol waypoints.
type NpcConfig struct {
	AIType    string    `json:"aiType" jsonschema:"required,description=Behavior library config name, e.g. rat or bandit."`
	Waypoints []Vec2Config `json:"waypoints,omitempty" jsonschema:"description=Patrol route in world coordinates."`
}

// MonsterConfig mirrors StarMonster.cpp's makeMonsterCallbacks authoring
// surface: aggression, damage-on-touch, team, and drop/death cosmetics.
type MonsterConfig struct {
	Type              string  `json:"type" jsonschema:"required,description=Monster species/archetype name."`
	Level             int     `json:"level,omitempty" jsonschema:"minimum=1"`
	Aggressive        bool    `json:"aggressive,omitempty" jsonschema:"description=Whether the monster initiates combat on sight."`
	DamageOnTouch     bool    `json:"damageOnTouch,omitempty" jsonschema:"description=Whether contact alone deals damage, independent of an attack ability."`
	DamageTeamType    string  `json:"damageTeamType,omitempty"`
	DamageTeamNumber  int     `json:"damageTeamNumber,omitempty"`
	DropPoolID        string  `json:"dropPoolId,omitempty" jsonschema:"description=Reference into the item drop-pool catalogue."`
	DeathParticleBurst string `json:"deathParticleBurst,omitempty" jsonschema:"description=Particle emitter name to burst on death."`
	DeathSound        string  `json:"deathSound,omitempty" jsonschema:"description=Sound pool name to play on death."`
}

// ItemDropConfig authors a ground-item stack's identity and despawn timer.
type ItemDropConfig struct {
	ItemID      string  `json:"itemId" jsonschema:"required"`
	Quantity    int     `json:"quantity,omitempty" jsonschema:"minimum=1"`
	DespawnSecs float64 `json:"despawnSeconds,omitempty" jsonschema:"minimum=0"`
}

// ProjectileConfig authors a projectile's flight profile and the damage
// source it carries along its travel line.
type ProjectileConfig struct {
	Speed       float64 `json:"speed" jsonschema:"minimum=0"`
	MaxDistance float64 `json:"maxDistance,omitempty" jsonschema:"minimum=0"`
	Bounces     int     `json:"bounces,omitempty" jsonschema:"minimum=0,description=Number of surface bounces before the projectile is destroyed."`
	DamageType  string  `json:"damageType,omitempty"`
	Amount      float64 `json:"amount,omitempty" jsonschema:"minimum=0"`
}

// ObjectConfig authors a static or interactable world fixture.
type ObjectConfig struct {
	ObjectType  string `json:"objectType" jsonschema:"required"`
	Interactable bool  `json:"interactable,omitempty"`
}

// PlantConfig authors a harvestable/growable world fixture.
type PlantConfig struct {
	SpeciesID   string  `json:"speciesId" jsonschema:"required"`
	GrowthStage int     `json:"growthStage,omitempty" jsonschema:"minimum=0"`
	YieldItemID string  `json:"yieldItemId,omitempty"`
}

// EffectConfig authors a transient, non-damaging visual/audio effect
// entity (distinct from status.EffectConfig, which configures a status
// effect applied to another entity).
type EffectConfig struct {
	EffectType string  `json:"effectType" jsonschema:"required"`
	DurationMs int64   `json:"durationMs,omitempty" jsonschema:"minimum=0"`
}

// CombatConfig authors the team an entity's damage sources and candidacy
// checks resolve against in internal/combat's CanDamage matrix. TeamType
// names mirror combat.TeamType's string form (enemy, friendly, pvp,
// passive, ghostly, environment, indiscriminate, assistant); an empty or
// unrecognized value defaults to enemy.
type CombatConfig struct {
	TeamType   string `json:"teamType,omitempty" jsonschema:"description=One of enemy, friendly, pvp, passive, ghostly, environment, indiscriminate, assistant."`
	TeamNumber uint16 `json:"teamNumber,omitempty" jsonschema:"description=Distinguishes parties within the friendly or pvp team types."`
}

// Vec2Config is the JSON-facing mirror of world.Vec2, kept separate so the
// schema doesn't reach into the world package for an authoring-only shape.
type Vec2Config struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
