package entity

import (
	"context"
	"fmt"
	"time"

	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/combat"
	"sandboxcore/server/internal/movement"
	"sandboxcore/server/internal/netelem"
	"sandboxcore/server/internal/script"
	"sandboxcore/server/internal/status"
	"sandboxcore/server/internal/world"
	"sandboxcore/server/logging"
)

// ID is the process-unique, 32-bit identity the manager assigns an entity
// at construction; it never changes and is never reused.
type ID uint32

// Entity is the composition root: a movement controller, a status
// controller, a networked animator, an optional script context, and any
// kind-specific variant state, all stamped through one shared
// netelem.VersionCounter so the whole tree's versions compare consistently.
// Mode is fixed for the entity's whole lifetime.
type Entity struct {
	id       ID
	uniqueID string
	kind     Kind
	mode     Mode

	group    *netelem.Group
	movement *movement.Controller
	status   *status.Controller
	animator *animator.Controller
	script   *script.Context

	resourceMirrors map[string]*netelem.Float
	resourceOrder   []string

	variant Variant
	team    combat.Team

	damageSources []combat.DamageSource

	dying   bool
	dead    bool
	initted bool
}

// New composes an entity from cfg. Script and its bindings are supplied
// separately by the caller (via BindScript) because a script needs a
// reference back to the already-constructed entity's controllers.
func New(id ID, uniqueID string, cfg Config, mode Mode, counter *netelem.VersionCounter) (*Entity, error) {
	if counter == nil {
		return nil, ErrInvalidConfig
	}

	e := &Entity{
		id:       id,
		uniqueID: uniqueID,
		kind:     cfg.Kind,
		mode:     mode,
		group:    netelem.NewGroup(),
	}

	e.movement = movement.New(uniqueID, counter, cfg.Movement)
	e.group.Add(e.movement.Group())

	e.status = status.New(toStatusConfig(cfg.Status))
	e.status.BindMovement(e.movement)

	e.resourceMirrors = make(map[string]*netelem.Float, len(cfg.Status.Resources))
	for _, r := range cfg.Status.Resources {
		mirror := netelem.NewFloat(counter)
		e.resourceMirrors[r.Name] = mirror
		e.resourceOrder = append(e.resourceOrder, r.Name)
		e.group.Add(mirror)
	}

	e.animator = animator.New(counter, toAnimatorConfig(cfg.Animator, uniqueID))
	e.group.Add(e.animator.Group())

	e.variant = buildVariant(cfg)
	e.team = toTeam(cfg.Combat)

	return e, nil
}

// BindScript attaches a running script.Context to the entity. Entities with
// no scripted behavior (e.g. a plain ground-item drop) may never call this.
func (e *Entity) BindScript(ctx *script.Context) { e.script = ctx }

// HasScript reports whether a script.Context is bound.
func (e *Entity) HasScript() bool { return e.script != nil }

// EnqueueMessage stages an incoming receiveMessage call for the entity's
// bound script on its next TickMaster; a no-op on an entity with no script.
func (e *Entity) EnqueueMessage(msg script.QueuedMessage) {
	if e.script != nil {
		e.script.Enqueue(msg)
	}
}

// Group returns the entity's root replicated subtree, which
// replication.Session.BuildTick writes into each EntityCreate and
// EntityUpdate keyed by the entity's ID.
func (e *Entity) Group() *netelem.Group { return e.group }

func (e *Entity) ID() ID         { return e.id }
func (e *Entity) UniqueID() string { return e.uniqueID }
func (e *Entity) Kind() Kind     { return e.kind }
func (e *Entity) Mode() Mode     { return e.mode }

func (e *Entity) Movement() *movement.Controller { return e.movement }
func (e *Entity) Status() *status.Controller     { return e.status }
func (e *Entity) Animator() *animator.Controller { return e.animator }
func (e *Entity) Variant() Variant               { return e.variant }
func (e *Entity) Team() combat.Team              { return e.team }

// QueueDamageSource stages one geometric-area damage source this entity's
// master tick produced, to be pulled by the world-level damage pipeline on
// the same tick it was queued.
func (e *Entity) QueueDamageSource(src combat.DamageSource) {
	if src.CausingEntityID == "" {
		src.CausingEntityID = e.uniqueID
	}
	e.damageSources = append(e.damageSources, src)
}

// DrainDamageSources returns and clears every damage source queued since
// the last drain.
func (e *Entity) DrainDamageSources() []combat.DamageSource {
	if len(e.damageSources) == 0 {
		return nil
	}
	out := e.damageSources
	e.damageSources = nil
	return out
}

// Init binds the entity to its containing world, bracketing world
// reference validity for every mutator the movement controller exposes.
func (e *Entity) Init(w movement.WorldRef) {
	e.movement.Init(w)
	e.initted = true
}

// Uninit drops the world reference; movement mutators fail again until the
// next Init.
func (e *Entity) Uninit() {
	e.movement.Uninit()
	e.initted = false
}

// TickMaster runs the authoritative per-tick sequence: script update, death
// check, movement and status integration, and animator advance with no
// dynamic target (a master has no renderer to drain cues into).
func (e *Entity) TickMaster(ctx context.Context, tick uint64, dt time.Duration) []script.MessageResult {
	var results []script.MessageResult
	if e.script != nil && !e.dying {
		results = e.script.Tick(ctx, tick, dt)
		if e.script.ShouldDie() {
			e.dying = true
		}
	}
	if err := e.movement.TickMaster(dt); err != nil {
		// Manager.Spawn always calls Init before an entity reaches RunTick;
		// reaching here means a caller drove TickMaster directly without it.
		panic(fmt.Errorf("%w: %v", ErrWorldTornDown, err))
	}
	e.status.TickMaster(dt)
	e.animator.TickMaster(dt.Seconds(), nil)
	e.setNetStates()
	return results
}

// setNetStates pushes status.Controller's resource values — local state not
// itself backed by a net-element — into their replicated mirrors, the
// "push current non-net-managed fields into their net-element mirrors"
// master tick step.
func (e *Entity) setNetStates() {
	for _, name := range e.resourceOrder {
		if snap, ok := e.status.Resource(name); ok {
			e.resourceMirrors[name].Set(snap.Current)
		}
	}
}

// ResourceValue reads a resource's replicated value, the slave-side
// counterpart of setNetStates: a slave entity has no status.Controller
// driving gameplay, only the mirrored current value for rendering/UI.
func (e *Entity) ResourceValue(name string) (float64, bool) {
	mirror, ok := e.resourceMirrors[name]
	if !ok {
		return 0, false
	}
	return mirror.Get(), true
}

// TickSlave runs the mirror-side sequence: each subsystem advances its own
// net-interpolation independently (movement.TickSlave and
// animator.TickSlave each tick their own subtree), so the root group is
// never ticked a second time here — that would double-advance every
// interpolating leaf's deadline in a single frame.
func (e *Entity) TickSlave(dt time.Duration) {
	e.movement.TickSlave(dt)
	e.animator.TickSlave(dt.Seconds())
}

// ShouldDestroy reports whether the manager should tear this entity down:
// its script asked to die, or it was marked dying directly through
// MarkDying (e.g. a depleted-health monster, an expired effect entity).
func (e *Entity) ShouldDestroy() bool { return e.dying }

// MarkDying flags the entity for teardown on the manager's next sweep,
// for death paths that don't go through a script (health depleted,
// despawn timer elapsed).
func (e *Entity) MarkDying() { e.dying = true }

// Destroy runs teardown side effects once and marks the entity dead; the
// manager must never tick or look up a dead entity again.
func (e *Entity) Destroy() {
	if e.dead {
		return
	}
	if e.script != nil {
		e.script.Shutdown()
	}
	e.Uninit()
	e.dead = true
}

func (e *Entity) Dead() bool { return e.dead }

// EntityRef adapts this entity's identity into the shape logging.Publisher
// payloads carry.
func (e *Entity) EntityRef() logging.EntityRef {
	return logging.EntityRef{ID: e.uniqueID, Kind: e.kind.String()}
}

func toTeam(cfg CombatConfig) combat.Team {
	teamType, ok := combat.TeamTypeByName[cfg.TeamType]
	if !ok {
		teamType = combat.TeamEnemy
	}
	return combat.Team{Type: teamType, Number: cfg.TeamNumber}
}

func toStatusConfig(cfg StatusConfig) status.Config {
	resources := make([]status.ResourceConfig, 0, len(cfg.Resources))
	for _, r := range cfg.Resources {
		rc := status.ResourceConfig{Name: r.Name, Initial: r.Initial}
		if statName := r.MaxStat; statName != "" {
			rc.MaxExpr = func(stats map[string]float64) float64 { return stats[statName] }
		}
		resources = append(resources, rc)
	}
	return status.Config{
		BaseStats:           cfg.BaseStats,
		Resources:           resources,
		ElementalResistance: cfg.ElementalResistance,
		DamageTypeResource:  cfg.DamageTypeResource,
		NotificationHistory: cfg.NotificationHistory,
	}
}

func toAnimatorConfig(cfg AnimatorConfig, entityID string) animator.Config {
	machines := make(map[string]animator.StateMachineConfig, len(cfg.StateMachines))
	for name, sm := range cfg.StateMachines {
		machines[name] = animator.StateMachineConfig{States: sm.States}
	}
	rate := cfg.AnimationRate
	if rate <= 0 {
		rate = 1
	}
	return animator.Config{
		StateMachines: machines,
		Parts:         cfg.Parts,
		AnimationRate: rate,
		Seed:          cfg.Seed,
		EntityID:      entityID,
	}
}

func buildVariant(cfg Config) Variant {
	var v Variant
	switch cfg.Kind {
	case KindPlayer:
		v.Player = &PlayerData{}
	case KindNpc:
		if cfg.Npc != nil {
			waypoints := make([]world.Vec2, 0, len(cfg.Npc.Waypoints))
			for _, wp := range cfg.Npc.Waypoints {
				waypoints = append(waypoints, world.Vec2{X: wp.X, Y: wp.Y})
			}
			v.Npc = &NpcData{AIType: cfg.Npc.AIType, Waypoints: waypoints}
		} else {
			v.Npc = &NpcData{}
		}
	case KindMonster:
		if cfg.Monster != nil {
			v.Monster = &MonsterData{
				Type:               cfg.Monster.Type,
				Level:              cfg.Monster.Level,
				Aggressive:         cfg.Monster.Aggressive,
				DamageOnTouch:      cfg.Monster.DamageOnTouch,
				DamageTeamType:     cfg.Monster.DamageTeamType,
				DamageTeamNumber:   cfg.Monster.DamageTeamNumber,
				DropPoolID:         cfg.Monster.DropPoolID,
				DeathParticleBurst: cfg.Monster.DeathParticleBurst,
				DeathSound:         cfg.Monster.DeathSound,
			}
		} else {
			v.Monster = &MonsterData{}
		}
	case KindItemDrop:
		if cfg.ItemDrop != nil {
			v.ItemDrop = &ItemDropData{
				ItemID:        cfg.ItemDrop.ItemID,
				Quantity:      cfg.ItemDrop.Quantity,
				RemainingSecs: cfg.ItemDrop.DespawnSecs,
			}
		} else {
			v.ItemDrop = &ItemDropData{}
		}
	case KindProjectile:
		if cfg.Projectile != nil {
			v.Projectile = &ProjectileData{
				MaxDistance: cfg.Projectile.MaxDistance,
				BouncesLeft: cfg.Projectile.Bounces,
				DamageType:  cfg.Projectile.DamageType,
				Amount:      cfg.Projectile.Amount,
			}
		} else {
			v.Projectile = &ProjectileData{}
		}
	case KindObject:
		if cfg.Object != nil {
			v.Object = &ObjectData{ObjectType: cfg.Object.ObjectType, Interactable: cfg.Object.Interactable}
		} else {
			v.Object = &ObjectData{}
		}
	case KindPlant:
		if cfg.Plant != nil {
			v.Plant = &PlantData{SpeciesID: cfg.Plant.SpeciesID, GrowthStage: cfg.Plant.GrowthStage, YieldItemID: cfg.Plant.YieldItemID}
		} else {
			v.Plant = &PlantData{}
		}
	case KindEffect:
		if cfg.Effect != nil {
			v.Effect = &EffectData{EffectType: cfg.Effect.EffectType, RemainingMs: cfg.Effect.DurationMs}
		} else {
			v.Effect = &EffectData{}
		}
	}
	return v
}
