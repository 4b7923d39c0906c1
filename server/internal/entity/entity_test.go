package entity

import (
	"context"
	"errors"
	"testing"
	"time"

	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/movement"
	"sandboxcore/server/internal/netelem"
	"sandboxcore/server/internal/world"
)

type stubWorldRef struct{}

func (stubWorldRef) Dimensions() (float64, float64)                 { return 1000, 1000 }
func (stubWorldRef) Obstacles() []world.Obstacle                    { return nil }
func (stubWorldRef) OtherActors(excludeID string) []world.PathActor { return nil }
func (stubWorldRef) AnchorTarget(otherID, slot string) (world.Vec2, bool) {
	return world.Vec2{}, false
}
func (stubWorldRef) AnchorOccupied(otherID, slot, exceptID string) bool { return false }

func monsterCfg() Config {
	return Config{
		Kind:     KindMonster,
		Movement: movement.Config{Radius: 4, WalkSpeed: 10},
		Status: StatusConfig{
			BaseStats: map[string]float64{"maxHealth": 50},
			Resources: []ResourceEntryConfig{
				{Name: "health", Initial: 50, MaxStat: "maxHealth"},
			},
		},
		Animator: AnimatorConfig{
			StateMachines: map[string]StateMachineEntryConfig{
				"body": {States: map[string]animator.StateDef{
					"idle": {Frames: 1, Cycle: 1, Loop: true},
				}},
			},
			AnimationRate: 1,
		},
		Monster: &MonsterConfig{Type: "rat", Aggressive: true},
	}
}

func TestNewBuildsMatchingVariantForKind(t *testing.T) {
	e, err := New(1, "monster-1", monsterCfg(), ModeMaster, &netelem.VersionCounter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Variant().Monster == nil {
		t.Fatalf("expected Monster variant to be populated")
	}
	if e.Variant().Monster.Type != "rat" || !e.Variant().Monster.Aggressive {
		t.Fatalf("expected monster variant fields copied from config, got %+v", e.Variant().Monster)
	}
	if e.Variant().Npc != nil || e.Variant().Player != nil {
		t.Fatalf("expected only the Monster variant slot populated")
	}
}

func TestEntityTickMasterPanicsWithoutInit(t *testing.T) {
	e, err := New(1, "monster-1", monsterCfg(), ModeMaster, &netelem.VersionCounter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected TickMaster to panic without Init")
		}
		perr, ok := r.(error)
		if !ok || !errors.Is(perr, ErrWorldTornDown) {
			t.Fatalf("expected panic to wrap ErrWorldTornDown, got %v", r)
		}
	}()
	e.TickMaster(context.Background(), 1, 16*time.Millisecond)
}

func TestNewRejectsNilCounter(t *testing.T) {
	if _, err := New(1, "x", monsterCfg(), ModeMaster, nil); err == nil {
		t.Fatalf("expected error for nil version counter")
	}
}

func TestEntityTickMasterPushesResourceIntoMirror(t *testing.T) {
	e, err := New(1, "monster-1", monsterCfg(), ModeMaster, &netelem.VersionCounter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Init(stubWorldRef{})
	e.TickMaster(context.Background(), 1, 16*time.Millisecond)
	v, ok := e.ResourceValue("health")
	if !ok || v != 50 {
		t.Fatalf("expected mirrored health of 50, got %v ok=%v", v, ok)
	}
	if _, err := e.Status().ConsumeResource("health", 20); err != nil {
		t.Fatalf("unexpected error consuming resource: %v", err)
	}
	e.TickMaster(context.Background(), 2, 16*time.Millisecond)
	v, _ = e.ResourceValue("health")
	if v != 30 {
		t.Fatalf("expected mirrored health of 30 after consume+tick, got %v", v)
	}
}

func TestEntityTickMasterIntegratesMovement(t *testing.T) {
	e, err := New(1, "monster-1", monsterCfg(), ModeMaster, &netelem.VersionCounter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Init(stubWorldRef{})
	if err := e.Movement().SetPosition(world.Vec2{X: 0, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Movement().SetControls(movement.Controls{Move: world.Vec2{X: 1, Y: 0}})
	e.TickMaster(context.Background(), 1, 100*time.Millisecond)
	pos := e.Movement().Position()
	if pos.X <= 0 {
		t.Fatalf("expected movement integration to advance X, got %+v", pos)
	}
}

func TestEntityDestroyIsIdempotent(t *testing.T) {
	e, err := New(1, "monster-1", monsterCfg(), ModeMaster, &netelem.VersionCounter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Init(stubWorldRef{})
	e.Destroy()
	if !e.Dead() {
		t.Fatalf("expected entity to be dead after Destroy")
	}
	e.Destroy() // must not panic
}

func TestEntityMarkDyingFlagsForTeardown(t *testing.T) {
	e, err := New(1, "monster-1", monsterCfg(), ModeMaster, &netelem.VersionCounter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ShouldDestroy() {
		t.Fatalf("expected fresh entity to not be marked for destruction")
	}
	e.MarkDying()
	if !e.ShouldDestroy() {
		t.Fatalf("expected MarkDying to flag the entity for destruction")
	}
}
