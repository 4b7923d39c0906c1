package engine

import (
	"context"
	"testing"
	"time"

	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/entity"
	"sandboxcore/server/internal/movement"
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

func plainCfg(kind entity.Kind) entity.Config {
	return entity.Config{
		Kind:     kind,
		Movement: movement.Config{Radius: 1, WalkSpeed: 5},
		Animator: entity.AnimatorConfig{
			StateMachines: map[string]entity.StateMachineEntryConfig{
				"body": {States: map[string]animator.StateDef{"idle": {Frames: 1, Cycle: 1, Loop: true}}},
			},
			AnimationRate: 1,
		},
	}
}

func TestSpawnAllocatesAscendingNeverReusedIDs(t *testing.T) {
	m := New(stubWorldRef{}, nil)
	a, err := m.Spawn("a", plainCfg(entity.KindPlayer), entity.ModeMaster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := m.Spawn("b", plainCfg(entity.KindPlayer), entity.ModeMaster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID() <= a.ID() {
		t.Fatalf("expected strictly ascending ids, got a=%d b=%d", a.ID(), b.ID())
	}
}

func TestRunTickTicksEveryLiveEntity(t *testing.T) {
	m := New(stubWorldRef{}, nil)
	if _, err := m.Spawn("a", plainCfg(entity.KindPlayer), entity.ModeMaster); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Spawn("b", plainCfg(entity.KindMonster), entity.ModeMaster); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.RunTick(context.Background(), 1, 16*time.Millisecond)
	if m.Count() != 2 {
		t.Fatalf("expected both entities to remain after a tick with no death, got %d", m.Count())
	}
}

func TestRunTickSweepsEntitiesMarkedDying(t *testing.T) {
	m := New(stubWorldRef{}, nil)
	e, err := m.Spawn("a", plainCfg(entity.KindItemDrop), entity.ModeMaster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.MarkDying()
	m.RunTick(context.Background(), 1, 16*time.Millisecond)
	if m.Count() != 0 {
		t.Fatalf("expected dying entity to be swept, got count=%d", m.Count())
	}
	if !e.Dead() {
		t.Fatalf("expected entity to be marked dead after sweep")
	}
}

func TestDestroyRemovesEntityImmediately(t *testing.T) {
	m := New(stubWorldRef{}, nil)
	e, err := m.Spawn("a", plainCfg(entity.KindPlayer), entity.ModeMaster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Destroy(context.Background(), 1, e.ID())
	if _, ok := m.Lookup(e.ID()); ok {
		t.Fatalf("expected destroyed entity to be unreachable via Lookup")
	}
}
