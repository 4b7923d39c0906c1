package replication

import (
	"context"
	"testing"

	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/core"
	"sandboxcore/server/internal/engine"
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

func plainCfg() entity.Config {
	return entity.Config{
		Kind:     entity.KindPlayer,
		Movement: movement.Config{Radius: 1, WalkSpeed: 5},
		Animator: entity.AnimatorConfig{
			StateMachines: map[string]entity.StateMachineEntryConfig{
				"body": {States: map[string]animator.StateDef{"idle": {Frames: 1, Cycle: 1, Loop: true}}},
			},
			AnimationRate: 1,
		},
	}
}

func TestWorldBroadcastTickCoversEveryJoinedSession(t *testing.T) {
	m := engine.New(stubWorldRef{}, nil)
	if _, err := m.Spawn("a", plainCfg(), entity.ModeMaster); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWorld(m, nil)
	w.Join("client-1")
	w.Join("client-2")

	out := w.BroadcastTick()
	if len(out) != 2 {
		t.Fatalf("expected a payload for each of 2 sessions, got %d", len(out))
	}
	for id, payload := range out {
		frames, err := SplitFrames(payload)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", id, err)
		}
		if len(frames) != 1 {
			t.Fatalf("expected one create frame for %s, got %d", id, len(frames))
		}
	}
}

func TestWorldDispatchRoutesEntityMessageToManagerQueue(t *testing.T) {
	m := engine.New(stubWorldRef{}, nil)
	target, err := m.Spawn("a", plainCfg(), entity.ModeMaster)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWorld(m, nil)
	payload := EncodeEntityMessage(EntityMessage{TargetID: target.ID(), Name: "ping", Args: core.NewNull(), PromiseID: "p"})
	if err := w.Dispatch(context.Background(), 1, "client-1", payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorldDispatchRejectsRemoteDamageFromClient(t *testing.T) {
	m := engine.New(stubWorldRef{}, nil)
	w := NewWorld(m, nil)
	payload := EncodeRemoteDamageRequest(RemoteDamageRequest{DestinationConnection: "x"})
	if err := w.Dispatch(context.Background(), 1, "client-1", payload); err == nil {
		t.Fatalf("expected an error rejecting a client-originated RemoteDamageRequest")
	}
}
