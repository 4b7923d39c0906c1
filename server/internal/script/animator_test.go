package script

import (
	"testing"

	"sandboxcore/server/internal/animator"
	"sandboxcore/server/internal/netelem"
)

func newTestAnimatorController() *animator.Controller {
	return animator.New(&netelem.VersionCounter{}, animator.Config{
		StateMachines: map[string]animator.StateMachineConfig{
			"body": {States: map[string]animator.StateDef{
				"idle": {Frames: 1, Cycle: 1, Loop: true},
				"walk": {Frames: 2, Cycle: 0.2, Loop: true},
			}},
		},
		AnimationRate: 1,
		Seed:          "seed",
		EntityID:      "entity-1",
	})
}

func TestAnimatorBindingSetStateAndState(t *testing.T) {
	a := AnimatorBinding{Controller: newTestAnimatorController()}
	if !a.SetState("body", "walk", true, false) {
		t.Fatalf("expected setState to report a change")
	}
	if a.State("body") != "walk" {
		t.Fatalf("expected state 'walk', got %q", a.State("body"))
	}
}

func TestAnimatorBindingNilSafe(t *testing.T) {
	var a AnimatorBinding
	if a.SetState("body", "walk", true, false) {
		t.Fatalf("expected unbound binding setState to report no change")
	}
	if a.State("body") != "" {
		t.Fatalf("expected unbound binding state to be empty")
	}
}
