package animator

import (
	"testing"

	"sandboxcore/server/internal/netelem"
)

func newTestController() *Controller {
	counter := &netelem.VersionCounter{}
	return New(counter, Config{
		StateMachines: map[string]StateMachineConfig{
			"body": {States: map[string]StateDef{
				"idle": {Frames: 1, Cycle: 1, Loop: true},
				"walk": {Frames: 4, Cycle: 0.4, Loop: true},
			}},
			"mouth": {States: map[string]StateDef{
				"closed": {Frames: 1, Cycle: 1, Loop: true},
				"talk":   {Frames: 2, Cycle: 0.2, Loop: true},
			}},
		},
		TransformationGroups: []string{"arm"},
		RotationGroups: map[string]RotationGroupConfig{
			"turret": {AngularVelocity: 3.14159265},
		},
		ParticleEmitters: map[string]ParticleEmitterConfig{
			"smoke": {Variants: []ParticleVariantConfig{{Name: "puff"}}},
		},
		Lights: []string{"glow"},
		Sounds: map[string]SoundConfig{
			"footstep": {Pool: []string{"step1", "step2"}},
		},
		Parts:         []string{"head"},
		AnimationRate: 1,
		Seed:          "test-seed",
		EntityID:      "entity-1",
	})
}

func TestSetStateChangesCurrentAndFrame(t *testing.T) {
	c := newTestController()
	if c.State("body") != "" {
		t.Fatalf("expected no initial state, got %q", c.State("body"))
	}
	changed := c.SetState("body", "walk", true, false)
	if !changed {
		t.Fatalf("expected setState to report a change")
	}
	if c.State("body") != "walk" {
		t.Fatalf("expected current state 'walk', got %q", c.State("body"))
	}
	if c.StateFrame("body") != 0 {
		t.Fatalf("expected frame 0 on fresh state, got %d", c.StateFrame("body"))
	}
}

func TestSetStateNoOpLeavesFrameUntouched(t *testing.T) {
	c := newTestController()
	c.SetState("body", "walk", true, false)
	c.TickMaster(0.3, &DynamicTarget{})
	frameBefore := c.StateFrame("body")
	timerBefore := c.StateFrameProgress("body")

	changed := c.SetState("body", "walk", false, false)
	if changed {
		t.Fatalf("expected no-op setState to report no change")
	}
	if c.StateFrame("body") != frameBefore {
		t.Fatalf("no-op setState must not reset frame: before=%d after=%d", frameBefore, c.StateFrame("body"))
	}
	if c.StateFrameProgress("body") != timerBefore {
		t.Fatalf("no-op setState must not reset frame progress")
	}
}

func TestTickMasterAdvancesFrames(t *testing.T) {
	c := newTestController()
	c.SetState("body", "walk", true, false)
	// walk: 4 frames over 0.4s -> 0.1s per frame
	c.TickMaster(0.1, &DynamicTarget{})
	if c.StateFrame("body") != 1 {
		t.Fatalf("expected frame 1 after one frame-time tick, got %d", c.StateFrame("body"))
	}
	c.TickMaster(0.1, &DynamicTarget{})
	c.TickMaster(0.1, &DynamicTarget{})
	if c.StateFrame("body") != 3 {
		t.Fatalf("expected frame 3 after two more frame-times, got %d", c.StateFrame("body"))
	}
	c.TickMaster(0.1, &DynamicTarget{})
	if c.StateFrame("body") != 0 {
		t.Fatalf("expected looping state to wrap to frame 0, got %d", c.StateFrame("body"))
	}
}

func TestReversingStatePreservesFrameProgress(t *testing.T) {
	c := newTestController()
	c.SetState("body", "walk", true, false)
	c.TickMaster(0.05, &DynamicTarget{}) // halfway into frame 0
	progressBefore := c.StateFrameProgress("body")

	c.SetState("body", "walk", false, true)
	if !c.StateReverse("body") {
		t.Fatalf("expected reverse flag set")
	}
	if c.StateFrameProgress("body") != progressBefore {
		t.Fatalf("reversing a no-op state change must preserve frame progress: before=%v after=%v", progressBefore, c.StateFrameProgress("body"))
	}
}

func TestTwoStateMachinesHoldIndependentStates(t *testing.T) {
	c := newTestController()
	c.SetState("body", "walk", true, false)
	c.SetState("mouth", "talk", false, false)
	if c.State("body") != "walk" || c.State("mouth") != "talk" {
		t.Fatalf("expected body=walk mouth=talk, got body=%q mouth=%q", c.State("body"), c.State("mouth"))
	}
}

func TestRotationGroupChasesTargetBoundedByAngularVelocity(t *testing.T) {
	c := newTestController()
	c.RotateGroup("turret", 1.5707963267948966, false) // 90 degrees
	c.TickMaster(0.5, &DynamicTarget{})                // half a second at pi rad/s -> pi/2 step, reaches target
	got := c.CurrentRotationAngle("turret")
	if got < 1.56 || got > 1.58 {
		t.Fatalf("expected rotation near pi/2 after reaching target, got %v", got)
	}
}

func TestRotationGroupImmediateSnapsWithoutWaitingForTick(t *testing.T) {
	c := newTestController()
	c.RotateGroup("turret", 1.0, true)
	if c.CurrentRotationAngle("turret") != 1.0 {
		t.Fatalf("expected immediate rotation to snap, got %v", c.CurrentRotationAngle("turret"))
	}
}

func TestGroupTransformationIncludesGroupTranslation(t *testing.T) {
	c := newTestController()
	c.TranslateTransformationGroup("arm", 10, 0)
	m := c.GroupTransformation([]string{"arm"})
	if m.TX != 10 {
		t.Fatalf("expected translation tx=10, got %v", m.TX)
	}
}

func TestResetTransformationGroupRestoresIdentity(t *testing.T) {
	c := newTestController()
	c.TranslateTransformationGroup("arm", 10, 5)
	c.ResetTransformationGroup("arm")
	m := c.GetTransformationGroup("arm")
	if m != Identity() {
		t.Fatalf("expected identity after reset, got %+v", m)
	}
}

func TestParticleEmitterAccumulatesAndEmitsWholeCycles(t *testing.T) {
	c := newTestController()
	c.SetParticleEmitterActive("smoke", true)
	c.SetParticleEmitterEmissionRate("smoke", 10) // 10/sec
	target := &DynamicTarget{}
	c.TickMaster(0.25, target) // accumulates 2.5 -> 2 cycles
	cues := target.PullParticles()
	if len(cues) != 2 {
		t.Fatalf("expected 2 particle cues from 2.5 accumulated emissions, got %d", len(cues))
	}
	for _, cue := range cues {
		if cue.Variant != "puff" {
			t.Fatalf("expected variant 'puff', got %q", cue.Variant)
		}
	}
}

func TestBurstParticleEmitterFiresIndependentlyOfActiveFlag(t *testing.T) {
	c := newTestController()
	c.SetParticleEmitterBurstCount("smoke", 3)
	c.BurstParticleEmitter("smoke")
	target := &DynamicTarget{}
	c.TickMaster(0, target)
	cues := target.PullParticles()
	if len(cues) != 3 {
		t.Fatalf("expected 3 burst particle cues, got %d", len(cues))
	}
}

func TestPlaySoundSelectsFromPoolAndEmitsCue(t *testing.T) {
	c := newTestController()
	c.PlaySound("footstep", 0)
	target := &DynamicTarget{}
	c.TickMaster(0, target)
	cues := target.PullSounds()
	if len(cues) != 1 {
		t.Fatalf("expected one sound cue, got %d", len(cues))
	}
	if cues[0].Sound != "step1" && cues[0].Sound != "step2" {
		t.Fatalf("expected a sound from the configured pool, got %q", cues[0].Sound)
	}
}

func TestDynamicTargetTranslatesAndFlipsCues(t *testing.T) {
	target := &DynamicTarget{OriginX: 100, OriginY: 50, Flipped: true}
	target.addParticle(ParticleCue{OffsetX: 5, OffsetY: 2})
	cues := target.PullParticles()
	if cues[0].OffsetX != 95 {
		t.Fatalf("expected flipped offset composed with origin, got %v", cues[0].OffsetX)
	}
	if cues[0].OffsetY != 52 {
		t.Fatalf("expected unflipped y composed with origin, got %v", cues[0].OffsetY)
	}
}

func TestApplyPartTagsSubstitutesFrameAndTags(t *testing.T) {
	c := newTestController()
	c.SetGlobalTag("color", "red")
	c.SetState("body", "walk", true, false)
	got := c.ApplyPartTags("head", "image:<color>:<frame>.png", "body")
	if got != "image:red:1.png" {
		t.Fatalf("expected tag substitution with 1-based frame, got %q", got)
	}
}

func TestSetLightActiveAndPosition(t *testing.T) {
	c := newTestController()
	c.SetLightActive("glow", true)
	c.SetLightPosition("glow", 1, 2)
	c.SetLightColor("glow", "#ffaa00")
	if !c.lights["glow"].active.Get() {
		t.Fatalf("expected light active")
	}
	if c.lights["glow"].x.Get() != 1 || c.lights["glow"].y.Get() != 2 {
		t.Fatalf("expected light position set")
	}
}
