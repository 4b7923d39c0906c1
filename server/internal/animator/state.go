// Package animator implements the networked animator: the replicated
// state-machine, transformation, particle, light and sound surface every
// entity drives from its server tick and every client reads back to
// render, grounded on StarNetworkedAnimator.hpp's sub-element set.
package animator

import (
	"sandboxcore/server/internal/netelem"
)

// StateDef describes one frame-timing config a state machine cycles
// through. Only Frames/Cycle/Loop are fixed at
// construction; the rest of a state machine's visible surface replicates.
type StateDef struct {
	Frames int
	Cycle  float64 // total seconds for one pass through Frames, forward or reverse
	Loop   bool
}

// StateMachineConfig names one state machine and its closed set of states,
// fixed at construction per the animator's "names and counts never
// replicate" invariant.
type StateMachineConfig struct {
	States map[string]StateDef
}

// stateMachine is one named state machine's net-replicated surface: which
// state is current, its frame index, and whether it is running reverse.
// Frame advance itself is master-only local bookkeeping (frameElapsed);
// only the resulting frame index, progress and timer values replicate.
type stateMachine struct {
	states map[string]StateDef

	current *netelem.String
	frame   *netelem.Int
	reverse *netelem.Bool
	timer   *netelem.Float // seconds elapsed in the current frame

	frameElapsed float64
}

func newStateMachine(counter *netelem.VersionCounter, cfg StateMachineConfig, group *netelem.Group) *stateMachine {
	sm := &stateMachine{
		states:  cfg.States,
		current: netelem.NewString(counter),
		frame:   netelem.NewInt(counter),
		reverse: netelem.NewBool(counter),
		timer:   netelem.NewFloat(counter),
	}
	group.Add(sm.current)
	group.Add(sm.frame)
	group.Add(sm.reverse)
	group.Add(sm.timer)
	return sm
}

// setState switches the machine's current state, reporting whether a
// change actually occurred. A no-op call (same state, same reverse flag,
// startNew=false) leaves every observable — current state, frame, reverse, timer —
// untouched, matching the animator's idempotence invariant.
func (sm *stateMachine) setState(state string, startNew, reverse bool) bool {
	if _, ok := sm.states[state]; !ok {
		return false
	}
	sameState := sm.current.Get() == state
	if sameState && !startNew && sm.reverse.Get() == reverse {
		return false
	}
	sm.current.Set(state)
	// Flipping direction on the current state preserves frame progress;
	// only a genuinely new state (or an explicit startNew) resets it.
	if sameState && !startNew {
		sm.reverse.Set(reverse)
		return true
	}
	sm.reverse.Set(reverse)
	sm.frameElapsed = 0
	def := sm.states[state]
	if reverse && def.Frames > 0 {
		sm.frame.Set(int64(def.Frames - 1))
	} else {
		sm.frame.Set(0)
	}
	sm.timer.Set(0)
	return true
}

func (sm *stateMachine) tick(dt float64, rate float64) {
	def, ok := sm.states[sm.current.Get()]
	if !ok || def.Frames <= 0 || def.Cycle <= 0 {
		return
	}
	frameTime := def.Cycle / float64(def.Frames)
	sm.frameElapsed += dt * rate
	sm.timer.Set(sm.frameElapsed)

	for sm.frameElapsed >= frameTime {
		sm.frameElapsed -= frameTime
		sm.advanceFrame(def)
	}
}

func (sm *stateMachine) advanceFrame(def StateDef) {
	frame := int(sm.frame.Get())
	if sm.reverse.Get() {
		frame--
		if frame < 0 {
			if def.Loop {
				frame = def.Frames - 1
			} else {
				frame = 0
				sm.frameElapsed = 0
			}
		}
	} else {
		frame++
		if frame >= def.Frames {
			if def.Loop {
				frame = 0
			} else {
				frame = def.Frames - 1
				sm.frameElapsed = 0
			}
		}
	}
	sm.frame.Set(int64(frame))
}

func (sm *stateMachine) frameProgress() float64 {
	def, ok := sm.states[sm.current.Get()]
	if !ok || def.Frames <= 0 || def.Cycle <= 0 {
		return 0
	}
	frameTime := def.Cycle / float64(def.Frames)
	if frameTime <= 0 {
		return 0
	}
	progress := sm.timer.Get() / frameTime
	if progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		progress -= float64(int(progress))
	}
	return progress
}

func (sm *stateMachine) nextFrame() int {
	def, ok := sm.states[sm.current.Get()]
	if !ok || def.Frames <= 0 {
		return int(sm.frame.Get())
	}
	frame := int(sm.frame.Get())
	if sm.reverse.Get() {
		if frame == 0 {
			if def.Loop {
				return def.Frames - 1
			}
			return 0
		}
		return frame - 1
	}
	if frame == def.Frames-1 {
		if def.Loop {
			return 0
		}
		return frame
	}
	return frame + 1
}
