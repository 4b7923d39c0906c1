package script

import (
	"time"

	"sandboxcore/server/internal/ai"
)

// BehaviorEnv supplies the whole-world context a single NPC's behavior run
// needs beyond its own blackboard, grounded on internal/ai.RunConfig's
// environment fields — the engine fills these from world/manager state
// once per tick, before handing the binding to the script.
type BehaviorEnv struct {
	Tick   func() uint64
	Now    func() time.Time
	Width  func() float64
	Height func() float64

	Players   func() []ai.Player
	OtherNPCs func() []*ai.NPC

	RandomAngle    func() float64
	RandomDistance func(min, max float64) float64
	DeriveFacing   func(dx, dy float64, fallback string) string

	AbilityCommand  func(ai.AbilityID) (string, bool)
	AbilityCooldown func(ai.AbilityID) uint64
}

// BehaviorBinding wraps the teacher's finite-state/blackboard AI engine
// (ai.Library/ai.Run) scoped to a single NPC, so scripted behavior reuses
// that engine's compiled states/transitions/actions rather than
// reimplementing one, matching StarBehaviorLuaBindings' role of handing a
// script a running behavior tree rather than an interpreter of its own.
type BehaviorBinding struct {
	Library *ai.Library
	NPC     *ai.NPC
	Env     BehaviorEnv
}

// Start looks up the compiled config for npcType and, if found, seeds the
// bound NPC's blackboard defaults and initial state id. Returns false if
// the type is unknown or the binding is incomplete.
func (b BehaviorBinding) Start(npcType string) bool {
	if b.Library == nil || b.NPC == nil || b.NPC.Blackboard == nil || b.NPC.AIState == nil {
		return false
	}
	cfg := b.Library.ConfigForType(npcType)
	if cfg == nil {
		return false
	}
	b.NPC.AIConfigID = cfg.ID()
	*b.NPC.AIState = cfg.InitialState()
	cfg.ApplyDefaults(b.NPC.Blackboard)
	return true
}

// Tick runs one AI decision pass for the bound NPC and returns the
// resulting simulation commands, empty when the binding is incomplete.
func (b BehaviorBinding) Tick() []ai.Command {
	if b.Library == nil || b.NPC == nil || b.Env.Tick == nil || b.Env.Now == nil {
		return nil
	}
	cfg := ai.RunConfig{
		Tick:            b.Env.Tick(),
		Now:             b.Env.Now(),
		Library:         b.Library,
		NPCs:            append([]*ai.NPC{b.NPC}, b.otherNPCs()...),
		RandomAngle:     b.Env.RandomAngle,
		RandomDistance:  b.Env.RandomDistance,
		DeriveFacing:    b.Env.DeriveFacing,
		AbilityCommand:  b.Env.AbilityCommand,
		AbilityCooldown: b.Env.AbilityCooldown,
	}
	if b.Env.Width != nil {
		cfg.Width = b.Env.Width()
	}
	if b.Env.Height != nil {
		cfg.Height = b.Env.Height()
	}
	if b.Env.Players != nil {
		cfg.Players = b.Env.Players()
	}
	commands := ai.Run(cfg)
	out := commands[:0:0]
	for _, cmd := range commands {
		if cmd.ActorID == b.NPC.ID {
			out = append(out, cmd)
		}
	}
	return out
}

func (b BehaviorBinding) otherNPCs() []*ai.NPC {
	if b.Env.OtherNPCs == nil {
		return nil
	}
	return b.Env.OtherNPCs()
}

// StateName returns the human-readable name of the bound NPC's current
// compiled state, or "" if unbound.
func (b BehaviorBinding) StateName() string {
	if b.Library == nil || b.NPC == nil || b.NPC.AIState == nil {
		return ""
	}
	cfg := b.Library.ConfigByID(b.NPC.AIConfigID)
	if cfg == nil {
		return ""
	}
	return cfg.StateName(*b.NPC.AIState)
}
