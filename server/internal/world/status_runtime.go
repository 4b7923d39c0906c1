package world

import (
	"time"

	effectcontract "sandboxcore/server/effects/contract"
	state "sandboxcore/server/internal/world/state"
	statuspkg "sandboxcore/server/internal/world/status"
)

const (
	// StatusEffectBurning identifies the burning status effect shared across
	// the internal world and legacy façade.
	StatusEffectBurning state.StatusEffectType = "burning"

	burningStatusEffectDuration = 3 * time.Second
	burningTickInterval         = 200 * time.Millisecond

	effectTypeBurningTick   = string(effectcontract.EffectIDBurningTick)
	effectTypeBurningVisual = string(effectcontract.EffectIDBurningVisual)
)

func (w *World) buildStatusEffectDefinitions() map[string]statuspkg.ApplyStatusEffectDefinition {
	return statuspkg.NewStatusEffectDefinitions(statuspkg.StatusEffectDefinitionsConfig{
		Burning: statuspkg.BurningStatusEffectDefinitionConfig{
			Type:               string(StatusEffectBurning),
			Duration:           burningStatusEffectDuration,
			TickInterval:       burningTickInterval,
			InitialTick:        true,
			FallbackAttachment: statuspkg.AttachStatusEffectVisual,
		},
	})
}
