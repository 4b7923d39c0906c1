package animator

import (
	"math/rand"

	"sandboxcore/server/internal/netelem"
)

// ParticleVariantConfig is one particle variant a particle emitter spawns
// on every emission, fixed at construction like the rest of the emitter's
// closed shape (variant count and selection strategy never replicate).
type ParticleVariantConfig struct {
	Name string
}

// ParticleEmitterConfig is an emitter's closed, construction-time shape.
type ParticleEmitterConfig struct {
	Variants          []ParticleVariantConfig
	RandomSelectCount int // 0 means emit every configured variant
	EmissionVariance  float64
}

type particleEmitter struct {
	variants          []ParticleVariantConfig
	randomSelectCount int
	variance          float64
	rng               *rand.Rand

	active        *netelem.Bool
	emissionRate  *netelem.Float
	burstCount    *netelem.Int
	offsetX       *netelem.Float
	offsetY       *netelem.Float
	offsetW       *netelem.Float
	offsetH       *netelem.Float
	burstTrigger  *netelem.Event
	emissionTally float64
	burstPending  int
}

func newParticleEmitter(counter *netelem.VersionCounter, cfg ParticleEmitterConfig, rng *rand.Rand, group *netelem.Group) *particleEmitter {
	pe := &particleEmitter{
		variants:          cfg.Variants,
		randomSelectCount: cfg.RandomSelectCount,
		variance:          cfg.EmissionVariance,
		rng:               rng,
		active:            netelem.NewBool(counter),
		emissionRate:      netelem.NewFloat(counter),
		burstCount:        netelem.NewInt(counter),
		offsetX:           netelem.NewFloat(counter),
		offsetY:           netelem.NewFloat(counter),
		offsetW:           netelem.NewFloat(counter),
		offsetH:           netelem.NewFloat(counter),
		burstTrigger:      netelem.NewEvent(counter),
	}
	group.Add(pe.active)
	group.Add(pe.emissionRate)
	group.Add(pe.burstCount)
	group.Add(pe.offsetX)
	group.Add(pe.offsetY)
	group.Add(pe.offsetW)
	group.Add(pe.offsetH)
	group.Add(pe.burstTrigger)
	return pe
}

func (pe *particleEmitter) setActive(active bool)               { pe.active.Set(active) }
func (pe *particleEmitter) setEmissionRate(rate float64)         { pe.emissionRate.Set(rate) }
func (pe *particleEmitter) setBurstCount(count int64)            { pe.burstCount.Set(count) }
func (pe *particleEmitter) setOffsetRegion(x, y, w, h float64) {
	pe.offsetX.Set(x)
	pe.offsetY.Set(y)
	pe.offsetW.Set(w)
	pe.offsetH.Set(h)
}

func (pe *particleEmitter) burst() {
	pe.burstTrigger.Trigger()
	pe.burstPending += int(pe.burstCount.Get())
}

// tick accumulates this tick's continuous and burst emissions and returns
// the variants to spawn for each cycle emitted, applying random selection
// when configured.
func (pe *particleEmitter) tick(dt float64) [][]ParticleVariantConfig {
	var cycles [][]ParticleVariantConfig

	if pe.active.Get() {
		variance := 0.0
		if pe.variance > 0 {
			variance = (pe.rng.Float64()*2 - 1) * pe.variance
		}
		pe.emissionTally += pe.emissionRate.Get()*dt + variance
		for pe.emissionTally >= 1 {
			pe.emissionTally -= 1
			cycles = append(cycles, pe.selectVariants())
		}
	}

	for pe.burstPending > 0 {
		pe.burstPending--
		cycles = append(cycles, pe.selectVariants())
	}

	return cycles
}

func (pe *particleEmitter) selectVariants() []ParticleVariantConfig {
	if pe.randomSelectCount <= 0 || pe.randomSelectCount >= len(pe.variants) {
		return pe.variants
	}
	shuffled := append([]ParticleVariantConfig(nil), pe.variants...)
	pe.rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:pe.randomSelectCount]
}
