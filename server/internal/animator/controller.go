package animator

import (
	"hash/fnv"
	"math/rand"
	"time"

	"sandboxcore/server/internal/netelem"
)

// SchemaVersion numbers the layout of an animator's replicated tree. It
// is a package constant only: no full or delta write carries it. Sub-elements are never reordered or removed across a
// version, only appended, so a receiver on an older version can still
// decode every leaf it knows about.
const SchemaVersion byte = 1

// RotationGroupConfig names one rotation group and its angular velocity,
// fixed at construction.
type RotationGroupConfig struct {
	AngularVelocity float64
}

// SoundConfig names one sound's closed asset pool, fixed at construction;
// the pool contents themselves may still be replaced at runtime via
// SetSoundPool.
type SoundConfig struct {
	Pool []string
}

// Config is an animator's construction-time shape: the fixed set of state
// machines, transformation/rotation groups, particle emitters, lights,
// sound pools and parts. Only scalar contents of these ever replicate
// after construction, per the animator's "names and counts are fixed"
// invariant.
type Config struct {
	StateMachines       map[string]StateMachineConfig
	TransformationGroups []string
	RotationGroups      map[string]RotationGroupConfig
	ParticleEmitters    map[string]ParticleEmitterConfig
	Lights              []string
	Sounds              map[string]SoundConfig
	Parts               []string

	AnimationRate float64
	Seed          string // RNG seed label, combined with entity id for determinism
	EntityID      string
}

// Controller is one entity's networked animator: its full replicated tree
// plus the local bookkeeping (frame timers, particle/sound RNG, ramp
// state) needed to drive it master-side.
type Controller struct {
	counter *netelem.VersionCounter
	group   *netelem.Group

	stateMachines map[string]*stateMachine
	transforms    map[string]*transformationGroup
	rotations     map[string]*rotationGroup
	emitters      map[string]*particleEmitter
	lights        map[string]*light
	sounds        map[string]*soundPool
	tags          *tagOverlay

	animationRate *netelem.Float
	flipped       *netelem.Bool
	flipCenter    *netelem.Float
	zoom          *netelem.Float
}

// New constructs a controller from cfg, stamping every leaf through
// counter — the same process-wide counter an entity's movement and status
// controllers share, so versions compare consistently across an entity's
// whole replicated tree. The returned group is the single net-element a
// caller Adds into that tree.
func New(counter *netelem.VersionCounter, cfg Config) *Controller {
	group := netelem.NewGroup()

	c := &Controller{
		counter:       counter,
		group:         group,
		stateMachines: make(map[string]*stateMachine, len(cfg.StateMachines)),
		transforms:    make(map[string]*transformationGroup, len(cfg.TransformationGroups)),
		rotations:     make(map[string]*rotationGroup, len(cfg.RotationGroups)),
		emitters:      make(map[string]*particleEmitter, len(cfg.ParticleEmitters)),
		lights:        make(map[string]*light, len(cfg.Lights)),
		sounds:        make(map[string]*soundPool, len(cfg.Sounds)),
		animationRate: netelem.NewFloat(counter),
		flipped:       netelem.NewBool(counter),
		flipCenter:    netelem.NewFloat(counter),
		zoom:          netelem.NewFloat(counter),
	}

	rate := cfg.AnimationRate
	if rate <= 0 {
		rate = 1
	}
	c.animationRate.Set(rate)
	c.zoom.Set(1)
	group.Add(c.animationRate)
	group.Add(c.flipped)
	group.Add(c.flipCenter)
	group.Add(c.zoom)

	rng := deterministicRNG(cfg.Seed, cfg.EntityID)

	for name, smCfg := range cfg.StateMachines {
		c.stateMachines[name] = newStateMachine(counter, smCfg, group)
	}
	for _, name := range cfg.TransformationGroups {
		c.transforms[name] = newTransformationGroup(counter, group)
	}
	for name, rgCfg := range cfg.RotationGroups {
		c.rotations[name] = newRotationGroup(counter, rgCfg.AngularVelocity, group)
	}
	for name, peCfg := range cfg.ParticleEmitters {
		c.emitters[name] = newParticleEmitter(counter, peCfg, rng, group)
	}
	for _, name := range cfg.Lights {
		c.lights[name] = newLight(counter, group)
	}
	for name, sCfg := range cfg.Sounds {
		c.sounds[name] = newSoundPool(counter, sCfg.Pool, rng, group)
	}
	c.tags = newTagOverlay(counter, group, cfg.Parts)

	return c
}

// Group returns the net-element this controller replicates through.
func (c *Controller) Group() *netelem.Group { return c.group }

// --- state machines ---

func (c *Controller) SetState(machine, state string, startNew, reverse bool) bool {
	sm, ok := c.stateMachines[machine]
	if !ok {
		return false
	}
	return sm.setState(state, startNew, reverse)
}

func (c *Controller) State(machine string) string {
	sm, ok := c.stateMachines[machine]
	if !ok {
		return ""
	}
	return sm.current.Get()
}

func (c *Controller) StateFrame(machine string) int {
	sm, ok := c.stateMachines[machine]
	if !ok {
		return 0
	}
	return int(sm.frame.Get())
}

func (c *Controller) StateNextFrame(machine string) int {
	sm, ok := c.stateMachines[machine]
	if !ok {
		return 0
	}
	return sm.nextFrame()
}

func (c *Controller) StateFrameProgress(machine string) float64 {
	sm, ok := c.stateMachines[machine]
	if !ok {
		return 0
	}
	return sm.frameProgress()
}

func (c *Controller) StateReverse(machine string) bool {
	sm, ok := c.stateMachines[machine]
	if !ok {
		return false
	}
	return sm.reverse.Get()
}

// --- transformation groups ---

func (c *Controller) TranslateTransformationGroup(name string, dx, dy float64) {
	if tg, ok := c.transforms[name]; ok {
		tg.translate(dx, dy)
	}
}

func (c *Controller) RotateTransformationGroup(name string, angle, cx, cy float64) {
	if tg, ok := c.transforms[name]; ok {
		tg.rotate(angle, cx, cy)
	}
}

func (c *Controller) ScaleTransformationGroup(name string, sx, sy, cx, cy float64) {
	if tg, ok := c.transforms[name]; ok {
		tg.scale(sx, sy, cx, cy)
	}
}

func (c *Controller) ResetTransformationGroup(name string) {
	if tg, ok := c.transforms[name]; ok {
		tg.reset()
	}
}

func (c *Controller) SetTransformationGroup(name string, m Affine2) {
	if tg, ok := c.transforms[name]; ok {
		tg.set(m)
	}
}

func (c *Controller) GetTransformationGroup(name string) Affine2 {
	if tg, ok := c.transforms[name]; ok {
		return tg.get()
	}
	return Identity()
}

// GroupTransformation composes the named groups left to right, per config
// order, into the final transform applied to a part listing them.
func (c *Controller) GroupTransformation(names []string) Affine2 {
	result := Identity()
	for _, name := range names {
		if tg, ok := c.transforms[name]; ok {
			result = Compose(tg.get(), result)
		}
	}
	return result
}

// --- rotation groups ---

func (c *Controller) RotateGroup(name string, targetAngle float64, immediate bool) {
	if rg, ok := c.rotations[name]; ok {
		rg.rotate(targetAngle, immediate)
	}
}

func (c *Controller) CurrentRotationAngle(name string) float64 {
	if rg, ok := c.rotations[name]; ok {
		return rg.current.Get()
	}
	return 0
}

// --- particle emitters ---

func (c *Controller) SetParticleEmitterActive(name string, active bool) {
	if pe, ok := c.emitters[name]; ok {
		pe.setActive(active)
	}
}

func (c *Controller) SetParticleEmitterEmissionRate(name string, rate float64) {
	if pe, ok := c.emitters[name]; ok {
		pe.setEmissionRate(rate)
	}
}

func (c *Controller) SetParticleEmitterBurstCount(name string, count int64) {
	if pe, ok := c.emitters[name]; ok {
		pe.setBurstCount(count)
	}
}

func (c *Controller) SetParticleEmitterOffsetRegion(name string, x, y, w, h float64) {
	if pe, ok := c.emitters[name]; ok {
		pe.setOffsetRegion(x, y, w, h)
	}
}

func (c *Controller) BurstParticleEmitter(name string) {
	if pe, ok := c.emitters[name]; ok {
		pe.burst()
	}
}

// --- lights ---

func (c *Controller) SetLightActive(name string, active bool) {
	if l, ok := c.lights[name]; ok {
		l.setActive(active)
	}
}

func (c *Controller) SetLightPosition(name string, x, y float64) {
	if l, ok := c.lights[name]; ok {
		l.setPosition(x, y)
	}
}

func (c *Controller) SetLightColor(name, color string) {
	if l, ok := c.lights[name]; ok {
		l.setColor(color)
	}
}

func (c *Controller) SetLightPointAngle(name string, angle float64) {
	if l, ok := c.lights[name]; ok {
		l.setPointAngle(angle)
	}
}

// --- sounds ---

func (c *Controller) SetSoundPool(name string, pool []string) {
	if sp, ok := c.sounds[name]; ok {
		sp.setPool(pool)
	}
}

func (c *Controller) PlaySound(name string, loops int64) {
	if sp, ok := c.sounds[name]; ok {
		sp.play(loops)
	}
}

func (c *Controller) SetSoundPosition(name string, x, y float64) {
	if sp, ok := c.sounds[name]; ok {
		sp.setPosition(x, y)
	}
}

func (c *Controller) SetSoundVolume(name string, volume, rampTime float64) {
	if sp, ok := c.sounds[name]; ok {
		sp.setVolume(volume, rampTime)
	}
}

func (c *Controller) SetSoundPitchMultiplier(name string, pitch, rampTime float64) {
	if sp, ok := c.sounds[name]; ok {
		sp.setPitchMultiplier(pitch, rampTime)
	}
}

func (c *Controller) StopAllSounds(name string, rampTime float64) {
	if sp, ok := c.sounds[name]; ok {
		sp.stopAll(rampTime)
	}
}

// --- tags ---

func (c *Controller) SetGlobalTag(name, value string) { c.tags.setGlobalTag(name, value, true) }
func (c *Controller) RemoveGlobalTag(name string)      { c.tags.setGlobalTag(name, "", false) }
func (c *Controller) SetPartTag(part, name, value string) {
	c.tags.setPartTag(part, name, value, true)
}
func (c *Controller) ApplyPartTags(part, path string, machine string) string {
	return c.tags.applyPartTags(part, path, c.StateFrame(machine))
}

// --- misc ---

func (c *Controller) SetFlipped(flipped bool, relativeCenterLine float64) {
	c.flipped.Set(flipped)
	c.flipCenter.Set(relativeCenterLine)
}

func (c *Controller) Flipped() bool                   { return c.flipped.Get() }
func (c *Controller) FlippedRelativeCenterLine() float64 { return c.flipCenter.Get() }
func (c *Controller) SetZoom(zoom float64)             { c.zoom.Set(zoom) }
func (c *Controller) SetAnimationRate(rate float64)    { c.animationRate.Set(rate) }
func (c *Controller) AnimationRate() float64           { return c.animationRate.Get() }

// TickMaster advances every state machine's frame clock, rotation group
// chase, particle emission accumulator and sound ramp by dt, draining
// whatever particle/sound cues this tick produced into target.
func (c *Controller) TickMaster(dt float64, target *DynamicTarget) {
	rate := c.animationRate.Get()
	for _, sm := range c.stateMachines {
		sm.tick(dt, rate)
	}
	for _, rg := range c.rotations {
		rg.tick(dt)
	}
	for name, pe := range c.emitters {
		for _, variants := range pe.tick(dt) {
			offX, offY := pe.offsetX.Get(), pe.offsetY.Get()
			for _, variant := range variants {
				target.addParticle(ParticleCue{Emitter: name, Variant: variant.Name, OffsetX: offX, OffsetY: offY})
			}
		}
	}
	for name, sp := range c.sounds {
		sp.tick(dt)
		played, stopped := sp.drainCues()
		if played {
			target.addSound(SoundCue{Name: name, Sound: sp.selected.Get(), Loops: sp.loops.Get(), X: sp.x.Get(), Y: sp.y.Get(), Volume: sp.volume.Get()})
		}
		if stopped {
			target.addSound(SoundCue{Name: name, Stop: true})
		}
	}
}

// TickSlave advances client-side interpolation for every leaf that
// supports it (currently the Float leaves underlying transforms,
// rotations and ramps); state machine frame advance, particle emission
// and sound selection are master-only and arrive as explicit deltas.
func (c *Controller) TickSlave(dt float64) {
	c.group.Tick(time.Duration(dt * float64(time.Second)))
}

// deterministicRNG seeds a per-animator random source from (seed, entityID)
// so emission variance and random particle/sound selection replay
// identically given the same world seed, mirroring internal/world's
// DeterministicSeedValue/NewDeterministicRNG pair (random.go).
func deterministicRNG(seed, entityID string) *rand.Rand {
	hasher := fnv.New64a()
	hasher.Write([]byte(seed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(entityID))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return rand.New(rand.NewSource(int64(sum)))
}
