package animator

// ParticleCue is one particle-variant spawn produced by an update call,
// still in the animator's local space; DynamicTarget translates/flips it
// into world space before the renderer pulls it.
type ParticleCue struct {
	Emitter string
	Variant string
	OffsetX float64
	OffsetY float64
}

// SoundCue is one play/stop instruction produced by an update call.
type SoundCue struct {
	Name   string
	Sound  string
	Loops  int64
	Stop   bool
	X, Y   float64
	Volume float64
}

// DynamicTarget is the pull list an update call appends to instead of
// calling a renderer directly, built on the same intent-queue/drain-to-emit
// idiom as the effects package's spawn/update/end event batches, adapted
// here from effect-contract intents to particle and sound cues translated
// into world space using the owning entity's position and facing.
type DynamicTarget struct {
	OriginX, OriginY float64
	Flipped          bool

	particles []ParticleCue
	sounds    []SoundCue
}

func (dt *DynamicTarget) addParticle(cue ParticleCue) {
	if dt == nil {
		return
	}
	cue.OffsetX, cue.OffsetY = dt.toWorld(cue.OffsetX, cue.OffsetY)
	dt.particles = append(dt.particles, cue)
}

func (dt *DynamicTarget) addSound(cue SoundCue) {
	if dt == nil {
		return
	}
	cue.X, cue.Y = dt.toWorld(cue.X, cue.Y)
	dt.sounds = append(dt.sounds, cue)
}

func (dt *DynamicTarget) toWorld(x, y float64) (float64, float64) {
	if dt.Flipped {
		x = -x
	}
	return dt.OriginX + x, dt.OriginY + y
}

// PullParticles drains and returns every particle cue appended since the
// last pull.
func (dt *DynamicTarget) PullParticles() []ParticleCue {
	if dt == nil || len(dt.particles) == 0 {
		return nil
	}
	out := dt.particles
	dt.particles = nil
	return out
}

// PullSounds drains and returns every sound cue appended since the last
// pull.
func (dt *DynamicTarget) PullSounds() []SoundCue {
	if dt == nil || len(dt.sounds) == 0 {
		return nil
	}
	out := dt.sounds
	dt.sounds = nil
	return out
}
