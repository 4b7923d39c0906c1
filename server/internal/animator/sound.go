package animator

import (
	"math/rand"

	"sandboxcore/server/internal/netelem"
)

// soundPool is one named sound: a closed pool of sound asset names to
// choose from, plus the replicated playback state a dynamic target later
// turns into an actual audio cue. Volume and pitch ramps are master-side
// local state — only their current value replicates, matching the
// animator's "continuously changing values are NetElement leaves" rule.
type soundPool struct {
	pool []string
	rng  *rand.Rand

	playTrigger *netelem.Event
	stopTrigger *netelem.Event
	loops       *netelem.Int
	selected    *netelem.String
	x           *netelem.Float
	y           *netelem.Float
	volume      *netelem.Float
	pitch       *netelem.Float

	volumeFrom, volumeTo, volumeRamp, volumeElapsed float64
	pitchFrom, pitchTo, pitchRamp, pitchElapsed      float64

	// playPending/stopPending flag a cue for this tick's dynamic-target
	// drain. Event.PullOccurred is a slave-side mechanism (it only ever
	// sees occurrences arriving through ReadDelta); the master drains its
	// own cues through these instead.
	playPending bool
	stopPending bool
}

func newSoundPool(counter *netelem.VersionCounter, pool []string, rng *rand.Rand, group *netelem.Group) *soundPool {
	sp := &soundPool{
		pool:        pool,
		rng:         rng,
		playTrigger: netelem.NewEvent(counter),
		stopTrigger: netelem.NewEvent(counter),
		loops:       netelem.NewInt(counter),
		selected:    netelem.NewString(counter),
		x:           netelem.NewFloat(counter),
		y:           netelem.NewFloat(counter),
		volume:      netelem.NewFloat(counter),
		pitch:       netelem.NewFloat(counter),
	}
	sp.volume.Set(1)
	sp.pitch.Set(1)
	group.Add(sp.playTrigger)
	group.Add(sp.stopTrigger)
	group.Add(sp.loops)
	group.Add(sp.selected)
	group.Add(sp.x)
	group.Add(sp.y)
	group.Add(sp.volume)
	group.Add(sp.pitch)
	return sp
}

func (sp *soundPool) setPool(pool []string) { sp.pool = pool }

func (sp *soundPool) play(loops int64) {
	if len(sp.pool) == 0 {
		return
	}
	sp.selected.Set(sp.pool[sp.rng.Intn(len(sp.pool))])
	sp.loops.Set(loops)
	sp.playTrigger.Trigger()
	sp.playPending = true
}

func (sp *soundPool) setPosition(x, y float64) {
	sp.x.Set(x)
	sp.y.Set(y)
}

func (sp *soundPool) setVolume(volume, rampTime float64) {
	if rampTime <= 0 {
		sp.volume.Set(volume)
		sp.volumeRamp = 0
		return
	}
	sp.volumeFrom = sp.volume.Get()
	sp.volumeTo = volume
	sp.volumeRamp = rampTime
	sp.volumeElapsed = 0
}

func (sp *soundPool) setPitchMultiplier(pitch, rampTime float64) {
	if rampTime <= 0 {
		sp.pitch.Set(pitch)
		sp.pitchRamp = 0
		return
	}
	sp.pitchFrom = sp.pitch.Get()
	sp.pitchTo = pitch
	sp.pitchRamp = rampTime
	sp.pitchElapsed = 0
}

func (sp *soundPool) stopAll(rampTime float64) {
	if rampTime <= 0 {
		sp.stopTrigger.Trigger()
		sp.stopPending = true
		return
	}
	sp.setVolume(0, rampTime)
}

// drainCues reports and clears this tick's play/stop flags.
func (sp *soundPool) drainCues() (played, stopped bool) {
	played, sp.playPending = sp.playPending, false
	stopped, sp.stopPending = sp.stopPending, false
	return played, stopped
}

func (sp *soundPool) tick(dt float64) {
	if sp.volumeRamp > 0 {
		sp.volumeElapsed += dt
		t := sp.volumeElapsed / sp.volumeRamp
		if t >= 1 {
			sp.volume.Set(sp.volumeTo)
			sp.volumeRamp = 0
			if sp.volumeTo == 0 {
				sp.stopTrigger.Trigger()
				sp.stopPending = true
			}
		} else {
			sp.volume.Set(sp.volumeFrom + (sp.volumeTo-sp.volumeFrom)*t)
		}
	}
	if sp.pitchRamp > 0 {
		sp.pitchElapsed += dt
		t := sp.pitchElapsed / sp.pitchRamp
		if t >= 1 {
			sp.pitch.Set(sp.pitchTo)
			sp.pitchRamp = 0
		} else {
			sp.pitch.Set(sp.pitchFrom + (sp.pitchTo-sp.pitchFrom)*t)
		}
	}
}
