package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/engine"
)

const (
	advanceFreqStartHz = 220.0
	advanceFreqEndHz   = 880.0
	advanceAttack      = 10 * time.Millisecond
	advanceRelease     = 80 * time.Millisecond

	crashRumbleHz       = 55.0
	crashNoiseAmplitude = 0.5
	crashRumbleAmp      = 0.4
	crashDecayRate      = 7.0
)

// sweep is a sine oscillator whose frequency moves linearly over its duration
type sweep struct {
	from, to float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, duration: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		val := math.Sin(2 * math.Pi * s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// crash is decaying noise over a low rumble
type crash struct {
	rate     beep.SampleRate
	position int
	seed     uint32
}

func newCrash(rate beep.SampleRate, seed uint32) *crash {
	if seed == 0 {
		seed = 1
	}
	return &crash{rate: rate, seed: seed}
}

func (c *crash) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(c.position) / float64(c.rate)
		env := math.Exp(-t * crashDecayRate)

		// xorshift32
		c.seed ^= c.seed << 13
		c.seed ^= c.seed >> 17
		c.seed ^= c.seed << 5
		noise := float64(c.seed)/float64(math.MaxUint32)*2 - 1

		val := env * (crashNoiseAmplitude*noise + crashRumbleAmp*math.Sin(2*math.Pi*crashRumbleHz*t))
		samples[i][0] = val
		samples[i][1] = val
		c.position++
	}
	return len(samples), true
}

func (c *crash) Err() error { return nil }

// volumeLevel maps a linear 0..1 setting onto effects.Volume parameters
// Log2(0) is -Inf, so zero maps to silent
func volumeLevel(v float64) (level float64, silent bool) {
	if v <= 0 {
		return 0, true
	}
	return math.Log2(math.Min(v, 1)), false
}

func newVolume(s beep.Streamer, v float64) *effects.Volume {
	level, silent := volumeLevel(v)
	return &effects.Volume{Streamer: s, Base: 2, Volume: level, Silent: silent}
}

// CueSound builds the finite streamer for a cue at the given linear volume
// Returns nil for CueNone
func CueSound(cue engine.Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	switch cue {
	case engine.CueAdvance:
		osc := newSweep(advanceFreqStartHz, advanceFreqEndHz, constants.AdvanceCueDuration, rate)
		shaped := newEnvelope(osc, constants.AdvanceCueDuration, advanceAttack, advanceRelease, rate)
		return newVolume(shaped, vol)
	case engine.CueCollision:
		noise := beep.Take(rate.N(constants.CollisionCueDuration), newCrash(rate, uint32(time.Now().UnixNano())))
		return newVolume(noise, vol)
	default:
		return nil
	}
}
