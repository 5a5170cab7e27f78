package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	pulseKickLength = 90 * time.Millisecond
	pulseKickAmp    = 0.35
	pulseKickBaseHz = 50.0
	pulseBassAmp    = 0.12
)

// pulseBassHz walks a minor arpeggio, one note per beat
var pulseBassHz = []float64{110.0, 130.81, 164.81, 130.81}

// pulse is an endless kick-and-bass loop for background music
type pulse struct {
	rate     beep.SampleRate
	beat     int
	kick     int
	position int
	phase    float64
}

func newPulse(rate beep.SampleRate, beat time.Duration) *pulse {
	return &pulse{rate: rate, beat: rate.N(beat), kick: rate.N(pulseKickLength)}
}

func (p *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := p.position % p.beat
		note := pulseBassHz[(p.position/p.beat)%len(pulseBassHz)]
		t := float64(beatPos) / float64(p.rate)

		val := pulseBassAmp * math.Sin(2*math.Pi*p.phase)
		if beatPos < p.kick {
			env := 1 - float64(beatPos)/float64(p.kick)
			val += pulseKickAmp * env * math.Sin(2*math.Pi*pulseKickBaseHz*(1+2*env)*t)
		}

		samples[i][0] = val
		samples[i][1] = val

		p.phase += note / float64(p.rate)
		p.phase -= math.Floor(p.phase)
		p.position++
	}
	return len(samples), true
}

func (p *pulse) Err() error { return nil }
