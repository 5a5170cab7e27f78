package engine

import (
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
)

// Rand is the random source consumed by the round
// *math/rand.Rand satisfies it
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Progression selects wave patterns: one level per wave through the
// handcrafted table, then uniformly random levels once the last pattern was used
type Progression struct {
	waves            *content.WaveTable
	rng              Rand
	level            int
	tutorialComplete bool

	endlessMin, endlessMax int
}

// NewProgression starts at level 0
func NewProgression(waves *content.WaveTable, rng Rand) *Progression {
	hi := min(constants.EndlessDifficultyMax, waves.MaxLevel())
	lo := min(constants.EndlessDifficultyMin, hi)
	return &Progression{
		waves:      waves,
		rng:        rng,
		endlessMin: lo,
		endlessMax: hi,
	}
}

// Next returns the pattern for the current level and moves to the next level
func (p *Progression) Next() content.Pattern {
	pattern := p.waves.Pattern(p.level)

	if p.level >= p.waves.MaxLevel() {
		p.tutorialComplete = true
	}
	if p.tutorialComplete {
		p.level = p.endlessMin + p.rng.Intn(p.endlessMax-p.endlessMin+1)
	} else {
		p.level++
	}
	return pattern
}

// Level returns the level the next wave will use
func (p *Progression) Level() int {
	return p.level
}

// TutorialComplete reports whether the handcrafted ramp has finished
func (p *Progression) TutorialComplete() bool {
	return p.tutorialComplete
}
