package engine

// Cue is a fire-and-forget audio cue emitted by the round
type Cue uint8

const (
	CueNone Cue = iota
	CueAdvance
	CueCollision
)

// String returns the cue name
func (c Cue) String() string {
	switch c {
	case CueAdvance:
		return "advance"
	case CueCollision:
		return "collision"
	default:
		return "none"
	}
}

// CueSink receives cues; implementations must not block the simulation
type CueSink interface {
	PlayCue(Cue)
}

// CueFunc adapts a function to CueSink
type CueFunc func(Cue)

// PlayCue calls f(c)
func (f CueFunc) PlayCue(c Cue) {
	f(c)
}

type discardCues struct{}

func (discardCues) PlayCue(Cue) {}
