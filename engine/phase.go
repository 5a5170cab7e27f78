package engine

// Phase is the round controller state
type Phase uint8

const (
	// PhaseSlidingIn: the current portal is still sliding, advance is ignored
	PhaseSlidingIn Phase = iota
	// PhaseIdle: the only phase accepting advance input
	PhaseIdle
	// PhaseAdvancing: the player is traveling to the current portal
	PhaseAdvancing
	// PhaseGameOver: terminal, the round no longer ticks
	PhaseGameOver
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseSlidingIn:
		return "sliding"
	case PhaseIdle:
		return "idle"
	case PhaseAdvancing:
		return "advancing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
