package race

import "github.com/vovakirdan/road-race/internal/config"

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseLost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Motion is the player's vertical motion state.
type Motion struct {
	Jumping     bool
	JumpElapsed float64 // Seconds since the current jump began
	JumpOriginY float64 // Player y when the jump began
}

// Session is the mutable record of one run. It is owned by whoever drives
// the tick and has no behaviour beyond reporting its phase.
type Session struct {
	Health         int
	Score          int
	Started        bool
	Lost           bool
	ActivationTime float64 // Engine time at which Started became true

	Motion Motion
	Ticks  int // Ticks processed while running
	Hits   int // Damaging collision events seen
}

// NewSession creates a session with full health.
func NewSession(cfg config.RaceConfig) *Session {
	return &Session{Health: cfg.Player.Health}
}

// Phase derives the lifecycle phase from the flags.
func (s *Session) Phase() Phase {
	switch {
	case s.Lost:
		return PhaseLost
	case s.Started:
		return PhaseRunning
	default:
		return PhaseNotStarted
	}
}
