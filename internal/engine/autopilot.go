package engine

import "github.com/vovakirdan/road-race/internal/race"

// DefaultLead is how far ahead of the player, in world units, the autopilot
// starts a jump. It centers the default jump arc on the obstacle.
const DefaultLead = 300

// Autopilot plays the race headlessly: it starts the run and jumps when the
// obstacle gets close.
type Autopilot struct {
	Lead float64 // Distance ahead of the player that triggers a jump

	activated bool
	jumps     int
}

// NewAutopilot creates an autopilot with the given lead, or DefaultLead if lead <= 0.
func NewAutopilot(lead float64) *Autopilot {
	if lead <= 0 {
		lead = DefaultLead
	}
	return &Autopilot{Lead: lead}
}

// Step presses keys on e for the coming frame. It must run before Frame.
func (a *Autopilot) Step(e *Engine, s *race.Session) {
	if !a.activated {
		e.Press(race.KeyActivate)
		a.activated = true
	}
	if s.Motion.Jumping || e.Pressed(race.KeyJump) {
		return
	}

	player, ok := e.Sprite(race.PlayerLabel)
	if !ok {
		return
	}
	obs, ok := e.Sprite(race.ObstacleLabel)
	if !ok {
		return
	}
	if dx := obs.X - player.X; dx > 0 && dx <= a.Lead {
		e.Press(race.KeyJump)
		a.jumps++
	}
}

// Jumps returns how many jumps the autopilot has triggered.
func (a *Autopilot) Jumps() int {
	return a.jumps
}
