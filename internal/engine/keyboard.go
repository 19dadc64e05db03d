package engine

import "github.com/vovakirdan/road-race/internal/race"

// DefaultHold is how long a press stays held. Terminals report key presses
// but no releases, so a press is treated as a short hold.
const DefaultHold = 0.15

// Keyboard turns discrete key presses into held state. A press stays held
// for the hold window and at least until one frame has read it.
type Keyboard struct {
	hold    float64
	until   map[race.Key]float64
	latched map[race.Key]bool
}

// NewKeyboard creates a keyboard whose presses last hold seconds.
func NewKeyboard(hold float64) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{
		hold:    hold,
		until:   make(map[race.Key]float64),
		latched: make(map[race.Key]bool),
	}
}

// Press marks k as held from now for the hold window. Repeated presses extend it.
func (k *Keyboard) Press(key race.Key, now float64) {
	k.until[key] = now + k.hold
	k.latched[key] = true
}

// Settle ends the latch of every press. The engine calls it after each frame's logic.
func (k *Keyboard) Settle() {
	clear(k.latched)
}

// Pressed reports whether key is held at time now.
func (k *Keyboard) Pressed(key race.Key, now float64) bool {
	if k.latched[key] {
		return true
	}
	until, ok := k.until[key]
	return ok && now < until
}
