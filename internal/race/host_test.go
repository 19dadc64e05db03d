package race

import (
	"github.com/vovakirdan/road-race/internal/config"
)

// fakeHost is an in-memory Host that records every command.
type fakeHost struct {
	now     float64
	delta   float64
	pressed map[Key]bool
	events  []CollisionEvent

	sprites []*Sprite
	texts   map[string]*Text

	musicPlayed  int
	musicStopped int
	sfx          []Sfx
}

// newFakeHost builds the standard scene: player, roadlines, obstacle, two labels.
func newFakeHost(cfg config.RaceConfig) *fakeHost {
	h := &fakeHost{
		pressed: make(map[Key]bool),
		texts:   make(map[string]*Text),
	}
	h.AddSprite(PlayerLabel, KindPlayer).X = cfg.Player.X
	for i := 0; i < cfg.Road.Lines; i++ {
		rl := h.AddSprite(RoadlineLabel(i), KindRoadline)
		rl.X = cfg.Road.StartX + cfg.Road.Spacing*float64(i)
		rl.Y = cfg.Road.Y
	}
	h.AddSprite(ObstacleLabel, KindObstacle).X = cfg.Obstacle.StartX
	h.AddText(HealthTextLabel, "Health: 3")
	h.AddText(ScoreTextLabel, "Score: 0")
	return h
}

func (h *fakeHost) Now() float64 { return h.now }
func (h *fakeHost) Delta() float64 { return h.delta }
func (h *fakeHost) Pressed(k Key) bool { return h.pressed[k] }
func (h *fakeHost) Sprites() []*Sprite { return h.sprites }
func (h *fakeHost) StopMusic() { h.musicStopped++ }
func (h *fakeHost) PlayMusic(Music, float64) { h.musicPlayed++ }
func (h *fakeHost) PlaySFX(s Sfx, _ float64) { h.sfx = append(h.sfx, s) }

func (h *fakeHost) DrainCollisions() []CollisionEvent {
	evs := h.events
	h.events = nil
	return evs
}

func (h *fakeHost) Sprite(label string) (*Sprite, bool) {
	for _, sp := range h.sprites {
		if sp.Label == label {
			return sp, true
		}
	}
	return nil, false
}

func (h *fakeHost) Text(label string) (*Text, bool) {
	t, ok := h.texts[label]
	return t, ok
}

func (h *fakeHost) AddText(label, value string) *Text {
	t := &Text{Label: label, Value: value}
	h.texts[label] = t
	return t
}

func (h *fakeHost) AddSprite(label string, kind Kind) *Sprite {
	sp := &Sprite{Label: label, Kind: kind, Scale: 1}
	h.sprites = append(h.sprites, sp)
	return sp
}

// advance moves the clock forward by dt.
func (h *fakeHost) advance(dt float64) {
	h.now += dt
	h.delta = dt
}

func (h *fakeHost) countSfx(s Sfx) int {
	n := 0
	for _, got := range h.sfx {
		if got == s {
			n++
		}
	}
	return n
}

func (h *fakeHost) mustSprite(label string) *Sprite {
	sp, ok := h.Sprite(label)
	if !ok {
		panic("missing sprite " + label)
	}
	return sp
}

func hit(label string) CollisionEvent {
	return CollisionEvent{Pair: [2]string{PlayerLabel, label}, State: CollisionBegin}
}
