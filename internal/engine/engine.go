// Package engine is the host side of the race: it owns the object registry,
// the clock, keyboard state, collision detection and audio, and exposes them
// to the race controller through race.Host.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-race/internal/audio"
	"github.com/vovakirdan/road-race/internal/race"
)

// DefaultFontSize is used for texts created without an explicit size.
const DefaultFontSize = 32

// Logic is the per-frame callback run between the clock update and collision detection.
type Logic func(h race.Host) error

// Engine holds the world for one run. It is not safe for concurrent use;
// a single goroutine drives Frame.
type Engine struct {
	sprites   []*race.Sprite
	spriteIdx map[string]*race.Sprite
	texts     []*race.Text
	textIdx   map[string]*race.Text

	kb      *Keyboard
	now     float64
	delta   float64
	started bool // At least one frame ran

	colliders map[race.Kind]Collider
	touching  map[pairKey]struct{}
	events    []race.CollisionEvent

	audio  audio.Player
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithAudio sets the player that receives music and effect commands.
func WithAudio(p audio.Player) Option {
	return func(e *Engine) {
		if p != nil {
			e.audio = p
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHold sets how long, in seconds, a key press stays held.
func WithHold(seconds float64) Option {
	return func(e *Engine) {
		e.kb = NewKeyboard(seconds)
	}
}

// WithColliders overrides the collider size of the given kinds.
func WithColliders(c map[race.Kind]Collider) Option {
	return func(e *Engine) {
		for k, v := range c {
			e.colliders[k] = v
		}
	}
}

// New creates an empty engine. Without options it is silent and logs nothing.
func New(opts ...Option) *Engine {
	e := &Engine{
		spriteIdx: make(map[string]*race.Sprite),
		textIdx:   make(map[string]*race.Text),
		kb:        NewKeyboard(DefaultHold),
		colliders: DefaultColliders(),
		touching:  make(map[pairKey]struct{}),
		audio:     audio.Silent{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Frame advances the clock to now, runs logic and then detects collisions.
// The first frame has a zero delta. Collisions found here are delivered on the
// next frame's DrainCollisions.
func (e *Engine) Frame(now float64, logic Logic) error {
	if e.started {
		e.delta = now - e.now
		if e.delta < 0 {
			e.delta = 0
		}
	}
	e.now = now
	e.started = true

	if logic != nil {
		if err := logic(e); err != nil {
			return err
		}
	}
	e.kb.Settle()
	e.detectCollisions()
	return nil
}

// Press registers a key press at the current engine time.
func (e *Engine) Press(k race.Key) {
	e.kb.Press(k, e.now)
}

// Texts returns every registered text in registration order.
func (e *Engine) Texts() []*race.Text {
	return e.texts
}

// Now returns the time of the current frame in seconds.
func (e *Engine) Now() float64 { return e.now }

// Delta returns the seconds since the previous frame.
func (e *Engine) Delta() float64 { return e.delta }

// Pressed reports whether the key is held at the current frame time.
func (e *Engine) Pressed(k race.Key) bool {
	return e.kb.Pressed(k, e.now)
}

// DrainCollisions returns the queued events and empties the queue.
func (e *Engine) DrainCollisions() []race.CollisionEvent {
	ev := e.events
	e.events = nil
	return ev
}

func (e *Engine) Sprite(label string) (*race.Sprite, bool) {
	sp, ok := e.spriteIdx[label]
	return sp, ok
}

func (e *Engine) Sprites() []*race.Sprite {
	return e.sprites
}

func (e *Engine) Text(label string) (*race.Text, bool) {
	t, ok := e.textIdx[label]
	return t, ok
}

// AddText registers a text at the origin, or updates the value of an existing one.
func (e *Engine) AddText(label, value string) *race.Text {
	if t, ok := e.textIdx[label]; ok {
		t.Value = value
		return t
	}
	t := &race.Text{Label: label, Value: value, FontSize: DefaultFontSize}
	e.texts = append(e.texts, t)
	e.textIdx[label] = t
	return t
}

// AddSprite registers a sprite at the origin with unit scale.
// Adding an existing label returns the registered sprite unchanged.
func (e *Engine) AddSprite(label string, kind race.Kind) *race.Sprite {
	if sp, ok := e.spriteIdx[label]; ok {
		return sp
	}
	sp := &race.Sprite{Label: label, Kind: kind, Scale: 1}
	e.sprites = append(e.sprites, sp)
	e.spriteIdx[label] = sp
	return sp
}

func (e *Engine) PlayMusic(m race.Music, volume float64) {
	e.audio.PlayMusic(trackFor(m), volume)
}

func (e *Engine) StopMusic() {
	e.audio.StopMusic()
}

func (e *Engine) PlaySFX(s race.Sfx, volume float64) {
	e.audio.PlaySFX(effectFor(s), volume)
}

func trackFor(race.Music) audio.Track {
	return audio.TrackWhimsical
}

func effectFor(s race.Sfx) audio.Effect {
	if s == race.SfxJingle {
		return audio.EffectJingle
	}
	return audio.EffectImpact
}

var _ race.Host = (*Engine)(nil)
