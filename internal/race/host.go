package race

// Host is the capability the tick holds for one invocation. It exposes the
// engine's facts for the current frame and accepts fire-and-forget commands.
type Host interface {
	// Now returns seconds since engine startup.
	Now() float64
	// Delta returns seconds elapsed since the previous frame.
	Delta() float64
	// Pressed reports whether the key is currently held.
	Pressed(k Key) bool
	// DrainCollisions returns and clears the queued collision events.
	DrainCollisions() []CollisionEvent

	Sprite(label string) (*Sprite, bool)
	// Sprites returns every registered sprite in registration order.
	Sprites() []*Sprite
	Text(label string) (*Text, bool)
	AddText(label, value string) *Text
	AddSprite(label string, kind Kind) *Sprite

	PlayMusic(m Music, volume float64)
	StopMusic()
	PlaySFX(s Sfx, volume float64)
}
