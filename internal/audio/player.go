// Package audio synthesizes the race's music and sound effects with beep.
// Nothing is loaded from disk; every sound is generated on the fly.
package audio

// Track identifies a looping background track.
type Track int

const (
	TrackWhimsical Track = iota
)

// Effect identifies a one-shot sound effect.
type Effect int

const (
	EffectImpact Effect = iota
	EffectJingle
)

// Player accepts fire-and-forget playback commands.
// Implementations never block the caller and never report playback failures.
type Player interface {
	PlayMusic(t Track, volume float64)
	StopMusic()
	PlaySFX(e Effect, volume float64)
}

// Silent discards every command. Used for SSH sessions and --mute.
type Silent struct{}

func (Silent) PlayMusic(Track, float64) {}
func (Silent) StopMusic() {}
func (Silent) PlaySFX(Effect, float64) {}

var (
	_ Player = Silent{}
	_ Player = (*SoundManager)(nil)
)
