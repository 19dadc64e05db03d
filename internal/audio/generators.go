package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note frequencies used by the generators
const (
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
)

// MelodyGenerator loops a short bouncy melody over a soft bass. It never ends.
type MelodyGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
	notes   []float64
}

// NewMelodyGenerator creates the background melody.
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	return &MelodyGenerator{
		sr:      sr,
		noteLen: sr.N(time.Millisecond * 220),
		notes:   []float64{noteC5, noteE5, noteG5, noteE5, noteD5, noteG5, noteA5, noteG5},
	}
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.noteLen) % len(g.notes)
		inNote := g.pos % g.noteLen
		t := float64(g.pos) / float64(g.sr)

		// Pluck envelope per note
		env := math.Exp(-float64(inNote) / float64(g.noteLen) * 4)
		lead := 0.18 * env * math.Sin(2*math.Pi*g.notes[idx]*t)
		bass := 0.08 * math.Sin(2*math.Pi*g.notes[idx]/4*t)

		sample := lead + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// ImpactGenerator is a short thud: decaying low sine with a noise transient.
type ImpactGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewImpactGenerator creates an impact sound generator.
func NewImpactGenerator(sr beep.SampleRate) *ImpactGenerator {
	return &ImpactGenerator{sr: sr, seed: 0x9e3779b9}
}

func (g *ImpactGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// xorshift noise, deterministic so the effect sounds the same every hit
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		thud := math.Sin(2 * math.Pi * (90 - 40*t) * t)
		sample := math.Exp(-t*14) * (0.5*thud + 0.3*noise*math.Exp(-t*40))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ImpactGenerator) Err() error {
	return nil
}

// JingleGenerator plays a falling arpeggio, the game over cue.
type JingleGenerator struct {
	sr      beep.SampleRate
	pos     int
	noteLen int
	notes   []float64
}

// NewJingleGenerator creates the game over jingle generator.
func NewJingleGenerator(sr beep.SampleRate) *JingleGenerator {
	return &JingleGenerator{
		sr:      sr,
		noteLen: sr.N(time.Millisecond * 180),
		notes:   []float64{noteC6, noteG5, noteE5, noteC5},
	}
}

func (g *JingleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.noteLen
		if idx >= len(g.notes) {
			idx = len(g.notes) - 1 // Hold the last note
		}
		t := float64(g.pos) / float64(g.sr)
		inNote := float64(g.pos%g.noteLen) / float64(g.noteLen)

		// Square-ish tone from odd harmonics
		f := g.notes[idx]
		tone := math.Sin(2*math.Pi*f*t) + math.Sin(2*math.Pi*3*f*t)/3
		sample := 0.2 * tone * (1 - 0.6*inNote)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *JingleGenerator) Err() error {
	return nil
}

// newTrack returns the endless streamer for a track. TrackWhimsical is the only one.
func newTrack(_ Track, sr beep.SampleRate) beep.Streamer {
	return NewMelodyGenerator(sr)
}

// effectDuration bounds the one-shot effects.
func effectDuration(e Effect) time.Duration {
	switch e {
	case EffectJingle:
		return time.Millisecond * 900
	default:
		return time.Millisecond * 250
	}
}

// newEffect returns a bounded streamer for the effect.
func newEffect(e Effect, sr beep.SampleRate) beep.Streamer {
	var gen beep.Streamer
	switch e {
	case EffectJingle:
		gen = NewJingleGenerator(sr)
	default:
		gen = NewImpactGenerator(sr)
	}
	return beep.Take(sr.N(effectDuration(e)), gen)
}
