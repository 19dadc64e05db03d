package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays music and effects through a single beep mixer.
// Calls before Initialize or after Cleanup are no-ops.
type SoundManager struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	speaker     bool // Mixer is attached to the process speaker
	played      uint64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		sr:    sampleRate,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts streaming the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.sr, sm.sr.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.speaker = true
	sm.initialized = true
	return nil
}

// attach enables playback without a speaker; the mixer is drained by the caller.
func (sm *SoundManager) attach() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.initialized = true
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.withStream(func() {
		if sm.music != nil {
			sm.music.Paused = true
		}
		sm.mixer.Clear()
	})
	sm.music = nil

	if sm.speaker {
		speaker.Close()
		sm.speaker = false
	}
	sm.initialized = false
}

// PlayMusic starts the looping track, replacing any current one.
func (sm *SoundManager) PlayMusic(t Track, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(newTrack(t, sm.sr), volume), Paused: false}
	sm.withStream(func() {
		if sm.music != nil {
			sm.music.Paused = true
			sm.music.Streamer = nil // Mixer drops finished streamers
		}
		sm.mixer.Add(ctrl)
	})
	sm.music = ctrl
	sm.played++
}

// StopMusic stops the background track.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	sm.withStream(func() {
		sm.music.Paused = true
		sm.music.Streamer = nil
	})
	sm.music = nil
}

// PlaySFX mixes a one-shot effect on top of whatever is playing.
func (sm *SoundManager) PlaySFX(e Effect, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := withVolume(newEffect(e, sm.sr), volume)
	sm.withStream(func() {
		sm.mixer.Add(s)
	})
	sm.played++
}

// Played returns how many sounds have been started.
func (sm *SoundManager) Played() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// withStream runs fn while the speaker is not pulling samples.
func (sm *SoundManager) withStream(fn func()) {
	if sm.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// withVolume scales a streamer by a linear gain in [0, 1].
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return s
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
