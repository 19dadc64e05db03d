package race

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/road-race/internal/config"
)

const frame = 1.0 / 60.0

// startedRun returns a controller, session and host already past activation.
func startedRun(t *testing.T, cfg config.RaceConfig) (*Controller, *Session, *fakeHost) {
	t.Helper()
	c := NewController(cfg, WithSeed(7))
	s := NewSession(cfg)
	h := newFakeHost(cfg)

	h.pressed[KeyActivate] = true
	h.advance(frame)
	if err := c.Tick(s, h); err != nil {
		t.Fatalf("activation tick failed: %v", err)
	}
	h.pressed[KeyActivate] = false
	return c, s, h
}

func TestTickNotStartedDoesNothing(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	c := NewController(cfg, WithSeed(1))
	s := NewSession(cfg)
	h := newFakeHost(cfg)
	h.mustSprite(PlayerLabel).Y = 50
	h.events = []CollisionEvent{hit(ObstacleLabel)}
	h.pressed[KeyJump] = true

	before := *s
	obstacleX := h.mustSprite(ObstacleLabel).X

	for i := 0; i < 30; i++ {
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
	}

	if *s != before {
		t.Errorf("session changed while not started: %+v", *s)
	}
	if s.Phase() != PhaseNotStarted {
		t.Errorf("Phase() = %v, expected not started", s.Phase())
	}
	if got := h.mustSprite(PlayerLabel).Y; got != 50 {
		t.Errorf("player moved while not started: y = %v", got)
	}
	if got := h.mustSprite(ObstacleLabel).X; got != obstacleX {
		t.Errorf("obstacle moved while not started: x = %v", got)
	}
	if len(h.events) != 1 {
		t.Errorf("collision queue should not be drained before start, len = %d", len(h.events))
	}
}

func TestActivationCapturesTimeOnce(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	c := NewController(cfg, WithSeed(1))
	s := NewSession(cfg)
	h := newFakeHost(cfg)

	h.now = 4.25
	h.pressed[KeyActivate] = true
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}
	if !s.Started || s.ActivationTime != 4.25 {
		t.Fatalf("expected start at 4.25, got started=%v at %v", s.Started, s.ActivationTime)
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}

	// Pressing again later must not move the baseline.
	for i := 0; i < 120; i++ {
		h.advance(frame)
		h.pressed[KeyActivate] = i%2 == 0
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
		if !s.Started {
			t.Fatal("Started reverted to false")
		}
	}
	if s.ActivationTime != 4.25 {
		t.Errorf("ActivationTime moved to %v", s.ActivationTime)
	}
}

func TestScoreCumulative(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	c := NewController(cfg, WithSeed(1))
	s := NewSession(cfg)
	h := newFakeHost(cfg)

	// floor(now) - floor(10.5): 0, 0, 1, 1, 2
	times := []float64{10.5, 10.9, 11.2, 11.9, 12.1}
	h.pressed[KeyActivate] = true
	for _, now := range times {
		h.delta = now - h.now
		h.now = now
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
	}

	if s.Score != 4 {
		t.Errorf("Score = %d, expected 4", s.Score)
	}
	if got := h.texts[ScoreTextLabel].Value; got != "Score: 4" {
		t.Errorf("score text = %q", got)
	}
}

func TestScoreElapsedMode(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	cfg.Score.Mode = config.ScoreElapsed
	c := NewController(cfg, WithSeed(1))
	s := NewSession(cfg)
	h := newFakeHost(cfg)

	h.pressed[KeyActivate] = true
	for _, now := range []float64{10.5, 11.2, 11.9, 12.1, 12.2} {
		h.now = now
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
	}
	if s.Score != 2 {
		t.Errorf("Score = %d, expected 2", s.Score)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())

	last := s.Score
	for i := 0; i < 600; i++ {
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
		if s.Score < last {
			t.Fatalf("score decreased from %d to %d", last, s.Score)
		}
		last = s.Score
	}
	if s.Score == 0 {
		t.Error("score should grow after ten seconds of play")
	}
}

func TestMissingObjectIsFatal(t *testing.T) {
	labels := []string{PlayerLabel, ScoreTextLabel, HealthTextLabel}

	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			cfg := config.DefaultRaceConfig()
			c := NewController(cfg, WithSeed(1))
			s := NewSession(cfg)
			h := newFakeHost(cfg)
			delete(h.texts, label)
			if label == PlayerLabel {
				h.sprites = h.sprites[1:]
			}

			h.pressed[KeyActivate] = true
			err := c.Tick(s, h)
			if !errors.Is(err, ErrMissingObject) {
				t.Errorf("Tick() = %v, expected ErrMissingObject", err)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	c := NewController(config.DefaultRaceConfig(), WithLogger(nil))
	if c.rng == nil || c.logger == nil {
		t.Error("controller should have default rng and logger")
	}
	if math.IsNaN(c.respawnX()) {
		t.Error("respawnX returned NaN")
	}
}
