package race

import (
	"testing"

	"github.com/vovakirdan/road-race/internal/config"
)

func TestCollisionFiltering(t *testing.T) {
	tests := []struct {
		name   string
		event  CollisionEvent
		damage bool
	}{
		{"player begin", hit(ObstacleLabel), true},
		{"player reversed pair", CollisionEvent{Pair: [2]string{ObstacleLabel, PlayerLabel}}, true},
		{"player end", CollisionEvent{Pair: [2]string{PlayerLabel, ObstacleLabel}, State: CollisionEnd}, false},
		{"without player", CollisionEvent{Pair: [2]string{ObstacleLabel, RoadlineLabel(2)}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, s, h := startedRun(t, config.DefaultRaceConfig())
			h.events = []CollisionEvent{tc.event}

			h.advance(frame)
			if err := c.Tick(s, h); err != nil {
				t.Fatal(err)
			}

			want := 3
			if tc.damage {
				want = 2
			}
			if s.Health != want {
				t.Errorf("health = %d, expected %d", s.Health, want)
			}
			if tc.damage && h.texts[HealthTextLabel].Value != "Health: 2" {
				t.Errorf("health text = %q", h.texts[HealthTextLabel].Value)
			}
			if got := h.countSfx(SfxImpact); tc.damage != (got == 1) {
				t.Errorf("impact sounds = %d", got)
			}
		})
	}
}

func TestCollisionQueueDrainedOnce(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())
	h.events = []CollisionEvent{hit(ObstacleLabel)}

	for i := 0; i < 3; i++ {
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
	}
	if s.Health != 2 {
		t.Errorf("health = %d, expected one event applied once", s.Health)
	}
	if len(h.events) != 0 {
		t.Errorf("queue should be empty, len = %d", len(h.events))
	}
}

func TestLastHealthLosesInSameTick(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())
	s.Health = 1
	h.events = []CollisionEvent{hit(ObstacleLabel)}

	h.advance(frame)
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}

	if s.Health != 0 {
		t.Errorf("health = %d, expected 0", s.Health)
	}
	if h.texts[HealthTextLabel].Value != "Health: 0" {
		t.Errorf("health text = %q", h.texts[HealthTextLabel].Value)
	}
	if !s.Lost || s.Phase() != PhaseLost {
		t.Fatal("session should be lost within the same tick")
	}
	over, ok := h.Text(GameOverLabel)
	if !ok || over.Value != "Game Over" || over.FontSize != 128 {
		t.Errorf("game over text = %+v, %v", over, ok)
	}
	if _, ok := h.Sprite(CrashLabel); !ok {
		t.Error("crash sprite should be added on loss")
	}

	// Terminal effects fire exactly once, even across later ticks.
	for i := 0; i < 10; i++ {
		h.events = []CollisionEvent{hit(ObstacleLabel)}
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
	}
	if h.musicStopped != 1 {
		t.Errorf("StopMusic called %d times, expected 1", h.musicStopped)
	}
	if got := h.countSfx(SfxJingle); got != 1 {
		t.Errorf("jingle played %d times, expected 1", got)
	}
}

func TestTwoHitsInOneTick(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())
	s.Health = 2
	h.events = []CollisionEvent{hit(ObstacleLabel), hit("other_obstacle")}

	h.advance(frame)
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}
	if s.Health != 0 {
		t.Errorf("health = %d, expected both hits applied", s.Health)
	}
	if !s.Lost {
		t.Error("expected loss")
	}
}

func TestHealthNeverBelowZero(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())
	s.Health = 2
	h.events = []CollisionEvent{hit(ObstacleLabel), hit(ObstacleLabel), hit(ObstacleLabel), hit(ObstacleLabel)}

	h.advance(frame)
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}
	if s.Health != 0 {
		t.Errorf("health = %d, expected 0", s.Health)
	}
	if got := h.countSfx(SfxImpact); got != 2 {
		t.Errorf("impact sounds = %d, expected 2", got)
	}
}

func TestLostFreezesState(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())
	s.Health = 1
	h.events = []CollisionEvent{hit(ObstacleLabel)}
	h.advance(frame)
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}

	frozen := *s
	positions := make(map[string][2]float64)
	for _, sp := range h.sprites {
		positions[sp.Label] = [2]float64{sp.X, sp.Y}
	}
	scoreText := h.texts[ScoreTextLabel].Value

	h.pressed[KeyJump] = true
	for i := 0; i < 120; i++ {
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
	}

	if *s != frozen {
		t.Errorf("session mutated after loss:\n%+v\n%+v", frozen, *s)
	}
	for _, sp := range h.sprites {
		if positions[sp.Label] != [2]float64{sp.X, sp.Y} {
			t.Errorf("sprite %s moved after loss", sp.Label)
		}
	}
	if h.texts[ScoreTextLabel].Value != scoreText {
		t.Error("score text changed after loss")
	}
}

func TestHealthMonotonicOverRandomRun(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())

	last := s.Health
	for i := 0; i < 400; i++ {
		if i%37 == 0 {
			h.events = append(h.events, hit(ObstacleLabel), CollisionEvent{Pair: [2]string{PlayerLabel, ObstacleLabel}, State: CollisionEnd})
		}
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
		if s.Health > last || s.Health < 0 || s.Health > 3 {
			t.Fatalf("health went from %d to %d", last, s.Health)
		}
		last = s.Health
	}
	if !s.Lost {
		t.Error("expected the run to be lost after repeated hits")
	}
}
