package race

import (
	"testing"

	"github.com/vovakirdan/road-race/internal/config"
)

func TestRoadlineWrapIgnoresElapsedTime(t *testing.T) {
	for _, dt := range []float64{0, frame, 0.25, 2} {
		c, s, h := startedRun(t, config.DefaultRaceConfig())
		rl := h.mustSprite(RoadlineLabel(0))
		rl.X = -680

		h.advance(dt)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
		if rl.X != 820 {
			t.Errorf("dt=%v: roadline x = %v, expected 820", dt, rl.X)
		}
	}
}

func TestRoadlineScrollsLeft(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	c, s, h := startedRun(t, cfg)
	rl := h.mustSprite(RoadlineLabel(3))
	rl.X = 100

	h.advance(0.5)
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}
	if want := 100 - cfg.Physics.RoadSpeed*0.5; rl.X != want {
		t.Errorf("roadline x = %v, expected %v", rl.X, want)
	}
}

func TestRoadlinesKeepSpacingPattern(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	c, s, h := startedRun(t, cfg)

	for i := 0; i < 3000; i++ {
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < cfg.Road.Lines; i++ {
		x := h.mustSprite(RoadlineLabel(i)).X
		if x < cfg.Road.ExitX-cfg.Physics.RoadSpeed*frame || x > cfg.Road.ExitX+cfg.Road.WrapDistance {
			t.Errorf("roadline %d drifted out of the loop: x = %v", i, x)
		}
	}
}

func TestObstacleRespawnRange(t *testing.T) {
	cfg := config.DefaultRaceConfig()
	c, s, h := startedRun(t, cfg)
	obstacle := h.mustSprite(ObstacleLabel)

	lo, hi := 1e9, -1e9
	for i := 0; i < 500; i++ {
		obstacle.X = -810
		h.advance(frame)
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
		if obstacle.X < 400 || obstacle.X >= 800 {
			t.Fatalf("respawn x = %v outside [400, 800)", obstacle.X)
		}
		lo = min(lo, obstacle.X)
		hi = max(hi, obstacle.X)
	}
	if lo > 450 || hi < 750 {
		t.Errorf("respawn spread too narrow: [%v, %v]", lo, hi)
	}
}

func TestObstacleRespawnIsSeeded(t *testing.T) {
	run := func() float64 {
		cfg := config.DefaultRaceConfig()
		c := NewController(cfg, WithSeed(99))
		s := NewSession(cfg)
		h := newFakeHost(cfg)
		h.pressed[KeyActivate] = true
		h.mustSprite(ObstacleLabel).X = -900
		if err := c.Tick(s, h); err != nil {
			t.Fatal(err)
		}
		return h.mustSprite(ObstacleLabel).X
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed gave different respawns: %v vs %v", a, b)
	}
}

func TestDecorationsAreNotScrolled(t *testing.T) {
	c, s, h := startedRun(t, config.DefaultRaceConfig())
	deco := h.AddSprite("cloud", KindDecoration)
	deco.X = -700

	h.advance(0.5)
	if err := c.Tick(s, h); err != nil {
		t.Fatal(err)
	}
	if deco.X != -700 {
		t.Errorf("decoration moved to %v", deco.X)
	}
}
