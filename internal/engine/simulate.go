package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-race/internal/audio"
	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/race"
)

// SimOptions controls a headless run.
type SimOptions struct {
	Seed        int64
	FPS         int           // Fixed frame rate, default 60
	MaxDuration time.Duration // Simulated time limit, default 2 minutes
	Autopilot   bool          // Jump over obstacles; otherwise only activate
	Lead        float64       // Autopilot lead, default DefaultLead
	Audio       audio.Player
	Logger      *log.Logger
}

// Result summarizes a finished simulation.
type Result struct {
	Score    int
	Health   int
	Ticks    int // Ticks processed while running
	Frames   int
	Hits     int
	Jumps    int
	Duration time.Duration // Simulated time
	Lost     bool
}

// Simulate runs the race at a fixed step until the session is lost, the time
// limit is reached or ctx is cancelled. On cancellation it returns the partial
// result together with ctx.Err().
func Simulate(ctx context.Context, cfg config.RaceConfig, opts SimOptions) (Result, error) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = 2 * time.Minute
	}

	e := New(WithAudio(opts.Audio), WithLogger(opts.Logger))
	SetupRace(e, cfg)

	ctrl := race.NewController(cfg, race.WithSeed(opts.Seed), race.WithLogger(opts.Logger))
	s := race.NewSession(cfg)

	var pilot *Autopilot
	if opts.Autopilot {
		pilot = NewAutopilot(opts.Lead)
	}

	dt := 1.0 / float64(opts.FPS)
	limit := opts.MaxDuration.Seconds()
	logic := func(h race.Host) error { return ctrl.Tick(s, h) }

	var res Result
	for frame := 0; ; frame++ {
		now := float64(frame) * dt
		res = summarize(s, pilot, frame, float64(max(frame-1, 0))*dt)

		if err := ctx.Err(); err != nil {
			return res, err
		}
		if s.Lost || now > limit {
			return res, nil
		}

		if pilot != nil {
			pilot.Step(e, s)
		} else if frame == 0 {
			e.Press(race.KeyActivate)
		}

		if err := e.Frame(now, logic); err != nil {
			return res, err
		}
	}
}

// summarize reports the state after frames frames, the last one at time last.
func summarize(s *race.Session, pilot *Autopilot, frames int, last float64) Result {
	r := Result{
		Score:    s.Score,
		Health:   s.Health,
		Ticks:    s.Ticks,
		Frames:   frames,
		Hits:     s.Hits,
		Duration: time.Duration(last * float64(time.Second)),
		Lost:     s.Lost,
	}
	if pilot != nil {
		r.Jumps = pilot.Jumps()
	}
	return r
}
