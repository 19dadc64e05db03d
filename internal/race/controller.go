package race

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-race/internal/config"
)

// Controller advances a Session by one frame per Tick call.
// It keeps only configuration and the obstacle RNG; all run state lives in the Session.
type Controller struct {
	cfg    config.RaceConfig
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithSeed seeds the obstacle respawn RNG for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a controller for the given configuration.
func NewController(cfg config.RaceConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Tick runs the game logic for one frame.
// A non-nil error means a named object was missing and the frame was aborted.
func (c *Controller) Tick(s *Session, h Host) error {
	if !s.Started && h.Pressed(KeyActivate) {
		s.Started = true
		s.ActivationTime = h.Now()
		c.logger.Info("run started", "at", s.ActivationTime)
	}
	if !s.Started || s.Lost {
		return nil
	}

	s.Ticks++

	if err := c.updateScore(s, h); err != nil {
		return err
	}
	player, err := sprite(h, PlayerLabel)
	if err != nil {
		return err
	}
	c.updatePlayer(s, player, h)
	c.scroll(h)
	if err := c.applyCollisions(s, h); err != nil {
		return err
	}
	if s.Health == 0 {
		c.lose(s, player, h)
	}
	return nil
}

// updateScore adds whole seconds since activation and refreshes the score label.
func (c *Controller) updateScore(s *Session, h Host) error {
	elapsed := int(math.Floor(h.Now()) - math.Floor(s.ActivationTime))
	if elapsed < 0 {
		elapsed = 0
	}

	switch c.cfg.Score.Mode {
	case config.ScoreElapsed:
		if elapsed > s.Score {
			s.Score = elapsed
		}
	default:
		s.Score += elapsed
	}

	txt, err := text(h, ScoreTextLabel)
	if err != nil {
		return err
	}
	txt.Value = fmt.Sprintf("Score: %d", s.Score)
	return nil
}

// lose performs the Running -> Lost transition. Callers guarantee it runs once.
func (c *Controller) lose(s *Session, player *Sprite, h Host) {
	s.Lost = true

	over := h.AddText(GameOverLabel, "Game Over")
	over.FontSize = 128

	crash := h.AddSprite(CrashLabel, KindDecoration)
	crash.X, crash.Y = player.X, player.Y
	crash.Layer = player.Layer + 1
	crash.Scale = 1

	h.StopMusic()
	h.PlaySFX(SfxJingle, c.cfg.Audio.SfxVolume)

	c.logger.Info("run lost", "score", s.Score, "ticks", s.Ticks, "hits", s.Hits)
}

func sprite(h Host, label string) (*Sprite, error) {
	sp, ok := h.Sprite(label)
	if !ok {
		return nil, fmt.Errorf("race: sprite %q: %w", label, ErrMissingObject)
	}
	return sp, nil
}

func text(h Host, label string) (*Text, error) {
	t, ok := h.Text(label)
	if !ok {
		return nil, fmt.Errorf("race: text %q: %w", label, ErrMissingObject)
	}
	return t, nil
}
