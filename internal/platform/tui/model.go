package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-race/internal/audio"
	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/core"
	"github.com/vovakirdan/road-race/internal/engine"
	"github.com/vovakirdan/road-race/internal/race"
	"github.com/vovakirdan/road-race/internal/storage"
)

// Options configures a race Model.
type Options struct {
	Config  config.RaceConfig
	Runtime core.RuntimeConfig
	Preset  string // Recorded with saved runs
	Player  string // Recorded with saved runs
	Store   *storage.Store
	Audio   audio.Player
	Logger  *log.Logger

	// Embedded models are hosted by SessionModel and never quit the program on back.
	Embedded bool
}

// maxHold bounds how long one key press stays held, in seconds.
const maxHold = 1.0

// run is the per-race state, replaced on restart.
type run struct {
	engine  *engine.Engine
	ctrl    *race.Controller
	session *race.Session
	start   time.Time // Wall clock at engine time 0
	saved   bool
	id      string // Stored run ID once saved
}

// Model is the Bubble Tea model that hosts the road race in a terminal.
type Model struct {
	opts     Options
	gen      uint64 // Tick chain owned by this model
	run      *run
	screen   *core.Screen
	keys     *KeyMapper
	board    *ScoreboardModel // Non-nil while the scoreboard overlay is open
	err      error
	quitting bool
	back     bool // Leave to the caller's menu rather than quit
}

// NewModel creates a model and sets up the first race.
func NewModel(opts Options) Model {
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = defaultTickRate
	}

	m := Model{
		opts:   opts,
		gen:    nextTickGen(),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:   NewKeyMapper(),
	}
	m.run = m.newRun(time.Now())
	return m
}

// newRun builds a fresh engine, controller and session.
func (m Model) newRun(now time.Time) *run {
	seed := m.opts.Runtime.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	e := engine.New(
		engine.WithAudio(m.opts.Audio),
		engine.WithLogger(m.opts.Logger),
		engine.WithHold(pressHold(m.opts.Runtime)),
	)
	engine.SetupRace(e, m.opts.Config)

	return &run{
		engine:  e,
		ctrl:    race.NewController(m.opts.Config, race.WithSeed(seed), race.WithLogger(m.opts.Logger)),
		session: race.NewSession(m.opts.Config),
		start:   now,
	}
}

// pressHold keeps a key press alive for at least one frame, capped at maxHold.
func pressHold(rt core.RuntimeConfig) float64 {
	return core.ClampF(rt.TickSeconds(), engine.DefaultHold, maxHold)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.opts.Audio.StopMusic()
		m.quitting = true
		return m, tea.Quit
	}

	lost := m.run.session.Lost
	switch action {
	case core.ActionActivate:
		m.run.engine.Press(race.KeyActivate)
	case core.ActionJump:
		m.run.engine.Press(race.KeyJump)
	case core.ActionRestart:
		if lost {
			m.opts.Logger.Info("restart")
			m.run = m.newRun(time.Now())
		}
	case core.ActionScoreboard:
		if lost && m.opts.Store != nil {
			board := NewScoreboardModel(m.opts.Store, m.screen.Width(), m.screen.Height())
			board.embedded = true
			m.board = &board
		}
	case core.ActionBack:
		if lost {
			m.back = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
	case core.ActionScreenshot:
		m.saveScreenshot()
	}
	return m, nil
}

// updateBoard routes messages to the scoreboard overlay while the race waits.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		if tick.Gen != m.gen {
			return m, nil
		}
		return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
	}
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	updated, cmd := m.board.Update(msg)
	board, _ := updated.(ScoreboardModel)
	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// handleTick runs one engine frame at the wall-clock time of the tick.
func (m Model) handleTick(tick TickMsg) (tea.Model, tea.Cmd) {
	if tick.Gen != m.gen {
		return m, nil // Left over from a replaced race
	}
	r := m.run
	now := raceClock(r.start, tick)

	err := r.engine.Frame(now, func(h race.Host) error {
		return r.ctrl.Tick(r.session, h)
	})
	if err != nil {
		m.opts.Logger.Error("race aborted", "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if r.session.Lost && !r.saved {
		m.saveRun(now)
	}

	return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// saveRun records the lost race once. Storage errors are logged, never fatal.
func (m Model) saveRun(now float64) {
	r := m.run
	r.saved = true
	if m.opts.Store == nil {
		return
	}

	id, err := m.opts.Store.SaveRun(storage.Run{
		Score:    r.session.Score,
		Health:   r.session.Health,
		Ticks:    r.session.Ticks,
		Duration: time.Duration((now - r.session.ActivationTime) * float64(time.Second)),
		Preset:   m.opts.Preset,
		Player:   m.opts.Player,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
		return
	}
	r.id = id
	m.opts.Logger.Info("run saved", "id", id, "score", r.session.Score)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	DrawWorld(m.screen, m.run.engine, m.run.session.Phase())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".roadrace", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("roadrace_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	DrawWorld(m.screen, m.run.engine, m.run.session.Phase())
	return RenderScreen(m.screen)
}

// Session returns the current run's session.
func (m Model) Session() *race.Session {
	return m.run.session
}

// BackToMenu reports whether the player asked to leave the finished race.
func (m Model) BackToMenu() bool {
	return m.back
}

// Err returns the error that aborted the race, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a local race.
// It reports whether the player left with back rather than quit.
func Run(opts Options) (back bool, err error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.back, m.err
}
