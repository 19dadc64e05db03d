package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/road-race/internal/audio"
	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/core"
	"github.com/vovakirdan/road-race/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig configures the remote race server.
type SSHServerConfig struct {
	Address string // Listen address, e.g. ":23234"

	// HostKeyPath defaults to ~/.roadrace/host_key and is generated when missing.
	HostKeyPath string

	DBPath      string
	IdleTimeout time.Duration

	// Race is the base race config; each session applies its chosen preset on top.
	Race config.RaceConfig

	TickRate int
	Logger   *log.Logger
}

// DefaultSSHServerConfig returns the settings used by "roadrace serve".
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.roadrace/runs.db",
		IdleTimeout: 30 * time.Minute,
		Race:        config.DefaultRaceConfig(),
		TickRate:    defaultTickRate,
	}
}

// SSHServer serves one race session per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer opens the runs database and prepares the Wish server.
// A database that cannot be opened disables run storage but not racing.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "roadrace-ssh",
		})
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("runs will not be saved", "db", cfg.DBPath, "err", err)
		store = nil
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("creating ssh server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey applies the default host key location and creates its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		path = filepath.Join(home, ".roadrace", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("creating host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("rejecting session without a PTY", "user", sess.User())
		return nil, nil
	}

	runtime := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	return NewSessionModel(s.store, s.config.Race, runtime, sess.User(), s.logger),
		[]tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()
		s.logger.Info("connected", "user", sess.User(), "remote", remote)
		next(sess)
		s.logger.Info("disconnected",
			"user", sess.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve listens until ctx is done, then shuts down. A listener failure is returned.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if s.store != nil {
			s.store.Close()
		}
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown closes the listener, waits up to ten seconds for sessions and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel is the top-level model of one SSH connection. It cycles
// menu, race and scoreboard until the user quits.
type SessionModel struct {
	store     *storage.Store
	race      config.RaceConfig
	runtime   core.RuntimeConfig
	username  string
	sessionID string
	logger    *log.Logger
	menu      MenuModel
	game      *Model
	board     *ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model. Sessions never play audio.
func NewSessionModel(store *storage.Store, race config.RaceConfig, runtime core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	sessionID := uuid.NewString()
	if logger == nil {
		logger = log.Default()
	}

	m := SessionModel{
		store:     store,
		race:      race,
		runtime:   runtime,
		username:  username,
		sessionID: sessionID,
		logger:    logger.With("user", username, "session", sessionID[:8]),
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.store != nil {
		best, _ = m.store.PlayerBest(m.username)
	}
	menu := NewMenuModel(m.runtime, best)
	menu.embedded = true
	return menu
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to whichever screen is active.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = size.Width
		m.runtime.ScreenH = size.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.board != nil:
		return m.updateBoard(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	if menu, ok := updated.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		board.embedded = true
		m.board = &board
		m.menu = m.newMenu()
		return m, nil

	case m.menu.Selected() != nil:
		preset := m.menu.Selected().Preset
		cfg := m.race
		config.ApplyRacePreset(&cfg, preset)

		game := NewModel(Options{
			Config:   cfg,
			Runtime:  m.runtime,
			Preset:   string(preset),
			Player:   m.username,
			Store:    m.store,
			Audio:    audio.Silent{},
			Logger:   m.logger,
			Embedded: true,
		})
		m.game = &game
		m.logger.Info("race started", "preset", preset)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// updateGame returns to a fresh menu when the race asks to go back.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.game.Update(msg)
	if game, ok := updated.(Model); ok {
		m.game = &game
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	if m.game.quitting {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}
