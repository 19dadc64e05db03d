package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/road-race/internal/config"
)

// loadRaceConfig loads the race config and applies --preset on top.
func loadRaceConfig() (config.RaceConfig, config.Preset, error) {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.RaceConfig{}, "", err
	}

	cfg, err := config.LoadRace(flagConfig)
	if err != nil {
		return config.RaceConfig{}, "", err
	}
	if preset != "" {
		config.ApplyRacePreset(&cfg, preset)
	}
	return cfg, preset, nil
}

// newLogger creates a logger writing to w at the --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.roadrace/roadrace.log for programs that own the terminal.
// The caller closes the file.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".roadrace")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "roadrace.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// fileLogger returns a logger on the log file, or a discarding one when the
// file cannot be opened. The returned func closes the file.
func fileLogger(prefix string) (*log.Logger, func(), error) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		logger, lerr := newLogger(io.Discard, prefix)
		return logger, func() {}, lerr
	}
	logger, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// presetName is the preset recorded with saved runs.
func presetName(p config.Preset) string {
	if p == "" {
		return "default"
	}
	return string(p)
}
