// Package tui runs the road race in a terminal with Bubble Tea, locally or
// over SSH via Wish.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg carries the wall-clock time of a frame. Gen identifies the tick
// chain of one Model so that ticks left over from a replaced race are dropped.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var tickGens atomic.Uint64

// nextTickGen returns a generation no other Model in the process uses.
func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickInterval is the frame period for a tick rate; non-positive rates fall back to 60 FPS.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame of chain gen.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

// raceClock converts a tick to seconds since the race was created.
// Ticks stamped before the start read as 0.
func raceClock(start time.Time, tick TickMsg) float64 {
	now := tick.At.Sub(start).Seconds()
	if now < 0 {
		return 0
	}
	return now
}
