package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/road-race/internal/core"
	"github.com/vovakirdan/road-race/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openStore(t), 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty scoreboard view:\n%s", m.View())
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openStore(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, score := range []int{10, 30, 20} {
		if _, err := store.SaveRun(storage.Run{Score: score, Player: "p", CreatedAt: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.runs) != 3 || m.runs[0].Score != 30 {
		t.Fatalf("top view runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("top view title missing")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if m.view != viewRecent || m.runs[0].Score != 20 {
		t.Errorf("recent view runs = %+v", m.runs)
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("recent view title missing")
	}
	if m.stats == nil || m.stats.Runs != 3 {
		t.Errorf("stats = %+v", m.stats)
	}
}

func TestScoreboardBack(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		wantQuit bool
	}{
		{"standalone quits program", false, true},
		{"embedded returns to host", true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 80, 24)
			m.embedded = tc.embedded

			updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
			if !updated.(ScoreboardModel).IsGoingBack() {
				t.Error("esc should go back")
			}
			if got := cmd != nil; got != tc.wantQuit {
				t.Errorf("returned a command = %v, expected %v", got, tc.wantQuit)
			}
		})
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 0)
	if m.items[m.cursor].Title != "Normal" {
		t.Fatalf("default cursor on %q", m.items[m.cursor].Title)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(MenuModel)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(MenuModel)

	if m.Selected() == nil || m.Selected().Preset != "hard" {
		t.Errorf("Selected() = %+v, expected hard", m.Selected())
	}
	if cmd == nil {
		t.Error("standalone menu should quit after selection")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 0)
	for i := 0; i < 10; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = updated.(MenuModel)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d after scrolling up, expected 0", m.cursor)
	}
	for i := 0; i < 10; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after scrolling down, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuShowsBest(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, 77)
	if !strings.Contains(m.View(), "Best score: 77") {
		t.Errorf("menu view missing best score:\n%s", m.View())
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(store, defaultRace(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "alice", nil)

	step := func(msg tea.Msg) {
		t.Helper()
		updated, _ := s.Update(msg)
		s = updated.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.game == nil {
		t.Fatal("enter on the menu should start a race")
	}
	if s.game.opts.Player != "alice" || s.game.opts.Preset != "normal" {
		t.Errorf("race options = %+v", s.game.opts)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.game == nil {
		t.Fatal("tab during a race should not leave it")
	}
}

func TestSessionScoreboardFromMenu(t *testing.T) {
	s := NewSessionModel(openStore(t), defaultRace(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "bob", nil)

	updated, cmd := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = updated.(SessionModel)
	if s.board == nil {
		t.Fatal("tab on the menu should open the scoreboard")
	}
	if cmd != nil {
		t.Error("embedded menu must not quit the session")
	}

	updated, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = updated.(SessionModel)
	if s.board != nil || s.quitting {
		t.Error("esc should return to the menu")
	}
}

func TestSessionMenuShowsPlayerBest(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{{Score: 40, Player: "alice"}, {Score: 99, Player: "bob"}} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	s := NewSessionModel(store, defaultRace(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "alice", nil)
	view := s.View()
	if !strings.Contains(view, "Best score: 40") || strings.Contains(view, "99") {
		t.Errorf("menu should show alice's best only:\n%s", view)
	}
}

func TestSessionNewRaceIgnoresOldTicks(t *testing.T) {
	s := NewSessionModel(openStore(t), defaultRace(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, "alice", nil)

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		updated, cmd := s.Update(msg)
		s = updated.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	old := s.game.gen
	s.game.run.session.Lost = true
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.game != nil {
		t.Fatal("esc after loss should return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.game == nil || s.game.gen == old {
		t.Fatal("second race should own a new tick chain")
	}

	if cmd := step(TickMsg{At: time.Now(), Gen: old}); cmd != nil {
		t.Error("tick of the previous race was re-armed")
	}
	if now := s.game.run.engine.Now(); now != 0 {
		t.Errorf("tick of the previous race advanced the new one to %v", now)
	}
}
