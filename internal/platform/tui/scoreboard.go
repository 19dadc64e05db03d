package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/road-race/internal/storage"
)

const (
	minWidthForStats = 80  // Minimum width to show the stats sidebar
	statsWidth       = 22  // Width of the stats sidebar
	maxRuns          = 100 // Max runs to load
)

// boardView selects which runs the scoreboard lists.
type boardView int

const (
	viewTop boardView = iota
	viewRecent
)

func (v boardView) title() string {
	if v == viewRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap implements help.KeyMap for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleView, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleView},
		{k.Back, k.Quit},
	}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "top/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists stored runs, best first or newest first.
type ScoreboardModel struct {
	store     *storage.Store
	view      boardView
	runs      []storage.Run
	stats     *storage.Stats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	showStats bool
	embedded  bool // Hosted inside another model, so back does not quit the program
}

// NewScoreboardModel loads the best runs. A nil store shows an empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:     store,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Preset", Width: 8},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 4
	if m.showStats {
		avail -= statsWidth + 3
	}
	// Spare width goes to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2 // Cell padding
	}
	if extra := avail - used; extra > 0 {
		columns[3].Width += min(extra, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
		table.WithStyles(boardTableStyles()),
	)
	return t
}

var (
	boardAccent = lipgloss.Color("214")
	boardMuted  = lipgloss.Color("244")
	boardFrame  = lipgloss.Color("238")
)

func boardTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(boardFrame).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(boardAccent)
	return s
}

// loadRuns loads the runs for the current view and the aggregate stats.
func (m *ScoreboardModel) loadRuns() {
	m.runs = nil
	m.stats = nil
	if m.store != nil {
		var (
			runs []storage.Run
			err  error
		)
		if m.view == viewRecent {
			runs, err = m.store.RecentRuns(maxRuns)
		} else {
			runs, err = m.store.TopRuns(maxRuns)
		}
		if err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			formatDuration(r.Duration.Seconds()),
			player,
			r.Preset,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleView):
			m.view = 1 - m.view
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.embedded) {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(boardAccent)
	b.WriteString(title.Render(centerText("ROAD RACE - "+m.view.title(), m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(boardFrame).
		Padding(0, 1)

	runs := box.Render(m.renderRuns())
	if m.showStats {
		stats := box.Width(statsWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", runs))
	} else {
		b.WriteString(centerText(runs, m.width))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(boardMuted).Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate sidebar.
func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.Runs == 0 {
		b.WriteString("no runs yet\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Runs:  %d\n", m.stats.Runs)
	fmt.Fprintf(&b, "Best:  %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Avg:   %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Last:  %s\n", m.stats.LastPlayed.Local().Format("Jan 02"))
	return b.String()
}

func (m ScoreboardModel) renderRuns() string {
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(boardMuted).
			Italic(true).
			Padding(2, 4).
			Render("No runs recorded yet.\nFinish a race to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack reports that the user left with back rather than quit.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard full screen. goBack is false when the user quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
