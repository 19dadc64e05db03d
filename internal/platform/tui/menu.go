package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/core"
)

// MenuItem represents a selectable preset in the menu.
type MenuItem struct {
	Preset config.Preset
	Title  string
	Blurb  string
}

// DefaultMenuItems lists the race presets in menu order.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Preset: config.PresetEasy, Title: "Easy", Blurb: "slower road, floaty jump"},
		{Preset: config.PresetNormal, Title: "Normal", Blurb: "the standard race"},
		{Preset: config.PresetHard, Title: "Hard", Blurb: "fast road, two lives"},
		{Preset: config.PresetClassic, Title: "Classic", Blurb: "hold UP to keep jumping"},
	}
}

// MenuModel is the Bubble Tea model for the preset picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	best           int // High score shown in the footer, 0 if unknown
	runtime        core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a preset
	openScoreboard bool      // True if user pressed Tab for scoreboard
	embedded       bool      // Hosted by SessionModel; choices do not quit the program
}

// NewMenuModel starts with the cursor on Normal. best is shown in the footer when positive.
func NewMenuModel(cfg core.RuntimeConfig, best int) MenuModel {
	return MenuModel{
		items:     DefaultMenuItems(),
		cursor:    1, // Normal
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		runtime:   cfg,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// done ends the menu: standalone menus quit their program.
func (m MenuModel) done() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, m.done()
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, m.done()
	}

	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  R O A D   R A C E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a preset", m.width))
	b.WriteString("\n\n")

	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %s", item.Title, item.Blurb)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %-8s %s", item.Title, item.Blurb))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best score: %d", m.best), m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Race  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected is the chosen preset, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config reports the runtime config including the last window size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.runtime
}

// MenuResult is what a standalone menu run ended with.
type MenuResult struct {
	Preset          config.Preset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the preset picker full screen until a choice is made.
func RunMenu(cfg core.RuntimeConfig, best int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, best),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.Preset = m.Selected().Preset
	}
	return result, nil
}
