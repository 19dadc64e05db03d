package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/road-race/internal/core"
	"github.com/vovakirdan/road-race/internal/race"
)

// World bounds mapped onto the terminal. The origin is the screen center.
const (
	worldHalfW = 640.0
	worldHalfH = 360.0
)

// roadY is the world height of the drawn road surface, just under the cars.
const roadY = -45.0

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// art is a kind's glyphs, centered horizontally on the projected position
// and raised lift rows above it.
type art struct {
	rows  []string
	color core.Color
	lift  int
}

var kindArt = map[race.Kind]art{
	race.KindPlayer:     {rows: []string{" ▄██▄▖", "▀◉──◉▀"}, color: core.ColorCyan, lift: 2},
	race.KindObstacle:   {rows: []string{"▗▲▖", "███"}, color: core.ColorOrange, lift: 2},
	race.KindRoadline:   {rows: []string{"━━━"}, color: core.ColorWhite},
	race.KindDecoration: {rows: []string{"*"}, color: core.ColorYellow},
}

var crashArt = art{rows: []string{"\\ | /", "- ✸ -", "/ | \\"}, color: core.ColorBrightYellow, lift: 3}

// World is what DrawWorld needs from the engine.
type World interface {
	Sprites() []*race.Sprite
	Texts() []*race.Text
}

// project maps a world position to a screen cell.
func project(dst *core.Screen, x, y float64) (col, row int) {
	col = int((x + worldHalfW) / (2 * worldHalfW) * float64(dst.Width()))
	row = int((worldHalfH - y) / (2 * worldHalfH) * float64(dst.Height()))
	return col, row
}

// DrawWorld draws the road, sprites in layer order and text labels.
// Large texts are drawn as a centered banner.
func DrawWorld(dst *core.Screen, w World, phase race.Phase) {
	dst.Clear()

	_, road := project(dst, 0, roadY)
	dst.DrawHLine(0, road, dst.Width(), '▔', core.ColorGray)

	sprites := append([]*race.Sprite(nil), w.Sprites()...)
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Layer < sprites[j].Layer })
	for _, sp := range sprites {
		a, ok := kindArt[sp.Kind]
		if !ok {
			continue
		}
		if sp.Label == race.CrashLabel {
			a = crashArt
		}
		drawArt(dst, a, sp.X, sp.Y)
	}

	var banners []*race.Text
	for _, t := range w.Texts() {
		if t.FontSize >= 64 {
			banners = append(banners, t)
			continue
		}
		col, row := project(dst, t.X, t.Y)
		n := len([]rune(t.Value))
		col = core.Clamp(col-n/2, 0, core.Max(dst.Width()-n, 0))
		dst.DrawText(col, row, t.Value, core.ColorBrightGreen)
	}

	switch {
	case phase == race.PhaseNotStarted:
		drawBanner(dst, "ROAD RACE", "Press SPACE to start  |  UP to jump", core.ColorYellow)
	case len(banners) > 0:
		drawBanner(dst, strings.ToUpper(banners[0].Value), "R: restart  |  Tab: scores  |  Q: quit", core.ColorBrightRed)
	}
}

func drawArt(dst *core.Screen, a art, x, y float64) {
	col, row := project(dst, x, y)
	row -= a.lift
	for dy, line := range a.rows {
		n := len([]rune(line))
		dst.DrawText(col-n/2, row+dy, line, a.color)
	}
}

// drawBanner draws a message box in the center of the screen.
func drawBanner(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 3

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorGray)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// formatDuration prints a run length as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
