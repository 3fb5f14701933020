package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/antarctic/internal/core"
)

// ansiColors holds the 256-color code of every core.Color the game draws
// with. Black is drawn as dark gray so it stays visible on dark terminals.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "240",
	core.ColorSky:           "117",
	core.ColorNavy:          "24",
	core.ColorSilver:        "250",
}

// colorStyles maps core.Color to lipgloss styles. ColorDefault keeps the
// terminal's own foreground.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range ansiColors {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// footerStyle dims the help and status lines.
var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// styleFor returns the style of a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Extra room for the escape sequences of each run
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes one row, styling each run of same-colored cells once
// so the output carries as few escape sequences as possible.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	runColor := s.GetCell(0, y).Color

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	if run.Len() > 0 {
		sb.WriteString(styleFor(runColor).Render(run.String()))
	}
}
