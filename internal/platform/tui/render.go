package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// ansiCodes is the terminal color for every core.Color a game can draw with.
var ansiCodes = [...]string{
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
	core.ColorPink:          "213",
	core.ColorNavy:          "19",
}

// cellStyles is built once from ansiCodes. Walls are drawn bold so the
// corridors read clearly on dark themes.
var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	styles[core.ColorNavy] = styles[core.ColorNavy].Bold(true)
	return styles
}()

func paint(c core.Color, text string) string {
	if int(c) >= len(cellStyles) || c == core.ColorDefault {
		return text
	}
	return cellStyles[c].Render(text)
}

// RenderScreen turns a screen buffer into styled terminal text.
// Each run of same-colored cells on a row becomes one styled span.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	for y := range lines {
		lines[y] = renderRow(s, y)
	}
	return strings.Join(lines, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var out, span strings.Builder
	color := core.ColorDefault
	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != color && span.Len() > 0 {
			out.WriteString(paint(color, span.String()))
			span.Reset()
		}
		color = cell.Color
		span.WriteRune(cell.Rune)
	}
	if span.Len() > 0 {
		out.WriteString(paint(color, span.String()))
	}
	return out.String()
}
