package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mpetrenko/skyflap/internal/core"
)

// styleCache holds one lipgloss style per ANSI index seen so far. The game
// draws from a nine-entry palette, so the cache stays tiny; building styles
// lazily keeps the renderer independent of which colors the frame uses.
var styleCache = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	style, ok := styleCache[c]
	if !ok {
		style = lipgloss.NewStyle()
		if c != core.ColorDefault {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(int(c))))
		}
		styleCache[c] = style
	}
	return style
}

// RenderScreen flattens a Screen buffer into one styled string. Same-colored
// neighbors are emitted as a single run so a mostly-empty sky costs a handful
// of escape sequences per row, not one per cell.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			out.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return out.String()
}
