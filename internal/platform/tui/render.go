package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-flappy/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !fg.IsNone() {
		st = st.Foreground(lipgloss.Color(fg.String()))
	}
	if !bg.IsNone() {
		st = st.Background(lipgloss.Color(bg.String()))
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != first.FG || cell.BG != first.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(first.FG, first.BG).Render(run.String()))
		}
	}
	return sb.String()
}
