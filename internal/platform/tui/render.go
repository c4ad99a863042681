package tui

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// styleCache memoizes lipgloss styles per color so render runs don't rebuild
// them every frame. Config colors are a small fixed set. SSH sessions render
// from their own goroutines, so access is guarded.
var (
	styleMu    sync.Mutex
	styleCache = map[core.Color]lipgloss.Style{}
)

// styleFor returns the lipgloss style rendering the given cell color.
func styleFor(c core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c.Kind != core.ColorDefault {
		s = s.Foreground(lipglossColor(c))
	}
	styleCache[c] = s
	return s
}

// lipglossColor converts a cell color to the lipgloss color space: RGB maps
// to a hex true-color, ANSI to a 256-palette index.
func lipglossColor(c core.Color) lipgloss.Color {
	if c.Kind == core.ColorAnsi {
		return lipgloss.Color(strconv.Itoa(int(c.Ansi)))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
