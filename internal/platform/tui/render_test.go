package tui

import (
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenProducesAllRows(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawColorText(0, 1, "tetris", core.AnsiColor(51))

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen emitted %d newlines, want 2", got)
	}
	if !strings.Contains(out, "tetris") {
		t.Errorf("RenderScreen output should contain the drawn text, got %q", out)
	}
}

// Each SSH session renders from its own goroutine, all sharing the style
// cache. Distinct colors per goroutine force cache misses on every path.
func TestRenderScreenConcurrentSessions(t *testing.T) {
	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := core.NewScreen(32, 16)
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					s.SetCell(x, y, '#', core.RGB(uint8(n*31), uint8(x*7), uint8(y*11)))
				}
			}
			for i := 0; i < 20; i++ {
				if out := RenderScreen(s); out == "" {
					t.Error("RenderScreen returned an empty frame")
					return
				}
			}
		}(n)
	}
	wg.Wait()
}
