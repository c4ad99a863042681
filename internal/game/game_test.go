package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
)

func newTestGame(t *testing.T, mutate func(*config.Config)) *Game {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 1})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetStartsClean(t *testing.T) {
	g := newTestGame(t, nil)
	st := g.State()
	if st.Score != 0 || st.Lines != 0 || st.Level != 0 || st.GameOver || st.Paused {
		t.Errorf("fresh game state = %+v", st)
	}
	if !g.board.Fits(g.current) {
		t.Errorf("spawned piece should fit an empty board")
	}
}

func TestConstLevelPinsLevel(t *testing.T) {
	g := newTestGame(t, func(cfg *config.Config) {
		lvl := 5
		cfg.ConstLevel = &lvl
	})
	if g.State().Level != 5 {
		t.Fatalf("Level = %d, want 5", g.State().Level)
	}
	g.lines = 30
	g.lock()
	if g.State().Level != 5 {
		t.Errorf("Level = %d after lines, want pinned 5", g.State().Level)
	}
}

func TestMoveRespectsWalls(t *testing.T) {
	g := newTestGame(t, nil)
	for i := 0; i < g.cfg.BoardWidth; i++ {
		g.Step(frame(core.ActionLeft))
	}
	for _, c := range g.current.Cells() {
		if c.X < 0 {
			t.Fatalf("piece pushed through the wall: %v", c)
		}
	}
	minX := g.cfg.BoardWidth
	for _, c := range g.current.Cells() {
		minX = core.Min(minX, c.X)
	}
	if minX != 0 {
		t.Errorf("leftmost cell = %d, want flush against the wall", minX)
	}
}

func TestSoftDropScoresPerCell(t *testing.T) {
	g := newTestGame(t, nil)
	before := g.current.Y
	g.Step(frame(core.ActionSoftDrop))
	if g.current.Y != before+1 {
		t.Fatalf("soft drop moved piece to %d, want %d", g.current.Y, before+1)
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, want 1 per soft-dropped cell", g.State().Score)
	}
}

func TestHardDropLocksAndScores(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame(core.ActionHardDrop))

	filled := 0
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if _, ok := g.board.Cell(x, y); ok {
				filled++
			}
		}
	}
	if filled != pieceCells {
		t.Errorf("locked %d cells, want %d", filled, pieceCells)
	}
	if g.State().Score == 0 {
		t.Errorf("hard drop should award distance points")
	}
}

func TestHardDropIgnoredWhenUnbound(t *testing.T) {
	g := newTestGame(t, func(cfg *config.Config) {
		cfg.HardDrop = nil
	})
	g.Step(frame(core.ActionHardDrop))
	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if _, ok := g.board.Cell(x, y); ok {
				t.Fatalf("piece locked at (%d,%d) without a hard drop binding", x, y)
			}
		}
	}
}

func TestLineClearScoresAndCounts(t *testing.T) {
	g := newTestGame(t, nil)
	// Flat I piece drops into the one 4-cell gap left in the bottom row.
	g.current = g.spawnPiece(tetromino.I)
	for x := 0; x < g.board.Width(); x++ {
		if x >= g.current.X && x < g.current.X+pieceCells {
			continue
		}
		g.board.cells[g.board.Height()-1][x] = int8(tetromino.O)
	}

	dropBonus := 2 * (g.dropTarget().Y - g.current.Y)
	g.Step(frame(core.ActionHardDrop))

	st := g.State()
	if st.Lines != 1 {
		t.Fatalf("Lines = %d, want 1", st.Lines)
	}
	if want := dropBonus + lineScores[1]; st.Score != want {
		t.Errorf("Score = %d, want %d", st.Score, want)
	}
	for x := 0; x < g.board.Width(); x++ {
		if _, ok := g.board.Cell(x, g.board.Height()-1); ok {
			t.Fatalf("bottom row should be empty after the clear")
		}
	}
}

func TestHoldSwapsOncePerDrop(t *testing.T) {
	g := newTestGame(t, nil)
	first := g.current.Kind
	g.Step(frame(core.ActionHold))
	if g.hold == nil || *g.hold != first {
		t.Fatalf("hold slot = %v, want %v", g.hold, first)
	}

	second := g.current.Kind
	g.Step(frame(core.ActionHold))
	if g.current.Kind != second {
		t.Errorf("second hold before locking should be ignored")
	}

	g.Step(frame(core.ActionHardDrop))
	g.Step(frame(core.ActionHold))
	if *g.hold == first {
		t.Errorf("hold should swap again after the piece locks")
	}
}

func TestHoldIgnoredWhenUnbound(t *testing.T) {
	g := newTestGame(t, func(cfg *config.Config) {
		cfg.Hold = nil
	})
	g.Step(frame(core.ActionHold))
	if g.hold != nil {
		t.Errorf("hold should be inert without a binding")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatalf("pause action should pause")
	}
	x := g.current.X
	g.Step(frame(core.ActionLeft))
	if g.current.X != x {
		t.Errorf("piece moved while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Errorf("second pause action should resume")
	}
}

func TestTopOutEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	for y := 0; y < 2; y++ {
		for x := 0; x < g.board.Width(); x++ {
			g.board.cells[y][x] = int8(tetromino.O)
		}
	}
	g.spawn()
	if !g.State().GameOver {
		t.Fatalf("spawning into filled rows should end the game")
	}

	g.Step(frame(core.ActionRestart))
	if g.State().GameOver {
		t.Errorf("restart should start a fresh game")
	}
}

func TestGravityLocksAtFloor(t *testing.T) {
	g := newTestGame(t, nil)
	kind := g.current.Kind
	// Drive gravity long enough to reach the floor and lock.
	steps := (g.cfg.BoardHeight + 2) * g.gravityInterval()
	for i := 0; i < steps && g.State().Score == 0; i++ {
		g.Step(frame())
		if _, ok := g.board.Cell(g.cfg.BoardWidth/2, g.cfg.BoardHeight-1); ok {
			break
		}
	}
	found := false
	for x := 0; x < g.board.Width(); x++ {
		if got, ok := g.board.Cell(x, g.board.Height()-1); ok && got == kind {
			found = true
		}
	}
	if !found {
		t.Errorf("piece never locked on the floor")
	}
}

func TestGhostOnlyInModernMode(t *testing.T) {
	g := newTestGame(t, nil)
	if _, ok := g.ghostPiece(); !ok {
		t.Errorf("modern mode with a ghost glyph should project a ghost")
	}

	classic := newTestGame(t, func(cfg *config.Config) {
		cfg.Mode = config.ModeClassic
		cfg.GhostChar = nil
		cfg.GhostColor = nil
	})
	if _, ok := classic.ghostPiece(); ok {
		t.Errorf("classic mode should not project a ghost")
	}
}

func TestRenderTooSmallShowsOverlay(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(10, 5)
	s := core.NewScreen(40, 10)
	g.Render(s)
	if !containsText(s, "too small") {
		t.Errorf("cramped screen should render the resize overlay")
	}
}

func TestRenderOverlayBoxGeometry(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(10, 5)
	s := core.NewScreen(40, 10)
	g.Render(s)

	// "Resize to continue" is 18 cells wide; with padding and borders the
	// box spans columns 9..30 and rows 2..6 on a 40x10 screen.
	if s.Get(9, 2) != '+' || s.Get(30, 2) != '+' || s.Get(9, 6) != '+' || s.Get(30, 6) != '+' {
		t.Errorf("overlay corners missing, row 2 = %q", s.Row(2))
	}
	if s.Get(20, 2) != '-' || s.Get(20, 6) != '-' {
		t.Errorf("overlay top and bottom edges missing")
	}
	if s.Get(9, 4) != '|' || s.Get(30, 4) != '|' {
		t.Errorf("overlay side edges missing")
	}
}

func TestRenderOverlayClipsToScreen(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(10, 3)
	s := core.NewScreen(10, 3)
	g.Render(s)
	if !containsText(s, "too") {
		t.Errorf("clipped overlay should still show part of the message, screen:\n%s", s.String())
	}
}

func TestRenderShowsScore(t *testing.T) {
	g := newTestGame(t, nil)
	s := core.NewScreen(80, 40)
	g.Render(s)
	if !containsText(s, "Score: 0") {
		t.Errorf("HUD should show the score")
	}
}

func containsText(s *core.Screen, want string) bool {
	return strings.Contains(s.String(), want)
}
