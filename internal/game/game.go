package game

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetromino"
)

// previewCount is how many upcoming pieces modern mode shows.
const previewCount = 4

// lineScores is the base award for clearing 0..4 lines at once. The award is
// multiplied by level+1.
var lineScores = [pieceCells + 1]int{0, 100, 300, 500, 800}

// Game implements falling-block play over a configured board.
type Game struct {
	cfg  *config.Config
	tick uint64

	board    *Board
	bag      *tetromino.Bag
	current  Piece
	hold     *tetromino.Tetromino
	holdUsed bool

	score int
	lines int
	level int

	gravityTicker int

	seed     int64
	gameOver bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// New creates a game over the given configuration. The configuration must
// have passed parsing; New trusts its cross-field guarantees.
func New(cfg *config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config { return g.cfg }

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.level = g.startLevel()
	g.gravityTicker = 0
	g.gameOver = false
	g.paused = false
	g.hold = nil
	g.holdUsed = false
	g.seed = rt.Seed
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	g.board = NewBoard(g.cfg.BoardWidth, g.cfg.BoardHeight)
	g.bag = tetromino.NewBag(rt.Seed)
	g.checkScreenSize()
	g.spawn()
}

func (g *Game) startLevel() int {
	if g.cfg.ConstLevel != nil {
		return *g.cfg.ConstLevel
	}
	return 0
}

// spawn takes the next piece from the bag and places it at the top of the
// well. If it does not fit, the well has topped out.
func (g *Game) spawn() {
	g.current = g.spawnPiece(g.bag.Next())
	g.holdUsed = false
	if !g.board.Fits(g.current) {
		g.gameOver = true
	}
}

func (g *Game) spawnPiece(kind tetromino.Tetromino) Piece {
	return Piece{
		Kind: kind,
		X:    (g.cfg.BoardWidth - pieceCells) / 2,
		Y:    0,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.seed + 1,
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.gravityTicker++
	if g.gravityTicker >= g.gravityInterval() {
		g.gravityTicker = 0
		g.fall()
	}

	return core.StepResult{State: g.State()}
}

// gravityInterval is how many ticks pass between gravity steps. Higher levels
// fall faster, down to one step per tick.
func (g *Game) gravityInterval() int {
	return core.Max(1, 48-4*g.level)
}

func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.tryMove(-1, 0)
	}
	if input.Has(core.ActionRight) {
		g.tryMove(1, 0)
	}
	if input.Has(core.ActionRotateCW) {
		g.tryRotate(1)
	}
	if input.Has(core.ActionRotateACW) {
		g.tryRotate(-1)
	}
	if input.Has(core.ActionSoftDrop) {
		if g.tryMove(0, 1) {
			g.score++
		}
		g.gravityTicker = 0
	}
	if input.Has(core.ActionHardDrop) && g.cfg.HardDrop != nil {
		g.hardDrop()
	}
	if input.Has(core.ActionHold) && g.cfg.Hold != nil {
		g.swapHold()
	}
}

func (g *Game) tryMove(dx, dy int) bool {
	moved := g.current.Moved(dx, dy)
	if !g.board.Fits(moved) {
		return false
	}
	g.current = moved
	return true
}

// tryRotate turns the piece, nudging it one cell left or right when the
// turned shape clips a wall.
func (g *Game) tryRotate(steps int) {
	turned := g.current.Rotated(steps)
	for _, dx := range []int{0, -1, 1, -2, 2} {
		kicked := turned.Moved(dx, 0)
		if g.board.Fits(kicked) {
			g.current = kicked
			return
		}
	}
}

// fall applies one gravity step, locking the piece when it can no longer
// descend.
func (g *Game) fall() {
	if g.tryMove(0, 1) {
		return
	}
	g.lock()
}

func (g *Game) hardDrop() {
	dropped := g.dropTarget()
	g.score += 2 * (dropped.Y - g.current.Y)
	g.current = dropped
	g.lock()
}

// dropTarget returns the piece in the lowest position it fits straight below
// its current one.
func (g *Game) dropTarget() Piece {
	p := g.current
	for {
		next := p.Moved(0, 1)
		if !g.board.Fits(next) {
			return p
		}
		p = next
	}
}

// swapHold stashes the falling piece, bringing out the stashed one if any.
// Only one swap is allowed per drop.
func (g *Game) swapHold() {
	if g.holdUsed {
		return
	}
	stashed := g.hold
	kind := g.current.Kind
	g.hold = &kind
	if stashed == nil {
		g.spawn()
	} else {
		g.current = g.spawnPiece(*stashed)
		if !g.board.Fits(g.current) {
			g.gameOver = true
		}
	}
	g.holdUsed = true
}

// lock commits the piece to the board, clears lines, scores them, and spawns
// the next piece.
func (g *Game) lock() {
	g.board.Lock(g.current)
	g.gravityTicker = 0

	total := 0
	for {
		n := g.board.ClearLines(g.cfg.Cascade)
		if n == 0 {
			break
		}
		total += n
		g.score += lineScores[core.Min(n, pieceCells)] * (g.level + 1)
		if !g.cfg.Cascade {
			break
		}
	}
	if total > 0 {
		g.lines += total
		if g.cfg.ConstLevel == nil {
			g.level = g.lines / 10
		}
	}

	g.spawn()
}

// ghostPiece returns where the falling piece would land, or false when the
// ghost is disabled or would overlap the piece itself.
func (g *Game) ghostPiece() (Piece, bool) {
	if g.cfg.Mode != config.ModeModern || g.cfg.GhostChar == nil {
		return Piece{}, false
	}
	target := g.dropTarget()
	if target.Y == g.current.Y {
		return Piece{}, false
	}
	return target, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Mode returns the configured play mode as a storage-friendly string.
func (g *Game) Mode() string { return g.cfg.Mode.String() }

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("Tick: %d, Score: %d, Lines: %d, Level: %d, Piece: %s, GameOver: %v",
		g.tick, g.score, g.lines, g.level, g.current.Kind, g.gameOver)
}
