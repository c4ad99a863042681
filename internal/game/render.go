package game

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	hudHeight      = 2
	sidePanelWidth = 12
)

// Resize tells the game the screen dimensions changed.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// frameWidth and frameHeight are the board size in screen cells, borders
// included.
func (g *Game) frameWidth() int  { return g.cfg.BoardWidth*g.cfg.BlockSize + 2 }
func (g *Game) frameHeight() int { return g.cfg.BoardHeight*g.cfg.BlockSize + 2 }

func (g *Game) checkScreenSize() {
	requiredW := g.frameWidth() + sidePanelWidth
	requiredH := g.frameHeight() + hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := core.Max(0, (dst.Width()-g.frameWidth()-sidePanelWidth)/2)
	offY := hudHeight

	g.renderFrame(dst, offX, offY)
	g.renderWell(dst, offX+1, offY+1)
	g.renderSidePanel(dst, offX+g.frameWidth()+2, offY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d. Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press ESC to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris (%s)  Score: %d  Lines: %d  Level: %d",
		g.cfg.Mode, g.score, g.lines, g.level)
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderFrame draws the well border with the configured glyphs and color.
func (g *Game) renderFrame(dst *core.Screen, offX, offY int) {
	cfg := g.cfg
	w, h := g.frameWidth(), g.frameHeight()
	right, bottom := offX+w-1, offY+h-1

	for x := offX + 1; x < right; x++ {
		dst.SetCell(x, offY, cfg.TopBorder, cfg.BorderColor)
		dst.SetCell(x, bottom, cfg.BottomBorder, cfg.BorderColor)
	}
	for y := offY + 1; y < bottom; y++ {
		dst.SetCell(offX, y, cfg.LeftBorder, cfg.BorderColor)
		dst.SetCell(right, y, cfg.RightBorder, cfg.BorderColor)
	}
	dst.SetCell(offX, offY, cfg.TLCorner, cfg.BorderColor)
	dst.SetCell(right, offY, cfg.TRCorner, cfg.BorderColor)
	dst.SetCell(offX, bottom, cfg.BLCorner, cfg.BorderColor)
	dst.SetCell(right, bottom, cfg.BRCorner, cfg.BorderColor)
}

// renderWell draws locked cells, the ghost, and the falling piece, scaling
// every board cell to block_size screen cells in both directions.
func (g *Game) renderWell(dst *core.Screen, offX, offY int) {
	cfg := g.cfg

	for y := 0; y < g.board.Height(); y++ {
		for x := 0; x < g.board.Width(); x++ {
			if kind, filled := g.board.Cell(x, y); filled {
				g.renderBlock(dst, offX, offY, x, y, cfg.BlockChar, cfg.PieceColor(kind))
			}
		}
	}

	if ghost, ok := g.ghostPiece(); ok {
		color := cfg.PieceColor(ghost.Kind)
		if cfg.GhostColor != nil {
			color = *cfg.GhostColor
		}
		for _, c := range ghost.Cells() {
			if c.Y >= 0 {
				g.renderBlock(dst, offX, offY, c.X, c.Y, *cfg.GhostChar, color)
			}
		}
	}

	if !g.gameOver {
		color := cfg.PieceColor(g.current.Kind)
		for _, c := range g.current.Cells() {
			if c.Y >= 0 {
				g.renderBlock(dst, offX, offY, c.X, c.Y, cfg.BlockChar, color)
			}
		}
	}
}

// renderBlock paints one board cell as a block_size square of glyphs.
func (g *Game) renderBlock(dst *core.Screen, offX, offY, cellX, cellY int, ch rune, color core.Color) {
	size := g.cfg.BlockSize
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			dst.SetCell(offX+cellX*size+dx, offY+cellY*size+dy, ch, color)
		}
	}
}

// renderSidePanel draws the hold box and the piece preview. Both are modern
// mode features.
func (g *Game) renderSidePanel(dst *core.Screen, offX, offY int) {
	if g.cfg.Mode != config.ModeModern {
		return
	}

	if g.cfg.Hold != nil {
		dst.DrawText(offX, offY, "Hold:")
		if g.hold != nil {
			dst.SetCell(offX+6, offY, rune(g.hold.String()[0]), g.cfg.PieceColor(*g.hold))
		} else {
			dst.Set(offX+6, offY, '-')
		}
	}

	dst.DrawText(offX, offY+2, "Next:")
	for i, kind := range g.bag.Preview(previewCount) {
		dst.SetCell(offX+6+i*2, offY+2, rune(kind.String()[0]), g.cfg.PieceColor(kind))
	}
}

// renderOverlay draws a centered boxed message, clipped to the screen.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	inner := core.NewRect(box.X+1, box.Y+1, boxW-2, boxH-2)

	top := core.Clamp(box.Y, 0, dst.Height())
	bottom := core.Clamp(box.Bottom(), 0, dst.Height())
	left := core.Clamp(box.X, 0, dst.Width())
	right := core.Clamp(box.Right(), 0, dst.Width())

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			switch {
			case inner.Contains(x, y):
				dst.Set(x, y, ' ')
			case (y == box.Y || y == box.Bottom()-1) && (x == box.X || x == box.Right()-1):
				dst.Set(x, y, '+')
			case y == box.Y || y == box.Bottom()-1:
				dst.Set(x, y, '-')
			default:
				dst.Set(x, y, '|')
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
