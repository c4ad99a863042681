package game

import "github.com/vovakirdan/tui-tetris/internal/tetromino"

// emptyCell marks an unoccupied board cell.
const emptyCell = -1

// Board is the playfield grid. Each cell holds the tetromino that filled it,
// or emptyCell. Row 0 is the top of the well.
type Board struct {
	width  int
	height int
	cells  [][]int8
}

// NewBoard creates an empty playfield of the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]int8, height)
	for y := range b.cells {
		row := make([]int8, width)
		for x := range row {
			row[x] = emptyCell
		}
		b.cells[y] = row
	}
	return b
}

// Width returns the playfield width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the playfield height in cells.
func (b *Board) Height() int { return b.height }

// Cell returns the piece occupying (x, y) and whether the cell is filled.
// Out-of-bounds coordinates read as empty.
func (b *Board) Cell(x, y int) (tetromino.Tetromino, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, false
	}
	v := b.cells[y][x]
	if v == emptyCell {
		return 0, false
	}
	return tetromino.Tetromino(v), true
}

// Fits reports whether every cell of the piece lies inside the playfield and
// on empty cells. Cells above the top edge are allowed so pieces can spawn
// partially hidden.
func (b *Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y < 0 {
			continue
		}
		if b.cells[c.Y][c.X] != emptyCell {
			return false
		}
	}
	return true
}

// Lock writes the piece into the grid. Cells above the top edge are dropped.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y < 0 || c.Y >= b.height {
			continue
		}
		b.cells[c.Y][c.X] = int8(p.Kind)
	}
}

// ClearLines removes every full row and returns how many were cleared. With
// cascade set, surviving cells fall independently per column until they rest;
// otherwise whole rows shift down as a unit.
func (b *Board) ClearLines(cascade bool) int {
	cleared := 0
	for y := 0; y < b.height; y++ {
		if !b.rowFull(y) {
			continue
		}
		cleared++
		for x := 0; x < b.width; x++ {
			b.cells[y][x] = emptyCell
		}
		if !cascade {
			b.shiftDown(y)
		}
	}
	if cascade && cleared > 0 {
		b.settle()
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if b.cells[y][x] == emptyCell {
			return false
		}
	}
	return true
}

// shiftDown moves every row above y down one step, leaving row 0 empty.
func (b *Board) shiftDown(y int) {
	for row := y; row > 0; row-- {
		copy(b.cells[row], b.cells[row-1])
	}
	for x := 0; x < b.width; x++ {
		b.cells[0][x] = emptyCell
	}
}

// settle compacts each column so that filled cells rest at the bottom of the
// gaps beneath them.
func (b *Board) settle() {
	for x := 0; x < b.width; x++ {
		write := b.height - 1
		for y := b.height - 1; y >= 0; y-- {
			if b.cells[y][x] == emptyCell {
				continue
			}
			v := b.cells[y][x]
			b.cells[y][x] = emptyCell
			b.cells[write][x] = v
			write--
		}
	}
}
