package game

import "github.com/vovakirdan/tui-tetris/internal/tetromino"

// Point represents a 2D coordinate.
type Point struct {
	X, Y int
}

// rotationCount is the number of orientations each piece cycles through.
const rotationCount = 4

// pieceCells is the number of board cells every piece occupies.
const pieceCells = 4

// shapes holds the occupied cells of every piece at every orientation,
// expressed inside a 4x4 box anchored at the piece position. Orientation 0 is
// the spawn orientation; each step clockwise advances the index by one.
var shapes = [tetromino.Count][rotationCount][pieceCells]Point{
	tetromino.I: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	tetromino.J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	tetromino.L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	tetromino.S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	tetromino.Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	tetromino.T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	tetromino.O: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
}

// Piece is a falling tetromino: its kind, orientation, and the board position
// of its 4x4 bounding box.
type Piece struct {
	Kind     tetromino.Tetromino
	Rotation int
	X, Y     int
}

// Cells returns the board coordinates currently occupied by the piece.
func (p Piece) Cells() [pieceCells]Point {
	cells := shapes[p.Kind][p.Rotation]
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Rotated returns the piece turned the given number of clockwise steps.
// Negative steps turn anticlockwise.
func (p Piece) Rotated(steps int) Piece {
	p.Rotation = ((p.Rotation+steps)%rotationCount + rotationCount) % rotationCount
	return p
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
