// Package tetromino defines the seven piece types, the sequence decoder that
// maps an integer index onto one of the 5040 orderings of those types, and
// the bag randomizer built on top of it.
package tetromino

// Tetromino identifies one of the seven piece types, in canonical order.
type Tetromino int

const (
	I Tetromino = iota
	J
	L
	S
	Z
	T
	O
)

// Count is the number of distinct piece types.
const Count = 7

// String returns the single-letter name of the piece.
func (t Tetromino) String() string {
	switch t {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case S:
		return "S"
	case Z:
		return "Z"
	case T:
		return "T"
	case O:
		return "O"
	default:
		return "?"
	}
}

// All returns the piece types in canonical order.
func All() [Count]Tetromino {
	return [Count]Tetromino{I, J, L, S, Z, T, O}
}
