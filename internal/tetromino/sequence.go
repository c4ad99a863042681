package tetromino

import "fmt"

// SequenceCount is the number of distinct orderings of the seven piece
// types: 7! = 5040. Valid sequence indices are [0, SequenceCount).
const SequenceCount = 5040

// factorials holds 6! down to 1!, the place values of the factorial number
// system digits consumed by Decode.
var factorials = [Count - 1]int{720, 120, 24, 6, 2, 1}

// Decode maps a sequence index bijectively onto an ordering of the seven
// piece types using a factorial-number-system (Lehmer code) expansion. The
// index is divided by 6!, 5!, ..., 1! in turn; each quotient selects, among
// the piece types not yet emitted, the quotient-th one in canonical order,
// and the remainder carries into the next step. The seventh piece is the one
// left over.
//
// Decode is pure and stateless; it is safe to call from any number of
// goroutines. An index outside [0, SequenceCount) is a programming error and
// panics.
func Decode(index int) [Count]Tetromino {
	if index < 0 || index >= SequenceCount {
		panic(fmt.Sprintf("tetromino: sequence index %d out of range [0, %d)", index, SequenceCount))
	}

	var seq [Count]Tetromino
	var used [Count]bool
	rem := index
	for i, place := range factorials {
		digit := rem / place
		rem -= digit * place
		p := nthUnused(&used, digit)
		used[p] = true
		seq[i] = Tetromino(p)
	}

	// Exactly one piece remains unused after six selections.
	for p, u := range used {
		if !u {
			seq[Count-1] = Tetromino(p)
			break
		}
	}
	return seq
}

// nthUnused returns the index of the n-th (0-based) unused entry, scanning
// in canonical order. The caller guarantees at least n+1 unused entries.
func nthUnused(used *[Count]bool, n int) int {
	for i := range used {
		if used[i] {
			continue
		}
		if n == 0 {
			return i
		}
		n--
	}
	panic("tetromino: no unused piece left")
}
