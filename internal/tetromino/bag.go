package tetromino

import "math/rand"

// Bag yields pieces in uniformly random 7-piece cycles: every cycle contains
// each of the seven types exactly once. Instead of shuffling, it draws one
// sequence index per cycle from its random source and decodes it, so no
// shuffle state is kept between cycles.
type Bag struct {
	rng   *rand.Rand
	queue []Tetromino
}

// NewBag creates a bag seeded for deterministic piece sequences.
func NewBag(seed int64) *Bag {
	return &Bag{
		rng:   rand.New(rand.NewSource(seed)),
		queue: make([]Tetromino, 0, 2*Count),
	}
}

// Next removes and returns the next piece.
func (b *Bag) Next() Tetromino {
	b.ensure(1)
	t := b.queue[0]
	b.queue = b.queue[1:]
	return t
}

// Preview returns the next n upcoming pieces without consuming them.
// Lookahead may span into the following cycle.
func (b *Bag) Preview(n int) []Tetromino {
	b.ensure(n)
	out := make([]Tetromino, n)
	copy(out, b.queue[:n])
	return out
}

// ensure refills the queue until at least n pieces are buffered.
func (b *Bag) ensure(n int) {
	for len(b.queue) < n {
		seq := Decode(b.rng.Intn(SequenceCount))
		b.queue = append(b.queue, seq[:]...)
	}
}
