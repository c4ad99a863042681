package tetromino

import "testing"

func TestDecodeZeroIsIdentity(t *testing.T) {
	want := [Count]Tetromino{I, J, L, S, Z, T, O}
	if got := Decode(0); got != want {
		t.Errorf("Decode(0) = %v, want %v", got, want)
	}
}

func TestDecodeLastIsReversed(t *testing.T) {
	want := [Count]Tetromino{O, T, Z, S, L, J, I}
	if got := Decode(SequenceCount - 1); got != want {
		t.Errorf("Decode(%d) = %v, want %v", SequenceCount-1, got, want)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	for _, index := range []int{0, 1, 719, 720, 2519, 5039} {
		if Decode(index) != Decode(index) {
			t.Errorf("Decode(%d) not stable across calls", index)
		}
	}
}

// Every index yields a full permutation, and no two indices yield the same one.
func TestDecodeIsBijective(t *testing.T) {
	seen := make(map[[Count]Tetromino]int, SequenceCount)
	for index := 0; index < SequenceCount; index++ {
		seq := Decode(index)

		var used [Count]bool
		for _, p := range seq {
			if p < 0 || int(p) >= Count {
				t.Fatalf("Decode(%d) produced invalid piece %d", index, p)
			}
			if used[p] {
				t.Fatalf("Decode(%d) = %v repeats %v", index, seq, p)
			}
			used[p] = true
		}

		if prev, dup := seen[seq]; dup {
			t.Fatalf("Decode(%d) and Decode(%d) both yield %v", prev, index, seq)
		}
		seen[seq] = index
	}
	if len(seen) != SequenceCount {
		t.Errorf("got %d distinct sequences, want %d", len(seen), SequenceCount)
	}
}

func TestDecodePanicsOutOfRange(t *testing.T) {
	for _, index := range []int{-1, SequenceCount, SequenceCount * 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Decode(%d) should panic", index)
				}
			}()
			Decode(index)
		}()
	}
}

func TestTetrominoString(t *testing.T) {
	tests := []struct {
		piece Tetromino
		want  string
	}{
		{I, "I"}, {J, "J"}, {L, "L"}, {S, "S"}, {Z, "Z"}, {T, "T"}, {O, "O"},
	}
	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.piece, got, tt.want)
		}
	}
}
