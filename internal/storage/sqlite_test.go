package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []Score{
		{Mode: "modern", Score: 300, Lines: 3, Level: 0},
		{Mode: "modern", Score: 900, Lines: 9, Level: 1},
		{Mode: "classic", Score: 500, Lines: 5, Level: 0},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	entries, err := store.TopScores("modern", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d modern scores, want 2", len(entries))
	}
	if entries[0].Score != 900 || entries[1].Score != 300 {
		t.Errorf("scores not ordered descending: %d, %d", entries[0].Score, entries[1].Score)
	}
	if entries[0].Lines != 9 || entries[0].Level != 1 {
		t.Errorf("lines/level not persisted: %+v", entries[0])
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d scores across modes, want 3", len(all))
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(Score{Mode: "modern", Score: i * 100}); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	entries, err := store.TopScores("modern", 5)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d entries, want limit of 5", len(entries))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("modern")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, want 0", high)
	}

	store.SaveScore(Score{Mode: "modern", Score: 700})
	store.SaveScore(Score{Mode: "classic", Score: 1200})

	high, err = store.HighScore("modern")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 700 {
		t.Errorf("modern high score = %d, want 700", high)
	}

	high, err = store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore all: %v", err)
	}
	if high != 1200 {
		t.Errorf("overall high score = %d, want 1200", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(Score{Mode: "modern", Score: 100})
	store.SaveScore(Score{Mode: "classic", Score: 200})

	if err := store.ClearScores("modern"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}
	entries, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 1 || entries[0].Mode != "classic" {
		t.Errorf("clearing one mode should leave the other, got %+v", entries)
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore(Score{Mode: "modern", Score: 100, Lines: 2})
	store.SaveScore(Score{Mode: "modern", Score: 300, Lines: 6})

	stats, err := store.GetStats("modern")
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalLines != 8 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
}
