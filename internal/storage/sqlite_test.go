package storage

import (
	"path/filepath"
	"testing"
	"time"
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

func TestHighScoreDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("High score on fresh database = %d, want 0", high)
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore(42); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 42 {
		t.Errorf("High score = %d, want 42", high)
	}

	// Overwrites unconditionally; the policy lives with the caller
	if err := store.SetHighScore(7); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	high, _ = store.HighScore()
	if high != 7 {
		t.Errorf("High score after overwrite = %d, want 7", high)
	}
}

func TestHighScoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.SetHighScore(99); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 99 {
		t.Errorf("High score after reopen = %d, want 99", high)
	}
}

func TestRecordRunAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	scores := []int{5, 12, 3, 12, 8}
	for _, sc := range scores {
		if _, err := store.RecordRun(sc, time.Duration(sc)*time.Second); err != nil {
			t.Fatalf("RecordRun(%d): %v", sc, err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns returned %d entries, want 3", len(runs))
	}

	want := []int{12, 12, 8}
	for i, e := range runs {
		if e.Score != want[i] {
			t.Errorf("Run %d score = %d, want %d", i, e.Score, want[i])
		}
	}
	if runs[0].Duration != 12*time.Second {
		t.Errorf("Run 0 duration = %v, want 12s", runs[0].Duration)
	}
}

func TestTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.RecordRun(i, time.Second); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("TopRuns with zero limit returned %d entries, want 10", len(runs))
	}
}

func TestTopRunsEmpty(t *testing.T) {
	store := openTestStore(t)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("TopRuns on fresh database returned %d entries, want 0", len(runs))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{2, 4, 6} {
		if _, err := store.RecordRun(sc, time.Second); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.BestScore != 6 {
		t.Errorf("BestScore = %d, want 6", stats.BestScore)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %g, want 4", stats.AvgScore)
	}
	if stats.TotalScore != 12 {
		t.Errorf("TotalScore = %d, want 12", stats.TotalScore)
	}
}

func TestStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RunsCount != 0 || stats.BestScore != 0 || stats.TotalScore != 0 {
		t.Errorf("Stats on fresh database = %+v, want zeros", stats)
	}
}

func TestClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore(50); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	if _, err := store.RecordRun(50, time.Minute); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Runs after clear = %d, want 0", len(runs))
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 50 {
		t.Errorf("High score after clearing runs = %d, want 50", high)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parents: %v", err)
	}
	store.Close()
}
