package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.RecordRun(Run{GameID: "chase", Score: 100, Outcome: OutcomeWon}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := b.AllRuns()
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("a new session should start empty, got %d runs", len(runs))
	}
}

func TestStoreRecordAndTopRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	inputs := []Run{
		{GameID: "chase", Score: 100, Outcome: OutcomeLost, CreatedAt: base},
		{GameID: "chase", Score: 50, Outcome: OutcomeLost, CreatedAt: base.Add(time.Second)},
		{GameID: "chase", Score: 200, Outcome: OutcomeWon, Ticks: 900, Duration: 15 * time.Second, CreatedAt: base.Add(2 * time.Second)},
		{GameID: "chase_tiny", Score: 500, Outcome: OutcomeWon, CreatedAt: base.Add(3 * time.Second)},
	}
	for _, r := range inputs {
		id, err := store.RecordRun(r)
		if err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
		if id == uuid.Nil {
			t.Error("RecordRun() should assign an id")
		}
	}

	runs, err := store.TopRuns("chase", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}

	top := runs[0]
	if top.Outcome != OutcomeWon || top.Ticks != 900 || top.Duration != 15*time.Second {
		t.Errorf("top run = %+v, expected won/900 ticks/15s", top)
	}
	if !top.CreatedAt.Equal(base.Add(2 * time.Second)) {
		t.Errorf("CreatedAt = %v, expected %v", top.CreatedAt, base.Add(2*time.Second))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.RecordRun(Run{GameID: "chase", Score: i * 10, Outcome: OutcomeLost}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("chase", 5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 190 {
		t.Errorf("Expected highest score to be 190, got %d", runs[0].Score)
	}

	runs, err = store.TopRuns("chase", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 10 {
		t.Errorf("limit 0 should default to 10, got %d", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty board, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.RecordRun(Run{GameID: "chase", Score: score, Outcome: OutcomeLost})
	}

	high, err = store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(Run{GameID: "chase", Score: 100, Outcome: OutcomeLost})
	store.RecordRun(Run{GameID: "chase_tiny", Score: 70, Outcome: OutcomeWon})

	if err := store.Clear("chase"); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if runs, _ := store.TopRuns("chase", 10); len(runs) != 0 {
		t.Errorf("Expected no chase runs after Clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("chase_tiny", 10); len(runs) != 1 {
		t.Errorf("Clear should not touch other games, got %d runs", len(runs))
	}

	if err := store.Clear(""); err != nil {
		t.Fatalf("Clear(\"\") failed: %v", err)
	}
	if runs, _ := store.AllRuns(); len(runs) != 0 {
		t.Errorf("Expected empty board, got %d runs", len(runs))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	store.RecordRun(Run{GameID: "chase", Score: 100, Outcome: OutcomeLost, CreatedAt: base})
	store.RecordRun(Run{GameID: "chase", Score: 300, Outcome: OutcomeWon, CreatedAt: base.Add(time.Minute)})
	store.RecordRun(Run{GameID: "chase_cross", Score: 40, Outcome: OutcomeQuit, CreatedAt: base})

	stats, err := store.Stats("chase")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Wins != 1 || stats.HighScore != 300 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("AvgScore/TotalScore = %v/%d, expected 200/400", stats.AvgScore, stats.TotalScore)
	}
	if !stats.LastPlayed.Equal(base.Add(time.Minute)) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, base.Add(time.Minute))
	}

	empty, err := store.Stats("chase_tiny")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() for unplayed game = %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 games, got %d", len(all))
	}
	if all["chase_cross"] == nil || all["chase_cross"].Wins != 0 {
		t.Errorf("chase_cross stats = %+v", all["chase_cross"])
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	for i, score := range []int{300, 10, 120} {
		r := Run{GameID: "chase_cross", Score: score, Outcome: OutcomeLost, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	// Same timestamp as the last run: insertion order breaks the tie.
	if _, err := store.RecordRun(Run{GameID: "chase_cross", Score: 5, Outcome: OutcomeQuit, CreatedAt: base.Add(2 * time.Minute)}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("chase_cross", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	var got []int
	for _, r := range runs {
		got = append(got, r.Score)
	}
	if len(got) != 3 || got[0] != 5 || got[1] != 120 || got[2] != 10 {
		t.Errorf("RecentRuns() scores = %v, expected [5 120 10]", got)
	}

	if runs, _ := store.RecentRuns("chase", 0); len(runs) != 0 {
		t.Errorf("RecentRuns() for an unplayed maze = %d runs, expected 0", len(runs))
	}
}
