package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lindabaloyi/official-casino-game-sub001/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, score := range []int{6, 11, 3} {
		if _, err := store.SaveScore("cassino", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	results := []storage.RoundResult{
		{GameID: "cassino", PlayerPoints: 7, CPUPoints: 4, Winner: "player"},
		{GameID: "cassino", PlayerPoints: 2, CPUPoints: 9, Winner: "cpu"},
	}
	for _, r := range results {
		if _, err := store.SaveRoundResult(r); err != nil {
			t.Fatalf("SaveRoundResult() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardLoadsScores(t *testing.T) {
	store := seededStore(t)
	m := NewScoreboardModel(store, "cassino", "Cassino", 80, 24)

	if m.view != viewScores {
		t.Fatal("scoreboard should open on the scores view")
	}
	if len(m.scores) != 3 {
		t.Errorf("loaded %d scores, expected 3", len(m.scores))
	}
	if len(m.table.Rows()) != 3 {
		t.Errorf("table has %d rows, expected 3", len(m.table.Rows()))
	}
	// Descending order
	if m.scores[0].Score != 11 {
		t.Errorf("top score = %d, expected 11", m.scores[0].Score)
	}
}

func TestScoreboardToggleShowsRounds(t *testing.T) {
	store := seededStore(t)
	m := NewScoreboardModel(store, "cassino", "Cassino", 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatal("Update should return a ScoreboardModel")
	}

	if m.view != viewRounds {
		t.Fatal("tab should switch to the rounds view")
	}
	if len(m.table.Rows()) != 2 {
		t.Errorf("rounds table has %d rows, expected 2", len(m.table.Rows()))
	}
	if m.wins["player"] != 1 || m.wins["cpu"] != 1 {
		t.Errorf("unexpected win counts: %v", m.wins)
	}

	// Toggling again returns to scores
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != viewScores {
		t.Error("second tab should switch back to scores")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	store := seededStore(t)

	m := NewScoreboardModel(store, "cassino", "Cassino", 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should mark the model as going back")
	}

	m = NewScoreboardModel(store, "cassino", "Cassino", 80, 24)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("ctrl+c should mark the model as quitting")
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewScoreboardModel(store, "cassino", "Cassino", 80, 24)
	if len(m.table.Rows()) != 0 {
		t.Errorf("empty store should yield no rows, got %d", len(m.table.Rows()))
	}
	if got := m.renderTableContent(); got == "" {
		t.Error("empty view should render a placeholder message")
	}
}
