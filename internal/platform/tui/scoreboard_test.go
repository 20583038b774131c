package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardLoadsRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRound("snake", core.RoundResult{Score: 30, Length: 6, Cause: "wall"})
	store.SaveRound("snake", core.RoundResult{Score: 90, Length: 12, Cause: "lives"})

	m := NewScoreboardModel(store, "snake", "Snake", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, want 2", len(rows))
	}
	if rows[0][1] != "90" || rows[0][2] != "12" || rows[0][3] != "lives" {
		t.Errorf("first row = %v", rows[0])
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Snake") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "Rounds:") {
		t.Error("wide view should show the stats sidebar")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "snake", "Snake", 60, 20)
	if len(m.table.Rows()) != 0 {
		t.Error("expected no rows without a store")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("expected empty message")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "snake", "Snake", 60, 20)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(ScoreboardModel).quitting {
		t.Error("model should be quitting")
	}
}
