package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func menuUpdate(t *testing.T, m MenuModel, key string) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return mm, cmd
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	if len(m.items) < 2 {
		t.Fatalf("items = %v, expected both modes", m.items)
	}
	if m.items[0].GameID != "tetris" || m.items[1].GameID != "tetris_endless" {
		t.Errorf("items = %v, expected tetris then tetris_endless", m.items)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal)
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("Difficulty() = %q, expected normal", m.Difficulty())
	}

	m, _ = menuUpdate(t, m, "down")
	m, _ = menuUpdate(t, m, "right")
	m, cmd := menuUpdate(t, m, "enter")
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}

	result := m.Result()
	if result.Quit {
		t.Fatal("selection should not be a quit")
	}
	if result.GameID != "tetris_endless" {
		t.Errorf("GameID = %q, expected tetris_endless", result.GameID)
	}
	if result.Difficulty != config.DifficultyHard {
		t.Errorf("Difficulty = %q, expected hard", result.Difficulty)
	}
}

func TestMenuDifficultyWraps(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	m, _ = menuUpdate(t, m, "left")
	if m.Difficulty() != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, expected fixed after wrapping left", m.Difficulty())
	}
	m, _ = menuUpdate(t, m, "right")
	if m.Difficulty() != "" {
		t.Errorf("Difficulty() = %q, expected config settings after wrapping right", m.Difficulty())
	}
	m, _ = menuUpdate(t, m, "right")
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, expected easy", m.Difficulty())
	}
}

func TestMenuKeepsConfigDifficultyByDefault(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	if m.Difficulty() != "" {
		t.Errorf("Difficulty() = %q, expected no preset", m.Difficulty())
	}
	if !strings.Contains(m.View(), "Difficulty: < from config >") {
		t.Error("view should show that config settings are used")
	}

	m, _ = menuUpdate(t, m, "enter")
	if result := m.Result(); result.Quit || result.Difficulty != "" {
		t.Errorf("Result() = %+v, expected a selection without preset", result)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	m, _ = menuUpdate(t, m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range 10 {
		m, _ = menuUpdate(t, m, "down")
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	m, _ = menuUpdate(t, m, "q")
	if !m.Result().Quit {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}
