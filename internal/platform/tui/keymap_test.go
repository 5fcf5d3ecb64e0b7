package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"down", core.ActionDown, false},
		{"up", core.ActionRotateCW, false},
		{"z", core.ActionRotateCCW, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
		{"enter", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.key, action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.key, quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, k := range []string{"left", "up", "left", "x"} {
		if km.MapKeyToFrame(keyMsg(k), &frame) {
			t.Fatalf("%q should not quit", k)
		}
	}

	seq := frame.Sequence()
	expected := []core.Action{core.ActionLeft, core.ActionRotateCW, core.ActionLeft}
	if len(seq) != len(expected) {
		t.Fatalf("Sequence() = %v, expected %v", seq, expected)
	}
	for i := range expected {
		if seq[i] != expected[i] {
			t.Errorf("Sequence()[%d] = %v, expected %v", i, seq[i], expected[i])
		}
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be recorded in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"left", MenuActionLeft},
		{"right", MenuActionRight},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"q", MenuActionQuit},
		{"esc", MenuActionQuit},
		{"x", MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.action)
		}
	}
}
