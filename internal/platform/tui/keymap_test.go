package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/antarctic/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		held   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, true},
		{"a", runeKey('a'), core.ActionLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, true},
		{"d", runeKey('d'), core.ActionRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, held := km.MapKey(tc.msg)
			if action != tc.action || held != tc.held {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, held, tc.action, tc.held)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()
	holds := NewHoldTracker(4)

	km.MapKeyToFrame(runeKey('a'), &frame, holds)
	if frame.Has(core.ActionLeft) {
		t.Error("steering should not be a discrete action")
	}
	held := core.NewInputFrame()
	holds.Apply(&held)
	if !held.IsHeld(core.ActionLeft) {
		t.Error("steering should go to the hold tracker")
	}

	km.MapKeyToFrame(runeKey(' '), &frame, holds)
	if !frame.Has(core.ActionJump) {
		t.Error("space should set jump")
	}

	km.MapKeyToFrame(runeKey('q'), &frame, holds)
	if !frame.Has(core.ActionQuit) {
		t.Error("quit should reach the game through the frame")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 6 {
		t.Errorf("ShortHelp has %d bindings", len(km.ShortHelp()))
	}
	n := 0
	for _, group := range km.FullHelp() {
		n += len(group)
	}
	if n != 6 {
		t.Errorf("FullHelp has %d bindings", n)
	}
}
