package tui

import "github.com/vovakirdan/antarctic/internal/core"

// HoldTracker emulates held keys on terminals that only report presses.
// A key counts as down for ttl ticks after its latest press; the key
// repeat of a held key keeps refreshing it.
type HoldTracker struct {
	ttl       int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker that keeps keys down for ttl ticks.
func NewHoldTracker(ttl int) *HoldTracker {
	if ttl < 1 {
		ttl = 1
	}
	return &HoldTracker{
		ttl:       ttl,
		remaining: make(map[core.Action]int),
	}
}

// Press marks an action as down, restarting its countdown.
// Pressing one direction releases the opposite one.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	h.remaining[a] = h.ttl
}

// Apply marks every live action as held in frame and counts one tick down.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}
