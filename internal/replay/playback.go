package replay

import (
	"fmt"

	"github.com/vovakirdan/antarctic/internal/core"
)

// Cursor yields a round's input step by step, empty frames included.
type Cursor struct {
	round Round
	step  int
	next  int // Index of the next recorded frame
}

// NewCursor starts at the first step of a round.
func NewCursor(round Round) *Cursor {
	return &Cursor{round: round}
}

// Next returns the input for the next step, or false once the round is over.
func (c *Cursor) Next() (core.InputFrame, bool) {
	if c.step >= c.round.Steps {
		return core.InputFrame{}, false
	}
	in := core.NewInputFrame()
	if c.next < len(c.round.Frames) && c.round.Frames[c.next].Step == c.step {
		in = c.round.Frames[c.next].Input()
		c.next++
	}
	c.step++
	return in, true
}

// Step returns how many steps have been handed out.
func (c *Cursor) Step() int {
	return c.step
}

// Done reports whether every step has been handed out.
func (c *Cursor) Done() bool {
	return c.step >= c.round.Steps
}

// Play resets the game with the round's seed and feeds it every recorded step.
// It returns the state after the last step.
func Play(g core.Game, runtime core.RuntimeConfig, round Round) core.GameState {
	runtime.Seed = round.Seed
	g.Reset(runtime)

	state := g.State()
	c := NewCursor(round)
	for {
		in, ok := c.Next()
		if !ok {
			break
		}
		state = g.Step(in).State
	}
	return state
}

// Mismatch describes how a replayed round diverged from its recording.
type Mismatch struct {
	Field    string
	Recorded any
	Replayed any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: recorded %v, replayed %v", m.Field, m.Recorded, m.Replayed)
}

// Verify replays a round and compares the outcome with what was recorded.
// An empty result means the recording reproduces exactly.
func Verify(g core.Game, runtime core.RuntimeConfig, round Round) []Mismatch {
	s := Play(g, runtime, round)

	var out []Mismatch
	if s.Score != round.Score {
		out = append(out, Mismatch{"score", round.Score, s.Score})
	}
	if s.Ticks != round.Ticks {
		out = append(out, Mismatch{"ticks", round.Ticks, s.Ticks})
	}

	var outcome Outcome
	switch {
	case s.GameOver:
		outcome = OutcomeCrashed
	case s.Terminated:
		outcome = OutcomeQuit
	}
	if outcome != round.Outcome {
		out = append(out, Mismatch{"outcome", round.Outcome, outcome})
	}
	return out
}
