// Package replay records the input of played rounds and plays it back.
// A round is fully determined by its seed and its input frames, so a
// recording holds only the steps where something was pressed or held.
package replay

import (
	"github.com/vovakirdan/antarctic/internal/core"
)

// Frame is the input fed to one simulation step.
type Frame struct {
	Step    int           `msgpack:"s"`           // Step index within the round, from 0
	Pressed []core.Action `msgpack:"p,omitempty"` // Discrete actions
	Held    []core.Action `msgpack:"h,omitempty"` // Held steering keys
}

// FrameFromInput captures an input frame for the given step.
func FrameFromInput(step int, in core.InputFrame) Frame {
	return Frame{
		Step:    step,
		Pressed: in.Pressed(),
		Held:    in.HeldActions(),
	}
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range f.Pressed {
		in.Set(a)
	}
	for _, a := range f.Held {
		in.Hold(a)
	}
	return in
}

// Outcome is how a recorded round ended.
type Outcome string

const (
	OutcomeCrashed Outcome = "crashed" // Penguin fell into an ice hole
	OutcomeQuit    Outcome = "quit"    // Player left mid-round
)

// Round is one recorded round.
type Round struct {
	Seed    int64
	Steps   int // Step calls from round start to its end, inclusive
	Ticks   int // Simulated ticks reported by the game at the end
	Score   int
	Outcome Outcome
	Frames  []Frame // Non-empty inputs, in step order
	Config  []byte  // YAML of the game configuration the round was played with
}

// Journal persists finished rounds.
type Journal interface {
	SaveRound(gameID string, r Round) (int64, error)
}
