package replay

import (
	"github.com/vovakirdan/antarctic/internal/core"
)

// Recorder follows a running game and cuts its input into rounds.
// Feed it every step; it hands back a Round when one ends.
type Recorder struct {
	round  int
	seed   int64
	step   int
	frames []Frame
	active bool
}

// NewRecorder starts recording from the state right after Reset.
func NewRecorder(initial core.GameState) *Recorder {
	r := &Recorder{}
	r.begin(initial)
	return r
}

func (r *Recorder) begin(s core.GameState) {
	r.round = s.Round
	r.seed = s.Seed
	r.step = 0
	r.frames = nil
	r.active = !s.GameOver && !s.Terminated
}

// Active reports whether a round is being recorded.
func (r *Recorder) Active() bool {
	return r.active
}

// Observe records the input of one step and the state it produced.
// It returns the finished round on the step that ended it.
// The restart input that opens a new round belongs to neither round.
func (r *Recorder) Observe(in core.InputFrame, res core.StepResult) (Round, bool) {
	s := res.State
	if s.Round != r.round {
		r.begin(s)
		return Round{}, false
	}
	if !r.active {
		return Round{}, false
	}

	if !in.Empty() {
		r.frames = append(r.frames, FrameFromInput(r.step, in))
	}
	r.step++

	var outcome Outcome
	switch {
	case s.GameOver:
		outcome = OutcomeCrashed
	case s.Terminated:
		outcome = OutcomeQuit
	default:
		return Round{}, false
	}

	r.active = false
	return Round{
		Seed:    r.seed,
		Steps:   r.step,
		Ticks:   s.Ticks,
		Score:   s.Score,
		Outcome: outcome,
		Frames:  r.frames,
	}, true
}
