// Package window runs a game in a desktop window with ebiten.
// Unlike the terminal, the window reports real key-up events, so
// steering keys are read as held state directly.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/antarctic/internal/core"
	"github.com/vovakirdan/antarctic/internal/replay"
)

// Options configures a window session.
type Options struct {
	Width, Height int            // Logical screen size, the game's virtual pixels
	Scale         float64        // Window size multiplier
	Logger        *log.Logger    // Defaults to discarding everything
	Journal       replay.Journal // Where finished rounds are saved; nil disables recording
	ConfigYAML    []byte         // Game configuration stored with each recorded round
}

// keyBindings lists the keys of each action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionJump:    {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
}

// heldActions are read as key state rather than key presses.
var heldActions = []core.Action{core.ActionLeft, core.ActionRight}

// discreteActions fire once per key press.
var discreteActions = []core.Action{core.ActionJump, core.ActionRestart, core.ActionQuit, core.ActionPause}

// Runner adapts a core.Game to ebiten.Game. ebiten calls Update at a
// fixed 60 TPS, one simulation step each.
type Runner struct {
	game     core.Game
	surface  *PixelSurface
	opts     Options
	logger   *log.Logger
	recorder *replay.Recorder
}

// NewRunner resets the game and prepares it for the window loop.
func NewRunner(game core.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	state := game.State()
	logger.Info("round started", "game", game.ID(), "round", state.Round, "seed", state.Seed)

	return &Runner{
		game:     game,
		surface:  NewPixelSurface(opts.Width, opts.Height),
		opts:     opts,
		logger:   logger,
		recorder: replay.NewRecorder(state),
	}
}

// readInput builds the input frame for this tick from the keyboard.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range heldActions {
		for _, k := range keyBindings[a] {
			if ebiten.IsKeyPressed(k) {
				in.Hold(a)
			}
		}
	}
	for _, a := range discreteActions {
		for _, k := range keyBindings[a] {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(a)
			}
		}
	}
	if ebiten.IsWindowBeingClosed() {
		in.Set(core.ActionQuit)
	}
	return in
}

// Update advances the game by one step.
func (r *Runner) Update() error {
	in := readInput()
	result := r.game.Step(in)
	s := result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventRoundStarted:
			r.logger.Info("round started", "game", r.game.ID(), "round", s.Round, "seed", s.Seed)
		case core.EventCrashed:
			r.logger.Info("game over", "round", s.Round, "score", ev.Score, "ticks", s.Ticks)
		case core.EventTerminated:
			r.logger.Info("quit", "round", s.Round, "score", ev.Score)
		}
	}

	if round, done := r.recorder.Observe(in, result); done && r.opts.Journal != nil {
		round.Config = r.opts.ConfigYAML
		if id, err := r.opts.Journal.SaveRound(r.game.ID(), round); err != nil {
			r.logger.Error("could not save round", "error", err)
		} else {
			r.logger.Info("round saved", "id", id, "steps", round.Steps)
		}
	}

	if s.Terminated {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the game into the window.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.surface.Target(screen)
	r.game.Render(r.surface)
}

// Layout keeps the logical screen at the game's virtual size; ebiten
// scales it to the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return r.opts.Width, r.opts.Height
}

// Run opens the window and blocks until the game terminates.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(opts.Width)*opts.Scale), int(float64(opts.Height)*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	// RunGame returns nil when Update reports ebiten.Termination
	return ebiten.RunGame(NewRunner(game, cfg, opts))
}
