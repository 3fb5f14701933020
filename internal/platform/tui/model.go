package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/antarctic/internal/core"
	"github.com/vovakirdan/antarctic/internal/replay"
)

// footerRows is the space kept under the playfield for the help line.
const footerRows = 1

// Options configures a terminal session.
type Options struct {
	VirtualW, VirtualH int            // Pixel space the game draws in
	HoldTicks          int            // How long a steering key stays down after a press
	Logger             *log.Logger    // Defaults to discarding everything
	Journal            replay.Journal // Where finished rounds are saved; nil disables recording
	ConfigYAML         []byte         // Game configuration stored with each recorded round
	Watch              *replay.Round  // Play this recording back instead of reading keys
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	surface    *CellSurface
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	recorder   *replay.Recorder
	cursor     *replay.Cursor // Non-nil in watch mode
	logger     *log.Logger
	quitting   bool
	watchPause bool
}

// NewModel creates a new Bubble Tea model for the given game and starts
// its first round, so the recorder sees the initial state.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		holds:      NewHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
	m.surface = NewCellSurface(m.screen, opts.VirtualW, opts.VirtualH)
	m.help.Width = cfg.ScreenW

	if opts.Watch != nil {
		cfg.Seed = opts.Watch.Seed
		m.config = cfg
		m.cursor = replay.NewCursor(*opts.Watch)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorder = replay.NewRecorder(m.gameState)
	m.logger.Info("round started", "game", game.ID(), "round", m.gameState.Round, "seed", m.gameState.Seed)

	return m
}

func playfieldRows(h int) int {
	return core.Max(1, h-footerRows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Playback only listens for quit and pause
	if m.cursor != nil {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.watchPause = !m.watchPause
		}
		return m, nil
	}

	// Quit goes through the game, which reports Terminated on the next tick
	m.keys.MapKeyToFrame(msg, &m.inputFrame, m.holds)
	return m, nil
}

// handleResize processes window resize events.
// The game draws in virtual pixels, so only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.cursor != nil {
		if !m.watchPause {
			if in, ok := m.cursor.Next(); ok {
				m.gameState = m.game.Step(in).State
			}
		}
		return m, tickCmd(m.config.TickRate)
	}

	m.holds.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result)

	// Keys held into a pause or a crash would otherwise still steer after it
	if m.gameState.GameOver || m.gameState.Paused {
		m.holds.Reset()
	}

	if round, done := m.recorder.Observe(m.inputFrame, result); done {
		m.saveRound(round)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.Terminated {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logEvents reports notable events of one step.
func (m Model) logEvents(result core.StepResult) {
	s := result.State
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventRoundStarted:
			m.logger.Info("round started", "game", m.game.ID(), "round", s.Round, "seed", s.Seed)
		case core.EventFishCollected:
			m.logger.Debug("fish collected", "score", ev.Score)
		case core.EventCrashed:
			m.logger.Info("game over", "round", s.Round, "score", ev.Score, "ticks", s.Ticks)
		case core.EventTerminated:
			m.logger.Info("quit", "round", s.Round, "score", ev.Score)
		}
	}
}

// saveRound writes a finished round to the journal.
// Failures are logged; play continues regardless.
func (m Model) saveRound(round replay.Round) {
	if m.opts.Journal == nil {
		return
	}
	round.Config = m.opts.ConfigYAML
	id, err := m.opts.Journal.SaveRound(m.game.ID(), round)
	if err != nil {
		m.logger.Error("could not save round", "error", err)
		return
	}
	m.logger.Info("round saved", "id", id, "steps", round.Steps, "frames", len(round.Frames))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.render()

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".antarctic", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render draws the game into the cell buffer.
func (m Model) render() {
	m.screen.Clear()
	m.game.Render(m.surface)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.footer())
}

// footer returns the help line, or playback progress in watch mode.
func (m Model) footer() string {
	if m.cursor == nil {
		return m.help.View(m.keys)
	}
	status := "playing"
	switch {
	case m.cursor.Done():
		status = "finished"
	case m.watchPause:
		status = "paused"
	}
	return fmt.Sprintf("replay %s  step %d/%d  score %d  •  p pause  •  q quit",
		status, m.cursor.Step(), m.opts.Watch.Steps, m.gameState.Score)
}

// State returns the last state the game reported.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
