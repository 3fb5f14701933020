package core

// Game is the core interface that a game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	// Used for CLI output and the replay journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start; the RuntimeConfig provides the RNG seed,
	// and a zero seed asks the game to pick one from the clock.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in InputFrame) StepResult

	// Render draws the current game state onto the surface.
	Render(dst Surface)

	// State returns the current game state.
	State() GameState
}
