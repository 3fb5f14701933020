package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int   // Current score
	GameOver   bool  // Whether the round has ended
	Paused     bool  // Whether the game is paused
	Terminated bool  // Whether the player asked to leave; the platform should stop
	Round      int   // 1-based round number, incremented on every restart
	Seed       int64 // RNG seed the current round was started with
	Ticks      int   // Simulation ticks advanced in the current round
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventFishCollected
	EventCrashed
	EventTerminated
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round_started"
	case EventFishCollected:
		return "fish_collected"
	case EventCrashed:
		return "crashed"
	case EventTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence reported alongside a step result.
type Event struct {
	Kind  EventKind
	Score int // Score after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
