// Package antarctic implements a pseudo-3D penguin runner.
// The penguin slides along a perspective track, jumps over ice holes and
// catches fish that leap out of them.
package antarctic

import (
	"fmt"
	"image"
	"time"

	"github.com/vovakirdan/antarctic/internal/config"
	"github.com/vovakirdan/antarctic/internal/core"
)

// Phase is the session state machine's current state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// Game implements the Antarctic runner session controller.
type Game struct {
	cfg     config.AntarcticConfig // Immutable after New
	runtime core.RuntimeConfig
	proj    Projector
	ramp    config.SpeedRamp
	sprites spriteSet

	player  *Player
	field   *Field
	spawner *Spawner

	phase      Phase
	paused     bool
	terminated bool
	score      int
	speed      float64 // Current scroll speed
	tickCount  int     // Ticks simulated in this round
	round      int
	seed       int64 // Seed of the current round
}

// New creates a game that plays by the given configuration.
// Call Reset before the first Step.
func New(cfg config.AntarcticConfig) *Game {
	proj := NewProjector(cfg.Screen, cfg.Projection)
	return &Game{
		cfg:     cfg,
		proj:    proj,
		ramp:    config.NewSpeedRamp(cfg.Session.ScrollSpeed, cfg.Difficulty),
		sprites: newSpriteSet(),
		field:   NewField(proj, cfg.Objects),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "antarctic"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Antarctic Adventure"
}

// Reset starts the first round with the runtime seed.
// A zero seed is replaced with one based on the current time.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	g.runtime = runtime
	g.round = 0
	g.terminated = false
	g.startRound(runtime.Seed)
}

// startRound builds a fresh round: score 0, no objects, penguin centered.
func (g *Game) startRound(seed int64) {
	g.round++
	g.seed = seed
	g.phase = PhaseRunning
	g.paused = false
	g.score = 0
	g.tickCount = 0
	g.speed = g.ramp.Speed(0)

	g.player = NewPlayer(g.cfg.Screen, g.cfg.Player)
	g.field.Reset()
	if g.spawner == nil {
		g.spawner = NewSpawner(seed, g.speed, g.cfg.Session, g.cfg.Objects)
	} else {
		g.spawner.Reset(seed, g.speed)
	}
}

// nextSeed derives the seed of the following round, so a whole play
// session is reproducible from its first seed.
func nextSeed(seed int64) int64 {
	return seed*6364136223846793005 + 1442695040888963407
}

// Step advances the game by one tick.
// Order while running: input, movement, spawning, collisions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.terminated {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.terminated = true
		return g.result(core.Event{Kind: core.EventTerminated, Score: g.score})
	}

	if g.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.startRound(nextSeed(g.seed))
			return g.result(core.Event{Kind: core.EventRoundStarted})
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	// Input
	g.player.HandleInput(in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight))
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}

	// Movement
	g.speed = g.ramp.Speed(g.tickCount)
	g.player.Advance()
	g.field.Advance(g.speed)

	// Spawning
	g.field.Add(g.spawner.Tick(g.speed)...)

	// Collisions
	var events []core.Event
	out := Collide(g.player, g.field, g.cfg.Session.CollisionNear, g.cfg.Session.CollisionFar, g.cfg.Session.FishReward)
	g.score += out.Points
	for i := 0; i < out.Collected; i++ {
		events = append(events, core.Event{Kind: core.EventFishCollected, Score: g.score})
	}
	if out.Crashed {
		g.phase = PhaseGameOver
		events = append(events, core.Event{Kind: core.EventCrashed, Score: g.score})
	}

	g.tickCount++
	return g.result(events...)
}

func (g *Game) result(events ...core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the backdrop, the objects far to near, the penguin and the HUD.
func (g *Game) Render(dst core.Surface) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	horizon := g.cfg.Screen.HorizonY

	// Backdrop: sky, snow, horizon and the two track edges
	dst.FillRect(image.Rect(0, 0, w, horizon), core.ColorSky)
	dst.FillRect(image.Rect(0, horizon, w, h), core.ColorBrightWhite)
	dst.DrawLine(0, horizon, w-1, horizon, core.ColorWhite)
	dst.DrawLine(w/2, horizon, 0, h, core.ColorBlack)
	dst.DrawLine(w/2, horizon, w, h, core.ColorBlack)

	for _, o := range DepthOrder(g.field.Objects()) {
		b := o.Bounds()
		dst.DrawImage(g.sprites.forKind(o.Kind).Raster(b.W, b.H), b.Min())
	}

	pr := g.player.Rect()
	dst.DrawImage(g.sprites.penguin.Raster(pr.W, pr.H), pr.Min())

	dst.DrawText(image.Pt(10, 10), fmt.Sprintf("Score: %d", g.score), core.ColorBlack)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBlue)
	}

	if g.phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", "Press 'R' to Restart", core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a two-line message around the screen center.
func (g *Game) drawCenteredMessage(dst core.Surface, title, subtitle string, titleColor core.Color) {
	cx, cy := g.cfg.Screen.Width/2, g.cfg.Screen.Height/2
	dst.DrawTextCentered(image.Pt(cx, cy-30), title, titleColor)
	dst.DrawTextCentered(image.Pt(cx, cy+20), subtitle, core.ColorBlack)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.phase == PhaseGameOver,
		Paused:     g.paused,
		Terminated: g.terminated,
		Round:      g.round,
		Seed:       g.seed,
		Ticks:      g.tickCount,
	}
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.AntarcticConfig {
	return g.cfg
}
