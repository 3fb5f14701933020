package antarctic

import (
	"github.com/vovakirdan/antarctic/internal/config"
	"github.com/vovakirdan/antarctic/internal/core"
)

// Player is the penguin. It stays at a fixed depth near the camera, so only
// its lateral position and jump height change; it is not projected.
type Player struct {
	x        float64 // Lateral position in [-1, 1], 0 = track center
	height   float64 // Height above the resting baseline, in pixels
	velocity float64 // Vertical velocity while airborne
	airborne bool

	cfg     config.PlayerConfig
	centerX float64 // Screen x of lateral position 0
	span    float64 // Screen pixels covered by lateral position 1.0
	baseY   float64 // Screen y of the penguin's feet when resting
	rect    core.Rect
}

// NewPlayer creates a resting player at the track center.
func NewPlayer(screen config.ScreenConfig, cfg config.PlayerConfig) *Player {
	p := &Player{
		cfg:     cfg,
		centerX: float64(screen.Width / 2),
		span:    float64(int(float64(screen.Width) * cfg.TrackSpan)),
		baseY:   float64(screen.Height - screen.PlayerBaseOffset),
	}
	p.place()
	return p
}

// HandleInput steers by one step per held direction and keeps the
// lateral position on the track.
func (p *Player) HandleInput(left, right bool) {
	if left {
		p.x -= p.cfg.Speed
	}
	if right {
		p.x += p.cfg.Speed
	}
	p.x = core.ClampF(p.x, -1.0, 1.0)
}

// Jump starts a jump from the ground. It reports false while already airborne.
func (p *Player) Jump() bool {
	if p.airborne {
		return false
	}
	p.airborne = true
	p.velocity = p.cfg.JumpVelocity
	return true
}

// Advance applies jump physics and refreshes the screen placement.
func (p *Player) Advance() {
	if p.airborne {
		p.velocity, p.height = Integrate(p.velocity, p.height, p.cfg.Gravity)
		if p.height <= 0 {
			p.height = 0
			p.velocity = 0
			p.airborne = false
		}
	}
	p.place()
}

// place recomputes the bounding box from lateral position and height.
func (p *Player) place() {
	cx := p.centerX + p.x*p.span
	p.rect = core.RectMidBottom(cx, p.baseY-p.height, p.cfg.Width, p.cfg.Height)
}

// X returns the lateral position.
func (p *Player) X() float64 { return p.x }

// Height returns the current jump height.
func (p *Player) Height() float64 { return p.height }

// Airborne reports whether the player is mid-jump.
func (p *Player) Airborne() bool { return p.airborne }

// Rect returns the player's screen bounds.
func (p *Player) Rect() core.Rect { return p.rect }
