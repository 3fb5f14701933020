package antarctic

import (
	"testing"

	"github.com/vovakirdan/antarctic/internal/config"
)

func testPlayer() *Player {
	cfg := config.DefaultAntarcticConfig()
	return NewPlayer(cfg.Screen, cfg.Player)
}

func TestPlayerStartsCenteredAndResting(t *testing.T) {
	p := testPlayer()

	if p.X() != 0 || p.Height() != 0 || p.Airborne() {
		t.Errorf("new player = x %f, h %f, airborne %v", p.X(), p.Height(), p.Airborne())
	}
	r := p.Rect()
	if r.X != 380 || r.Y != 490 || r.W != 40 || r.H != 50 {
		t.Errorf("resting rect = %+v, expected {380 490 40 50}", r)
	}
}

func TestPlayerHandleInputClamps(t *testing.T) {
	p := testPlayer()

	for i := 0; i < 200; i++ {
		p.HandleInput(false, true)
		if p.X() < -1 || p.X() > 1 {
			t.Fatalf("x out of range after %d right steps: %f", i, p.X())
		}
	}
	if p.X() != 1 {
		t.Errorf("x = %f after holding right, expected 1", p.X())
	}

	for i := 0; i < 200; i++ {
		p.HandleInput(true, false)
	}
	if p.X() != -1 {
		t.Errorf("x = %f after holding left, expected -1", p.X())
	}

	// Both directions cancel out
	q := testPlayer()
	q.HandleInput(true, true)
	if q.X() != 0 {
		t.Errorf("holding both moved to %f", q.X())
	}
}

func TestPlayerRectFollowsLateralPosition(t *testing.T) {
	p := testPlayer()
	for i := 0; i < 50; i++ {
		p.HandleInput(false, true)
	}
	p.Advance()

	// x = 1.0 maps to 400 + 266
	if cx, _ := p.Rect().Center(); cx != 666 {
		t.Errorf("center x = %d, expected 666", cx)
	}
}

func TestPlayerJumpArc(t *testing.T) {
	p := testPlayer()

	if !p.Jump() {
		t.Fatal("Jump from the ground should start a jump")
	}
	if p.Jump() {
		t.Error("Jump while airborne should be a no-op")
	}

	p.Advance()
	if p.Height() != 20 {
		t.Errorf("height after first tick = %f, expected 20", p.Height())
	}
	if p.Rect().Y != 470 {
		t.Errorf("rect y after first tick = %d, expected 470", p.Rect().Y)
	}

	// Repeated jump presses mid-air do not change the arc
	ticks := 1
	for p.Airborne() {
		p.Jump()
		p.Advance()
		ticks++
		if p.Height() < 0 {
			t.Fatalf("height went negative at tick %d", ticks)
		}
		if ticks > 100 {
			t.Fatal("player never landed")
		}
	}

	if ticks != 41 {
		t.Errorf("landed after %d ticks, expected 41", ticks)
	}
	if p.Rect().Y != 490 {
		t.Errorf("rect y after landing = %d, expected 490", p.Rect().Y)
	}
	if !p.Jump() {
		t.Error("Jump after landing should start a new jump")
	}
}
