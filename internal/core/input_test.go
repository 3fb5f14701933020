package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionLeft)

	if !f.Has(ActionJump) {
		t.Error("Has(Jump) should be true after Set")
	}
	if f.Has(ActionLeft) {
		t.Error("held actions should not be reported as pressed")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("IsHeld(Left) should be true after Hold")
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("frame should be empty after Clear, pressed=%v held=%v", f.Pressed(), f.HeldActions())
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionRight) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionRestart)
	f.Hold(ActionRight)
	if !f.Has(ActionRestart) || !f.IsHeld(ActionRight) {
		t.Error("zero frame should allocate on first write")
	}
}

func TestInputFrameSortedLists(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionJump)
	f.Hold(ActionRight)
	f.Hold(ActionLeft)

	pressed := f.Pressed()
	if len(pressed) != 2 || pressed[0] != ActionJump || pressed[1] != ActionPause {
		t.Errorf("Pressed() = %v, expected [Jump Pause]", pressed)
	}
	held := f.HeldActions()
	if len(held) != 2 || held[0] != ActionLeft || held[1] != ActionRight {
		t.Errorf("HeldActions() = %v, expected [Left Right]", held)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionLeft)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionJump) || !c.IsHeld(ActionLeft) {
		t.Error("clone should not share storage with the original")
	}
}

func TestPaletteRoundTrip(t *testing.T) {
	p := Palette()
	if _, _, _, a := p[0].RGBA(); a != 0 {
		t.Errorf("palette index 0 should be transparent, alpha=%d", a)
	}

	for _, c := range []Color{ColorDefault, ColorOrange, ColorBlack, ColorSilver} {
		idx := PaletteIndex(c)
		back, ok := PaletteColor(idx)
		if !ok || back != c {
			t.Errorf("PaletteColor(PaletteIndex(%d)) = %d, %v", c, back, ok)
		}
		if p[idx] != c.RGBA() {
			t.Errorf("palette entry %d does not match color %d", idx, c)
		}
	}

	if _, ok := PaletteColor(0); ok {
		t.Error("index 0 should not map to a color")
	}
}
