package antarctic

import "github.com/vovakirdan/antarctic/internal/config"

// Projection is the screen placement of a world point.
// X and Y locate the mid-bottom anchor of the object's bounding box.
type Projection struct {
	X, Y  float64
	Scale float64
}

// Projector maps track coordinates to screen coordinates with a
// pinhole-camera approximation: nearer objects are larger and lower.
type Projector struct {
	width    float64
	height   float64
	horizon  float64
	k        float64
	minDepth float64
}

// NewProjector creates a projector for the given screen and camera settings.
func NewProjector(screen config.ScreenConfig, proj config.ProjectionConfig) Projector {
	return Projector{
		width:    float64(screen.Width),
		height:   float64(screen.Height),
		horizon:  float64(screen.HorizonY),
		k:        proj.Scale,
		minDepth: proj.MinDepth,
	}
}

// Project maps lateral offset wx, depth wz and airborne height h to the screen.
// Depth is clamped to the minimum depth so the scale never diverges.
func (p Projector) Project(wx, wz, h float64) Projection {
	if wz < p.minDepth {
		wz = p.minDepth
	}
	scale := p.k / wz
	halfW := p.width / 2
	return Projection{
		X:     halfW + wx*halfW*scale,
		Y:     p.horizon + (p.height-p.horizon)*scale - h*scale,
		Scale: scale,
	}
}

// ScaledSize scales base dimensions, flooring each side at 1 so images
// never become zero-area.
func ScaledSize(w, h int, scale float64) (int, int) {
	sw := int(float64(w) * scale)
	sh := int(float64(h) * scale)
	if sw < 1 {
		sw = 1
	}
	if sh < 1 {
		sh = 1
	}
	return sw, sh
}
