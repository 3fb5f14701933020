package antarctic

// Outcome summarises one collision pass.
type Outcome struct {
	Crashed   bool // A grounded player touched an obstacle
	Collected int  // Fish collected this tick
	Points    int  // Score earned this tick
}

// Collide tests the player against every object inside the open depth
// band (near, far). Collected fish are removed from the field; obstacles
// stay and are tested again on the next tick.
func Collide(p *Player, f *Field, near, far float64, reward int) Outcome {
	var out Outcome
	var collected []*WorldObject

	for _, o := range f.Objects() {
		if o.Z <= near || o.Z >= far {
			continue
		}
		if !p.Rect().Intersects(o.Bounds()) {
			continue
		}
		switch o.Kind {
		case KindObstacle:
			if !p.Airborne() {
				out.Crashed = true
			}
		case KindFish:
			out.Collected++
			out.Points += reward
			collected = append(collected, o)
		}
	}

	for _, o := range collected {
		f.Remove(o)
	}
	return out
}
