package config

// SpeedRamp computes the scroll speed for a given tick.
// With a zero ramp (the default) the speed never changes.
type SpeedRamp struct {
	base float64
	cfg  DifficultyConfig
}

// NewSpeedRamp creates a ramp starting at base.
func NewSpeedRamp(base float64, cfg DifficultyConfig) SpeedRamp {
	return SpeedRamp{base: base, cfg: cfg}
}

// IsEnabled returns whether the speed grows over time.
func (r SpeedRamp) IsEnabled() bool {
	return r.cfg.SpeedRamp > 0
}

// Speed returns the scroll speed after the given number of ticks.
func (r SpeedRamp) Speed(ticks int) float64 {
	if !r.IsEnabled() {
		return r.base
	}
	speed := r.base + float64(ticks)*r.cfg.SpeedRamp
	if r.cfg.MaxSpeed > 0 && speed > r.cfg.MaxSpeed {
		speed = r.cfg.MaxSpeed
	}
	return speed
}
