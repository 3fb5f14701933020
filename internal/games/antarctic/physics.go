package antarctic

// Integrate advances a vertical jump by one tick.
// Height grows by the current velocity, then gravity is taken off the
// velocity. Falling below the ground clamps both height and velocity to zero.
func Integrate(velocity, height, gravity float64) (newVelocity, newHeight float64) {
	newHeight = height + velocity
	newVelocity = velocity - gravity
	if newHeight < 0 {
		return 0, 0
	}
	return newVelocity, newHeight
}
