package antarctic

import (
	"math/rand"

	"github.com/vovakirdan/antarctic/internal/config"
)

// Spawner decides when a new ice hole appears and whether a fish comes with it.
type Spawner struct {
	timer   float64
	rng     *rand.Rand
	session config.SessionConfig
	objects config.ObjectsConfig
}

// NewSpawner creates a spawner with the given RNG seed, primed for speed.
func NewSpawner(seed int64, speed float64, session config.SessionConfig, objects config.ObjectsConfig) *Spawner {
	s := &Spawner{
		session: session,
		objects: objects,
	}
	s.Reset(seed, speed)
	return s
}

// Threshold returns the timer value a spawn must exceed at the given speed.
// Faster scrolling spawns more often; the +0.1 keeps speed 0 finite.
func (s *Spawner) Threshold(speed float64) float64 {
	return s.session.SpawnInterval / (speed + 0.1)
}

// Reset reseeds the RNG and pre-advances the timer so the first obstacle
// arrives after FirstSpawnDelay ticks instead of a full period.
func (s *Spawner) Reset(seed int64, speed float64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = s.Threshold(speed) - s.session.FirstSpawnDelay
	if s.timer < 0 {
		s.timer = 0
	}
}

// Tick advances the timer by one and returns the objects spawned this tick:
// nothing, an obstacle, or an obstacle followed by a fish at the same spot.
func (s *Spawner) Tick(speed float64) []*WorldObject {
	s.timer++
	if s.timer <= s.Threshold(speed) {
		return nil
	}
	s.timer = 0

	r := s.objects.LateralRange
	x := -r + s.rng.Float64()*2*r
	obstacle := NewObstacle(x, s.objects.SpawnDepth)

	if s.rng.Float64() < s.objects.FishChance {
		return []*WorldObject{obstacle, NewFish(obstacle.X, obstacle.Z)}
	}
	return []*WorldObject{obstacle}
}
