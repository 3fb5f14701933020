package antarctic

import (
	"github.com/vovakirdan/antarctic/internal/config"
	"github.com/vovakirdan/antarctic/internal/core"
)

// Kind is the closed set of world object variants.
type Kind int

const (
	KindObstacle Kind = iota // Ice hole: jump over it
	KindFish                 // Bonus item: collect it
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindFish:
		return "fish"
	default:
		return "unknown"
	}
}

// Leap is the vertical motion of a fish jumping out of its hole.
type Leap struct {
	Started  bool
	Height   float64
	Velocity float64
}

// WorldObject is an obstacle or fish scrolling toward the camera.
type WorldObject struct {
	Kind Kind
	X    float64 // Lateral position, fixed at creation
	Z    float64 // Depth, decreasing every tick

	leap   *Leap // nil for obstacles
	proj   Projection
	bounds core.Rect
}

// NewObstacle creates an ice hole at the given track position.
func NewObstacle(x, z float64) *WorldObject {
	return &WorldObject{Kind: KindObstacle, X: x, Z: z}
}

// NewFish creates a fish that will leap once it gets close enough.
func NewFish(x, z float64) *WorldObject {
	return &WorldObject{Kind: KindFish, X: x, Z: z, leap: &Leap{}}
}

// Height returns how far above the track the object is.
func (o *WorldObject) Height() float64 {
	if o.leap == nil {
		return 0
	}
	return o.leap.Height
}

// Bounds returns the projected screen bounds from the last refresh.
func (o *WorldObject) Bounds() core.Rect { return o.bounds }

// Field owns the live world objects. Objects removed from it have no
// other owner.
type Field struct {
	objects []*WorldObject
	proj    Projector
	cfg     config.ObjectsConfig
}

// NewField creates an empty field.
func NewField(proj Projector, cfg config.ObjectsConfig) *Field {
	return &Field{
		objects: make([]*WorldObject, 0, 16),
		proj:    proj,
		cfg:     cfg,
	}
}

// Reset removes every object.
func (f *Field) Reset() {
	f.objects = f.objects[:0]
}

// Add places new objects in the field and projects them immediately.
func (f *Field) Add(objs ...*WorldObject) {
	for _, o := range objs {
		f.project(o)
		f.objects = append(f.objects, o)
	}
}

// Remove deletes an object from the field.
func (f *Field) Remove(target *WorldObject) {
	for i, o := range f.objects {
		if o == target {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the live objects in insertion order.
func (f *Field) Objects() []*WorldObject {
	return f.objects
}

// Len returns the number of live objects.
func (f *Field) Len() int {
	return len(f.objects)
}

// Advance scrolls every object toward the camera by speed and drops the
// ones that have passed it. Returns how many objects were removed.
func (f *Field) Advance(speed float64) int {
	kept := f.objects[:0]
	for _, o := range f.objects {
		if f.advance(o, speed) {
			kept = append(kept, o)
		}
	}
	removed := len(f.objects) - len(kept)
	// Clear the tail so dropped objects can be collected
	for i := len(kept); i < len(f.objects); i++ {
		f.objects[i] = nil
	}
	f.objects = kept
	return removed
}

// advance steps one object and reports whether it is still alive.
func (f *Field) advance(o *WorldObject, speed float64) bool {
	o.Z -= speed
	if o.Z < f.cfg.RemoveDepth {
		return false
	}

	if l := o.leap; l != nil {
		if !l.Started && o.Z < f.cfg.FishJumpDepth {
			l.Started = true
			l.Velocity = f.cfg.FishJumpVelocity
		}
		if l.Started {
			l.Velocity, l.Height = Integrate(l.Velocity, l.Height, f.cfg.FishGravity)
		}
	}

	f.project(o)
	return true
}

// project refreshes an object's screen placement and bounds.
func (f *Field) project(o *WorldObject) {
	o.proj = f.proj.Project(o.X, o.Z, o.Height())
	w, h := f.baseSize(o.Kind)
	sw, sh := ScaledSize(w, h, o.proj.Scale)
	o.bounds = core.RectMidBottom(o.proj.X, o.proj.Y, sw, sh)
}

// baseSize returns the unscaled image size for a kind.
func (f *Field) baseSize(k Kind) (int, int) {
	if k == KindFish {
		return f.cfg.FishWidth, f.cfg.FishHeight
	}
	return f.cfg.ObstacleWidth, f.cfg.ObstacleHeight
}
