package antarctic

import (
	"testing"

	"github.com/vovakirdan/antarctic/internal/config"
)

func testField() *Field {
	cfg := config.DefaultAntarcticConfig()
	return NewField(NewProjector(cfg.Screen, cfg.Projection), cfg.Objects)
}

func TestFieldAdvanceDecreasesDepth(t *testing.T) {
	f := testField()
	o := NewObstacle(0.2, 100)
	f.Add(o)

	prev := o.Z
	for i := 0; i < 100; i++ {
		f.Advance(0.3)
		if o.Z >= prev {
			t.Fatalf("depth did not decrease: %f -> %f", prev, o.Z)
		}
		prev = o.Z
	}
}

func TestFieldRemovesPassedObjects(t *testing.T) {
	f := testField()
	near := NewObstacle(0, 0.3)
	far := NewObstacle(0, 50)
	f.Add(near, far)

	removed := f.Advance(0.25)
	if removed != 1 {
		t.Errorf("Advance removed %d objects, expected 1", removed)
	}
	if f.Len() != 1 || f.Objects()[0] != far {
		t.Errorf("expected only the far obstacle to remain, got %d objects", f.Len())
	}
}

func TestFishLeapsOnlyWhenClose(t *testing.T) {
	f := testField()
	fish := NewFish(0, 25.5)
	hole := NewObstacle(0, 25.5)
	f.Add(hole, fish)

	if hole.leap != nil {
		t.Error("obstacles should carry no leap state")
	}

	f.Advance(0.3) // depth 25.2
	if fish.leap.Started || fish.Height() != 0 {
		t.Errorf("fish leapt too early at depth %f", fish.Z)
	}

	f.Advance(0.3) // depth 24.9
	if !fish.leap.Started {
		t.Fatalf("fish should leap below depth 25, at %f", fish.Z)
	}
	if fish.Height() != 10 {
		t.Errorf("fish height after first leap tick = %f, expected 10", fish.Height())
	}
	if hole.Height() != 0 {
		t.Errorf("obstacle height = %f, expected 0", hole.Height())
	}

	// The leap ends on the ground and stays there
	for i := 0; i < 200 && fish.Z > 1; i++ {
		f.Advance(0.1)
		if fish.Height() < 0 {
			t.Fatalf("fish height went negative: %f", fish.Height())
		}
	}
	if fish.Height() != 0 {
		t.Errorf("fish should have landed, height %f", fish.Height())
	}
}

func TestFieldProjectsOnAdd(t *testing.T) {
	f := testField()
	o := NewObstacle(0, 1)
	f.Add(o)

	b := o.Bounds()
	if b.W != 150 || b.H != 60 {
		t.Errorf("bounds at depth 1 = %+v, expected 150x60", b)
	}
	if b.Bottom() != 600 {
		t.Errorf("bottom at depth 1 = %d, expected 600", b.Bottom())
	}
}

func TestFieldRemove(t *testing.T) {
	f := testField()
	a, b, c := NewObstacle(0, 10), NewFish(0, 10), NewObstacle(0.5, 20)
	f.Add(a, b, c)

	f.Remove(b)
	objs := f.Objects()
	if len(objs) != 2 || objs[0] != a || objs[1] != c {
		t.Errorf("Remove kept the wrong objects: %v", objs)
	}

	f.Remove(b) // already gone
	if f.Len() != 2 {
		t.Errorf("removing a missing object changed the field")
	}

	f.Reset()
	if f.Len() != 0 {
		t.Errorf("Reset left %d objects", f.Len())
	}
}

func TestKindString(t *testing.T) {
	if KindObstacle.String() != "obstacle" || KindFish.String() != "fish" {
		t.Errorf("unexpected kind names %q %q", KindObstacle, KindFish)
	}
}
