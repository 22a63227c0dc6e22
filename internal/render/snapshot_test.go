package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func int32p(v int32) *int32       { return &v }
func float32p(v float32) *float32 { return &v }

func TestSnapshotApply(t *testing.T) {
	var s Snapshot
	s.apply(Patch{
		PointCount: int32p(3),
		Radius:     float32p(0.4),
		Intensity:  float32p(2),
	})
	if s.PointCount != 3 || s.Radius != 0.4 || s.Intensity != 2 {
		t.Fatalf("first patch not applied: %+v", s)
	}

	// Nil fields leave previous values alone; set fields win.
	s.apply(Patch{Radius: float32p(0.9)})
	if s.Radius != 0.9 {
		t.Errorf("Radius = %v, want 0.9", s.Radius)
	}
	if s.PointCount != 3 || s.Intensity != 2 {
		t.Errorf("untouched fields changed: %+v", s)
	}
}

func TestSnapshotApplyClampsPointCount(t *testing.T) {
	var s Snapshot
	s.apply(Patch{PointCount: int32p(99)})
	if s.PointCount != MaxPoints {
		t.Errorf("PointCount = %d, want %d", s.PointCount, MaxPoints)
	}
	s.apply(Patch{PointCount: int32p(-4)})
	if s.PointCount != 0 {
		t.Errorf("PointCount = %d, want 0", s.PointCount)
	}
}

func TestSnapshotApplyArrays(t *testing.T) {
	var s Snapshot
	var colors [MaxPoints]mgl32.Vec3
	colors[1] = mgl32.Vec3{0.1, 0.2, 0.3}
	var positions [MaxPoints]mgl32.Vec2
	positions[1] = mgl32.Vec2{0.25, 0.75}

	s.apply(Patch{Colors: &colors, Positions: &positions})
	if s.Colors[1] != colors[1] || s.Positions[1] != positions[1] {
		t.Fatalf("array patch not applied: %+v", s)
	}
}
