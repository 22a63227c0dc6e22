package chromanoise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Mr1am/chroma-noise/internal/render"
)

func TestMergeDefaults(t *testing.T) {
	c := mergeWithDefaults(Options{})
	if c.radius != 0.6 {
		t.Errorf("radius = %v, want 0.6", c.radius)
	}
	if c.intensity != 1 {
		t.Errorf("intensity = %v, want 1", c.intensity)
	}
	if c.speed != 1 {
		t.Errorf("speed = %v, want 1", c.speed)
	}
	if c.maxPoints != 12 {
		t.Errorf("maxPoints = %v, want 12", c.maxPoints)
	}
	if c.warpMode != 0 || c.warpAmount != 0 || c.warpSize != 1 {
		t.Errorf("warp = {%v %v %v}, want {0 0 1}", c.warpMode, c.warpAmount, c.warpSize)
	}
	if c.grainAmount != 0 || c.grainSize != 1 {
		t.Errorf("grain = {%v %v}, want {0 1}", c.grainAmount, c.grainSize)
	}
	if c.seed < 0 || c.seed >= 1 {
		t.Errorf("seed = %v, want [0, 1)", c.seed)
	}
	if len(c.points) != 0 {
		t.Errorf("points = %v, want none", c.points)
	}
}

func TestMergeExplicitValues(t *testing.T) {
	seed := 0.0
	c := mergeWithDefaults(Options{
		Radius:    0.3,
		Intensity: 2,
		Speed:     0.5,
		Seed:      &seed,
		Warp:      &WarpOptions{Mode: 4, Amount: 0.7, Size: 2},
		Grain:     &GrainOptions{Amount: 0.1, Size: 3},
	})
	if c.radius != 0.3 || c.intensity != 2 || c.speed != 0.5 {
		t.Errorf("scalars not honored: %+v", c)
	}
	if c.seed != 0 {
		t.Errorf("seed = %v, want explicit 0", c.seed)
	}
	if c.warpMode != 4 || c.warpAmount != 0.7 || c.warpSize != 2 {
		t.Errorf("warp not honored: %+v", c)
	}
	if c.grainAmount != 0.1 || c.grainSize != 3 {
		t.Errorf("grain not honored: %+v", c)
	}
}

func TestMergeHexColors(t *testing.T) {
	c := mergeWithDefaults(Options{Points: []PointOptions{
		{Color: "#ff0000", X: 0.1, Y: 0.2},
		{Color: "#0f0", X: 0.3, Y: 0.4},
		{Color: "not-a-color", X: 0.5, Y: 0.6},
	}})
	if len(c.points) != 3 {
		t.Fatalf("got %d points, want 3", len(c.points))
	}
	if c.points[0].color != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("long hex parsed to %v, want red", c.points[0].color)
	}
	if c.points[1].color != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("short hex parsed to %v, want green", c.points[1].color)
	}
	if c.points[2].color != render.Neutral {
		t.Errorf("bad hex parsed to %v, want neutral fallback", c.points[2].color)
	}
}

func TestMergeClampsAndTruncates(t *testing.T) {
	pts := []PointOptions{
		{Color: "#ffffff", X: -2, Y: 5},
		{Color: "#ffffff", X: math.NaN(), Y: 0.5},
		{Color: "#ffffff", X: 0.2, Y: 0.9},
	}
	c := mergeWithDefaults(Options{Points: pts, MaxPoints: 2})
	if len(c.points) != 2 {
		t.Fatalf("got %d points, want truncation to 2", len(c.points))
	}
	if c.points[0].pos != (mgl32.Vec2{0, 1}) {
		t.Errorf("position not clamped: %v", c.points[0].pos)
	}
	if c.points[1].pos != (mgl32.Vec2{0, 0.5}) {
		t.Errorf("NaN position = %v, want x clamped to 0", c.points[1].pos)
	}
}

func TestMergeCapsMaxPoints(t *testing.T) {
	c := mergeWithDefaults(Options{MaxPoints: 50})
	if c.maxPoints != render.MaxPoints {
		t.Errorf("maxPoints = %d, want shader bound %d", c.maxPoints, render.MaxPoints)
	}
}

func TestMergeRejectsMalformed(t *testing.T) {
	badSeed := math.Inf(1)
	c := mergeWithDefaults(Options{
		Radius:    math.NaN(),
		Intensity: -3,
		Speed:     math.Inf(-1),
		Seed:      &badSeed,
		Warp:      &WarpOptions{Mode: 99, Amount: math.NaN(), Size: -1},
	})
	if c.radius != 0.6 || c.intensity != 1 || c.speed != 1 {
		t.Errorf("malformed scalars leaked through: %+v", c)
	}
	if c.warpMode != 0 || c.warpAmount != 0 || c.warpSize != 1 {
		t.Errorf("malformed warp leaked through: %+v", c)
	}
	if c.seed < 0 || c.seed >= 1 || math.IsInf(c.seed, 0) {
		t.Errorf("seed = %v, want random fallback", c.seed)
	}
}

func TestPatchIsComplete(t *testing.T) {
	c := mergeWithDefaults(Options{Points: []PointOptions{{Color: "#336699", X: 0.5, Y: 0.5}}})
	p := c.patch()
	if p.PointCount == nil || *p.PointCount != 1 {
		t.Fatal("patch missing point count")
	}
	if p.Colors == nil || p.Positions == nil {
		t.Fatal("patch missing point arrays")
	}
	if p.Radius == nil || p.Intensity == nil || p.WarpMode == nil || p.WarpAmount == nil ||
		p.WarpSize == nil || p.Seed == nil || p.GrainAmount == nil || p.GrainSize == nil {
		t.Fatal("patch leaves fields unset; configure must replace all parameters")
	}
	if *p.Radius != 0.6 {
		t.Errorf("patched radius = %v, want 0.6", *p.Radius)
	}
}
