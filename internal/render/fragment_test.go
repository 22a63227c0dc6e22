package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestHash21(t *testing.T) {
	for x := 0.0; x < 4; x += 0.37 {
		for y := 0.0; y < 4; y += 0.53 {
			v := hash21(x, y)
			if v < 0 || v >= 1 {
				t.Fatalf("hash21(%v, %v) = %v, want [0, 1)", x, y, v)
			}
			if v != hash21(x, y) {
				t.Fatalf("hash21(%v, %v) is not deterministic", x, y)
			}
		}
	}
}

func TestGnoiseRange(t *testing.T) {
	for x := -3.0; x < 3; x += 0.21 {
		for y := -3.0; y < 3; y += 0.33 {
			v := gnoise(x, y)
			if math.Abs(v) > 1.5 {
				t.Fatalf("gnoise(%v, %v) = %v, out of expected range", x, y, v)
			}
		}
	}
}

func TestGnoiseZeroAtLattice(t *testing.T) {
	// Gradient noise vanishes at integer lattice points.
	for _, p := range [][2]float64{{0, 0}, {1, 0}, {2, 3}, {-1, 4}} {
		if v := gnoise(p[0], p[1]); math.Abs(v) > 1e-9 {
			t.Errorf("gnoise(%v, %v) = %v, want 0", p[0], p[1], v)
		}
	}
}

func TestWarpIdentity(t *testing.T) {
	tests := []struct {
		name   string
		mode   int32
		amount float32
	}{
		{"mode zero", 0, 1},
		{"zero amount", 3, 0},
		{"negative amount", 5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{WarpMode: tt.mode, WarpAmount: tt.amount, WarpSize: 1, Time: 2.5, Seed: 0.7}
			x, y := warpUV(0.3, 0.8, snap, 1.5)
			if x != 0.3 || y != 0.8 {
				t.Fatalf("warpUV = (%v, %v), want identity", x, y)
			}
		})
	}
}

func TestWarpDisplaces(t *testing.T) {
	for mode := int32(1); mode <= 6; mode++ {
		snap := &Snapshot{WarpMode: mode, WarpAmount: 1, WarpSize: 1.3, Time: 1.2, Seed: 0.42}
		moved := false
		for _, p := range [][2]float64{{0.2, 0.3}, {0.7, 0.6}, {0.4, 0.9}} {
			x, y := warpUV(p[0], p[1], snap, 1)
			if x != p[0] || y != p[1] {
				moved = true
			}
		}
		if !moved {
			t.Errorf("warp mode %d left every sample in place", mode)
		}
	}
}

func TestShadePixelNoPoints(t *testing.T) {
	snap := &Snapshot{
		Resolution: mgl32.Vec2{100, 100},
		Radius:     0.6,
		Intensity:  1,
	}
	r, g, b := shadePixel(snap, 50, 50)
	// Center vignette is essentially 1, so the neutral fill comes through.
	if math.Abs(r-0.98) > 0.01 || math.Abs(g-0.98) > 0.01 || math.Abs(b-0.98) > 0.01 {
		t.Fatalf("empty gradient center = (%v, %v, %v), want neutral", r, g, b)
	}
}

func TestShadePixelSinglePointDominates(t *testing.T) {
	snap := &Snapshot{
		Resolution: mgl32.Vec2{100, 100},
		PointCount: 1,
		Radius:     5,
		Intensity:  1,
	}
	snap.Colors[0] = mgl32.Vec3{1, 0, 0}
	snap.Positions[0] = mgl32.Vec2{0.5, 0.5}

	r, g, b := shadePixel(snap, 50, 50)
	if r < 0.95 || g > 0.05 || b > 0.05 {
		t.Fatalf("single red point center = (%v, %v, %v), want red", r, g, b)
	}
}

func TestShadePixelBlend(t *testing.T) {
	snap := &Snapshot{
		Resolution: mgl32.Vec2{100, 100},
		PointCount: 2,
		Radius:     0.6,
		Intensity:  1,
		Seed:       0.5,
	}
	snap.Colors[0] = mgl32.Vec3{1, 0, 0}
	snap.Positions[0] = mgl32.Vec2{0, 0}
	snap.Colors[1] = mgl32.Vec3{0, 0, 1}
	snap.Positions[1] = mgl32.Vec2{1, 1}

	r1, _, b1 := shadePixel(snap, 5, 5)
	if r1 <= b1 {
		t.Errorf("near red corner got (r=%v, b=%v), want red dominant", r1, b1)
	}
	r2, _, b2 := shadePixel(snap, 94, 94)
	if b2 <= r2 {
		t.Errorf("near blue corner got (r=%v, b=%v), want blue dominant", r2, b2)
	}
}

func TestShadePixelVignette(t *testing.T) {
	snap := &Snapshot{
		Resolution: mgl32.Vec2{100, 100},
		Radius:     0.6,
		Intensity:  1,
	}
	cr, _, _ := shadePixel(snap, 50, 50)
	er, _, _ := shadePixel(snap, 0, 0)
	if er >= cr {
		t.Fatalf("corner %v not darker than center %v", er, cr)
	}
}

func TestShadePixelGrainDeterministic(t *testing.T) {
	snap := &Snapshot{
		Resolution:  mgl32.Vec2{64, 64},
		Radius:      0.6,
		Intensity:   1,
		Seed:        0.31,
		GrainAmount: 0.05,
		GrainSize:   2,
	}
	r1, g1, b1 := shadePixel(snap, 17, 23)
	r2, g2, b2 := shadePixel(snap, 17, 23)
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Fatal("grain is not deterministic for a fixed seed")
	}

	// Grain is luminance only, so it shifts all channels by the same offset.
	snap.GrainAmount = 0
	r0, g0, b0 := shadePixel(snap, 17, 23)
	const eps = 1e-12
	if math.Abs((r1-r0)-(g1-g0)) > eps || math.Abs((r1-r0)-(b1-b0)) > eps {
		t.Fatalf("grain shifted channels unevenly: dr=%v dg=%v db=%v", r1-r0, g1-g0, b1-b0)
	}
}
