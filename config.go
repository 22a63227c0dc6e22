package chromanoise

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Mr1am/chroma-noise/internal/logging"
	"github.com/Mr1am/chroma-noise/internal/render"
)

// PointOptions places one gradient point. Color is a CSS-style hex string
// ("#RRGGBB" or "#RGB"); X and Y are normalized surface coordinates in
// [0, 1], origin top-left.
type PointOptions struct {
	Color string
	X, Y  float64
}

// WarpOptions selects and scales the coordinate distortion. Mode 0 disables
// warping; modes 1-6 are wave, simplex, fractal, ridged, swirl and radial.
type WarpOptions struct {
	Mode   int
	Amount float64
	Size   float64
}

// GrainOptions scales the per-pixel grain overlay. Amount is the brightness
// offset range; Size is the sampling lattice in pixels (larger is coarser).
type GrainOptions struct {
	Amount float64
	Size   float64
}

// Options is the configuration consumed by Configure. Every field is
// optional; zero or missing values fall back to the documented defaults.
type Options struct {
	Points    []PointOptions
	MaxPoints int           // default 12, capped at the shader bound
	Radius    float64       // blend radius, default 0.6
	Intensity float64       // blend sharpening exponent, default 1.0
	Warp      *WarpOptions  // default {Mode: 0, Amount: 0, Size: 1}
	Speed     float64       // animation speed multiplier, default 1.0
	Seed      *float64      // noise seed, default random in [0, 1)
	Grain     *GrainOptions // default {Amount: 0, Size: 1}
}

const (
	defaultMaxPoints = 12
	defaultRadius    = 0.6
	defaultIntensity = 1.0
	defaultSpeed     = 1.0
	defaultWarpSize  = 1.0
	defaultGrainSize = 1.0
)

type point struct {
	color mgl32.Vec3
	pos   mgl32.Vec2
}

// engineConfig is the merged, validated form of Options. It is rebuilt
// wholesale on every Configure call and never mutated in place.
type engineConfig struct {
	points      []point
	maxPoints   int
	radius      float64
	intensity   float64
	warpMode    int
	warpAmount  float64
	warpSize    float64
	speed       float64
	seed        float64
	grainAmount float64
	grainSize   float64
}

// mergeWithDefaults fills every unset or malformed field with its default.
// Malformed values (out-of-range modes, non-finite numbers, bad hex colors)
// are logged and replaced, never propagated and never fatal.
func mergeWithDefaults(o Options) engineConfig {
	c := engineConfig{
		maxPoints: defaultMaxPoints,
		radius:    defaultRadius,
		intensity: defaultIntensity,
		warpSize:  defaultWarpSize,
		speed:     defaultSpeed,
		seed:      rand.Float64(),
		grainSize: defaultGrainSize,
	}

	if o.MaxPoints > 0 {
		c.maxPoints = o.MaxPoints
	}
	if c.maxPoints > render.MaxPoints {
		c.maxPoints = render.MaxPoints
	}
	if isFinite(o.Radius) && o.Radius > 0 {
		c.radius = o.Radius
	}
	if isFinite(o.Intensity) && o.Intensity > 0 {
		c.intensity = o.Intensity
	}
	if o.Warp != nil {
		if o.Warp.Mode >= 0 && o.Warp.Mode <= 6 {
			c.warpMode = o.Warp.Mode
		} else {
			logging.L().Warn("ignoring out-of-range warp mode", "mode", o.Warp.Mode)
		}
		if isFinite(o.Warp.Amount) && o.Warp.Amount > 0 {
			c.warpAmount = o.Warp.Amount
		}
		if isFinite(o.Warp.Size) && o.Warp.Size > 0 {
			c.warpSize = o.Warp.Size
		}
	}
	if isFinite(o.Speed) && o.Speed > 0 {
		c.speed = o.Speed
	}
	if o.Seed != nil && isFinite(*o.Seed) {
		c.seed = *o.Seed
	}
	if o.Grain != nil {
		if isFinite(o.Grain.Amount) && o.Grain.Amount > 0 {
			c.grainAmount = o.Grain.Amount
		}
		if isFinite(o.Grain.Size) && o.Grain.Size > 0 {
			c.grainSize = o.Grain.Size
		}
	}

	n := len(o.Points)
	if n > c.maxPoints {
		n = c.maxPoints
	}
	c.points = make([]point, 0, n)
	for _, p := range o.Points[:n] {
		col := render.Neutral
		if parsed, err := colorful.Hex(p.Color); err == nil {
			col = mgl32.Vec3{float32(parsed.R), float32(parsed.G), float32(parsed.B)}
		} else {
			logging.L().Warn("ignoring malformed point color", "color", p.Color)
		}
		c.points = append(c.points, point{
			color: col,
			pos:   mgl32.Vec2{float32(clampUnit(p.X)), float32(clampUnit(p.Y))},
		})
	}

	return c
}

// patch flattens the config into a full parameter update. Every field is
// set, so applying it replaces the previous snapshot state entirely.
func (c engineConfig) patch() render.Patch {
	count := int32(len(c.points))
	colors := new([render.MaxPoints]mgl32.Vec3)
	positions := new([render.MaxPoints]mgl32.Vec2)
	for i, p := range c.points {
		colors[i] = p.color
		positions[i] = p.pos
	}
	radius := float32(c.radius)
	intensity := float32(c.intensity)
	warpMode := int32(c.warpMode)
	warpAmount := float32(c.warpAmount)
	warpSize := float32(c.warpSize)
	seed := float32(c.seed)
	grainAmount := float32(c.grainAmount)
	grainSize := float32(c.grainSize)
	return render.Patch{
		PointCount:  &count,
		Colors:      colors,
		Positions:   positions,
		Radius:      &radius,
		Intensity:   &intensity,
		WarpMode:    &warpMode,
		WarpAmount:  &warpAmount,
		WarpSize:    &warpSize,
		Seed:        &seed,
		GrainAmount: &grainAmount,
		GrainSize:   &grainSize,
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
