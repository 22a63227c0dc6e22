package render

import "github.com/go-gl/mathgl/mgl32"

// MaxPoints is the compile-time bound of the point arrays in the fragment
// stage. Point counts above this are truncated before they reach the worker.
const MaxPoints = 12

// Neutral is the fallback color emitted when no point carries weight, and
// the color substituted for points whose hex string failed to parse.
var Neutral = mgl32.Vec3{0.98, 0.98, 0.98}

// Uniform names as they appear in the fragment source.
const (
	UniformResolution  = "u_resolution"
	UniformTime        = "u_time"
	UniformPointCount  = "u_pointCount"
	UniformColors      = "u_colors"
	UniformPositions   = "u_positions"
	UniformRadius      = "u_radius"
	UniformIntensity   = "u_intensity"
	UniformWarpMode    = "u_warpMode"
	UniformWarpAmount  = "u_warpAmount"
	UniformWarpSize    = "u_warpSize"
	UniformSeed        = "u_seed"
	UniformGrainAmount = "u_grainAmount"
	UniformGrainSize   = "u_grainSize"
)

type uniformKind int

const (
	kindFloat uniformKind = iota
	kindInt
	kindVec2
	kindVec2Array
	kindVec3Array
)

// uniformTable drives both uniform location resolution and the per-frame
// upload dispatch. Order is fixed so uploads are deterministic.
var uniformTable = []struct {
	name string
	kind uniformKind
}{
	{UniformResolution, kindVec2},
	{UniformTime, kindFloat},
	{UniformPointCount, kindInt},
	{UniformColors, kindVec3Array},
	{UniformPositions, kindVec2Array},
	{UniformRadius, kindFloat},
	{UniformIntensity, kindFloat},
	{UniformWarpMode, kindInt},
	{UniformWarpAmount, kindFloat},
	{UniformWarpSize, kindFloat},
	{UniformSeed, kindFloat},
	{UniformGrainAmount, kindFloat},
	{UniformGrainSize, kindFloat},
}

// Snapshot is the complete uniform state for one frame. The render step
// consumes it wholesale; nothing else reads it.
type Snapshot struct {
	Resolution  mgl32.Vec2
	Time        float32
	PointCount  int32
	Colors      [MaxPoints]mgl32.Vec3
	Positions   [MaxPoints]mgl32.Vec2
	Radius      float32
	Intensity   float32
	WarpMode    int32
	WarpAmount  float32
	WarpSize    float32
	Seed        float32
	GrainAmount float32
	GrainSize   float32
}

// Patch is a partial parameter update. Nil fields leave the current snapshot
// value untouched; set fields win wholesale (last write wins per field).
// Resolution and Time are owned by resize and render and are not patchable.
type Patch struct {
	PointCount  *int32
	Colors      *[MaxPoints]mgl32.Vec3
	Positions   *[MaxPoints]mgl32.Vec2
	Radius      *float32
	Intensity   *float32
	WarpMode    *int32
	WarpAmount  *float32
	WarpSize    *float32
	Seed        *float32
	GrainAmount *float32
	GrainSize   *float32
}

func (s *Snapshot) apply(p Patch) {
	if p.PointCount != nil {
		n := *p.PointCount
		if n < 0 {
			n = 0
		}
		if n > MaxPoints {
			n = MaxPoints
		}
		s.PointCount = n
	}
	if p.Colors != nil {
		s.Colors = *p.Colors
	}
	if p.Positions != nil {
		s.Positions = *p.Positions
	}
	if p.Radius != nil {
		s.Radius = *p.Radius
	}
	if p.Intensity != nil {
		s.Intensity = *p.Intensity
	}
	if p.WarpMode != nil {
		s.WarpMode = *p.WarpMode
	}
	if p.WarpAmount != nil {
		s.WarpAmount = *p.WarpAmount
	}
	if p.WarpSize != nil {
		s.WarpSize = *p.WarpSize
	}
	if p.Seed != nil {
		s.Seed = *p.Seed
	}
	if p.GrainAmount != nil {
		s.GrainAmount = *p.GrainAmount
	}
	if p.GrainSize != nil {
		s.GrainSize = *p.GrainSize
	}
}

// floatValue returns the scalar float uniform for name. Names of other kinds
// never reach here; the dispatch switch in the GL renderer keys on the table.
func (s *Snapshot) floatValue(name string) float32 {
	switch name {
	case UniformTime:
		return s.Time
	case UniformRadius:
		return s.Radius
	case UniformIntensity:
		return s.Intensity
	case UniformWarpAmount:
		return s.WarpAmount
	case UniformWarpSize:
		return s.WarpSize
	case UniformSeed:
		return s.Seed
	case UniformGrainAmount:
		return s.GrainAmount
	case UniformGrainSize:
		return s.GrainSize
	}
	return 0
}

func (s *Snapshot) intValue(name string) int32 {
	switch name {
	case UniformPointCount:
		return s.PointCount
	case UniformWarpMode:
		return s.WarpMode
	}
	return 0
}

func (s *Snapshot) vec2Value(name string) mgl32.Vec2 {
	if name == UniformResolution {
		return s.Resolution
	}
	return mgl32.Vec2{}
}
