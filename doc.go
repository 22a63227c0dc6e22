// Package chromanoise renders animated multi-point color gradients with
// procedural warping and film grain.
//
// Colors are placed as weighted points on a normalized canvas and blended
// with a Gaussian falloff; a family of noise-driven warp modes distorts the
// sampling coordinates over time. Rendering runs as a GLSL fragment shader
// on an OpenGL surface, or on the CPU against a Pixmap.
//
// A typical session attaches a surface, configures the gradient and starts
// the animation:
//
//	eng := chromanoise.New()
//	if err := eng.Attach(surface); err != nil {
//		return err
//	}
//	eng.Configure(chromanoise.Options{
//		Points: []chromanoise.PointOptions{
//			{Color: "#ff7a59", X: 0.2, Y: 0.3},
//			{Color: "#4a90d9", X: 0.8, Y: 0.7},
//		},
//		Warp: &chromanoise.WarpOptions{Mode: 3, Amount: 0.8, Size: 1.2},
//	})
//	if err := eng.Start(); err != nil {
//		return err
//	}
//	defer eng.Teardown()
//
// When the surface's GL context can be handed over, frames are produced on
// a dedicated worker thread and the caller's goroutine never blocks on
// rendering. Otherwise the engine renders on a context of its own locked
// thread and the public API behaves identically.
package chromanoise
