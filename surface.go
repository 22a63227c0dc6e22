package chromanoise

import "github.com/Mr1am/chroma-noise/internal/render"

// Surface is the drawing target handed to Attach. Implementations wrap
// whatever windowing or offscreen buffer the caller renders into.
type Surface = render.Surface

// GLSurface is a Surface backed by an OpenGL context. Transferable reports
// whether the context may be made current on a different thread; when it
// cannot, the engine falls back to rendering on the host context.
type GLSurface = render.GLContextSurface

// Pixmap is a CPU-backed surface that renders without any GPU. Frames land
// in an image.RGBA, which makes it useful for tests and offline rendering.
type Pixmap = render.Pixmap

// NewPixmap returns a CPU surface of the given size in pixels.
func NewPixmap(w, h int) *Pixmap {
	return render.NewPixmap(w, h)
}
