package render

// Surface is the pixel buffer the engine draws into. Exactly one render
// context holds drawing rights at a time: Acquire takes them on the calling
// goroutine, Release gives them back.
type Surface interface {
	// Acquire claims exclusive drawing rights for the calling goroutine.
	// For GL-backed surfaces this makes the context current.
	Acquire() error
	// Release relinquishes drawing rights.
	Release()
	// DisplaySize is the surface's size in display units (pre-scale).
	DisplaySize() (int, int)
	// Scale is the device pixel ratio mapping display units to pixels.
	Scale() float64
	// PixelSize is the current backing buffer size in device pixels.
	PixelSize() (int, int)
	// SetPixelSize resizes the backing buffer. Implementations whose buffer
	// tracks the display automatically may treat this as a no-op.
	SetPixelSize(w, h int)
	// Present publishes the finished frame.
	Present() error
}

// GLContextSurface is a Surface backed by an OpenGL context. Transferable
// reports whether drawing rights may move to a thread other than the one the
// surface was created on; when false the engine renders inline on the host
// context instead of handing the surface to the worker.
type GLContextSurface interface {
	Surface
	Transferable() bool
}
