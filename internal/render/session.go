package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Mr1am/chroma-noise/internal/logging"
)

// renderer is one drawing backend bound to an acquired surface.
type renderer interface {
	init(fragment string) error
	resize(w, h int)
	render(snap *Snapshot) error
	destroy()
}

type sessionState int

const (
	stateUninitialized sessionState = iota
	stateReady
	stateFailed
	stateDestroyed
)

// session executes commands against one surface. The worker runs it on its
// locked thread; the inline channel runs it on the sender's goroutine. It is
// not safe for concurrent use; the owning Channel serializes access.
type session struct {
	surface    Surface
	r          renderer
	snap       Snapshot
	haveParams bool
	state      sessionState
}

// dispatch executes a command and returns an acknowledgement when the
// protocol calls for one. Unrecognized commands are ignored.
func (s *session) dispatch(c Command) (Ack, bool) {
	switch c := c.(type) {
	case Init:
		if err := s.init(c.Surface, c.Fragment); err != nil {
			logging.L().Error("render context initialization failed", "error", err)
			if s.state == stateUninitialized {
				// Failure is terminal for this instance; a fresh worker and
				// context are needed to retry.
				s.state = stateFailed
			}
			return Failed{Message: err.Error()}, true
		}
		return Ready{}, true
	case Update:
		s.apply(c.Patch)
	case Render:
		s.renderFrame(c.Time)
	case Resize:
		s.resize(c.Width, c.Height, c.Scale)
	case Destroy:
		s.destroy()
	}
	return nil, false
}

func (s *session) init(surf Surface, fragment string) error {
	switch s.state {
	case stateDestroyed:
		return fmt.Errorf("render context already destroyed")
	case stateReady:
		return fmt.Errorf("render context already initialized")
	case stateFailed:
		return fmt.Errorf("render context previously failed; create a new one to retry")
	}

	if err := surf.Acquire(); err != nil {
		return fmt.Errorf("acquire surface: %w", err)
	}

	var r renderer
	switch t := surf.(type) {
	case GLContextSurface:
		r = newGLRenderer()
	case *Pixmap:
		r = newCPURenderer(t)
	default:
		surf.Release()
		return fmt.Errorf("surface %T provides no usable render context", surf)
	}

	if err := r.init(fragment); err != nil {
		r.destroy()
		surf.Release()
		return err
	}

	s.surface = surf
	s.r = r
	w, h := surf.PixelSize()
	s.snap.Resolution = mgl32.Vec2{float32(w), float32(h)}
	s.state = stateReady
	logging.L().Info("render context ready", "width", w, "height", h)
	return nil
}

// apply merges parameters into the snapshot. Allowed in any live state so a
// configuration sent ahead of init is not lost.
func (s *session) apply(p Patch) {
	if s.state == stateDestroyed || s.state == stateFailed {
		return
	}
	s.snap.apply(p)
	s.haveParams = true
}

// renderFrame draws one frame. A no-op until both init and at least one
// parameter update have happened, so no frame is ever drawn from undefined
// uniform state.
func (s *session) renderFrame(t float64) {
	if s.state != stateReady || !s.haveParams {
		return
	}
	s.snap.Time = float32(t)
	if err := s.r.render(&s.snap); err != nil {
		logging.L().Warn("frame dropped", "error", err)
		return
	}
	if err := s.surface.Present(); err != nil {
		logging.L().Warn("present failed", "error", err)
	}
}

// resize updates the backing buffer to floor(display size x scale). Zero or
// negative target sizes are tolerated no-ops, and nothing is redrawn here:
// the next frame picks the new resolution up from the snapshot.
func (s *session) resize(w, h int, scale float64) {
	if s.state != stateReady {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	pw := int(math.Floor(float64(w) * scale))
	ph := int(math.Floor(float64(h) * scale))
	if pw <= 0 || ph <= 0 {
		return
	}
	cw, ch := s.surface.PixelSize()
	if pw == cw && ph == ch {
		return
	}
	s.surface.SetPixelSize(pw, ph)
	s.r.resize(pw, ph)
	s.snap.Resolution = mgl32.Vec2{float32(pw), float32(ph)}
	logging.L().Debug("surface resized", "width", pw, "height", ph, "scale", scale)
}

// destroy releases everything. Idempotent, and valid before init.
func (s *session) destroy() {
	if s.state == stateDestroyed {
		return
	}
	if s.r != nil {
		s.r.destroy()
		s.r = nil
	}
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
	s.state = stateDestroyed
}
