package chromanoise

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Mr1am/chroma-noise/internal/logging"
	"github.com/Mr1am/chroma-noise/internal/render"
	"github.com/Mr1am/chroma-noise/internal/shader"
)

var (
	// ErrDestroyed is returned by calls made after Teardown.
	ErrDestroyed = errors.New("chromanoise: engine destroyed")
	// ErrAttached is returned by Attach when a surface is already bound.
	ErrAttached = errors.New("chromanoise: a surface is already attached")
	// ErrNoSurface is returned by Start before any surface was attached.
	ErrNoSurface = errors.New("chromanoise: no surface attached")
)

// Engine owns one animated gradient: a surface, a render channel and the
// driver goroutine that paces frames. All methods are safe to call from any
// goroutine; rendering itself happens on exactly one thread.
type Engine struct {
	opts engineOptions

	mu        sync.Mutex
	cfg       engineConfig
	surface   render.Surface
	ch        render.Channel
	inline    bool
	onState   func(State)
	started   bool
	destroyed bool

	stopped   atomic.Bool
	readySeen atomic.Bool
	failed    atomic.Bool
	state     atomic.Int32

	quit chan struct{}
	wg   sync.WaitGroup
}

// New creates an engine in StateLoading with default parameters. Nothing is
// rendered until a surface is attached and Start is called.
func New(opts ...Option) *Engine {
	eo := defaultEngineOptions()
	for _, o := range opts {
		o(&eo)
	}
	return &Engine{
		opts: eo,
		cfg:  mergeWithDefaults(Options{}),
		quit: make(chan struct{}),
	}
}

// Configure merges the given options over the defaults and makes them the
// engine's parameters. May be called at any time, including while playing;
// the running animation picks the new parameters up on its next frame.
func (e *Engine) Configure(o Options) {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.cfg = mergeWithDefaults(o)
	ch := e.ch
	patch := e.cfg.patch()
	e.mu.Unlock()

	if ch != nil {
		ch.Send(render.Update{Patch: patch})
	}
}

// Attach binds the drawing surface and chooses the render path: a dedicated
// worker thread when the surface's context can be handed over, the host
// context otherwise. At most one surface may ever be attached.
func (e *Engine) Attach(s Surface) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	if e.surface != nil {
		return ErrAttached
	}

	inline := e.opts.inline
	if cs, ok := s.(render.GLContextSurface); ok && !inline && !cs.Transferable() {
		logging.L().Warn("surface context cannot change threads, rendering on host context")
		inline = true
	}

	e.surface = s
	e.inline = inline
	if inline {
		e.ch = render.NewInline()
	} else {
		e.ch = render.StartWorker()
	}
	return nil
}

// Start begins or resumes the animation. The first call spawns the driver
// goroutine, which initializes the render context before its first frame;
// later calls after Stop simply unfreeze the clock.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return ErrDestroyed
	}
	if e.surface == nil {
		e.mu.Unlock()
		return ErrNoSurface
	}
	spawn := !e.started
	if spawn {
		e.started = true
		e.wg.Add(1)
	}
	e.mu.Unlock()

	e.stopped.Store(false)
	if spawn {
		go e.drive()
	} else if e.readySeen.Load() && !e.failed.Load() {
		e.setState(StatePlaying)
	}
	return nil
}

// Stop pauses the animation. The clock freezes where it is, so a later Start
// resumes from the same point. Idempotent.
func (e *Engine) Stop() {
	if e.stopped.Swap(true) {
		return
	}
	if State(e.state.Load()) == StatePlaying {
		e.setState(StatePaused)
	}
}

// Teardown stops the driver, destroys the render context and releases the
// surface. Safe to call at any lifecycle point, including before Attach, and
// safe to call more than once. The engine cannot be restarted afterwards.
func (e *Engine) Teardown() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	started := e.started
	ch := e.ch
	e.mu.Unlock()

	e.stopped.Store(true)
	if started {
		close(e.quit)
		e.wg.Wait()
	} else if ch != nil {
		// The driver never ran, so no render context exists; closing the
		// channel is all the cleanup there is.
		ch.Send(render.Destroy{})
		ch.Close()
	}
}

// State reports the current lifecycle state.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// OnStateChange registers a callback invoked on every state transition. The
// callback usually runs on the driver goroutine and must not block.
func (e *Engine) OnStateChange(fn func(State)) {
	e.mu.Lock()
	e.onState = fn
	e.mu.Unlock()
}

func (e *Engine) setState(s State) {
	if State(e.state.Swap(int32(s))) == s {
		return
	}
	e.mu.Lock()
	cb := e.onState
	e.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

// drive paces the animation. It owns every context-touching command: Init is
// sent here rather than from Attach so that in inline mode all GL work lands
// on this one locked thread.
func (e *Engine) drive() {
	defer e.wg.Done()

	e.mu.Lock()
	ch := e.ch
	surface := e.surface
	inline := e.inline
	patch := e.cfg.patch()
	e.mu.Unlock()

	if inline {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	ch.Send(render.Init{Surface: surface, Fragment: shader.FragmentSource})
	ch.Send(render.Update{Patch: patch})

	interval := time.Second / time.Duration(e.opts.frameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var clock float64
	last := time.Now()
	lastW, lastH := surface.DisplaySize()
	lastScale := surface.Scale()

	for {
		select {
		case <-e.quit:
			ch.Send(render.Destroy{})
			ch.Close()
			return
		case a := <-ch.Acks():
			e.handleAck(a)
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if e.stopped.Load() || e.failed.Load() {
				continue
			}

			e.mu.Lock()
			speed := e.cfg.speed
			e.mu.Unlock()
			clock += elapsed.Seconds() * speed

			if w, h := surface.DisplaySize(); w != lastW || h != lastH || surface.Scale() != lastScale {
				lastW, lastH = w, h
				lastScale = surface.Scale()
				ch.Send(render.Resize{Width: w, Height: h, Scale: lastScale})
			}
			ch.Send(render.Render{Time: clock})
		}
	}
}

func (e *Engine) handleAck(a render.Ack) {
	switch a := a.(type) {
	case render.Ready:
		e.readySeen.Store(true)
		if e.stopped.Load() {
			e.setState(StatePaused)
		} else {
			e.setState(StatePlaying)
		}
	case render.Failed:
		e.failed.Store(true)
		logging.L().Error("render context failed", "message", a.Message)
		e.setState(StatePaused)
	}
}
