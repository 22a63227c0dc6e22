package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	chromanoise "github.com/Mr1am/chroma-noise"
)

func init() {
	runtime.LockOSThread()
}

// glfwSurface adapts a GLFW window to the engine's surface interface. GLFW
// only allows geometry queries on the main thread, so sizes and scale are
// cached there by refresh and read lock-free elsewhere.
type glfwSurface struct {
	window *glfw.Window

	mu     sync.Mutex
	w, h   int
	pw, ph int
	scale  float64
}

func newGLFWSurface(window *glfw.Window) *glfwSurface {
	s := &glfwSurface{window: window}
	s.refresh()
	return s
}

// refresh re-reads window geometry. Main thread only.
func (s *glfwSurface) refresh() {
	w, h := s.window.GetSize()
	pw, ph := s.window.GetFramebufferSize()
	sx, _ := s.window.GetContentScale()

	s.mu.Lock()
	s.w, s.h = w, h
	s.pw, s.ph = pw, ph
	s.scale = float64(sx)
	s.mu.Unlock()
}

func (s *glfwSurface) Acquire() error {
	s.window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return nil
}

func (s *glfwSurface) Release() {
	glfw.DetachCurrentContext()
}

func (s *glfwSurface) DisplaySize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *glfwSurface) Scale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *glfwSurface) PixelSize() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pw, s.ph
}

// SetPixelSize is a no-op: GLFW resizes the framebuffer with the window, so
// the requested size is already what PixelSize reports.
func (s *glfwSurface) SetPixelSize(w, h int) {
	s.mu.Lock()
	s.pw, s.ph = w, h
	s.mu.Unlock()
}

func (s *glfwSurface) Present() error {
	s.window.SwapBuffers()
	return nil
}

func (s *glfwSurface) Transferable() bool {
	return true
}

func main() {
	width := flag.Int("width", 960, "Window width")
	height := flag.Int("height", 540, "Window height")
	warp := flag.Int("warp", 3, "Warp mode (0-6)")
	amount := flag.Float64("amount", 0.8, "Warp amount")
	speed := flag.Float64("speed", 1.0, "Animation speed multiplier")
	seed := flag.Float64("seed", -1, "Noise seed in [0,1); negative picks one at random")
	grain := flag.Float64("grain", 0.04, "Grain amount")
	fps := flag.Int("fps", 60, "Target frames per second")
	inline := flag.Bool("inline", false, "Render on the host context instead of a worker thread")
	verbose := flag.Bool("v", false, "Log engine activity to stderr")
	flag.Parse()

	if flag.NArg() > 0 {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	if *verbose {
		chromanoise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := glfw.Init(); err != nil {
		log.Fatal("Failed to initialize GLFW:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, "chroma noise", nil, nil)
	if err != nil {
		log.Fatal("Failed to create window:", err)
	}
	surface := newGLFWSurface(window)

	var engineOpts []chromanoise.Option
	engineOpts = append(engineOpts, chromanoise.WithFrameRate(*fps))
	if *inline {
		engineOpts = append(engineOpts, chromanoise.WithInlineRendering())
	}

	eng := chromanoise.New(engineOpts...)
	opts := chromanoise.Options{
		Points: []chromanoise.PointOptions{
			{Color: "#ff7a59", X: 0.15, Y: 0.20},
			{Color: "#8d6ae8", X: 0.85, Y: 0.25},
			{Color: "#2bb3a3", X: 0.50, Y: 0.85},
		},
		Warp:  &chromanoise.WarpOptions{Mode: *warp, Amount: *amount, Size: 1.2},
		Speed: *speed,
		Grain: &chromanoise.GrainOptions{Amount: *grain, Size: 1},
	}
	if *seed >= 0 {
		opts.Seed = seed
	}
	eng.Configure(opts)

	if err := eng.Attach(surface); err != nil {
		log.Fatal("Failed to attach surface:", err)
	}
	if err := eng.Start(); err != nil {
		log.Fatal("Failed to start engine:", err)
	}
	defer eng.Teardown()

	eng.OnStateChange(func(s chromanoise.State) {
		log.Println("Engine state:", s)
	})

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(0.1)
		surface.refresh()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
	}
}
