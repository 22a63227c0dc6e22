package render

import (
	"image"
	"sync"
)

// Pixmap is a CPU surface: a plain RGBA buffer with no display attached.
// It is always transferable (handing it to the worker is a memory handoff),
// and it is what the software renderer draws into.
type Pixmap struct {
	mu   sync.Mutex
	w, h int
	pix  []uint8
}

// NewPixmap allocates a w x h CPU surface.
func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{w: w, h: h, pix: make([]uint8, w*h*4)}
}

func (p *Pixmap) Acquire() error { return nil }
func (p *Pixmap) Release()       {}

func (p *Pixmap) DisplaySize() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w, p.h
}

func (p *Pixmap) Scale() float64 { return 1 }

func (p *Pixmap) PixelSize() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w, p.h
}

func (p *Pixmap) SetPixelSize(w, h int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w == p.w && h == p.h {
		return
	}
	p.w, p.h = w, h
	p.pix = make([]uint8, w*h*4)
}

func (p *Pixmap) Present() error { return nil }

// write replaces the whole buffer with one finished frame. The frame must be
// w*h*4 bytes for the given dimensions; stale frames from a concurrent
// resize are dropped.
func (p *Pixmap) write(w, h int, frame []uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w != p.w || h != p.h || len(frame) != len(p.pix) {
		return
	}
	copy(p.pix, frame)
}

// RGBAAt returns the pixel at (x, y), origin top-left.
func (p *Pixmap) RGBAAt(x, y int) (r, g, b, a uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return 0, 0, 0, 0
	}
	i := (y*p.w + x) * 4
	return p.pix[i], p.pix[i+1], p.pix[i+2], p.pix[i+3]
}

// Image copies the current contents into a standard image.
func (p *Pixmap) Image() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image.NewRGBA(image.Rect(0, 0, p.w, p.h))
	copy(img.Pix, p.pix)
	return img
}
