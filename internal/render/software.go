package render

import (
	"runtime"
	"sync"
)

// cpuRenderer evaluates the fragment program on the CPU and writes frames
// into a Pixmap. It keeps headless hosts (and the tests) on the exact same
// gradient semantics as the GL path.
type cpuRenderer struct {
	pm *Pixmap
}

func newCPURenderer(pm *Pixmap) *cpuRenderer {
	return &cpuRenderer{pm: pm}
}

func (r *cpuRenderer) init(fragment string) error {
	// The fragment source is interpreted natively; nothing to compile.
	return nil
}

func (r *cpuRenderer) resize(w, h int) {}

func (r *cpuRenderer) render(snap *Snapshot) error {
	w := int(snap.Resolution[0])
	h := int(snap.Resolution[1])
	if w <= 0 || h <= 0 {
		return nil
	}
	frame := make([]uint8, w*h*4)

	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	rowsPer := (h + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < h; start += rowsPer {
		end := start + rowsPer
		if end > h {
			end = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					cr, cg, cb := shadePixel(snap, x, y)
					i := (y*w + x) * 4
					frame[i] = uint8(cr*255 + 0.5)
					frame[i+1] = uint8(cg*255 + 0.5)
					frame[i+2] = uint8(cb*255 + 0.5)
					frame[i+3] = 255
				}
			}
		}(start, end)
	}
	wg.Wait()

	r.pm.write(w, h, frame)
	return nil
}

func (r *cpuRenderer) destroy() {}
