package render

import (
	"runtime"
	"sync"
)

// Worker runs a session on its own goroutine with a locked OS thread, so a
// transferred GL context stays current for every command it executes.
// Commands are delivered in FIFO order over a buffered channel.
type Worker struct {
	mu     sync.Mutex
	closed bool
	cmds   chan Command
	acks   chan Ack
}

// StartWorker spawns the render goroutine and returns its channel endpoint.
func StartWorker() *Worker {
	w := &Worker{
		cmds: make(chan Command, 64),
		acks: make(chan Ack, 8),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var s session
	defer s.destroy()

	for c := range w.cmds {
		if a, ok := s.dispatch(c); ok {
			// Acks must not stall the render loop; the host owns draining.
			select {
			case w.acks <- a:
			default:
			}
		}
		if _, ok := c.(Destroy); ok {
			// Keep draining so late senders never block, but do no work.
			s.destroy()
		}
	}
}

// Send delivers a command without blocking the host context. Render commands
// are dropped when the worker has fallen behind; everything else always
// fits the buffer in practice because the driver issues at most one command
// batch per tick.
func (w *Worker) Send(c Command) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if _, isRender := c.(Render); isRender {
		select {
		case w.cmds <- c:
		default:
			// A newer frame request will follow; this one is stale anyway.
		}
		return
	}
	w.cmds <- c
}

// Acks exposes the render-to-host acknowledgement stream.
func (w *Worker) Acks() <-chan Ack {
	return w.acks
}

// Close stops the worker after it drains pending commands. Idempotent.
func (w *Worker) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.cmds)
}
