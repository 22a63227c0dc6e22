package render

import "sync"

// Inline executes commands synchronously on the sender's goroutine. It is
// the fallback for surfaces whose drawing rights cannot leave the thread
// they were created on; the host controller behaves identically to the
// worker path because both speak the same Channel protocol.
type Inline struct {
	mu     sync.Mutex
	closed bool
	s      session
	acks   chan Ack
}

// NewInline returns a same-context render channel.
func NewInline() *Inline {
	return &Inline{acks: make(chan Ack, 8)}
}

func (c *Inline) Send(cmd Command) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if a, ok := c.s.dispatch(cmd); ok {
		select {
		case c.acks <- a:
		default:
		}
	}
}

func (c *Inline) Acks() <-chan Ack {
	return c.acks
}

func (c *Inline) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.s.destroy()
}
