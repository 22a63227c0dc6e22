package render

// Command is a host-to-render message. The set is closed: the session
// ignores anything it does not recognize.
type Command interface{ isCommand() }

// Init acquires the surface, builds the renderer for it, and compiles the
// supplied fragment source where a GPU program is involved.
type Init struct {
	Surface  Surface
	Fragment string
}

// Update merges a partial parameter set into the current snapshot. It never
// triggers a draw by itself.
type Update struct {
	Patch Patch
}

// Render draws one frame at the given animation time (seconds).
type Render struct {
	Time float64
}

// Resize adjusts the backing pixel buffer to floor(display size x scale).
type Resize struct {
	Width  int
	Height int
	Scale  float64
}

// Destroy releases all render-context resources. Further commands are
// ignored.
type Destroy struct{}

func (Init) isCommand()    {}
func (Update) isCommand()  {}
func (Render) isCommand()  {}
func (Resize) isCommand()  {}
func (Destroy) isCommand() {}

// Ack is a render-to-host message.
type Ack interface{ isAck() }

// Ready reports successful initialization.
type Ready struct{}

// Failed reports an unrecoverable render-context failure; the instance
// accepts no further render commands.
type Failed struct {
	Message string
}

func (Ready) isAck()  {}
func (Failed) isAck() {}

// Channel is the command/ack conduit between the host context and the render
// context. The worker implementation executes commands on a dedicated locked
// OS thread; the inline implementation executes them synchronously on the
// sender's goroutine. Host-side logic is identical either way.
type Channel interface {
	// Send delivers a command. It never blocks the caller: when the render
	// context has fallen behind, frame-level commands are dropped.
	Send(Command)
	// Acks exposes the acknowledgement stream (Ready, Failed).
	Acks() <-chan Ack
	// Close tears the channel down. Idempotent; commands sent after Close
	// are discarded.
	Close()
}
