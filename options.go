package chromanoise

type engineOptions struct {
	frameRate int
	inline    bool
}

func defaultEngineOptions() engineOptions {
	return engineOptions{frameRate: 60}
}

// Option customizes engine construction.
type Option func(*engineOptions)

// WithFrameRate sets the driver's target frames per second. Values below one
// are ignored. The default is 60.
func WithFrameRate(fps int) Option {
	return func(o *engineOptions) {
		if fps > 0 {
			o.frameRate = fps
		}
	}
}

// WithInlineRendering forces the host-context render path even for surfaces
// whose context could be handed to a worker thread.
func WithInlineRendering() Option {
	return func(o *engineOptions) {
		o.inline = true
	}
}
