package chromanoise

import (
	"log/slog"

	"github.com/Mr1am/chroma-noise/internal/logging"
)

// SetLogger routes the package's structured logs to l. Logging is disabled
// by default and passing nil disables it again.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
