package gpuinfo

import (
	"log/slog"

	"github.com/gogpu/gpuinfo/hal"
)

// SetLogger configures the logger for gpuinfo and all its sub-packages.
// By default, gpuinfo produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior). The logger
// is also handed to the gogpu/wgpu HAL so native loader diagnostics share
// the same sink.
//
// Log levels used by gpuinfo:
//   - [slog.LevelDebug]: per-device details, swallowed best-effort failures
//   - [slog.LevelInfo]: enumeration results (backend, device count)
//
// Example:
//
//	gpuinfo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	hal.SetLogger(l)
}

// Logger returns the current logger used by gpuinfo.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return hal.Logger()
}
