// Package hal defines the contract every gpuinfo backend implements and
// the logger the backends share.
//
// A backend turns the devices of one native API (Metal, Vulkan) into
// [types.GPU] descriptors. Backends are selected at build time by the root
// gpuinfo package; this package only describes the shape they share:
//
//	type Backend interface {
//		Variant() gputypes.Backend
//		Enumerate() ([]types.GPU, error)
//	}
//
// Logging is silent by default. Enable it with SetLogger:
//
//	hal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
package hal
