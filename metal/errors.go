package metal

import "errors"

// ErrNotSupported is returned when Metal reports no devices. This is how a
// machine without a usable graphics subsystem (a headless VM without GPU
// passthrough, or any non-Apple platform) shows up.
var ErrNotSupported = errors.New("metal: Metal is not supported on this platform")

// IsNotSupported reports whether err is or wraps ErrNotSupported.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
