package vulkan

import "errors"

// ErrNotSupported is returned when the Vulkan loader cannot be found or
// initialised. Callers should treat it as an expected, recoverable
// condition rather than a failure.
var ErrNotSupported = errors.New("vulkan: Vulkan is not supported on this system")

// OperationError is returned when the Vulkan API loaded but a call failed,
// or when it reported no physical devices.
type OperationError struct {
	// Detail is a human-readable description of the failure.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func (e *OperationError) Error() string {
	return "vulkan: operation failed: " + e.Detail
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsNotSupported reports whether err is or wraps ErrNotSupported.
func IsNotSupported(err error) bool {
	return errors.Is(err, ErrNotSupported)
}
