package gpuinfo

import (
	"errors"

	"github.com/gogpu/gpuinfo/metal"
	"github.com/gogpu/gpuinfo/vulkan"
)

var (
	// ErrVulkanNotSupported is returned when no Vulkan loader is present.
	ErrVulkanNotSupported = vulkan.ErrNotSupported

	// ErrMetalNotSupported is returned when Metal reports no devices.
	ErrMetalNotSupported = metal.ErrNotSupported

	// ErrOpenGLContextCreationFailed and ErrOpenGLQueryFailed are reserved
	// for an OpenGL backend. No backend returns them yet.
	ErrOpenGLContextCreationFailed = errors.New("gpuinfo: failed to create OpenGL context")
	ErrOpenGLQueryFailed           = errors.New("gpuinfo: OpenGL query failed")
)

// VulkanOperationError is returned when the Vulkan API loaded but a call
// failed or no device was found. Use errors.As to read Detail.
type VulkanOperationError = vulkan.OperationError

// IsVulkanNotSupported reports whether err means the Vulkan API is absent.
func IsVulkanNotSupported(err error) bool {
	return vulkan.IsNotSupported(err)
}

// IsMetalNotSupported reports whether err means Metal is unavailable.
func IsMetalNotSupported(err error) bool {
	return metal.IsNotSupported(err)
}

// IsNotSupported reports whether err means the platform graphics API is
// absent, as opposed to a failure of an API that is present.
func IsNotSupported(err error) bool {
	return IsVulkanNotSupported(err) || IsMetalNotSupported(err)
}
