//go:build !darwin && !nogpu

package gpuinfo

import (
	"github.com/gogpu/gpuinfo/hal"
	"github.com/gogpu/gpuinfo/vulkan"
)

func init() {
	Register(BackendVulkan, func() hal.Backend { return vulkan.Backend{} })
}
