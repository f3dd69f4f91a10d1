package vulkan

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/vulkan/vk"

	"github.com/gogpu/gpuinfo/hal"
	"github.com/gogpu/gpuinfo/types"
)

// noDevicesDetail is the OperationError detail when the loader works but
// reports no physical devices.
const noDevicesDetail = "No Vulkan-compatible GPUs found."

// driver is the Vulkan loader.
type driver interface {
	// load opens the loader library and resolves the global commands.
	load() error
	createInstance(cfg config) (instance, error)
}

// instance is a VkInstance and the commands bound to it.
type instance interface {
	physicalDevices() ([]vk.PhysicalDevice, error)
	properties(dev vk.PhysicalDevice, out *vk.PhysicalDeviceProperties)
	memoryProperties(dev vk.PhysicalDevice, out *vk.PhysicalDeviceMemoryProperties)
	destroy()
}

// Enumerate lists every physical device the Vulkan loader reports.
//
// A missing loader yields ErrNotSupported. Any failure after the loader is
// open, including an empty device list, yields *OperationError. The
// instance created for the query is destroyed before Enumerate returns.
func Enumerate(opts ...Option) ([]types.GPU, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return enumerate(&loaderDriver{}, cfg)
}

// IsSupported reports whether the Vulkan loader can be opened.
func IsSupported() bool {
	return (&loaderDriver{}).load() == nil
}

func enumerate(d driver, cfg config) ([]types.GPU, error) {
	if err := d.load(); err != nil {
		hal.Logger().Debug("vulkan: loader unavailable", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrNotSupported, err)
	}

	inst, err := d.createInstance(cfg)
	if err != nil {
		return nil, &OperationError{Detail: "failed to create instance: " + err.Error(), Err: err}
	}
	defer inst.destroy()

	devices, err := inst.physicalDevices()
	if err != nil {
		return nil, &OperationError{Detail: "failed to enumerate physical devices: " + err.Error(), Err: err}
	}
	if len(devices) == 0 {
		return nil, &OperationError{Detail: noDevicesDetail}
	}

	gpus := make([]types.GPU, 0, len(devices))
	for _, dev := range devices {
		var props vk.PhysicalDeviceProperties
		var mem vk.PhysicalDeviceMemoryProperties
		inst.properties(dev, &props)
		inst.memoryProperties(dev, &mem)

		g := describe(&props, &mem)
		hal.Logger().Debug("vulkan: device",
			"name", g.Name,
			"kind", g.Kind,
			"vendorID", fmt.Sprintf("%#04x", props.VendorID),
			"driver", g.DriverVersion,
			"vramMiB", g.VRAM,
		)
		gpus = append(gpus, g)
	}
	hal.Logger().Info("vulkan: enumerated devices", "count", len(gpus))
	return gpus, nil
}

// Backend is the Vulkan implementation of hal.Backend.
type Backend struct {
	// Options are applied to every Enumerate call.
	Options []Option
}

var _ hal.Backend = Backend{}

// Variant returns gputypes.BackendVulkan.
func (Backend) Variant() gputypes.Backend { return gputypes.BackendVulkan }

// Enumerate lists the Vulkan physical devices.
func (b Backend) Enumerate() ([]types.GPU, error) {
	return Enumerate(b.Options...)
}
