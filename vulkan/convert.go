package vulkan

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/gogpu/wgpu/hal/vulkan/vk"

	"github.com/gogpu/gpuinfo/types"
)

// PCI vendor IDs.
const (
	vendorIntel  = 0x8086
	vendorNVIDIA = 0x10DE
	vendorAMD    = 0x1002
)

// vendorName maps a PCI vendor ID to a vendor name.
func vendorName(id uint32) string {
	switch id {
	case vendorIntel:
		return "Intel"
	case vendorNVIDIA:
		return "NVIDIA"
	case vendorAMD:
		return "AMD"
	default:
		return types.Unknown
	}
}

// driverVersion decodes a packed driver version as 10/10/12 bit fields.
// Vendors are free to pack this value their own way (NVIDIA uses 10/8/8/6),
// so the result is only an approximation for some drivers.
func driverVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22&0x3FF, v>>12&0x3FF, v&0xFFF)
}

// kindFromDeviceType maps VkPhysicalDeviceType to a GPU kind.
func kindFromDeviceType(t vk.PhysicalDeviceType) types.GPUKind {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return types.GPUKindIntegrated
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return types.GPUKindDiscrete
	case vk.PhysicalDeviceTypeVirtualGpu:
		return types.GPUKindVirtual
	case vk.PhysicalDeviceTypeCpu:
		return types.GPUKindCPU
	default:
		return types.GPUKindUnknown
	}
}

// deviceName decodes the NUL-terminated device name buffer.
func deviceName(buf [256]byte) string {
	name := buf[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if len(name) == 0 || !utf8.Valid(name) {
		return types.Unknown
	}
	return string(name)
}

// deviceLocalVRAM sums the device-local heaps and returns MiB.
func deviceLocalVRAM(mem *vk.PhysicalDeviceMemoryProperties) uint64 {
	n := int(mem.MemoryHeapCount)
	if n > len(mem.MemoryHeaps) {
		n = len(mem.MemoryHeaps)
	}
	var total uint64
	for _, heap := range mem.MemoryHeaps[:n] {
		if heap.Flags&vk.MemoryHeapFlags(vk.MemoryHeapDeviceLocalBit) != 0 {
			total += uint64(heap.Size)
		}
	}
	return total / types.BytesPerMiB
}

// describe builds the descriptor of one physical device.
func describe(props *vk.PhysicalDeviceProperties, mem *vk.PhysicalDeviceMemoryProperties) types.GPU {
	return types.GPU{
		Kind:          kindFromDeviceType(props.DeviceType),
		Name:          deviceName(props.DeviceName),
		Vendor:        vendorName(props.VendorID),
		DriverVersion: driverVersion(props.DriverVersion),
		VRAM:          deviceLocalVRAM(mem),
	}
}

// resultString names a VkResult for error messages.
func resultString(r vk.Result) string {
	switch r {
	case vk.Success:
		return "VK_SUCCESS"
	case vk.Incomplete:
		return "VK_INCOMPLETE"
	case vk.ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case vk.ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case vk.ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case vk.ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case vk.ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case vk.ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case vk.ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case vk.ErrorUnknown:
		return "VK_ERROR_UNKNOWN"
	default:
		return fmt.Sprintf("VkResult(%d)", int32(r))
	}
}
