package vulkan

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/gogpu/wgpu/hal/vulkan/vk"
)

// surfaceExtension must be enabled: the instance command table refuses to
// load without the VK_KHR_surface query functions.
const surfaceExtension = "VK_KHR_surface\x00"

// resultError is a VkResult returned by a named command.
type resultError struct {
	op     string
	result vk.Result
}

func (e *resultError) Error() string {
	return e.op + ": " + resultString(e.result)
}

// loaderDriver talks to the system Vulkan loader.
type loaderDriver struct {
	cmds *vk.Commands
}

func (d *loaderDriver) load() error {
	if err := vk.Init(); err != nil {
		return err
	}
	cmds := vk.NewCommands()
	if err := cmds.LoadGlobal(); err != nil {
		return err
	}
	d.cmds = cmds
	return nil
}

func (d *loaderDriver) createInstance(cfg config) (instance, error) {
	name := cfg.applicationName + "\x00"
	namePtr := uintptr(unsafe.Pointer(unsafe.StringData(name)))
	ext := surfaceExtension
	extPtr := uintptr(unsafe.Pointer(unsafe.StringData(ext)))

	appInfo := vk.ApplicationInfo{
		SType:            vk.StructureTypeApplicationInfo,
		PApplicationName: namePtr,
		PEngineName:      namePtr,
		ApiVersion:       cfg.apiVersion,
	}
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledExtensionCount:   1,
		PpEnabledExtensionNames: uintptr(unsafe.Pointer(&extPtr)),
	}

	var handle vk.Instance
	res := d.cmds.CreateInstance(&createInfo, nil, &handle)
	runtime.KeepAlive(name)
	runtime.KeepAlive(ext)
	runtime.KeepAlive(&extPtr)
	runtime.KeepAlive(&appInfo)
	if res != vk.Success {
		return nil, &resultError{op: "vkCreateInstance", result: res}
	}

	if err := d.cmds.LoadInstance(handle); err != nil {
		// vkDestroyInstance resolves first, so it is usable here.
		d.cmds.DestroyInstance(handle, nil)
		return nil, fmt.Errorf("load instance commands: %w", err)
	}
	return &loaderInstance{cmds: d.cmds, handle: handle}, nil
}

type loaderInstance struct {
	cmds   *vk.Commands
	handle vk.Instance
}

func (i *loaderInstance) physicalDevices() ([]vk.PhysicalDevice, error) {
	var count uint32
	if res := i.cmds.EnumeratePhysicalDevices(i.handle, &count, nil); res != vk.Success {
		return nil, &resultError{op: "vkEnumeratePhysicalDevices", result: res}
	}
	if count == 0 {
		return nil, nil
	}

	devices := make([]vk.PhysicalDevice, count)
	res := i.cmds.EnumeratePhysicalDevices(i.handle, &count, &devices[0])
	if res != vk.Success && res != vk.Incomplete {
		return nil, &resultError{op: "vkEnumeratePhysicalDevices", result: res}
	}
	return devices[:count], nil
}

func (i *loaderInstance) properties(dev vk.PhysicalDevice, out *vk.PhysicalDeviceProperties) {
	i.cmds.GetPhysicalDeviceProperties(dev, out)
}

func (i *loaderInstance) memoryProperties(dev vk.PhysicalDevice, out *vk.PhysicalDeviceMemoryProperties) {
	i.cmds.GetPhysicalDeviceMemoryProperties(dev, out)
}

func (i *loaderInstance) destroy() {
	if i.handle == 0 {
		return
	}
	i.cmds.DestroyInstance(i.handle, nil)
	i.handle = 0
}
