package metal

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuinfo/hal"
	"github.com/gogpu/gpuinfo/types"
)

// Size is a three-dimensional compute dispatch limit (MTLSize).
type Size struct {
	Width, Height, Depth uint64
}

// GPU is the Metal view of a device. It carries everything the unified
// descriptor has plus the Metal-only properties.
type GPU struct {
	Kind   types.GPUKind
	Name   string
	Vendor string

	// VRAM is the memory estimate in MiB. 0 means unknown.
	VRAM uint64

	IsRemovable bool
	IsHeadless  bool
	IsLowPower  bool

	// RegistryID identifies the device in the IORegistry for this boot.
	RegistryID uint64

	Location         types.GPULocation
	HasUnifiedMemory bool

	MaxThreadsPerThreadgroup Size

	// RecommendedMaxWorkingSet is the OS-suggested memory ceiling in bytes.
	RecommendedMaxWorkingSet uint64
}

// Descriptor maps g to the unified descriptor. Metal has no queryable
// driver version and no telemetry.
func (g GPU) Descriptor() types.GPU {
	return types.GPU{
		Kind:          g.Kind,
		Name:          g.Name,
		Vendor:        g.Vendor,
		DriverVersion: types.Unknown,
		VRAM:          g.VRAM,
	}.Normalize()
}

// deviceInfo holds the raw properties read from one MTLDevice.
type deviceInfo struct {
	name                     string
	removable                bool
	headless                 bool
	lowPower                 bool
	registryID               uint64
	location                 types.GPULocation
	unifiedMemory            bool
	maxThreadsPerThreadgroup Size
	recommendedMaxWorkingSet uint64
}

// system is the native side of the backend.
type system interface {
	// devices returns the properties of every Metal device. Native
	// handles are released before it returns.
	devices() []deviceInfo

	// registryProperties opens the property table of the IORegistry entry
	// with the given ID. The caller must release the result.
	registryProperties(registryID uint64) (properties, bool)
}

// properties is an open IORegistry property table.
type properties interface {
	// number returns the integer value of key, ok == false when the key is
	// absent or not a number.
	number(key string) (int64, bool)
	release()
}

// Enumerate lists every Metal device.
//
// It fails with ErrNotSupported when Metal reports no devices, including on
// platforms other than macOS.
func Enumerate() ([]GPU, error) {
	return enumerate(nativeSystem{})
}

func enumerate(sys system) ([]GPU, error) {
	devices := sys.devices()
	if len(devices) == 0 {
		return nil, ErrNotSupported
	}

	gpus := make([]GPU, 0, len(devices))
	for _, d := range devices {
		g := newGPU(sys, d)
		hal.Logger().Debug("metal: device",
			"name", g.Name,
			"kind", g.Kind,
			"location", g.Location,
			"unifiedMemory", g.HasUnifiedMemory,
			"vramMiB", g.VRAM,
		)
		gpus = append(gpus, g)
	}
	hal.Logger().Info("metal: enumerated devices", "count", len(gpus))
	return gpus, nil
}

func newGPU(sys system, d deviceInfo) GPU {
	name := d.name
	if name == "" {
		name = types.Unknown
	}
	return GPU{
		Kind:                     classifyKind(d),
		Name:                     name,
		Vendor:                   detectVendor(name),
		VRAM:                     computeVRAM(sys, d),
		IsRemovable:              d.removable,
		IsHeadless:               d.headless,
		IsLowPower:               d.lowPower,
		RegistryID:               d.registryID,
		Location:                 d.location,
		HasUnifiedMemory:         d.unifiedMemory,
		MaxThreadsPerThreadgroup: d.maxThreadsPerThreadgroup,
		RecommendedMaxWorkingSet: d.recommendedMaxWorkingSet,
	}
}

// Backend is the Metal implementation of hal.Backend.
type Backend struct{}

var _ hal.Backend = Backend{}

// Variant returns gputypes.BackendMetal.
func (Backend) Variant() gputypes.Backend { return gputypes.BackendMetal }

// Enumerate lists the Metal devices as unified descriptors.
func (Backend) Enumerate() ([]types.GPU, error) {
	gpus, err := Enumerate()
	if err != nil {
		return nil, err
	}
	out := make([]types.GPU, len(gpus))
	for i, g := range gpus {
		out[i] = g.Descriptor()
	}
	return out, nil
}
