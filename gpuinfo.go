package gpuinfo

import (
	"github.com/gogpu/gpuinfo/types"
)

// GPU is the backend-independent descriptor of one GPU.
type GPU = types.GPU

// GPUKind classifies a GPU.
type GPUKind = types.GPUKind

// GPULocation is the physical placement of a GPU.
type GPULocation = types.GPULocation

// GPU kinds.
const (
	GPUKindUnknown    = types.GPUKindUnknown
	GPUKindIntegrated = types.GPUKindIntegrated
	GPUKindDiscrete   = types.GPUKindDiscrete
	GPUKindVirtual    = types.GPUKindVirtual
	GPUKindCPU        = types.GPUKindCPU
)

// GPU locations.
const (
	GPULocationUnspecified = types.GPULocationUnspecified
	GPULocationBuiltIn     = types.GPULocationBuiltIn
	GPULocationSlot        = types.GPULocationSlot
	GPULocationExternal    = types.GPULocationExternal
)

// Unknown is the placeholder for absent or undecodable string fields.
const Unknown = types.Unknown

// RetrieveGPUInfo lists the GPUs visible to the compiled-in backend.
//
// On success the result is non-nil, every Name and Vendor is non-empty,
// and ClockSpeed and Temperature are nil. Each call queries the system
// afresh; nothing is cached.
func RetrieveGPUInfo() ([]GPU, error) {
	b := Backend()
	gpus, err := b.Enumerate()
	if err != nil {
		Logger().Debug("gpuinfo: enumeration failed", "backend", b.Variant(), "err", err)
		return nil, err
	}

	out := make([]GPU, len(gpus))
	for i, g := range gpus {
		out[i] = g.Normalize()
	}
	Logger().Info("gpuinfo: retrieved GPU info", "backend", b.Variant(), "count", len(out))
	return out, nil
}
