package metal

import (
	"strings"

	"github.com/gogpu/gpuinfo/hal"
	"github.com/gogpu/gpuinfo/types"
)

// MTLDeviceLocation values. MTLDeviceLocationUnspecified is NSUIntegerMax
// and falls through to GPULocationUnspecified.
const (
	mtlDeviceLocationBuiltIn  = 0
	mtlDeviceLocationSlot     = 1
	mtlDeviceLocationExternal = 2
)

// locationFromNative converts an MTLDeviceLocation value.
func locationFromNative(v uint64) types.GPULocation {
	switch v {
	case mtlDeviceLocationBuiltIn:
		return types.GPULocationBuiltIn
	case mtlDeviceLocationSlot:
		return types.GPULocationSlot
	case mtlDeviceLocationExternal:
		return types.GPULocationExternal
	default:
		return types.GPULocationUnspecified
	}
}

// kindRule maps one device signal to a kind.
type kindRule struct {
	signal string
	match  func(d deviceInfo) bool
	kind   types.GPUKind
}

// kindRules are evaluated top to bottom and the first match wins.
// Low power beats removability, which beats physical placement.
var kindRules = []kindRule{
	{"low-power", func(d deviceInfo) bool { return d.lowPower }, types.GPUKindIntegrated},
	{"removable", func(d deviceInfo) bool { return d.removable }, types.GPUKindDiscrete},
	{"built-in", func(d deviceInfo) bool { return d.location == types.GPULocationBuiltIn }, types.GPUKindIntegrated},
}

// classifyKind returns the kind of d, Discrete when no rule matches.
func classifyKind(d deviceInfo) types.GPUKind {
	for _, r := range kindRules {
		if r.match(d) {
			return r.kind
		}
	}
	return types.GPUKindDiscrete
}

// vendorRule matches a vendor by case-sensitive substrings of the device name.
type vendorRule struct {
	vendor   string
	patterns []string
}

// vendorRules are evaluated top to bottom and the first match wins.
var vendorRules = []vendorRule{
	{"Apple", []string{"Apple", "M1", "M2", "M3", "M4", "M5"}},
	{"Intel", []string{"Intel"}},
	{"AMD", []string{"AMD", "Radeon"}},
	{"NVIDIA", []string{"NVIDIA"}},
}

// detectVendor guesses the vendor from a Metal device name.
// Metal exposes no vendor ID, so this is a heuristic, not a lookup.
func detectVendor(name string) string {
	for _, r := range vendorRules {
		for _, p := range r.patterns {
			if strings.Contains(name, p) {
				return r.vendor
			}
		}
	}
	return types.Unknown
}

// vramRegistryKeys are the IORegistry properties that may hold the VRAM
// size of a discrete card, in lookup order.
var vramRegistryKeys = []string{"VRAM,totalMB", "VRAM", "VRAM,total"}

// computeVRAM returns the VRAM estimate for d in MiB.
//
// Unified memory devices have no dedicated VRAM; the recommended working
// set stands in for it. Other devices are looked up in the IORegistry and
// fall back to the same working-set estimate.
func computeVRAM(sys system, d deviceInfo) uint64 {
	fallback := d.recommendedMaxWorkingSet / types.BytesPerMiB
	if d.unifiedMemory {
		return fallback
	}
	if v, ok := registryVRAM(sys, d.registryID); ok {
		return v
	}
	return fallback
}

// registryVRAM reads the first numeric VRAM property of the IORegistry
// entry with the given ID. Every failure yields ok == false.
func registryVRAM(sys system, registryID uint64) (uint64, bool) {
	props, ok := sys.registryProperties(registryID)
	if !ok {
		hal.Logger().Debug("metal: no IORegistry entry", "registryID", registryID)
		return 0, false
	}
	defer props.release()

	for _, key := range vramRegistryKeys {
		if v, ok := props.number(key); ok && v >= 0 {
			hal.Logger().Debug("metal: VRAM from IORegistry", "registryID", registryID, "key", key, "value", v)
			return uint64(v), true
		}
	}
	return 0, false
}
