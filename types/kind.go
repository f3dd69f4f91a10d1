package types

import (
	"fmt"
	"strings"
)

// GPUKind is a coarse hardware classification of a GPU.
//
// Classification is heuristic and backend specific: Metal derives it from
// power and placement flags, Vulkan from the native device type.
type GPUKind uint8

const (
	// GPUKindUnknown is a device whose kind could not be determined.
	GPUKindUnknown GPUKind = iota
	// GPUKindIntegrated shares memory and package with the CPU.
	GPUKindIntegrated
	// GPUKindDiscrete is a separate GPU, usually with dedicated memory.
	GPUKindDiscrete
	// GPUKindVirtual is a virtual GPU exposed by a hypervisor.
	GPUKindVirtual
	// GPUKindCPU is a software implementation running on the CPU.
	GPUKindCPU
)

var kindNames = [...]string{
	GPUKindUnknown:    Unknown,
	GPUKindIntegrated: "Integrated",
	GPUKindDiscrete:   "Discrete",
	GPUKindVirtual:    "Virtual",
	GPUKindCPU:        "CPU",
}

// String returns the kind name.
func (k GPUKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return Unknown
}

// MarshalText implements encoding.TextMarshaler.
func (k GPUKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Names are matched case-insensitively.
func (k *GPUKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if strings.EqualFold(name, string(text)) {
			*k = GPUKind(i)
			return nil
		}
	}
	return fmt.Errorf("types: invalid GPU kind %q", text)
}

// GPULocation is the physical placement of a GPU.
//
// Only backends that expose placement (Metal) set it; everything else
// reports GPULocationUnspecified.
type GPULocation uint8

const (
	// GPULocationUnspecified means the backend did not report a placement.
	GPULocationUnspecified GPULocation = iota
	// GPULocationBuiltIn is a GPU built into the machine.
	GPULocationBuiltIn
	// GPULocationSlot is a GPU in an internal expansion slot.
	GPULocationSlot
	// GPULocationExternal is a GPU in an external enclosure.
	GPULocationExternal
)

var locationNames = [...]string{
	GPULocationUnspecified: "Unspecified",
	GPULocationBuiltIn:     "BuiltIn",
	GPULocationSlot:        "Slot",
	GPULocationExternal:    "External",
}

// String returns the location name.
func (l GPULocation) String() string {
	if int(l) < len(locationNames) {
		return locationNames[l]
	}
	return locationNames[GPULocationUnspecified]
}

// MarshalText implements encoding.TextMarshaler.
func (l GPULocation) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Names are matched case-insensitively.
func (l *GPULocation) UnmarshalText(text []byte) error {
	for i, name := range locationNames {
		if strings.EqualFold(name, string(text)) {
			*l = GPULocation(i)
			return nil
		}
	}
	return fmt.Errorf("types: invalid GPU location %q", text)
}
