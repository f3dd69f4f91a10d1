package types

import "fmt"

// Unknown is the fallback for descriptor strings the backend could not
// determine.
const Unknown = "Unknown"

// BytesPerMiB converts native byte counts to the MiB unit used by GPU.VRAM.
const BytesPerMiB = 1 << 20

// GPU is the platform-independent descriptor of one graphics device.
//
// Values are built fresh on every enumeration and never mutated
// afterwards. Name, Vendor and DriverVersion are never empty once a backend
// has returned the descriptor.
type GPU struct {
	// Kind is the heuristic device classification.
	Kind GPUKind `json:"kind" yaml:"kind" toml:"kind"`

	// Name is the human-readable device name (e.g., "Apple M2 Pro").
	Name string `json:"name" yaml:"name" toml:"name"`

	// Vendor is the device vendor, or "Unknown".
	Vendor string `json:"vendor" yaml:"vendor" toml:"vendor"`

	// DriverVersion is "major.minor.patch" on Vulkan and "Unknown" on Metal.
	DriverVersion string `json:"driver_version" yaml:"driver_version" toml:"driver_version"`

	// VRAM is the best-effort memory capacity in MiB. 0 means unknown,
	// never a device without memory.
	VRAM uint64 `json:"vram" yaml:"vram" toml:"vram"`

	// ClockSpeed is the core clock in MHz, nil when unavailable.
	ClockSpeed *uint32 `json:"clock_speed,omitempty" yaml:"clock_speed,omitempty" toml:"clock_speed,omitempty"`

	// Temperature is the die temperature in degrees Celsius, nil when unavailable.
	Temperature *uint32 `json:"temperature,omitempty" yaml:"temperature,omitempty" toml:"temperature,omitempty"`
}

// Normalize returns a copy of g with the "Unknown" fallback applied to
// empty Name, Vendor and DriverVersion.
func (g GPU) Normalize() GPU {
	if g.Name == "" {
		g.Name = Unknown
	}
	if g.Vendor == "" {
		g.Vendor = Unknown
	}
	if g.DriverVersion == "" {
		g.DriverVersion = Unknown
	}
	return g
}

// VRAMKnown reports whether the backend was able to estimate VRAM.
func (g GPU) VRAMKnown() bool {
	return g.VRAM != 0
}

// VRAMBytes returns VRAM in bytes (0 when unknown).
func (g GPU) VRAMBytes() uint64 {
	return g.VRAM * BytesPerMiB
}

// String returns a one-line description of the device.
func (g GPU) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.Kind, g.Vendor)
}
