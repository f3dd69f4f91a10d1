// Package gpuinfo lists the GPUs visible to the operating system.
//
// # Overview
//
// A single call returns one normalized descriptor per device: kind, name,
// vendor, driver version and approximate VRAM. Telemetry fields (clock
// speed, temperature) exist in the descriptor but are never populated.
//
//	gpus, err := gpuinfo.RetrieveGPUInfo()
//	if gpuinfo.IsNotSupported(err) {
//	    // no graphics API on this machine
//	}
//	for _, g := range gpus {
//	    fmt.Println(g)
//	}
//
// # Backends
//
// The backend is chosen at compile time:
//   - macOS: Metal (package metal)
//   - everything else: Vulkan, loaded at runtime (package vulkan)
//   - -tags nogpu: no backend; RetrieveGPUInfo returns hal.ErrNoBackend
//
// Both backends call native code without cgo and must be built with
// CGO_ENABLED=0.
//
// # Logging
//
// gpuinfo is silent by default. See [SetLogger].
package gpuinfo
