// Package types defines the platform-independent GPU descriptor shared by
// every gpuinfo backend.
//
// The descriptor is a plain value: backends build it, callers read it.
// GPUKind and GPULocation implement encoding.TextMarshaler, so a GPU
// serializes cleanly to JSON, YAML or TOML:
//
//	data, _ := json.Marshal(gpus)
//	// [{"kind":"Integrated","name":"Apple M2 Pro","vendor":"Apple",...}]
//
// VRAM is always expressed in MiB. A value of 0 means "unknown".
package types
