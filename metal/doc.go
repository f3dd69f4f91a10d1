// Package metal enumerates GPUs through Apple's Metal framework.
//
// Devices are read through the Objective-C runtime without cgo. Metal has
// no vendor ID and no driver version, so the vendor is guessed from the
// device name. Discrete cards report their VRAM through the IORegistry;
// unified-memory devices use the recommended working-set size instead.
//
// On platforms other than macOS the package compiles, and Enumerate always
// returns ErrNotSupported.
package metal
