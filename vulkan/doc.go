// Package vulkan enumerates GPUs through the system Vulkan loader.
//
// The loader is opened at runtime, so the package needs no Vulkan SDK at
// build time. Each Enumerate call creates a short-lived instance, reads the
// properties and memory heaps of every physical device, and destroys the
// instance again.
//
// Vendor names come from the PCI vendor ID. VRAM is the sum of the
// device-local memory heaps. The driver version is decoded with the
// standard 10/10/12 bit layout for every vendor, which is only an
// approximation for drivers that pack it differently.
package vulkan
