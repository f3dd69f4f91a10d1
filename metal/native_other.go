//go:build !darwin

package metal

// nativeSystem reports no devices outside macOS.
type nativeSystem struct{}

func (nativeSystem) devices() []deviceInfo { return nil }

func (nativeSystem) registryProperties(uint64) (properties, bool) { return nil, false }
