package gpuinfo

import (
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/gpuinfo/hal"
)

// Backend names.
const (
	BackendMetal  = "metal"
	BackendVulkan = "vulkan"
)

// BackendFactory creates a new backend instance.
type BackendFactory func() hal.Backend

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendMetal, BackendVulkan}
)

// Register registers a backend factory with the given name.
// Platform files call it from init(); exactly one native backend is
// registered per build, none with the nogpu tag.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted names of registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns a backend instance by name, or nil if it is not registered.
func Get(name string) hal.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Backend returns the compiled-in backend. When none is registered it
// returns hal.Stub, whose Enumerate fails with hal.ErrNoBackend.
func Backend() hal.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}
	for _, name := range slices.Sorted(maps.Keys(backends)) {
		if b := backends[name](); b != nil {
			return b
		}
	}
	return hal.Stub{}
}
