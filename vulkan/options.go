package vulkan

// DefaultApplicationName is the application and engine name reported to
// the Vulkan loader.
const DefaultApplicationName = "GPUInfoApp"

// config holds instance creation settings.
type config struct {
	applicationName string
	apiVersion      uint32
}

func defaultConfig() config {
	return config{
		applicationName: DefaultApplicationName,
		apiVersion:      makeAPIVersion(1, 0),
	}
}

// Option configures the throwaway instance created by Enumerate.
type Option func(*config)

// WithApplicationName sets the application and engine name passed to the
// loader. An empty name keeps the default.
func WithApplicationName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.applicationName = name
		}
	}
}

// WithAPIVersion sets the requested Vulkan API version. The default is 1.0,
// the lowest version every driver accepts.
func WithAPIVersion(major, minor uint32) Option {
	return func(c *config) {
		c.apiVersion = makeAPIVersion(major, minor)
	}
}

// makeAPIVersion packs a VK_MAKE_API_VERSION value with variant and patch 0.
func makeAPIVersion(major, minor uint32) uint32 {
	return major<<22 | (minor&0x3FF)<<12
}
