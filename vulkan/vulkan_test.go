package vulkan

import (
	"errors"
	"regexp"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/vulkan/vk"

	"github.com/gogpu/gpuinfo/types"
)

type fakeDevice struct {
	props vk.PhysicalDeviceProperties
	mem   vk.PhysicalDeviceMemoryProperties
}

type fakeInstance struct {
	devices   []fakeDevice
	enumErr   error
	destroyed int
}

func (i *fakeInstance) physicalDevices() ([]vk.PhysicalDevice, error) {
	if i.enumErr != nil {
		return nil, i.enumErr
	}
	out := make([]vk.PhysicalDevice, len(i.devices))
	for n := range i.devices {
		out[n] = vk.PhysicalDevice(n + 1)
	}
	return out, nil
}

func (i *fakeInstance) properties(dev vk.PhysicalDevice, out *vk.PhysicalDeviceProperties) {
	*out = i.devices[dev-1].props
}

func (i *fakeInstance) memoryProperties(dev vk.PhysicalDevice, out *vk.PhysicalDeviceMemoryProperties) {
	*out = i.devices[dev-1].mem
}

func (i *fakeInstance) destroy() { i.destroyed++ }

type fakeDriver struct {
	loadErr   error
	createErr error
	inst      *fakeInstance
	cfg       config
}

func (d *fakeDriver) load() error { return d.loadErr }

func (d *fakeDriver) createInstance(cfg config) (instance, error) {
	d.cfg = cfg
	if d.createErr != nil {
		return nil, d.createErr
	}
	return d.inst, nil
}

func name256(s string) [256]byte {
	var b [256]byte
	copy(b[:], s)
	return b
}

func heaps(sizes []uint64, deviceLocal []bool) vk.PhysicalDeviceMemoryProperties {
	var mem vk.PhysicalDeviceMemoryProperties
	mem.MemoryHeapCount = uint32(len(sizes))
	for i, s := range sizes {
		mem.MemoryHeaps[i].Size = vk.DeviceSize(s)
		if deviceLocal[i] {
			mem.MemoryHeaps[i].Flags = vk.MemoryHeapFlags(vk.MemoryHeapDeviceLocalBit)
		}
	}
	return mem
}

func TestEnumerateLoaderMissing(t *testing.T) {
	d := &fakeDriver{loadErr: errors.New("libvulkan.so.1: cannot open shared object file")}
	gpus, err := enumerate(d, defaultConfig())
	if !IsNotSupported(err) {
		t.Fatalf("enumerate() error = %v, want ErrNotSupported", err)
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		t.Error("loader failure must not be an OperationError")
	}
	if gpus != nil {
		t.Errorf("enumerate() = %v, want nil", gpus)
	}
}

func TestEnumerateCreateInstanceFails(t *testing.T) {
	cause := &resultError{op: "vkCreateInstance", result: vk.ErrorIncompatibleDriver}
	d := &fakeDriver{createErr: cause}
	_, err := enumerate(d, defaultConfig())

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("enumerate() error = %v, want *OperationError", err)
	}
	if IsNotSupported(err) {
		t.Error("instance failure must not be ErrNotSupported")
	}
	if !errors.Is(err, cause) {
		t.Error("OperationError should wrap the cause")
	}
	if want := "failed to create instance: vkCreateInstance: VK_ERROR_INCOMPATIBLE_DRIVER"; opErr.Detail != want {
		t.Errorf("Detail = %q, want %q", opErr.Detail, want)
	}
}

func TestEnumerateNoDevices(t *testing.T) {
	inst := &fakeInstance{}
	_, err := enumerate(&fakeDriver{inst: inst}, defaultConfig())

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("enumerate() error = %v, want *OperationError", err)
	}
	if opErr.Detail != "No Vulkan-compatible GPUs found." {
		t.Errorf("Detail = %q", opErr.Detail)
	}
	if inst.destroyed != 1 {
		t.Errorf("instance destroyed %d times, want 1", inst.destroyed)
	}
}

func TestEnumerateDevicesFails(t *testing.T) {
	inst := &fakeInstance{enumErr: &resultError{op: "vkEnumeratePhysicalDevices", result: vk.ErrorOutOfHostMemory}}
	_, err := enumerate(&fakeDriver{inst: inst}, defaultConfig())

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("enumerate() error = %v, want *OperationError", err)
	}
	if inst.destroyed != 1 {
		t.Errorf("instance destroyed %d times, want 1", inst.destroyed)
	}
}

func TestEnumerateDiscreteDevice(t *testing.T) {
	inst := &fakeInstance{devices: []fakeDevice{{
		props: vk.PhysicalDeviceProperties{
			DriverVersion: 0x00401000,
			VendorID:      0x10DE,
			DeviceType:    vk.PhysicalDeviceTypeDiscreteGpu,
			DeviceName:    name256("NVIDIA GeForce RTX 4090"),
		},
		mem: heaps([]uint64{4294967296, 1073741824}, []bool{true, false}),
	}}}

	gpus, err := enumerate(&fakeDriver{inst: inst}, defaultConfig())
	if err != nil {
		t.Fatalf("enumerate() error = %v", err)
	}
	if len(gpus) != 1 {
		t.Fatalf("enumerate() returned %d devices, want 1", len(gpus))
	}
	g := gpus[0]
	want := types.GPU{
		Kind:          types.GPUKindDiscrete,
		Name:          "NVIDIA GeForce RTX 4090",
		Vendor:        "NVIDIA",
		DriverVersion: "1.1.0",
		VRAM:          4096,
	}
	if g.Kind != want.Kind || g.Name != want.Name || g.Vendor != want.Vendor ||
		g.DriverVersion != want.DriverVersion || g.VRAM != want.VRAM {
		t.Errorf("enumerate() = %+v, want %+v", g, want)
	}
	if g.ClockSpeed != nil || g.Temperature != nil {
		t.Error("Vulkan descriptor should carry no telemetry")
	}
	if inst.destroyed != 1 {
		t.Errorf("instance destroyed %d times, want 1", inst.destroyed)
	}
}

func TestEnumeratePassesConfig(t *testing.T) {
	d := &fakeDriver{inst: &fakeInstance{devices: []fakeDevice{{}}}}
	cfg := defaultConfig()
	WithApplicationName("probe")(&cfg)
	WithAPIVersion(1, 3)(&cfg)

	gpus, err := enumerate(d, cfg)
	if err != nil {
		t.Fatalf("enumerate() error = %v", err)
	}
	if d.cfg.applicationName != "probe" || d.cfg.apiVersion != makeAPIVersion(1, 3) {
		t.Errorf("driver saw config %+v", d.cfg)
	}
	if gpus[0].Name != types.Unknown || gpus[0].Vendor != types.Unknown {
		t.Errorf("zeroed device = %+v, want Unknown name and vendor", gpus[0])
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.applicationName != "GPUInfoApp" {
		t.Errorf("applicationName = %q", cfg.applicationName)
	}
	if cfg.apiVersion != 1<<22 {
		t.Errorf("apiVersion = %#x, want Vulkan 1.0", cfg.apiVersion)
	}
	WithApplicationName("")(&cfg)
	if cfg.applicationName != "GPUInfoApp" {
		t.Error("empty application name should keep the default")
	}
}

func TestDriverVersion(t *testing.T) {
	tests := []struct {
		in   uint32
		want string
	}{
		{0x00401000, "1.1.0"},
		{0, "0.0.0"},
		{1<<22 | 2<<12 | 3, "1.2.3"},
		{0xFFFFFFFF, "1023.1023.4095"},
	}
	pattern := regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	for _, tt := range tests {
		got := driverVersion(tt.in)
		if got != tt.want {
			t.Errorf("driverVersion(%#x) = %q, want %q", tt.in, got, tt.want)
		}
		if !pattern.MatchString(got) {
			t.Errorf("driverVersion(%#x) = %q, not major.minor.patch", tt.in, got)
		}
	}
}

func TestVendorName(t *testing.T) {
	tests := []struct {
		id   uint32
		want string
	}{
		{0x8086, "Intel"},
		{0x10DE, "NVIDIA"},
		{0x1002, "AMD"},
		{0x13B5, "Unknown"},
		{0, "Unknown"},
	}
	for _, tt := range tests {
		if got := vendorName(tt.id); got != tt.want {
			t.Errorf("vendorName(%#x) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestKindFromDeviceType(t *testing.T) {
	tests := []struct {
		in   vk.PhysicalDeviceType
		want types.GPUKind
	}{
		{vk.PhysicalDeviceTypeOther, types.GPUKindUnknown},
		{vk.PhysicalDeviceTypeIntegratedGpu, types.GPUKindIntegrated},
		{vk.PhysicalDeviceTypeDiscreteGpu, types.GPUKindDiscrete},
		{vk.PhysicalDeviceTypeVirtualGpu, types.GPUKindVirtual},
		{vk.PhysicalDeviceTypeCpu, types.GPUKindCPU},
		{vk.PhysicalDeviceType(42), types.GPUKindUnknown},
	}
	for _, tt := range tests {
		if got := kindFromDeviceType(tt.in); got != tt.want {
			t.Errorf("kindFromDeviceType(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDeviceName(t *testing.T) {
	full := name256("")
	for i := range full {
		full[i] = 'a'
	}
	tests := []struct {
		name string
		in   [256]byte
		want string
	}{
		{"plain", name256("AMD Radeon RX 7900 XTX"), "AMD Radeon RX 7900 XTX"},
		{"empty", name256(""), "Unknown"},
		{"invalid utf8", name256("bad\xff\xfename"), "Unknown"},
		{"unterminated", full, string(full[:])},
		{"trailing garbage", func() [256]byte { b := name256("llvmpipe"); b[20] = 'x'; return b }(), "llvmpipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deviceName(tt.in); got != tt.want {
				t.Errorf("deviceName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeviceLocalVRAM(t *testing.T) {
	tests := []struct {
		name string
		mem  vk.PhysicalDeviceMemoryProperties
		want uint64
	}{
		{"one local heap", heaps([]uint64{4 << 30, 1 << 30}, []bool{true, false}), 4096},
		{"two local heaps", heaps([]uint64{8 << 30, 256 << 20}, []bool{true, true}), 8448},
		{"no local heaps", heaps([]uint64{16 << 30}, []bool{false}), 0},
		{"sub-MiB truncates", heaps([]uint64{3 << 19}, []bool{true}), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deviceLocalVRAM(&tt.mem); got != tt.want {
				t.Errorf("deviceLocalVRAM() = %d, want %d", got, tt.want)
			}
		})
	}

	// Heaps past MemoryHeapCount are ignored.
	mem := heaps([]uint64{1 << 30, 2 << 30}, []bool{true, true})
	mem.MemoryHeapCount = 1
	if got := deviceLocalVRAM(&mem); got != 1024 {
		t.Errorf("deviceLocalVRAM() with count 1 = %d, want 1024", got)
	}
}

func TestResultString(t *testing.T) {
	if got := resultString(vk.ErrorInitializationFailed); got != "VK_ERROR_INITIALIZATION_FAILED" {
		t.Errorf("resultString() = %q", got)
	}
	if got := resultString(vk.Result(-1000001004)); got != "VkResult(-1000001004)" {
		t.Errorf("resultString() = %q", got)
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("boom")
	err := &OperationError{Detail: "failed to create instance: boom", Err: cause}
	if err.Error() != "vulkan: operation failed: failed to create instance: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if (&OperationError{Detail: "x"}).Unwrap() != nil {
		t.Error("Unwrap() without cause should be nil")
	}
}

func TestBackendVariant(t *testing.T) {
	if got := (Backend{}).Variant(); got != gputypes.BackendVulkan {
		t.Errorf("Variant() = %v, want Vulkan", got)
	}
}

// TestEnumerateHardware talks to the real loader. Machines without Vulkan
// only exercise the not-supported path.
func TestEnumerateHardware(t *testing.T) {
	if !IsSupported() {
		t.Log("Vulkan loader not available (expected in test environment)")
	}
	gpus, err := Enumerate()
	if err != nil {
		var opErr *OperationError
		if IsNotSupported(err) || errors.As(err, &opErr) {
			t.Logf("Vulkan enumeration unavailable: %v", err)
			return
		}
		t.Fatalf("Enumerate() error = %v", err)
	}
	for _, g := range gpus {
		t.Logf("%s", g)
		if g.Name == "" || g.Vendor == "" {
			t.Errorf("device has empty name or vendor: %+v", g)
		}
	}
}
