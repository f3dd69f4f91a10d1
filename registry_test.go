package gpuinfo

import (
	"runtime"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuinfo/hal"
)

func TestRegisterAndGet(t *testing.T) {
	useBackends(t, nil)

	if Get("fake") != nil {
		t.Fatal("Get() on empty registry should return nil")
	}
	fake := &fakeBackend{variant: gputypes.BackendEmpty}
	Register("fake", func() hal.Backend { return fake })

	if got := Get("fake"); got != fake {
		t.Errorf("Get(fake) = %v, want registered backend", got)
	}
	if got := Available(); !slices.Equal(got, []string{"fake"}) {
		t.Errorf("Available() = %v", got)
	}

	Unregister("fake")
	if Get("fake") != nil {
		t.Error("Get() after Unregister should return nil")
	}
}

func TestBackendPriority(t *testing.T) {
	m := &fakeBackend{variant: gputypes.BackendMetal}
	v := &fakeBackend{variant: gputypes.BackendVulkan}
	x := &fakeBackend{variant: gputypes.BackendEmpty}

	useBackends(t, map[string]hal.Backend{"zzz": x, BackendVulkan: v, BackendMetal: m})
	if got := Backend(); got != m {
		t.Errorf("Backend() = %v, want metal", got.Variant())
	}

	Unregister(BackendMetal)
	if got := Backend(); got != v {
		t.Errorf("Backend() = %v, want vulkan", got.Variant())
	}

	Unregister(BackendVulkan)
	if got := Backend(); got != x {
		t.Errorf("Backend() = %v, want fallback to remaining backend", got.Variant())
	}
}

func TestAvailableSorted(t *testing.T) {
	useBackends(t, map[string]hal.Backend{
		"b": &fakeBackend{}, "a": &fakeBackend{}, "c": &fakeBackend{},
	})
	if got := Available(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Available() = %v, want sorted names", got)
	}
}

func TestCompiledInBackend(t *testing.T) {
	want := gputypes.BackendVulkan
	if runtime.GOOS == "darwin" {
		want = gputypes.BackendMetal
	}
	if got := Backend().Variant(); got != want && got != gputypes.BackendEmpty {
		t.Errorf("Backend().Variant() = %v, want %v (or Empty with nogpu)", got, want)
	}
}
