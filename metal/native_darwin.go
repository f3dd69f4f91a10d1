//go:build darwin

package metal

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	ffitypes "github.com/go-webgpu/goffi/types"
	mtl "github.com/gogpu/wgpu/hal/metal"

	"github.com/gogpu/gpuinfo/hal"
)

// nativeSystem reads devices through the Objective-C runtime.
type nativeSystem struct{}

func (nativeSystem) devices() []deviceInfo {
	if err := mtl.Init(); err != nil {
		hal.Logger().Debug("metal: framework unavailable", "err", err)
		return nil
	}

	pool := mtl.NewAutoreleasePool()
	defer pool.Drain()

	ids := mtl.CopyAllDevices()
	out := make([]deviceInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, readDevice(id))
		mtl.Release(id)
	}
	return out
}

func (nativeSystem) registryProperties(registryID uint64) (properties, bool) {
	return openRegistryEntry(registryID)
}

func readDevice(id mtl.ID) deviceInfo {
	d := deviceInfo{
		name:                     mtl.DeviceName(id),
		removable:                mtl.DeviceIsRemovable(id),
		headless:                 mtl.DeviceIsHeadless(id),
		lowPower:                 mtl.DeviceIsLowPower(id),
		registryID:               mtl.DeviceRegistryID(id),
		recommendedMaxWorkingSet: mtl.DeviceRecommendedMaxWorkingSetSize(id),
		maxThreadsPerThreadgroup: maxThreadsPerThreadgroup(id),
	}
	// location and hasUnifiedMemory appeared in macOS 10.15.
	if respondsTo(id, "location") {
		d.location = locationFromNative(uint64(mtl.MsgSendUint(id, mtl.Sel("location"))))
	}
	if respondsTo(id, "hasUnifiedMemory") {
		d.unifiedMemory = mtl.MsgSendBool(id, mtl.Sel("hasUnifiedMemory"))
	}
	return d
}

func respondsTo(id mtl.ID, selector string) bool {
	return mtl.MsgSendBool(id, mtl.Sel("respondsToSelector:"), uintptr(mtl.Sel(selector)))
}

// mtlSize mirrors MTLSize on 64-bit targets.
type mtlSize struct {
	width, height, depth uint64
}

var mtlSizeType = &ffitypes.TypeDescriptor{
	Size:      24,
	Alignment: 8,
	Kind:      ffitypes.StructType,
	Members: []*ffitypes.TypeDescriptor{
		ffitypes.UInt64TypeDescriptor,
		ffitypes.UInt64TypeDescriptor,
		ffitypes.UInt64TypeDescriptor,
	},
}

// sizeSend is an objc_msgSend entry point prepared for an MTLSize result.
var sizeSend struct {
	once sync.Once
	err  error
	fn   unsafe.Pointer
	cif  ffitypes.CallInterface
}

func loadSizeSend() error {
	sizeSend.once.Do(func() {
		lib, err := ffi.LoadLibrary("/usr/lib/libobjc.A.dylib")
		if err != nil {
			sizeSend.err = fmt.Errorf("metal: failed to load libobjc: %w", err)
			return
		}
		// Structs over 16 bytes come back through a hidden pointer on amd64.
		sym := "objc_msgSend"
		if runtime.GOARCH == "amd64" {
			sym = "objc_msgSend_stret"
		}
		if sizeSend.fn, err = ffi.GetSymbol(lib, sym); err != nil {
			sizeSend.err = fmt.Errorf("metal: %s not found: %w", sym, err)
			return
		}
		sizeSend.err = ffi.PrepareCallInterface(&sizeSend.cif, ffitypes.DefaultCall, mtlSizeType,
			[]*ffitypes.TypeDescriptor{ffitypes.PointerTypeDescriptor, ffitypes.PointerTypeDescriptor})
	})
	return sizeSend.err
}

func maxThreadsPerThreadgroup(id mtl.ID) Size {
	if err := loadSizeSend(); err != nil {
		hal.Logger().Debug("metal: maxThreadsPerThreadgroup unavailable", "err", err)
		return Size{}
	}
	var out mtlSize
	self := uintptr(id)
	sel := uintptr(mtl.Sel("maxThreadsPerThreadgroup"))
	args := []unsafe.Pointer{unsafe.Pointer(&self), unsafe.Pointer(&sel)}
	if err := ffi.CallFunction(&sizeSend.cif, sizeSend.fn, unsafe.Pointer(&out), args); err != nil {
		hal.Logger().Debug("metal: maxThreadsPerThreadgroup failed", "err", err)
		return Size{}
	}
	return Size{Width: out.width, Height: out.height, Depth: out.depth}
}
