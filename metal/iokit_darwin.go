//go:build darwin

package metal

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	ffitypes "github.com/go-webgpu/goffi/types"

	"github.com/gogpu/gpuinfo/hal"
)

const (
	ioKitPath          = "/System/Library/Frameworks/IOKit.framework/IOKit"
	coreFoundationPath = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"

	kIOMainPortDefault    = 0
	kCFStringEncodingUTF8 = 0x08000100
	kCFNumberSInt64Type   = 4
	kIOReturnSuccess      = 0
	kNilOptions           = 0
	kCFAllocatorDefault   = 0
)

// cfunc is a C function resolved from a framework.
type cfunc struct {
	name string
	ret  *ffitypes.TypeDescriptor
	args []*ffitypes.TypeDescriptor

	sym unsafe.Pointer
	cif ffitypes.CallInterface
}

func (f *cfunc) load(lib unsafe.Pointer) error {
	sym, err := ffi.GetSymbol(lib, f.name)
	if err != nil {
		return fmt.Errorf("metal: %s not found: %w", f.name, err)
	}
	f.sym = sym
	return ffi.PrepareCallInterface(&f.cif, ffitypes.DefaultCall, f.ret, f.args)
}

// call invokes f. Each element of args points at the argument value.
func (f *cfunc) call(ret unsafe.Pointer, args ...unsafe.Pointer) error {
	return ffi.CallFunction(&f.cif, f.sym, ret, args)
}

var (
	ptrT  = ffitypes.PointerTypeDescriptor
	u8T   = ffitypes.UInt8TypeDescriptor
	u32T  = ffitypes.UInt32TypeDescriptor
	s32T  = ffitypes.SInt32TypeDescriptor
	u64T  = ffitypes.UInt64TypeDescriptor
	s64T  = ffitypes.SInt64TypeDescriptor
	voidT = ffitypes.VoidTypeDescriptor
)

var (
	ioRegistryEntryIDMatching         = &cfunc{name: "IORegistryEntryIDMatching", ret: ptrT, args: []*ffitypes.TypeDescriptor{u64T}}
	ioServiceGetMatchingService       = &cfunc{name: "IOServiceGetMatchingService", ret: u32T, args: []*ffitypes.TypeDescriptor{u32T, ptrT}}
	ioRegistryEntryCreateCFProperties = &cfunc{name: "IORegistryEntryCreateCFProperties", ret: s32T, args: []*ffitypes.TypeDescriptor{u32T, ptrT, ptrT, u32T}}
	ioObjectRelease                   = &cfunc{name: "IOObjectRelease", ret: s32T, args: []*ffitypes.TypeDescriptor{u32T}}

	cfStringCreateWithCString = &cfunc{name: "CFStringCreateWithCString", ret: ptrT, args: []*ffitypes.TypeDescriptor{ptrT, ptrT, u32T}}
	cfDictionaryGetValue      = &cfunc{name: "CFDictionaryGetValue", ret: ptrT, args: []*ffitypes.TypeDescriptor{ptrT, ptrT}}
	cfGetTypeID               = &cfunc{name: "CFGetTypeID", ret: u64T, args: []*ffitypes.TypeDescriptor{ptrT}}
	cfNumberGetTypeID         = &cfunc{name: "CFNumberGetTypeID", ret: u64T}
	cfNumberGetValue          = &cfunc{name: "CFNumberGetValue", ret: u8T, args: []*ffitypes.TypeDescriptor{ptrT, s64T, ptrT}}
	cfRelease                 = &cfunc{name: "CFRelease", ret: voidT, args: []*ffitypes.TypeDescriptor{ptrT}}
)

var ioKit struct {
	once sync.Once
	err  error
}

func loadIOKit() error {
	ioKit.once.Do(func() {
		ioKit.err = doLoadIOKit()
	})
	return ioKit.err
}

func doLoadIOKit() error {
	iokitLib, err := ffi.LoadLibrary(ioKitPath)
	if err != nil {
		return fmt.Errorf("metal: failed to load IOKit.framework: %w", err)
	}
	cfLib, err := ffi.LoadLibrary(coreFoundationPath)
	if err != nil {
		return fmt.Errorf("metal: failed to load CoreFoundation.framework: %w", err)
	}

	for _, f := range []*cfunc{
		ioRegistryEntryIDMatching,
		ioServiceGetMatchingService,
		ioRegistryEntryCreateCFProperties,
		ioObjectRelease,
	} {
		if err := f.load(iokitLib); err != nil {
			return err
		}
	}
	for _, f := range []*cfunc{
		cfStringCreateWithCString,
		cfDictionaryGetValue,
		cfGetTypeID,
		cfNumberGetTypeID,
		cfNumberGetValue,
		cfRelease,
	} {
		if err := f.load(cfLib); err != nil {
			return err
		}
	}
	return nil
}

// openRegistryEntry copies the property table of the IOService whose
// registry entry ID is registryID.
func openRegistryEntry(registryID uint64) (properties, bool) {
	if err := loadIOKit(); err != nil {
		hal.Logger().Debug("metal: IOKit unavailable", "err", err)
		return nil, false
	}

	var matching uintptr
	if err := ioRegistryEntryIDMatching.call(unsafe.Pointer(&matching), unsafe.Pointer(&registryID)); err != nil || matching == 0 {
		return nil, false
	}

	// IOServiceGetMatchingService consumes one reference to matching.
	var entry uint32
	port := uint32(kIOMainPortDefault)
	if err := ioServiceGetMatchingService.call(unsafe.Pointer(&entry), unsafe.Pointer(&port), unsafe.Pointer(&matching)); err != nil || entry == 0 {
		return nil, false
	}
	defer releaseIOObject(entry)

	var dict uintptr
	dictPtr := unsafe.Pointer(&dict)
	allocator := uintptr(kCFAllocatorDefault)
	options := uint32(kNilOptions)
	var kr int32
	err := ioRegistryEntryCreateCFProperties.call(unsafe.Pointer(&kr),
		unsafe.Pointer(&entry), unsafe.Pointer(&dictPtr), unsafe.Pointer(&allocator), unsafe.Pointer(&options))
	runtime.KeepAlive(&dict)
	if err != nil || kr != kIOReturnSuccess || dict == 0 {
		hal.Logger().Debug("metal: IORegistryEntryCreateCFProperties failed", "registryID", registryID, "kr", kr, "err", err)
		return nil, false
	}
	return cfDictionary(dict), true
}

func releaseIOObject(obj uint32) {
	var kr int32
	_ = ioObjectRelease.call(unsafe.Pointer(&kr), unsafe.Pointer(&obj))
}

func releaseCF(ref uintptr) {
	if ref == 0 {
		return
	}
	_ = cfRelease.call(nil, unsafe.Pointer(&ref))
}

// cfDictionary is an owned CFDictionaryRef.
type cfDictionary uintptr

func (d cfDictionary) number(key string) (int64, bool) {
	cstr := append([]byte(key), 0)
	cstrPtr := unsafe.Pointer(&cstr[0])
	allocator := uintptr(kCFAllocatorDefault)
	encoding := uint32(kCFStringEncodingUTF8)

	var cfKey uintptr
	err := cfStringCreateWithCString.call(unsafe.Pointer(&cfKey),
		unsafe.Pointer(&allocator), unsafe.Pointer(&cstrPtr), unsafe.Pointer(&encoding))
	runtime.KeepAlive(cstr)
	if err != nil || cfKey == 0 {
		return 0, false
	}
	defer releaseCF(cfKey)

	dict := uintptr(d)
	var value uintptr
	if err := cfDictionaryGetValue.call(unsafe.Pointer(&value), unsafe.Pointer(&dict), unsafe.Pointer(&cfKey)); err != nil || value == 0 {
		return 0, false
	}

	var typeID, numberTypeID uint64
	if err := cfGetTypeID.call(unsafe.Pointer(&typeID), unsafe.Pointer(&value)); err != nil {
		return 0, false
	}
	if err := cfNumberGetTypeID.call(unsafe.Pointer(&numberTypeID)); err != nil || typeID != numberTypeID {
		return 0, false
	}

	var out int64
	outPtr := unsafe.Pointer(&out)
	numberType := int64(kCFNumberSInt64Type)
	var ok uint8
	if err := cfNumberGetValue.call(unsafe.Pointer(&ok), unsafe.Pointer(&value), unsafe.Pointer(&numberType), unsafe.Pointer(&outPtr)); err != nil {
		return 0, false
	}
	return out, ok != 0
}

func (d cfDictionary) release() {
	releaseCF(uintptr(d))
}
