//go:build baremetal

package regio

import (
	"runtime/volatile"
	"unsafe"
)

// HW performs live MMIO through TinyGo's volatile registers. It is the
// production Accessor on bare-metal builds.
type HW struct{}

func (HW) Read8(addr uintptr) uint8 {
	return (*volatile.Register8)(unsafe.Pointer(addr)).Get()
}

func (HW) Write8(addr uintptr, v uint8) {
	(*volatile.Register8)(unsafe.Pointer(addr)).Set(v)
}

func (HW) Read32(addr uintptr) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(addr)).Get()
}

func (HW) Write32(addr uintptr, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(addr)).Set(v)
}
