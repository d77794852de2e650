// Package regio gives register-level memory access a minimal capability
// surface so drivers run unchanged against real hardware or an in-memory
// model. Production code holds an Accessor; tests and host selftests supply
// Mem (or their own fake) instead of live MMIO.
package regio

// Accessor is raw volatile memory access at absolute addresses.
type Accessor interface {
	Read8(addr uintptr) uint8
	Write8(addr uintptr, v uint8)
	Read32(addr uintptr) uint32
	Write32(addr uintptr, v uint32)
}

// Port8 is a byte-granular register window at base + offset*stride.
// A stride of 4 matches SoCs that space byte-wide registers on 32-bit
// boundaries.
type Port8 struct {
	acc    Accessor
	base   uintptr
	stride uint32
}

func NewPort8(acc Accessor, base uintptr, stride uint32) Port8 {
	if stride == 0 {
		stride = 1
	}
	return Port8{acc: acc, base: base, stride: stride}
}

func (p Port8) Read(off uint32) uint8 { return p.acc.Read8(p.base + uintptr(off*p.stride)) }

func (p Port8) Write(off uint32, v uint8) { p.acc.Write8(p.base+uintptr(off*p.stride), v) }
