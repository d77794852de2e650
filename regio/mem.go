package regio

// Mem is a sparse in-memory register file for host builds and tests.
// 32-bit accesses are little-endian composites of the byte store, matching
// how the byte-wide UART registers alias their 32-bit bus slots.
//
// The hooks take over an access when they return true, which lets a test
// script live register behaviour (status bits that change between polls,
// read-to-clear semantics) without a full device model.
type Mem struct {
	cells map[uintptr]uint8

	OnRead8  func(addr uintptr) (uint8, bool)
	OnWrite8 func(addr uintptr, v uint8) bool

	Reads  int
	Writes int
}

func NewMem() *Mem {
	return &Mem{cells: make(map[uintptr]uint8)}
}

func (m *Mem) Read8(addr uintptr) uint8 {
	m.Reads++
	if m.OnRead8 != nil {
		if v, ok := m.OnRead8(addr); ok {
			return v
		}
	}
	return m.cells[addr]
}

func (m *Mem) Write8(addr uintptr, v uint8) {
	m.Writes++
	if m.OnWrite8 != nil && m.OnWrite8(addr, v) {
		return
	}
	m.cells[addr] = v
}

func (m *Mem) Read32(addr uintptr) uint32 {
	var v uint32
	for i := uintptr(0); i < 4; i++ {
		v |= uint32(m.Read8(addr+i)) << (8 * i)
	}
	return v
}

func (m *Mem) Write32(addr uintptr, v uint32) {
	for i := uintptr(0); i < 4; i++ {
		m.Write8(addr+i, uint8(v>>(8*i)))
	}
}

// Poke stores a value without counting it as a device access; tests use it
// to stage register state.
func (m *Mem) Poke32(addr uintptr, v uint32) {
	for i := uintptr(0); i < 4; i++ {
		m.cells[addr+i] = uint8(v >> (8 * i))
	}
}

func (m *Mem) Poke8(addr uintptr, v uint8) { m.cells[addr] = v }
