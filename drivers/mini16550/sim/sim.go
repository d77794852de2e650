// Package sim is a software model of a 16550-compatible UART register
// block. It implements regio.Accessor, so the real driver runs against it
// unmodified on host builds: selftests and unit tests script modem status,
// inject receive bytes and capture transmitted ones.
//
// The model transmits instantly (TXRDY and TEMT are always up) and keeps a
// write log so tests can assert exact register traffic.
package sim

import "dualserial-go/regio"

// RegWrite is one logged register write inside the UART window.
type RegWrite struct {
	Reg uint32
	Val uint8
}

type deferredRx struct {
	b     byte
	after int // remaining LSR reads before the byte materializes
}

// Model is a single simulated 16550 port plus a sparse memory backing for
// every address outside the register window (GPIO, clock manager, ...).
type Model struct {
	base   uintptr
	stride uint32
	mem    *regio.Mem

	dll, dlm uint8
	ier      uint8
	fcr      uint8
	lcr      uint8
	mcr      uint8
	msr      uint8

	rx      []byte
	pending []deferredRx
	tx      []byte

	// Log records every write to a UART register, in order.
	Log []RegWrite
}

func New(base uintptr, stride uint32) *Model {
	if stride == 0 {
		stride = 1
	}
	return &Model{base: base, stride: stride, mem: regio.NewMem()}
}

// Mem exposes the backing store for addresses outside the UART window, so
// tests can stage GPIO or clock-manager state.
func (m *Model) Mem() *regio.Mem { return m.mem }

// PushRx queues bytes as received data.
func (m *Model) PushRx(p ...byte) { m.rx = append(m.rx, p...) }

// DeferRx queues one byte that becomes visible only after the driver has
// polled the line status register n more times. Tests use it to observe
// what the driver does while waiting for data.
func (m *Model) DeferRx(b byte, n int) { m.pending = append(m.pending, deferredRx{b: b, after: n}) }

// TxBytes returns everything written to the transmit register so far.
func (m *Model) TxBytes() []byte { return m.tx }

// SetMSR scripts the modem status lines (CTS/DSR/RI/DCD bits).
func (m *Model) SetMSR(v uint8) { m.msr = v }

func (m *Model) LCR() uint8 { return m.lcr }
func (m *Model) MCR() uint8 { return m.mcr }
func (m *Model) IER() uint8 { return m.ier }
func (m *Model) FCR() uint8 { return m.fcr }

// Divisor returns the latched baud divisor.
func (m *Model) Divisor() uint32 { return uint32(m.dlm)<<8 | uint32(m.dll) }

// ResetLog clears the write log (but not device state).
func (m *Model) ResetLog() { m.Log = nil }

func (m *Model) dlab() bool { return m.lcr&0x80 != 0 }

// reg maps an absolute address into the UART window; ok is false outside it.
func (m *Model) reg(addr uintptr) (uint32, bool) {
	if addr < m.base {
		return 0, false
	}
	off := addr - m.base
	if off%uintptr(m.stride) != 0 {
		return 0, false
	}
	r := uint32(off / uintptr(m.stride))
	if r > 7 {
		return 0, false
	}
	return r, true
}

func (m *Model) Read8(addr uintptr) uint8 {
	r, ok := m.reg(addr)
	if !ok {
		return m.mem.Read8(addr)
	}
	switch r {
	case 0:
		if m.dlab() {
			return m.dll
		}
		if len(m.rx) == 0 {
			return 0
		}
		b := m.rx[0]
		m.rx = m.rx[1:]
		return b
	case 1:
		if m.dlab() {
			return m.dlm
		}
		return m.ier
	case 2:
		return m.fcr
	case 3:
		return m.lcr
	case 4:
		return m.mcr
	case 5:
		// Instant transmitter; receive-ready tracks the queue. A poll on an
		// empty queue advances any deferred injection.
		v := uint8(0x60) // TXRDY | TEMT
		if len(m.rx) == 0 && len(m.pending) > 0 {
			m.pending[0].after--
			if m.pending[0].after <= 0 {
				m.rx = append(m.rx, m.pending[0].b)
				m.pending = m.pending[1:]
			}
		}
		if len(m.rx) > 0 {
			v |= 0x01
		}
		return v
	case 6:
		return m.msr
	}
	return 0
}

func (m *Model) Write8(addr uintptr, v uint8) {
	r, ok := m.reg(addr)
	if !ok {
		m.mem.Write8(addr, v)
		return
	}
	m.Log = append(m.Log, RegWrite{Reg: r, Val: v})
	switch r {
	case 0:
		if m.dlab() {
			m.dll = v
		} else {
			m.tx = append(m.tx, v)
		}
	case 1:
		if m.dlab() {
			m.dlm = v
		} else {
			m.ier = v
		}
	case 2:
		// Bits 1/2 are self-clearing FIFO resets. The transmitter is
		// instant, so only the receive queue has content to discard.
		if v&0x02 != 0 {
			m.rx = nil
		}
		m.fcr = v &^ 0x06
	case 3:
		m.lcr = v
	case 4:
		m.mcr = v
	case 6:
		m.msr = v
	}
}

func (m *Model) Read32(addr uintptr) uint32 {
	if r, ok := m.reg(addr); ok {
		_ = r
		return uint32(m.Read8(addr))
	}
	return m.mem.Read32(addr)
}

func (m *Model) Write32(addr uintptr, v uint32) {
	if _, ok := m.reg(addr); ok {
		m.Write8(addr, uint8(v))
		return
	}
	m.mem.Write32(addr, v)
}
