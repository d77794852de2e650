package serial

import (
	"dualserial-go/errcode"

	"tinygo.org/x/drivers"
)

// UART adapts the port to the tinygo.org/x/drivers UART contract so device
// drivers written against that interface (GPS modules, modems, ...) can run
// over the boot console.
type UART struct {
	p *Port
}

var _ drivers.UART = (*UART)(nil)

func (p *Port) UART() *UART { return &UART{p: p} }

// Buffered reports at most 1: the polling paths expose readiness, not a
// queue depth.
func (u *UART) Buffered() int {
	if u.p.Poll() {
		return 1
	}
	return 0
}

// ReadByte blocks until one byte arrives.
func (u *UART) ReadByte() (byte, error) {
	var b [1]byte
	if u.p.Read(b[:]) != 1 {
		return 0, errcode.DeviceError
	}
	return b[0], nil
}

func (u *UART) Read(data []byte) (int, error) {
	return u.p.Read(data), nil
}

func (u *UART) Write(data []byte) (int, error) {
	return u.p.Write(data), nil
}
