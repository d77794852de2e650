package serial

import "dualserial-go/regio"

// GPFSEL1 holds the alternate-function codes for GPIOs 10..19. The full
// UART is wired when pins 14/15 are in ALT0; any other mode leaves the mini
// UART connected.
const (
	gpfsel1Off    = 0x04
	selPinMask    = 0x0003F000
	selAltUARTVal = 0x00024000
)

// Selector decides once, for the life of the process, which of the two
// UARTs is wired to the header pins. The GPIO readback happens on the first
// query; every later call, and any later mutation of the GPIO block, sees
// only the cached decision. Single-threaded boot-stage state: no locking.
type Selector struct {
	acc      regio.Accessor
	gpioBase uintptr
	resolved bool
	alt      bool
}

func NewSelector(acc regio.Accessor, gpioBase uintptr) *Selector {
	return &Selector{acc: acc, gpioBase: gpioBase}
}

// AltSelected reports whether the alternate full UART is wired.
func (s *Selector) AltSelected() bool {
	if !s.resolved {
		s.alt = s.acc.Read32(s.gpioBase+gpfsel1Off)&selPinMask == selAltUARTVal
		s.resolved = true
	}
	return s.alt
}

// Force pins the selection without touching hardware. Tests use it to steer
// dispatch deterministically.
func (s *Selector) Force(alt bool) {
	s.alt = alt
	s.resolved = true
}
