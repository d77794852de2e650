package mini16550

import "dualserial-go/x/mathx"

// clockDivisorMask keeps the 12.12 fixed-point field of the clock-manager
// divisor register.
const clockDivisorMask = 0xFFFFFF

// divisorFor returns the baud-generator divisor for the requested rate.
//
// The UART's reference clock is four times the nominal rate; when the
// firmware-owned clock-manager divisor is live (non-zero), the reference is
// further divided by that 12.12 fixed-point value, read at call time because
// firmware can retune it. The generator divisor is then
// round(ref / (baud * 16)), half rounding up.
func (d *Device) divisorFor(baud uint32) uint32 {
	ref := uint64(d.cfg.ClockRate) * 4
	if d.cfg.ClockDivisorAddr != 0 {
		if div := uint64(d.acc.Read32(d.cfg.ClockDivisorAddr) & clockDivisorMask); div != 0 {
			ref = (ref << 12) / div
		}
	}
	return uint32(mathx.RoundDiv(ref, uint64(baud)*16))
}
