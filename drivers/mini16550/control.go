package mini16550

import (
	"dualserial-go/errcode"
	"dualserial-go/types"
)

// Control composes the abstract signal mask from the live modem status,
// modem control and line status registers plus the configured flow-control
// flag.
func (d *Device) Control() (types.Control, error) {
	var c types.Control

	msr := d.regs.Read(regMSR)
	if msr&msrCTS != 0 {
		c |= types.ControlCTS
	}
	if msr&msrDSR != 0 {
		c |= types.ControlDSR
	}
	if msr&msrRI != 0 {
		c |= types.ControlRI
	}
	if msr&msrDCD != 0 {
		c |= types.ControlDCD
	}

	mcr := d.regs.Read(regMCR)
	if mcr&mcrDTR != 0 {
		c |= types.ControlDTR
	}
	if mcr&mcrRTS != 0 {
		c |= types.ControlRTS
	}

	if d.cfg.HWFlowControl {
		c |= types.ControlHWFlow
	}

	lsr := d.regs.Read(regLSR)
	if lsr&(lsrTEMT|lsrTXRDY) == lsrTEMT|lsrTXRDY {
		c |= types.ControlOutputEmpty
	}
	if lsr&lsrRXRDY == 0 {
		c |= types.ControlInputEmpty
	}
	return c, nil
}

// SetControl rewrites the settable modem-control signals. Any bit outside
// the settable subset rejects the whole mask and leaves the hardware
// untouched. The flow-control-enable bit is accepted but carries no
// register state; the policy itself comes from configuration.
func (d *Device) SetControl(c types.Control) error {
	if c&^types.SettableControl != 0 {
		return errcode.Unsupported
	}

	mcr := d.regs.Read(regMCR) &^ (mcrDTR | mcrRTS)
	if c.Has(types.ControlDTR) {
		mcr |= mcrDTR
	}
	if c.Has(types.ControlRTS) {
		mcr |= mcrRTS
	}
	d.regs.Write(regMCR, mcr)
	return nil
}

// SetAttributes negotiates the line settings in a. Zero/default fields are
// resolved from the configured default baud and the live line control byte,
// and a is updated in place to the values actually programmed. Explicit
// values outside the hardware's domain return invalid_params before any
// register is written. On success the divisor and line control are always
// reprogrammed, even when unchanged.
func (d *Device) SetAttributes(a *types.Attributes) error {
	if a.BaudRate == 0 {
		a.BaudRate = uint64(d.cfg.BaudRate)
	}
	baud := uint32(a.BaudRate)

	var lcrData uint8
	switch {
	case a.DataBits == 0:
		lcrData = d.regs.Read(regLCR) & 0x3
		a.DataBits = lcrData + 5
	case a.DataBits >= 5 && a.DataBits <= 8:
		lcrData = a.DataBits - 5
	default:
		return errcode.InvalidParams
	}

	// The 16550 parity field is not contiguous: bit3 enables parity, bit4
	// selects even, bit5 sticks the bit (mark/space).
	var lcrParity uint8
	if a.Parity == types.ParityDefault {
		lcrParity = (d.regs.Read(regLCR) >> 3) & 0x7
		switch lcrParity {
		case 0:
			a.Parity = types.ParityNone
		case 3:
			a.Parity = types.ParityEven
		case 1:
			a.Parity = types.ParityOdd
		case 7:
			a.Parity = types.ParitySpace
		case 5:
			a.Parity = types.ParityMark
		}
	} else {
		switch a.Parity {
		case types.ParityNone:
			lcrParity = 0
		case types.ParityEven:
			lcrParity = 3
		case types.ParityOdd:
			lcrParity = 1
		case types.ParitySpace:
			lcrParity = 7
		case types.ParityMark:
			lcrParity = 5
		default:
			return errcode.InvalidParams
		}
	}

	// One stop-field bit: set means 1.5 stop bits with 5 data bits, 2
	// otherwise.
	var lcrStop uint8
	if a.StopBits == types.StopBitsDefault {
		lcrStop = (d.regs.Read(regLCR) >> 2) & 0x1
		switch lcrStop {
		case 0:
			a.StopBits = types.StopBitsOne
		case 1:
			if a.DataBits == 5 {
				a.StopBits = types.StopBitsOneFive
			} else {
				a.StopBits = types.StopBitsTwo
			}
		}
	} else {
		switch a.StopBits {
		case types.StopBitsOne:
			lcrStop = 0
		case types.StopBitsOneFive, types.StopBitsTwo:
			lcrStop = 1
		default:
			return errcode.InvalidParams
		}
	}

	d.programLine(d.divisorFor(baud), lcrParity<<3|lcrStop<<2|lcrData)
	return nil
}
