// Package mini16550 drives the 16550-compatible "mini" UART found on
// BCM283x-class SoCs in polled mode. It is meant for the earliest boot
// stage: no interrupts, no software buffering, every wait is a busy-poll on
// a line-status bit. Reads and writes block until the hardware (and, with
// hardware flow control enabled, the peer) makes progress; they never
// return short counts.
package mini16550

import (
	"dualserial-go/regio"
	"dualserial-go/x/mathx"
)

// Config is the platform's tunable surface, assembled once at startup and
// never mutated by the driver.
type Config struct {
	Base   uintptr // register block base address
	Stride uint32  // byte distance between consecutive registers

	BaudRate    uint32 // default baud rate
	LineControl uint8  // default line control byte (low 6 bits significant)
	FifoControl uint8  // default FIFO control byte

	HWFlowControl bool // gate transmission on modem status
	DetectCable   bool // require DSR (cable present) before transmitting

	ExtendedTxFifoSize uint32 // TX FIFO depth when the 64-byte extension is on

	ClockRate        uint32  // nominal reference clock, Hz
	ClockDivisorAddr uintptr // 12.12 fixed-point clock-manager divisor register; 0 = no runtime correction
}

// Device is a single polled 16550 port.
type Device struct {
	acc  regio.Accessor
	regs regio.Port8
	cfg  Config
}

func New(acc regio.Accessor, cfg Config) *Device {
	return &Device{
		acc:  acc,
		regs: regio.NewPort8(acc, cfg.Base, cfg.Stride),
		cfg:  cfg,
	}
}

// writable reports whether the flow-control state allows putting a byte on
// the wire.
//
// With cable detection, both DSR (cable present) and CTS (peer ready) must
// be up. Without it, transmission proceeds unless a cable is present but
// the peer is not yet clear to send:
//
//	DSR CTS   detect-cable   no-detect
//	 0   0    wait           transmit
//	 0   1    wait           transmit
//	 1   0    wait           wait
//	 1   1    transmit       transmit
func (d *Device) writable() bool {
	if !d.cfg.HWFlowControl {
		return true
	}
	msr := d.regs.Read(regMSR) & (msrDSR | msrCTS)
	if d.cfg.DetectCable {
		return msr == msrDSR|msrCTS
	}
	return msr != msrDSR
}

// waitTxIdle spins until both the transmit FIFO and the shift register are
// empty. Unbounded: a wedged transmitter is a hardware condition this boot
// stage cannot recover from.
func (d *Device) waitTxIdle() {
	for d.regs.Read(regLSR)&(lsrTEMT|lsrTXRDY) != lsrTEMT|lsrTXRDY {
	}
}

// txBurstSize is how many bytes one drained FIFO can absorb.
func (d *Device) txBurstSize() int {
	if d.cfg.FifoControl&fcrFIFOE == 0 {
		return 1
	}
	if d.cfg.FifoControl&fcrFIFO64 == 0 {
		return 16
	}
	return int(mathx.Max(d.cfg.ExtendedTxFifoSize, 1))
}

// Initialize programs the port to its configured line settings. If the live
// line control and divisor already match the target, it returns immediately
// without reprogramming, so an already-transmitting line is not disturbed.
// Re-entrant for the life of the process.
func (d *Device) Initialize() error {
	target := d.divisorFor(d.cfg.BaudRate)

	initialized := d.regs.Read(regLCR)&lcrValidMask == d.cfg.LineControl&lcrValidMask
	if d.readDivisor() != target {
		initialized = false
	}
	if initialized {
		return nil
	}

	d.waitTxIdle()
	d.programLine(target, d.cfg.LineControl)

	// Reset, then enable the FIFOs per configuration.
	d.regs.Write(regFCR, 0)
	d.regs.Write(regFCR, d.cfg.FifoControl&(fcrFIFOE|fcrFIFO64))

	// Polled mode only: no interrupt sources, modem control from reset.
	d.regs.Write(regIER, 0)
	d.regs.Write(regMCR, 0)
	return nil
}

// readDivisor reads the live baud divisor through the latch-access
// sequence, leaving the latch bit clear afterwards.
func (d *Device) readDivisor() uint32 {
	d.regs.Write(regLCR, d.regs.Read(regLCR)|lcrDLAB)
	v := uint32(d.regs.Read(regDivHigh))<<8 | uint32(d.regs.Read(regDivLow))
	d.regs.Write(regLCR, d.regs.Read(regLCR)&^lcrDLAB)
	return v
}

// programLine writes the divisor under the open latch, then closes the
// latch while writing the line control byte (reserved bits stripped).
func (d *Device) programLine(divisor uint32, lcr uint8) {
	d.regs.Write(regLCR, lcrDLAB)
	d.regs.Write(regDivHigh, uint8(divisor>>8))
	d.regs.Write(regDivLow, uint8(divisor))
	d.regs.Write(regLCR, lcr&lcrValidMask)
}

// Write puts all of p on the wire and returns len(p); it blocks rather than
// truncating. A nil buffer returns 0 untouched. An empty non-nil buffer
// flushes instead (see Flush).
func (d *Device) Write(p []byte) int {
	if p == nil {
		return 0
	}
	if len(p) == 0 {
		d.Flush()
		return 0
	}

	burst := d.txBurstSize()
	rest := p
	for len(rest) > 0 {
		d.waitTxIdle()
		// Refill the drained FIFO, gating each byte on flow control.
		for i := 0; i < burst && len(rest) > 0; i++ {
			for !d.writable() {
			}
			d.regs.Write(regTHR, rest[0])
			rest = rest[1:]
		}
	}
	return len(p)
}

// Flush blocks until the transmit FIFO and shift register are empty and the
// flow-control state would allow a next byte out. No byte is transferred.
func (d *Device) Flush() {
	d.waitTxIdle()
	for !d.writable() {
	}
}

// Read fills all of p and returns len(p); it blocks until every byte has
// arrived. A nil buffer returns 0. With hardware flow control enabled, RTS
// is raised while waiting to invite the peer to send and dropped the moment
// a byte is ready, pacing the peer to this loop.
func (d *Device) Read(p []byte) int {
	if p == nil {
		return 0
	}

	mcr := d.regs.Read(regMCR) &^ mcrRTS
	for i := range p {
		for d.regs.Read(regLSR)&lsrRXRDY == 0 {
			if d.cfg.HWFlowControl {
				d.regs.Write(regMCR, mcr|mcrRTS)
			}
		}
		if d.cfg.HWFlowControl {
			d.regs.Write(regMCR, mcr)
		}
		p[i] = d.regs.Read(regRBR)
	}
	return len(p)
}

// Poll reports whether a byte is waiting. As a side effect it manages RTS
// when hardware flow control is on: cleared when data is ready (hold the
// peer off until it is consumed), set when idle (invite the peer to send).
func (d *Device) Poll() bool {
	if d.regs.Read(regLSR)&lsrRXRDY != 0 {
		if d.cfg.HWFlowControl {
			d.regs.Write(regMCR, d.regs.Read(regMCR)&^mcrRTS)
		}
		return true
	}
	if d.cfg.HWFlowControl {
		d.regs.Write(regMCR, d.regs.Read(regMCR)|mcrRTS)
	}
	return false
}
