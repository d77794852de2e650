package mini16550

// 16550 register offsets (in register units; the bus stride maps them onto
// the SoC's 32-bit slots). Offsets 0 and 1 are context-dependent: with the
// divisor latch open they address the baud divisor instead of data/IER.
const (
	regRBR     = 0 // receive buffer (DLAB=0, read)
	regTHR     = 0 // transmit holding (DLAB=0, write)
	regDivLow  = 0 // divisor LSB (DLAB=1)
	regDivHigh = 1 // divisor MSB (DLAB=1)
	regIER     = 1 // interrupt enable (DLAB=0)
	regFCR     = 2 // FIFO control
	regLCR     = 3 // line control
	regMCR     = 4 // modem control
	regLSR     = 5 // line status
	regMSR     = 6 // modem status
)

// FIFO control bits.
const (
	fcrFIFOE  = 1 << 0 // FIFO enable
	fcrFIFO64 = 1 << 5 // 64-byte FIFO extension
)

// Line control bits. Only the low 6 bits carry the line format; reserved
// bits must be stripped before a write reaches hardware.
const (
	lcrDLAB      = 1 << 7 // divisor latch access
	lcrValidMask = 0x3F
)

// Modem control bits.
const (
	mcrDTR = 1 << 0
	mcrRTS = 1 << 1
)

// Line status bits.
const (
	lsrRXRDY = 1 << 0 // receive data ready
	lsrTXRDY = 1 << 5 // transmit holding empty
	lsrTEMT  = 1 << 6 // transmitter (FIFO + shifter) empty
)

// Modem status bits.
const (
	msrCTS = 1 << 4
	msrDSR = 1 << 5
	msrRI  = 1 << 6
	msrDCD = 1 << 7
)
