package serial

import (
	"dualserial-go/drivers/mini16550"
	"dualserial-go/types"
)

// BCM283x peripheral offsets from the SoC register window. The window base
// itself differs per board generation (0x20000000 on BCM2835, 0x3F000000 on
// BCM2836/7, 0xFE000000 on BCM2711).
const (
	gpioOffset     = 0x200000
	pl011Offset    = 0x201000
	auxOffset      = 0x215000
	miniUARTOffset = auxOffset + 0x40 // 16550-shaped block inside AUX

	// VPU clock divisor (12.12 fixed point) in the clock manager.
	cmOffset             = 0x101000
	cmVPUClockDivisorOff = 0x0C
)

// DefaultConfig returns the stock tunables for a BCM283x board rooted at
// socBase. The mini UART's byte registers sit on 32-bit boundaries, and its
// reference clock follows the VPU core clock at runtime.
func DefaultConfig(socBase uintptr) Config {
	return Config{
		GPIOBase: socBase + gpioOffset,
		Mini: mini16550.Config{
			Base:               socBase + miniUARTOffset,
			Stride:             4,
			BaudRate:           115200,
			LineControl:        0x03, // 8 data bits, 1 stop, no parity
			FifoControl:        0x27,
			HWFlowControl:      false,
			DetectCable:        false,
			ExtendedTxFifoSize: 64,
			ClockRate:          250_000_000,
			ClockDivisorAddr:   socBase + cmOffset + cmVPUClockDivisorOff,
		},
		AltDefaults: types.Attributes{
			BaudRate: 115200,
			Parity:   types.ParityNone,
			DataBits: 8,
			StopBits: types.StopBitsOne,
		},
	}
}
