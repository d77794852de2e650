//go:build rp2040 || rp2350

package serial

import (
	"machine"

	"dualserial-go/errcode"
	"dualserial-go/types"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// UartxDriver binds the interrupt-driven PL011 driver from tinygo-uartx to
// the Driver contract on boards where the alternate path runs over that
// stack. The binding keeps the blocking full-transfer semantics of the
// contract; buffering and ISRs stay inside uartx.
type UartxDriver struct {
	u    *uartx.UART
	tx   machine.Pin
	rx   machine.Pin
	line types.Attributes // last programmed settings, used to resolve defaults
}

var _ Driver = (*UartxDriver)(nil)

// NewUartxDriver wraps u. defaults seeds the line settings applied by
// Initialize and used to resolve zero-valued attribute fields.
func NewUartxDriver(u *uartx.UART, tx, rx machine.Pin, defaults types.Attributes) *UartxDriver {
	if defaults.BaudRate == 0 {
		defaults.BaudRate = 115200
	}
	if defaults.DataBits == 0 {
		defaults.DataBits = 8
	}
	if defaults.Parity == types.ParityDefault {
		defaults.Parity = types.ParityNone
	}
	if defaults.StopBits == types.StopBitsDefault {
		defaults.StopBits = types.StopBitsOne
	}
	return &UartxDriver{u: u, tx: tx, rx: rx, line: defaults}
}

func (d *UartxDriver) Initialize() error {
	return d.u.Configure(machine.UARTConfig{
		BaudRate: uint32(d.line.BaudRate),
		TX:       d.tx,
		RX:       d.rx,
	})
}

func (d *UartxDriver) Write(p []byte) int {
	if p == nil {
		return 0
	}
	if len(p) == 0 {
		_ = d.u.Flush()
		return 0
	}
	n, _ := d.u.Write(p)
	return n
}

func (d *UartxDriver) Read(p []byte) int {
	if p == nil {
		return 0
	}
	read := 0
	for read < len(p) {
		n, err := d.u.Read(p[read:])
		if err != nil {
			break
		}
		read += n
	}
	return read
}

func (d *UartxDriver) Poll() bool { return d.u.Buffered() > 0 }

func (d *UartxDriver) Control() (types.Control, error) {
	var c types.Control
	if d.u.Buffered() == 0 {
		c |= types.ControlInputEmpty
	}
	return c, nil
}

// SetControl: the PL011 binding drives no modem lines, so every settable
// bit is unsupported here; a zero mask is a no-op.
func (d *UartxDriver) SetControl(c types.Control) error {
	if c != 0 {
		return errcode.Unsupported
	}
	return nil
}

func (d *UartxDriver) SetAttributes(a *types.Attributes) error {
	if a.BaudRate == 0 {
		a.BaudRate = d.line.BaudRate
	}
	if a.DataBits == 0 {
		a.DataBits = d.line.DataBits
	} else if a.DataBits < 5 || a.DataBits > 8 {
		return errcode.InvalidParams
	}
	if a.Parity == types.ParityDefault {
		a.Parity = d.line.Parity
	}
	if a.StopBits == types.StopBitsDefault {
		a.StopBits = d.line.StopBits
	}

	var parity uartx.UARTParity
	switch a.Parity {
	case types.ParityNone:
		parity = uartx.ParityNone
	case types.ParityEven:
		parity = uartx.ParityEven
	case types.ParityOdd:
		parity = uartx.ParityOdd
	default:
		// The PL011 has no mark/space parity.
		return errcode.InvalidParams
	}

	var stop uint8
	switch a.StopBits {
	case types.StopBitsOne:
		stop = 1
	case types.StopBitsTwo:
		stop = 2
	default:
		// No 1.5-stop-bit mode on this controller.
		return errcode.InvalidParams
	}

	d.u.SetBaudRate(uint32(a.BaudRate))
	if err := d.u.SetFormat(a.DataBits, stop, parity); err != nil {
		return errcode.InvalidParams
	}
	d.line = *a
	return nil
}
