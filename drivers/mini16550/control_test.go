package mini16550

import (
	"errors"
	"testing"

	"dualserial-go/errcode"
	"dualserial-go/types"
)

func TestControlComposition(t *testing.T) {
	d, m := newTestDevice(Config{HWFlowControl: true})
	m.SetMSR(0xF0) // CTS | DSR | RI | DCD
	if err := d.SetControl(types.ControlRTS | types.ControlDTR); err != nil {
		t.Fatalf("SetControl: %v", err)
	}

	c, err := d.Control()
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	want := types.ControlCTS | types.ControlDSR | types.ControlRI | types.ControlDCD |
		types.ControlRTS | types.ControlDTR | types.ControlHWFlow |
		types.ControlOutputEmpty | types.ControlInputEmpty
	if c != want {
		t.Errorf("Control = %#x, want %#x", c, want)
	}

	m.PushRx('q')
	c, _ = d.Control()
	if c.Has(types.ControlInputEmpty) {
		t.Errorf("input-empty still reported with a byte queued")
	}
}

func TestControlWithoutFlowControl(t *testing.T) {
	d, _ := newTestDevice(Config{})
	c, err := d.Control()
	if err != nil {
		t.Fatalf("Control: %v", err)
	}
	if c.Has(types.ControlHWFlow) {
		t.Errorf("flow-control bit reported while disabled")
	}
}

func TestSetControlRejectsUnsettableBits(t *testing.T) {
	d, m := newTestDevice(Config{})
	if err := d.SetControl(types.ControlRTS | types.ControlDTR); err != nil {
		t.Fatalf("SetControl: %v", err)
	}
	m.ResetLog()

	err := d.SetControl(types.ControlCTS | types.ControlRTS)
	if !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("SetControl = %v, want %v", err, errcode.Unsupported)
	}
	if len(m.Log) != 0 {
		t.Errorf("rejected mask still wrote registers: %v", m.Log)
	}
	if m.MCR() != 0x03 {
		t.Errorf("MCR = %#x, want untouched 0x03", m.MCR())
	}
}

func TestSetControlDrivesModemLines(t *testing.T) {
	tests := []struct {
		c    types.Control
		want uint8
	}{
		{0, 0x00},
		{types.ControlDTR, 0x01},
		{types.ControlRTS, 0x02},
		{types.ControlRTS | types.ControlDTR, 0x03},
		// The flow-control-enable bit is settable but has no register state.
		{types.ControlHWFlow | types.ControlDTR, 0x01},
	}
	for _, tc := range tests {
		d, m := newTestDevice(Config{})
		if err := d.SetControl(tc.c); err != nil {
			t.Fatalf("SetControl(%#x): %v", tc.c, err)
		}
		if m.MCR() != tc.want {
			t.Errorf("SetControl(%#x): MCR = %#x, want %#x", tc.c, m.MCR(), tc.want)
		}
	}
}

func TestSetAttributesExplicit(t *testing.T) {
	tests := []struct {
		name    string
		a       types.Attributes
		wantLCR uint8
	}{
		{"8N1", types.Attributes{BaudRate: 115200, DataBits: 8, Parity: types.ParityNone, StopBits: types.StopBitsOne}, 0x03},
		{"7E2", types.Attributes{BaudRate: 115200, DataBits: 7, Parity: types.ParityEven, StopBits: types.StopBitsTwo}, 0x1E},
		{"8O1", types.Attributes{BaudRate: 115200, DataBits: 8, Parity: types.ParityOdd, StopBits: types.StopBitsOne}, 0x0B},
		{"8M1", types.Attributes{BaudRate: 115200, DataBits: 8, Parity: types.ParityMark, StopBits: types.StopBitsOne}, 0x2B},
		{"8S1", types.Attributes{BaudRate: 115200, DataBits: 8, Parity: types.ParitySpace, StopBits: types.StopBitsOne}, 0x3B},
		{"5N1.5", types.Attributes{BaudRate: 115200, DataBits: 5, Parity: types.ParityNone, StopBits: types.StopBitsOneFive}, 0x04},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, m := newTestDevice(Config{})
			if err := d.SetAttributes(&tc.a); err != nil {
				t.Fatalf("SetAttributes: %v", err)
			}
			if m.LCR() != tc.wantLCR {
				t.Errorf("LCR = %#x, want %#x", m.LCR(), tc.wantLCR)
			}
			if m.Divisor() != 543 {
				t.Errorf("divisor = %d, want 543", m.Divisor())
			}
		})
	}
}

func TestSetAttributesResolvesDefaults(t *testing.T) {
	d, m := newTestDevice(Config{})
	// Live line: 5 data bits, stop field set, no parity.
	d.programLine(12, 0x04)

	var a types.Attributes
	if err := d.SetAttributes(&a); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	if a.BaudRate != 115200 {
		t.Errorf("BaudRate = %d, want configured default 115200", a.BaudRate)
	}
	if a.DataBits != 5 {
		t.Errorf("DataBits = %d, want 5", a.DataBits)
	}
	if a.Parity != types.ParityNone {
		t.Errorf("Parity = %v, want none", a.Parity)
	}
	// The stop field's set state means 1.5 only at 5 data bits.
	if a.StopBits != types.StopBitsOneFive {
		t.Errorf("StopBits = %v, want 1.5", a.StopBits)
	}
	if m.LCR() != 0x04 {
		t.Errorf("LCR = %#x, want 0x04", m.LCR())
	}
	if m.Divisor() != 543 {
		t.Errorf("divisor = %d, want 543", m.Divisor())
	}
}

func TestSetAttributesDecodesLiveParityAndStop(t *testing.T) {
	d, _ := newTestDevice(Config{})
	// Live line: 8 data bits, even parity, stop field set.
	d.programLine(543, 0x1F)

	a := types.Attributes{BaudRate: 115200}
	if err := d.SetAttributes(&a); err != nil {
		t.Fatalf("SetAttributes: %v", err)
	}
	if a.DataBits != 8 {
		t.Errorf("DataBits = %d, want 8", a.DataBits)
	}
	if a.Parity != types.ParityEven {
		t.Errorf("Parity = %v, want even", a.Parity)
	}
	if a.StopBits != types.StopBitsTwo {
		t.Errorf("StopBits = %v, want 2", a.StopBits)
	}
}

func TestSetAttributesRejectsOutOfDomain(t *testing.T) {
	tests := []struct {
		name string
		a    types.Attributes
	}{
		{"4 data bits", types.Attributes{DataBits: 4}},
		{"9 data bits", types.Attributes{DataBits: 9}},
		{"unknown parity", types.Attributes{DataBits: 8, Parity: types.Parity(9)}},
		{"unknown stop bits", types.Attributes{DataBits: 8, StopBits: types.StopBits(7)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, m := newTestDevice(Config{})
			m.ResetLog()
			err := d.SetAttributes(&tc.a)
			if !errors.Is(err, errcode.InvalidParams) {
				t.Fatalf("SetAttributes = %v, want %v", err, errcode.InvalidParams)
			}
			if len(m.Log) != 0 {
				t.Errorf("rejected attributes still wrote registers: %v", m.Log)
			}
		})
	}
}
