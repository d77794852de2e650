package types

import (
	"encoding/json"
	"testing"
)

func TestParityStrings(t *testing.T) {
	tests := []struct {
		p    Parity
		want string
	}{
		{ParityDefault, "default"},
		{ParityNone, "none"},
		{ParityEven, "even"},
		{ParityOdd, "odd"},
		{ParityMark, "mark"},
		{ParitySpace, "space"},
		{Parity(99), "default"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Parity(%d).String() = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestStopBitsStrings(t *testing.T) {
	tests := []struct {
		s    StopBits
		want string
	}{
		{StopBitsDefault, "default"},
		{StopBitsOne, "1"},
		{StopBitsOneFive, "1.5"},
		{StopBitsTwo, "2"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("StopBits(%d).String() = %q, want %q", tc.s, got, tc.want)
		}
	}
}

func TestAttributesJSON(t *testing.T) {
	a := Attributes{BaudRate: 115200, Parity: ParityEven, DataBits: 8, StopBits: StopBitsOne}
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"baud_rate":115200,"receive_fifo_depth":0,"timeout_us":0,"parity":"even","data_bits":8,"stop_bits":"1"}`
	if string(b) != want {
		t.Errorf("marshal = %s, want %s", b, want)
	}
}

func TestControlMask(t *testing.T) {
	c := ControlRTS | ControlDSR
	if !c.Has(ControlRTS) || !c.Has(ControlDSR) {
		t.Error("Has missed set flags")
	}
	if c.Has(ControlDTR) {
		t.Error("Has reported a clear flag")
	}
	for _, s := range []Control{ControlRTS, ControlDTR, ControlHWFlow} {
		if SettableControl&s == 0 {
			t.Errorf("settable subset lost %#x", s)
		}
	}
	if SettableControl&(ControlCTS|ControlDSR|ControlRI|ControlDCD|ControlInputEmpty|ControlOutputEmpty) != 0 {
		t.Error("status-only flags leaked into the settable subset")
	}
}
