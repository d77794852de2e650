package types

// ------------------------
// Serial line attributes
// ------------------------

// Parity selects the parity bit policy. The zero value means "keep whatever
// the device is currently configured with and report it back".
type Parity uint8

const (
	ParityDefault Parity = iota
	ParityNone
	ParityEven
	ParityOdd
	ParityMark
	ParitySpace
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	case ParityMark:
		return "mark"
	case ParitySpace:
		return "space"
	default:
		return "default"
	}
}

func (p Parity) MarshalJSON() ([]byte, error) { return []byte(`"` + p.String() + `"`), nil }

// StopBits selects the number of stop bits. Zero value means "device default".
type StopBits uint8

const (
	StopBitsDefault StopBits = iota
	StopBitsOne
	StopBitsOneFive // only valid with 5 data bits on 16550-class hardware
	StopBitsTwo
)

func (s StopBits) String() string {
	switch s {
	case StopBitsOne:
		return "1"
	case StopBitsOneFive:
		return "1.5"
	case StopBitsTwo:
		return "2"
	default:
		return "default"
	}
}

func (s StopBits) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }

// Attributes carries the negotiable line settings. Drivers take a pointer
// and overwrite zero/default fields with the values actually programmed, so
// after a successful SetAttributes every field reflects hardware state.
type Attributes struct {
	BaudRate         uint64   `json:"baud_rate"`          // 0 = device default
	ReceiveFifoDepth uint32   `json:"receive_fifo_depth"` // 0 = device default
	Timeout          uint32   `json:"timeout_us"`         // per-character; ignored by polling paths
	Parity           Parity   `json:"parity"`
	DataBits         uint8    `json:"data_bits"` // 0 = device default, else 5..8
	StopBits         StopBits `json:"stop_bits"`
}

// ------------------------
// Control signals
// ------------------------

// Control is the abstract modem/line signal bitmask shared by both UART
// paths. The encoding follows the conventional serial I/O control layout so
// masks can be passed through from firmware interfaces unchanged.
type Control uint32

const (
	ControlDTR         Control = 0x0001 // data-terminal-ready (settable)
	ControlRTS         Control = 0x0002 // request-to-send (settable)
	ControlCTS         Control = 0x0010 // clear-to-send
	ControlDSR         Control = 0x0020 // data-set-ready
	ControlRI          Control = 0x0040 // ring-indicate
	ControlDCD         Control = 0x0080 // carrier-detect
	ControlInputEmpty  Control = 0x0100 // no byte waiting in the receiver
	ControlOutputEmpty Control = 0x0200 // transmit FIFO and shifter drained
	ControlHWFlow      Control = 0x4000 // hardware flow control enabled (settable)
)

// SettableControl is the subset SetControl accepts; anything else is
// rejected as unsupported.
const SettableControl = ControlRTS | ControlDTR | ControlHWFlow

func (c Control) Has(flag Control) bool { return c&flag != 0 }
