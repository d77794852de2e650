//go:build linux

// Package hostserial opens host-side tty devices in raw mode. It is the
// workstation half of the boot console: cmd/serial-console uses it to reach
// a board whose firmware side runs the drivers in this module.
package hostserial

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var baudrateMap = map[int]uint32{
	300:    unix.B300,
	600:    unix.B600,
	1200:   unix.B1200,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
	230400: unix.B230400,
}

var databitsMap = map[int]uint32{
	5: unix.CS5,
	6: unix.CS6,
	7: unix.CS7,
	8: unix.CS8,
}

const (
	StopBits1 uint32 = 0
	StopBits2 uint32 = unix.CSTOPB

	ParityNone  uint32 = 0
	ParityOdd   uint32 = unix.PARENB | unix.PARODD
	ParityEven  uint32 = unix.PARENB
	ParityMark  uint32 = unix.PARENB | unix.CMSPAR | unix.PARODD
	ParitySpace uint32 = unix.PARENB | unix.CMSPAR
)

var (
	ErrInvalidBaudRate = errors.New("invalid baudrate")
	ErrInvalidDataBits = errors.New("invalid databits")
)

// Port is an open host serial device.
type Port struct {
	f *os.File
}

// Open configures device as a raw 8-bit-clean byte pipe with the requested
// framing. parity and stopbits take the package constants above.
func Open(device string, baudrate, databits int, parity, stopbits uint32) (*Port, error) {
	br, ok := baudrateMap[baudrate]
	if !ok {
		return nil, ErrInvalidBaudRate
	}
	db, ok := databitsMap[databits]
	if !ok {
		return nil, ErrInvalidDataBits
	}

	f, err := os.OpenFile(device, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}

	t := unix.Termios{
		Iflag: unix.IGNPAR,
		Cflag: unix.CREAD | unix.CLOCAL | br | db | parity | stopbits,
	}
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(int(f.Fd()), unix.TCSETS, &t); err != nil {
		f.Close()
		return nil, err
	}
	return &Port{f: f}, nil
}

func (p *Port) Read(b []byte) (int, error)  { return p.f.Read(b) }
func (p *Port) Write(b []byte) (int, error) { return p.f.Write(b) }
func (p *Port) Close() error                { return p.f.Close() }
