// Package serial is the boot-stage serial transport for boards that wire
// two mutually-exclusive UARTs to the same header pins: a 16550-compatible
// mini UART and a full-featured alternate UART. Exactly one is electrically
// connected, chosen by the GPIO alternate-function setup; the Port facade
// discovers which once and routes every operation there, so callers never
// learn which controller they are talking to.
package serial

import "dualserial-go/types"

// Driver is the fixed contract both UART paths implement. Write and Read
// report byte counts rather than errors because the polling paths block
// until the full transfer completes; only a nil buffer yields 0.
type Driver interface {
	Initialize() error
	Write(p []byte) int
	Read(p []byte) int
	Poll() bool
	Control() (types.Control, error)
	SetControl(c types.Control) error
	SetAttributes(a *types.Attributes) error
}
