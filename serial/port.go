package serial

import (
	"dualserial-go/drivers/mini16550"
	"dualserial-go/errcode"
	"dualserial-go/regio"
	"dualserial-go/types"
)

// Config is the whole platform tunable surface, built once at startup and
// read-only afterwards.
type Config struct {
	// GPIOBase locates the GPIO block for the one-shot wiring readback.
	GPIOBase uintptr

	// Mini configures the 16550-compatible path.
	Mini mini16550.Config

	// AltDefaults are the line settings handed to the alternate path on
	// Initialize; the mini path takes its defaults from Mini instead.
	AltDefaults types.Attributes
}

// Port routes every operation to whichever UART the board wiring selected.
// It implements Driver itself, so callers and the two paths share one
// contract.
type Port struct {
	sel  *Selector
	mini *mini16550.Device
	alt  Driver
	cfg  Config
}

var _ Driver = (*Port)(nil)

// NewPort builds the dual-path port. alt is the externally-supplied driver
// for the full UART; passing nil installs a stub that reports device_error
// if that path turns out to be the wired one.
func NewPort(acc regio.Accessor, cfg Config, alt Driver) *Port {
	if alt == nil {
		alt = noDriver{}
	}
	return &Port{
		sel:  NewSelector(acc, cfg.GPIOBase),
		mini: mini16550.New(acc, cfg.Mini),
		alt:  alt,
		cfg:  cfg,
	}
}

// Selector exposes the path decision, mostly for diagnostics and tests.
func (p *Port) Selector() *Selector { return p.sel }

// Initialize resolves the wiring and brings the selected path up. The
// alternate driver is initialized with the configured default attributes;
// the mini path reads its own defaults from its configuration.
func (p *Port) Initialize() error {
	if p.sel.AltSelected() {
		if err := p.alt.Initialize(); err != nil {
			return err
		}
		attrs := p.cfg.AltDefaults
		return p.alt.SetAttributes(&attrs)
	}
	return p.mini.Initialize()
}

func (p *Port) Write(b []byte) int {
	if p.sel.AltSelected() {
		return p.alt.Write(b)
	}
	return p.mini.Write(b)
}

func (p *Port) Read(b []byte) int {
	if p.sel.AltSelected() {
		return p.alt.Read(b)
	}
	return p.mini.Read(b)
}

func (p *Port) Poll() bool {
	if p.sel.AltSelected() {
		return p.alt.Poll()
	}
	return p.mini.Poll()
}

func (p *Port) Control() (types.Control, error) {
	if p.sel.AltSelected() {
		return p.alt.Control()
	}
	return p.mini.Control()
}

func (p *Port) SetControl(c types.Control) error {
	if p.sel.AltSelected() {
		return p.alt.SetControl(c)
	}
	return p.mini.SetControl(c)
}

func (p *Port) SetAttributes(a *types.Attributes) error {
	if p.sel.AltSelected() {
		return p.alt.SetAttributes(a)
	}
	return p.mini.SetAttributes(a)
}

// noDriver stands in when no alternate driver was supplied.
type noDriver struct{}

func (noDriver) Initialize() error                     { return errcode.DeviceError }
func (noDriver) Write(p []byte) int                    { return 0 }
func (noDriver) Read(p []byte) int                     { return 0 }
func (noDriver) Poll() bool                            { return false }
func (noDriver) Control() (types.Control, error)       { return 0, errcode.DeviceError }
func (noDriver) SetControl(types.Control) error        { return errcode.DeviceError }
func (noDriver) SetAttributes(*types.Attributes) error { return errcode.DeviceError }
