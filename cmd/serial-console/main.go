//go:build linux

// serial-console attaches the local terminal to a board serial device: the
// host half of the boot console whose firmware half this module implements.
// Ctrl-] leaves the session.
package main

import (
	"context"
	"os"

	"github.com/mattn/go-tty"
	"github.com/whoisnian/glb/ansi"
	"github.com/whoisnian/glb/config"
	"github.com/whoisnian/glb/logger"

	"dualserial-go/hostserial"
	"dualserial-go/x/mathx"
)

var CFG struct {
	Debug  bool   `flag:"d,false,Enable debug output"`
	Device string `flag:"dev,/dev/ttyUSB0,Serial device to use"`
	Baud   int    `flag:"baud,115200,Baud rate"`
	Chunk  int    `flag:"chunk,256,Read chunk size in bytes"`
}

var LOG *logger.Logger

const exitKey = 0x1D // Ctrl-]

func setupConfigAndLogger(_ context.Context) {
	_, err := config.FromCommandLine(&CFG)
	if err != nil {
		panic(err)
	}
	level := logger.LevelInfo
	if CFG.Debug {
		level = logger.LevelDebug
	}
	LOG = logger.New(logger.NewNanoHandler(os.Stderr, logger.Options{
		Level:     level,
		Colorful:  ansi.IsSupported(os.Stderr.Fd()),
		AddSource: CFG.Debug,
	}))
}

func main() {
	ctx := context.Background()
	setupConfigAndLogger(ctx)
	LOG.Debugf(ctx, "use config: %+v", CFG)

	port, err := hostserial.Open(CFG.Device, CFG.Baud, 8, hostserial.ParityNone, hostserial.StopBits1)
	if err != nil {
		LOG.Fatalf(ctx, "failed to open serial port %s: %v", CFG.Device, err)
	}
	defer port.Close()

	term, err := tty.Open()
	if err != nil {
		LOG.Fatalf(ctx, "failed to open terminal: %v", err)
	}
	defer term.Close()
	restore, err := term.Raw()
	if err != nil {
		LOG.Fatalf(ctx, "failed to enter raw mode: %v", err)
	}
	defer restore()

	LOG.Infof(ctx, "connected to %s at %d baud, Ctrl-] to exit", CFG.Device, CFG.Baud)

	// Board -> screen.
	go func() {
		buf := make([]byte, mathx.Clamp(CFG.Chunk, 16, 4096))
		for {
			n, err := port.Read(buf)
			if err != nil {
				LOG.Errorf(ctx, "serial read: %v", err)
				return
			}
			if n > 0 {
				os.Stdout.Write(buf[:n])
			}
		}
	}()

	// Keyboard -> board.
	for {
		r, err := term.ReadRune()
		if err != nil {
			LOG.Errorf(ctx, "terminal read: %v", err)
			return
		}
		if r == exitKey {
			LOG.Infof(ctx, "session closed")
			return
		}
		if _, err := port.Write([]byte(string(r))); err != nil {
			LOG.Errorf(ctx, "serial write: %v", err)
			return
		}
	}
}
