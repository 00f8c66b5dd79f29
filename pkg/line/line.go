// Package line abstracts the digital output lines a shift-register chain is
// wired to. A Driver owns one piece of GPIO hardware (memory-mapped pins, an
// I2C expander, a USB bridge, a simulator) and hands out individual output
// Lines; pin numbering and write-mode setup belong to the driver, never to
// the callers.
package line

import (
	"errors"
	"fmt"
)

// Level represents the logic level driven on a digital output line.
type Level bool

const (
	// Low represents a logical 0.
	Low Level = false
	// High represents a logical 1.
	High Level = true
)

func (l Level) String() string {
	if l == Low {
		return "Low"
	}
	return "High"
}

// Line is a single digital output line. Implementations must already be in
// output mode by the time Open returns them.
type Line interface {
	Set(Level) error
}

// Driver opens output lines on a specific piece of hardware.
type Driver interface {
	// Name identifies the backend ("sim", "rpio", ...).
	Name() string
	// Open claims the given pin as a digital output and returns it.
	Open(pin int) (Line, error)
	// Close releases the underlying hardware. Lines obtained from the
	// driver must not be used afterwards.
	Close() error
}

// ErrNotImplemented lets backends signal that a requested capability is not
// yet available without relying on fmt.Errorf each time.
var ErrNotImplemented = errors.New("line: not implemented")

// ErrClosed is returned when a line or driver is used after Close.
var ErrClosed = errors.New("line: driver closed")

func validatePin(pin int) error {
	if pin < 0 {
		return fmt.Errorf("line: invalid pin %d", pin)
	}
	return nil
}
