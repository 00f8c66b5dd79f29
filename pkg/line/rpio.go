package line

import (
	"fmt"

	rpio "github.com/stianeikeland/go-rpio/v4"
)

// RPIDriver drives Raspberry Pi GPIO pins directly through /dev/gpiomem
// using BCM pin numbering.
type RPIDriver struct {
	closed bool
}

// NewRPIDriver maps the GPIO memory range. It fails when not running on a
// Raspberry Pi or when /dev/gpiomem is not accessible.
func NewRPIDriver() (*RPIDriver, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("line: open gpio memory: %w", err)
	}
	return &RPIDriver{}, nil
}

func (d *RPIDriver) Name() string { return "rpio" }

func (d *RPIDriver) Open(pin int) (Line, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}
	if d.closed {
		return nil, ErrClosed
	}
	p := rpio.Pin(pin)
	p.Output()
	return &rpioLine{pin: p}, nil
}

func (d *RPIDriver) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if err := rpio.Close(); err != nil {
		return fmt.Errorf("line: close gpio memory: %w", err)
	}
	return nil
}

type rpioLine struct {
	pin rpio.Pin
}

func (l *rpioLine) Set(level Level) error {
	// Register writes through /dev/gpiomem cannot fail once mapped.
	if level == High {
		l.pin.High()
	} else {
		l.pin.Low()
	}
	return nil
}
