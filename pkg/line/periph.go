package line

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PeriphDriver resolves pins through the periph.io host registry, which
// covers considerably more boards than the raw Raspberry Pi backend.
type PeriphDriver struct {
	closed bool
}

// NewPeriphDriver initializes the periph.io host drivers and returns a
// driver that opens pins by their GPIO number.
func NewPeriphDriver() (*PeriphDriver, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("line: init periph host: %w", err)
	}
	return &PeriphDriver{}, nil
}

func (d *PeriphDriver) Name() string { return "periph" }

func (d *PeriphDriver) Open(pin int) (Line, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}
	if d.closed {
		return nil, ErrClosed
	}
	p := gpioreg.ByName(strconv.Itoa(pin))
	if p == nil {
		return nil, fmt.Errorf("line: no gpio pin %d on this host", pin)
	}
	if err := p.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("line: set pin %d as output: %w", pin, err)
	}
	return &periphLine{pin: p}, nil
}

func (d *PeriphDriver) Close() error {
	// periph keeps host state for the process lifetime; nothing to release.
	d.closed = true
	return nil
}

type periphLine struct {
	pin gpio.PinIO
}

func (l *periphLine) Set(level Level) error {
	if err := l.pin.Out(gpio.Level(level)); err != nil {
		return fmt.Errorf("line: write %s: %w", l.pin.Name(), err)
	}
	return nil
}
