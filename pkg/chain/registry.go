// Package chain models the in-memory state of a cascade of shift-register
// chips. A Registry owns the ordered collection of registers and their
// current bit state; the shifter package reads that state back out in
// transmission order when it talks to hardware.
//
// Registers are addressed by the Handle returned from Add, which is simply
// the registration index. Registers are never removed, so handles stay valid
// for the registry's lifetime.
//
// A Registry is not safe for unsynchronized concurrent mutation. Callers
// sharing one across goroutines must serialize access themselves.
package chain

import (
	"errors"
	"fmt"
)

// Handle identifies a register within its Registry. It equals the number of
// registers added before it, starting at 0.
type Handle int

// ErrOutOfRange reports a handle or pin index that does not address any
// tracked state.
var ErrOutOfRange = errors.New("chain: out of range")

// ErrInvalidPinCount reports an attempt to register a chip with a pin count
// that is not positive.
var ErrInvalidPinCount = errors.New("chain: invalid pin count")

// Register tracks the output state of one physical shift-register chip. The
// pin count is fixed at registration; the state is mutated through the
// owning Registry.
type Register struct {
	name string
	pins []bool
}

// Name returns the register's label, either the one given to AddNamed or a
// generated "srN" default.
func (r *Register) Name() string {
	return r.name
}

// PinCount returns the number of output pins the chip exposes.
func (r *Register) PinCount() int {
	return len(r.pins)
}

// Pin reports the buffered level of a single pin.
func (r *Register) Pin(pin int) (bool, error) {
	if pin < 0 || pin >= len(r.pins) {
		return false, fmt.Errorf("%w: pin %d of %d", ErrOutOfRange, pin, len(r.pins))
	}
	return r.pins[pin], nil
}

// Bits returns a copy of the register's state, index 0 = pin 0.
func (r *Register) Bits() []bool {
	return append([]bool(nil), r.pins...)
}

// Word packs the register's state into an integer, pin 0 at bit 0. Pins
// beyond bit 63 are not representable and are omitted.
func (r *Register) Word() uint64 {
	var word uint64
	for i, level := range r.pins {
		if i >= 64 {
			break
		}
		if level {
			word |= 1 << uint(i)
		}
	}
	return word
}

// String renders the state in binary with the highest pin first, padded to
// the pin count, e.g. "0b01010110". Handy when debugging a chain.
func (r *Register) String() string {
	buf := make([]byte, 0, len(r.pins)+2)
	buf = append(buf, '0', 'b')
	for i := len(r.pins) - 1; i >= 0; i-- {
		if r.pins[i] {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return string(buf)
}

// Registry is the append-only, ordered collection of registers in one
// physical chain. Storage order is registration order; the shifter package
// serializes it back-to-front.
type Registry struct {
	registers []*Register
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add starts tracking a new register of pinCount pins, all initialized Low,
// and returns its handle. Registering a chip with zero pins is rejected:
// such a chip cannot exist and a silent no-op register would corrupt the
// transmission order of everything behind it.
func (g *Registry) Add(pinCount int) (Handle, error) {
	return g.AddNamed("", pinCount)
}

// AddNamed is Add with an explicit label. An empty name gets the "srN"
// default.
func (g *Registry) AddNamed(name string, pinCount int) (Handle, error) {
	if pinCount <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPinCount, pinCount)
	}
	if name == "" {
		name = fmt.Sprintf("sr%d", len(g.registers))
	}
	g.registers = append(g.registers, &Register{
		name: name,
		pins: make([]bool, pinCount),
	})
	return Handle(len(g.registers) - 1), nil
}

// Get returns the register for a handle previously returned by Add.
func (g *Registry) Get(h Handle) (*Register, error) {
	if h < 0 || int(h) >= len(g.registers) {
		return nil, fmt.Errorf("%w: handle %d", ErrOutOfRange, h)
	}
	return g.registers[h], nil
}

// SetWord decodes value into the register's pins, bit 0 = pin 0, and
// overwrites the whole state. Bits above the pin count are ignored; this is
// deliberate truncation, not an error. Registers wider than 64 pins get Low
// for every pin past bit 63.
func (g *Registry) SetWord(h Handle, value uint64) error {
	reg, err := g.Get(h)
	if err != nil {
		return err
	}
	for i := range reg.pins {
		if i < 64 {
			reg.pins[i] = value>>uint(i)&1 == 1
		} else {
			reg.pins[i] = false
		}
	}
	return nil
}

// SetPin overwrites exactly one pin's buffered level. The register state is
// untouched when the pin index is out of range.
func (g *Registry) SetPin(h Handle, pin int, level bool) error {
	reg, err := g.Get(h)
	if err != nil {
		return err
	}
	if pin < 0 || pin >= len(reg.pins) {
		return fmt.Errorf("%w: pin %d of %d", ErrOutOfRange, pin, len(reg.pins))
	}
	reg.pins[pin] = level
	return nil
}

// Len returns the number of registers added so far.
func (g *Registry) Len() int {
	return len(g.registers)
}

// Registers returns the registers in storage (registration) order. The slice
// is a copy; the registers themselves are shared.
func (g *Registry) Registers() []*Register {
	return append([]*Register(nil), g.registers...)
}
