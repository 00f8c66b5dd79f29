package shifter

import (
	"fmt"

	"github.com/liftoff/cupi-shift/pkg/chain"
	"github.com/liftoff/cupi-shift/pkg/line"
)

// Shifter owns a register chain and the three signal lines it is wired to.
// All mutators buffer state in the chain registry; hardware only changes on
// Apply (or when a mutator is called with apply=true).
type Shifter struct {
	registry *chain.Registry

	data  line.Line
	latch line.Line
	clock line.Line

	invert bool
}

// New opens the data, latch and clock pins through the driver and returns a
// Shifter with an empty chain. The driver owns pin numbering; the three pins
// must be distinct.
func New(drv line.Driver, dataPin, latchPin, clockPin int) (*Shifter, error) {
	if dataPin == latchPin || dataPin == clockPin || latchPin == clockPin {
		return nil, fmt.Errorf("shifter: data/latch/clock pins must be distinct, got %d/%d/%d", dataPin, latchPin, clockPin)
	}
	data, err := drv.Open(dataPin)
	if err != nil {
		return nil, fmt.Errorf("shifter: open data pin %d: %w", dataPin, err)
	}
	latch, err := drv.Open(latchPin)
	if err != nil {
		return nil, fmt.Errorf("shifter: open latch pin %d: %w", latchPin, err)
	}
	clock, err := drv.Open(clockPin)
	if err != nil {
		return nil, fmt.Errorf("shifter: open clock pin %d: %w", clockPin, err)
	}
	return NewWithLines(data, latch, clock), nil
}

// NewWithLines builds a Shifter on already-opened lines. Useful for tests
// and for wiring that does not go through a Driver.
func NewWithLines(data, latch, clock line.Line) *Shifter {
	return &Shifter{
		registry: chain.NewRegistry(),
		data:     data,
		latch:    latch,
		clock:    clock,
	}
}

// Add starts tracking the next shift register in the cascade and returns its
// handle. Add the chip wired directly to the controller first.
func (s *Shifter) Add(pinCount int) (chain.Handle, error) {
	return s.registry.Add(pinCount)
}

// AddNamed is Add with a label, typically the chip's board designator.
func (s *Shifter) AddNamed(name string, pinCount int) (chain.Handle, error) {
	return s.registry.AddNamed(name, pinCount)
}

// Set overwrites the whole register with the low pin-count bits of value.
// When apply is true the chain is flushed to hardware immediately.
func (s *Shifter) Set(h chain.Handle, value uint64, apply bool) error {
	if err := s.registry.SetWord(h, value); err != nil {
		return err
	}
	if apply {
		return s.Apply()
	}
	return nil
}

// SetPinHigh drives a single pin high, flushing immediately when apply is
// true.
func (s *Shifter) SetPinHigh(h chain.Handle, pin int, apply bool) error {
	return s.setPin(h, pin, true, apply)
}

// SetPinLow drives a single pin low, flushing immediately when apply is
// true.
func (s *Shifter) SetPinLow(h chain.Handle, pin int, apply bool) error {
	return s.setPin(h, pin, false, apply)
}

func (s *Shifter) setPin(h chain.Handle, pin int, level, apply bool) error {
	if err := s.registry.SetPin(h, pin, level); err != nil {
		return err
	}
	if apply {
		return s.Apply()
	}
	return nil
}

// Invert toggles logic inversion for every transmitted bit. Convenient when
// the chain drives active-low hardware or the wiring came out backwards.
// Buffered state keeps its logical meaning; only the wire levels flip.
func (s *Shifter) Invert() {
	s.invert = !s.invert
}

// Inverted reports whether logic inversion is active.
func (s *Shifter) Inverted() bool {
	return s.invert
}

// Registry exposes the underlying chain state for read access.
func (s *Shifter) Registry() *chain.Registry {
	return s.registry
}

// Apply transmits the entire chain's buffered state as one frame: latch Low,
// every register's bits clocked out farthest-chip-first, latch High. A line
// driver failure propagates immediately with no retry and no rollback; the
// next successful Apply retransmits the full frame.
func (s *Shifter) Apply() error {
	if err := s.latch.Set(line.Low); err != nil {
		return fmt.Errorf("shifter: latch low: %w", err)
	}
	regs := s.registry.Registers()
	for i := len(regs) - 1; i >= 0; i-- {
		bits := regs[i].Bits()
		for pin := len(bits) - 1; pin >= 0; pin-- {
			if err := s.shiftBit(bits[pin]); err != nil {
				return err
			}
		}
	}
	if err := s.latch.Set(line.High); err != nil {
		return fmt.Errorf("shifter: latch high: %w", err)
	}
	return nil
}

// shiftBit clocks one bit into the chain: data line first, then a rising
// clock edge to capture it, then the clock back to its Low idle.
func (s *Shifter) shiftBit(level bool) error {
	if err := s.data.Set(line.Level(level != s.invert)); err != nil {
		return fmt.Errorf("shifter: data: %w", err)
	}
	if err := s.clock.Set(line.High); err != nil {
		return fmt.Errorf("shifter: clock high: %w", err)
	}
	if err := s.clock.Set(line.Low); err != nil {
		return fmt.Errorf("shifter: clock low: %w", err)
	}
	return nil
}
