package shifter

import (
	"fmt"

	"github.com/liftoff/cupi-shift/pkg/chain"
	"github.com/liftoff/cupi-shift/pkg/chainfile"
	"github.com/liftoff/cupi-shift/pkg/line"
)

// FromDefinition wires a parsed chain definition into a live Shifter: the
// three lines are opened through the driver, every register is added in file
// order, and inversion is applied when the file asks for it. Handles are
// returned in file order.
func FromDefinition(drv line.Driver, def *chainfile.Definition) (*Shifter, []chain.Handle, error) {
	if def == nil {
		return nil, nil, fmt.Errorf("shifter: nil chain definition")
	}
	s, err := New(drv, def.DataPin, def.LatchPin, def.ClockPin)
	if err != nil {
		return nil, nil, err
	}
	if def.Inverted {
		s.Invert()
	}
	handles := make([]chain.Handle, 0, len(def.Registers))
	for _, reg := range def.Registers {
		h, err := s.AddNamed(reg.Name, reg.Pins)
		if err != nil {
			return nil, nil, fmt.Errorf("shifter: add register %q: %w", reg.Name, err)
		}
		handles = append(handles, h)
	}
	return s, handles, nil
}
