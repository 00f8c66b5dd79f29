package chainfile

import (
	"fmt"
	"strings"
)

// Definition is the validated form of a parsed chain file, ready to be wired
// into a shifter.
type Definition struct {
	Name     string
	DataPin  int
	LatchPin int
	ClockPin int
	Inverted bool

	// Registers in file order: the chip wired directly to the controller
	// first, then down the cascade.
	Registers []RegisterDef
}

// RegisterDef describes one chip in the cascade.
type RegisterDef struct {
	Name string
	Pins int
}

// TotalPins sums the pin counts of every register in the chain.
func (d *Definition) TotalPins() int {
	total := 0
	for _, reg := range d.Registers {
		total += reg.Pins
	}
	return total
}

// Definition validates the parsed file and extracts a Definition from it.
// Every signal line must be assigned exactly once, pin numbers must be
// distinct, and the chain needs at least one register with a positive pin
// count and a unique name.
func (f *File) Definition() (*Definition, error) {
	if f == nil || f.Chain == nil {
		return nil, fmt.Errorf("chainfile: empty file")
	}

	def := &Definition{Name: unquote(f.Chain.Name)}
	seenLines := make(map[string]bool)
	seenNames := make(map[string]bool)

	for _, stmt := range f.Chain.Stmts {
		switch {
		case stmt.Line != nil:
			role := strings.ToLower(stmt.Line.Role)
			if seenLines[role] {
				return nil, fmt.Errorf("chainfile: line %s declared twice", role)
			}
			seenLines[role] = true
			if stmt.Line.Pin < 0 {
				return nil, fmt.Errorf("chainfile: line %s has negative pin %d", role, stmt.Line.Pin)
			}
			switch role {
			case "data":
				def.DataPin = stmt.Line.Pin
			case "latch":
				def.LatchPin = stmt.Line.Pin
			case "clock":
				def.ClockPin = stmt.Line.Pin
			}

		case stmt.Register != nil:
			name := unquote(stmt.Register.Name)
			if name == "" {
				return nil, fmt.Errorf("chainfile: register with empty name")
			}
			if seenNames[name] {
				return nil, fmt.Errorf("chainfile: register %q declared twice", name)
			}
			seenNames[name] = true
			if stmt.Register.Pins <= 0 {
				return nil, fmt.Errorf("chainfile: register %q has invalid pin count %d", name, stmt.Register.Pins)
			}
			def.Registers = append(def.Registers, RegisterDef{
				Name: name,
				Pins: stmt.Register.Pins,
			})

		case stmt.Inverted != nil:
			def.Inverted = stmt.Inverted.Value
		}
	}

	for _, role := range []string{"data", "latch", "clock"} {
		if !seenLines[role] {
			return nil, fmt.Errorf("chainfile: missing line %s", role)
		}
	}
	if def.DataPin == def.LatchPin || def.DataPin == def.ClockPin || def.LatchPin == def.ClockPin {
		return nil, fmt.Errorf("chainfile: data/latch/clock pins must be distinct, got %d/%d/%d",
			def.DataPin, def.LatchPin, def.ClockPin)
	}
	if len(def.Registers) == 0 {
		return nil, fmt.Errorf("chainfile: chain %q declares no registers", def.Name)
	}

	return def, nil
}
