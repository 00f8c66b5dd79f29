package line

// Event records a single level transition on a simulated line.
type Event struct {
	Pin   int
	Level Level
}

// SetHook allows tests to observe or fail individual line writes.
type SetHook func(pin int, level Level) error

// SimDriver is an in-memory driver useful for unit tests and demos. It
// records every transition in order and can optionally inject faults via
// OnSet.
type SimDriver struct {
	OnSet SetHook

	events []Event
	levels map[int]Level
	closed bool
}

// NewSimDriver constructs a simulator with no lines claimed yet. All pins
// read back Low until the first write.
func NewSimDriver() *SimDriver {
	return &SimDriver{levels: make(map[int]Level)}
}

func (d *SimDriver) Name() string { return "sim" }

func (d *SimDriver) Open(pin int) (Line, error) {
	if err := validatePin(pin); err != nil {
		return nil, err
	}
	if d.closed {
		return nil, ErrClosed
	}
	if _, ok := d.levels[pin]; !ok {
		d.levels[pin] = Low
	}
	return &simLine{driver: d, pin: pin}, nil
}

func (d *SimDriver) Close() error {
	d.closed = true
	return nil
}

// Events returns a copy of all recorded transitions in write order.
func (d *SimDriver) Events() []Event {
	return append([]Event(nil), d.events...)
}

// ClearEvents discards the recorded transitions but keeps current levels.
func (d *SimDriver) ClearEvents() {
	d.events = d.events[:0]
}

// Level reports the most recently written level of a pin.
func (d *SimDriver) Level(pin int) Level {
	return d.levels[pin]
}

// Frames replays the event log against the given wiring and returns the bit
// patterns a chain of latched shift registers would have captured. A bit is
// sampled from the data line on each rising clock edge; a frame closes on
// each rising latch edge. Bits appear in arrival order, so the first bit of
// a frame is the one that ends up in the register farthest from the
// controller.
func (d *SimDriver) Frames(dataPin, latchPin, clockPin int) [][]Level {
	var (
		frames  [][]Level
		current []Level
		data    Level
		clock   Level
		latch   = High
	)
	for _, ev := range d.events {
		switch ev.Pin {
		case dataPin:
			data = ev.Level
		case clockPin:
			if ev.Level == High && clock == Low {
				current = append(current, data)
			}
			clock = ev.Level
		case latchPin:
			if ev.Level == High && latch == Low {
				frames = append(frames, current)
				current = nil
			}
			latch = ev.Level
		}
	}
	return frames
}

type simLine struct {
	driver *SimDriver
	pin    int
}

func (l *simLine) Set(level Level) error {
	d := l.driver
	if d.closed {
		return ErrClosed
	}
	if d.OnSet != nil {
		if err := d.OnSet(l.pin, level); err != nil {
			return err
		}
	}
	d.levels[l.pin] = level
	d.events = append(d.events, Event{Pin: l.pin, Level: level})
	return nil
}
