package chain

import (
	"errors"
	"testing"
)

func TestAddReturnsSequentialHandles(t *testing.T) {
	g := NewRegistry()
	for want := Handle(0); want < 3; want++ {
		got, err := g.Add(8)
		if err != nil {
			t.Fatalf("Add(8) failed: %v", err)
		}
		if got != want {
			t.Errorf("Add(8) handle = %d, want %d", got, want)
		}
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
}

func TestAddRejectsNonPositivePinCount(t *testing.T) {
	g := NewRegistry()
	for _, pinCount := range []int{0, -1} {
		if _, err := g.Add(pinCount); !errors.Is(err, ErrInvalidPinCount) {
			t.Errorf("Add(%d) error = %v, want ErrInvalidPinCount", pinCount, err)
		}
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d after rejected adds, want 0", g.Len())
	}
}

func TestAddInitializesPinsLow(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(8)
	reg, err := g.Get(h)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reg.Word() != 0 {
		t.Errorf("new register Word() = %#b, want 0", reg.Word())
	}
	if reg.PinCount() != 8 {
		t.Errorf("PinCount() = %d, want 8", reg.PinCount())
	}
}

func TestSetWordMasksToPinCount(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(4)
	if err := g.SetWord(h, 0b10110110); err != nil {
		t.Fatalf("SetWord failed: %v", err)
	}
	reg, _ := g.Get(h)
	if reg.Word() != 0b0110 {
		t.Errorf("Word() = %#b, want 0b0110", reg.Word())
	}
	if reg.String() != "0b0110" {
		t.Errorf("String() = %q, want %q", reg.String(), "0b0110")
	}
}

func TestSetWordWideRegister(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(70)
	if err := g.SetWord(h, ^uint64(0)); err != nil {
		t.Fatalf("SetWord failed: %v", err)
	}
	reg, _ := g.Get(h)
	if level, _ := reg.Pin(63); !level {
		t.Error("Pin(63) = false, want true")
	}
	for pin := 64; pin < 70; pin++ {
		if level, _ := reg.Pin(pin); level {
			t.Errorf("Pin(%d) = true, want false (beyond word width)", pin)
		}
	}
}

func TestSetPinTouchesExactlyOneBit(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(8)
	g.SetWord(h, 0b01010101)

	if err := g.SetPin(h, 3, true); err != nil {
		t.Fatalf("SetPin failed: %v", err)
	}
	reg, _ := g.Get(h)
	if reg.Word() != 0b01011101 {
		t.Errorf("Word() = %#b, want 0b01011101", reg.Word())
	}

	if err := g.SetPin(h, 0, false); err != nil {
		t.Fatalf("SetPin failed: %v", err)
	}
	if reg.Word() != 0b01011100 {
		t.Errorf("Word() = %#b, want 0b01011100", reg.Word())
	}
}

func TestSetPinOutOfRangeLeavesStateUnchanged(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(8)
	g.SetWord(h, 0b11110000)

	for _, pin := range []int{8, -1, 100} {
		if err := g.SetPin(h, pin, true); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SetPin(h, %d) error = %v, want ErrOutOfRange", pin, err)
		}
	}

	reg, _ := g.Get(h)
	if reg.Word() != 0b11110000 {
		t.Errorf("Word() = %#b after failed SetPin, want 0b11110000", reg.Word())
	}
}

func TestGetUnknownHandle(t *testing.T) {
	g := NewRegistry()
	g.Add(8)
	for _, h := range []Handle{1, -1, 42} {
		if _, err := g.Get(h); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d) error = %v, want ErrOutOfRange", h, err)
		}
	}
}

func TestRegisterPinRead(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(2)
	g.SetPin(h, 1, true)

	reg, _ := g.Get(h)
	if level, err := reg.Pin(1); err != nil || !level {
		t.Errorf("Pin(1) = %v, %v, want true, nil", level, err)
	}
	if level, err := reg.Pin(0); err != nil || level {
		t.Errorf("Pin(0) = %v, %v, want false, nil", level, err)
	}
	if _, err := reg.Pin(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Pin(2) error = %v, want ErrOutOfRange", err)
	}
}

func TestRegisterNames(t *testing.T) {
	g := NewRegistry()
	first, _ := g.Add(8)
	second, _ := g.AddNamed("U3", 8)

	reg, _ := g.Get(first)
	if reg.Name() != "sr0" {
		t.Errorf("Name() = %q, want %q", reg.Name(), "sr0")
	}
	reg, _ = g.Get(second)
	if reg.Name() != "U3" {
		t.Errorf("Name() = %q, want %q", reg.Name(), "U3")
	}
}

func TestStringPadsToPinCount(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(8)
	g.SetWord(h, 0b01010110)

	reg, _ := g.Get(h)
	if got := reg.String(); got != "0b01010110" {
		t.Errorf("String() = %q, want %q", got, "0b01010110")
	}
}

func TestRegistersReturnsCopyOfSlice(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(8)

	regs := g.Registers()
	regs[0] = nil

	if reg, err := g.Get(h); err != nil || reg == nil {
		t.Errorf("Get(%d) = %v, %v after mutating Registers() copy", h, reg, err)
	}
}

func TestBitsReturnsCopy(t *testing.T) {
	g := NewRegistry()
	h, _ := g.Add(4)
	reg, _ := g.Get(h)

	bits := reg.Bits()
	bits[0] = true

	if reg.Word() != 0 {
		t.Errorf("Word() = %#b after mutating Bits() copy, want 0", reg.Word())
	}
}
