package shifter

import (
	"reflect"
	"testing"

	"github.com/liftoff/cupi-shift/pkg/chainfile"
	"github.com/liftoff/cupi-shift/pkg/line"
)

const lobbyChain = `
chain "lobby" is
	line data  : 17;
	line latch : 27;
	line clock : 22;

	register "U1" : 8;
	register "U2" : 8;

	inverted : false;
end chain;
`

func parseChain(t *testing.T, input string) *chainfile.Definition {
	t.Helper()
	parser, err := chainfile.NewParser()
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	def, err := file.Definition()
	if err != nil {
		t.Fatalf("Definition failed: %v", err)
	}
	return def
}

func TestFromDefinitionWiresChain(t *testing.T) {
	def := parseChain(t, lobbyChain)
	drv := line.NewSimDriver()

	s, handles, err := FromDefinition(drv, def)
	if err != nil {
		t.Fatalf("FromDefinition failed: %v", err)
	}

	if len(handles) != 2 {
		t.Fatalf("got %d handles, want 2", len(handles))
	}
	if s.Inverted() {
		t.Error("Inverted() = true, want false")
	}

	reg, err := s.Registry().Get(handles[0])
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reg.Name() != "U1" {
		t.Errorf("first register Name() = %q, want %q", reg.Name(), "U1")
	}

	// U2 is farther down the cascade, so its bits transmit first.
	s.Set(handles[0], 0b10000000, false)
	s.Set(handles[1], 0b00000001, false)
	if err := s.Apply(); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	want := [][]line.Level{frame("00000001" + "10000000")}
	if got := drv.Frames(17, 27, 22); !reflect.DeepEqual(got, want) {
		t.Errorf("Frames() = %v, want %v", got, want)
	}
}

func TestFromDefinitionAppliesInversion(t *testing.T) {
	def := parseChain(t, `
	chain "backwards" is
		line data  : 1;
		line latch : 2;
		line clock : 3;
		register "U1" : 4;
		inverted : true;
	end chain;
	`)
	drv := line.NewSimDriver()

	s, _, err := FromDefinition(drv, def)
	if err != nil {
		t.Fatalf("FromDefinition failed: %v", err)
	}
	if !s.Inverted() {
		t.Error("Inverted() = false, want true")
	}
}

func TestFromDefinitionNil(t *testing.T) {
	if _, _, err := FromDefinition(line.NewSimDriver(), nil); err == nil {
		t.Error("FromDefinition(nil) succeeded, want error")
	}
}
