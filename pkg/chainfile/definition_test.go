package chainfile

import (
	"strings"
	"testing"
)

func parseDefinition(t *testing.T, input string) (*Definition, error) {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	return file.Definition()
}

func TestDefinitionExtractsLines(t *testing.T) {
	def, err := parseDefinition(t, `
	chain "lobby" is
		line data  : 17;
		line latch : 27;
		line clock : 22;
		register "U1" : 8;
		inverted : false;
	end chain;
	`)
	if err != nil {
		t.Fatalf("Definition() failed: %v", err)
	}

	if def.Name != "lobby" {
		t.Errorf("Name = %q, want %q", def.Name, "lobby")
	}
	if def.DataPin != 17 || def.LatchPin != 27 || def.ClockPin != 22 {
		t.Errorf("pins = %d/%d/%d, want 17/27/22", def.DataPin, def.LatchPin, def.ClockPin)
	}
	if def.Inverted {
		t.Error("Inverted = true, want false")
	}
}

func TestDefinitionValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name: "missing clock line",
			input: `chain "x" is
				line data : 1;
				line latch : 2;
				register "U1" : 8;
			end chain;`,
			wantErr: "missing line clock",
		},
		{
			name: "duplicate line",
			input: `chain "x" is
				line data : 1;
				line data : 4;
				line latch : 2;
				line clock : 3;
				register "U1" : 8;
			end chain;`,
			wantErr: "declared twice",
		},
		{
			name: "shared pin numbers",
			input: `chain "x" is
				line data : 1;
				line latch : 1;
				line clock : 3;
				register "U1" : 8;
			end chain;`,
			wantErr: "must be distinct",
		},
		{
			name: "no registers",
			input: `chain "x" is
				line data : 1;
				line latch : 2;
				line clock : 3;
			end chain;`,
			wantErr: "declares no registers",
		},
		{
			name: "zero pin register",
			input: `chain "x" is
				line data : 1;
				line latch : 2;
				line clock : 3;
				register "U1" : 0;
			end chain;`,
			wantErr: "invalid pin count",
		},
		{
			name: "duplicate register name",
			input: `chain "x" is
				line data : 1;
				line latch : 2;
				line clock : 3;
				register "U1" : 8;
				register "U1" : 8;
			end chain;`,
			wantErr: "declared twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDefinition(t, tt.input)
			if err == nil {
				t.Fatal("Definition() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Definition() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
