package line

import (
	"fmt"

	"github.com/racerxdl/go-mcp23017"
)

// mcpPinCount is fixed by the MCP23017 silicon (ports A and B, 8 pins each).
const mcpPinCount = 16

// MCPDriver sources the signal lines from an MCP23017 I2C port expander
// instead of the host's own GPIO header. Slower than memory-mapped pins but
// it keeps the header free.
type MCPDriver struct {
	device *mcp23017.Device
}

// NewMCPDriver opens the expander at the given I2C bus and device number.
func NewMCPDriver(bus, device uint8) (*MCPDriver, error) {
	dev, err := mcp23017.Open(bus, device)
	if err != nil {
		return nil, fmt.Errorf("line: open mcp23017 on bus %d device %d: %w", bus, device, err)
	}
	return &MCPDriver{device: dev}, nil
}

func (d *MCPDriver) Name() string { return "mcp23017" }

func (d *MCPDriver) Open(pin int) (Line, error) {
	if pin < 0 || pin >= mcpPinCount {
		return nil, fmt.Errorf("line: mcp23017 has pins 0-%d, got %d", mcpPinCount-1, pin)
	}
	if d.device == nil {
		return nil, ErrClosed
	}
	if err := d.device.PinMode(uint8(pin), mcp23017.OUTPUT); err != nil {
		return nil, fmt.Errorf("line: set mcp23017 pin %d as output: %w", pin, err)
	}
	return &mcpLine{device: d.device, pin: uint8(pin)}, nil
}

func (d *MCPDriver) Close() error {
	if d.device == nil {
		return nil
	}
	err := d.device.Close()
	d.device = nil
	if err != nil {
		return fmt.Errorf("line: close mcp23017: %w", err)
	}
	return nil
}

type mcpLine struct {
	device *mcp23017.Device
	pin    uint8
}

func (l *mcpLine) Set(level Level) error {
	if err := l.device.DigitalWrite(l.pin, mcp23017.PinLevel(level)); err != nil {
		return fmt.Errorf("line: write mcp23017 pin %d: %w", l.pin, err)
	}
	return nil
}
