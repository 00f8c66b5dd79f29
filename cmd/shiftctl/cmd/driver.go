package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/liftoff/cupi-shift/pkg/chain"
	"github.com/liftoff/cupi-shift/pkg/chainfile"
	"github.com/liftoff/cupi-shift/pkg/line"
	"github.com/liftoff/cupi-shift/pkg/shifter"
)

// createDriver creates the appropriate line driver based on the configured
// backend name.
func createDriver(cfg *Config) (line.Driver, error) {
	switch cfg.Driver {
	case "sim", "simulator":
		if verbose {
			fmt.Println("Using simulator driver")
		}
		return line.NewSimDriver(), nil

	case "rpio":
		drv, err := line.NewRPIDriver()
		if err != nil {
			return nil, fmt.Errorf("failed to open rpio driver: %w", err)
		}
		return drv, nil

	case "periph":
		drv, err := line.NewPeriphDriver()
		if err != nil {
			return nil, fmt.Errorf("failed to open periph driver: %w", err)
		}
		return drv, nil

	case "mcp23017", "mcp":
		drv, err := line.NewMCPDriver(uint8(cfg.MCP.Bus), uint8(cfg.MCP.Device))
		if err != nil {
			return nil, fmt.Errorf("failed to open mcp23017 driver: %w", err)
		}
		return drv, nil

	case "ftdi":
		return line.NewFTDIDriver(""), nil

	default:
		return nil, fmt.Errorf("unknown driver type: %s", cfg.Driver)
	}
}

// openShifter builds the engine described by the configuration: from the
// chain file when one is given, otherwise from the pin and register flags.
// The caller owns the returned driver and must Close it.
func openShifter(cfg *Config) (*shifter.Shifter, []chain.Handle, line.Driver, error) {
	drv, err := createDriver(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Debug("driver opened", zap.String("driver", drv.Name()))

	if cfg.Chain != "" {
		s, handles, err := openChainFile(cfg, drv)
		if err != nil {
			drv.Close()
			return nil, nil, nil, err
		}
		return s, handles, drv, nil
	}

	s, err := shifter.New(drv, cfg.Lines.Data, cfg.Lines.Latch, cfg.Lines.Clock)
	if err != nil {
		drv.Close()
		return nil, nil, nil, err
	}
	if cfg.Invert {
		s.Invert()
	}

	handles := make([]chain.Handle, 0, cfg.Registers.Count)
	for i := 0; i < cfg.Registers.Count; i++ {
		h, err := s.Add(cfg.Registers.Width)
		if err != nil {
			drv.Close()
			return nil, nil, nil, err
		}
		handles = append(handles, h)
	}

	logger.Debug("chain configured",
		zap.Int("registers", len(handles)),
		zap.Int("width", cfg.Registers.Width),
		zap.Bool("invert", cfg.Invert))

	return s, handles, drv, nil
}

func openChainFile(cfg *Config, drv line.Driver) (*shifter.Shifter, []chain.Handle, error) {
	if verbose {
		fmt.Printf("Loading chain definition from: %s\n", cfg.Chain)
	}

	def, err := loadDefinition(cfg.Chain)
	if err != nil {
		return nil, nil, err
	}

	s, handles, err := shifter.FromDefinition(drv, def)
	if err != nil {
		return nil, nil, err
	}
	// --invert on top of the file forces inversion on, never off.
	if cfg.Invert && !s.Inverted() {
		s.Invert()
	}

	logger.Debug("chain configured from file",
		zap.String("chain", def.Name),
		zap.Int("registers", len(handles)),
		zap.Int("pins", def.TotalPins()),
		zap.Bool("invert", s.Inverted()))

	return s, handles, nil
}

func loadDefinition(path string) (*chainfile.Definition, error) {
	parser, err := chainfile.NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chain file: %w", err)
	}
	def, err := file.Definition()
	if err != nil {
		return nil, fmt.Errorf("invalid chain file: %w", err)
	}
	return def, nil
}

// resolveHandle maps a user-facing register index onto its handle.
func resolveHandle(handles []chain.Handle, index int) (chain.Handle, error) {
	if index < 0 || index >= len(handles) {
		return 0, fmt.Errorf("register %d not configured (chain has %d)", index, len(handles))
	}
	return handles[index], nil
}

// allOnes returns a value with the low width bits set.
func allOnes(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(width) - 1
}
