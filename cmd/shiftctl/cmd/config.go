package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the resolved tool configuration: flag values layered over the
// config file layered over defaults, all through viper.
type Config struct {
	Driver string `mapstructure:"driver"`
	Chain  string `mapstructure:"chain"`
	Invert bool   `mapstructure:"invert"`

	Lines struct {
		Data  int `mapstructure:"data"`
		Latch int `mapstructure:"latch"`
		Clock int `mapstructure:"clock"`
	} `mapstructure:"lines"`

	Registers struct {
		Count int `mapstructure:"count"`
		Width int `mapstructure:"width"`
	} `mapstructure:"registers"`

	MCP struct {
		Bus    int `mapstructure:"bus"`
		Device int `mapstructure:"device"`
	} `mapstructure:"mcp"`
}

// loadConfig unmarshals the viper state into a Config and validates it.
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors before any hardware is
// touched.
func (c *Config) Validate() error {
	switch c.Driver {
	case "sim", "simulator", "rpio", "periph", "mcp23017", "mcp", "ftdi":
	default:
		return fmt.Errorf("unknown driver %q (supported: sim, rpio, periph, mcp23017, ftdi)", c.Driver)
	}

	// With a chain file the wiring comes from the file instead.
	if c.Chain == "" {
		if c.Lines.Data == c.Lines.Latch || c.Lines.Data == c.Lines.Clock || c.Lines.Latch == c.Lines.Clock {
			return fmt.Errorf("data/latch/clock pins must be distinct, got %d/%d/%d",
				c.Lines.Data, c.Lines.Latch, c.Lines.Clock)
		}
		if c.Registers.Count < 1 {
			return fmt.Errorf("need at least one register, got %d", c.Registers.Count)
		}
		if c.Registers.Width < 1 {
			return fmt.Errorf("register width must be positive, got %d", c.Registers.Width)
		}
	}

	if c.MCP.Bus < 0 || c.MCP.Device < 0 {
		return fmt.Errorf("mcp bus/device must not be negative, got %d/%d", c.MCP.Bus, c.MCP.Device)
	}

	return nil
}
