package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Chain wiring flags, shared by every command that touches hardware.
	driverName    string
	dataPin       int
	latchPin      int
	clockPin      int
	chainPath     string
	invertLevels  bool
	registerCount int
	registerWidth int
	mcpBus        int
	mcpDevice     int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shiftctl",
	Short: "Daisy-chained shift register controller",
	Long: `Control cascades of serial-in parallel-out shift registers (74HC595 and
friends) wired to three GPIO lines: data, latch and clock. State for every
chip is tracked in memory so each output pin can be addressed individually.

Examples:
  shiftctl set --register 0 --value 0b10100101        # Write one register (simulator)
  shiftctl pin --driver rpio --register 0 --pin 3 --high
  shiftctl blink --chain lobby.chain --count 3        # Flash a chain defined in a file
  shiftctl bridges                                    # List USB GPIO bridge candidates`,
	Version: "0.9.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.config/shiftctl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&driverName, "driver", "d", "sim",
		"line driver (sim, rpio, periph, mcp23017, ftdi)")
	rootCmd.PersistentFlags().IntVar(&dataPin, "data", 17,
		"pin wired to the chain's serial data input")
	rootCmd.PersistentFlags().IntVar(&latchPin, "latch", 27,
		"pin wired to the storage register clock (latch)")
	rootCmd.PersistentFlags().IntVar(&clockPin, "clock", 22,
		"pin wired to the shift register clock")
	rootCmd.PersistentFlags().StringVar(&chainPath, "chain", "",
		"chain definition file (overrides pin and register flags)")
	rootCmd.PersistentFlags().BoolVar(&invertLevels, "invert", false,
		"invert logic levels (active-low wiring)")
	rootCmd.PersistentFlags().IntVarP(&registerCount, "registers", "c", 1,
		"number of chained registers (without --chain)")
	rootCmd.PersistentFlags().IntVarP(&registerWidth, "width", "w", 8,
		"output pins per register (without --chain)")
	rootCmd.PersistentFlags().IntVar(&mcpBus, "mcp-bus", 1,
		"I2C bus number for the mcp23017 driver")
	rootCmd.PersistentFlags().IntVar(&mcpDevice, "mcp-dev", 0,
		"mcp23017 device number on the I2C bus")

	viper.BindPFlag("driver", rootCmd.PersistentFlags().Lookup("driver"))
	viper.BindPFlag("chain", rootCmd.PersistentFlags().Lookup("chain"))
	viper.BindPFlag("invert", rootCmd.PersistentFlags().Lookup("invert"))
	viper.BindPFlag("lines.data", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("lines.latch", rootCmd.PersistentFlags().Lookup("latch"))
	viper.BindPFlag("lines.clock", rootCmd.PersistentFlags().Lookup("clock"))
	viper.BindPFlag("registers.count", rootCmd.PersistentFlags().Lookup("registers"))
	viper.BindPFlag("registers.width", rootCmd.PersistentFlags().Lookup("width"))
	viper.BindPFlag("mcp.bus", rootCmd.PersistentFlags().Lookup("mcp-bus"))
	viper.BindPFlag("mcp.device", rootCmd.PersistentFlags().Lookup("mcp-dev"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "shiftctl"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SHIFTCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
