package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	setRegister int
	setValue    string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Write a full value to one register",
	Long: `Write a whole register's worth of pins in one operation and latch the
chain. The value accepts decimal, 0x hex and 0b binary notation; bits above
the register's pin count are truncated.

Examples:
  # All eight pins of the first register, alternating (simulator)
  shiftctl set --register 0 --value 0b10100101

  # Second register of a chain on real Raspberry Pi pins
  shiftctl set --driver rpio --registers 2 --register 1 --value 0xFF`,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().IntVarP(&setRegister, "register", "r", 0,
		"register index (order of registration)")
	setCmd.Flags().StringVar(&setValue, "value", "",
		"value to write (decimal, 0x hex, or 0b binary)")

	setCmd.MarkFlagRequired("value")
}

func runSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	value, err := strconv.ParseUint(setValue, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid --value %q: %w", setValue, err)
	}

	s, handles, drv, err := openShifter(cfg)
	if err != nil {
		return err
	}
	defer drv.Close()

	h, err := resolveHandle(handles, setRegister)
	if err != nil {
		return err
	}

	if err := s.Set(h, value, true); err != nil {
		return fmt.Errorf("failed to write register: %w", err)
	}

	reg, err := s.Registry().Get(h)
	if err != nil {
		return err
	}
	fmt.Printf("Register %d (%s) latched as %s\n", setRegister, reg.Name(), reg)

	return nil
}
