package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pinRegister int
	pinIndex    int
	pinHigh     bool
	pinLow      bool
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Drive a single output pin high or low",
	Long: `Set one pin of one register and latch the chain. All other buffered
pin states are retransmitted unchanged.

Examples:
  # Pin 3 of the first register high (simulator)
  shiftctl pin --register 0 --pin 3 --high

  # Pin 0 of the second register low on real hardware
  shiftctl pin --driver rpio --registers 2 --register 1 --pin 0 --low`,
	RunE: runPin,
}

func init() {
	rootCmd.AddCommand(pinCmd)

	pinCmd.Flags().IntVarP(&pinRegister, "register", "r", 0,
		"register index (order of registration)")
	pinCmd.Flags().IntVarP(&pinIndex, "pin", "p", 0,
		"pin index within the register (0 = LSB)")
	pinCmd.Flags().BoolVar(&pinHigh, "high", false, "drive the pin high")
	pinCmd.Flags().BoolVar(&pinLow, "low", false, "drive the pin low")
}

func runPin(cmd *cobra.Command, args []string) error {
	if pinHigh && pinLow {
		return fmt.Errorf("cannot specify both --high and --low")
	}
	if !pinHigh && !pinLow {
		return fmt.Errorf("must specify either --high or --low")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, handles, drv, err := openShifter(cfg)
	if err != nil {
		return err
	}
	defer drv.Close()

	h, err := resolveHandle(handles, pinRegister)
	if err != nil {
		return err
	}

	if pinHigh {
		err = s.SetPinHigh(h, pinIndex, true)
	} else {
		err = s.SetPinLow(h, pinIndex, true)
	}
	if err != nil {
		return fmt.Errorf("failed to set pin: %w", err)
	}

	state := "low"
	if pinHigh {
		state = "high"
	}
	fmt.Printf("Pin %d on register %d set to %s\n", pinIndex, pinRegister, state)

	return nil
}
