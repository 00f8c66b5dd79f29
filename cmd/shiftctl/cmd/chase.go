package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	chaseInterval time.Duration
	chaseCount    int
)

var chaseCmd = &cobra.Command{
	Use:   "chase",
	Short: "Walk a single lit pin across the chain",
	Long: `Light one pin at a time, walking from pin 0 of the first register to
the last pin of the last register. Each step clears the whole chain and sets
the next pin in a single committed frame.

Examples:
  # One sweep across eight simulated pins
  shiftctl chase --count 1

  # Endless-ish chaser on two real registers
  shiftctl chase --driver rpio --registers 2 --count 100 --interval 50ms`,
	RunE: runChase,
}

func init() {
	rootCmd.AddCommand(chaseCmd)

	chaseCmd.Flags().DurationVar(&chaseInterval, "interval", 100*time.Millisecond,
		"time each pin stays lit")
	chaseCmd.Flags().IntVar(&chaseCount, "count", 3, "number of full sweeps")
}

func runChase(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, handles, drv, err := openShifter(cfg)
	if err != nil {
		return err
	}
	defer drv.Close()

	total := 0
	for _, h := range handles {
		reg, err := s.Registry().Get(h)
		if err != nil {
			return err
		}
		total += reg.PinCount()
	}
	if verbose {
		fmt.Printf("Chasing across %d pin(s), %d sweep(s) every %s\n",
			total, chaseCount, chaseInterval)
	}

	for sweep := 0; sweep < chaseCount; sweep++ {
		for _, h := range handles {
			reg, err := s.Registry().Get(h)
			if err != nil {
				return err
			}
			for pin := 0; pin < reg.PinCount(); pin++ {
				batch := s.NewBatch()
				for _, other := range handles {
					if err := batch.Set(other, 0); err != nil {
						return err
					}
				}
				if err := batch.SetPinHigh(h, pin); err != nil {
					return err
				}
				if err := batch.Commit(); err != nil {
					return fmt.Errorf("failed to advance chase: %w", err)
				}
				time.Sleep(chaseInterval)
			}
		}
	}

	// Leave the chain dark rather than parked on the last pin.
	if err := setAll(s, handles, false); err != nil {
		return fmt.Errorf("failed to clear chain: %w", err)
	}

	fmt.Printf("Completed %d sweep(s) over %d pin(s)\n", chaseCount, total)

	return nil
}
