package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [chain-file]",
	Short: "Parse and display information from a chain file",
	Long: `Parse a chain definition file and display its contents including line
assignments, registers and the order in which register bits leave the data
line. The file can be given as an argument or through --chain.

Examples:
  shiftctl info lobby.chain
  shiftctl info --chain testdata/lobby.chain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := chainPath
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no chain file given (pass a path or use --chain)")
	}

	if verbose {
		fmt.Printf("Parsing chain file: %s\n\n", path)
	}

	def, err := loadDefinition(path)
	if err != nil {
		return err
	}

	fmt.Printf("╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ Chain File Information                                         ║\n")
	fmt.Printf("╠════════════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║ Chain: %-55s ║\n", def.Name)
	fmt.Printf("╚════════════════════════════════════════════════════════════════╝\n\n")

	fmt.Printf("Lines:\n")
	fmt.Printf("  Data:  GPIO %d\n", def.DataPin)
	fmt.Printf("  Latch: GPIO %d\n", def.LatchPin)
	fmt.Printf("  Clock: GPIO %d\n", def.ClockPin)
	fmt.Println()

	fmt.Printf("Inverted outputs: %v\n\n", def.Inverted)

	fmt.Printf("Registers: %d total, %d pins\n", len(def.Registers), def.TotalPins())
	for i, reg := range def.Registers {
		fmt.Printf("  %d: %-16s %d pins\n", i, reg.Name, reg.Pins)
	}
	fmt.Println()

	fmt.Printf("Transmission order (first bits out reach the last chip):\n")
	for i := len(def.Registers) - 1; i >= 0; i-- {
		fmt.Printf("  %s", def.Registers[i].Name)
		if i > 0 {
			fmt.Printf(" ->")
		}
		fmt.Println()
	}

	return nil
}
