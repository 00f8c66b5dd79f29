package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/liftoff/cupi-shift/pkg/line"
	"github.com/spf13/cobra"
)

var bridgesCmd = &cobra.Command{
	Use:   "bridges",
	Short: "List available GPIO bridges",
	Long: `Scan the host for USB GPIO bridges (FTDI, MCP2221, etc.) and print a summary
of the detected hardware. Use this to verify connectivity or select a driver before
launching other commands.`,
	RunE: runBridges,
}

func init() {
	rootCmd.AddCommand(bridgesCmd)
}

func runBridges(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	infos, err := line.DiscoverBridges(ctx)
	if err != nil {
		return fmt.Errorf("discover bridges: %w", err)
	}

	if len(infos) == 0 {
		fmt.Println("No bridges found.")
		return nil
	}

	fmt.Println("Detected GPIO bridges:")
	for _, bridge := range infos {
		fmt.Printf("  - %s [%s] (VID:PID %04X:%04X)\n", bridge.Label(), bridge.Kind, bridge.VendorID, bridge.ProductID)
	}

	return nil
}
