package line

import (
	"context"
	"fmt"

	"github.com/google/gousb"
)

// BridgeKind categorizes USB GPIO bridge families.
type BridgeKind string

const (
	BridgeKindFTDI    BridgeKind = "ftdi"
	BridgeKindMCP2221 BridgeKind = "mcp2221"
	BridgeKindCP2112  BridgeKind = "cp2112"
	BridgeKindUnknown BridgeKind = "unknown"
	BridgeKindSim     BridgeKind = "simulator"
)

// BridgeInfo describes a detected USB GPIO bridge.
type BridgeInfo struct {
	Kind        BridgeKind
	Description string
	VendorID    uint16
	ProductID   uint16
	Serial      string
}

// Label returns a user-friendly description for the bridge.
func (b BridgeInfo) Label() string {
	if b.Description != "" {
		return b.Description
	}
	if b.Kind != "" {
		return fmt.Sprintf("%s (%04X:%04X)", string(b.Kind), b.VendorID, b.ProductID)
	}
	return fmt.Sprintf("Bridge %04X:%04X", b.VendorID, b.ProductID)
}

// DiscoverBridges enumerates connected USB devices that match known GPIO
// bridge VID/PID pairs. It always returns at least the simulator entry so
// the tool can be exercised without hardware connected.
func DiscoverBridges(ctx context.Context) ([]BridgeInfo, error) {
	var results []BridgeInfo
	usb := gousb.NewContext()
	defer usb.Close()

	_, err := usb.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		if info, ok := classifyUSBBridge(desc); ok {
			results = append(results, info)
		}
		return false
	})
	if err != nil && err != gousb.ErrorAccess {
		return results, err
	}

	results = append(results, BridgeInfo{
		Kind:        BridgeKindSim,
		Description: "Simulator (no hardware)",
	})

	return results, nil
}

func classifyUSBBridge(desc *gousb.DeviceDesc) (BridgeInfo, bool) {
	for _, known := range knownFTDIVIDPIDs {
		if uint16(desc.Vendor) == known.VendorID && uint16(desc.Product) == known.ProductID {
			return BridgeInfo{
				Kind:        BridgeKindFTDI,
				Description: known.Description,
				VendorID:    known.VendorID,
				ProductID:   known.ProductID,
			}, true
		}
	}
	for _, known := range knownHIDBridgeVIDPIDs {
		if uint16(desc.Vendor) == known.VendorID && uint16(desc.Product) == known.ProductID {
			return BridgeInfo{
				Kind:        known.Kind,
				Description: known.Description,
				VendorID:    known.VendorID,
				ProductID:   known.ProductID,
			}, true
		}
	}
	return BridgeInfo{}, false
}

type knownUSBBridge struct {
	VendorID    uint16
	ProductID   uint16
	Kind        BridgeKind
	Description string
}

var knownFTDIVIDPIDs = []knownUSBBridge{
	{VendorID: 0x0403, ProductID: 0x6001, Description: "FTDI FT232R"},
	{VendorID: 0x0403, ProductID: 0x6010, Description: "FTDI FT2232H"},
	{VendorID: 0x0403, ProductID: 0x6011, Description: "FTDI FT4232H"},
	{VendorID: 0x0403, ProductID: 0x6014, Description: "FTDI FT232H"},
}

var knownHIDBridgeVIDPIDs = []knownUSBBridge{
	{VendorID: 0x04d8, ProductID: 0x00dd, Kind: BridgeKindMCP2221, Description: "Microchip MCP2221"},
	{VendorID: 0x10c4, ProductID: 0xea90, Kind: BridgeKindCP2112, Description: "Silicon Labs CP2112"},
}
