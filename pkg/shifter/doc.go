// Package shifter drives daisy-chained serial-in parallel-out shift
// registers (74HC595 and friends) over three digital output lines.
//
// This package builds on top of the chain package, translating per-pin and
// per-register updates into the bit stream and clock/latch pulses the
// hardware expects. It keeps the buffered state of every chip in the chain
// so callers can treat each output pin as if it were an independently
// addressable GPIO pin.
//
// # Overview
//
// The shifter package provides:
//   - Shifter: owns the chain state and the data/latch/clock lines
//   - Mutators: Set, SetPinHigh, SetPinLow, each with an immediate-apply flag
//   - Apply: serializes and transmits the entire chain in one latch frame
//   - Batch: queues several mutations and commits them under a single frame
//
// # Usage
//
// Basic usage follows this pattern:
//
//	// 1. Open the three signal lines through a driver
//	drv := line.NewSimDriver() // or NewRPIDriver(), NewPeriphDriver(), ...
//	s, err := shifter.New(drv, 17, 27, 22) // data, latch, clock
//
//	// 2. Register each chip in the chain
//	sr0, err := s.Add(8)
//
//	// 3. Mutate state; apply immediately or batch
//	err = s.Set(sr0, 0b11111111, true)         // all pins high, latch now
//	err = s.SetPinLow(sr0, 3, false)           // buffer only
//	err = s.Apply()                            // latch the buffered change
//
// # Chain Order
//
// Registers are added in physical order starting with the chip wired
// directly to the controller; each later Add describes the next chip down
// the cascade. Apply serializes the chain farthest-chip-first (the reverse
// of registration order) because bits clocked out first propagate through
// every nearer chip before coming to rest: by the time the frame latches,
// each register holds its own bits. Within one register the highest pin
// index is transmitted first.
//
// # Wire Protocol
//
// One Apply is one frame: latch Low, one clock pulse per bit across all
// registers, latch High. For every bit the data line is set first, then the
// clock is pulsed High and back Low, so the receiving chip samples on the
// rising edge (the 74HC595 SRCLK convention). The clock idles Low and the
// latch idles High between frames; the data line is left at the last
// transmitted level. Apply is idempotent: with no intervening mutation it
// retransmits the identical frame.
//
// # Limitations
//
//   - Not safe for unsynchronized concurrent use; callers own the locking
//   - No partial-frame recovery: a driver fault mid-frame surfaces to the
//     caller and the hardware is left wherever the fault stopped it
//   - Fixed most-significant-bit-first order; chips with other bit orders
//     are not supported
package shifter
