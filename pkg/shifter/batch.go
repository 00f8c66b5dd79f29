package shifter

import (
	"fmt"

	"github.com/liftoff/cupi-shift/pkg/chain"
)

// Batch accumulates register mutations so a burst of changes reaches the
// hardware under a single latch frame instead of one frame per call. The
// more registers in the chain, the more flicker per-call applies would
// cause; a batch latches exactly once.
type Batch struct {
	shifter *Shifter
	ops     []batchOp
}

type batchOp struct {
	handle  chain.Handle
	setWord bool
	word    uint64
	pin     int
	level   bool
}

// NewBatch returns a fresh batch bound to the shifter. Queue mutations with
// Set/SetPinHigh/SetPinLow, then Commit.
func (s *Shifter) NewBatch() *Batch {
	return &Batch{shifter: s}
}

// Set queues a whole-register write. The handle is validated now; nothing is
// buffered in the chain until Commit.
func (b *Batch) Set(h chain.Handle, value uint64) error {
	if _, err := b.shifter.registry.Get(h); err != nil {
		return err
	}
	b.ops = append(b.ops, batchOp{handle: h, setWord: true, word: value})
	return nil
}

// SetPinHigh queues a single-pin write of high. Handle and pin index are
// validated at queue time.
func (b *Batch) SetPinHigh(h chain.Handle, pin int) error {
	return b.setPin(h, pin, true)
}

// SetPinLow queues a single-pin write of low. Handle and pin index are
// validated at queue time.
func (b *Batch) SetPinLow(h chain.Handle, pin int) error {
	return b.setPin(h, pin, false)
}

func (b *Batch) setPin(h chain.Handle, pin int, level bool) error {
	reg, err := b.shifter.registry.Get(h)
	if err != nil {
		return err
	}
	if pin < 0 || pin >= reg.PinCount() {
		return fmt.Errorf("%w: pin %d of %d", chain.ErrOutOfRange, pin, reg.PinCount())
	}
	b.ops = append(b.ops, batchOp{handle: h, pin: pin, level: level})
	return nil
}

// Commit applies the queued mutations to the chain in queue order and
// transmits exactly one frame. The queue is drained even when the transmit
// fails; the buffered state is already current at that point and a plain
// Apply retries the frame.
func (b *Batch) Commit() error {
	if len(b.ops) == 0 {
		return fmt.Errorf("shifter: batch has no operations")
	}
	for _, op := range b.ops {
		var err error
		if op.setWord {
			err = b.shifter.registry.SetWord(op.handle, op.word)
		} else {
			err = b.shifter.registry.SetPin(op.handle, op.pin, op.level)
		}
		if err != nil {
			return err
		}
	}
	b.ops = b.ops[:0]
	return b.shifter.Apply()
}
