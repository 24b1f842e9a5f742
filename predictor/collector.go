package predictor

import (
	"fmt"

	"github.com/daystram/untwist/mt"
)

// Collector accumulates observed tempered outputs until enough are
// available to recover the generator state. Observations may arrive in
// any batch size; sources that emit several outputs per interaction can
// overshoot the requirement, and the excess is ignored on recovery.
type Collector struct {
	outputs []uint32
}

// Record appends observed outputs, which must be gap-free and in
// generation order across all calls.
func (c *Collector) Record(outputs ...uint32) {
	c.outputs = append(c.outputs, outputs...)
}

// Len returns the number of outputs recorded so far.
func (c *Collector) Len() int {
	return len(c.outputs)
}

// Remaining returns how many more outputs are needed before Recover can
// succeed.
func (c *Collector) Remaining() int {
	if len(c.outputs) >= mt.StateSize {
		return 0
	}
	return mt.StateSize - len(c.outputs)
}

// Ready reports whether enough outputs have been recorded.
func (c *Collector) Ready() bool {
	return c.Remaining() == 0
}

// Recover reconstructs a generator from the first mt.StateSize recorded
// outputs. Fails with mt.ErrInvalidStateLength while the collector is
// not ready.
func (c *Collector) Recover() (*Predictor, error) {
	if !c.Ready() {
		return nil, fmt.Errorf("%w: got %d outputs, want %d", mt.ErrInvalidStateLength, len(c.outputs), mt.StateSize)
	}
	return Recover(c.outputs[:mt.StateSize])
}
