// Package predictor recovers the internal state of an MT19937
// generator from 624 consecutive tempered outputs and replays the
// generator's future output stream.
//
// The outputs must be gap-free and in generation order, but need not be
// aligned to a twist boundary: the recurrence carries any 624
// consecutive raw words forward exactly.
package predictor

import (
	"fmt"

	"github.com/daystram/untwist/mt"
)

// Predictor produces the exact outputs the observed generator will
// produce next. It owns its generator state; obtain one via Recover or
// Collector.Recover, which guarantee it is seeded.
//
// A Predictor is not safe for concurrent use.
type Predictor struct {
	src mt.Source
}

// Recover reconstructs a generator from exactly mt.StateSize
// consecutive tempered outputs. Each output is untempered to its raw
// recurrence word and the assembled array seeds a fresh generator, with
// a twist forced before the first prediction. Fails with
// mt.ErrInvalidStateLength for any other output count.
func Recover(outputs []uint32) (*Predictor, error) {
	if len(outputs) != mt.StateSize {
		return nil, fmt.Errorf("%w: got %d outputs, want %d", mt.ErrInvalidStateLength, len(outputs), mt.StateSize)
	}

	state := make([]uint32, mt.StateSize)
	for i, out := range outputs {
		state[i] = mt.Untemper(out)
	}

	var p Predictor
	if err := p.src.SeedState(state); err != nil {
		return nil, err
	}
	return &p, nil
}

// Next returns the next output of the observed generator.
func (p *Predictor) Next() uint32 {
	return p.src.Uint32()
}

// NextN returns the next n outputs of the observed generator.
func (p *Predictor) NextN(n int) []uint32 {
	outputs := make([]uint32, n)
	for i := range outputs {
		outputs[i] = p.src.Uint32()
	}
	return outputs
}
