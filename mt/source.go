// Package mt implements the 32-bit Mersenne Twister (MT19937)
// pseudo-random number generator, exposing enough of its internals to
// reconstruct a generator from observed outputs: the tempering
// transform and its inverse, and direct seeding of the recurrence
// array.
//
// MT19937 is not cryptographically secure. Given 624 consecutive
// outputs, the full generator state can be recovered; see the
// predictor package.
package mt

import (
	"errors"
	"fmt"
)

var ErrInvalidStateLength = errors.New("invalid state length")

// Source is an MT19937 generator. It holds the 624-word recurrence
// array and a cursor marking how many words of the current array have
// been emitted; when the cursor reaches StateSize the array is twisted
// before the next output. The zero value is not a valid generator; use
// NewSource or SeedState.
//
// A Source is not safe for concurrent use. The recurrence is inherently
// sequential, so callers sharing one Source must serialize access.
type Source struct {
	state [StateSize]uint32
	pos   int
}

// NewSource returns a generator initialized with the standard MT19937
// seed expansion.
func NewSource(seed uint32) *Source {
	var s Source
	s.Seed(seed)
	return &s
}

// Seed resets the generator using the standard scalar seed expansion.
// The first twist is deferred to the first output request.
func (s *Source) Seed(seed uint32) {
	s.state[0] = seed
	for i := 1; i < StateSize; i++ {
		s.state[i] = multiplier*(s.state[i-1]^(s.state[i-1]>>30)) + uint32(i)
	}
	s.pos = StateSize
}

// SeedState loads a raw recurrence array directly, bypassing seed
// expansion. The cursor is forced to the exhausted position so that the
// next output request twists first, matching a freshly-seeded
// generator. Fails with ErrInvalidStateLength unless exactly StateSize
// words are given.
func (s *Source) SeedState(state []uint32) error {
	if len(state) != StateSize {
		return fmt.Errorf("%w: got %d words, want %d", ErrInvalidStateLength, len(state), StateSize)
	}
	copy(s.state[:], state)
	s.pos = StateSize
	return nil
}

// twist advances the recurrence array in place. Index i reads only its
// forward neighbors i+1 and i+397 (not yet rewritten in this pass, or
// already advanced where the recurrence wraps), so left-to-right
// in-place updates are exact.
func (s *Source) twist() {
	for i := range s.state {
		y := (s.state[i] & upperMask) | (s.state[(i+1)%StateSize] & lowerMask)
		s.state[i] = s.state[(i+offset)%StateSize] ^ (y >> 1)
		if y&1 == 1 {
			s.state[i] ^= coefficient
		}
	}
}

// Uint32 returns the next tempered output, twisting the recurrence
// array whenever it is exhausted.
func (s *Source) Uint32() uint32 {
	if s.pos == StateSize {
		s.twist()
		s.pos = 0
	}
	n := Temper(s.state[s.pos])
	s.pos++
	return n
}
