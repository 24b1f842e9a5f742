package mt

// Temper applies the MT19937 output tempering transformation to a raw
// recurrence-array word. It is a bijection on the 32-bit space.
func Temper(n uint32) uint32 {
	n ^= n >> temperShiftU
	n ^= (n << temperShiftS) & temperMask1
	n ^= (n << temperShiftT) & temperMask2
	n ^= n >> temperShiftL

	return n
}

// Untemper reverses Temper, recovering the raw recurrence-array word
// behind an observed output. The four tempering steps are undone in
// reverse order, each by its own inverse.
func Untemper(n uint32) uint32 {
	n = invertRightShiftXor(n, temperShiftL)
	n = invertLeftShiftXorAnd(n, temperShiftT, temperMask2)
	n = invertLeftShiftXorAnd(n, temperShiftS, temperMask1)
	n = invertRightShiftXor(n, temperShiftU)

	return n
}

// invertRightShiftXor undoes v ^= v >> shift. A right shift only mixes
// higher bits into lower positions, so the word is recovered in
// shift-wide chunks from the most significant end down: each chunk is
// the tempered chunk xored with already-recovered bits shifted into
// place. The final chunk is narrower when shift does not divide 32.
func invertRightShiftXor(v uint32, shift uint) uint32 {
	var x uint32
	for i := uint(0); i < 32; i += shift {
		width := shift
		if i+width > 32 {
			width = 32 - i
		}
		chunk := (uint32(1)<<width - 1) << (32 - i - width)
		x |= (v ^ (x >> shift)) & chunk
	}
	return x
}

// invertLeftShiftXorAnd undoes v ^= (v << shift) & mask. A left shift
// only mixes lower bits into higher positions, so recovery runs from
// the least significant chunk up, with the tempering mask applied to
// the shifted contribution before xoring.
func invertLeftShiftXorAnd(v uint32, shift uint, mask uint32) uint32 {
	var x uint32
	for i := uint(0); i < 32; i += shift {
		width := shift
		if i+width > 32 {
			width = 32 - i
		}
		chunk := (uint32(1)<<width - 1) << i
		x |= (v ^ ((x << shift) & mask)) & chunk
	}
	return x
}
