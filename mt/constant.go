package mt

const (
	// StateSize is the number of 32-bit words in the recurrence array.
	StateSize = 624

	offset      = 397
	multiplier  = 1812433253
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	coefficient = 0x9908b0df

	temperShiftU = 11
	temperShiftS = 7
	temperShiftT = 15
	temperShiftL = 18
	temperMask1  = 0x9d2c5680
	temperMask2  = 0xefc60000
)
