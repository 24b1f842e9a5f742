package mt

import (
	"math/rand"
	"testing"
)

func TestTemperUntemperBijection(t *testing.T) {
	t.Parallel()

	words := []uint32{
		0,
		1,
		0x7fffffff,
		0x80000000,
		0xffffffff,
		coefficient,
		temperMask1,
		temperMask2,
		0x55555555,
		0xaaaaaaaa,
	}
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1_000_000; i++ {
		words = append(words, rnd.Uint32())
	}

	for _, w := range words {
		if got := Untemper(Temper(w)); got != w {
			t.Fatalf("untemper(temper(x)) mismatch: x=%#08x got=%#08x", w, got)
		}
		if got := Temper(Untemper(w)); got != w {
			t.Fatalf("temper(untemper(y)) mismatch: y=%#08x got=%#08x", w, got)
		}
	}
}

func TestTemperZero(t *testing.T) {
	t.Parallel()

	if got := Temper(0); got != 0 {
		t.Errorf("unexpected temper(0): got=%d want=0", got)
	}
	if got := Untemper(0); got != 0 {
		t.Errorf("unexpected untemper(0): got=%d want=0", got)
	}
}

func TestInvertRightShiftXor(t *testing.T) {
	t.Parallel()

	// 11 and 18 do not divide 32, exercising the narrow final chunk.
	for _, shift := range []uint{1, 7, 11, 15, 16, 18, 31} {
		shift := shift
		rnd := rand.New(rand.NewSource(int64(shift)))
		for i := 0; i < 10_000; i++ {
			x := rnd.Uint32()
			y := x ^ (x >> shift)
			if got := invertRightShiftXor(y, shift); got != x {
				t.Fatalf("shift=%d: got=%#08x want=%#08x", shift, got, x)
			}
		}
	}
}

func TestInvertLeftShiftXorAnd(t *testing.T) {
	t.Parallel()

	masks := []uint32{temperMask1, temperMask2, 0xffffffff, 0}
	for _, shift := range []uint{1, 7, 11, 15, 16, 18, 31} {
		for _, mask := range masks {
			rnd := rand.New(rand.NewSource(int64(shift)))
			for i := 0; i < 10_000; i++ {
				x := rnd.Uint32()
				y := x ^ ((x << shift) & mask)
				if got := invertLeftShiftXorAnd(y, shift, mask); got != x {
					t.Fatalf("shift=%d mask=%#08x: got=%#08x want=%#08x", shift, mask, got, x)
				}
			}
		}
	}
}

func BenchmarkTemper(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Temper(uint32(i))
	}
}

func BenchmarkUntemper(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Untemper(uint32(i))
	}
}
