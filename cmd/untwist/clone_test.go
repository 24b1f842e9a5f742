package main

import (
	"fmt"
	"testing"
)

func TestClone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seed   uint32
		skip   int
		verify int
	}{
		{seed: 5489, skip: 0, verify: 1248},
		{seed: 1, skip: 100, verify: 624},
		{seed: 19650218, skip: 623, verify: 624},
		{seed: 42, skip: 1000, verify: 2000},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("seed=%d skip=%d verify=%d", tt.seed, tt.skip, tt.verify), func(t *testing.T) {
			t.Parallel()

			if err := clone(tt.seed, tt.skip, tt.verify); err != nil {
				t.Fatal("unexpected error:", err)
			}
		})
	}
}
