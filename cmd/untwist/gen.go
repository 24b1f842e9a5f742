package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/daystram/untwist/mt"
)

func gen(seed uint32, count int) error {
	log.Printf("============ gen: seed=%d count=%d\n", seed, count)

	s := mt.NewSource(seed)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < count; i++ {
		if _, err := fmt.Fprintln(w, s.Uint32()); err != nil {
			return err
		}
	}
	return nil
}
