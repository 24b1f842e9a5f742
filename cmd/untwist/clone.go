package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/untwist/mt"
	"github.com/daystram/untwist/predictor"
)

func clone(seed uint32, skip, verify int) error {
	if seed == 0 {
		seed = uint32(time.Now().Unix())
	}
	log.Printf("============ clone: seed=%d skip=%d verify=%d\n", seed, skip, verify)

	target := mt.NewSource(seed)
	for i := 0; i < skip; i++ {
		_ = target.Uint32()
	}

	// Two observations per round, the shape a service leaking a pair of
	// values per interaction would produce.
	var c predictor.Collector
	start := time.Now()
	for !c.Ready() {
		c.Record(target.Uint32(), target.Uint32())
	}
	collected := time.Since(start)

	start = time.Now()
	p, err := c.Recover()
	if err != nil {
		return err
	}
	recovered := time.Since(start)

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	sample := max(verify/8, 1)
	width := len(fmt.Sprint(verify))
	mismatches := 0
	start = time.Now()
	for i := 0; i < verify; i++ {
		want := target.Uint32()
		got := p.Next()
		ok := got == want
		if !ok {
			mismatches++
		}
		if i%sample == 0 || !ok {
			verdict := green("ok")
			if !ok {
				verdict = red("mismatch")
			}
			fmt.Printf("prediction %*d: got=%-10d want=%-10d %s\n", width, i, got, want, verdict)
		}
	}
	elapsed := time.Since(start)

	printer := message.NewPrinter(language.English)
	log.Println(printer.Sprintf("observed=%d collect=%s recover=%s", c.Len(), collected, recovered))
	log.Println(printer.Sprintf("verified=%d rate=%dp/s (%.3fs elapsed)",
		verify, int(float64(verify)/max(elapsed.Seconds(), 1e-9)), elapsed.Seconds()))

	if mismatches != 0 {
		return fmt.Errorf("clone diverged from target: %d/%d mismatched predictions", mismatches, verify)
	}
	log.Println(green("clone matches target"))
	return nil
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}
