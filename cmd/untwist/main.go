package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	genRun   = flag.Bool("gen", false, "run generate mode")
	genSeed  = flag.Uint("gen.seed", 5489, "generator seed in generate mode")
	genCount = flag.Int("gen.count", 1248, "number of outputs in generate mode")

	cloneRun    = flag.Bool("clone", false, "run clone mode")
	cloneSeed   = flag.Uint("clone.seed", 0, "target generator seed in clone mode, 0 seeds from current time")
	cloneSkip   = flag.Int("clone.skip", 0, "target outputs drawn before observation starts in clone mode")
	cloneVerify = flag.Int("clone.verify", 1248, "predictions verified against the target in clone mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain() error {
	if *genRun {
		return gen(uint32(*genSeed), *genCount)
	}
	if *cloneRun {
		return clone(uint32(*cloneSeed), *cloneSkip, *cloneVerify)
	}

	return clone(uint32(*cloneSeed), *cloneSkip, *cloneVerify)
}
