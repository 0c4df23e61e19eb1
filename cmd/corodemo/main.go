package main

import (
	"flag"
	"fmt"
	"os"

	coro "github.com/behrlich/gocoro"
	"github.com/behrlich/gocoro/internal/logging"
)

func main() {
	var verbose = flag.Bool("v", false, "verbose output")
	flag.Parse()

	logConfig := logging.DefaultConfig()
	if *verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)

	s := coro.Open(&coro.Config{Logger: logger})
	defer s.Close()

	body := func(label string) coro.Func {
		return func(s *coro.Scheduler, ud any) {
			fmt.Printf("%s1\n", label)
			coro.Yield(s)
			fmt.Printf("%s2\n", label)
			coro.Yield(s)
			fmt.Printf("%s3\n", label)
		}
	}

	p := coro.New(s, body("P"), nil)
	q := coro.New(s, body("Q"), nil)

	for i := 0; i < 3; i++ {
		coro.Resume(s, p)
		coro.Resume(s, q)
	}

	snap := s.Snapshot()
	fmt.Printf("spawns=%d resumes=%d yields=%d deaths=%d\n",
		snap.Spawns, snap.Resumes, snap.Yields, snap.Deaths)

	if s.Count() != 0 {
		fmt.Fprintln(os.Stderr, "expected all coroutines dead")
		os.Exit(1)
	}
}
