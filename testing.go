package coro

// This file exports small test-support helpers for callers writing their
// own tests against the package's public API, not just this package's
// own internal _test.go files.

// CountingFunc returns a Func that increments *n every time it runs and
// yields exactly once before returning, regardless of ud. It is useful
// for asserting how many times a coroutine's body actually executed
// across repeated Resume calls.
func CountingFunc(n *int) Func {
	return func(s *Scheduler, ud any) {
		*n++
		Yield(s)
		*n++
	}
}

// RecordingFunc returns a Func that appends to *trace at each of the two
// points a single-yield coroutine passes through: label+"-start" before
// yielding and label+"-end" after resuming. Used to assert interleaving order
// across multiple coroutines sharing one Scheduler.
func RecordingFunc(trace *[]string, label string) Func {
	return func(s *Scheduler, ud any) {
		*trace = append(*trace, label+"-start")
		Yield(s)
		*trace = append(*trace, label+"-end")
	}
}
