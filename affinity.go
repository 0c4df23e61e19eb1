//go:build linux

package coro

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// PinCurrentThread locks the calling goroutine to its current OS thread
// and restricts that thread to the given CPU. A single-threaded
// cooperative scheduler gains nothing from being migrated between cores
// mid-run, and pinning avoids cross-core cache traffic for the resume/
// yield rendezvous channels in internal/machctx.
//
// PinCurrentThread must be called from the goroutine that will run the
// scheduler's main loop (the one calling Resume), before any coroutine
// is spawned.
func PinCurrentThread(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("coro: PinCurrentThread: negative cpu %d", cpu)
	}
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("coro: PinCurrentThread: SchedSetaffinity(%d): %w", cpu, err)
	}
	return nil
}
