//go:build !linux

package coro

import "fmt"

// PinCurrentThread is unavailable outside Linux; CPU affinity is a
// Linux-specific syscall (unix.SchedSetaffinity) and there is no portable
// equivalent worth faking. Callers on other platforms should treat a
// non-nil error as "ran unpinned" and continue.
func PinCurrentThread(cpu int) error {
	return fmt.Errorf("coro: PinCurrentThread: not supported on this platform")
}
