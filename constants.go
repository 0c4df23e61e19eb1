package coro

// Compile-time defaults, overridable per-Scheduler via Config.
const (
	// DefaultSharedStackSize caps the captured diagnostic snapshot taken
	// at each yield (see coroutine.LastSnapshot). It has no bearing on
	// whether a coroutine can actually keep running: a trace that would
	// exceed this is silently truncated, not treated as an error.
	DefaultSharedStackSize = 1 << 20 // 1 MiB

	// DefaultTableCapacity is the initial size of a Scheduler's coroutine
	// table. It doubles on demand (see grow in table.go).
	DefaultTableCapacity = 16
)

// NoCoroutine is the sentinel returned by Scheduler.Running when no
// coroutine is currently RUNNING.
const NoCoroutine = -1
