package coro

// Yield suspends the currently running coroutine, capturing a diagnostic
// snapshot (coroutine.LastSnapshot) and handing control back to whatever
// called Resume for it, as if that Resume call had just returned. The
// next Resume(s, id) for this coroutine picks up immediately after this
// call, with every local variable and stack frame intact — the
// goroutine backing it is simply parked on a channel receive, not torn
// down.
//
// Calling Yield when no coroutine is running is a precondition
// violation: it is fatal, not a silent no-op, since it can only happen
// from a programming error (calling Yield from the main line of
// control, or from a goroutine the runtime did not spawn).
func Yield(s *Scheduler) {
	id := s.running
	if id == NoCoroutine {
		s.fatal("Yield", NoCoroutine, "yield called with no coroutine running")
	}
	c := s.table[id]
	if c == nil || c.status != StatusRunning {
		s.fatal("Yield", id, "yield called by a coroutine not in RUNNING state")
	}

	c.captureSnapshot()
	c.status = StatusSuspend
	s.metrics.recordYield(id)
	s.logger.Debug("coroutine yielded", "id", id)

	c.ctx.Pause()

	// Resume has set c.status back to StatusRunning before its SwapIn
	// let Pause return into this call, so there is nothing to restore
	// here; we simply return into the coroutine's own call stack.
}
