package coro

import (
	"runtime"

	"github.com/behrlich/gocoro/internal/machctx"
)

// Func is the signature of a coroutine's entry function: it receives the
// scheduler it was spawned on (so it can call Yield) and the opaque user
// data passed to New. The runtime never dereferences ud.
type Func func(s *Scheduler, ud any)

// coroutine is the per-task record: user function, user data, status,
// owned snapshot buffer, its capacity and current length, and a
// non-owning back-reference to the owning scheduler.
type coroutine struct {
	id     int
	fn     Func
	ud     any
	status Status
	sch    *Scheduler // back-reference; sch owns coroutine, not vice versa
	ctx    *machctx.Context

	// snapshot, snapshotCap, and snapshotSize hold a diagnostic stack
	// trace captured at each yield; see LastSnapshot for what they
	// actually hold and why. snapshotCap grows monotonically and is
	// never shrunk.
	snapshot     []byte
	snapshotCap  int
	snapshotSize int
}

// newCoroutine builds a READY record for fn/ud, wiring its Context so that
// the first resume installs fn on a parked goroutine and every yield inside
// fn routes through Yield(s) in yield.go.
func newCoroutine(s *Scheduler, id int, fn Func, ud any) *coroutine {
	c := &coroutine{
		id:     id,
		fn:     fn,
		ud:     ud,
		status: StatusReady,
		sch:    s,
	}
	c.ctx = machctx.Spawn(func() {
		c.fn(s, c.ud)
	})
	return c
}

// captureSnapshot records a real, point-in-time stack trace of this
// coroutine's own goroutine into the snapshot buffer, growing capacity
// monotonically. Called from Yield, immediately before control is handed
// back to the resumer.
//
// This is a diagnostic artifact, not the resume mechanism — the actual
// execution state lives in c.ctx's parked goroutine, which unwinds
// correctly regardless of how deep the real call stack is. So growth
// here stops at maxSnapshotCap and silently keeps whatever runtime.Stack
// managed to fit rather than treating a truncated dump as a fatal
// condition: runtime.Stack truncating on a too-small buffer is its
// documented behavior, not resource exhaustion, and the text rendering
// of a deep stack (function name, full file path, line, and hex offset
// per frame) is far larger per frame than the frame itself, so capping
// it must not be conflated with the coroutine actually overflowing
// anything.
func (c *coroutine) captureSnapshot() {
	buf := c.snapshot
	max := maxSnapshotCap(c.sch)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) || len(buf) >= max {
			if n > len(buf) {
				n = len(buf)
			}
			c.snapshotSize = n
			return
		}
		// Buffer was fully consumed; it may be truncated. Grow and retry,
		// never shrinking c.snapshotCap, but never past max either.
		newCap := c.snapshotCap * 2
		if newCap == 0 {
			newCap = 4096
		}
		if newCap > max {
			newCap = max
		}
		buf = make([]byte, newCap)
		c.snapshotCap = newCap
		c.snapshot = buf
	}
}

// maxSnapshotCap bounds how large a diagnostic stack-trace dump is
// allowed to grow. It is unrelated to whether the coroutine itself can
// keep running: a coroutine whose real call stack is far deeper than
// this still resumes correctly, it just stops getting a complete
// LastSnapshot dump.
func maxSnapshotCap(s *Scheduler) int {
	if s.cfg.SharedStackSize > 0 {
		return s.cfg.SharedStackSize
	}
	return DefaultSharedStackSize
}

// LastSnapshot returns the most recently captured diagnostic stack trace
// for this coroutine (valid while SUSPEND; empty while READY, RUNNING, or
// DEAD). It is a debugging aid, not the resume mechanism.
func (c *coroutine) LastSnapshot() []byte {
	return c.snapshot[:c.snapshotSize]
}
