// Package machctx implements the coroutine runtime's machine-context
// primitive: an opaque, resumable execution state plus the swap operation
// that transfers control between it and its caller.
//
// A real shared-stack coroutine library installs a user function onto a
// raw stack region and swaps the CPU's stack pointer and program counter
// between saved register sets. Go's goroutine stacks are GC-managed and
// relocatable, so that technique cannot be ported directly without
// leaving Go's memory safety model. This package gives the same external
// contract — install a function, then alternately swap control into and out
// of it — using a goroutine blocked on a channel receive as the "parked"
// execution state. Exactly one side of the rendezvous ever runs at a time,
// and a parked goroutine keeps its entire real call stack alive for free,
// so locals, recursion depth, and nested defers all survive a swap exactly.
//
// Every transition here is between the caller of SwapIn (the runtime's
// "main" context, which is never itself a goroutine Spawn started — it is
// just whichever goroutine is calling) and a single Context. There is
// never a direct Context-to-Context transition, matching the runtime's
// invariant that every control transfer passes through main.
package machctx

// Context is the resumable execution state of a single coroutine: a
// goroutine parked on a channel receive, plus the pair of channels used to
// hand control to and from it. A Context must not be copied after first use
// and must not be resumed from more than one caller at a time.
type Context struct {
	resume   chan struct{}
	pause    chan struct{}
	done     bool
	panicVal any
	panicked bool
}

// Spawn installs entry onto a freshly started goroutine and returns its
// Context. The goroutine blocks immediately, waiting for the first SwapIn;
// entry does not run until then. When entry returns, the Context is marked
// done and control is handed back through pause, exactly as if the running
// side had paused one last time.
//
// If entry panics without recovering, the panic is caught here and
// re-thrown on whichever goroutine is blocked in SwapIn, so a fatal
// condition detected deep inside a coroutine aborts the caller's resume
// call instead of crashing the whole process on this Context's own
// goroutine.
func Spawn(entry func()) *Context {
	c := &Context{
		resume: make(chan struct{}),
		pause:  make(chan struct{}),
	}
	go func() {
		<-c.resume
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.panicVal = r
					c.panicked = true
				}
			}()
			entry()
		}()
		c.done = true
		c.pause <- struct{}{}
	}()
	return c
}

// Pause hands control back to whichever goroutine last called SwapIn on
// this Context, then blocks until SwapIn is called again. It must only be
// called by the goroutine this Context owns (i.e. from inside entry, or
// from something entry calls).
func (c *Context) Pause() {
	c.pause <- struct{}{}
	<-c.resume
}

// SwapIn transfers control into c and blocks until c pauses or its entry
// function returns. It is called by main (never by another Context). If
// entry panicked since the last SwapIn, that panic is re-raised here.
func (c *Context) SwapIn() {
	c.resume <- struct{}{}
	<-c.pause
	if c.panicked {
		c.panicked = false
		panic(c.panicVal)
	}
}

// Done reports whether this Context's entry function has returned.
func (c *Context) Done() bool {
	return c.done
}
