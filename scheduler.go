// Package coro implements a single-threaded, cooperative coroutine
// runtime: a fixed-identity table of user tasks that are explicitly
// resumed and that explicitly yield back to their resumer, never
// preempted. See DESIGN.md for the ledger of what each file is modeled
// on.
package coro

import (
	"github.com/behrlich/gocoro/internal/logging"
)

// Config configures a Scheduler. A zero Config is valid; every field has
// a documented default.
type Config struct {
	// SharedStackSize bounds the diagnostic snapshot captured per yield
	// (see coroutine.LastSnapshot). Zero means DefaultSharedStackSize.
	SharedStackSize int

	// TableCapacity is the coroutine table's initial capacity. Zero means
	// DefaultTableCapacity.
	TableCapacity int

	// Logger receives structured lifecycle and error logging. Nil means
	// logging.Default().
	Logger *logging.Logger

	// Observer receives lifecycle metrics events (spawn, resume, yield,
	// death). Nil means a NoOpObserver.
	Observer Observer

	// OnFatal, if set, is invoked with every invariant-violation Error
	// before the runtime panics with it. It cannot prevent the panic; it
	// exists for diagnostics (logging a core dump, incrementing an alert
	// counter) rather than only panicking.
	OnFatal func(*Error)

	// OnOOM, if set, is invoked instead of panicking when the coroutine
	// table cannot grow. The call returning does not retry the
	// allocation; the triggering New still fails and returns NoCoroutine.
	// This is a more forgiving mode than the default panic. Snapshot
	// buffers never reach OnOOM: a diagnostic snapshot that would exceed
	// SharedStackSize is truncated silently.
	OnOOM func(*Error)
}

// Scheduler owns a coroutine table and the single thread of control that
// moves through it. It is not safe for concurrent use from multiple
// goroutines: this is a single-threaded cooperative model with exactly
// one logical caller at a time.
type Scheduler struct {
	cfg     Config
	logger  *logging.Logger
	metrics *Metrics

	table   []*coroutine // sparse; nil slot means DEAD/never spawned
	count   int          // number of non-nil slots
	running int          // id of the RUNNING coroutine, or NoCoroutine
}

// Open constructs a Scheduler from cfg. A nil cfg is equivalent to
// &Config{}. Open never fails: resource exhaustion is reported lazily,
// from New, on first allocation attempt.
func Open(cfg *Config) *Scheduler {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.SharedStackSize <= 0 {
		c.SharedStackSize = DefaultSharedStackSize
	}
	if c.TableCapacity <= 0 {
		c.TableCapacity = DefaultTableCapacity
	}
	logger := c.Logger
	if logger == nil {
		logger = logging.Default()
	}
	obs := c.Observer
	if obs == nil {
		obs = NoOpObserver{}
	}

	s := &Scheduler{
		cfg:     c,
		logger:  logger,
		metrics: newMetrics(obs),
		table:   make([]*coroutine, c.TableCapacity),
		running: NoCoroutine,
	}
	s.logger.Debug("scheduler opened", "capacity", c.TableCapacity)
	return s
}

// Close releases the scheduler. Any coroutine still READY or SUSPEND is
// abandoned without running its remaining frames; parked goroutines
// backing those coroutines are leaked the same way an unresumed
// generator or unjoined goroutine always is in Go, since nothing can
// safely force them to unwind. Close is idempotent.
func (s *Scheduler) Close() {
	s.logger.Debug("scheduler closed", "count", s.count)
	s.table = nil
	s.count = 0
	s.running = NoCoroutine
}

// Count returns the number of live (non-DEAD) coroutines.
func (s *Scheduler) Count() int {
	return s.count
}

// Running returns the id of the currently RUNNING coroutine, or
// NoCoroutine if the scheduler itself holds control.
func (s *Scheduler) Running() int {
	return s.running
}
