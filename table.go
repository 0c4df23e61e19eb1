package coro

// New spawns a coroutine running fn(s, ud) and returns its id. The
// returned coroutine starts READY: it does not run until the caller
// passes its id to Resume.
//
// Slot selection scans the table starting at offset count, wrapping, for
// the first empty slot. This spreads reuse and biases toward the lowest
// free id after compaction; which free slot is taken depends on its
// position relative to count, not on when its coroutine died. When
// count == capacity, the table doubles first;
// the scan then starts at the old capacity index, which the freshly
// zero-initialized half guarantees is empty, so growth and reuse share
// one scan instead of needing separate placement logic.
func New(s *Scheduler, fn Func, ud any) int {
	if fn == nil {
		s.fatal("New", NoCoroutine, "fn must not be nil")
	}

	if s.count == len(s.table) {
		s.grow()
		if s.count == len(s.table) {
			// Growth failed and Config.OnOOM absorbed the error.
			return NoCoroutine
		}
	}

	id := s.findFreeSlot()
	c := newCoroutine(s, id, fn, ud)
	s.table[id] = c
	s.count++

	s.metrics.recordSpawn(id)
	s.logger.Debug("coroutine spawned", "id", id)
	return id
}

// findFreeSlot scans the table starting at offset s.count, wrapping once,
// for a nil slot. The caller must already have ensured s.count <
// len(s.table).
func (s *Scheduler) findFreeSlot() int {
	n := len(s.table)
	for i := 0; i < n; i++ {
		idx := (s.count + i) % n
		if s.table[idx] == nil {
			return idx
		}
	}
	// Unreachable given the s.count < len(s.table) precondition the only
	// caller maintains; treated as an invariant violation rather than
	// silently returning an invalid index.
	s.fatal("New", NoCoroutine, "coroutine table has no free slot despite count < capacity")
	return NoCoroutine
}

// grow doubles the table's capacity. A real allocation failure is not
// detected here, since Go's make panics on its own. Scheduler.exhausted
// is called when doubling does not increase the capacity: when it would
// overflow int, or when the table is empty (as it is after Close).
func (s *Scheduler) grow() {
	old := len(s.table)
	newCap := old * 2
	if newCap <= old {
		s.exhausted("New", "coroutine table capacity overflow")
		return
	}
	grown := make([]*coroutine, newCap)
	copy(grown, s.table)
	s.table = grown
	s.logger.Debug("coroutine table grown", "from", old, "to", newCap)
}

// StatusOf returns the lifecycle state of id. An id outside the table, or
// one whose slot is nil, reports StatusDead: DEAD is inferred from an
// empty slot, not stored as a distinct state.
func StatusOf(s *Scheduler, id int) Status {
	if id < 0 || id >= len(s.table) || s.table[id] == nil {
		return StatusDead
	}
	return s.table[id].status
}

// reap clears id's slot, marking it DEAD and available for reuse by a
// future New.
func (s *Scheduler) reap(id int) {
	s.table[id] = nil
	s.count--
	s.metrics.recordDeath(id)
	s.logger.Debug("coroutine died", "id", id)
}
