package coro

import (
	"sync/atomic"
)

// Observer receives lifecycle events from a Scheduler as they happen. A
// Scheduler always has one (NoOpObserver by default) and calls it
// inline, so the cost of observing is one interface call, not a channel
// send or a lock beyond what Metrics itself takes.
type Observer interface {
	OnSpawn(id int)
	OnResume(id int)
	OnYield(id int)
	OnDeath(id int)
}

// NoOpObserver discards every event. It is the default Observer.
type NoOpObserver struct{}

func (NoOpObserver) OnSpawn(int)  {}
func (NoOpObserver) OnResume(int) {}
func (NoOpObserver) OnYield(int)  {}
func (NoOpObserver) OnDeath(int)  {}

// Metrics accumulates atomic counters for a Scheduler's lifetime. There
// is deliberately no latency histogram here: resume/yield calls are
// synchronous, unbuffered handoffs with no queueing delay worth
// histogramming.
type Metrics struct {
	spawns  atomic.Uint64
	resumes atomic.Uint64
	yields  atomic.Uint64
	deaths  atomic.Uint64
	obs     Observer
}

func newMetrics(obs Observer) *Metrics {
	return &Metrics{obs: obs}
}

func (m *Metrics) recordSpawn(id int) {
	m.spawns.Add(1)
	m.obs.OnSpawn(id)
}

func (m *Metrics) recordResume(id int) {
	m.resumes.Add(1)
	m.obs.OnResume(id)
}

func (m *Metrics) recordYield(id int) {
	m.yields.Add(1)
	m.obs.OnYield(id)
}

func (m *Metrics) recordDeath(id int) {
	m.deaths.Add(1)
	m.obs.OnDeath(id)
}

// MetricsSnapshot is a point-in-time copy of a Scheduler's counters.
type MetricsSnapshot struct {
	Spawns  uint64
	Resumes uint64
	Yields  uint64
	Deaths  uint64
}

// Snapshot returns the current counter values.
func (s *Scheduler) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Spawns:  s.metrics.spawns.Load(),
		Resumes: s.metrics.resumes.Load(),
		Yields:  s.metrics.yields.Load(),
		Deaths:  s.metrics.deaths.Load(),
	}
}
