package coro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSingleCoroutineTwoYields drives a coroutine that emits three
// markers across two yields, via three resumes.
func TestSingleCoroutineTwoYields(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	var trace []string
	id := New(s, func(s *Scheduler, ud any) {
		trace = append(trace, "A")
		Yield(s)
		trace = append(trace, "B")
		Yield(s)
		trace = append(trace, "C")
	}, nil)

	Resume(s, id)
	require.Equal(t, StatusSuspend, StatusOf(s, id))
	assert.Equal(t, NoCoroutine, s.Running())

	Resume(s, id)
	require.Equal(t, StatusSuspend, StatusOf(s, id))

	Resume(s, id)
	require.Equal(t, StatusDead, StatusOf(s, id))

	assert.Equal(t, []string{"A", "B", "C"}, trace)
}

// TestTwoCoroutinesInterleaved resumes two coroutines in alternation and
// checks their emitted markers land in strict P,Q,P,Q,P,Q order.
func TestTwoCoroutinesInterleaved(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	var trace []string
	body := func(label string) Func {
		return func(s *Scheduler, ud any) {
			trace = append(trace, label+"1")
			Yield(s)
			trace = append(trace, label+"2")
			Yield(s)
			trace = append(trace, label+"3")
		}
	}

	p := New(s, body("P"), nil)
	q := New(s, body("Q"), nil)

	for i := 0; i < 3; i++ {
		Resume(s, p)
		Resume(s, q)
	}

	assert.Equal(t, []string{"P1", "Q1", "P2", "Q2", "P3", "Q3"}, trace)
	assert.Equal(t, StatusDead, StatusOf(s, p))
	assert.Equal(t, StatusDead, StatusOf(s, q))
	assert.Equal(t, 0, s.Count())
}

// TestLocalStatePreservation checks that a 1024-int array living in
// local state across a yield survives bitwise intact.
func TestLocalStatePreservation(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	ok := false
	id := New(s, func(s *Scheduler, ud any) {
		var arr [1024]int
		for i := range arr {
			arr[i] = i * i
		}
		Yield(s)
		for i := range arr {
			if arr[i] != i*i {
				return
			}
		}
		ok = true
	}, nil)

	Resume(s, id)
	Resume(s, id)

	assert.True(t, ok)
	assert.Equal(t, StatusDead, StatusOf(s, id))
}

// TestIdReuse checks that a dead coroutine's id is reused by the next spawn.
func TestIdReuse(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	a := New(s, func(s *Scheduler, ud any) {}, nil)
	Resume(s, a)
	require.Equal(t, StatusDead, StatusOf(s, a))

	b := New(s, func(s *Scheduler, ud any) {}, nil)
	assert.Equal(t, a, b)
}

// TestResumeOfDeadIdIsNoOp checks the silent no-op for resuming an id
// that never existed or already died.
func TestResumeOfDeadIdIsNoOp(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	assert.NotPanics(t, func() {
		Resume(s, 42)
	})
}

// TestResumeWhileRunningIsFatal covers the forbidden-nested-resume
// invariant.
func TestResumeWhileRunningIsFatal(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	var other int
	id := New(s, func(s *Scheduler, ud any) {
		other = New(s, func(s *Scheduler, ud any) {}, nil)
		Resume(s, other)
	}, nil)

	assert.Panics(t, func() {
		Resume(s, id)
	})
}

// TestGrowthScenario spawns past the initial table capacity and checks
// it grows without renumbering any previously assigned id.
func TestGrowthScenario(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	ids := make([]int, 0, 20)
	seen := make(map[int]bool, 20)
	for i := 0; i < 20; i++ {
		id := New(s, func(s *Scheduler, ud any) {
			Yield(s)
		}, nil)
		require.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
		ids = append(ids, id)
	}

	assert.GreaterOrEqual(t, len(s.table), 20)

	for _, id := range ids {
		Resume(s, id)
	}
	for _, id := range ids {
		Resume(s, id)
	}

	assert.Equal(t, 0, s.Count())
	for _, id := range ids {
		assert.Equal(t, StatusDead, StatusOf(s, id))
	}
}

// TestDeepStack recurses well past 64 KiB of live stack before yielding,
// then confirms it unwinds correctly on resume.
func TestDeepStack(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	var result int
	const depth = 20000 // far exceeds 64 KiB of frames on any real ABI

	var recurse func(n int) int
	recurse = func(n int) int {
		if n == 0 {
			Yield(s)
			return 0
		}
		return n + recurse(n-1)
	}

	id := New(s, func(s *Scheduler, ud any) {
		result = recurse(depth)
	}, nil)

	Resume(s, id)
	Resume(s, id)

	assert.Equal(t, depth*(depth+1)/2, result)
	assert.Equal(t, StatusDead, StatusOf(s, id))
}
