package coro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDefaults(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	assert.Equal(t, NoCoroutine, s.Running())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, DefaultTableCapacity, len(s.table))
}

func TestSpawnInvariants(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	id := New(s, func(s *Scheduler, ud any) {}, nil)

	require.Equal(t, StatusReady, StatusOf(s, id))
	assert.Equal(t, NoCoroutine, s.Running())
	assert.Equal(t, 1, s.Count())
}

func TestNeverSpawnedIdIsDead(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	assert.Equal(t, StatusDead, StatusOf(s, 0))
	assert.Equal(t, StatusDead, StatusOf(s, 999))
	assert.Equal(t, StatusDead, StatusOf(s, -1))
}

func TestNewRejectsNilFunc(t *testing.T) {
	s := Open(nil)
	defer s.Close()

	assert.Panics(t, func() {
		New(s, nil, nil)
	})
}
