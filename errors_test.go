package coro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessageFormatting(t *testing.T) {
	e := newError("Resume", 3, ErrCodeInvariantViolation, "boom")
	assert.Equal(t, "coro: boom (op=Resume id=3)", e.Error())

	e2 := newError("New", NoCoroutine, ErrCodeResourceExhausted, "out of room")
	assert.Equal(t, "coro: out of room (op=New)", e2.Error())
}

func TestErrorIsMatchesByCode(t *testing.T) {
	e1 := newError("Resume", 1, ErrCodeInvariantViolation, "a")
	e2 := newError("Yield", 2, ErrCodeInvariantViolation, "b")
	e3 := newError("New", NoCoroutine, ErrCodeResourceExhausted, "c")

	assert.True(t, errors.Is(e1, e2))
	assert.False(t, errors.Is(e1, e3))
}

func TestOnFatalHookObservesBeforePanic(t *testing.T) {
	var seen *Error
	s := Open(&Config{
		OnFatal: func(e *Error) { seen = e },
	})
	defer s.Close()

	assert.Panics(t, func() {
		Yield(s)
	})
	require.NotNil(t, seen)
	assert.Equal(t, ErrCodeInvariantViolation, seen.Code)
}

func TestOnOOMHookSuppressesPanic(t *testing.T) {
	var seen *Error
	s := Open(&Config{
		OnOOM: func(e *Error) { seen = e },
	})
	defer s.Close()

	assert.NotPanics(t, func() {
		s.exhausted("New", "simulated exhaustion")
	})
	require.NotNil(t, seen)
	assert.Equal(t, ErrCodeResourceExhausted, seen.Code)
}
