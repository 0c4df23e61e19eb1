package coro

import "fmt"

// ErrorCode categorizes the fatal and resource-exhaustion error kinds this
// runtime can raise. Out-of-range-but-benign conditions (resuming a dead
// id) are deliberately not represented here: that is a silent no-op, not
// an error.
type ErrorCode string

const (
	// ErrCodeInvariantViolation covers every fatal precondition failure:
	// resume while another coroutine is running, resume dispatched
	// against an impossible status, yield called with no coroutine
	// running, and so on.
	ErrCodeInvariantViolation ErrorCode = "invariant violation"

	// ErrCodeResourceExhausted covers failure to grow the coroutine
	// table. Fatal by default; see
	// Config.OnOOM for the documented "more forgiving" extension.
	ErrCodeResourceExhausted ErrorCode = "resource exhausted"
)

// Error is the structured error value this runtime panics with for every
// fatal condition. Op names the operation that detected the violation;
// ID is the coroutine id involved, or NoCoroutine if none is applicable.
type Error struct {
	Op    string
	ID    int
	Code  ErrorCode
	Msg   string
	Inner error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.ID != NoCoroutine {
		return fmt.Sprintf("coro: %s (op=%s id=%d)", e.Msg, e.Op, e.ID)
	}
	return fmt.Sprintf("coro: %s (op=%s)", e.Msg, e.Op)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == te.Code
}

// newError constructs an *Error for id (or NoCoroutine when not
// applicable).
func newError(op string, id int, code ErrorCode, msg string) *Error {
	return &Error{Op: op, ID: id, Code: code, Msg: msg}
}

// fatal panics with a structured invariant-violation Error, first routing
// it through the scheduler's logger and OnFatal hook (if set): these are
// programmer bugs, not recoverable conditions, and the runtime aborts
// rather than attempting to continue.
func (s *Scheduler) fatal(op string, id int, msg string) {
	err := newError(op, id, ErrCodeInvariantViolation, msg)
	s.logger.Error(msg, "op", op, "id", id)
	if s.cfg.OnFatal != nil {
		s.cfg.OnFatal(err)
	}
	panic(err)
}

// exhausted panics with (or, if Config.OnOOM is set, surfaces) a
// resource-exhaustion Error.
func (s *Scheduler) exhausted(op string, msg string) {
	err := newError(op, NoCoroutine, ErrCodeResourceExhausted, msg)
	s.logger.Error(msg, "op", op)
	if s.cfg.OnOOM != nil {
		s.cfg.OnOOM(err)
		return
	}
	panic(err)
}
