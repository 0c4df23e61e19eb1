//go:build gocoro_asm

package machctx

import "unsafe"

// rawContext is a literal machine-context primitive: a saved stack
// pointer and program counter, naming a stack region installed once at
// launch. It is the opt-in, build-tag-gated alternative to the
// goroutine-based Context above — see doc.go.
//
// This backend is NOT wired into Scheduler and is NOT exercised by this
// module's test suite (see DESIGN.md). It runs the entry function on a
// raw memory region outside any goroutine's stack, which means entry must
// not do anything that depends on normal goroutine bookkeeping: no stack
// growth, no preemption points the Go scheduler expects to be able to act
// on, and no escape into code that assumes it is running on a G. It
// exists purely for fidelity to a literal register/stack-pointer swap
// primitive, kept behind a build tag alongside the always-safe default.
type rawContext struct {
	sp    uintptr
	stack []byte
}

// rawSwap is implemented in context_asm_amd64.s. It saves the callee-saved
// registers and stack pointer of the currently running context into from,
// then restores to's saved registers and stack pointer and returns into
// whatever address is on top of to's stack: the instruction immediately
// after the rawSwap call that last suspended it. A context fresh from
// newRawContext has no such frame to return into.
//
//go:noescape
func rawSwap(from, to *rawContext)

// launchPad calls entry(arg). Neither newRawContext nor rawSwap refers to
// it: no frame for it is pushed onto a new stack.
func launchPad(c *rawContext, entry func(unsafe.Pointer), arg unsafe.Pointer) {
	entry(arg)
}

// newRawContext allocates a stack region of size n and sets sp to its
// 16-byte-aligned high end. It writes no initial frame and does not store
// entry or arg, so a first rawSwap into the returned context does not
// invoke entry(arg).
func newRawContext(n int, entry func(unsafe.Pointer), arg unsafe.Pointer) *rawContext {
	stack := make([]byte, n)
	// Descending stack: the initial stack pointer starts at the high end.
	top := uintptr(unsafe.Pointer(&stack[len(stack)-1])) &^ 0xf
	return &rawContext{sp: top, stack: stack}
}
