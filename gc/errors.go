package gc

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is returned when an operation names an address that is
// not a live key in the object registry where one is required (an endpoint
// in AddEdge, a parent or new child in SwapEdge, a parent in DelEdge or
// AllocWithParent, or an address passed to IsRoot).
var ErrNotRegistered = errors.New("gc: address not registered")

// ErrAllocFailed is returned when the underlying byte-buffer allocator
// reports failure. No registration occurs when this error is returned.
var ErrAllocFailed = errors.New("gc: allocation failed")

// ErrFinalizerPanic is returned (wrapping the recovered panic value) when a
// finalizer panics during Collect, StepMark's transition to sweep, or
// FinishIncrementalMark. The cycle aborts; the object whose finalizer
// panicked is left registered and still colored, to be swept on the next
// successful cycle.
var ErrFinalizerPanic = errors.New("gc: finalizer panicked")

func fmtNotRegistered(who string, addr Addr) error {
	return fmt.Errorf("%s: %w: %v", who, ErrNotRegistered, addr)
}

func fmtAllocFailed(who string, err error) error {
	return fmt.Errorf("%s: %w: %v", who, ErrAllocFailed, err)
}

func fmtFinalizerPanic(addr Addr, recovered any) error {
	return fmt.Errorf("finalizer for %v: %w: %v", addr, ErrFinalizerPanic, recovered)
}

// ErrBackgroundPanic wraps a panic recovered from the background driver's
// tick loop (outside of any single finalizer call, e.g. in scan bookkeeping).
var ErrBackgroundPanic = errors.New("gc: background driver panicked")

func fmtBackgroundPanic(recovered any) error {
	return fmt.Errorf("background tick: %w: %v", ErrBackgroundPanic, recovered)
}
