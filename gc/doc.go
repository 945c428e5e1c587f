// Package gc implements a concurrent tracing garbage collector for
// manually allocated, explicitly connected heap objects.
//
// A host program asks the collector for memory (Alloc/AllocManage/
// AllocRoot/AllocWithParent), declares which addresses are roots, and
// declares directed edges between addresses it has already registered.
// Periodically — synchronously via Collect, incrementally via
// StartIncrementalMark/StepMark/FinishIncrementalMark, or on a background
// goroutine via StartBackground — the collector traces the object graph
// from the root set and reclaims everything it did not reach, invoking
// each reclaimed object's finalizer exactly once before releasing its
// buffer.
//
// The collector is exact: it relies entirely on the client's edge
// declarations and never scans memory looking for pointer-shaped bytes.
// It does not compact or relocate objects, and it does not implement
// generations — a single flat registry holds every live address. A single
// process-wide collector is assumed; see Default.
package gc
