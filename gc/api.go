package gc

import "time"

// The functions below are the package-level counterpart of spec.md §6's
// C-compatible procedural surface, each operating on Default() — the
// process-wide Collector instance. See Default for why that singleton is
// still a constructible, reachable value rather than ad-hoc static state.

// Alloc mirrors the external interface's alloc(size).
func Alloc(size uintptr) (Addr, error) { return Default().Alloc(size) }

// AllocManage mirrors alloc_manage(size, finalizer).
func AllocManage(size uintptr, fin Finalizer) (Addr, error) {
	return Default().AllocManage(size, fin)
}

// AllocRoot mirrors alloc_root(size).
func AllocRoot(size uintptr) (Addr, error) { return Default().AllocRoot(size) }

// AllocRootManage mirrors alloc_root_manage(size, finalizer).
func AllocRootManage(size uintptr, fin Finalizer) (Addr, error) {
	return Default().AllocRootManage(size, fin)
}

// AllocWithParent mirrors alloc_with_parent(size, parent).
func AllocWithParent(size uintptr, parent Addr) (Addr, error) {
	return Default().AllocWithParent(size, parent)
}

// AllocWithParentManage mirrors alloc_with_parent_manage(size, parent, fn).
func AllocWithParentManage(size uintptr, parent Addr, fin Finalizer) (Addr, error) {
	return Default().AllocWithParentManage(size, parent, fin)
}

// AddEdge mirrors add_edge(parent, child).
func AddEdge(parent, child Addr) error { return Default().AddEdge(parent, child) }

// DelEdge mirrors del_edge(parent, child).
func DelEdge(parent, child Addr) error { return Default().DelEdge(parent, child) }

// SwapEdge mirrors swap_edge(parent, old_child, new_child).
func SwapEdge(parent, oldChild, newChild Addr) error {
	return Default().SwapEdge(parent, oldChild, newChild)
}

// AddRoot mirrors add_root(ptr).
func AddRoot(addr Addr) { Default().AddRoot(addr) }

// DeleteRoot mirrors delete_root(ptr).
func DeleteRoot(addr Addr) { Default().DeleteRoot(addr) }

// BlockCollect mirrors block_collect().
func BlockCollect() { Default().BlockCollect() }

// UnlockCollect mirrors unlock_collect().
func UnlockCollect() { Default().UnlockCollect() }

// Collect mirrors collect().
func Collect() error { return Default().Collect() }

// StartIncrementalMark mirrors start_incremental_mark().
func StartIncrementalMark() { Default().StartIncrementalMark() }

// StepMark mirrors step_mark().
func StepMark() error { return Default().StepMark() }

// IsMarking mirrors is_marking().
func IsMarking() bool { return Default().IsMarking() }

// FinishIncrementalMark mirrors finish_incremental_mark().
func FinishIncrementalMark() error { return Default().FinishIncrementalMark() }

// StartBackground mirrors start_background(steps, interval_ms).
func StartBackground(stepsPerTick int, interval time.Duration) {
	Default().StartBackground(stepsPerTick, interval)
}

// StopBackground mirrors stop_background().
func StopBackground() error { return Default().StopBackground() }

// IsBackgroundRunning mirrors is_background_collector_running().
func IsBackgroundRunning() bool { return Default().IsBackgroundRunning() }

// Count mirrors the registry's observational count() operation.
func Count() int { return Default().Count() }
