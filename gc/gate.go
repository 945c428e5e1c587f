package gc

// BlockCollect acquires the collection gate, bracketing a region in which
// the caller performs bulk structural changes (a bulk load, a rewire of
// many edges) without a collection cycle starting underneath it. Collect
// and the start of a new incremental cycle both acquire the same gate and
// so block until UnlockCollect is called; an incremental cycle already in
// progress is allowed to finish its current step, per spec.md §4.8 — only
// the *start* of a new cycle is deferred. Calls must be paired with
// UnlockCollect; the gate is an exclusive lock, not a counting semaphore.
func (c *Collector) BlockCollect() {
	c.gateMu.Lock()
	c.logGateBlocked()
}

// UnlockCollect releases the collection gate acquired by BlockCollect.
func (c *Collector) UnlockCollect() {
	c.logGateUnblocked()
	c.gateMu.Unlock()
}
