package gc

// Alloc registers a new size-byte object with the default (no-op)
// finalizer and returns its address. Spec.md §4.1.
func (c *Collector) Alloc(size uintptr) (Addr, error) {
	return c.allocInternal(size, nil, false, 0)
}

// AllocManage registers a new size-byte object with the given finalizer.
func (c *Collector) AllocManage(size uintptr, fin Finalizer) (Addr, error) {
	return c.allocInternal(size, fin, false, 0)
}

// AllocRoot registers a new object and atomically adds it to the root set.
func (c *Collector) AllocRoot(size uintptr) (Addr, error) {
	return c.allocAsRoot(size, nil)
}

// AllocRootManage registers a new object with a finalizer and atomically
// adds it to the root set.
func (c *Collector) AllocRootManage(size uintptr, fin Finalizer) (Addr, error) {
	return c.allocAsRoot(size, fin)
}

// AllocWithParent registers a new object and atomically inserts an edge
// parent -> new. It fails with ErrNotRegistered if parent is not a live
// registration, and no allocation occurs in that case.
func (c *Collector) AllocWithParent(size uintptr, parent Addr) (Addr, error) {
	return c.allocWithParent(size, parent, nil)
}

// AllocWithParentManage is AllocWithParent with an explicit finalizer.
func (c *Collector) AllocWithParentManage(size uintptr, parent Addr, fin Finalizer) (Addr, error) {
	return c.allocWithParent(size, parent, fin)
}

func (c *Collector) allocInternal(size uintptr, fin Finalizer, asRoot bool, _ Addr) (Addr, error) {
	if asRoot {
		// Hold the cycle lock so no mark-start or sweep runs between
		// registration and rooting.
		c.cycleMu.Lock()
		defer c.cycleMu.Unlock()
	}
	buf, err := c.cfg.Allocator.Alloc(size)
	if err != nil {
		return 0, fmtAllocFailed("gc.Alloc", err)
	}
	addr := addrOf(buf)
	obj := newObject(addr, size, buf, fin)

	c.regMu.Lock()
	c.objects[addr] = obj
	c.regMu.Unlock()

	if asRoot {
		c.rootsMu.Lock()
		c.roots[addr] = struct{}{}
		c.rootsMu.Unlock()
	}
	return addr, nil
}

func (c *Collector) allocAsRoot(size uintptr, fin Finalizer) (Addr, error) {
	return c.allocInternal(size, fin, true, 0)
}

func (c *Collector) allocWithParent(size uintptr, parent Addr, fin Finalizer) (Addr, error) {
	// Validate the parent before allocating: on failure, no registration
	// may occur (spec.md §4.1 constraints, §7 error policy). The cycle lock
	// is held throughout so no mark-start or sweep runs between validating
	// the parent, registering the new object, and inserting the edge.
	c.cycleMu.Lock()
	defer c.cycleMu.Unlock()
	c.regMu.RLock()
	parentObj, ok := c.objects[parent]
	c.regMu.RUnlock()
	if !ok {
		return 0, fmtNotRegistered("gc.AllocWithParent", parent)
	}

	buf, err := c.cfg.Allocator.Alloc(size)
	if err != nil {
		return 0, fmtAllocFailed("gc.AllocWithParent", err)
	}
	addr := addrOf(buf)
	obj := newObject(addr, size, buf, fin)

	c.regMu.Lock()
	c.objects[addr] = obj
	c.regMu.Unlock()

	c.insertEdge(parentObj, obj)
	return addr, nil
}

// lookup returns the object for addr, or nil if it is not registered.
// Callers hold no lock; lookup takes and releases the registry's read lock.
func (c *Collector) lookup(addr Addr) *object {
	c.regMu.RLock()
	defer c.regMu.RUnlock()
	return c.objects[addr]
}

// lookupLocked is lookup for a caller that already holds regMu (in
// either read or write mode) — currently only Collect, which holds it
// exclusively across the whole cycle and would deadlock calling lookup.
func (c *Collector) lookupLocked(addr Addr) *object {
	return c.objects[addr]
}
