package gc

// AddEdge inserts child into parent's out-edge set (spec.md §4.3). A
// duplicate add_edge(parent, child) is a no-op, matching the at-most-one
// multiplicity the data model specifies. Fails with ErrNotRegistered if
// either address is not registered.
func (c *Collector) AddEdge(parent, child Addr) error {
	p := c.lookup(parent)
	if p == nil {
		return fmtNotRegistered("gc.AddEdge", parent)
	}
	ch := c.lookup(child)
	if ch == nil {
		return fmtNotRegistered("gc.AddEdge", child)
	}
	c.insertEdge(p, ch)
	return nil
}

// insertEdge performs the actual edge insertion plus the write-barrier
// check, given already-resolved object pointers. Used by AddEdge and by
// AllocWithParent/AllocWithParentManage.
func (c *Collector) insertEdge(parent, child *object) {
	parent.mu.Lock()
	_, existed := parent.edges[child.addr]
	if !existed {
		parent.edges[child.addr] = struct{}{}
	}
	parentColor := parent.color
	parent.mu.Unlock()

	if existed {
		return
	}
	c.barrierOnNewEdge(parentColor, child)
}

// DelEdge removes one logical occurrence of child from parent's out-edge
// set. No barrier action is taken: removing an edge can only make an
// object less reachable, which is safe to discover on the next cycle — the
// accepted cost is that an object may float as garbage for one extra cycle
// (spec.md §4.3, §9). Fails with ErrNotRegistered if parent is not
// registered; removing an edge to an already-unregistered or never-present
// child is a silent no-op.
func (c *Collector) DelEdge(parent, child Addr) error {
	p := c.lookup(parent)
	if p == nil {
		return fmtNotRegistered("gc.DelEdge", parent)
	}
	p.mu.Lock()
	delete(p.edges, child)
	p.mu.Unlock()
	return nil
}

// SwapEdge removes oldChild and inserts newChild on parent as a single
// logical step, so that the write barrier sees newChild's insertion and is
// not skipped the way two separate DelEdge+AddEdge calls might appear to a
// reader (spec.md §4.3). Fails with ErrNotRegistered if parent or newChild
// is not registered.
func (c *Collector) SwapEdge(parent, oldChild, newChild Addr) error {
	p := c.lookup(parent)
	if p == nil {
		return fmtNotRegistered("gc.SwapEdge", parent)
	}
	newObj := c.lookup(newChild)
	if newObj == nil {
		return fmtNotRegistered("gc.SwapEdge", newChild)
	}

	p.mu.Lock()
	delete(p.edges, oldChild)
	_, existed := p.edges[newChild]
	if !existed {
		p.edges[newChild] = struct{}{}
	}
	parentColor := p.color
	p.mu.Unlock()

	if !existed {
		c.barrierOnNewEdge(parentColor, newObj)
	}
	return nil
}
