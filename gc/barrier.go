package gc

// This file implements the write barrier described in spec.md §4.6: the
// only point at which a mutator can violate the tri-color invariant I3 (no
// edge from a Black object to a White object) is adding an edge from an
// already-scanned (Black) parent to a not-yet-reached (White) child while
// marking is active. The barrier re-grays that child and enqueues it onto
// the gray frontier — an incremental-update (Dijkstra-style) barrier, the
// same classification the original C++ source and the teacher's
// ConcurrentWriteBarrier.WritePointer use.
//
// The barrier is a pure no-op outside a cycle: IsMarking() gates it, so an
// ordinary AddEdge call when nothing is marking costs nothing beyond the
// edge-set mutation itself.

// barrierOnNewEdge is invoked after an edge has genuinely been inserted
// (not on a duplicate add_edge, which is specified as a no-op). parentColor
// is the parent's color observed at the moment of insertion.
func (c *Collector) barrierOnNewEdge(parentColor Color, child *object) {
	if !c.marking.Load() || parentColor != Black {
		return
	}
	child.mu.Lock()
	becameGray := child.color == White
	if becameGray {
		child.color = Gray
	}
	child.mu.Unlock()
	if becameGray {
		c.pushGray(child.addr)
	}
}
