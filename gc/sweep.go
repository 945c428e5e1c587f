package gc

import "sync/atomic"

// sweepLocked reclaims every White object: its finalizer is invoked, the
// entry is removed from the registry, and the buffer's last reference is
// dropped. Survivors are left exactly as mark left them — no repaint here;
// the next cycle's resetAndSeed owns turning Black/Gray back to White
// (spec.md §4.5, and the Open Question resolution recorded in DESIGN.md).
//
// Caller must already hold regMu exclusively. If a finalizer panics, the
// sweep stops immediately: the panicking object (and everything after it
// in map iteration order) stays registered and colored, to be retried on
// the next cycle, per spec.md §7 — an object's entry is considered removed
// only after its finalizer returns without panicking.
func (c *Collector) sweepLocked() (swept, freed int, err error) {
	for addr, obj := range c.objects {
		obj.mu.Lock()
		color := obj.color
		obj.mu.Unlock()
		if color != White {
			continue
		}
		swept++
		atomic.AddInt64(&c.stats.objectsSweep, 1)

		if ferr := c.finalizeOne(obj); ferr != nil {
			return swept, freed, ferr
		}
		delete(c.objects, addr)
		freed++
		atomic.AddInt64(&c.stats.objectsFree, 1)
	}
	return swept, freed, nil
}

// finalizeOne invokes obj's finalizer, recovering and reporting a panic as
// ErrFinalizerPanic instead of letting it cross into sweepLocked's caller
// (which may be running on the background driver's goroutine).
func (c *Collector) finalizeOne(obj *object) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logFinalizerPanic(obj.addr, r)
			err = fmtFinalizerPanic(obj.addr, r)
		}
	}()
	obj.finalizer(obj.addr, obj.size)
	return nil
}
