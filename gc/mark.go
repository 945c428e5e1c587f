package gc

import (
	"sync/atomic"
	"time"
)

// pushGray appends addr to the shared incremental gray frontier. Used by
// the write barrier (barrier.go) and by the incremental scan loop below
// when it discovers a new Gray object. The frontier is append-only within
// a cycle; frontierPos tracks how far StepMark/FinishIncrementalMark has
// consumed it, the same "growing slice + position index" shape the
// original C++ source gets for free from a std::deque whose iterators
// survive push_back (lib/gc_impl.cpp's mark_iterator_).
func (c *Collector) pushGray(addr Addr) {
	c.frontierMu.Lock()
	c.frontier = append(c.frontier, addr)
	c.frontierMu.Unlock()
}

// nextGray pops the next unconsumed address off the shared frontier, or
// reports false if it has been fully drained.
func (c *Collector) nextGray() (Addr, bool) {
	c.frontierMu.Lock()
	defer c.frontierMu.Unlock()
	if c.frontierPos >= len(c.frontier) {
		return 0, false
	}
	addr := c.frontier[c.frontierPos]
	c.frontierPos++
	return addr, true
}

// scanWith scans addr's out-edges, graying any White target (pushing it
// onto the shared frontier) and finally blackening addr itself. find
// resolves an Addr to its object; it is the one thing that differs
// between the incremental and synchronous callers below, since they hold
// regMu differently. A concurrently-removed object, or a dangling edge
// target, is skipped rather than treated as an error — spec.md §4.4's
// defensive tie-break rules.
func (c *Collector) scanWith(addr Addr, find func(Addr) *object) {
	obj := find(addr)
	if obj == nil {
		return
	}

	obj.mu.Lock()
	targets := make([]Addr, 0, len(obj.edges))
	for e := range obj.edges {
		targets = append(targets, e)
	}
	obj.mu.Unlock()

	for _, e := range targets {
		child := find(e)
		if child == nil {
			continue
		}
		child.mu.Lock()
		became := child.color == White
		if became {
			child.color = Gray
		}
		child.mu.Unlock()
		if became {
			c.pushGray(e)
		}
	}

	obj.mu.Lock()
	obj.color = Black
	obj.mu.Unlock()
	atomic.AddInt64(&c.stats.objectsMark, 1)
	atomic.AddInt64(&c.cycleMarked, 1)
}

// scanOne is scanWith for callers that hold no registry lock of their own
// (StepMark, FinishIncrementalMark, the background driver): it looks up
// each address through lookup, which takes regMu.RLock per call.
func (c *Collector) scanOne(addr Addr) {
	c.scanWith(addr, c.lookup)
}

// scanOneLocked is scanWith for Collect, which already holds regMu
// exclusively for the whole cycle; it reads c.objects directly instead of
// going through lookup, which would try to re-acquire regMu and deadlock
// against the write lock Collect is already holding.
func (c *Collector) scanOneLocked(addr Addr) {
	c.scanWith(addr, c.lookupLocked)
}

// drainGray processes gray objects via scanOne until the frontier empties
// or budget objects have been processed (budget <= 0 means unlimited —
// used by FinishIncrementalMark to force a complete drain). Returns true
// if the frontier was fully drained. Used by every caller except Collect;
// see drainGrayLocked.
func (c *Collector) drainGray(budget int) bool {
	return c.drain(budget, c.scanOne)
}

// drainGrayLocked is drainGray for Collect's caller, which already holds
// regMu exclusively across the whole mark phase.
func (c *Collector) drainGrayLocked(budget int) bool {
	return c.drain(budget, c.scanOneLocked)
}

func (c *Collector) drain(budget int, scan func(Addr)) bool {
	processed := 0
	for budget <= 0 || processed < budget {
		addr, ok := c.nextGray()
		if !ok {
			return true
		}
		scan(addr)
		processed++
	}
	return false
}

// resetAndSeed recolors every registered object White, then grays every
// object in roots that is still registered and seeds the shared frontier
// with them. roots must be a snapshot taken before regMu was acquired
// (see snapshotRoots), so the roots->registry lock order holds even
// though resetAndSeed itself only ever touches the registry. Caller must
// hold regMu exclusively (and typically cycleMu).
func (c *Collector) resetAndSeed(roots []Addr) {
	for _, obj := range c.objects {
		obj.mu.Lock()
		obj.color = White
		obj.mu.Unlock()
	}

	c.frontierMu.Lock()
	c.frontier = c.frontier[:0]
	c.frontierPos = 0
	c.frontierMu.Unlock()

	for _, r := range roots {
		obj, ok := c.objects[r]
		if !ok {
			continue // root address not (or no longer) registered; skip
		}
		obj.mu.Lock()
		obj.color = Gray
		obj.mu.Unlock()
		c.pushGray(r)
	}
}

// Collect runs one full synchronous mark/sweep cycle under exclusive
// registry access (spec.md §4.4's stop-the-world variant), then sweeps
// (§4.5). It returns the first finalizer panic encountered, if any; see
// ErrFinalizerPanic.
//
// regMu is held exclusively across the whole cycle, so the mark phase
// here uses scanOneLocked/drainGrayLocked rather than the lookup-based
// scanOne/drainGray the incremental and background paths use — those
// take regMu.RLock per lookup, which would deadlock against the write
// lock already held below.
//
// Calling Collect concurrently with an in-flight incremental cycle
// (StartIncrementalMark/StepMark/the background driver) is not a scenario
// spec.md specifies; this implementation serializes the two via cycleMu
// and regMu, so Collect simply runs its own full cycle once it can
// acquire them, effectively superseding whatever the incremental cycle had
// marked so far.
func (c *Collector) Collect() error {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()
	c.cycleMu.Lock()
	defer c.cycleMu.Unlock()

	start := time.Now()
	c.logCycleStart("sync")
	atomic.StoreInt64(&c.cycleMarked, 0)

	// Snapshot roots before regMu, per the gate->cycle->roots->registry->
	// frontier lock order; resetAndSeed only ever reads this snapshot.
	roots := c.snapshotRoots()

	c.regMu.Lock()
	c.marking.Store(true)
	c.resetAndSeed(roots)
	c.drainGrayLocked(0) // budget <= 0: drain the entire frontier in one pass
	swept, freed, ferr := c.sweepLocked()
	c.marking.Store(false)
	c.regMu.Unlock()

	pause := time.Since(start)
	c.stats.recordCycle(pause)
	c.logCycleDone("sync", pause, int(atomic.LoadInt64(&c.cycleMarked)), swept, freed)
	return ferr
}

// StartIncrementalMark begins an incremental cycle: it resets colors,
// seeds the gray frontier from the root set, and marks the cycle active so
// StepMark, the write barrier, and IsMarking all see it. Only the
// start/reset phase is done under the cycle lock and the collection gate
// — spec.md §5 holds the cycle lock "for the start/reset phase of an
// incremental cycle", not for its whole lifetime.
func (c *Collector) StartIncrementalMark() {
	c.gateMu.Lock()
	defer c.gateMu.Unlock()
	c.cycleMu.Lock()
	defer c.cycleMu.Unlock()

	c.logCycleStart("incremental")
	atomic.StoreInt64(&c.cycleMarked, 0)
	c.cycleStart.Store(time.Now())

	roots := c.snapshotRoots()

	c.regMu.Lock()
	c.marking.Store(true)
	c.resetAndSeed(roots)
	c.regMu.Unlock()
}

// StepMark processes at most Config.MarkStepBudget gray objects. If that
// empties the frontier, it transitions into sweep and clears the active
// flag (spec.md §4.4). Calling StepMark while no cycle is active is a
// harmless no-op. It holds no registry lock across the drain, so a
// concurrent Alloc/AddEdge can interleave with it — the incremental
// design's whole point — which is why it goes through scanOne/drainGray
// (the lookup-based pair) rather than Collect's locked variants.
func (c *Collector) StepMark() error {
	if !c.marking.Load() {
		return nil
	}
	if c.drainGray(c.cfg.MarkStepBudget) {
		return c.finishCycleLocked()
	}
	return nil
}

// FinishIncrementalMark forces the gray frontier to drain completely and
// runs sweep, giving the caller a deterministic cycle endpoint (spec.md
// §4.4). It is a no-op if no incremental cycle is active.
func (c *Collector) FinishIncrementalMark() error {
	if !c.marking.Load() {
		return nil
	}
	c.drainGray(0)
	return c.finishCycleLocked()
}

// finishCycleLocked runs sweep and clears the active-mark flag, serialized
// against other cycle transitions by the cycle lock.
func (c *Collector) finishCycleLocked() error {
	c.cycleMu.Lock()
	defer c.cycleMu.Unlock()

	if !c.marking.Load() {
		return nil
	}

	c.regMu.Lock()
	swept, freed, ferr := c.sweepLocked()
	c.marking.Store(false)
	c.regMu.Unlock()

	var pause time.Duration
	if start, ok := c.cycleStart.Load().(time.Time); ok {
		pause = time.Since(start)
	}
	c.stats.recordCycle(pause)
	c.logCycleDone("incremental", pause, int(atomic.LoadInt64(&c.cycleMarked)), swept, freed)
	return ferr
}
