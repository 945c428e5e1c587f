package gc

import "time"

// Lifecycle logging helpers. Kept in one place so the fields logged for a
// given kind of event stay consistent between the synchronous, incremental,
// and background code paths (mark.go, sweep.go, background.go, gate.go).

func (c *Collector) logCycleStart(kind string) {
	c.log.WithField("kind", kind).Debug("gc: cycle start")
}

func (c *Collector) logCycleDone(kind string, pause time.Duration, marked, swept, freed int) {
	c.log.WithField("kind", kind).
		WithField("pause", pause).
		WithField("marked", marked).
		WithField("swept", swept).
		WithField("freed", freed).
		Debug("gc: cycle done")
}

func (c *Collector) logBackgroundTick(active bool) {
	c.log.WithField("active", active).Debug("gc: background tick")
}

func (c *Collector) logGateBlocked() {
	c.log.Debug("gc: collection gate blocked")
}

func (c *Collector) logGateUnblocked() {
	c.log.Debug("gc: collection gate unblocked")
}

func (c *Collector) logFinalizerPanic(addr Addr, recovered any) {
	c.log.WithField("addr", addr).WithField("panic", recovered).Error("gc: finalizer panicked")
}
