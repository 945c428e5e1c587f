package gc

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// stats holds the counters the teacher's ConcurrentGCStats tracked as plain
// struct fields (gc_concurrent.go), kept here as atomics so they can be
// updated off the hot mark/sweep path without taking the registry lock,
// and exposed as a prometheus.Collector instead of a bare getter.
type stats struct {
	cycles       int64
	objectsMark  int64
	objectsSweep int64
	objectsFree  int64
	lastPauseNs  int64
	maxPauseNs   int64
	totalPauseNs int64
}

func (s *stats) recordCycle(pause time.Duration) {
	atomic.AddInt64(&s.cycles, 1)
	ns := pause.Nanoseconds()
	atomic.StoreInt64(&s.lastPauseNs, ns)
	atomic.AddInt64(&s.totalPauseNs, ns)
	for {
		cur := atomic.LoadInt64(&s.maxPauseNs)
		if ns <= cur || atomic.CompareAndSwapInt64(&s.maxPauseNs, cur, ns) {
			break
		}
	}
}

// Metrics is a prometheus.Collector exposing this Collector's cycle and
// object-flow statistics. Register it with a prometheus.Registerer to
// scrape cycle counts, objects marked/swept/freed, and cycle durations —
// the standard-surface counterpart to the teacher's GetStats() getter.
type Metrics struct {
	c *Collector

	cyclesDesc       *prometheus.Desc
	objectsMarkDesc  *prometheus.Desc
	objectsSweepDesc *prometheus.Desc
	objectsFreeDesc  *prometheus.Desc
	liveObjectsDesc  *prometheus.Desc
	lastPauseDesc    *prometheus.Desc
	maxPauseDesc     *prometheus.Desc
	totalPauseDesc   *prometheus.Desc
}

// Metrics returns a prometheus.Collector bound to this Collector.
func (c *Collector) Metrics() *Metrics {
	ns := "tracegc"
	return &Metrics{
		c:                c,
		cyclesDesc:       prometheus.NewDesc(ns+"_cycles_total", "Total mark/sweep cycles completed.", nil, nil),
		objectsMarkDesc:  prometheus.NewDesc(ns+"_objects_marked_total", "Total objects transitioned to black.", nil, nil),
		objectsSweepDesc: prometheus.NewDesc(ns+"_objects_swept_total", "Total white objects visited by sweep.", nil, nil),
		objectsFreeDesc:  prometheus.NewDesc(ns+"_objects_freed_total", "Total objects finalized and released.", nil, nil),
		liveObjectsDesc:  prometheus.NewDesc(ns+"_live_objects", "Objects currently registered.", nil, nil),
		lastPauseDesc:    prometheus.NewDesc(ns+"_last_pause_seconds", "Duration of the most recent cycle: the whole stop-the-world cycle for Collect, start-to-sweep wall time for an incremental cycle.", nil, nil),
		maxPauseDesc:     prometheus.NewDesc(ns+"_max_pause_seconds", "Longest cycle duration observed, measured as for last_pause_seconds.", nil, nil),
		totalPauseDesc:   prometheus.NewDesc(ns+"_total_pause_seconds_total", "Cumulative cycle duration across all cycles, measured as for last_pause_seconds.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.cyclesDesc
	ch <- m.objectsMarkDesc
	ch <- m.objectsSweepDesc
	ch <- m.objectsFreeDesc
	ch <- m.liveObjectsDesc
	ch <- m.lastPauseDesc
	ch <- m.maxPauseDesc
	ch <- m.totalPauseDesc
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	s := &m.c.stats
	ch <- prometheus.MustNewConstMetric(m.cyclesDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.cycles)))
	ch <- prometheus.MustNewConstMetric(m.objectsMarkDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.objectsMark)))
	ch <- prometheus.MustNewConstMetric(m.objectsSweepDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.objectsSweep)))
	ch <- prometheus.MustNewConstMetric(m.objectsFreeDesc, prometheus.CounterValue, float64(atomic.LoadInt64(&s.objectsFree)))
	ch <- prometheus.MustNewConstMetric(m.liveObjectsDesc, prometheus.GaugeValue, float64(m.c.Count()))
	ch <- prometheus.MustNewConstMetric(m.lastPauseDesc, prometheus.GaugeValue, time.Duration(atomic.LoadInt64(&s.lastPauseNs)).Seconds())
	ch <- prometheus.MustNewConstMetric(m.maxPauseDesc, prometheus.GaugeValue, time.Duration(atomic.LoadInt64(&s.maxPauseNs)).Seconds())
	ch <- prometheus.MustNewConstMetric(m.totalPauseDesc, prometheus.CounterValue, time.Duration(atomic.LoadInt64(&s.totalPauseNs)).Seconds())
}
