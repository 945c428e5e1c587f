package gc

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Collector is a tracing mark/sweep garbage collector instance. Host
// programs normally use the package-level functions (Alloc, AddEdge,
// Collect, ...), which operate on Default(); constructing a *Collector
// directly is for tests and for hosts that deliberately want more than one
// isolated instance (the single-process-wide assumption in spec.md §1 is a
// design default, not an enforced constraint).
//
// Locking discipline (spec.md §5), acquired in this order when more than
// one lock is needed:
//
//	gate -> cycle -> roots -> registry -> frontier
//
// gate and cycle are coarse sync.Mutex values; roots and registry are
// sync.RWMutex (shared for reads, exclusive for structural changes);
// frontier is a plain sync.Mutex. Each registered object additionally owns
// a private mutex guarding its own color and edge set, acquired after the
// registry lock and never nested under frontier.
type Collector struct {
	cfg Config
	log logrus.FieldLogger

	gateMu  sync.Mutex
	cycleMu sync.Mutex

	rootsMu sync.RWMutex
	roots   map[Addr]struct{}

	regMu   sync.RWMutex
	objects map[Addr]*object

	frontierMu  sync.Mutex
	frontier    []Addr
	frontierPos int

	marking     atomic.Bool
	cycleMarked int64        // objects blackened during the in-flight cycle, for logging
	cycleStart  atomic.Value // time.Time: when the in-flight cycle started

	bg backgroundDriver

	stats stats
}

// New constructs a standalone Collector. Most hosts should use Default()
// instead; see the package doc and spec.md §9's "global mutable state"
// design note.
func New(opts ...Option) *Collector {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Collector{
		cfg:     cfg,
		log:     cfg.logger(),
		roots:   make(map[Addr]struct{}),
		objects: make(map[Addr]*object),
	}
	c.bg.c = c
	return c
}

var (
	defaultOnce sync.Once
	defaultInst *Collector
)

// Default returns the process-wide Collector instance used by the
// package-level functions (Alloc, AddEdge, Collect, ...). It is initialized
// lazily on first use behind a sync.Once — a deliberate, race-free
// singleton reachable through a handle, not the ad-hoc static
// thread-unsafe initialization spec.md §9 warns against.
func Default() *Collector {
	defaultOnce.Do(func() {
		defaultInst = New()
	})
	return defaultInst
}

// Count reports the number of live registrations. Observational, for
// tests and metrics (spec.md §4.1).
func (c *Collector) Count() int {
	c.regMu.RLock()
	defer c.regMu.RUnlock()
	return len(c.objects)
}

// IsMarking reports whether a mark cycle (a synchronous Collect, an
// incremental cycle, or the background driver's) is currently active. The write barrier's fast-path check.
func (c *Collector) IsMarking() bool {
	return c.marking.Load()
}
