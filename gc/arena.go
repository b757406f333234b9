// ABOUTME: Arena owning every collectible allocation
// ABOUTME: Allocation, lookup, and bookkeeping of handles and pins

package gc

import (
	"context"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

// lastAddr is shared by all arenas so that an address held by one arena's
// value never names a slot of another.
var lastAddr atomic.Uint64

// slot is one arena-owned value plus its bookkeeping. All fields are
// guarded by the owning arena's mutex.
type slot struct {
	addr    Addr
	value   Scanner
	handles int // outstanding handles, including ones stored in other slots
	pins    int // open views
	evicted bool
}

// isRoot reports whether the slot anchors itself given the number of
// in-edges other slots report for it.
func (s *slot) isRoot(inEdges int) bool {
	return s.pins > 0 || s.handles > inEdges
}

// edges returns the slot's reported out-edges.
func (s *slot) edges() []Addr {
	if s.value == nil {
		return nil
	}
	return s.value.Allocations()
}

// SweepStats describes one Sweep.
type SweepStats struct {
	Before        int           // slots before the sweep
	Roots         int           // slots elected as roots
	Marked        int           // slots retained
	Evicted       int           // slots evicted
	Edges         int           // edges resolved to live slots
	DanglingEdges int           // edges to unknown addresses, dropped
	Duration      time.Duration // wall time spent sweeping
}

// Stats reports arena usage.
type Stats struct {
	Live           int        // slots currently held
	TotalAllocated uint64     // allocations since creation
	TotalEvicted   uint64     // evictions since creation
	Sweeps         uint64     // completed sweeps
	LastSweep      SweepStats // statistics of the most recent sweep
}

// Arena owns every allocation and runs the collector.
type Arena struct {
	mu     sync.Mutex
	cfg    config
	slots  []*slot
	byAddr map[Addr]*slot
	stats  Stats
}

// New creates an empty Arena.
func New(opts ...Option) *Arena {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Arena{
		cfg:    cfg,
		slots:  make([]*slot, 0, cfg.capacity),
		byAddr: make(map[Addr]*slot, cfg.capacity),
	}
}

// Allocate moves value into a new slot of a and returns the first handle
// to it. It never fails.
func Allocate[T Scanner](a *Arena, value T) *Handle[T] {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := &slot{addr: Addr(lastAddr.Add(1)), handles: 1}
	// Nil values, including typed nil pointers, have no edges and are never scanned.
	if !isNil(value) {
		s.value = value
	}
	a.slots = append(a.slots, s)
	a.byAddr[s.addr] = s
	a.stats.TotalAllocated++

	a.cfg.metrics.RecordAllocate()
	a.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "allocated",
		slog.Uint64("addr", uint64(s.addr)),
		slog.Int("live", len(a.slots)),
	)

	return &Handle[T]{arena: a, slot: s}
}

func isNil(v Scanner) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// AllocationCount returns the number of live allocations.
func (a *Arena) AllocationCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.slots)
}

// Contains reports whether addr names a live allocation.
func (a *Arena) Contains(addr Addr) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.byAddr[addr]
	return ok
}

// Stats returns a copy of the arena's usage statistics.
func (a *Arena) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := a.stats
	st.Live = len(a.slots)
	return st
}
