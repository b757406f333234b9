// ABOUTME: Reachability-based collection over the arena's slots
// ABOUTME: Elects roots by handle counting, marks from them, evicts the rest

package gc

import (
	"context"
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// edgeGraph is the out-edge graph of the arena at one instant, keyed by
// slot index.
type edgeGraph struct {
	out      [][]uint32     // resolved out-edges per slot
	inEdges  []int          // internal in-edge count per slot
	dangling []DanglingEdge // edges to addresses not in the arena
	edges    int
}

// buildEdges scans every slot. Must be called with a.mu held.
func (a *Arena) buildEdges() edgeGraph {
	index := make(map[Addr]uint32, len(a.slots))
	for i, s := range a.slots {
		index[s.addr] = uint32(i)
	}

	g := edgeGraph{
		out:     make([][]uint32, len(a.slots)),
		inEdges: make([]int, len(a.slots)),
	}
	for i, s := range a.slots {
		for _, addr := range s.edges() {
			j, ok := index[addr]
			if !ok {
				g.dangling = append(g.dangling, DanglingEdge{From: s.addr, To: addr})
				continue
			}
			g.out[i] = append(g.out[i], j)
			g.inEdges[j]++
			g.edges++
		}
	}
	return g
}

// roots returns the indices of the slots that anchor themselves.
func (a *Arena) roots(g edgeGraph) []uint32 {
	var roots []uint32
	for i, s := range a.slots {
		if s.isRoot(g.inEdges[i]) {
			roots = append(roots, uint32(i))
		}
	}
	return roots
}

// mark sets every slot index reachable from roots in the returned bitmap.
func mark(g edgeGraph, roots []uint32) *roaring.Bitmap {
	marked := roaring.New()
	stack := append([]uint32(nil), roots...)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !marked.CheckedAdd(i) {
			continue
		}
		for _, j := range g.out[i] {
			if !marked.Contains(j) {
				stack = append(stack, j)
			}
		}
	}
	return marked
}

// Sweep evicts every allocation that is not reachable from a root. Handles
// to evicted allocations become stale; handles stored inside evicted
// allocations are released.
func (a *Arena) Sweep() {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	stats := a.sweep()
	stats.Duration = time.Since(start)

	a.stats.Sweeps++
	a.stats.TotalEvicted += uint64(stats.Evicted)
	a.stats.LastSweep = stats

	a.cfg.metrics.RecordSweep(stats)
	a.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "sweep completed",
		slog.Int("before", stats.Before),
		slog.Int("roots", stats.Roots),
		slog.Int("retained", stats.Marked),
		slog.Int("evicted", stats.Evicted),
		slog.Int("dangling_edges", stats.DanglingEdges),
		slog.Duration("duration", stats.Duration),
	)
}

func (a *Arena) sweep() SweepStats {
	stats := SweepStats{Before: len(a.slots)}
	if len(a.slots) == 0 {
		return stats
	}

	g := a.buildEdges()
	if a.cfg.debugChecks {
		a.logFindings(a.findings(g))
	}

	roots := a.roots(g)
	marked := mark(g, roots)

	stats.Roots = len(roots)
	stats.Marked = int(marked.GetCardinality())
	stats.Evicted = len(a.slots) - stats.Marked
	stats.Edges = g.edges
	stats.DanglingEdges = len(g.dangling)

	if stats.Evicted == 0 {
		return stats
	}

	// Handles held by an evicted value die with it.
	for i, s := range a.slots {
		if marked.Contains(uint32(i)) {
			continue
		}
		for _, j := range g.out[i] {
			if marked.Contains(j) {
				a.slots[j].handles--
			}
		}
		s.evicted = true
		s.value = nil
		delete(a.byAddr, s.addr)
	}

	kept := a.slots[:0]
	for _, s := range a.slots {
		if !s.evicted {
			kept = append(kept, s)
		}
	}
	clear(a.slots[len(kept):])
	a.slots = kept

	return stats
}
