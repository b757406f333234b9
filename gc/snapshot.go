// ABOUTME: Exports the live arena as an analysable object graph
// ABOUTME: Feeds paths-to-roots, dominators, and heap dumps

package gc

import (
	"fmt"
	"reflect"

	"github.com/prateek/arenagc/graph"
)

// Snapshot returns the current object graph: one object per live slot with
// its resolved out-edges, and as roots the slots a sweep would elect now.
// The snapshot does not change when the arena does.
func (a *Arena) Snapshot() *graph.MemGraph {
	a.mu.Lock()
	defer a.mu.Unlock()

	eg := a.buildEdges()
	g := graph.NewMemGraph()
	for i, s := range a.slots {
		ptrs := make([]graph.ObjID, len(eg.out[i]))
		for k, j := range eg.out[i] {
			ptrs[k] = a.slots[j].addr
		}
		g.AddObject(&graph.Object{
			ID:      s.addr,
			Type:    typeName(s.value),
			Size:    shallowSize(s.value),
			Ptrs:    ptrs,
			Handles: s.handles,
			Pins:    s.pins,
		})
	}

	roots := a.roots(eg)
	ids := make([]graph.ObjID, len(roots))
	for k, i := range roots {
		ids[k] = a.slots[i].addr
	}
	g.SetRoots(graph.Roots{IDs: ids})
	return g
}

// PathsToRoots explains why addr is retained: up to maxPaths shortest
// chains of references from it to an elected root.
func (a *Arena) PathsToRoots(addr Addr, maxPaths int) []graph.Path {
	return graph.PathsToRoots(a.Snapshot(), addr, maxPaths)
}

func typeName(v Scanner) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}

// shallowSize is the size of the value itself, or of the pointed-to value
// for pointers. Memory reachable through other fields is not counted.
func shallowSize(v Scanner) uint64 {
	if v == nil {
		return 0
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return uint64(t.Size())
}
