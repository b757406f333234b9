// ABOUTME: Graph interface and in-memory implementation
// ABOUTME: Stores snapshots of the arena object graph for analysis

package graph

import (
	"sort"
	"sync"
)

// Graph is a read-mostly view of an object graph
type Graph interface {
	// AddObject adds an object to the graph, replacing any object with the same ID
	AddObject(obj *Object)

	// GetObject retrieves an object by ID
	GetObject(id ObjID) *Object

	// NumObjects returns the total number of objects
	NumObjects() int

	// ForEachObject iterates over all objects in ascending ID order
	ForEachObject(fn func(*Object))

	// SetRoots sets the root set
	SetRoots(roots Roots)

	// GetRoots returns the root set
	GetRoots() Roots
}

// MemGraph is an in-memory implementation of Graph
type MemGraph struct {
	mu      sync.RWMutex
	objects map[ObjID]*Object
	order   []ObjID // sorted IDs, nil when stale
	roots   Roots
}

// NewMemGraph creates a new in-memory graph
func NewMemGraph() *MemGraph {
	return &MemGraph{
		objects: make(map[ObjID]*Object),
	}
}

// AddObject adds an object to the graph
func (g *MemGraph) AddObject(obj *Object) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.objects[obj.ID]; !exists {
		g.order = nil
	}
	g.objects[obj.ID] = obj
}

// GetObject retrieves an object by ID
func (g *MemGraph) GetObject(id ObjID) *Object {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.objects[id]
}

// NumObjects returns the total number of objects
func (g *MemGraph) NumObjects() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.objects)
}

// ForEachObject iterates over all objects in ascending ID order.
// fn must not modify the graph.
func (g *MemGraph) ForEachObject(fn func(*Object)) {
	for _, obj := range g.sortedObjects() {
		fn(obj)
	}
}

// sortedObjects returns the objects in ID order. Readers share the lock;
// the write lock is taken only to rebuild a stale order.
func (g *MemGraph) sortedObjects() []*Object {
	g.mu.RLock()
	if g.order != nil {
		objects := g.collect()
		g.mu.RUnlock()
		return objects
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.order == nil {
		order := make([]ObjID, 0, len(g.objects))
		for id := range g.objects {
			order = append(order, id)
		}
		sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
		g.order = order
	}
	return g.collect()
}

// collect must be called with g.mu held and g.order current.
func (g *MemGraph) collect() []*Object {
	objects := make([]*Object, len(g.order))
	for i, id := range g.order {
		objects[i] = g.objects[id]
	}
	return objects
}

// SetRoots sets the root set
func (g *MemGraph) SetRoots(roots Roots) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.roots = roots
}

// GetRoots returns the root set
func (g *MemGraph) GetRoots() Roots {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.roots
}

// NumEdges returns the total number of pointers held by all objects
func NumEdges(g Graph) int {
	n := 0
	g.ForEachObject(func(obj *Object) {
		n += len(obj.Ptrs)
	})
	return n
}
