// ABOUTME: Shared fixtures for graph tests
// ABOUTME: Builds small object graphs from literal objects and roots

package graph

func newTestGraph(roots []ObjID, objects ...*Object) *MemGraph {
	g := NewMemGraph()
	for _, obj := range objects {
		g.AddObject(obj)
	}
	g.SetRoots(Roots{IDs: roots})
	return g
}

// chainGraph links objects 1..n into a single chain anchored at 1.
func chainGraph(n int, size uint64) *MemGraph {
	g := NewMemGraph()
	for i := 1; i <= n; i++ {
		obj := &Object{ID: ObjID(i), Type: "*main.link", Size: size}
		if i < n {
			obj.Ptrs = []ObjID{ObjID(i + 1)}
		}
		g.AddObject(obj)
	}
	g.SetRoots(Roots{IDs: []ObjID{1}})
	return g
}
