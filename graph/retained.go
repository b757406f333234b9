// ABOUTME: Calculates retained memory sizes using dominator tree analysis
// ABOUTME: Reports how much a sweep would reclaim if an object lost its anchor
package graph

// RetainedSize computes the retained size of every reachable object: its
// own size plus the sizes of all objects it dominates, i.e. everything that
// becomes collectable once nothing but this object anchors it.
func RetainedSize(g Graph) map[ObjID]uint64 {
	r := newRetainer(g)
	for node := range r.tree {
		r.compute(node)
	}
	delete(r.memo, superRoot)
	return r.memo
}

// RetainedSizeSubsets computes retained sizes only for the given objects.
// Objects that are unknown or unreachable are left out of the result.
func RetainedSizeSubsets(g Graph, targetIDs []ObjID) map[ObjID]uint64 {
	result := make(map[ObjID]uint64)
	if len(targetIDs) == 0 {
		return result
	}

	r := newRetainer(g)
	for _, id := range targetIDs {
		if _, reachable := r.tree[id]; reachable && id != superRoot {
			result[id] = r.compute(id)
		}
	}
	return result
}

type retainer struct {
	tree  map[ObjID][]ObjID
	sizes map[ObjID]uint64
	memo  map[ObjID]uint64
}

func newRetainer(g Graph) *retainer {
	r := &retainer{
		tree:  DominatorTree(Dominators(g)),
		sizes: make(map[ObjID]uint64, g.NumObjects()),
		memo:  make(map[ObjID]uint64),
	}
	g.ForEachObject(func(obj *Object) {
		r.sizes[obj.ID] = obj.Size
	})
	return r
}

// compute walks the dominator subtree below node without recursion, so
// long allocation chains cannot exhaust the goroutine stack.
func (r *retainer) compute(node ObjID) uint64 {
	if size, ok := r.memo[node]; ok {
		return size
	}

	type frame struct {
		id       ObjID
		expanded bool
	}
	stack := []frame{{id: node}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if _, ok := r.memo[top.id]; ok {
			stack = stack[:len(stack)-1]
			continue
		}
		if !top.expanded {
			stack[len(stack)-1].expanded = true
			for _, child := range r.tree[top.id] {
				if _, ok := r.memo[child]; !ok {
					stack = append(stack, frame{id: child})
				}
			}
			continue
		}
		size := r.sizes[top.id]
		for _, child := range r.tree[top.id] {
			size += r.memo[child]
		}
		r.memo[top.id] = size
		stack = stack[:len(stack)-1]
	}

	return r.memo[node]
}
