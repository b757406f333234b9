// ABOUTME: Computes immediate dominators over the object graph
// ABOUTME: Iterative Cooper-Harvey-Kennedy algorithm rooted at a synthetic super-root
package graph

// superRoot is the synthetic node that points at every root. Slot
// addresses start at 1 so it never collides with a real object.
const superRoot ObjID = 0

// Dominators computes the immediate dominator of each object reachable
// from the roots. Roots (and objects only reachable through more than one
// root) are dominated by the super-root, ID 0, which itself is omitted.
func Dominators(g Graph) map[ObjID]ObjID {
	succ := make(map[ObjID][]ObjID, g.NumObjects()+1)
	for _, id := range g.GetRoots().IDs {
		if g.GetObject(id) != nil && !seenBefore(succ[superRoot], id) {
			succ[superRoot] = append(succ[superRoot], id)
		}
	}
	g.ForEachObject(func(obj *Object) {
		for _, ptr := range obj.Ptrs {
			if g.GetObject(ptr) != nil {
				succ[obj.ID] = append(succ[obj.ID], ptr)
			}
		}
	})

	order := postOrder(succ)
	if len(order) <= 1 {
		return map[ObjID]ObjID{}
	}
	po := make(map[ObjID]int, len(order))
	for i, id := range order {
		po[id] = i
	}

	preds := make(map[ObjID][]ObjID, len(order))
	for _, v := range order {
		for _, w := range succ[v] {
			preds[w] = append(preds[w], v)
		}
	}

	idom := map[ObjID]ObjID{superRoot: superRoot}
	intersect := func(a, b ObjID) ObjID {
		for a != b {
			for po[a] < po[b] {
				a = idom[a]
			}
			for po[b] < po[a] {
				b = idom[b]
			}
		}
		return a
	}

	for changed := true; changed; {
		changed = false
		// Reverse post-order, skipping the super-root at the end.
		for i := len(order) - 2; i >= 0; i-- {
			w := order[i]
			var newIdom ObjID
			found := false
			for _, p := range preds[w] {
				if _, processed := idom[p]; !processed {
					continue
				}
				if !found {
					newIdom, found = p, true
					continue
				}
				newIdom = intersect(p, newIdom)
			}
			if cur, ok := idom[w]; !ok || cur != newIdom {
				idom[w] = newIdom
				changed = true
			}
		}
	}

	delete(idom, superRoot)
	return idom
}

// postOrder returns the nodes reachable from the super-root in DFS
// post-order; the super-root is always last.
func postOrder(succ map[ObjID][]ObjID) []ObjID {
	type frame struct {
		id   ObjID
		next int
	}

	visited := map[ObjID]bool{superRoot: true}
	stack := []frame{{id: superRoot}}
	var order []ObjID

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := succ[top.id]
		if top.next < len(children) {
			child := children[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	return order
}

// DominatorTree builds a tree structure from immediate dominators.
// Returns a map from each node to its list of immediately dominated nodes.
func DominatorTree(idom map[ObjID]ObjID) map[ObjID][]ObjID {
	tree := make(map[ObjID][]ObjID, len(idom)+1)
	tree[superRoot] = []ObjID{}
	for node := range idom {
		tree[node] = []ObjID{}
	}
	for node, dom := range idom {
		tree[dom] = append(tree[dom], node)
	}
	return tree
}

// DominatorPath returns the chain of dominators from node up to and
// including the super-root.
func DominatorPath(idom map[ObjID]ObjID, node ObjID) []ObjID {
	path := []ObjID{node}
	for node != superRoot {
		dom, ok := idom[node]
		if !ok {
			return append(path, superRoot)
		}
		path = append(path, dom)
		node = dom
	}
	return path
}

// IsDominated returns true if every path from the roots to node passes
// through dominator. A node dominates itself.
func IsDominated(idom map[ObjID]ObjID, node, dominator ObjID) bool {
	for {
		if node == dominator {
			return true
		}
		dom, ok := idom[node]
		if !ok {
			return false
		}
		node = dom
	}
}
