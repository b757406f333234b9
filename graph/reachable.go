// ABOUTME: Forward reachability from the root set
// ABOUTME: Computes the set of objects a collector must retain

package graph

import mapset "github.com/deckarep/golang-set/v2"

// Reachable returns the IDs of every object reachable from a root,
// roots included. Roots and pointers that name unknown IDs are ignored.
func Reachable(g Graph) mapset.Set[ObjID] {
	live := mapset.NewThreadUnsafeSet[ObjID]()

	var stack []ObjID
	for _, id := range g.GetRoots().IDs {
		if g.GetObject(id) != nil {
			stack = append(stack, id)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !live.Add(id) {
			continue
		}
		for _, ptr := range g.GetObject(id).Ptrs {
			if g.GetObject(ptr) != nil && !live.Contains(ptr) {
				stack = append(stack, ptr)
			}
		}
	}

	return live
}

// Unreachable returns the IDs of objects no root can reach, in ascending order
func Unreachable(g Graph) []ObjID {
	live := Reachable(g)
	var dead []ObjID
	g.ForEachObject(func(obj *Object) {
		if !live.Contains(obj.ID) {
			dead = append(dead, obj.ID)
		}
	})
	return dead
}
