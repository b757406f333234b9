// ABOUTME: Builds reverse edges for graph traversal
// ABOUTME: Maps objects to their referrers for paths-to-roots and dominators

package graph

// ReverseEdges maps each object to the objects that point to it
type ReverseEdges map[ObjID][]ObjID

// BuildReverseEdges creates a map of reverse edges. Pointers to IDs that
// are not in the graph are skipped, and a referrer holding several
// pointers to the same target is listed once.
func BuildReverseEdges(g Graph) ReverseEdges {
	reverse := make(ReverseEdges)

	g.ForEachObject(func(obj *Object) {
		for i, targetID := range obj.Ptrs {
			if g.GetObject(targetID) == nil || seenBefore(obj.Ptrs[:i], targetID) {
				continue
			}
			reverse[targetID] = append(reverse[targetID], obj.ID)
		}
	})

	return reverse
}

func seenBefore(ids []ObjID, id ObjID) bool {
	for _, other := range ids {
		if other == id {
			return true
		}
	}
	return false
}
