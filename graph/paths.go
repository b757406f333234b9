// ABOUTME: BFS algorithm for finding paths from objects to roots
// ABOUTME: Explains why an allocation is retained, with cycle detection

package graph

import mapset "github.com/deckarep/golang-set/v2"

// Path represents a path from an object to a root
type Path struct {
	IDs []ObjID // Sequence of object IDs from target to root
}

// RootSet returns the roots of g as a set
func RootSet(g Graph) mapset.Set[ObjID] {
	return mapset.NewThreadUnsafeSet(g.GetRoots().IDs...)
}

// PathsToRoots finds up to maxPaths shortest paths from an object to the
// roots using BFS over reverse edges.
func PathsToRoots(g Graph, from ObjID, maxPaths int) []Path {
	if maxPaths <= 0 {
		return nil
	}

	reverse := BuildReverseEdges(g)
	rootSet := RootSet(g)

	if rootSet.Contains(from) {
		return []Path{{IDs: []ObjID{from}}}
	}

	type searchNode struct {
		id   ObjID
		path []ObjID
	}

	var result []Path
	queue := []searchNode{{id: from, path: []ObjID{from}}}

	for len(queue) > 0 && len(result) < maxPaths {
		node := queue[0]
		queue = queue[1:]

		for _, referrerID := range reverse[node.id] {
			// A path never visits the same object twice.
			if seenBefore(node.path, referrerID) {
				continue
			}

			newPath := make([]ObjID, len(node.path)+1)
			copy(newPath, node.path)
			newPath[len(node.path)] = referrerID

			if rootSet.Contains(referrerID) {
				result = append(result, Path{IDs: newPath})
				if len(result) >= maxPaths {
					break
				}
				continue
			}
			queue = append(queue, searchNode{id: referrerID, path: newPath})
		}
	}

	return result
}
